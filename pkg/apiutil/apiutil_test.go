package apiutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pingcap/errcode"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

type errorBody struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func TestErrorResp(t *testing.T) {
	rd := render.New(render.Options{IndentJSON: true})

	cases := []struct {
		err  error
		code int
	}{
		{errcode.NewInvalidInputErr(errors.New("bad title")), http.StatusBadRequest},
		{errcode.NewNotFoundErr(errors.New("note \"x\" not found")), http.StatusNotFound},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ErrorResp(rd, w, c.err)
		assert.Equal(t, c.code, w.Code)
		assert.NotEmpty(t, w.Header().Get(ErrorCodeHeader))

		var body errorBody
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, c.err.Error(), body.Msg)
		assert.Equal(t, w.Header().Get(ErrorCodeHeader), body.Code)
	}

	w := httptest.NewRecorder()
	ErrorResp(rd, w, errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get(ErrorCodeHeader))

	w = httptest.NewRecorder()
	ErrorResp(rd, w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
