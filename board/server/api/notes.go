package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/pingcap-incubator/noticeboard/board/server"
	"github.com/pingcap-incubator/noticeboard/pkg/apiutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pingcap/errcode"
	"github.com/pkg/errors"
	"github.com/unrolled/render"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type notesHandler struct {
	svr *server.Server
	rd  *render.Render
}

func newNotesHandler(svr *server.Server, rd *render.Render) *notesHandler {
	return &notesHandler{
		svr: svr,
		rd:  rd,
	}
}

func (h *notesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes := h.svr.Notes()
	if notes == nil {
		notes = []*noticeboardpb.Note{}
	}
	h.rd.JSON(w, http.StatusOK, notes)
}

func (h *notesHandler) Get(w http.ResponseWriter, r *http.Request) {
	title, errParse := url.PathUnescape(mux.Vars(r)["title"])
	if errParse != nil {
		apiutil.ErrorResp(h.rd, w, errcode.NewInvalidInputErr(errParse))
		return
	}
	note, err := h.svr.GetNoteByTitle(r.Context(), &noticeboardpb.Title{Title: title})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			apiutil.ErrorResp(h.rd, w, errcode.NewNotFoundErr(errors.New(status.Convert(err).Message())))
			return
		}
		h.rd.JSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.rd.JSON(w, http.StatusOK, note)
}

func (h *notesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.rd.JSON(w, http.StatusOK, h.svr.Stats())
}
