// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package apiutil

import (
	"net/http"

	"github.com/pingcap/errcode"
	"github.com/pingcap/log"
	"github.com/unrolled/render"
)

// ErrorCodeHeader carries the errcode code string of a failed request.
const ErrorCodeHeader = "Noticeboard-Error-Code"

// ErrorResp renders err as JSON. An error carrying an errcode.ErrorCode gets the HTTP status of its code and the
// errcode JSON body; anything else is a 500 with the plain message.
func ErrorResp(rd *render.Render, w http.ResponseWriter, err error) {
	if err == nil {
		log.Error("nil is given to errorResp")
		rd.JSON(w, http.StatusInternalServerError, "nil error")
		return
	}
	if errCode := errcode.CodeChain(err); errCode != nil {
		w.Header().Set(ErrorCodeHeader, errCode.Code().CodeStr().String())
		rd.JSON(w, errCode.Code().HTTPCode(), errcode.NewJSONFormat(errCode))
	} else {
		rd.JSON(w, http.StatusInternalServerError, err.Error())
	}
}
