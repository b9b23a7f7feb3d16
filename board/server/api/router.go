package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pingcap-incubator/noticeboard/board/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
)

const apiPrefix = "/api/v1"

// NewHandler returns the status API of svr: liveness, Prometheus metrics and a read-only view of the board.
func NewHandler(svr *server.Server) http.Handler {
	rd := render.New(render.Options{
		IndentJSON: true,
	})

	router := mux.NewRouter()
	// Titles may contain '/', so route on the escaped path and unescape in the handlers.
	router.UseEncodedPath()

	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	notesHandler := newNotesHandler(svr, rd)
	apiRouter := router.PathPrefix(apiPrefix).Subrouter()
	apiRouter.HandleFunc("/notes", notesHandler.List).Methods("GET")
	apiRouter.HandleFunc("/notes/{title}", notesHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/stats", notesHandler.Stats).Methods("GET")

	return router
}
