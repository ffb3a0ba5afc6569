package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/suncoast/diveshop/internal/core/port"
)

// GET v1/search?q=query (200 OK)

type SearchHandler struct {
	searcher port.Searcher
}

func RegisterSearch(mux *http.ServeMux, searcher port.Searcher) {
	h := SearchHandler{searcher}
	mux.HandleFunc("GET /v1/search", h.GetResults)
}

func (h SearchHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.GetResults"
	log := slog.With("op", op)

	vs, err := h.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Error("failed to search", "err", err)
		vs = nil
	}

	rs := make([]SearchResult, len(vs))
	for i := range vs {
		rs[i] = SearchResult(vs[i])
	}
	writeJSON(w, log, http.StatusOK, rs)
}
