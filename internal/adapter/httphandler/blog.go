package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

// GET v1/blog/posts?limit= (200 OK)
// GET v1/blog/posts/{slug} (200 OK, 404 Not found)

type BlogHandler struct {
	blog port.BlogProvider
}

func RegisterBlog(mux *http.ServeMux, blog port.BlogProvider) {
	h := BlogHandler{blog}
	mux.HandleFunc("GET /v1/blog/posts", h.GetPosts)
	mux.HandleFunc("GET /v1/blog/posts/{slug}", h.GetPost)
}

func (h BlogHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	const op = "BlogHandler.GetPosts"
	log := slog.With("op", op)

	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	vs, err := h.blog.LatestPosts(r.Context(), limit)
	if err != nil {
		log.Error("failed to list posts", "err", err)
		vs = nil
	}

	posts := make([]BlogPost, len(vs))
	for i := range vs {
		posts[i] = postFromDomain(vs[i])
	}
	writeJSON(w, log, http.StatusOK, posts)
}

func (h BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	const op = "BlogHandler.GetPost"
	log := slog.With("op", op)

	p, err := h.blog.GetPost(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.Error("failed to get post", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, postFromDomain(p))
}
