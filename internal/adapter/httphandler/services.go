package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

// GET v1/services/categories (200 OK)
// POST v1/services/categories JSON ServiceCategory (201 Created, 400 Bad request)
// PUT v1/services/categories/{id} (200 OK, 404 Not found)
// DELETE v1/services/categories/{id} (204 No content, 404 Not found)
// GET v1/services?category_id= (200 OK)
// GET v1/services/{id} (200 OK, 404 Not found)
// POST v1/services JSON DiveService (201 Created, 400 Bad request)
// PUT v1/services/{id} (200 OK, 404 Not found)
// DELETE v1/services/{id} (204 No content, 404 Not found)

type ServicesHandler struct {
	services port.ServicesManager
}

func RegisterServices(mux *http.ServeMux, services port.ServicesManager) {
	h := ServicesHandler{services}
	mux.HandleFunc("GET /v1/services/categories", h.GetCategories)
	mux.HandleFunc("POST /v1/services/categories", h.PostCategory)
	mux.HandleFunc("PUT /v1/services/categories/{id}", h.PutCategory)
	mux.HandleFunc("DELETE /v1/services/categories/{id}", h.DeleteCategory)
	mux.HandleFunc("GET /v1/services", h.GetServices)
	mux.HandleFunc("GET /v1/services/{id}", h.GetService)
	mux.HandleFunc("POST /v1/services", h.PostService)
	mux.HandleFunc("PUT /v1/services/{id}", h.PutService)
	mux.HandleFunc("DELETE /v1/services/{id}", h.DeleteService)
}

func (h ServicesHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.GetCategories"
	log := slog.With("op", op)

	vs, err := h.services.ListCategories(r.Context())
	if err != nil {
		log.Error("failed to list categories", "err", err)
		vs = nil
	}

	cs := make([]ServiceCategory, len(vs))
	for i := range vs {
		cs[i] = categoryFromDomain(vs[i])
	}
	writeJSON(w, log, http.StatusOK, cs)
}

func (h ServicesHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.PostCategory"
	log := slog.With("op", op)

	var body ServiceCategory
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.services.CreateCategory(
		r.Context(), domain.ServiceCategory(body),
	)
	if err != nil {
		log.Error("failed to create category", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusCreated, categoryFromDomain(c))
}

func (h ServicesHandler) PutCategory(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.PutCategory"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var body ServiceCategory
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	body.ID = id

	c, err := h.services.UpdateCategory(
		r.Context(), domain.ServiceCategory(body),
	)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		log.Error("failed to update category", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, categoryFromDomain(c))
}

func (h ServicesHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.DeleteCategory"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.services.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		log.Error("failed to delete category", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h ServicesHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.GetServices"
	log := slog.With("op", op)

	var categoryID int64
	if s := r.URL.Query().Get("category_id"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			categoryID = n
		}
	}

	vs, err := h.services.ListServices(r.Context(), categoryID)
	if err != nil {
		log.Error("failed to list services", "err", err)
		vs = nil
	}

	ss := make([]DiveService, len(vs))
	for i := range vs {
		ss[i] = serviceFromDomain(vs[i])
	}
	writeJSON(w, log, http.StatusOK, ss)
}

func (h ServicesHandler) GetService(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.GetService"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}

	s, err := h.services.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Error("failed to get service", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, serviceFromDomain(s))
}

func (h ServicesHandler) PostService(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.PostService"
	log := slog.With("op", op)

	var body DiveService
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	s, err := h.services.CreateService(r.Context(), domain.DiveService(body))
	if err != nil {
		log.Error("failed to create service", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusCreated, serviceFromDomain(s))
}

func (h ServicesHandler) PutService(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.PutService"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}

	var body DiveService
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	body.ID = id

	s, err := h.services.UpdateService(r.Context(), domain.DiveService(body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Error("failed to update service", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, serviceFromDomain(s))
}

func (h ServicesHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	const op = "ServicesHandler.DeleteService"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid service id", http.StatusBadRequest)
		return
	}

	if err := h.services.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		log.Error("failed to delete service", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
