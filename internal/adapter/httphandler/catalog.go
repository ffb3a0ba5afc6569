package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

// GET v1/products?q=&category=&brand=&badge=&min_price=&max_price=&sort= (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/products/{id}/related?limit= (200 OK, 404 Not found)
// GET v1/catalog/facets (200 OK)

const defaultRelatedLimit = 4

type CatalogHandler struct {
	catalog port.CatalogProvider
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogProvider) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{id}/related", h.GetRelated)
	mux.HandleFunc("GET /v1/catalog/facets", h.GetFacets)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	filter := parseCatalogFilter(r)

	ps, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		log.Error("failed to list products", "err", err)
		ps = nil
	}

	if ps == nil {
		ps = []domain.Product{}
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Error("failed to get product", "productID", id, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, productFromDomain(p))
}

func (h CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetRelated"
	log := slog.With("op", op)

	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	limit := defaultRelatedLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	ps, err := h.catalog.RelatedProducts(r.Context(), id, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Error("failed to get related products", "productID", id, "err", err)
		ps = nil
	}

	if ps == nil {
		ps = []domain.Product{}
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFacets"
	log := slog.With("op", op)

	f, err := h.catalog.Facets(r.Context())
	if err != nil {
		log.Error("failed to get facets", "err", err)
		f = domain.CatalogFacets{}
	}

	for _, s := range []*[]string{&f.Categories, &f.Brands, &f.Badges} {
		if *s == nil {
			*s = []string{}
		}
	}
	writeJSON(w, log, http.StatusOK, CatalogFacets(f))
}

func parseCatalogFilter(r *http.Request) domain.CatalogFilter {
	q := r.URL.Query()
	f := domain.CatalogFilter{
		Query:      q.Get("q"),
		Categories: q["category"],
		Brands:     q["brand"],
		Badges:     q["badge"],
		SortBy:     domain.SortOption(q.Get("sort")),
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil && v > 0 {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil && v > 0 {
		f.MaxPrice = v
	}
	return f
}
