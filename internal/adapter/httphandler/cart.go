package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/internal/core/service"
)

// POST v1/carts (201 Created)
// GET v1/carts/{id} (200 OK)
// POST v1/carts/{id}/items JSON [CartItem] (200 OK, 400 Bad request)
// PATCH v1/carts/{id}/items JSON {product_id, variant_id, quantity} (200 OK)
// DELETE v1/carts/{id}/items JSON {product_id, variant_id} (200 OK)
// DELETE v1/carts/{id} (200 OK)

type CartHandler struct {
	carts port.CartManager
}

func RegisterCart(mux *http.ServeMux, carts port.CartManager) {
	h := CartHandler{carts}
	mux.HandleFunc("POST /v1/carts", h.PostCart)
	mux.HandleFunc("GET /v1/carts/{id}", h.GetCart)
	mux.HandleFunc("POST /v1/carts/{id}/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/carts/{id}/items", h.PatchItem)
	mux.HandleFunc("DELETE /v1/carts/{id}/items", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/carts/{id}", h.DeleteCart)
}

func (h CartHandler) PostCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCart"
	log := slog.With("op", op)

	c, err := h.carts.CreateCart(r.Context())
	if err != nil {
		log.Error("failed to create cart", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusCreated, cartFromDomain(c))
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	c, err := h.carts.GetCart(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Error("failed to get cart", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var item CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.carts.AddItem(
		r.Context(), r.PathValue("id"), domain.CartItem(item),
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			http.Error(w, "invalid quantity", http.StatusBadRequest)
			return
		}
		log.Error("failed to add cart item", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var body struct {
		ProductID int64  `json:"product_id"`
		VariantID string `json:"variant_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.carts.UpdateQuantity(
		r.Context(), r.PathValue("id"),
		body.ProductID, body.VariantID, body.Quantity,
	)
	if err != nil {
		log.Error("failed to update cart item", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	var body struct {
		ProductID int64  `json:"product_id"`
		VariantID string `json:"variant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.carts.RemoveItem(
		r.Context(), r.PathValue("id"), body.ProductID, body.VariantID,
	)
	if err != nil {
		log.Error("failed to remove cart item", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	c, err := h.carts.ClearCart(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Error("failed to clear cart", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, cartFromDomain(c))
}
