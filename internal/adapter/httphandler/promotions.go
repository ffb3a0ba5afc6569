package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

// GET v1/promotions/{location} (200 OK, 204 No content)
// PUT v1/promotions/{location} JSON Promotion (200 OK, 400 Bad request)

type PromotionsHandler struct {
	promotions port.PromotionManager
}

func RegisterPromotions(mux *http.ServeMux, promotions port.PromotionManager) {
	h := PromotionsHandler{promotions}
	mux.HandleFunc("GET /v1/promotions/{location}", h.GetPromotion)
	mux.HandleFunc("PUT /v1/promotions/{location}", h.PutPromotion)
}

func (h PromotionsHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	const op = "PromotionsHandler.GetPromotion"
	log := slog.With("op", op)

	p, err := h.promotions.GetPromotion(r.Context(), r.PathValue("location"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Error("failed to get promotion", "err", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, log, http.StatusOK, promotionFromDomain(p))
}

func (h PromotionsHandler) PutPromotion(w http.ResponseWriter, r *http.Request) {
	const op = "PromotionsHandler.PutPromotion"
	log := slog.With("op", op)

	var body Promotion
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	body.Location = r.PathValue("location")

	p, err := h.promotions.UpdatePromotion(r.Context(), domain.Promotion(body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "promotion not found", http.StatusNotFound)
			return
		}
		log.Error("failed to update promotion", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, promotionFromDomain(p))
}
