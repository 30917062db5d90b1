package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type PreorderHandler struct {
	preorderService domain.PreorderService
	logger          *zap.Logger
}

func NewPreorderHandler(preorderService domain.PreorderService, logger *zap.Logger) *PreorderHandler {
	return &PreorderHandler{
		preorderService: preorderService,
		logger:          logger,
	}
}

func (h *PreorderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.PreorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.preorderService.Submit(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) || errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to submit preorder", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
