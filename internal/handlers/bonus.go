package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type BonusHandler struct {
	bonusService domain.BonusService
	logger       *zap.Logger
}

func NewBonusHandler(bonusService domain.BonusService, logger *zap.Logger) *BonusHandler {
	return &BonusHandler{
		bonusService: bonusService,
		logger:       logger,
	}
}

// GetSummary возвращает баланс, уровень, прогресс и последние записи
// истории. Параметр limit ограничивает число записей.
func (h *BonusHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	summary, err := h.bonusService.GetSummary(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get bonus summary", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}
