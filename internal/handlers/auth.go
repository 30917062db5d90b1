package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type requestCodeRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type requestCodeResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req requestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	message, err := h.authService.RequestCode(r.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to request code", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, requestCodeResponse{Message: message})
}

type verifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req verifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.authService.VerifyCode(r.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrInvalidCode) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to verify code", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// writeJSON сериализует ответ с заголовком Content-Type
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
