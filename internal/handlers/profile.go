package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	userService domain.UserService
	logger      *zap.Logger
}

func NewProfileHandler(userService domain.UserService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get profile", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Birthday *string `json:"birthday"`
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	upd := domain.ProfileUpdate{Name: req.Name}
	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		upd.Birthday = &birthday
	}

	profile, err := h.userService.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profile)
}
