package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService domain.AdminService
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewAdminHandler(adminService domain.AdminService, orderService domain.OrderService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		orderService: orderService,
		logger:       logger,
	}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type adminLoginResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.adminService.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to login admin", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, adminLoginResponse{AccessToken: token})
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get stats", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *AdminHandler) GetPopularProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	products, err := h.adminService.GetPopularProducts(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to get popular products", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, products)
}

func (h *AdminHandler) GetPeriodStats(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	stats, err := h.adminService.GetPeriodStats(r.Context(), days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to get period stats", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

// CompleteOrder переводит заказ в COMPLETED. Начисление баллов выполнит
// воркер расчета.
func (h *AdminHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.orderService.Complete(r.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrOrderStateConflict) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to complete order", zap.Error(err), zap.Int64("order_id", orderID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
