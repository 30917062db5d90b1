package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type createOrderRequest struct {
	BonusAmount int64 `json:"bonusAmount"`
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, req.BonusAmount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrCartEmpty) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
			return
		}
		h.logger.Error("failed to create order", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, ok := parseIDParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get order", zap.Error(err), zap.Int64("order_id", orderID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, ok := parseIDParam(r, "id")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.Cancel(r.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrOrderStateConflict) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to cancel order", zap.Error(err), zap.Int64("order_id", orderID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}
