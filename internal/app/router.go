package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/muffme/bakery-backend/internal/handlers"
	"github.com/muffme/bakery-backend/internal/utils/jwt"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/auth/request-code", deps.handlers.auth.RequestCode)
	r.Post("/api/auth/verify-code", deps.handlers.auth.VerifyCode)
	r.Get("/api/products", deps.handlers.products.List)
	r.Get("/api/products/{id}", deps.handlers.products.Get)
	r.Post("/api/preorder", deps.handlers.preorder.Submit)
	r.Post("/api/admin/login", deps.handlers.admin.Login)

	// Эндпоинты пользователя
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/users/me", deps.handlers.profile.GetProfile)
		r.Patch("/api/users/me", deps.handlers.profile.UpdateProfile)
		r.Get("/api/users/me/bonus", deps.handlers.bonus.GetSummary)

		r.Get("/api/cart", deps.handlers.cart.GetCart)
		r.Post("/api/cart/items", deps.handlers.cart.AddItem)
		r.Patch("/api/cart/items/{productID}", deps.handlers.cart.UpdateItem)
		r.Delete("/api/cart/items/{productID}", deps.handlers.cart.RemoveItem)
		r.Delete("/api/cart", deps.handlers.cart.Clear)

		r.Post("/api/orders", deps.handlers.orders.Create)
		r.Get("/api/orders", deps.handlers.orders.List)
		r.Get("/api/orders/{id}", deps.handlers.orders.Get)
		r.Post("/api/orders/{id}/cancel", deps.handlers.orders.Cancel)
	})

	// Эндпоинты админ-панели
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.AdminMiddleware())

		r.Post("/api/admin/products", deps.handlers.products.Create)
		r.Put("/api/admin/products/{id}", deps.handlers.products.Update)
		r.Delete("/api/admin/products/{id}", deps.handlers.products.Delete)

		r.Post("/api/admin/orders/{id}/complete", deps.handlers.admin.CompleteOrder)

		r.Get("/api/admin/stats", deps.handlers.admin.GetStats)
		r.Get("/api/admin/stats/popular", deps.handlers.admin.GetPopularProducts)
		r.Get("/api/admin/stats/period", deps.handlers.admin.GetPeriodStats)
	})
}
