package domain

import "errors"

// Ошибки пользователей и аутентификации
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidCode  = errors.New("invalid or expired verification code")
)

// Ошибки бонусного счета
var (
	ErrInsufficientBalance = errors.New("insufficient bonus balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	// ErrLevelChanged возвращается, когда условное обновление уровня не нашло
	// ожидаемый текущий уровень: параллельная операция успела его изменить.
	ErrLevelChanged = errors.New("bonus level changed concurrently")
	// ErrDuplicateEntry возвращается при нарушении уникальности начисления
	// за заказ (повторное EARNED_FROM_PURCHASE по одному заказу).
	ErrDuplicateEntry = errors.New("ledger entry already exists for this order")
)

// Ошибки каталога и корзины
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStateConflict возвращается, когда статус заказа уже не позволяет
	// запрошенный переход (например, отмена не-PENDING заказа).
	ErrOrderStateConflict  = errors.New("order state does not allow this transition")
	ErrOrderAlreadySettled = errors.New("order already settled")
)

// ErrInvalidInput возвращается при некорректных данных запроса
var ErrInvalidInput = errors.New("invalid input")

// Ошибки админ-панели
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)
