package domain

import (
	"context"
	"time"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, phoneNumber string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*User, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// VerificationRepository определяет методы для работы с кодами подтверждения
type VerificationRepository interface {
	CreateCode(ctx context.Context, phoneNumber, code string, expiresAt time.Time) error
	// ConsumeCode помечает код использованным. Возвращает ErrInvalidCode,
	// если подходящего неиспользованного кода нет или он истек.
	ConsumeCode(ctx context.Context, phoneNumber, code string) error
}

// ProductRepository определяет методы для работы с каталогом
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CartRepository определяет методы для работы с корзиной
type CartRepository interface {
	GetCart(ctx context.Context, userID int64) (*Cart, error)
	AddItem(ctx context.Context, userID int64, item CartItemInput) (*Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID int64, quantity int, totalPrice, earnedBonus int64) (*Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, userID, totalAmount, usedBonus, totalBonus int64, items []OrderItemInput) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	// UpdateOrderStatus переводит заказ из статуса from в to.
	// Возвращает ErrOrderStateConflict, если заказ уже не в статусе from.
	UpdateOrderStatus(ctx context.Context, id int64, from, to OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
	GetUnsettledOrders(ctx context.Context, limit int) ([]*Order, error)
	// SettleOrder одной транзакцией выставляет отметку расчета и прибавляет
	// amount к накопленным тратам пользователя. Отметка ставится ровно один
	// раз, повторный вызов возвращает ErrOrderAlreadySettled без прибавки.
	SettleOrder(ctx context.Context, orderID, userID, amount int64) error
}

// LedgerRepository определяет атомарные операции над бонусным счетом.
// Каждая операция выполняется в одной транзакции БД под блокировкой
// по пользователю: чтение баланса, проверка и запись неделимы.
type LedgerRepository interface {
	Credit(ctx context.Context, userID, amount int64, entryType LedgerEntryType, description string, orderID *int64) (*LedgerEntry, error)
	Debit(ctx context.Context, userID, amount int64, description string, orderID *int64) (*LedgerEntry, error)
	// Promote условно переводит пользователя с уровня from на to и начисляет
	// bonus баллов одной транзакцией. Возвращает ErrLevelChanged, если
	// текущий уровень уже не from. При bonus = 0 запись не создается.
	Promote(ctx context.Context, userID int64, from, to BonusLevel, bonus int64, description string) (*LedgerEntry, error)
	ListRecentEntries(ctx context.Context, userID int64, limit int) ([]*LedgerEntry, error)
}

// StatsRepository определяет агрегатные запросы для админ-панели
type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
	GetPopularProducts(ctx context.Context, limit int) ([]*PopularProduct, error)
	GetPeriodStats(ctx context.Context, days int) (*PeriodStats, error)
}

// AuthService определяет методы аутентификации по номеру телефона
type AuthService interface {
	RequestCode(ctx context.Context, phoneNumber string) (string, error)
	VerifyCode(ctx context.Context, phoneNumber, code string) (*LoginResult, error)
}

// UserService определяет методы работы с профилем
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*UserProfile, error)
}

// ProductService определяет методы работы с каталогом
type ProductService interface {
	List(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, input ProductInput) (*Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

// CartService определяет методы работы с корзиной
type CartService interface {
	GetCart(ctx context.Context, userID int64) (*Cart, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*Cart, error)
	Clear(ctx context.Context, userID int64) error
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	Create(ctx context.Context, userID, bonusAmount int64) (*Order, error)
	GetOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*Order, error)
	Cancel(ctx context.Context, userID, orderID int64) (*Order, error)
	Complete(ctx context.Context, orderID int64) error
}

// BonusService определяет операции движка лояльности
type BonusService interface {
	ComputeAccrual(level BonusLevel, amount int64, bonusPercent int) (int64, error)
	Credit(ctx context.Context, userID, amount int64, entryType LedgerEntryType, description string, orderID *int64) (*LedgerEntry, error)
	Debit(ctx context.Context, userID, amount, orderID int64) (*LedgerEntry, error)
	Refund(ctx context.Context, userID, amount, orderID int64) (*LedgerEntry, error)
	EvaluatePromotion(ctx context.Context, userID int64) ([]*LedgerEntry, error)
	GetSummary(ctx context.Context, userID int64, limit int) (*BonusSummary, error)
}

// AdminService определяет методы админ-панели
type AdminService interface {
	Login(ctx context.Context, password string) (string, error)
	GetStats(ctx context.Context) (*Stats, error)
	GetPopularProducts(ctx context.Context, limit int) ([]*PopularProduct, error)
	GetPeriodStats(ctx context.Context, days int) (*PeriodStats, error)
}

// PreorderService определяет методы приема предзаказов
type PreorderService interface {
	Submit(ctx context.Context, req PreorderRequest) error
}

// SMSSender определяет шлюз отправки SMS
type SMSSender interface {
	SendVerificationCode(ctx context.Context, phoneNumber, code string) error
}

// MailSender определяет шлюз отправки почты
type MailSender interface {
	SendPreorder(ctx context.Context, req PreorderRequest) error
}
