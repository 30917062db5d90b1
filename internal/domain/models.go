package domain

import "time"

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// LedgerEntryType представляет тип записи в бонусной истории
type LedgerEntryType string

const (
	EntryTypeEarnedFromPurchase LedgerEntryType = "EARNED_FROM_PURCHASE"
	EntryTypeSpentOnPurchase    LedgerEntryType = "SPENT_ON_PURCHASE"
	EntryTypeRefund             LedgerEntryType = "REFUND"
	EntryTypeLevelUpBonus       LedgerEntryType = "LEVEL_UP_BONUS"
)

// Role представляет роль в JWT токене
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User представляет пользователя системы
type User struct {
	ID           int64      `json:"id"`
	PhoneNumber  string     `json:"phoneNumber"`
	Name         string     `json:"name"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	BonusBalance int64      `json:"bonusBalance"`
	BonusLevel   BonusLevel `json:"bonusLevel"`
	TotalSpent   int64      `json:"totalSpent"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// ProfileUpdate содержит изменяемые поля профиля
type ProfileUpdate struct {
	Name     *string
	Birthday *time.Time
}

// Product представляет позицию каталога
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	PictureURL   string    `json:"pictureURL"`
	Price        int64     `json:"price"`
	BonusPercent int       `json:"bonusPercent"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProductInput содержит поля для создания или обновления продукта
type ProductInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	PictureURL   string `json:"pictureURL"`
	Price        int64  `json:"price"`
	BonusPercent int    `json:"bonusPercent"`
}

// CartItem представляет позицию корзины с зафиксированной ценой
type CartItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	TotalPrice  int64  `json:"totalPrice"`
	EarnedBonus int64  `json:"earnedBonus"`
}

// Cart представляет корзину пользователя
type Cart struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"-"`
	Items       []*CartItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	TotalBonus  int64       `json:"totalBonus"`
}

// CartItemInput содержит поля добавляемой позиции корзины
type CartItemInput struct {
	ProductID   int64
	Quantity    int
	Price       int64
	TotalPrice  int64
	EarnedBonus int64
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	TotalPrice  int64  `json:"totalPrice"`
	EarnedBonus int64  `json:"earnedBonus"`
}

// OrderItemInput содержит поля позиции при создании заказа
type OrderItemInput struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       int64
	TotalPrice  int64
	EarnedBonus int64
}

// Order представляет заказ пользователя
type Order struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"-"`
	TotalAmount int64        `json:"totalAmount"`
	UsedBonus   int64        `json:"usedBonus"`
	TotalBonus  int64        `json:"totalBonus"`
	Status      OrderStatus  `json:"status"`
	Items       []*OrderItem `json:"items,omitempty"`
	SettledAt   *time.Time   `json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// LedgerEntry представляет неизменяемую запись об изменении бонусного баланса.
// Положительная сумма означает начисление, отрицательная списание. Сумма всех
// записей пользователя равна его текущему балансу.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"-"`
	OrderID     *int64          `json:"orderId,omitempty"`
	Amount      int64           `json:"amount"`
	Type        LedgerEntryType `json:"type"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TierProgress описывает путь до следующего уровня
type TierProgress struct {
	CurrentSpent  int64      `json:"currentSpent"`
	NextLevel     BonusLevel `json:"nextLevel"`
	RequiredSpent int64      `json:"requiredSpent"`
	Remaining     int64      `json:"remaining"`
}

// BonusSummary представляет сводку по бонусному счету пользователя
type BonusSummary struct {
	Balance       int64          `json:"balance"`
	Level         BonusLevel     `json:"level"`
	TotalSpent    int64          `json:"totalSpent"`
	Progress      *TierProgress  `json:"progress"` // nil на максимальном уровне
	RecentHistory []*LedgerEntry `json:"recentHistory"`
}

// PreorderRequest представляет заявку на предзаказ
type PreorderRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PopularProduct представляет продукт в рейтинге продаж
type PopularProduct struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"name"`
	TotalOrdered int64  `json:"totalOrdered"`
}

// Stats представляет сводную статистику для админ-панели
type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalOrders     int64 `json:"totalOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	TotalRevenue    int64 `json:"totalRevenue"`
}

// PeriodStats представляет статистику заказов за период
type PeriodStats struct {
	Days    int   `json:"days"`
	Orders  int64 `json:"orders"`
	Revenue int64 `json:"revenue"`
}

// LoginResult представляет результат входа по коду подтверждения
type LoginResult struct {
	AccessToken string       `json:"accessToken"`
	User        *UserProfile `json:"user"`
	IsNew       bool         `json:"isNew"`
}

// UserProfile представляет профиль пользователя вместе с бонусной сводкой
type UserProfile struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phoneNumber"`
	Birthday    *time.Time    `json:"birthday,omitempty"`
	Bonus       *BonusSummary `json:"bonus"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
