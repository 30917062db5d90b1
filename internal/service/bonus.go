package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/muffme/bakery-backend/internal/domain"
)

// DefaultHistoryLimit задает число записей истории в сводке по умолчанию
const DefaultHistoryLimit = 10

// BonusUserRepository определяет методы чтения пользователей для движка
type BonusUserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// LedgerRepository определяет атомарные операции над бонусным счетом
type LedgerRepository interface {
	Credit(ctx context.Context, userID, amount int64, entryType domain.LedgerEntryType, description string, orderID *int64) (*domain.LedgerEntry, error)
	Debit(ctx context.Context, userID, amount int64, description string, orderID *int64) (*domain.LedgerEntry, error)
	Promote(ctx context.Context, userID int64, from, to domain.BonusLevel, bonus int64, description string) (*domain.LedgerEntry, error)
	ListRecentEntries(ctx context.Context, userID int64, limit int) ([]*domain.LedgerEntry, error)
}

// BonusService реализует движок лояльности: начисление и списание баллов,
// повышение уровня и сводка по счету. Таблица уровней неизменяема
// и передается при создании.
type BonusService struct {
	tiers      *domain.TierTable
	userRepo   BonusUserRepository
	ledgerRepo LedgerRepository
}

// NewBonusService создает новый BonusService
func NewBonusService(tiers *domain.TierTable, userRepo BonusUserRepository, ledgerRepo LedgerRepository) *BonusService {
	return &BonusService{
		tiers:      tiers,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

// ComputeAccrual считает баллы за покупку: floor от суммы, умноженной на
// процент продукта и множитель уровня. Дробные баллы не начисляются.
// Чистая функция от аргументов и таблицы уровней.
func (s *BonusService) ComputeAccrual(level domain.BonusLevel, amount int64, bonusPercent int) (int64, error) {
	if amount < 0 {
		return 0, domain.ErrInvalidAmount
	}
	if bonusPercent < 0 || bonusPercent > 100 {
		return 0, fmt.Errorf("bonus service: bonus percent %d out of range", bonusPercent)
	}

	multiplier, err := s.tiers.Multiplier(level)
	if err != nil {
		return 0, fmt.Errorf("bonus service: %w", err)
	}

	points := math.Floor(float64(amount) * (float64(bonusPercent) / 100.0) * multiplier)
	return int64(points), nil
}

// Credit начисляет баллы на счет пользователя
func (s *BonusService) Credit(ctx context.Context, userID, amount int64, entryType domain.LedgerEntryType, description string, orderID *int64) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	entry, err := s.ledgerRepo.Credit(ctx, userID, amount, entryType, description, orderID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, err
		}
		return nil, fmt.Errorf("bonus service: failed to credit %d points to user %d: %w", amount, userID, err)
	}

	return entry, nil
}

// Debit списывает баллы при оплате заказа. Списание сверх текущего баланса
// завершается ErrInsufficientBalance, баланс при этом не меняется.
func (s *BonusService) Debit(ctx context.Context, userID, amount, orderID int64) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	description := fmt.Sprintf("Spent %d bonus points on order #%d", amount, orderID)
	entry, err := s.ledgerRepo.Debit(ctx, userID, amount, description, &orderID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInsufficientBalance) {
			return nil, err
		}
		return nil, fmt.Errorf("bonus service: failed to debit %d points from user %d: %w", amount, userID, err)
	}

	return entry, nil
}

// Refund возвращает баллы, списанные за отмененный заказ
func (s *BonusService) Refund(ctx context.Context, userID, amount, orderID int64) (*domain.LedgerEntry, error) {
	description := fmt.Sprintf("Refund for cancelled order #%d", orderID)
	return s.Credit(ctx, userID, amount, domain.EntryTypeRefund, description, &orderID)
}

// EvaluatePromotion повышает уровень пользователя, пока накопленная сумма
// покупок проходит очередной порог. Одна крупная покупка может поднять
// сразу несколько уровней; за каждый пройденный порог создается отдельная
// запись LEVEL_UP_BONUS. Понижение уровня невозможно.
func (s *BonusService) EvaluatePromotion(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	var entries []*domain.LedgerEntry

	for {
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("bonus service: failed to get user %d: %w", userID, err)
		}

		next, ok, err := s.tiers.Next(user.BonusLevel)
		if err != nil {
			return nil, fmt.Errorf("bonus service: %w", err)
		}
		if !ok {
			// Максимальный уровень достигнут
			return entries, nil
		}
		if user.TotalSpent < next.MinimumSpend {
			return entries, nil
		}

		description := fmt.Sprintf("Level up bonus for reaching %s level", next.Level)
		entry, err := s.ledgerRepo.Promote(ctx, userID, user.BonusLevel, next.Level, next.PromotionBonus, description)
		if err != nil {
			// Уровень успела изменить параллельная операция, перечитываем
			if errors.Is(err, domain.ErrLevelChanged) {
				continue
			}
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("bonus service: failed to promote user %d: %w", userID, err)
		}

		if entry != nil {
			entries = append(entries, entry)
		}
	}
}

// GetSummary возвращает баланс, уровень, прогресс до следующего уровня
// и последние записи истории, новые первыми
func (s *BonusService) GetSummary(ctx context.Context, userID int64, limit int) (*domain.BonusSummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("bonus service: failed to get user %d: %w", userID, err)
	}

	entries, err := s.ledgerRepo.ListRecentEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("bonus service: failed to get history for user %d: %w", userID, err)
	}
	if entries == nil {
		entries = []*domain.LedgerEntry{}
	}

	summary := &domain.BonusSummary{
		Balance:       user.BonusBalance,
		Level:         user.BonusLevel,
		TotalSpent:    user.TotalSpent,
		RecentHistory: entries,
	}

	next, ok, err := s.tiers.Next(user.BonusLevel)
	if err != nil {
		return nil, fmt.Errorf("bonus service: %w", err)
	}
	if ok {
		summary.Progress = &domain.TierProgress{
			CurrentSpent:  user.TotalSpent,
			NextLevel:     next.Level,
			RequiredSpent: next.MinimumSpend,
			Remaining:     next.MinimumSpend - user.TotalSpent,
		}
	}

	return summary, nil
}
