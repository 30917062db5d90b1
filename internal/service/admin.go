package service

import (
	"context"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/muffme/bakery-backend/internal/utils/jwt"
	"github.com/muffme/bakery-backend/internal/utils/password"
)

// DefaultPopularLimit задает размер рейтинга продаж по умолчанию
const DefaultPopularLimit = 10

// StatsRepository определяет агрегатные запросы для админ-панели
type StatsRepository interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	GetPopularProducts(ctx context.Context, limit int) ([]*domain.PopularProduct, error)
	GetPeriodStats(ctx context.Context, days int) (*domain.PeriodStats, error)
}

// AdminService реализует вход в админ-панель и статистику продаж.
// Админ один, пароль хранится хешем в конфигурации.
type AdminService struct {
	statsRepo    StatsRepository
	hasher       password.Hasher
	jwtManager   *jwt.Manager
	passwordHash string
}

// NewAdminService создает новый AdminService
func NewAdminService(statsRepo StatsRepository, hasher password.Hasher, jwtManager *jwt.Manager, passwordHash string) *AdminService {
	return &AdminService{
		statsRepo:    statsRepo,
		hasher:       hasher,
		jwtManager:   jwtManager,
		passwordHash: passwordHash,
	}
}

// Login проверяет пароль админа и выдает токен с ролью ADMIN.
// Пустой хеш в конфигурации отключает вход.
func (s *AdminService) Login(ctx context.Context, pass string) (string, error) {
	if s.passwordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Check(s.passwordHash, pass); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(0, domain.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("admin service: failed to generate token: %w", err)
	}
	return token, nil
}

// GetStats возвращает сводные показатели магазина
func (s *AdminService) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin service: failed to get stats: %w", err)
	}
	return stats, nil
}

// GetPopularProducts возвращает рейтинг продуктов по числу продаж
func (s *AdminService) GetPopularProducts(ctx context.Context, limit int) ([]*domain.PopularProduct, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	products, err := s.statsRepo.GetPopularProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("admin service: failed to get popular products: %w", err)
	}
	if products == nil {
		products = []*domain.PopularProduct{}
	}
	return products, nil
}

// GetPeriodStats возвращает показатели за последние days дней
func (s *AdminService) GetPeriodStats(ctx context.Context, days int) (*domain.PeriodStats, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}

	stats, err := s.statsRepo.GetPeriodStats(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("admin service: failed to get period stats: %w", err)
	}
	return stats, nil
}
