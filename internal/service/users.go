package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muffme/bakery-backend/internal/domain"
)

// maxNameLength ограничивает длину имени в профиле
const maxNameLength = 100

// UserRepository определяет методы работы с пользователями для профиля
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (*domain.User, error)
}

// UserService собирает профиль пользователя вместе с бонусной сводкой
type UserService struct {
	userRepo UserRepository
	bonus    domain.BonusService
}

// NewUserService создает новый UserService
func NewUserService(userRepo UserRepository, bonus domain.BonusService) *UserService {
	return &UserService{
		userRepo: userRepo,
		bonus:    bonus,
	}
}

// GetProfile возвращает профиль пользователя с бонусной сводкой
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to get user %d: %w", userID, err)
	}

	summary, err := s.bonus.GetSummary(ctx, userID, DefaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to get bonus summary for user %d: %w", userID, err)
	}

	return buildProfile(user, summary), nil
}

// UpdateProfile обновляет имя и дату рождения. Поля со значением nil
// не меняются.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.UserProfile, error) {
	if upd.Name != nil && (len(*upd.Name) == 0 || len(*upd.Name) > maxNameLength) {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to update profile for user %d: %w", userID, err)
	}

	summary, err := s.bonus.GetSummary(ctx, userID, DefaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to get bonus summary for user %d: %w", userID, err)
	}

	return buildProfile(user, summary), nil
}

func buildProfile(user *domain.User, summary *domain.BonusSummary) *domain.UserProfile {
	return &domain.UserProfile{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Birthday:    user.Birthday,
		Bonus:       summary,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
