package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/muffme/bakery-backend/internal/utils/jwt"
	"github.com/muffme/bakery-backend/internal/utils/phone"
)

const (
	codeTTL = 15 * time.Minute
	// devCode принимается в режиме разработки вместо отправленного по SMS
	devCode = "1234"
)

// AuthUserRepository определяет методы работы с пользователями для аутентификации
type AuthUserRepository interface {
	CreateUser(ctx context.Context, phoneNumber string) (*domain.User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, userID int64) error
}

// VerificationRepository определяет хранилище одноразовых кодов
type VerificationRepository interface {
	CreateCode(ctx context.Context, phoneNumber, code string, expiresAt time.Time) error
	ConsumeCode(ctx context.Context, phoneNumber, code string) error
}

// ProfileProvider собирает профиль пользователя для ответа на вход
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// AuthService реализует вход по номеру телефона и SMS-коду
type AuthService struct {
	userRepo         AuthUserRepository
	verificationRepo VerificationRepository
	profiles         ProfileProvider
	smsSender        domain.SMSSender
	jwtManager       *jwt.Manager
	devMode          bool
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo AuthUserRepository,
	verificationRepo VerificationRepository,
	profiles ProfileProvider,
	smsSender domain.SMSSender,
	jwtManager *jwt.Manager,
	devMode bool,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		profiles:         profiles,
		smsSender:        smsSender,
		jwtManager:       jwtManager,
		devMode:          devMode,
	}
}

// RequestCode генерирует код подтверждения, сохраняет его и отправляет по SMS.
// В режиме разработки SMS не отправляется, код возвращается в сообщении.
// При сбое SMS-шлюза сохраненный код остается действительным и тоже
// возвращается в сообщении.
func (s *AuthService) RequestCode(ctx context.Context, rawPhone string) (string, error) {
	normalized, ok := phone.Normalize(rawPhone)
	if !ok {
		return "", domain.ErrInvalidPhone
	}

	code, err := s.generateCode()
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate code: %w", err)
	}

	if err := s.verificationRepo.CreateCode(ctx, normalized, code, time.Now().Add(codeTTL)); err != nil {
		return "", fmt.Errorf("auth service: failed to store code: %w", err)
	}

	if s.devMode {
		return fmt.Sprintf("Verification code is: %s. This code will always work in development.", devCode), nil
	}

	if err := s.smsSender.SendVerificationCode(ctx, normalized, code); err != nil {
		return fmt.Sprintf("Verification code is: %s. Failed to send SMS.", code), nil
	}

	return "Verification code sent successfully", nil
}

// VerifyCode проверяет код и выдает JWT. Пользователь с новым номером
// создается автоматически, повторный вход обновляет last_login_at.
func (s *AuthService) VerifyCode(ctx context.Context, rawPhone, code string) (*domain.LoginResult, error) {
	normalized, ok := phone.Normalize(rawPhone)
	if !ok {
		return nil, domain.ErrInvalidPhone
	}

	if !(s.devMode && code == devCode) {
		if err := s.verificationRepo.ConsumeCode(ctx, normalized, code); err != nil {
			if errors.Is(err, domain.ErrInvalidCode) {
				return nil, err
			}
			return nil, fmt.Errorf("auth service: failed to consume code: %w", err)
		}
	}

	isNew := false
	user, err := s.userRepo.GetUserByPhone(ctx, normalized)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.userRepo.CreateUser(ctx, normalized)
		isNew = true
		if errors.Is(err, domain.ErrUserExists) {
			// Параллельная регистрация с того же номера
			user, err = s.userRepo.GetUserByPhone(ctx, normalized)
			isNew = false
		}
	}
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to get or create user: %w", err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("auth service: failed to update last login for user %d: %w", user.ID, err)
	}

	token, err := s.jwtManager.Generate(user.ID, domain.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to build profile for user %d: %w", user.ID, err)
	}

	return &domain.LoginResult{
		AccessToken: token,
		User:        profile,
		IsNew:       isNew,
	}, nil
}

func (s *AuthService) generateCode() (string, error) {
	if s.devMode {
		return devCode, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
