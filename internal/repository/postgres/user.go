package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muffme/bakery-backend/internal/domain"
)

const userColumns = `id, phone_number, name, birthday, bonus_balance, bonus_level, total_spent, created_at, updated_at, last_login_at`

// UserRepository реализует репозиторий пользователей.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.PhoneNumber, &user.Name, &user.Birthday,
		&user.BonusBalance, &user.BonusLevel, &user.TotalSpent,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser создает нового пользователя по номеру телефона
func (r *UserRepository) CreateUser(ctx context.Context, phoneNumber string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (phone_number)
		 VALUES ($1)
		 RETURNING `+userColumns,
		phoneNumber,
	))

	if err != nil {
		// Уникальность номера телефона (код ошибки PostgreSQL)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", phoneNumber, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}

// GetUserByPhone получает пользователя по номеру телефона
func (r *UserRepository) GetUserByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone_number = $1`,
		phoneNumber,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by phone %q: %w", phoneNumber, err)
	}

	return user, nil
}

// UpdateProfile обновляет заданные поля профиля, nil поля не трогает
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name),
		     birthday = COALESCE($3, birthday),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, upd.Name, upd.Birthday,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to update profile for user %d: %w", id, err)
	}

	return user, nil
}

// TouchLastLogin отмечает время последнего входа
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to touch last login for user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
