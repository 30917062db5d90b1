package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/muffme/bakery-backend/internal/domain"
)

// VerificationRepository реализует хранение кодов подтверждения
type VerificationRepository struct {
	db DBTX
}

// NewVerificationRepository создает новый VerificationRepository
func NewVerificationRepository(db DBTX) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// CreateCode сохраняет код подтверждения с заданным сроком действия
func (r *VerificationRepository) CreateCode(ctx context.Context, phoneNumber, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO verification_codes (phone_number, code, expires_at)
		 VALUES ($1, $2, $3)`,
		phoneNumber, code, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to create verification code for %q: %w", phoneNumber, err)
	}
	return nil
}

// ConsumeCode помечает последний подходящий код использованным.
// Код одноразовый: повторный вызов с тем же кодом вернет ErrInvalidCode.
func (r *VerificationRepository) ConsumeCode(ctx context.Context, phoneNumber, code string) error {
	var id int64
	err := r.db.QueryRow(ctx,
		`UPDATE verification_codes
		 SET is_used = TRUE
		 WHERE id = (
		     SELECT id FROM verification_codes
		     WHERE phone_number = $1 AND code = $2 AND NOT is_used AND expires_at > now()
		     ORDER BY created_at DESC
		     LIMIT 1
		 )
		 RETURNING id`,
		phoneNumber, code,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvalidCode
		}
		return fmt.Errorf("repository: failed to consume verification code for %q: %w", phoneNumber, err)
	}

	return nil
}
