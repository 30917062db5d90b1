package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muffme/bakery-backend/internal/domain"
)

// LedgerRepository реализует domain.LedgerRepository.
// Все мутирующие операции выполняются в одной транзакции под advisory lock
// по пользователю: параллельные операции над одним счетом сериализуются,
// операции над разными счетами идут независимо.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Credit начисляет баллы: вставка записи журнала и увеличение баланса
// применяются вместе или не применяются вовсе
func (r *LedgerRepository) Credit(ctx context.Context, userID, amount int64, entryType domain.LedgerEntryType, description string, orderID *int64) (*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin credit transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users
		 SET bonus_balance = bonus_balance + $2, updated_at = now()
		 WHERE id = $1`,
		userID, amount,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to credit balance for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	entry, err := insertLedgerEntry(ctx, tx, userID, amount, entryType, description, orderID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit credit for user %d: %w", userID, err)
	}

	return entry, nil
}

// Debit списывает баллы. Чтение баланса, проверка достаточности, запись
// журнала и уменьшение баланса выполняются в одной транзакции.
func (r *LedgerRepository) Debit(ctx context.Context, userID, amount int64, description string, orderID *int64) (*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin debit transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	var balance int64
	err = tx.QueryRow(ctx, `SELECT bonus_balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	if balance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	_, err = tx.Exec(ctx,
		`UPDATE users
		 SET bonus_balance = bonus_balance - $2, updated_at = now()
		 WHERE id = $1`,
		userID, amount,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to debit balance for user %d: %w", userID, err)
	}

	entry, err := insertLedgerEntry(ctx, tx, userID, -amount, domain.EntryTypeSpentOnPurchase, description, orderID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit debit for user %d: %w", userID, err)
	}

	return entry, nil
}

// Promote условно переводит пользователя на следующий уровень и начисляет
// разовый бонус. Сравнение с ожидаемым текущим уровнем в WHERE исключает
// повторное повышение при гонке двух проверок.
func (r *LedgerRepository) Promote(ctx context.Context, userID int64, from, to domain.BonusLevel, bonus int64, description string) (*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin promote transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users
		 SET bonus_level = $3, bonus_balance = bonus_balance + $4, updated_at = now()
		 WHERE id = $1 AND bonus_level = $2`,
		userID, from, to, bonus,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to promote user %d to %s: %w", userID, to, err)
	}
	if tag.RowsAffected() == 0 {
		// Либо пользователя нет, либо уровень уже изменила параллельная операция
		var exists bool
		if err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("repository: failed to check user %d: %w", userID, err)
		}
		if !exists {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrLevelChanged
	}

	var entry *domain.LedgerEntry
	if bonus > 0 {
		entry, err = insertLedgerEntry(ctx, tx, userID, bonus, domain.EntryTypeLevelUpBonus, description, nil)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit promotion for user %d: %w", userID, err)
	}

	return entry, nil
}

// ListRecentEntries возвращает последние записи журнала, новые первыми
func (r *LedgerRepository) ListRecentEntries(ctx context.Context, userID int64, limit int) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, order_id, amount, type, description, created_at
		 FROM bonus_ledger
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list ledger entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		entry := &domain.LedgerEntry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.OrderID, &entry.Amount, &entry.Type, &entry.Description, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// insertLedgerEntry вставляет запись журнала внутри открытой транзакции
func insertLedgerEntry(ctx context.Context, tx pgx.Tx, userID, amount int64, entryType domain.LedgerEntryType, description string, orderID *int64) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		UserID:      userID,
		OrderID:     orderID,
		Amount:      amount,
		Type:        entryType,
		Description: description,
	}

	err := tx.QueryRow(ctx,
		`INSERT INTO bonus_ledger (user_id, order_id, amount, type, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		userID, orderID, amount, entryType, description,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("repository: failed to insert ledger entry for user %d: %w", userID, err)
	}

	return entry, nil
}
