package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		amount := int64(150)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO bonus_ledger`).
			WithArgs(userID, (*int64)(nil), amount, domain.EntryTypeLevelUpBonus, "Level up bonus for reaching SILVER level").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))
		mock.ExpectCommit()

		entry, err := repo.Credit(ctx, userID, amount, domain.EntryTypeLevelUpBonus, "Level up bonus for reaching SILVER level", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10), entry.ID)
		assert.Equal(t, amount, entry.Amount)
		assert.Equal(t, domain.EntryTypeLevelUpBonus, entry.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		userID := int64(42)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, int64(100)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		entry, err := repo.Credit(ctx, userID, 100, domain.EntryTypeRefund, "Refund for cancelled order #5", nil)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate entry for order", func(t *testing.T) {
		userID := int64(1)
		orderID := int64(7)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, int64(50)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO bonus_ledger`).
			WithArgs(userID, &orderID, int64(50), domain.EntryTypeEarnedFromPurchase, "Earned 50 bonus points for order #7").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		entry, err := repo.Credit(ctx, userID, 50, domain.EntryTypeEarnedFromPurchase, "Earned 50 bonus points for order #7", &orderID)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		entry, err := repo.Credit(ctx, 1, 100, domain.EntryTypeRefund, "Refund for cancelled order #1", nil)
		assert.Error(t, err)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_Debit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		amount := int64(100)
		orderID := int64(3)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT bonus_balance FROM users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"bonus_balance"}).AddRow(int64(250)))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO bonus_ledger`).
			WithArgs(userID, &orderID, -amount, domain.EntryTypeSpentOnPurchase, "Spent 100 bonus points on order #3").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))
		mock.ExpectCommit()

		entry, err := repo.Debit(ctx, userID, amount, "Spent 100 bonus points on order #3", &orderID)
		require.NoError(t, err)
		assert.Equal(t, -amount, entry.Amount)
		assert.Equal(t, domain.EntryTypeSpentOnPurchase, entry.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		userID := int64(1)
		orderID := int64(4)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT bonus_balance FROM users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"bonus_balance"}).AddRow(int64(30)))
		mock.ExpectRollback()

		entry, err := repo.Debit(ctx, userID, 100, "Spent 100 bonus points on order #4", &orderID)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		userID := int64(99)
		orderID := int64(5)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT bonus_balance FROM users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"bonus_balance"}))
		mock.ExpectRollback()

		entry, err := repo.Debit(ctx, userID, 100, "Spent 100 bonus points on order #5", &orderID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_Promote(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		bonus := int64(100)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, domain.LevelStandard, domain.LevelSilver, bonus).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO bonus_ledger`).
			WithArgs(userID, (*int64)(nil), bonus, domain.EntryTypeLevelUpBonus, "Level up bonus for reaching SILVER level").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(20), time.Now()))
		mock.ExpectCommit()

		entry, err := repo.Promote(ctx, userID, domain.LevelStandard, domain.LevelSilver, bonus, "Level up bonus for reaching SILVER level")
		require.NoError(t, err)
		assert.Equal(t, bonus, entry.Amount)
		assert.Equal(t, domain.EntryTypeLevelUpBonus, entry.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero bonus creates no entry", func(t *testing.T) {
		userID := int64(1)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, domain.LevelStandard, domain.LevelSilver, int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		entry, err := repo.Promote(ctx, userID, domain.LevelStandard, domain.LevelSilver, 0, "Level up bonus for reaching SILVER level")
		require.NoError(t, err)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Level changed concurrently", func(t *testing.T) {
		userID := int64(1)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, domain.LevelStandard, domain.LevelSilver, int64(100)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		entry, err := repo.Promote(ctx, userID, domain.LevelStandard, domain.LevelSilver, 100, "Level up bonus for reaching SILVER level")
		assert.ErrorIs(t, err, domain.ErrLevelChanged)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		userID := int64(77)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, domain.LevelStandard, domain.LevelSilver, int64(100)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		entry, err := repo.Promote(ctx, userID, domain.LevelStandard, domain.LevelSilver, 100, "Level up bonus for reaching SILVER level")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, entry)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ListRecentEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		now := time.Now()
		orderID := int64(3)

		rows := pgxmock.NewRows([]string{"id", "user_id", "order_id", "amount", "type", "description", "created_at"}).
			AddRow(int64(2), userID, &orderID, int64(-100), domain.EntryTypeSpentOnPurchase, "Spent 100 bonus points on order #3", now).
			AddRow(int64(1), userID, (*int64)(nil), int64(100), domain.EntryTypeLevelUpBonus, "Level up bonus for reaching SILVER level", now.Add(-time.Hour))

		mock.ExpectQuery(`SELECT id, user_id, order_id, amount, type, description, created_at`).
			WithArgs(userID, 10).
			WillReturnRows(rows)

		entries, err := repo.ListRecentEntries(ctx, userID, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(-100), entries[0].Amount)
		assert.Equal(t, int64(100), entries[1].Amount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, order_id, amount, type, description, created_at`).
			WithArgs(int64(1), 10).
			WillReturnError(errors.New("database error"))

		entries, err := repo.ListRecentEntries(ctx, 1, 10)
		assert.Error(t, err)
		assert.Nil(t, entries)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
