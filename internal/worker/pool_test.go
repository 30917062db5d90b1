package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	domainmocks "github.com/muffme/bakery-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestPool(t *testing.T) (*Pool, *domainmocks.OrderRepositoryMock, *domainmocks.BonusServiceMock) {
	mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
	mockBonus := domainmocks.NewBonusServiceMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{Workers: 1, QueueSize: 10, ScanInterval: time.Second}
	pool := NewPool(cfg, mockOrderRepo, mockBonus, logger)
	return pool, mockOrderRepo, mockBonus
}

func TestPool_SettleOrder(t *testing.T) {
	ctx := context.Background()

	completed := func() *domain.Order {
		return &domain.Order{
			ID:          7,
			UserID:      1,
			TotalAmount: 1200,
			TotalBonus:  60,
			Status:      domain.OrderStatusCompleted,
		}
	}

	t.Run("Success", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, "Earned 60 bonus points for order #7", &order.ID).
			Return(&domain.LedgerEntry{ID: 1, Amount: 60}, nil).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(nil).Once()
		mockBonus.EXPECT().EvaluatePromotion(mock.Anything, int64(1)).
			Return([]*domain.LedgerEntry{{ID: 2, Amount: 100, Description: "Level up bonus for reaching SILVER level"}}, nil).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Already settled order is skipped", func(t *testing.T) {
		pool, mockOrderRepo, _ := newTestPool(t)
		order := completed()
		settledAt := time.Now()
		order.SettledAt = &settledAt

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Settled by another worker mid-flight", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(nil, domain.ErrDuplicateEntry).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(domain.ErrOrderAlreadySettled).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Duplicate accrual is tolerated", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(nil, domain.ErrDuplicateEntry).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(nil).Once()
		mockBonus.EXPECT().EvaluatePromotion(mock.Anything, int64(1)).Return(nil, nil).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Zero bonus skips credit", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()
		order.TotalBonus = 0

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(nil).Once()
		mockBonus.EXPECT().EvaluatePromotion(mock.Anything, int64(1)).Return(nil, nil).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Missing order is skipped", func(t *testing.T) {
		pool, mockOrderRepo, _ := newTestPool(t)

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(nil, domain.ErrOrderNotFound).Once()

		err := pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Credit error leaves order unsettled", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(nil, errors.New("db error")).Once()

		// Отметка расчета не ставится, заказ будет подобран следующим проходом
		err := pool.settleOrder(ctx, 7)
		assert.Error(t, err)
		mockOrderRepo.AssertNotCalled(t, "SettleOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Retry after credit failure completes settlement", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Twice()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(nil, errors.New("connection reset")).Once()

		err := pool.settleOrder(ctx, 7)
		assert.Error(t, err)

		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(&domain.LedgerEntry{ID: 1, Amount: 60}, nil).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(nil).Once()
		mockBonus.EXPECT().EvaluatePromotion(mock.Anything, int64(1)).Return(nil, nil).Once()

		err = pool.settleOrder(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("Settle error fails settlement", func(t *testing.T) {
		pool, mockOrderRepo, mockBonus := newTestPool(t)
		order := completed()

		mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
		mockBonus.EXPECT().
			Credit(mock.Anything, int64(1), int64(60), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
			Return(&domain.LedgerEntry{ID: 1, Amount: 60}, nil).Once()
		mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(1200)).Return(errors.New("db error")).Once()

		err := pool.settleOrder(ctx, 7)
		assert.Error(t, err)
	})
}

func TestPool_ScanUnsettled(t *testing.T) {
	ctx := context.Background()

	t.Run("Orders are queued", func(t *testing.T) {
		pool, mockOrderRepo, _ := newTestPool(t)

		orders := []*domain.Order{{ID: 1}, {ID: 2}, {ID: 3}}
		mockOrderRepo.EXPECT().GetUnsettledOrders(mock.Anything, 10).Return(orders, nil).Once()

		pool.scanUnsettled(ctx)

		assert.Len(t, pool.queue, 3)
		assert.Equal(t, int64(1), <-pool.queue)
		assert.Equal(t, int64(2), <-pool.queue)
		assert.Equal(t, int64(3), <-pool.queue)
	})

	t.Run("Full queue drops the rest", func(t *testing.T) {
		mockOrderRepo := domainmocks.NewOrderRepositoryMock(t)
		mockBonus := domainmocks.NewBonusServiceMock(t)
		logger, _ := zap.NewDevelopment()
		pool := NewPool(PoolConfig{Workers: 1, QueueSize: 2, ScanInterval: time.Second}, mockOrderRepo, mockBonus, logger)

		orders := []*domain.Order{{ID: 1}, {ID: 2}, {ID: 3}}
		mockOrderRepo.EXPECT().GetUnsettledOrders(mock.Anything, 2).Return(orders, nil).Once()

		pool.scanUnsettled(ctx)

		// Третий заказ не влез и будет подобран следующим проходом
		assert.Len(t, pool.queue, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		pool, mockOrderRepo, _ := newTestPool(t)

		mockOrderRepo.EXPECT().GetUnsettledOrders(mock.Anything, 10).Return(nil, errors.New("db error")).Once()

		pool.scanUnsettled(ctx)

		assert.Empty(t, pool.queue)
	})
}

func TestPool_StartStop(t *testing.T) {
	pool, mockOrderRepo, mockBonus := newTestPool(t)
	ctx, cancel := context.WithCancel(context.Background())

	order := &domain.Order{ID: 7, UserID: 1, TotalAmount: 100, TotalBonus: 5, Status: domain.OrderStatusCompleted}
	mockOrderRepo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil).Once()
	mockBonus.EXPECT().
		Credit(mock.Anything, int64(1), int64(5), domain.EntryTypeEarnedFromPurchase, mock.Anything, &order.ID).
		Return(&domain.LedgerEntry{ID: 1, Amount: 5}, nil).Once()
	mockOrderRepo.EXPECT().SettleOrder(mock.Anything, int64(7), int64(1), int64(100)).Return(nil).Once()
	mockBonus.EXPECT().EvaluatePromotion(mock.Anything, int64(1)).Return(nil, nil).Once()

	pool.Start(ctx)
	pool.queue <- 7

	// Даем воркеру время обработать заказ
	time.Sleep(100 * time.Millisecond)

	cancel()
	pool.Stop()
}
