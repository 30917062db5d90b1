package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров расчета завершенных заказов.
// Для каждого заказа в статусе COMPLETED без отметки расчета воркер
// начисляет заработанные баллы, прибавляет сумму заказа к накопленным
// тратам и пересчитывает уровень пользователя.
type Pool struct {
	workers      int
	queue        chan int64
	orderRepo    domain.OrderRepository
	bonus        domain.BonusService
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	scanLimit    int
}

// PoolConfig содержит настройки пула
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	orderRepo domain.OrderRepository,
	bonus domain.BonusService,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      cfg.Workers,
		queue:        make(chan int64, cfg.QueueSize),
		orderRepo:    orderRepo,
		bonus:        bonus,
		logger:       logger,
		scanInterval: cfg.ScanInterval,
		scanLimit:    cfg.QueueSize,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер нерассчитанных заказов
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("settlement worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("settlement worker stopping", zap.Int("worker_id", id))
			return
		case orderID, ok := <-p.queue:
			if !ok {
				return
			}
			if err := p.settleOrder(ctx, orderID); err != nil {
				p.logger.Error("failed to settle order",
					zap.Int64("order_id", orderID),
					zap.Error(err),
				)
			}
		}
	}
}

// scanner периодически сканирует нерассчитанные заказы
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("settlement scanner stopping")
			return
		case <-ticker.C:
			p.scanUnsettled(ctx)
		}
	}
}

// scanUnsettled отправляет нерассчитанные заказы в очередь
func (p *Pool) scanUnsettled(ctx context.Context) {
	orders, err := p.orderRepo.GetUnsettledOrders(ctx, p.scanLimit)
	if err != nil {
		p.logger.Error("failed to get unsettled orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		select {
		case p.queue <- order.ID:
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, возьмем заказ на следующем проходе
			p.logger.Warn("queue is full, skipping order", zap.Int64("order_id", order.ID))
		}
	}
}

// settleOrder рассчитывает один заказ. Начисление выполняется до отметки
// расчета: при сбое заказ остается нерассчитанным и будет обработан повторно,
// а от двойного начисления страхует уникальный индекс по заказу. Отметка
// расчета и прибавка накопленных трат применяются одной условной транзакцией.
func (p *Pool) settleOrder(ctx context.Context, orderID int64) error {
	order, err := p.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.SettledAt != nil {
		return nil
	}

	if order.TotalBonus > 0 {
		description := fmt.Sprintf("Earned %d bonus points for order #%d", order.TotalBonus, orderID)
		_, err := p.bonus.Credit(ctx, order.UserID, order.TotalBonus, domain.EntryTypeEarnedFromPurchase, description, &order.ID)
		if err != nil && !errors.Is(err, domain.ErrDuplicateEntry) {
			return fmt.Errorf("failed to credit earned bonus: %w", err)
		}
	}

	if err := p.orderRepo.SettleOrder(ctx, orderID, order.UserID, order.TotalAmount); err != nil {
		// Другой воркер успел первым
		if errors.Is(err, domain.ErrOrderAlreadySettled) {
			return nil
		}
		return fmt.Errorf("failed to settle order: %w", err)
	}

	entries, err := p.bonus.EvaluatePromotion(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("failed to evaluate promotion: %w", err)
	}
	for _, entry := range entries {
		p.logger.Info("user promoted",
			zap.Int64("user_id", order.UserID),
			zap.Int64("bonus", entry.Amount),
			zap.String("description", entry.Description),
		)
	}

	p.logger.Info("order settled",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", order.UserID),
		zap.Int64("earned_bonus", order.TotalBonus),
	)

	return nil
}
