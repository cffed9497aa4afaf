package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// MarketplaceFacade exposes the subset of application functionality required
// by the monitor.
type MarketplaceFacade interface {
	OverdueOrders(ctx context.Context, now time.Time, limit int) ([]model.Order, error)
}

// DeadlineMonitor periodically sweeps active orders past their deadline and
// reports them. It never mutates order state; overdue handling stays a human
// decision.
type DeadlineMonitor struct {
	facade       MarketplaceFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDeadlineMonitor constructs the monitor worker pool.
func NewDeadlineMonitor(facade MarketplaceFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *DeadlineMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &DeadlineMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background sweeping.
func (m *DeadlineMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *DeadlineMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *DeadlineMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *DeadlineMonitor) fetchAndDispatch(ctx context.Context) {
	orders, err := m.facade.OverdueOrders(ctx, time.Now(), m.batchSize)
	if err != nil {
		m.logger.Error("fetch overdue orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- order:
		}
	}
}

func (m *DeadlineMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-m.jobs:
			if !ok {
				return
			}
			m.report(order)
		}
	}
}

func (m *DeadlineMonitor) report(order model.Order) {
	m.logger.Warn("order past deadline",
		slog.Int64("order_id", order.ID),
		slog.Int64("job_id", order.JobID),
		slog.Int64("writer_id", order.WriterID),
		slog.Time("deadline", order.Deadline),
		slog.Duration("overdue", time.Since(order.Deadline).Round(time.Second)),
	)
}
