package usecase

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// StatsUseCase computes aggregate read models on demand.
type StatsUseCase struct {
	stats          repository.StatsRepository
	commissionRate float64
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository, commissionRate float64) *StatsUseCase {
	return &StatsUseCase{stats: stats, commissionRate: commissionRate}
}

// Writer returns the writer dashboard aggregates.
func (u *StatsUseCase) Writer(ctx context.Context, writerID int64) (*model.WriterStats, error) {
	return u.stats.WriterStats(ctx, writerID)
}

// Client returns the client dashboard aggregates.
func (u *StatsUseCase) Client(ctx context.Context, clientID int64) (*model.ClientStats, error) {
	return u.stats.ClientStats(ctx, clientID)
}

// Admin returns platform-wide aggregates. Commission is computed from the
// completed order volume; it is a reporting figure and is never withheld from
// writer payouts.
func (u *StatsUseCase) Admin(ctx context.Context) (*model.AdminStats, error) {
	stats, err := u.stats.AdminStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.Commission = stats.CompletedVolume * u.commissionRate
	return stats, nil
}
