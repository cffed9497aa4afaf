package usecase

import (
	"go.uber.org/fx"

	"github.com/JohnMutemi/WritersHub-sub000/internal/config"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newJobUseCase,
	NewBidUseCase,
	NewOrderUseCase,
	NewLedgerUseCase,
	NewVettingUseCase,
	newStatsUseCase,
)

func newJobUseCase(jobs repository.JobRepository, cfg *config.Config) *JobUseCase {
	return NewJobUseCase(jobs, cfg.MinJobBudget)
}

func newStatsUseCase(stats repository.StatsRepository, cfg *config.Config) *StatsUseCase {
	return NewStatsUseCase(stats, cfg.CommissionRate)
}
