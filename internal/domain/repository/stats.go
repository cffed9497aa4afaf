package repository

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

// StatsRepository computes aggregate read models on demand.
type StatsRepository interface {
	WriterStats(ctx context.Context, writerID int64) (*model.WriterStats, error)
	ClientStats(ctx context.Context, clientID int64) (*model.ClientStats, error)
	AdminStats(ctx context.Context) (*model.AdminStats, error)
}
