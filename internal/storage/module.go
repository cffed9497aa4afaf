package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/JohnMutemi/WritersHub-sub000/internal/config"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/memory"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/postgres"
)

// Module wires the storage backend and repository adapters. An empty DSN
// selects the in-memory developer store.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.JobRepository { return f.Jobs() },
		func(f repository.Factory) repository.BidRepository { return f.Bids() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.TransactionRepository { return f.Transactions() },
		func(f repository.Factory) repository.QuizRepository { return f.Quizzes() },
		func(f repository.Factory) repository.StatsRepository { return f.Stats() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("no database configured, using in-memory store")
		return memory.New(), nil
	}
	return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	storage, ok := factory.(*postgres.Storage)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
