package di

import (
	"go.uber.org/fx"

	"github.com/JohnMutemi/WritersHub-sub000/internal/app"
	"github.com/JohnMutemi/WritersHub-sub000/internal/config"
	"github.com/JohnMutemi/WritersHub-sub000/internal/logger"
	"github.com/JohnMutemi/WritersHub-sub000/internal/pkg/auth"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/handlers"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/router"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
