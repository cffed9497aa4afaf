package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/handlers"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	jobHandler := handlers.NewJobHandler(facade)
	bidHandler := handlers.NewBidHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	vettingHandler := handlers.NewVettingHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/user", authHandler.Me)

	authed.GET("/jobs", jobHandler.List)
	authed.GET("/jobs/:id", jobHandler.Get)
	authed.POST("/jobs", middleware.RoleRequired(model.RoleClient), jobHandler.Create)
	authed.POST("/jobs/:id/cancel", jobHandler.Cancel)

	authed.GET("/bids", bidHandler.List)
	authed.POST("/bids", middleware.RoleRequired(model.RoleWriter), bidHandler.Place)
	authed.POST("/bids/:id/accept", middleware.RoleRequired(model.RoleClient), bidHandler.Accept)

	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders/:id/complete", middleware.RoleRequired(model.RoleWriter), orderHandler.Complete)
	authed.POST("/orders/:id/revision", middleware.RoleRequired(model.RoleClient), orderHandler.Revision)

	authed.POST("/withdrawals", walletHandler.Withdraw)
	authed.GET("/transactions", walletHandler.Transactions)

	authed.POST("/writer-quiz", middleware.RoleRequired(model.RoleWriter), vettingHandler.SubmitQuiz)

	admin := authed.Group("/admin")
	admin.Use(middleware.RoleRequired(model.RoleAdmin))
	admin.GET("/writers/pending", vettingHandler.PendingWriters)
	admin.POST("/writers/:id/approve", vettingHandler.Approve)
	admin.POST("/writers/:id/reject", vettingHandler.Reject)

	authed.GET("/stats/writer", middleware.RoleRequired(model.RoleWriter), statsHandler.Writer)
	authed.GET("/stats/client", middleware.RoleRequired(model.RoleClient), statsHandler.Client)
	authed.GET("/stats/admin", middleware.RoleRequired(model.RoleAdmin), statsHandler.Admin)

	return engine
}
