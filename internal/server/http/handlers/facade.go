package handlers

import (
	"context"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// JobFacade encapsulates job posting operations exposed via HTTP.
type JobFacade interface {
	CreateJob(ctx context.Context, client *model.User, input usecase.CreateJobInput) (*model.Job, error)
	Jobs(ctx context.Context, user *model.User) ([]model.Job, error)
	Job(ctx context.Context, id int64) (*model.Job, error)
	CancelJob(ctx context.Context, actor *model.User, jobID int64) error
}

// BidFacade encapsulates proposal operations exposed via HTTP.
type BidFacade interface {
	PlaceBid(ctx context.Context, writer *model.User, input usecase.PlaceBidInput) (*model.Bid, error)
	BidsForJob(ctx context.Context, actor *model.User, jobID int64) ([]model.Bid, error)
	BidsForWriter(ctx context.Context, writerID int64) ([]model.Bid, error)
	AcceptBid(ctx context.Context, client *model.User, bidID int64) (*model.Order, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, user *model.User) ([]model.Order, error)
	CompleteOrder(ctx context.Context, writer *model.User, orderID int64) (*model.Order, error)
	RequestRevision(ctx context.Context, client *model.User, orderID int64, notes string) error
}

// WalletFacade provides ledger operations.
type WalletFacade interface {
	Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error)
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
}

// VettingFacade covers writer quiz submissions and admin approval.
type VettingFacade interface {
	SubmitQuiz(ctx context.Context, writer *model.User, score, total int) (*model.WriterQuiz, error)
	SetWriterApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error
	PendingWriters(ctx context.Context) ([]model.User, error)
}

// StatsFacade provides the dashboard aggregates.
type StatsFacade interface {
	WriterStats(ctx context.Context, writerID int64) (*model.WriterStats, error)
	ClientStats(ctx context.Context, clientID int64) (*model.ClientStats, error)
	AdminStats(ctx context.Context) (*model.AdminStats, error)
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	JobFacade
	BidFacade
	OrderFacade
	WalletFacade
	VettingFacade
	StatsFacade
}
