package app

import (
	"context"
	"time"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

// MarketplaceFacade aggregates the use cases behind one application surface
// consumed by the HTTP layer and the background workers.
type MarketplaceFacade struct {
	auth    *usecase.AuthUseCase
	jobs    *usecase.JobUseCase
	bids    *usecase.BidUseCase
	orders  *usecase.OrderUseCase
	ledger  *usecase.LedgerUseCase
	vetting *usecase.VettingUseCase
	stats   *usecase.StatsUseCase
}

// NewMarketplaceFacade constructs the facade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	jobs *usecase.JobUseCase,
	bids *usecase.BidUseCase,
	orders *usecase.OrderUseCase,
	ledger *usecase.LedgerUseCase,
	vetting *usecase.VettingUseCase,
	stats *usecase.StatsUseCase,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:    auth,
		jobs:    jobs,
		bids:    bids,
		orders:  orders,
		ledger:  ledger,
		vetting: vetting,
		stats:   stats,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, input)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *MarketplaceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *MarketplaceFacade) CreateJob(ctx context.Context, client *model.User, input usecase.CreateJobInput) (*model.Job, error) {
	return f.jobs.Create(ctx, client, input)
}

func (f *MarketplaceFacade) Jobs(ctx context.Context, user *model.User) ([]model.Job, error) {
	return f.jobs.List(ctx, user)
}

func (f *MarketplaceFacade) Job(ctx context.Context, id int64) (*model.Job, error) {
	return f.jobs.Get(ctx, id)
}

func (f *MarketplaceFacade) CancelJob(ctx context.Context, actor *model.User, jobID int64) error {
	return f.jobs.Cancel(ctx, actor, jobID)
}

func (f *MarketplaceFacade) PlaceBid(ctx context.Context, writer *model.User, input usecase.PlaceBidInput) (*model.Bid, error) {
	return f.bids.Place(ctx, writer, input)
}

func (f *MarketplaceFacade) BidsForJob(ctx context.Context, actor *model.User, jobID int64) ([]model.Bid, error) {
	return f.bids.ListForJob(ctx, actor, jobID)
}

func (f *MarketplaceFacade) BidsForWriter(ctx context.Context, writerID int64) ([]model.Bid, error) {
	return f.bids.ListForWriter(ctx, writerID)
}

func (f *MarketplaceFacade) AcceptBid(ctx context.Context, client *model.User, bidID int64) (*model.Order, error) {
	return f.bids.Accept(ctx, client, bidID)
}

func (f *MarketplaceFacade) Orders(ctx context.Context, user *model.User) ([]model.Order, error) {
	return f.orders.List(ctx, user)
}

func (f *MarketplaceFacade) CompleteOrder(ctx context.Context, writer *model.User, orderID int64) (*model.Order, error) {
	return f.orders.Complete(ctx, writer, orderID)
}

func (f *MarketplaceFacade) RequestRevision(ctx context.Context, client *model.User, orderID int64, notes string) error {
	return f.orders.RequestRevision(ctx, client, orderID, notes)
}

func (f *MarketplaceFacade) OverdueOrders(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	return f.orders.Overdue(ctx, now, limit)
}

func (f *MarketplaceFacade) Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error) {
	return f.ledger.Withdraw(ctx, userID, amount, method, details)
}

func (f *MarketplaceFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.ledger.History(ctx, userID)
}

func (f *MarketplaceFacade) SubmitQuiz(ctx context.Context, writer *model.User, score, total int) (*model.WriterQuiz, error) {
	return f.vetting.SubmitQuiz(ctx, writer, score, total)
}

func (f *MarketplaceFacade) SetWriterApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error {
	return f.vetting.SetWriterApproval(ctx, writerID, status)
}

func (f *MarketplaceFacade) PendingWriters(ctx context.Context) ([]model.User, error) {
	return f.vetting.PendingWriters(ctx)
}

func (f *MarketplaceFacade) WriterStats(ctx context.Context, writerID int64) (*model.WriterStats, error) {
	return f.stats.Writer(ctx, writerID)
}

func (f *MarketplaceFacade) ClientStats(ctx context.Context, clientID int64) (*model.ClientStats, error) {
	return f.stats.Client(ctx, clientID)
}

func (f *MarketplaceFacade) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	return f.stats.Admin(ctx)
}
