package test

import (
	"context"
	"sync"
	"time"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
}

// Register returns the configured account or a default writer.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.User{ID: 1, Username: input.Username, Role: input.Role}, "token", nil
}

// Authenticate returns the configured account for login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleClient}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID loads the configured account by identifier.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleClient, ApprovalStatus: model.ApprovalApproved}, nil
}

// JobFacadeStub provides controllable behaviour for job endpoints.
type JobFacadeStub struct {
	CreateFn func(context.Context, *model.User, usecase.CreateJobInput) (*model.Job, error)
	JobsFn   func(context.Context, *model.User) ([]model.Job, error)
	JobFn    func(context.Context, int64) (*model.Job, error)
	CancelFn func(context.Context, *model.User, int64) error
}

// CreateJob delegates to the override or echoes the input back.
func (s JobFacadeStub) CreateJob(ctx context.Context, client *model.User, input usecase.CreateJobInput) (*model.Job, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, client, input)
	}
	return &model.Job{ID: 1, ClientID: client.ID, Title: input.Title, Budget: input.Budget, Status: model.JobStatusOpen}, nil
}

// Jobs returns predefined postings.
func (s JobFacadeStub) Jobs(ctx context.Context, user *model.User) ([]model.Job, error) {
	if s.JobsFn != nil {
		return s.JobsFn(ctx, user)
	}
	return []model.Job{{ID: 1, Status: model.JobStatusOpen}}, nil
}

// Job returns a predefined posting.
func (s JobFacadeStub) Job(ctx context.Context, id int64) (*model.Job, error) {
	if s.JobFn != nil {
		return s.JobFn(ctx, id)
	}
	return &model.Job{ID: id, Status: model.JobStatusOpen}, nil
}

// CancelJob executes the configured cancellation handler.
func (s JobFacadeStub) CancelJob(ctx context.Context, actor *model.User, jobID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, actor, jobID)
	}
	return nil
}

// BidFacadeStub provides controllable behaviour for proposal endpoints.
type BidFacadeStub struct {
	PlaceFn     func(context.Context, *model.User, usecase.PlaceBidInput) (*model.Bid, error)
	ForJobFn    func(context.Context, *model.User, int64) ([]model.Bid, error)
	ForWriterFn func(context.Context, int64) ([]model.Bid, error)
	AcceptFn    func(context.Context, *model.User, int64) (*model.Order, error)
}

// PlaceBid delegates to the override or echoes the input back.
func (s BidFacadeStub) PlaceBid(ctx context.Context, writer *model.User, input usecase.PlaceBidInput) (*model.Bid, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, writer, input)
	}
	return &model.Bid{ID: 1, WriterID: writer.ID, JobID: input.JobID, Amount: input.Amount, Status: model.BidStatusPending}, nil
}

// BidsForJob returns predefined proposals for the job.
func (s BidFacadeStub) BidsForJob(ctx context.Context, actor *model.User, jobID int64) ([]model.Bid, error) {
	if s.ForJobFn != nil {
		return s.ForJobFn(ctx, actor, jobID)
	}
	return []model.Bid{{ID: 1, JobID: jobID}}, nil
}

// BidsForWriter returns predefined proposals of the writer.
func (s BidFacadeStub) BidsForWriter(ctx context.Context, writerID int64) ([]model.Bid, error) {
	if s.ForWriterFn != nil {
		return s.ForWriterFn(ctx, writerID)
	}
	return []model.Bid{{ID: 1, WriterID: writerID}}, nil
}

// AcceptBid executes the configured acceptance handler.
func (s BidFacadeStub) AcceptBid(ctx context.Context, client *model.User, bidID int64) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, client, bidID)
	}
	return &model.Order{ID: 1, BidID: bidID, ClientID: client.ID, Status: model.OrderStatusInProgress}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn   func(context.Context, *model.User) ([]model.Order, error)
	CompleteFn func(context.Context, *model.User, int64) (*model.Order, error)
	RevisionFn func(context.Context, *model.User, int64, string) error
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, user *model.User) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, user)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusInProgress}}, nil
}

// CompleteOrder executes the configured settlement handler.
func (s OrderFacadeStub) CompleteOrder(ctx context.Context, writer *model.User, orderID int64) (*model.Order, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, writer, orderID)
	}
	return &model.Order{ID: orderID, WriterID: writer.ID, Status: model.OrderStatusCompleted}, nil
}

// RequestRevision executes the configured revision handler.
func (s OrderFacadeStub) RequestRevision(ctx context.Context, client *model.User, orderID int64, notes string) error {
	if s.RevisionFn != nil {
		return s.RevisionFn(ctx, client, orderID, notes)
	}
	return nil
}

// WalletFacadeStub simulates ledger operations.
type WalletFacadeStub struct {
	WithdrawFn     func(context.Context, int64, float64, string, string) (*model.Transaction, error)
	TransactionsFn func(context.Context, int64) ([]model.Transaction, error)
}

// Withdraw executes configured withdrawal handler.
func (s WalletFacadeStub) Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, amount, method, details)
	}
	return &model.Transaction{ID: 1, UserID: userID, Amount: -amount, Type: model.TransactionWithdrawal}, nil
}

// Transactions returns preconfigured history.
func (s WalletFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{{ID: 1, UserID: userID, Amount: 5, Type: model.TransactionPayment}}, nil
}

// VettingFacadeStub simulates quiz and approval operations.
type VettingFacadeStub struct {
	SubmitFn   func(context.Context, *model.User, int, int) (*model.WriterQuiz, error)
	ApprovalFn func(context.Context, int64, model.ApprovalStatus) error
	PendingFn  func(context.Context) ([]model.User, error)
}

// SubmitQuiz records the configured quiz result.
func (s VettingFacadeStub) SubmitQuiz(ctx context.Context, writer *model.User, score, total int) (*model.WriterQuiz, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, writer, score, total)
	}
	return &model.WriterQuiz{ID: 1, WriterID: writer.ID, Score: score, Total: total, Passed: score*100 >= 70*total}, nil
}

// SetWriterApproval executes the configured approval handler.
func (s VettingFacadeStub) SetWriterApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error {
	if s.ApprovalFn != nil {
		return s.ApprovalFn(ctx, writerID, status)
	}
	return nil
}

// PendingWriters returns the configured queue.
func (s VettingFacadeStub) PendingWriters(ctx context.Context) ([]model.User, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx)
	}
	return []model.User{{ID: 2, Role: model.RoleWriter, ApprovalStatus: model.ApprovalPending}}, nil
}

// StatsFacadeStub serves fixed dashboard aggregates.
type StatsFacadeStub struct {
	WriterFn func(context.Context, int64) (*model.WriterStats, error)
	ClientFn func(context.Context, int64) (*model.ClientStats, error)
	AdminFn  func(context.Context) (*model.AdminStats, error)
}

// WriterStats returns the configured aggregates.
func (s StatsFacadeStub) WriterStats(ctx context.Context, writerID int64) (*model.WriterStats, error) {
	if s.WriterFn != nil {
		return s.WriterFn(ctx, writerID)
	}
	return &model.WriterStats{CompletedOrders: 1, TotalEarned: 50, Balance: 50}, nil
}

// ClientStats returns the configured aggregates.
func (s StatsFacadeStub) ClientStats(ctx context.Context, clientID int64) (*model.ClientStats, error) {
	if s.ClientFn != nil {
		return s.ClientFn(ctx, clientID)
	}
	return &model.ClientStats{OpenJobs: 1, TotalSpent: 50}, nil
}

// AdminStats returns the configured aggregates.
func (s StatsFacadeStub) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	if s.AdminFn != nil {
		return s.AdminFn(ctx)
	}
	return &model.AdminStats{TotalUsers: 3, CompletedVolume: 100, Commission: 10}, nil
}

// MarketplaceFacadeStub aggregates facade stubs for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	JobFacadeStub
	BidFacadeStub
	OrderFacadeStub
	WalletFacadeStub
	VettingFacadeStub
	StatsFacadeStub
}

// WorkerFacadeStub mimics the deadline monitor's view of the facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Order
	OverdueFn func(context.Context, time.Time, int) ([]model.Order, error)

	mu        sync.Mutex
	callCount int
}

// OverdueOrders returns batches from the configured queue, one per call.
func (s *WorkerFacadeStub) OverdueOrders(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	if s.OverdueFn != nil {
		return s.OverdueFn(ctx, now, limit)
	}
	s.mu.Lock()
	call := s.callCount
	s.callCount++
	s.mu.Unlock()
	if call < len(s.Batches) {
		return s.Batches[call], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// Calls reports how many times OverdueOrders ran.
func (s *WorkerFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}
