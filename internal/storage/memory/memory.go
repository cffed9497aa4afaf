// Package memory implements the repository contracts on top of plain maps.
// It backs developer mode (no DSN configured) and the workflow tests. A single
// mutex serializes every operation, so the multi-entity workflows keep the
// same all-or-nothing semantics as the PostgreSQL transactions.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// Store holds all marketplace state in memory.
type Store struct {
	mu sync.Mutex

	users        map[int64]*model.User
	usersByName  map[string]int64
	usersByEmail map[string]int64
	jobs         map[int64]*model.Job
	bids         map[int64]*model.Bid
	orders       map[int64]*model.Order
	transactions map[int64]*model.Transaction
	quizzes      map[int64]*model.WriterQuiz

	nextUser        int64
	nextJob         int64
	nextBid         int64
	nextOrder       int64
	nextTransaction int64
	nextQuiz        int64
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		users:           make(map[int64]*model.User),
		usersByName:     make(map[string]int64),
		usersByEmail:    make(map[string]int64),
		jobs:            make(map[int64]*model.Job),
		bids:            make(map[int64]*model.Bid),
		orders:          make(map[int64]*model.Order),
		transactions:    make(map[int64]*model.Transaction),
		quizzes:         make(map[int64]*model.WriterQuiz),
		nextUser:        1,
		nextJob:         1,
		nextBid:         1,
		nextOrder:       1,
		nextTransaction: 1,
		nextQuiz:        1,
	}
}

// Factory methods for domain repositories.
func (s *Store) Users() repository.UserRepository               { return (*userRepository)(s) }
func (s *Store) Jobs() repository.JobRepository                 { return (*jobRepository)(s) }
func (s *Store) Bids() repository.BidRepository                 { return (*bidRepository)(s) }
func (s *Store) Orders() repository.OrderRepository             { return (*orderRepository)(s) }
func (s *Store) Transactions() repository.TransactionRepository { return (*transactionRepository)(s) }
func (s *Store) Quizzes() repository.QuizRepository             { return (*quizRepository)(s) }
func (s *Store) Stats() repository.StatsRepository              { return (*statsRepository)(s) }

type userRepository Store
type jobRepository Store
type bidRepository Store
type orderRepository Store
type transactionRepository Store
type quizRepository Store
type statsRepository Store

// --- users ---

func (r *userRepository) Create(_ context.Context, user *model.User) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByName[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.usersByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	stored := *user
	stored.ID = s.nextUser
	stored.Balance = 0
	stored.CreatedAt = time.Now()
	s.nextUser++
	s.users[stored.ID] = &stored
	s.usersByName[stored.Username] = stored.ID
	s.usersByEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usersByName[username]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *s.users[id]
	return &out, nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *userRepository) ListWriters(_ context.Context, status model.ApprovalStatus) ([]model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.User
	for _, u := range s.users {
		if u.Role == model.RoleWriter && u.ApprovalStatus == status {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *userRepository) SetApproval(_ context.Context, writerID int64, status model.ApprovalStatus) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[writerID]
	if !ok || user.Role != model.RoleWriter {
		return domainErrors.ErrNotFound
	}
	user.ApprovalStatus = status
	return nil
}

// --- jobs ---

func (r *jobRepository) Create(_ context.Context, job *model.Job) (*model.Job, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *job
	stored.ID = s.nextJob
	stored.Status = model.JobStatusOpen
	stored.CreatedAt = time.Now()
	s.nextJob++
	s.jobs[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *jobRepository) GetByID(_ context.Context, id int64) (*model.Job, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobByID(id)
}

func (s *Store) jobByID(id int64) (*model.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *job
	return &out, nil
}

func (r *jobRepository) ListOpen(_ context.Context) ([]model.Job, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listJobs(func(j *model.Job) bool { return j.Status == model.JobStatusOpen }), nil
}

func (r *jobRepository) ListByClient(_ context.Context, clientID int64) ([]model.Job, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listJobs(func(j *model.Job) bool { return j.ClientID == clientID }), nil
}

func (s *Store) listJobs(match func(*model.Job) bool) []model.Job {
	var result []model.Job
	for _, j := range s.jobs {
		if match(j) {
			result = append(result, *j)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (r *jobRepository) Cancel(_ context.Context, jobID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if job.Status != model.JobStatusOpen {
		return domainErrors.ErrJobNotOpen
	}
	job.Status = model.JobStatusCancelled
	s.rejectPendingBids(jobID)
	return nil
}

func (s *Store) rejectPendingBids(jobID int64) {
	for _, b := range s.bids {
		if b.JobID == jobID && b.Status == model.BidStatusPending {
			b.Status = model.BidStatusRejected
		}
	}
}

// --- bids ---

func (r *bidRepository) Create(_ context.Context, bid *model.Bid) (*model.Bid, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[bid.JobID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if job.Status != model.JobStatusOpen {
		return nil, domainErrors.ErrJobNotOpen
	}

	stored := *bid
	stored.ID = s.nextBid
	stored.Status = model.BidStatusPending
	stored.CreatedAt = time.Now()
	s.nextBid++
	s.bids[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *bidRepository) GetByID(_ context.Context, id int64) (*model.Bid, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *bid
	return &out, nil
}

func (r *bidRepository) ListByJob(_ context.Context, jobID int64) ([]model.Bid, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listBids(func(b *model.Bid) bool { return b.JobID == jobID }), nil
}

func (r *bidRepository) ListByWriter(_ context.Context, writerID int64) ([]model.Bid, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listBids(func(b *model.Bid) bool { return b.WriterID == writerID }), nil
}

func (s *Store) listBids(match func(*model.Bid) bool) []model.Bid {
	var result []model.Bid
	for _, b := range s.bids {
		if match(b) {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (r *bidRepository) Accept(_ context.Context, bidID int64) (*model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if bid.Status != model.BidStatusPending {
		return nil, domainErrors.ErrBidNotPending
	}
	job, ok := s.jobs[bid.JobID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if job.Status != model.JobStatusOpen {
		return nil, domainErrors.ErrJobNotOpen
	}

	now := time.Now()
	bid.Status = model.BidStatusAccepted
	job.Status = model.JobStatusInProgress

	order := model.Order{
		ID:        s.nextOrder,
		JobID:     job.ID,
		BidID:     bid.ID,
		ClientID:  job.ClientID,
		WriterID:  bid.WriterID,
		Amount:    bid.Amount,
		Deadline:  now.AddDate(0, 0, bid.DeliveryDays),
		Status:    model.OrderStatusInProgress,
		CreatedAt: now,
	}
	s.nextOrder++
	stored := order
	s.orders[order.ID] = &stored

	s.rejectPendingBids(job.ID)

	return &order, nil
}

// --- orders ---

func (r *orderRepository) GetByID(_ context.Context, id int64) (*model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *order
	return &out, nil
}

func (r *orderRepository) ListByWriter(_ context.Context, writerID int64) ([]model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listOrders(func(o *model.Order) bool { return o.WriterID == writerID }), nil
}

func (r *orderRepository) ListByClient(_ context.Context, clientID int64) ([]model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listOrders(func(o *model.Order) bool { return o.ClientID == clientID }), nil
}

func (r *orderRepository) ListOverdue(_ context.Context, now time.Time, limit int) ([]model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	overdue := s.listOrders(func(o *model.Order) bool {
		return o.Status.Active() && o.Deadline.Before(now)
	})
	sort.Slice(overdue, func(i, j int) bool { return overdue[i].Deadline.Before(overdue[j].Deadline) })
	if limit > 0 && len(overdue) > limit {
		overdue = overdue[:limit]
	}
	return overdue, nil
}

func (s *Store) listOrders(match func(*model.Order) bool) []model.Order {
	var result []model.Order
	for _, o := range s.orders {
		if match(o) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

func (r *orderRepository) Complete(_ context.Context, orderID int64) (*model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !order.Status.Active() {
		return nil, domainErrors.ErrOrderNotActive
	}

	now := time.Now()
	order.Status = model.OrderStatusCompleted
	order.CompletedAt = &now

	if job, ok := s.jobs[order.JobID]; ok {
		job.Status = model.JobStatusCompleted
	}
	if writer, ok := s.users[order.WriterID]; ok {
		writer.Balance += order.Amount
	}

	entry := model.Transaction{
		ID:        s.nextTransaction,
		UserID:    order.WriterID,
		Amount:    order.Amount,
		Type:      model.TransactionPayment,
		Status:    model.TransactionStatusCompleted,
		OrderID:   &order.ID,
		CreatedAt: now,
	}
	s.nextTransaction++
	s.transactions[entry.ID] = &entry

	out := *order
	return &out, nil
}

func (r *orderRepository) SetRevision(_ context.Context, orderID int64, notes string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusInProgress {
		return domainErrors.ErrOrderNotActive
	}
	order.Status = model.OrderStatusRevision
	order.RevisionNotes = notes
	return nil
}

// --- transactions ---

func (r *transactionRepository) ListByUser(_ context.Context, userID int64) ([]model.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *transactionRepository) Withdraw(_ context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if user.Balance < amount {
		return nil, domainErrors.ErrInsufficientBalance
	}
	user.Balance -= amount

	entry := model.Transaction{
		ID:        s.nextTransaction,
		UserID:    userID,
		Amount:    -amount,
		Type:      model.TransactionWithdrawal,
		Status:    model.TransactionStatusPending,
		CreatedAt: time.Now(),
	}
	if method != "" {
		entry.PaymentMethod = &method
	}
	if details != "" {
		entry.PaymentDetails = &details
	}
	s.nextTransaction++
	stored := entry
	s.transactions[entry.ID] = &stored

	return &entry, nil
}

// --- quizzes ---

func (r *quizRepository) Create(_ context.Context, quiz *model.WriterQuiz) (*model.WriterQuiz, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *quiz
	stored.ID = s.nextQuiz
	stored.CreatedAt = time.Now()
	s.nextQuiz++
	s.quizzes[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *quizRepository) GetByWriter(_ context.Context, writerID int64) (*model.WriterQuiz, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *model.WriterQuiz
	for _, q := range s.quizzes {
		if q.WriterID != writerID {
			continue
		}
		if latest == nil || q.ID > latest.ID {
			latest = q
		}
	}
	if latest == nil {
		return nil, domainErrors.ErrNotFound
	}
	out := *latest
	return &out, nil
}

// --- stats ---

func (r *statsRepository) WriterStats(_ context.Context, writerID int64) (*model.WriterStats, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[writerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	stats := model.WriterStats{Balance: user.Balance}
	for _, b := range s.bids {
		if b.WriterID == writerID && b.Status == model.BidStatusPending {
			stats.ActiveBids++
		}
	}
	for _, o := range s.orders {
		if o.WriterID != writerID {
			continue
		}
		switch {
		case o.Status.Active():
			stats.ActiveOrders++
		case o.Status == model.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalEarned += o.Amount
		}
	}
	return &stats, nil
}

func (r *statsRepository) ClientStats(_ context.Context, clientID int64) (*model.ClientStats, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats model.ClientStats
	for _, j := range s.jobs {
		if j.ClientID == clientID && j.Status == model.JobStatusOpen {
			stats.OpenJobs++
		}
	}
	for _, o := range s.orders {
		if o.ClientID != clientID {
			continue
		}
		switch {
		case o.Status.Active():
			stats.ActiveOrders++
		case o.Status == model.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalSpent += o.Amount
		}
	}
	return &stats, nil
}

func (r *statsRepository) AdminStats(_ context.Context) (*model.AdminStats, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.AdminStats{TotalUsers: len(s.users)}
	for _, u := range s.users {
		if u.Role == model.RoleWriter && u.ApprovalStatus == model.ApprovalPending {
			stats.PendingWriters++
		}
	}
	for _, j := range s.jobs {
		if j.Status == model.JobStatusOpen {
			stats.OpenJobs++
		}
	}
	for _, o := range s.orders {
		switch {
		case o.Status.Active():
			stats.ActiveOrders++
		case o.Status == model.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.CompletedVolume += o.Amount
		}
	}
	return &stats, nil
}
