package usecase_test

import (
	"context"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
	"testing"
	"time"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/memory"
)

func acceptOrder(t *testing.T, store *memory.Store, client, writer *model.User) *model.Order {
	t.Helper()
	job := seedJob(t, store, client)
	bid := seedBid(t, store, writer, job.ID)
	order, err := usecase.NewBidUseCase(store.Bids(), store.Jobs()).Accept(context.Background(), client, bid.ID)
	if err != nil {
		t.Fatalf("accept bid: %v", err)
	}
	return order
}

func TestOrderUseCaseListByRole(t *testing.T) {
	store := memory.New()
	client := seedClient(t, store)
	writer := seedWriter(t, store)
	admin := seedAdmin(t, store)
	order := acceptOrder(t, store, client, writer)
	uc := usecase.NewOrderUseCase(store.Orders())
	ctx := context.Background()

	forWriter, err := uc.List(ctx, writer)
	if err != nil {
		t.Fatalf("writer list failed: %v", err)
	}
	if len(forWriter) != 1 || forWriter[0].ID != order.ID {
		t.Fatalf("writer must see own orders, got %+v", forWriter)
	}

	forClient, err := uc.List(ctx, client)
	if err != nil {
		t.Fatalf("client list failed: %v", err)
	}
	if len(forClient) != 1 {
		t.Fatalf("client must see own orders, got %+v", forClient)
	}

	if _, err := uc.List(ctx, admin); err != domainErrors.ErrForbidden {
		t.Fatalf("admins have no order feed, got %v", err)
	}
}

func TestOrderUseCaseCompleteSettlement(t *testing.T) {
	store := memory.New()
	client := seedClient(t, store)
	writer := seedWriter(t, store)
	order := acceptOrder(t, store, client, writer)
	uc := usecase.NewOrderUseCase(store.Orders())
	ctx := context.Background()

	completed, err := uc.Complete(ctx, writer, order.ID)
	if err != nil {
		t.Fatalf("complete returned error: %v", err)
	}
	if completed.Status != model.OrderStatusCompleted {
		t.Fatalf("order must be completed, got %q", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatalf("completed_at must be set")
	}

	storedWriter, _ := store.Users().GetByID(ctx, writer.ID)
	if storedWriter.Balance != order.Amount {
		t.Fatalf("writer balance must equal order amount, got %v", storedWriter.Balance)
	}

	storedJob, _ := store.Jobs().GetByID(ctx, order.JobID)
	if storedJob.Status != model.JobStatusCompleted {
		t.Fatalf("job must be completed, got %q", storedJob.Status)
	}

	entries, err := store.Transactions().ListByUser(ctx, writer.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Type != model.TransactionPayment || entry.Amount != order.Amount {
		t.Fatalf("unexpected ledger entry: %+v", entry)
	}
	if entry.OrderID == nil || *entry.OrderID != order.ID {
		t.Fatalf("ledger entry must reference the order: %+v", entry)
	}
}

func TestOrderUseCaseCompleteGuards(t *testing.T) {
	store := memory.New()
	client := seedClient(t, store)
	writer := seedWriter(t, store)
	other := seedWriter(t, store)
	order := acceptOrder(t, store, client, writer)
	uc := usecase.NewOrderUseCase(store.Orders())
	ctx := context.Background()

	if _, err := uc.Complete(ctx, other, order.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("only the assigned writer may complete, got %v", err)
	}
	if _, err := uc.Complete(ctx, writer, 9999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := uc.Complete(ctx, writer, order.ID); err != nil {
		t.Fatalf("first complete failed: %v", err)
	}
	if _, err := uc.Complete(ctx, writer, order.ID); err != domainErrors.ErrOrderNotActive {
		t.Fatalf("second complete must be rejected, got %v", err)
	}

	storedWriter, _ := store.Users().GetByID(ctx, writer.ID)
	if storedWriter.Balance != order.Amount {
		t.Fatalf("balance must be credited exactly once, got %v", storedWriter.Balance)
	}
	entries, _ := store.Transactions().ListByUser(ctx, writer.ID)
	if len(entries) != 1 {
		t.Fatalf("exactly one payment entry expected, got %d", len(entries))
	}
}

func TestOrderUseCaseRevision(t *testing.T) {
	store := memory.New()
	client := seedClient(t, store)
	stranger := seedClient(t, store)
	writer := seedWriter(t, store)
	order := acceptOrder(t, store, client, writer)
	uc := usecase.NewOrderUseCase(store.Orders())
	ctx := context.Background()

	if err := uc.RequestRevision(ctx, stranger, order.ID, "tighten the intro"); err != domainErrors.ErrForbidden {
		t.Fatalf("only the client may request revision, got %v", err)
	}
	if err := uc.RequestRevision(ctx, client, order.ID, "tighten the intro"); err != nil {
		t.Fatalf("revision failed: %v", err)
	}

	stored, _ := store.Orders().GetByID(ctx, order.ID)
	if stored.Status != model.OrderStatusRevision {
		t.Fatalf("order must be in revision, got %q", stored.Status)
	}
	if stored.RevisionNotes != "tighten the intro" {
		t.Fatalf("notes not stored: %q", stored.RevisionNotes)
	}

	// A revision order still completes and settles.
	if _, err := uc.Complete(ctx, writer, order.ID); err != nil {
		t.Fatalf("completing a revision order failed: %v", err)
	}
	if err := uc.RequestRevision(ctx, client, order.ID, "again"); err != domainErrors.ErrOrderNotActive {
		t.Fatalf("revision on completed order must fail, got %v", err)
	}
}

func TestOrderUseCaseOverdue(t *testing.T) {
	store := memory.New()
	client := seedClient(t, store)
	writer := seedWriter(t, store)
	order := acceptOrder(t, store, client, writer)
	uc := usecase.NewOrderUseCase(store.Orders())
	ctx := context.Background()

	none, err := uc.Overdue(ctx, time.Now(), 10)
	if err != nil {
		t.Fatalf("overdue failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("no order is overdue yet, got %d", len(none))
	}

	future := time.Now().AddDate(0, 0, 30)
	late, err := uc.Overdue(ctx, future, 10)
	if err != nil {
		t.Fatalf("overdue failed: %v", err)
	}
	if len(late) != 1 || late[0].ID != order.ID {
		t.Fatalf("expected the order to be overdue, got %+v", late)
	}

	if _, err := uc.Complete(ctx, writer, order.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	late, _ = uc.Overdue(ctx, future, 10)
	if len(late) != 0 {
		t.Fatalf("completed orders are never overdue, got %+v", late)
	}
}
