package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

func seedUser(t *testing.T, store *Store, username string, role model.Role) *model.User {
	t.Helper()
	user, err := store.Users().Create(context.Background(), &model.User{
		Username:       username,
		PasswordHash:   "hash",
		Email:          username + "@example.com",
		Role:           role,
		ApprovalStatus: model.ApprovalApproved,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedOpenJob(t *testing.T, store *Store, clientID int64) *model.Job {
	t.Helper()
	job, err := store.Jobs().Create(context.Background(), &model.Job{
		ClientID:     clientID,
		Title:        "Essay",
		Description:  "A thousand words on Go.",
		Budget:       50,
		DeadlineDays: 7,
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestUserCreateRejectsDuplicates(t *testing.T) {
	store := New()
	ctx := context.Background()
	seedUser(t, store, "alice", model.RoleClient)

	_, err := store.Users().Create(ctx, &model.User{
		Username: "alice", PasswordHash: "hash", Email: "other@example.com", Role: model.RoleClient,
	})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate username error, got %v", err)
	}

	_, err = store.Users().Create(ctx, &model.User{
		Username: "alice2", PasswordHash: "hash", Email: "alice@example.com", Role: model.RoleClient,
	})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestSetApprovalOnlyTargetsWriters(t *testing.T) {
	store := New()
	ctx := context.Background()
	client := seedUser(t, store, "client", model.RoleClient)

	if err := store.Users().SetApproval(ctx, client.ID, model.ApprovalApproved); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for non-writer, got %v", err)
	}
	if err := store.Users().SetApproval(ctx, 9999, model.ApprovalApproved); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
}

func TestListOverdueOrdersByDeadlineWithLimit(t *testing.T) {
	store := New()
	ctx := context.Background()
	client := seedUser(t, store, "client", model.RoleClient)
	writer := seedUser(t, store, "writer", model.RoleWriter)

	late := seedOpenJob(t, store, client.ID)
	later := seedOpenJob(t, store, client.ID)

	lateBid, err := store.Bids().Create(ctx, &model.Bid{WriterID: writer.ID, JobID: late.ID, Amount: 30, DeliveryDays: 2})
	if err != nil {
		t.Fatalf("create bid: %v", err)
	}
	laterBid, err := store.Bids().Create(ctx, &model.Bid{WriterID: writer.ID, JobID: later.ID, Amount: 30, DeliveryDays: 5})
	if err != nil {
		t.Fatalf("create bid: %v", err)
	}

	lateOrder, err := store.Bids().Accept(ctx, lateBid.ID)
	if err != nil {
		t.Fatalf("accept bid: %v", err)
	}
	if _, err := store.Bids().Accept(ctx, laterBid.ID); err != nil {
		t.Fatalf("accept bid: %v", err)
	}

	future := time.Now().Add(30 * 24 * time.Hour)
	overdue, err := store.Orders().ListOverdue(ctx, future, 10)
	if err != nil || len(overdue) != 2 {
		t.Fatalf("expected two overdue orders, got %+v err=%v", overdue, err)
	}
	if !overdue[0].Deadline.Before(overdue[1].Deadline) {
		t.Fatalf("expected earliest deadline first, got %+v", overdue)
	}

	limited, err := store.Orders().ListOverdue(ctx, future, 1)
	if err != nil || len(limited) != 1 || limited[0].ID != lateOrder.ID {
		t.Fatalf("expected only earliest order, got %+v err=%v", limited, err)
	}

	none, err := store.Orders().ListOverdue(ctx, time.Now(), 10)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no overdue orders yet, got %+v err=%v", none, err)
	}
}

func TestQuizGetByWriterReturnsLatest(t *testing.T) {
	store := New()
	ctx := context.Background()
	writer := seedUser(t, store, "writer", model.RoleWriter)

	if _, err := store.Quizzes().GetByWriter(ctx, writer.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found before submission, got %v", err)
	}

	if _, err := store.Quizzes().Create(ctx, &model.WriterQuiz{WriterID: writer.ID, Score: 5, Total: 10, Passed: false}); err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := store.Quizzes().Create(ctx, &model.WriterQuiz{WriterID: writer.ID, Score: 9, Total: 10, Passed: true}); err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	latest, err := store.Quizzes().GetByWriter(ctx, writer.ID)
	if err != nil || latest.Score != 9 || !latest.Passed {
		t.Fatalf("expected latest attempt, got %+v err=%v", latest, err)
	}
}
