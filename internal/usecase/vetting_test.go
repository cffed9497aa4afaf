package usecase_test

import (
	"context"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
	"testing"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/memory"
)

func TestVettingUseCaseSubmitQuiz(t *testing.T) {
	store := memory.New()
	writer := seedUser(t, store, model.RoleWriter, model.ApprovalPending)
	client := seedClient(t, store)
	uc := usecase.NewVettingUseCase(store.Users(), store.Quizzes())
	ctx := context.Background()

	if _, err := uc.SubmitQuiz(ctx, client, 8, 10); err != domainErrors.ErrForbidden {
		t.Fatalf("only writers take the quiz, got %v", err)
	}

	quiz, err := uc.SubmitQuiz(ctx, writer, 7, 10)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if !quiz.Passed {
		t.Fatalf("70%% is a pass")
	}

	failed, err := uc.SubmitQuiz(ctx, writer, 6, 10)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if failed.Passed {
		t.Fatalf("below 70%% must fail")
	}

	// Passing the quiz never approves the writer by itself.
	stored, _ := store.Users().GetByID(ctx, writer.ID)
	if stored.ApprovalStatus != model.ApprovalPending {
		t.Fatalf("quiz must not change approval, got %q", stored.ApprovalStatus)
	}

	latest, err := uc.LatestQuiz(ctx, writer.ID)
	if err != nil {
		t.Fatalf("latest quiz: %v", err)
	}
	if latest.ID != failed.ID {
		t.Fatalf("expected most recent submission, got %+v", latest)
	}
}

func TestVettingUseCaseSubmitQuizValidation(t *testing.T) {
	store := memory.New()
	writer := seedUser(t, store, model.RoleWriter, model.ApprovalPending)
	uc := usecase.NewVettingUseCase(store.Users(), store.Quizzes())
	ctx := context.Background()

	cases := []struct{ score, total int }{
		{score: 5, total: 0},
		{score: -1, total: 10},
		{score: 11, total: 10},
	}
	for _, tc := range cases {
		if _, err := uc.SubmitQuiz(ctx, writer, tc.score, tc.total); err != domainErrors.ErrInvalidInput {
			t.Fatalf("expected invalid input for %d/%d, got %v", tc.score, tc.total, err)
		}
	}
}

func TestVettingUseCaseApproval(t *testing.T) {
	store := memory.New()
	writer := seedUser(t, store, model.RoleWriter, model.ApprovalPending)
	client := seedClient(t, store)
	uc := usecase.NewVettingUseCase(store.Users(), store.Quizzes())
	ctx := context.Background()

	if err := uc.SetWriterApproval(ctx, writer.ID, model.ApprovalPending); err != domainErrors.ErrInvalidInput {
		t.Fatalf("pending is not a valid target, got %v", err)
	}
	if err := uc.SetWriterApproval(ctx, client.ID, model.ApprovalApproved); err != domainErrors.ErrNotFound {
		t.Fatalf("non-writers cannot be approved, got %v", err)
	}

	if err := uc.SetWriterApproval(ctx, writer.ID, model.ApprovalApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	stored, _ := store.Users().GetByID(ctx, writer.ID)
	if stored.ApprovalStatus != model.ApprovalApproved {
		t.Fatalf("writer must be approved, got %q", stored.ApprovalStatus)
	}

	if err := uc.SetWriterApproval(ctx, writer.ID, model.ApprovalRejected); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
}

func TestVettingUseCasePendingWriters(t *testing.T) {
	store := memory.New()
	pending := seedUser(t, store, model.RoleWriter, model.ApprovalPending)
	seedWriter(t, store)
	seedClient(t, store)
	uc := usecase.NewVettingUseCase(store.Users(), store.Quizzes())

	writers, err := uc.PendingWriters(context.Background())
	if err != nil {
		t.Fatalf("pending writers failed: %v", err)
	}
	if len(writers) != 1 || writers[0].ID != pending.ID {
		t.Fatalf("expected only the pending writer, got %+v", writers)
	}
}
