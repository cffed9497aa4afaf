package usecase_test

import (
	"context"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
	"testing"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/memory"
	testhelpers "github.com/JohnMutemi/WritersHub-sub000/internal/test"
)

const testMinBudget = 5.0

func seedUser(t *testing.T, store *memory.Store, role model.Role, approval model.ApprovalStatus) *model.User {
	t.Helper()
	name := testhelpers.RandomASCIIString(8, 16)
	user, err := store.Users().Create(context.Background(), &model.User{
		Username:       name,
		PasswordHash:   "hash:password",
		Email:          name + "@example.com",
		Role:           role,
		ApprovalStatus: approval,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedClient(t *testing.T, store *memory.Store) *model.User {
	return seedUser(t, store, model.RoleClient, model.ApprovalApproved)
}

func seedWriter(t *testing.T, store *memory.Store) *model.User {
	return seedUser(t, store, model.RoleWriter, model.ApprovalApproved)
}

func seedAdmin(t *testing.T, store *memory.Store) *model.User {
	return seedUser(t, store, model.RoleAdmin, model.ApprovalApproved)
}

func seedJob(t *testing.T, store *memory.Store, client *model.User) *model.Job {
	t.Helper()
	job, err := usecase.NewJobUseCase(store.Jobs(), testMinBudget).Create(context.Background(), client, usecase.CreateJobInput{
		Title:        "Essay on Go concurrency",
		Description:  "Two thousand words on goroutines and channels.",
		Budget:       50,
		DeadlineDays: 7,
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func seedBid(t *testing.T, store *memory.Store, writer *model.User, jobID int64) *model.Bid {
	t.Helper()
	bid, err := usecase.NewBidUseCase(store.Bids(), store.Jobs()).Place(context.Background(), writer, usecase.PlaceBidInput{
		JobID:        jobID,
		Amount:       40,
		DeliveryDays: 5,
	})
	if err != nil {
		t.Fatalf("seed bid: %v", err)
	}
	return bid
}
