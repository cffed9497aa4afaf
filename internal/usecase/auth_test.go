package usecase_test

import (
	"context"
	"fmt"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
	"testing"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	pkgAuth "github.com/JohnMutemi/WritersHub-sub000/internal/pkg/auth"
	"github.com/JohnMutemi/WritersHub-sub000/internal/storage/memory"
	testhelpers "github.com/JohnMutemi/WritersHub-sub000/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func registerInput(role model.Role) usecase.RegisterInput {
	name := testhelpers.RandomASCIIString(8, 16)
	return usecase.RegisterInput{
		Username: name,
		Password: "password",
		Email:    name + "@example.com",
		Role:     role,
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	store := memory.New()
	uc := usecase.NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	input := registerInput(model.RoleClient)
	user, token, err := uc.Register(ctx, input)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("unexpected token %q", token)
	}
	if user.ApprovalStatus != model.ApprovalApproved {
		t.Fatalf("clients must be approved immediately, got %q", user.ApprovalStatus)
	}

	stored, err := store.Users().GetByUsername(ctx, input.Username)
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterWriterStartsPending(t *testing.T) {
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{}, newStrategyStub())

	user, _, err := uc.Register(context.Background(), registerInput(model.RoleWriter))
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ApprovalStatus != model.ApprovalPending {
		t.Fatalf("writers must start pending, got %q", user.ApprovalStatus)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	input := registerInput(model.RoleClient)
	if _, _, err := uc.Register(ctx, input); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, input); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	input := registerInput(model.RoleClient)
	created, _, err := uc.Register(ctx, input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, input.Username, "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody", "password"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, input.Username, "password")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, user.ID)
	}
	if token != fmt.Sprintf("token-%d", created.ID) {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	cases := []usecase.RegisterInput{
		{Password: "password", Email: "a@b.c", Role: model.RoleClient},
		{Username: "user", Email: "a@b.c", Role: model.RoleClient},
		{Username: "user", Password: "password", Role: model.RoleClient},
	}
	for _, input := range cases {
		if _, _, err := uc.Register(ctx, input); err != domainErrors.ErrInvalidCredentials {
			t.Fatalf("expected invalid credentials error for %+v, got %v", input, err)
		}
	}

	bad := registerInput("manager")
	if _, _, err := uc.Register(ctx, bad); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for unknown role, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	hashErr := fmt.Errorf("hash error")
	uc := usecase.NewAuthUseCase(memory.New().Users(), testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", hashErr
	}}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), registerInput(model.RoleClient)); err != hashErr {
		t.Fatalf("expected hasher error, got %v", err)
	}
}
