package usecase

import (
	"context"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/repository"
)

// LedgerUseCase manages balance movements and transaction history.
type LedgerUseCase struct {
	transactions repository.TransactionRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(transactions repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{transactions: transactions}
}

// Withdraw debits the balance and appends a pending withdrawal entry. The
// balance check happens under the storage lock, so a failed withdrawal leaves
// neither a ledger entry nor a balance change.
func (u *LedgerUseCase) Withdraw(ctx context.Context, userID int64, amount float64, method, details string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.transactions.Withdraw(ctx, userID, amount, method, details)
}

// History returns the user's ledger entries, newest first.
func (u *LedgerUseCase) History(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}
