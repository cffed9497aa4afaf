package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
)

// WalletHandler manages balance and ledger endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Withdraw handles POST /api/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	tx, err := h.facade.Withdraw(c.Request.Context(), user.ID, req.Amount, req.Method, req.Details)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(*tx))
}

// Transactions handles GET /api/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	user := CurrentUser(c)
	entries, err := h.facade.Transactions(c.Request.Context(), user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(entries))
	for _, t := range entries {
		resp = append(resp, toTransactionResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func toTransactionResponse(t model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		Amount:         t.Amount,
		Type:           string(t.Type),
		Status:         t.Status,
		PaymentMethod:  t.PaymentMethod,
		OrderID:        t.OrderID,
		PaymentDetails: t.PaymentDetails,
		CreatedAt:      t.CreatedAt,
	}
}
