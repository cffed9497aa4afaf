package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	orders, err := h.facade.Orders(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, domainErrors.ErrForbidden) {
			c.Status(http.StatusForbidden)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/orders/:id/complete.
func (h *OrderHandler) Complete(c *gin.Context) {
	user := CurrentUser(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.facade.CompleteOrder(c.Request.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrOrderNotActive):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Revision handles POST /api/orders/:id/revision.
func (h *OrderHandler) Revision(c *gin.Context) {
	user := CurrentUser(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.facade.RequestRevision(c.Request.Context(), user, id, req.Notes); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrOrderNotActive):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		JobID:         o.JobID,
		BidID:         o.BidID,
		ClientID:      o.ClientID,
		WriterID:      o.WriterID,
		Amount:        o.Amount,
		Deadline:      o.Deadline,
		Status:        string(o.Status),
		RevisionNotes: o.RevisionNotes,
		CompletedAt:   o.CompletedAt,
		CreatedAt:     o.CreatedAt,
	}
}
