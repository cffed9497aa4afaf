package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

// BidHandler manages proposal endpoints.
type BidHandler struct {
	facade BidFacade
}

// NewBidHandler constructs BidHandler.
func NewBidHandler(facade BidFacade) *BidHandler {
	return &BidHandler{facade: facade}
}

// Place handles POST /api/bids.
func (h *BidHandler) Place(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	bid, err := h.facade.PlaceBid(c.Request.Context(), user, usecase.PlaceBidInput{
		JobID:        req.JobID,
		Amount:       req.Amount,
		DeliveryDays: req.DeliveryDays,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden), errors.Is(err, domainErrors.ErrWriterNotApproved):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrJobNotOpen):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidDeadline):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toBidResponse(*bid))
}

// List handles GET /api/bids. Writers see their own bids; with ?job_id the
// job owner (or an admin) sees every bid on the job.
func (h *BidHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	if raw := c.Query("job_id"); raw != "" {
		jobID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || jobID <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		bids, err := h.facade.BidsForJob(c.Request.Context(), user, jobID)
		if err != nil {
			switch {
			case errors.Is(err, domainErrors.ErrNotFound):
				c.Status(http.StatusNotFound)
			case errors.Is(err, domainErrors.ErrForbidden):
				c.Status(http.StatusForbidden)
			default:
				c.Status(http.StatusInternalServerError)
			}
			return
		}
		c.JSON(http.StatusOK, toBidResponses(bids))
		return
	}

	if user.Role != model.RoleWriter {
		c.Status(http.StatusForbidden)
		return
	}
	bids, err := h.facade.BidsForWriter(c.Request.Context(), user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toBidResponses(bids))
}

// Accept handles POST /api/bids/:id/accept.
func (h *BidHandler) Accept(c *gin.Context) {
	user := CurrentUser(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.facade.AcceptBid(c.Request.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrJobNotOpen), errors.Is(err, domainErrors.ErrBidNotPending):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func toBidResponse(b model.Bid) dto.BidResponse {
	return dto.BidResponse{
		ID:           b.ID,
		WriterID:     b.WriterID,
		JobID:        b.JobID,
		Amount:       b.Amount,
		DeliveryDays: b.DeliveryDays,
		CoverLetter:  b.CoverLetter,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

func toBidResponses(bids []model.Bid) []dto.BidResponse {
	resp := make([]dto.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, toBidResponse(b))
	}
	return resp
}
