package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
)

// VettingHandler manages writer quiz submissions and the admin approval gate.
type VettingHandler struct {
	facade VettingFacade
}

// NewVettingHandler constructs VettingHandler.
func NewVettingHandler(facade VettingFacade) *VettingHandler {
	return &VettingHandler{facade: facade}
}

// SubmitQuiz handles POST /api/writer-quiz.
func (h *VettingHandler) SubmitQuiz(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	quiz, err := h.facade.SubmitQuiz(c.Request.Context(), user, req.Score, req.Total)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.QuizResponse{
		ID:        quiz.ID,
		WriterID:  quiz.WriterID,
		Score:     quiz.Score,
		Total:     quiz.Total,
		Passed:    quiz.Passed,
		CreatedAt: quiz.CreatedAt,
	})
}

// PendingWriters handles GET /api/admin/writers/pending.
func (h *VettingHandler) PendingWriters(c *gin.Context) {
	writers, err := h.facade.PendingWriters(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.UserResponse, 0, len(writers))
	for _, w := range writers {
		resp = append(resp, toUserResponse(w))
	}
	c.JSON(http.StatusOK, resp)
}

// Approve handles POST /api/admin/writers/:id/approve.
func (h *VettingHandler) Approve(c *gin.Context) {
	h.setApproval(c, model.ApprovalApproved)
}

// Reject handles POST /api/admin/writers/:id/reject.
func (h *VettingHandler) Reject(c *gin.Context) {
	h.setApproval(c, model.ApprovalRejected)
}

func (h *VettingHandler) setApproval(c *gin.Context, status model.ApprovalStatus) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.facade.SetWriterApproval(c.Request.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}
