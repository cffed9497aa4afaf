package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
	"github.com/JohnMutemi/WritersHub-sub000/internal/usecase"
)

// JobHandler manages job posting endpoints.
type JobHandler struct {
	facade JobFacade
}

// NewJobHandler constructs JobHandler.
func NewJobHandler(facade JobFacade) *JobHandler {
	return &JobHandler{facade: facade}
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	job, err := h.facade.CreateJob(c.Request.Context(), user, usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Budget:       req.Budget,
		DeadlineDays: req.DeadlineDays,
		Pages:        req.Pages,
		Attachments:  req.Attachments,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidInput),
			errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrInvalidDeadline):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toJobResponse(*job))
}

// List handles GET /api/jobs.
func (h *JobHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	jobs, err := h.facade.Jobs(c.Request.Context(), user)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, toJobResponse(j))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	job, err := h.facade.Job(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(*job))
}

// Cancel handles POST /api/jobs/:id/cancel.
func (h *JobHandler) Cancel(c *gin.Context) {
	user := CurrentUser(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.facade.CancelJob(c.Request.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrJobNotOpen):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toJobResponse(j model.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           j.ID,
		ClientID:     j.ClientID,
		Title:        j.Title,
		Description:  j.Description,
		Category:     j.Category,
		Budget:       j.Budget,
		DeadlineDays: j.DeadlineDays,
		Pages:        j.Pages,
		Attachments:  j.Attachments,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt,
	}
}
