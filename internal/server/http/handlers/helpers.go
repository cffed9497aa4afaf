package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated account loaded by the auth middleware.
func CurrentUser(c *gin.Context) *model.User {
	return middleware.CurrentUser(c)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindingError writes a 400 with one entry per failed field.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	fields := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError{Field: fe.Field(), Message: fe.Tag()})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

// toUserResponse converts an account without leaking the password hash.
func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           string(u.Role),
		Bio:            u.Bio,
		ProfileImage:   u.ProfileImage,
		Balance:        u.Balance,
		ApprovalStatus: string(u.ApprovalStatus),
		CreatedAt:      u.CreatedAt,
	}
}
