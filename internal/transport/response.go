package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/entity"
)

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: msg})
}

// respondError maps service errors onto HTTP statuses via the entity
// sentinels.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrAreaNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrAddonNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrUserAlreadyExists),
		errors.Is(err, entity.ErrAreaAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrInvalidWindow),
		errors.Is(err, entity.ErrInvalidHours),
		errors.Is(err, entity.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	c.JSON(status, ErrorResponse{Success: false, Error: err.Error()})
}
