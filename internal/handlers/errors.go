package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"inventory-workflow-backend/internal/models"
)

// writeError maps service errors onto status codes.
func writeError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUnknownGroup), errors.Is(err, models.ErrEmptySelection):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, models.ErrorResponse{Error: msg, Message: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid request",
		Message: err.Error(),
	})
}
