package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrInvalidSort):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, "task not found")
	default:
		response.InternalError(c, err)
	}
}
