package telegram

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/telegram"
)

// Handler is the public interface for the Telegram delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Telegram client the handler needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	bot Sender
}

var _ Sender = (*telegram.Bot)(nil)

// New creates a new Telegram webhook handler for the task domain.
func New(l log.Logger, uc task.UseCase, bot Sender) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
