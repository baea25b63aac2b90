package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/parser"
	"smart-task-manager/pkg/response"
	"smart-task-manager/pkg/telegram"
)

const processTimeout = 30 * time.Second

const helpText = `Send me a task in plain English and I will file it for you.

Examples:
- Buy groceries tomorrow at 5pm
- Urgent: submit report by friday
- Gym workout every day at 7am

Commands:
/start - show this message
/help - show this message`

// HandleWebhook ingests a Telegram update. The update is acknowledged
// immediately and processed in the background; Telegram retries on anything
// but a 200.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram: failed to decode update: %v", err)
		response.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		response.OK(c, gin.H{"status": "ignored"})
		return
	}

	go h.processUpdate(*update.Message)

	response.OK(c, gin.H{"status": "accepted"})
}

// processUpdate runs off the request goroutine with its own deadline.
func (h *handler) processUpdate(msg telegram.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	text := strings.TrimSpace(msg.Text)

	switch text {
	case "/start", "/help":
		if err := h.bot.SendMessage(msg.Chat.ID, helpText); err != nil {
			h.l.Errorf(ctx, "telegram: failed to send help: %v", err)
		}
		return
	}

	sc := model.Scope{UserID: "tg:" + strconv.FormatInt(msg.Chat.ID, 10)}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	output, err := h.uc.Create(ctx, sc, task.CreateInput{RawText: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram: uc.Create: %v", err)
		if sendErr := h.bot.SendMessage(msg.Chat.ID, "Sorry, I could not save that task."); sendErr != nil {
			h.l.Errorf(ctx, "telegram: failed to send error reply: %v", sendErr)
		}
		return
	}

	if err := h.bot.SendMessage(msg.Chat.ID, formatTaskSummary(output.Task)); err != nil {
		h.l.Errorf(ctx, "telegram: failed to send summary: %v", err)
	}
}

// formatTaskSummary renders the parsed attributes as a confirmation reply.
func formatTaskSummary(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task saved: %s\n", t.Title)
	fmt.Fprintf(&b, "Category: %s\n", t.Category)
	fmt.Fprintf(&b, "Priority: %s", t.Priority)
	if t.DueDate != nil {
		fmt.Fprintf(&b, "\nDue: %s", t.DueDate.Format(response.DateFormat))
		if t.DueTime != nil {
			fmt.Fprintf(&b, " at %s", t.DueTime)
		}
	}
	if t.Recurring != "" && t.Recurring != parser.RecurrenceNone {
		fmt.Fprintf(&b, "\nRepeats: %s", t.Recurring)
	}
	return b.String()
}
