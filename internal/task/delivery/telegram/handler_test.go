package telegram_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	tgdelivery "smart-task-manager/internal/task/delivery/telegram"
	"smart-task-manager/pkg/parser"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type sentMessage struct {
	chatID int64
	text   string
}

// mockSender delivers sent messages on a channel so tests can wait for the
// background goroutine.
type mockSender struct {
	sent chan sentMessage
}

func newMockSender() *mockSender {
	return &mockSender{sent: make(chan sentMessage, 4)}
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	m.sent <- sentMessage{chatID: chatID, text: text}
	return nil
}

func (m *mockSender) wait(t *testing.T) sentMessage {
	t.Helper()
	select {
	case msg := <-m.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a Telegram reply")
		return sentMessage{}
	}
}

type mockUseCase struct {
	created chan task.CreateInput
	scopes  chan model.Scope
	err     error
}

func newMockUseCase() *mockUseCase {
	return &mockUseCase{
		created: make(chan task.CreateInput, 4),
		scopes:  make(chan model.Scope, 4),
	}
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	m.created <- input
	m.scopes <- sc
	if m.err != nil {
		return task.CreateOutput{}, m.err
	}
	due := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	return task.CreateOutput{Task: model.Task{
		ID:        "task-1",
		Title:     "Buy milk",
		Category:  parser.CategoryShopping,
		Priority:  parser.PriorityMedium,
		DueDate:   &due,
		DueTime:   &parser.TimeOfDay{Hour: 15},
		Recurring: parser.RecurrenceNone,
	}}, nil
}

func (m *mockUseCase) Preview(ctx context.Context, input task.CreateInput) (task.PreviewOutput, error) {
	return task.PreviewOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	return task.DetailOutput{}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func newServer(uc task.UseCase, sender tgdelivery.Sender) *httptest.Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := tgdelivery.New(mockLogger{}, uc, sender)
	engine.POST("/webhook/telegram", h.HandleWebhook)
	return httptest.NewServer(engine)
}

func postUpdate(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/webhook/telegram", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	return resp
}

func TestWebhookCreatesTask(t *testing.T) {
	uc := newMockUseCase()
	sender := newMockSender()
	srv := newServer(uc, sender)
	defer srv.Close()

	resp := postUpdate(t, srv.URL, `{"update_id":1,"message":{"message_id":10,"from":{"id":7,"username":"alice"},"chat":{"id":42,"type":"private"},"text":"Buy milk tomorrow at 3pm"}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	input := <-uc.created
	if input.RawText != "Buy milk tomorrow at 3pm" {
		t.Errorf("RawText = %q", input.RawText)
	}
	sc := <-uc.scopes
	if sc.UserID != "tg:42" {
		t.Errorf("UserID = %q, want tg:42", sc.UserID)
	}
	if sc.Username != "alice" {
		t.Errorf("Username = %q, want alice", sc.Username)
	}

	reply := sender.wait(t)
	if reply.chatID != 42 {
		t.Errorf("chatID = %d, want 42", reply.chatID)
	}
	for _, want := range []string{"Buy milk", "shopping", "2025-03-06", "15:00"} {
		if !strings.Contains(reply.text, want) {
			t.Errorf("reply %q missing %q", reply.text, want)
		}
	}
}

func TestWebhookHelpCommands(t *testing.T) {
	uc := newMockUseCase()
	sender := newMockSender()
	srv := newServer(uc, sender)
	defer srv.Close()

	for _, cmd := range []string{"/start", "/help"} {
		postUpdate(t, srv.URL, `{"update_id":1,"message":{"chat":{"id":42,"type":"private"},"text":"`+cmd+`"}}`)

		reply := sender.wait(t)
		if !strings.Contains(reply.text, "plain English") {
			t.Errorf("%s reply = %q, want help text", cmd, reply.text)
		}
	}

	select {
	case input := <-uc.created:
		t.Errorf("command created a task: %+v", input)
	default:
	}
}

func TestWebhookIgnoresNonText(t *testing.T) {
	uc := newMockUseCase()
	sender := newMockSender()
	srv := newServer(uc, sender)
	defer srv.Close()

	for _, body := range []string{
		`{"update_id":1}`,
		`{"update_id":2,"message":{"chat":{"id":42,"type":"private"},"text":"  "}}`,
	} {
		resp := postUpdate(t, srv.URL, body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
	}

	select {
	case input := <-uc.created:
		t.Errorf("ignored update created a task: %+v", input)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebhookCreateFailureReplies(t *testing.T) {
	uc := newMockUseCase()
	uc.err = task.ErrEmptyInput
	sender := newMockSender()
	srv := newServer(uc, sender)
	defer srv.Close()

	postUpdate(t, srv.URL, `{"update_id":1,"message":{"chat":{"id":42,"type":"private"},"text":"Buy milk"}}`)

	reply := sender.wait(t)
	if !strings.Contains(reply.text, "could not save") {
		t.Errorf("reply = %q, want failure notice", reply.text)
	}
}
