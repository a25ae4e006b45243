package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"codecraft-agent/internal/domain"
	"codecraft-agent/internal/usecase"
)

type stubService struct {
	processOut usecase.ProcessOutput
	processErr error
	processIn  usecase.ProcessInput

	conv  domain.Conversation
	saved []domain.SavedConversation
	err   error

	deletedChatID string
	loadedChatID  string
}

func (s *stubService) Process(_ context.Context, in usecase.ProcessInput) (usecase.ProcessOutput, error) {
	s.processIn = in
	return s.processOut, s.processErr
}

func (s *stubService) NewChat(_ context.Context, _ string) ([]domain.SavedConversation, error) {
	return s.saved, s.err
}

func (s *stubService) LoadChat(_ context.Context, _, chatID string) (domain.Conversation, error) {
	s.loadedChatID = chatID
	return s.conv, s.err
}

func (s *stubService) DeleteChat(_ context.Context, _, chatID string) error {
	s.deletedChatID = chatID
	return s.err
}

func (s *stubService) Snapshot(_ context.Context, _ string) (domain.Conversation, []domain.SavedConversation, error) {
	return s.conv, s.saved, s.err
}

func newTestHandler(t *testing.T, svc *stubService) *Handler {
	t.Helper()
	h, err := NewHandler(svc, zerolog.Nop())
	require.NoError(t, err)
	return h
}

func makeRequest(method, path, body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       path,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestNewHandler_ValidatesDependency(t *testing.T) {
	_, err := NewHandler(nil, zerolog.Nop())
	require.Error(t, err)
}

func TestHandle_ProcessTurn(t *testing.T) {
	svc := &stubService{processOut: usecase.ProcessOutput{
		SessionID:         "sess-1",
		Response:          "<div>doc</div>",
		Category:          domain.CategoryInventory,
		Timestamp:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		ConversationCount: 2,
	}}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/",
		`{"user_input":"track my warehouse stock","session_id":"sess-1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.ProcessInput{SessionID: "sess-1", UserInput: "track my warehouse stock"}, svc.processIn)

	out := parseBody[turnResponse](t, resp.Body)
	require.True(t, out.Success)
	require.Equal(t, "<div>doc</div>", out.Response)
	require.Equal(t, "inventory_system", out.Category)
	require.Equal(t, 2, out.ConversationCount)
	require.Equal(t, "2025-03-01T10:00:00Z", out.Timestamp)
	require.Contains(t, out.Notice, "Analysis complete")
}

func TestHandle_ValidationFailureIs422(t *testing.T) {
	svc := &stubService{processErr: &usecase.Error{
		Code:    usecase.ErrorInvalidInput,
		Reason:  "validation_failed",
		Message: "⚠️ That's a bit short.",
	}}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/", `{"user_input":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.False(t, out.Success)
	require.Equal(t, "⚠️ That's a bit short.", out.Error)
}

func TestHandle_InvalidJSONBody(t *testing.T) {
	h := newTestHandler(t, &stubService{})
	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/", `{"broken`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_Snapshot(t *testing.T) {
	svc := &stubService{
		conv: domain.Conversation{Exchanges: []domain.Exchange{{UserMessage: "hello", Category: domain.CategoryGeneral}}},
		saved: []domain.SavedConversation{{
			ID:        "chat-1",
			Title:     "Bakery Blog",
			Preview:   "I want a blog for my bakery",
			Category:  domain.CategoryBlog,
			CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Messages:  domain.Conversation{Exchanges: []domain.Exchange{{UserMessage: "x"}}},
		}},
	}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodGet, "/", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := parseBody[snapshotResponse](t, resp.Body)
	require.True(t, out.Success)
	require.Len(t, out.Conversation, 1)
	require.Len(t, out.SavedChats, 1)
	require.Equal(t, "Bakery Blog", out.SavedChats[0].Title)
	require.Equal(t, 1, out.SavedChats[0].MessageCount)
}

func TestHandle_NewChat(t *testing.T) {
	svc := &stubService{saved: []domain.SavedConversation{{ID: "chat-1", Title: "Old Chat"}}}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/new-chat", `{"session_id":"sess-1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := parseBody[savedChatsResponse](t, resp.Body)
	require.True(t, out.Success)
	require.Len(t, out.SavedChats, 1)
}

func TestHandle_LoadChat(t *testing.T) {
	svc := &stubService{conv: domain.Conversation{Exchanges: []domain.Exchange{{UserMessage: "restored"}}}}
	h := newTestHandler(t, svc)

	req := makeRequest(http.MethodPost, "/load-chat", "")
	req.QueryStringParameters = map[string]string{"chat_id": "chat-1", "session_id": "sess-1"}

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "chat-1", svc.loadedChatID)

	out := parseBody[conversationResponse](t, resp.Body)
	require.Len(t, out.Conversation, 1)
}

func TestHandle_LoadChat_MissingID(t *testing.T) {
	h := newTestHandler(t, &stubService{})
	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/load-chat", `{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_LoadChat_NotFound(t *testing.T) {
	svc := &stubService{err: &usecase.Error{Code: usecase.ErrorNotFound, Reason: "chat_not_found"}}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/load-chat", `{"chat_id":"nope"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandle_DeleteChat(t *testing.T) {
	svc := &stubService{}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/delete-chat", `{"chat_id":"chat-9"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "chat-9", svc.deletedChatID)
}

func TestHandle_InternalErrorIs500(t *testing.T) {
	svc := &stubService{processErr: errors.New("boom")}
	h := newTestHandler(t, svc)

	resp, err := h.Handle(context.Background(), makeRequest(http.MethodPost, "/", `{"user_input":"x"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.Equal(t, "internal error", out.Error)
}

func TestHandle_UnknownRouteIs404(t *testing.T) {
	h := newTestHandler(t, &stubService{})
	resp, err := h.Handle(context.Background(), makeRequest(http.MethodGet, "/nope", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
