package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"codecraft-agent/internal/domain"
	"codecraft-agent/internal/usecase"
)

// consultAPI is the slice of ConsultService the handler needs.
type consultAPI interface {
	Process(ctx context.Context, in usecase.ProcessInput) (usecase.ProcessOutput, error)
	NewChat(ctx context.Context, sessionID string) ([]domain.SavedConversation, error)
	LoadChat(ctx context.Context, sessionID, chatID string) (domain.Conversation, error)
	DeleteChat(ctx context.Context, sessionID, chatID string) error
	Snapshot(ctx context.Context, sessionID string) (domain.Conversation, []domain.SavedConversation, error)
}

// Handler routes API Gateway requests to the consult service.
type Handler struct {
	svc consultAPI
	log zerolog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc consultAPI, log zerolog.Logger) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("handler: consult service must not be nil")
	}
	return &Handler{svc: svc, log: log}, nil
}

type turnRequest struct {
	SessionID string `json:"session_id"`
	UserInput string `json:"user_input"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	ChatID    string `json:"chat_id"`
}

type turnResponse struct {
	Success           bool   `json:"success"`
	SessionID         string `json:"session_id"`
	Response          string `json:"response"`
	Category          string `json:"category"`
	Timestamp         string `json:"timestamp"`
	ConversationCount int    `json:"conversation_count"`
	Notice            string `json:"notice,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type savedChatSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Preview      string `json:"preview"`
	Category     string `json:"category"`
	CreatedAt    string `json:"created_at"`
	MessageCount int    `json:"message_count"`
}

type snapshotResponse struct {
	Success      bool               `json:"success"`
	Conversation []domain.Exchange  `json:"conversation"`
	SavedChats   []savedChatSummary `json:"saved_chats"`
}

type savedChatsResponse struct {
	Success    bool               `json:"success"`
	SavedChats []savedChatSummary `json:"saved_chats"`
}

type conversationResponse struct {
	Success      bool              `json:"success"`
	Conversation []domain.Exchange `json:"conversation"`
}

type okResponse struct {
	Success bool `json:"success"`
}

// Handle dispatches one API Gateway request.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	path := strings.TrimRight(req.Path, "/")

	switch {
	case req.HTTPMethod == http.MethodGet && path == "":
		return h.snapshot(ctx, req)
	case req.HTTPMethod == http.MethodPost && path == "":
		return h.processTurn(ctx, req)
	case req.HTTPMethod == http.MethodPost && path == "/new-chat":
		return h.newChat(ctx, req)
	case req.HTTPMethod == http.MethodPost && path == "/load-chat":
		return h.loadChat(ctx, req)
	case req.HTTPMethod == http.MethodPost && path == "/delete-chat":
		return h.deleteChat(ctx, req)
	default:
		return jsonResponse(http.StatusNotFound, errorResponse{Error: "not found"}), nil
	}
}

func (h *Handler) processTurn(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in turnRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"}), nil
	}

	out, err := h.svc.Process(ctx, usecase.ProcessInput{
		SessionID: sessionID(req, in.SessionID),
		UserInput: in.UserInput,
	})
	if err != nil {
		return h.errorTo(err), nil
	}

	return jsonResponse(http.StatusOK, turnResponse{
		Success:           true,
		SessionID:         out.SessionID,
		Response:          out.Response,
		Category:          string(out.Category),
		Timestamp:         out.Timestamp.Format(time.RFC3339),
		ConversationCount: out.ConversationCount,
		Notice:            "Analysis complete! Here are your professional recommendations.",
	}), nil
}

func (h *Handler) snapshot(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	conv, saved, err := h.svc.Snapshot(ctx, sessionID(req, ""))
	if err != nil {
		return h.errorTo(err), nil
	}
	return jsonResponse(http.StatusOK, snapshotResponse{
		Success:      true,
		Conversation: exchanges(conv),
		SavedChats:   summaries(saved),
	}), nil
}

func (h *Handler) newChat(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in chatRequest
	_ = json.Unmarshal([]byte(req.Body), &in)

	saved, err := h.svc.NewChat(ctx, sessionID(req, in.SessionID))
	if err != nil {
		return h.errorTo(err), nil
	}
	return jsonResponse(http.StatusOK, savedChatsResponse{Success: true, SavedChats: summaries(saved)}), nil
}

func (h *Handler) loadChat(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	in, ok := chatRequestFrom(req)
	if !ok {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "chat_id is required"}), nil
	}

	conv, err := h.svc.LoadChat(ctx, sessionID(req, in.SessionID), in.ChatID)
	if err != nil {
		return h.errorTo(err), nil
	}
	return jsonResponse(http.StatusOK, conversationResponse{Success: true, Conversation: exchanges(conv)}), nil
}

func (h *Handler) deleteChat(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	in, ok := chatRequestFrom(req)
	if !ok {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "chat_id is required"}), nil
	}

	if err := h.svc.DeleteChat(ctx, sessionID(req, in.SessionID), in.ChatID); err != nil {
		return h.errorTo(err), nil
	}
	return jsonResponse(http.StatusOK, okResponse{Success: true}), nil
}

// errorTo maps usecase errors to HTTP responses. Validation messages are
// user-facing; everything else gets a generic line and a log entry.
func (h *Handler) errorTo(err error) events.APIGatewayProxyResponse {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		switch ucErr.Code {
		case usecase.ErrorInvalidInput:
			msg := ucErr.Message
			if msg == "" {
				msg = "invalid input"
			}
			return jsonResponse(http.StatusUnprocessableEntity, errorResponse{Error: msg})
		case usecase.ErrorNotFound:
			return jsonResponse(http.StatusNotFound, errorResponse{Error: "chat not found"})
		case usecase.ErrorUpstream:
			h.log.Error().Err(err).Msg("upstream failure")
			return jsonResponse(http.StatusBadGateway, errorResponse{Error: "upstream service unavailable"})
		}
	}
	h.log.Error().Err(err).Msg("internal failure")
	return jsonResponse(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// sessionID prefers the body field, then the query string. Empty means the
// usecase will mint a fresh session.
func sessionID(req events.APIGatewayProxyRequest, fromBody string) string {
	if s := strings.TrimSpace(fromBody); s != "" {
		return s
	}
	return strings.TrimSpace(req.QueryStringParameters["session_id"])
}

// chatRequestFrom reads chat_id/session_id from the JSON body, falling back
// to query parameters for form-style callers.
func chatRequestFrom(req events.APIGatewayProxyRequest) (chatRequest, bool) {
	var in chatRequest
	_ = json.Unmarshal([]byte(req.Body), &in)
	if in.ChatID == "" {
		in.ChatID = strings.TrimSpace(req.QueryStringParameters["chat_id"])
	}
	return in, in.ChatID != ""
}

func exchanges(conv domain.Conversation) []domain.Exchange {
	if conv.Exchanges == nil {
		return []domain.Exchange{}
	}
	return conv.Exchanges
}

func summaries(saved []domain.SavedConversation) []savedChatSummary {
	out := make([]savedChatSummary, 0, len(saved))
	for _, s := range saved {
		out = append(out, savedChatSummary{
			ID:           s.ID,
			Title:        s.Title,
			Preview:      s.Preview,
			Category:     string(s.Category),
			CreatedAt:    s.CreatedAt.Format(time.RFC3339),
			MessageCount: s.Messages.Len(),
		})
	}
	return out
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"content-type": "application/json"},
			Body:       `{"success":false,"error":"internal error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(raw),
	}
}
