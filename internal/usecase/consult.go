package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"codecraft-agent/internal/chatbot"
	"codecraft-agent/internal/domain"
)

const (
	defaultSavedChatCap = 10
	maxPassthroughLen   = 1000
	personaParamSuffix  = "/persona_prompt"
	modelParamSuffix    = "/config/openai_model"
)

// ParamGetter fetches configuration parameters (persona prompt, model name)
// for the LLM passthrough mode.
type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// LLMClient is the opaque external collaborator: text in, text out, or an
// error. A nil client disables the passthrough mode entirely.
type LLMClient interface {
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

// StateStore owns session-scoped persistence of the active conversation and
// the saved chat list. The core never touches it.
type StateStore interface {
	GetConversation(ctx context.Context, sessionID string) (domain.Conversation, error)
	PutConversation(ctx context.Context, sessionID string, conv domain.Conversation) error
	ListSavedChats(ctx context.Context, sessionID string) ([]domain.SavedConversation, error)
	ArchiveChat(ctx context.Context, sessionID string, chat domain.SavedConversation, fresh domain.Conversation, evictIDs []string) error
	DeleteSavedChat(ctx context.Context, sessionID, chatID string) error
}

// ConsultService orchestrates one chatbot turn: load session state, run the
// rule engine (or forward to the LLM collaborator), persist the updated
// conversation.
type ConsultService struct {
	state        StateStore
	engine       *chatbot.Engine
	llm          LLMClient
	params       ParamGetter
	paramPrefix  string
	savedChatCap int
	convCap      int
	log          zerolog.Logger

	cacheMu     sync.RWMutex
	cacheLoaded bool
	persona     string
	model       string
}

// ProcessInput is one submitted turn.
type ProcessInput struct {
	SessionID string
	UserInput string
}

// ProcessOutput is the envelope for a completed turn.
type ProcessOutput struct {
	SessionID         string
	Response          string
	Category          domain.Category
	Timestamp         time.Time
	ConversationCount int
}

// NewConsultService wires the service. llm may be nil (rule engine only);
// when it is non-nil, params and paramPrefix are required so the persona and
// model can be resolved.
func NewConsultService(state StateStore, engine *chatbot.Engine, llm LLMClient, params ParamGetter, paramPrefix string, savedChatCap, convCap int, log zerolog.Logger) (*ConsultService, error) {
	if state == nil {
		return nil, errors.New("usecase: state store must not be nil")
	}
	if engine == nil {
		return nil, errors.New("usecase: engine must not be nil")
	}
	paramPrefix = strings.TrimRight(strings.TrimSpace(paramPrefix), "/")
	if llm != nil {
		if params == nil {
			return nil, errors.New("usecase: param getter required when llm is set")
		}
		if paramPrefix == "" {
			return nil, errors.New("usecase: parameter prefix required when llm is set")
		}
	}
	if savedChatCap <= 0 {
		savedChatCap = defaultSavedChatCap
	}
	return &ConsultService{
		state:        state,
		engine:       engine,
		llm:          llm,
		params:       params,
		paramPrefix:  paramPrefix,
		savedChatCap: savedChatCap,
		convCap:      convCap,
		log:          log,
	}, nil
}

// Process runs one turn for the session. A missing session id starts a new
// session. Validation failures return *Error with ErrorInvalidInput and a
// user-facing Message; the stored conversation is left untouched.
func (s *ConsultService) Process(ctx context.Context, in ProcessInput) (ProcessOutput, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = newSessionID()
	}

	conv, err := s.state.GetConversation(ctx, sessionID)
	if err != nil {
		return ProcessOutput{}, newError(ErrorInternal, "state_load_error", err)
	}

	if s.llm != nil {
		return s.passthroughTurn(ctx, sessionID, in.UserInput, conv)
	}

	res, err := s.engine.Respond(in.UserInput, conv)
	if err != nil {
		var verr *chatbot.ValidationError
		if errors.As(err, &verr) {
			return ProcessOutput{}, newValidationError("validation_failed", verr.Message)
		}
		return ProcessOutput{}, newError(ErrorInternal, "engine_error", err)
	}

	if err := s.state.PutConversation(ctx, sessionID, res.Conversation); err != nil {
		return ProcessOutput{}, newError(ErrorInternal, "state_save_error", err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("category", string(res.Category)).
		Int("conversation_count", res.Conversation.Len()).
		Msg("turn completed")

	return ProcessOutput{
		SessionID:         sessionID,
		Response:          res.Response,
		Category:          res.Category,
		Timestamp:         res.Timestamp,
		ConversationCount: res.Conversation.Len(),
	}, nil
}

// passthroughTurn forwards the conversation to the LLM collaborator. On
// collaborator failure a fixed apology document is returned and no exchange
// is recorded.
func (s *ConsultService) passthroughTurn(ctx context.Context, sessionID, userInput string, conv domain.Conversation) (ProcessOutput, error) {
	input := strings.TrimSpace(userInput)
	if input == "" {
		return ProcessOutput{}, newValidationError("empty_input", "⚠️ Please enter your project requirements!")
	}
	if len(input) > maxPassthroughLen {
		return ProcessOutput{}, newValidationError("input_too_long",
			fmt.Sprintf("⚠️ Please keep your description under %d characters.", maxPassthroughLen))
	}

	if err := s.ensureConfig(ctx); err != nil {
		return ProcessOutput{}, newError(ErrorInternal, "ssm_load_error", err)
	}

	// The category is still tracked in passthrough mode so follow-up context
	// and saved chat titles keep working.
	category := chatbot.Classify(chatbot.Normalize(input))
	if last, ok := conv.Last(); ok && chatbot.IsFollowup(input, true, 0) {
		category = last.Category
	}

	reply, err := s.llm.Chat(ctx, s.model, buildConsultMessages(s.persona, conv, input))
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("llm collaborator failed, serving fallback")
		return ProcessOutput{
			SessionID:         sessionID,
			Response:          chatbot.RenderCollaboratorFallback(),
			Category:          category,
			Timestamp:         time.Now().UTC(),
			ConversationCount: conv.Len(),
		}, nil
	}

	response := chatbot.RenderPlain(reply)
	ts := time.Now().UTC()
	conv = chatbot.AppendExchange(conv, domain.Exchange{
		UserMessage: input,
		Response:    response,
		Category:    category,
		Timestamp:   ts,
	}, s.convCap)

	if err := s.state.PutConversation(ctx, sessionID, conv); err != nil {
		return ProcessOutput{}, newError(ErrorInternal, "state_save_error", err)
	}

	return ProcessOutput{
		SessionID:         sessionID,
		Response:          response,
		Category:          category,
		Timestamp:         ts,
		ConversationCount: conv.Len(),
	}, nil
}

// NewChat archives a non-empty active conversation and resets it. Returns
// the updated saved chat list.
func (s *ConsultService) NewChat(ctx context.Context, sessionID string) ([]domain.SavedConversation, error) {
	conv, err := s.state.GetConversation(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "state_load_error", err)
	}
	saved, err := s.state.ListSavedChats(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "state_load_error", err)
	}

	if conv.Len() == 0 {
		return saved, nil
	}

	newSaved, fresh := chatbot.StartNewChat(conv, saved, s.savedChatCap)
	archived := newSaved[len(newSaved)-1]
	evicted := evictedIDs(saved, newSaved)

	if err := s.state.ArchiveChat(ctx, sessionID, archived, fresh, evicted); err != nil {
		return nil, newError(ErrorInternal, "state_save_error", err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("chat_id", archived.ID).
		Str("title", archived.Title).
		Msg("conversation archived")

	return newSaved, nil
}

// LoadChat restores a saved conversation as the active one.
func (s *ConsultService) LoadChat(ctx context.Context, sessionID, chatID string) (domain.Conversation, error) {
	saved, err := s.state.ListSavedChats(ctx, sessionID)
	if err != nil {
		return domain.Conversation{}, newError(ErrorInternal, "state_load_error", err)
	}
	conv, ok := chatbot.LoadChat(chatID, saved)
	if !ok {
		return domain.Conversation{}, newError(ErrorNotFound, "chat_not_found", nil)
	}
	if err := s.state.PutConversation(ctx, sessionID, conv); err != nil {
		return domain.Conversation{}, newError(ErrorInternal, "state_save_error", err)
	}
	return conv, nil
}

// DeleteChat removes a saved conversation. Deleting an unknown id is not an
// error.
func (s *ConsultService) DeleteChat(ctx context.Context, sessionID, chatID string) error {
	if err := s.state.DeleteSavedChat(ctx, sessionID, chatID); err != nil {
		return newError(ErrorInternal, "state_delete_error", err)
	}
	return nil
}

// Snapshot returns the active conversation and saved chat list for display.
func (s *ConsultService) Snapshot(ctx context.Context, sessionID string) (domain.Conversation, []domain.SavedConversation, error) {
	conv, err := s.state.GetConversation(ctx, sessionID)
	if err != nil {
		return domain.Conversation{}, nil, newError(ErrorInternal, "state_load_error", err)
	}
	saved, err := s.state.ListSavedChats(ctx, sessionID)
	if err != nil {
		return domain.Conversation{}, nil, newError(ErrorInternal, "state_load_error", err)
	}
	return conv, saved, nil
}

// ensureConfig lazily loads persona and model from the parameter store once
// per process.
func (s *ConsultService) ensureConfig(ctx context.Context) error {
	s.cacheMu.RLock()
	if s.cacheLoaded {
		s.cacheMu.RUnlock()
		return nil
	}
	s.cacheMu.RUnlock()

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheLoaded {
		return nil
	}

	persona, err := s.params.GetParameter(ctx, s.paramPrefix+personaParamSuffix)
	if err != nil {
		return fmt.Errorf("usecase: load persona prompt: %w", err)
	}
	model, err := s.params.GetParameter(ctx, s.paramPrefix+modelParamSuffix)
	if err != nil {
		return fmt.Errorf("usecase: load openai model: %w", err)
	}
	if strings.TrimSpace(model) == "" {
		return errors.New("usecase: openai model parameter is empty")
	}

	s.persona = persona
	s.model = model
	s.cacheLoaded = true
	return nil
}

func evictedIDs(before, after []domain.SavedConversation) []string {
	kept := make(map[string]bool, len(after))
	for _, c := range after {
		kept[c.ID] = true
	}
	var evicted []string
	for _, c := range before {
		if !kept[c.ID] {
			evicted = append(evicted, c.ID)
		}
	}
	return evicted
}

var newSessionID = func() string {
	return uuid.NewString()
}
