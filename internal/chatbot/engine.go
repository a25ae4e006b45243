package chatbot

import (
	"fmt"
	"strings"
	"time"

	"codecraft-agent/internal/domain"
)

const (
	defaultMinInputLen     = 10
	defaultMaxInputLen     = 1000
	defaultMinWords        = 3
	defaultMinMeaningful   = 2
	defaultConversationCap = 20
)

// genericAcks are short acknowledgments that count as follow-ups even though
// they contain no follow-up keyword. A short message that is neither an
// acknowledgment nor keyword-bearing is ambiguous and rejected with a
// clarifying question instead.
var genericAcks = map[string]bool{
	"ok": true, "okay": true, "yes": true, "yeah": true, "sure": true,
	"no": true, "thanks": true, "thank": true, "please": true,
}

// nowFn is the clock seam, overridden in tests.
var nowFn = time.Now

// Config bounds a single engine instance. Zero values fall back to defaults.
type Config struct {
	MinInputLen       int
	MaxInputLen       int
	MinWords          int
	MinMeaningful     int
	ConversationCap   int
	FollowupWordLimit int
}

func (c Config) withDefaults() Config {
	if c.MinInputLen <= 0 {
		c.MinInputLen = defaultMinInputLen
	}
	if c.MaxInputLen <= 0 {
		c.MaxInputLen = defaultMaxInputLen
	}
	if c.MinWords <= 0 {
		c.MinWords = defaultMinWords
	}
	if c.MinMeaningful <= 0 {
		c.MinMeaningful = defaultMinMeaningful
	}
	if c.ConversationCap <= 0 {
		c.ConversationCap = defaultConversationCap
	}
	if c.FollowupWordLimit <= 0 {
		c.FollowupWordLimit = defaultFollowupWordLimit
	}
	return c
}

// Engine is the classification-and-response pipeline. It holds no mutable
// state: every turn is a pure function of the input and the conversation
// value passed in, and the updated conversation is handed back to the caller.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine with the given bounds.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// TurnResult is the outcome of a successful turn.
type TurnResult struct {
	Response     string
	Category     domain.Category
	Timestamp    time.Time
	Conversation domain.Conversation
}

// Respond runs one turn: validate the input, either continue the previous
// topic or classify afresh, render the document, and append the exchange.
// On a *ValidationError the conversation is returned unchanged.
func (e *Engine) Respond(userInput string, conv domain.Conversation) (TurnResult, error) {
	input := strings.TrimSpace(userInput)
	if input == "" {
		return TurnResult{}, validationErrorf("⚠️ Please enter your project requirements!")
	}

	last, hasLast := conv.Last()

	if IsFollowup(input, hasLast, e.cfg.FollowupWordLimit) {
		if !hasFollowupKeyword(input) && !isGenericAck(input) {
			return TurnResult{}, validationErrorf(fmt.Sprintf(
				"I'm not sure how that relates to your %s. Could you clarify what you'd like to know?",
				last.Category.Label()))
		}
		return e.completeTurn(input, RenderFollowup(input, last.Category), last.Category, conv), nil
	}

	if err := e.validate(input); err != nil {
		return TurnResult{}, err
	}

	category := Classify(Normalize(input))
	tmpl := GetTemplate(category)
	if hasLast && last.Category != category {
		tmpl.Advice = transitionAdvice(last.Category, category) + " " + tmpl.Advice
	}
	return e.completeTurn(input, RenderRecommendation(tmpl), category, conv), nil
}

func (e *Engine) completeTurn(input, response string, category domain.Category, conv domain.Conversation) TurnResult {
	ts := nowFn().UTC()
	conv = AppendExchange(conv, domain.Exchange{
		UserMessage: input,
		Response:    response,
		Category:    category,
		Timestamp:   ts,
	}, e.cfg.ConversationCap)
	return TurnResult{
		Response:     response,
		Category:     category,
		Timestamp:    ts,
		Conversation: conv,
	}
}

// validate applies the fresh-classification input rules. Follow-up turns
// bypass it: a four-word "tell me more please" is legitimate there.
func (e *Engine) validate(input string) error {
	if len(input) < e.cfg.MinInputLen {
		return validationErrorf("⚠️ That's a bit short. Please describe your project in more detail!")
	}
	if len(input) > e.cfg.MaxInputLen {
		return validationErrorf(fmt.Sprintf("⚠️ Please keep your description under %d characters.", e.cfg.MaxInputLen))
	}
	words := strings.Fields(input)
	if len(words) < e.cfg.MinWords {
		return validationErrorf("⚠️ That's a bit short. Please describe your project in more detail!")
	}
	for _, w := range words {
		if isNumeric(w) {
			return validationErrorf("⚠️ Numbers alone don't tell me much. Please describe your project in words!")
		}
	}
	if meaningfulWordCount(input) < e.cfg.MinMeaningful {
		return validationErrorf("⚠️ That's too generic. Please describe what your project should actually do!")
	}
	return nil
}

func transitionAdvice(prev, next domain.Category) string {
	return fmt.Sprintf("I see we've moved from your %s to a %s, so here is advice for the new direction.",
		prev.Label(), next.Label())
}

func isGenericAck(input string) bool {
	for _, w := range strings.Fields(strings.ToLower(input)) {
		if genericAcks[strings.Trim(w, ".,!?")] {
			return true
		}
	}
	return false
}

func isNumeric(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(word) > 0
}
