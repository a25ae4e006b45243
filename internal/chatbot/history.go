package chatbot

import (
	"strings"

	"github.com/google/uuid"

	"codecraft-agent/internal/domain"
)

const (
	defaultSavedChatCap = 10
	previewMaxLen       = 60
	titleMaxKeywords    = 4
)

// titleFillerWords are generic request verbs dropped when deriving a saved
// chat title from the opening message.
var titleFillerWords = map[string]bool{
	"need": true, "want": true, "create": true, "build": true, "make": true,
	"like": true, "system": true, "project": true, "help": true,
}

// newChatID is the id seam, overridden in tests.
var newChatID = uuid.NewString

// AppendExchange appends to the conversation and evicts the oldest entries
// once the cap is exceeded (sliding window).
func AppendExchange(conv domain.Conversation, ex domain.Exchange, limit int) domain.Conversation {
	if limit <= 0 {
		limit = defaultConversationCap
	}
	exchanges := append(append([]domain.Exchange{}, conv.Exchanges...), ex)
	if excess := len(exchanges) - limit; excess > 0 {
		exchanges = exchanges[excess:]
	}
	return domain.Conversation{Exchanges: exchanges}
}

// StartNewChat archives a non-empty active conversation into the saved list
// and returns a fresh empty conversation. The saved list is bounded with
// FIFO eviction. An empty active conversation archives nothing.
func StartNewChat(conv domain.Conversation, saved []domain.SavedConversation, savedCap int) ([]domain.SavedConversation, domain.Conversation) {
	if savedCap <= 0 {
		savedCap = defaultSavedChatCap
	}
	if conv.Len() == 0 {
		return saved, domain.Conversation{}
	}

	first := conv.Exchanges[0]
	last := conv.Exchanges[len(conv.Exchanges)-1]
	archived := domain.SavedConversation{
		ID:        newChatID(),
		Title:     deriveTitle(first.UserMessage, last.Category),
		Preview:   truncate(first.UserMessage, previewMaxLen),
		Category:  last.Category,
		CreatedAt: nowFn().UTC(),
		Messages:  conv.Clone(),
	}

	saved = append(append([]domain.SavedConversation{}, saved...), archived)
	if excess := len(saved) - savedCap; excess > 0 {
		saved = saved[excess:]
	}
	return saved, domain.Conversation{}
}

// LoadChat returns a copy of the saved conversation with the given id.
func LoadChat(id string, saved []domain.SavedConversation) (domain.Conversation, bool) {
	for _, s := range saved {
		if s.ID == id {
			return s.Messages.Clone(), true
		}
	}
	return domain.Conversation{}, false
}

// DeleteChat removes the saved conversation with the given id. Deleting an
// absent id is a no-op, so the operation is idempotent.
func DeleteChat(id string, saved []domain.SavedConversation) []domain.SavedConversation {
	out := make([]domain.SavedConversation, 0, len(saved))
	for _, s := range saved {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// deriveTitle extracts up to four meaningful keywords from the opening
// message, falling back to a category-derived title when nothing survives
// filtering.
func deriveTitle(firstMessage string, category domain.Category) string {
	var words []string
	for _, tok := range strings.Fields(strings.ToLower(firstMessage)) {
		tok = strings.Trim(tok, ".,!?")
		if len(tok) < minTokenLen || stopWords[tok] || titleFillerWords[tok] {
			continue
		}
		words = append(words, tok)
		if len(words) == titleMaxKeywords {
			break
		}
	}
	if len(words) == 0 {
		return titleCase(category.Label())
	}
	return titleCase(strings.Join(words, " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
