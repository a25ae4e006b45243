package domain

import "time"

// Exchange is one completed conversation turn: what the user asked, the
// rendered document they got back, and the category the turn resolved to.
// Immutable once appended to a Conversation.
type Exchange struct {
	UserMessage string    `json:"user_message"`
	Response    string    `json:"response"`
	Category    Category  `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

// Conversation is the ordered, size-bounded exchange log for the active
// session, oldest first. Only the last entry is consulted by classification.
type Conversation struct {
	Exchanges []Exchange `json:"exchanges"`
}

// Len returns the number of exchanges.
func (c Conversation) Len() int {
	return len(c.Exchanges)
}

// Last returns the most recent exchange, or false when the conversation is
// empty.
func (c Conversation) Last() (Exchange, bool) {
	if len(c.Exchanges) == 0 {
		return Exchange{}, false
	}
	return c.Exchanges[len(c.Exchanges)-1], true
}

// Clone returns a deep copy so archived snapshots are not aliased to the
// live conversation.
func (c Conversation) Clone() Conversation {
	out := Conversation{Exchanges: make([]Exchange, len(c.Exchanges))}
	copy(out.Exchanges, c.Exchanges)
	return out
}

// SavedConversation is an archived Conversation snapshot owned by a single
// session.
type SavedConversation struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Preview   string       `json:"preview"`
	Category  Category     `json:"category"`
	CreatedAt time.Time    `json:"created_at"`
	Messages  Conversation `json:"messages"`
}
