package chatbot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"codecraft-agent/internal/domain"
)

func exchangeN(n int) domain.Exchange {
	return domain.Exchange{
		UserMessage: fmt.Sprintf("message %d", n),
		Response:    fmt.Sprintf("response %d", n),
		Category:    domain.CategoryGeneral,
		Timestamp:   time.Date(2025, 1, 1, 0, 0, n, 0, time.UTC),
	}
}

func TestAppendExchange_SlidingWindow(t *testing.T) {
	conv := domain.Conversation{}
	for i := 0; i < 25; i++ {
		conv = AppendExchange(conv, exchangeN(i), 20)
	}

	require.Equal(t, 20, conv.Len())
	// oldest five evicted, order preserved
	require.Equal(t, "message 5", conv.Exchanges[0].UserMessage)
	require.Equal(t, "message 24", conv.Exchanges[19].UserMessage)
}

func TestAppendExchange_DoesNotMutateInput(t *testing.T) {
	conv := AppendExchange(domain.Conversation{}, exchangeN(0), 20)
	_ = AppendExchange(conv, exchangeN(1), 20)
	require.Equal(t, 1, conv.Len())
}

func TestStartNewChat_ArchivesNonEmptyConversation(t *testing.T) {
	origID, origNow := newChatID, nowFn
	defer func() { newChatID, nowFn = origID, origNow }()
	newChatID = func() string { return "chat-1" }
	nowFn = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	conv := domain.Conversation{Exchanges: []domain.Exchange{
		{UserMessage: "I need an inventory system for my warehouse", Category: domain.CategoryInventory},
		{UserMessage: "tell me more", Category: domain.CategoryInventory},
	}}

	saved, fresh := StartNewChat(conv, nil, 10)
	require.Equal(t, 0, fresh.Len())
	require.Len(t, saved, 1)

	got := saved[0]
	require.Equal(t, "chat-1", got.ID)
	require.Equal(t, "Inventory Warehouse", got.Title)
	require.Equal(t, "I need an inventory system for my warehouse", got.Preview)
	require.Equal(t, domain.CategoryInventory, got.Category)
	require.Equal(t, conv, got.Messages)
}

func TestStartNewChat_EmptyConversationArchivesNothing(t *testing.T) {
	saved, fresh := StartNewChat(domain.Conversation{}, nil, 10)
	require.Empty(t, saved)
	require.Equal(t, 0, fresh.Len())
}

func TestStartNewChat_SavedListEvictsOldestFirst(t *testing.T) {
	origID := newChatID
	defer func() { newChatID = origID }()
	n := 0
	newChatID = func() string { n++; return fmt.Sprintf("chat-%d", n) }

	var saved []domain.SavedConversation
	for i := 0; i < 12; i++ {
		conv := domain.Conversation{Exchanges: []domain.Exchange{exchangeN(i)}}
		saved, _ = StartNewChat(conv, saved, 10)
	}

	require.Len(t, saved, 10)
	require.Equal(t, "chat-3", saved[0].ID)
	require.Equal(t, "chat-12", saved[9].ID)
}

func TestDeriveTitle_FallsBackToCategory(t *testing.T) {
	// every word is filler or a stop word
	title := deriveTitle("i need it", domain.CategoryBlog)
	require.Equal(t, "Blog System", title)
}

func TestLoadChat_RoundTrip(t *testing.T) {
	conv := domain.Conversation{Exchanges: []domain.Exchange{
		{UserMessage: "I want a blog for my bakery", Category: domain.CategoryBlog},
	}}
	saved, _ := StartNewChat(conv, nil, 10)

	loaded, ok := LoadChat(saved[0].ID, saved)
	require.True(t, ok)
	require.Equal(t, conv, loaded)

	_, ok = LoadChat("missing", saved)
	require.False(t, ok)
}

func TestDeleteChat_Idempotent(t *testing.T) {
	conv := domain.Conversation{Exchanges: []domain.Exchange{exchangeN(0)}}
	saved, _ := StartNewChat(conv, nil, 10)
	id := saved[0].ID

	once := DeleteChat(id, saved)
	twice := DeleteChat(id, once)
	require.Empty(t, once)
	require.Equal(t, once, twice)
}
