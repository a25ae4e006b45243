package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"codecraft-agent/internal/domain"
)

const (
	skConversation = "CONV#"
	skPrefixChat   = "CHAT#"
	ttlDuration    = 30 * 24 * time.Hour // 30-day TTL
)

// dynamodbAPI is the minimal DynamoDB interface required by Store.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store wraps a DynamoDB table holding session-scoped chatbot state: one
// active conversation document plus the saved chat list per session.
type Store struct {
	api       dynamodbAPI
	tableName string
}

// New creates a Store backed by the given DynamoDB API.
func New(api dynamodbAPI, tableName string) (*Store, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Store{api: api, tableName: tableName}, nil
}

// sessPK returns the partition key for a session.
func sessPK(sessionID string) string {
	return "SESS#" + sessionID
}

func chatSK(chatID string) string {
	return skPrefixChat + chatID
}

// ttlValue returns a Unix timestamp 30 days in the future.
func ttlValue() int64 {
	return time.Now().Add(ttlDuration).Unix()
}

// GetConversation loads the active conversation document. A missing item is
// an empty conversation, not an error.
func (s *Store) GetConversation(ctx context.Context, sessionID string) (domain.Conversation, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: sessPK(sessionID)},
			"SK": &types.AttributeValueMemberS{Value: skConversation},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("repository: GetConversation get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.Conversation{}, nil
	}

	var conv domain.Conversation
	if err := unmarshalDoc(out.Item, &conv); err != nil {
		return domain.Conversation{}, fmt.Errorf("repository: GetConversation decode: %w", err)
	}
	return conv, nil
}

// PutConversation replaces the active conversation document.
func (s *Store) PutConversation(ctx context.Context, sessionID string, conv domain.Conversation) error {
	item, err := conversationItem(sessionID, conv)
	if err != nil {
		return fmt.Errorf("repository: PutConversation encode: %w", err)
	}
	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("repository: PutConversation: %w", err)
	}
	return nil
}

// ListSavedChats returns the session's saved chats ordered oldest first.
func (s *Store) ListSavedChats(ctx context.Context, sessionID string) ([]domain.SavedConversation, error) {
	out, err := s.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: sessPK(sessionID)},
			":prefix": &types.AttributeValueMemberS{Value: skPrefixChat},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("repository: ListSavedChats query: %w", err)
	}

	chats := make([]domain.SavedConversation, 0, len(out.Items))
	for _, item := range out.Items {
		var chat domain.SavedConversation
		if err := unmarshalDoc(item, &chat); err != nil {
			return nil, fmt.Errorf("repository: ListSavedChats decode: %w", err)
		}
		chats = append(chats, chat)
	}
	// The sort key is the chat id, so restore archive order here.
	sort.Slice(chats, func(i, j int) bool {
		if !chats[i].CreatedAt.Equal(chats[j].CreatedAt) {
			return chats[i].CreatedAt.Before(chats[j].CreatedAt)
		}
		return chats[i].ID < chats[j].ID
	})
	return chats, nil
}

// ArchiveChat atomically writes the archived chat, resets the active
// conversation and deletes any chats evicted from the bounded saved list.
func (s *Store) ArchiveChat(ctx context.Context, sessionID string, chat domain.SavedConversation, fresh domain.Conversation, evictIDs []string) error {
	if chat.ID == "" {
		return errors.New("repository: ArchiveChat: chat id is required")
	}

	chatItem, err := savedChatItem(sessionID, chat)
	if err != nil {
		return fmt.Errorf("repository: ArchiveChat encode chat: %w", err)
	}
	convItem, err := conversationItem(sessionID, fresh)
	if err != nil {
		return fmt.Errorf("repository: ArchiveChat encode conversation: %w", err)
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(s.tableName), Item: chatItem}},
		{Put: &types.Put{TableName: aws.String(s.tableName), Item: convItem}},
	}
	for _, id := range evictIDs {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: sessPK(sessionID)},
					"SK": &types.AttributeValueMemberS{Value: chatSK(id)},
				},
			},
		})
	}

	_, err = s.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return fmt.Errorf("repository: ArchiveChat: %w", err)
	}
	return nil
}

// DeleteSavedChat removes a saved chat. Deleting an absent chat succeeds.
func (s *Store) DeleteSavedChat(ctx context.Context, sessionID, chatID string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: sessPK(sessionID)},
			"SK": &types.AttributeValueMemberS{Value: chatSK(chatID)},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: DeleteSavedChat: %w", err)
	}
	return nil
}

func conversationItem(sessionID string, conv domain.Conversation) (map[string]types.AttributeValue, error) {
	doc, err := json.Marshal(conv)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: sessPK(sessionID)},
		"SK":        &types.AttributeValueMemberS{Value: skConversation},
		"sessionId": &types.AttributeValueMemberS{Value: sessionID},
		"doc":       &types.AttributeValueMemberS{Value: string(doc)},
		"updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		"ttl":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttlValue())},
	}, nil
}

func savedChatItem(sessionID string, chat domain.SavedConversation) (map[string]types.AttributeValue, error) {
	doc, err := json.Marshal(chat)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: sessPK(sessionID)},
		"SK":        &types.AttributeValueMemberS{Value: chatSK(chat.ID)},
		"sessionId": &types.AttributeValueMemberS{Value: sessionID},
		"title":     &types.AttributeValueMemberS{Value: chat.Title},
		"category":  &types.AttributeValueMemberS{Value: string(chat.Category)},
		"doc":       &types.AttributeValueMemberS{Value: string(doc)},
		"createdAt": &types.AttributeValueMemberS{Value: chat.CreatedAt.UTC().Format(time.RFC3339Nano)},
		"ttl":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttlValue())},
	}, nil
}

// unmarshalDoc decodes the JSON "doc" attribute into dst.
func unmarshalDoc(item map[string]types.AttributeValue, dst any) error {
	v, ok := item["doc"]
	if !ok {
		return errors.New("missing attribute \"doc\"")
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return errors.New("attribute \"doc\" is not a string")
	}
	return json.Unmarshal([]byte(s.Value), dst)
}
