package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/infrastructure/ratelimit"
	"freelancehub/pkg/errors"
)

func setupMessageTest(t *testing.T) (*MessageUseCase, *memoryConversationRepository, *memoryMessageRepository, string) {
	t.Helper()

	conversationRepo := newMemoryConversationRepository()
	messageRepo := newMemoryMessageRepository()

	conversationUC := NewConversationUseCase(conversationRepo, newMemoryGigRepository(), ratelimit.NewRateLimiter())
	conversation, err := conversationUC.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)

	return NewMessageUseCase(messageRepo, conversationRepo, ratelimit.NewRateLimiter()), conversationRepo, messageRepo, conversation.ID
}

func TestCreateMessageTaggedWithCompositeID(t *testing.T) {
	uc, conversationRepo, _, storageID := setupMessageTest(t)

	message, err := uc.Create(context.Background(), storageID, "buyer1", false, "hello there")
	require.NoError(t, err)

	assert.Equal(t, "seller1buyer1", message.ConversationID)
	assert.Equal(t, "buyer1", message.UserID)

	conversation, err := conversationRepo.GetByConversationID(context.Background(), "seller1buyer1")
	require.NoError(t, err)
	assert.Equal(t, "hello there", conversation.LastMessage)
	assert.True(t, conversation.ReadByBuyer)
	assert.False(t, conversation.ReadBySeller)
}

func TestCreateMessageUnknownConversation(t *testing.T) {
	uc, _, _, _ := setupMessageTest(t)

	_, err := uc.Create(context.Background(), "no-such-id", "buyer1", false, "hello")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateMessageSurvivesSummaryFailure(t *testing.T) {
	uc, conversationRepo, messageRepo, storageID := setupMessageTest(t)

	conversationRepo.summaryErr = errors.Internal("summary write failed", nil)

	message, err := uc.Create(context.Background(), storageID, "seller1", true, "still delivered")
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)

	stored, err := messageRepo.ListByConversationID(context.Background(), "seller1buyer1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestListMessagesResolvesEitherIdentifier(t *testing.T) {
	uc, _, _, storageID := setupMessageTest(t)

	_, err := uc.Create(context.Background(), storageID, "buyer1", false, "first")
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), storageID, "seller1", true, "second")
	require.NoError(t, err)

	byComposite, err := uc.List(context.Background(), "seller1buyer1")
	require.NoError(t, err)
	assert.Len(t, byComposite, 2)

	byStorage, err := uc.List(context.Background(), storageID)
	require.NoError(t, err)
	assert.Len(t, byStorage, 2)

	missing, err := uc.List(context.Background(), "unknown-ref")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMarkMessagesReadIsIdempotent(t *testing.T) {
	uc, conversationRepo, _, storageID := setupMessageTest(t)

	_, err := uc.Create(context.Background(), storageID, "seller1", true, "ping")
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(context.Background(), "seller1buyer1", false))
	require.NoError(t, uc.MarkRead(context.Background(), "seller1buyer1", false))

	conversation, err := conversationRepo.GetByConversationID(context.Background(), "seller1buyer1")
	require.NoError(t, err)
	assert.True(t, conversation.ReadByBuyer)
	assert.False(t, conversation.ReadBySeller)
}

func TestCreateMessageRateLimited(t *testing.T) {
	uc, _, _, storageID := setupMessageTest(t)

	for i := 0; i < 20; i++ {
		_, err := uc.Create(context.Background(), storageID, "buyer1", false, "spam")
		require.NoError(t, err)
	}

	_, err := uc.Create(context.Background(), storageID, "buyer1", false, "over the line")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}
