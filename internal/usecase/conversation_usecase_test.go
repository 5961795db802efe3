package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/infrastructure/ratelimit"
	"freelancehub/pkg/errors"
)

func TestCreateConversationAsSeller(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	conversation, err := uc.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)

	assert.Equal(t, "seller1buyer1", conversation.ConversationID)
	assert.Equal(t, "seller1", conversation.SellerID)
	assert.Equal(t, "buyer1", conversation.BuyerID)
	assert.True(t, conversation.ReadBySeller)
	assert.False(t, conversation.ReadByBuyer)
	assert.NotEmpty(t, conversation.ID)
}

func TestCreateConversationAsBuyer(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	conversation, err := uc.Create(context.Background(), "buyer1", false, "seller1")
	require.NoError(t, err)

	// The counterpart is the seller, so their id still comes first.
	assert.Equal(t, "seller1buyer1", conversation.ConversationID)
	assert.Equal(t, "seller1", conversation.SellerID)
	assert.Equal(t, "buyer1", conversation.BuyerID)
	assert.False(t, conversation.ReadBySeller)
	assert.True(t, conversation.ReadByBuyer)
}

func TestCreateConversationDuplicate(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	_, err := uc.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "seller1", true, "buyer1")
	assert.True(t, errors.Is(err, "CONFLICT"))

	// Same pair created from the buyer side collides with the same key.
	_, err = uc.Create(context.Background(), "buyer1", false, "seller1")
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateConversationBothRoleAssignments(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	// The same two users can hold one conversation per role assignment.
	first, err := uc.Create(context.Background(), "alice", true, "bob")
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), "bob", true, "alice")
	require.NoError(t, err)

	assert.Equal(t, "alicebob", first.ConversationID)
	assert.Equal(t, "bobalice", second.ConversationID)
}

func TestCreateConversationWithSelf(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	_, err := uc.Create(context.Background(), "user1", false, "user1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateConversationRateLimited(t *testing.T) {
	uc := NewConversationUseCase(newMemoryConversationRepository(), newMemoryGigRepository(), ratelimit.NewRateLimiter())

	for i := 0; i < 10; i++ {
		_, err := uc.Create(context.Background(), "seller1", true, "buyer"+string(rune('a'+i)))
		require.NoError(t, err)
	}

	_, err := uc.Create(context.Background(), "seller1", true, "one-too-many")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}

func TestGetSingleConversationByEitherIdentifier(t *testing.T) {
	repo := newMemoryConversationRepository()
	uc := NewConversationUseCase(repo, newMemoryGigRepository(), ratelimit.NewRateLimiter())

	created, err := uc.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)

	byStorage, err := uc.GetSingle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ConversationID, byStorage.ConversationID)

	byComposite, err := uc.GetSingle(context.Background(), created.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byComposite.ID)

	_, err = uc.GetSingle(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestMarkConversationReadFlipsOnlyCallerFlag(t *testing.T) {
	repo := newMemoryConversationRepository()
	uc := NewConversationUseCase(repo, newMemoryGigRepository(), ratelimit.NewRateLimiter())

	created, err := uc.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)
	require.False(t, created.ReadByBuyer)

	updated, err := uc.MarkRead(context.Background(), created.ConversationID, false)
	require.NoError(t, err)

	assert.True(t, updated.ReadByBuyer)
	assert.True(t, updated.ReadBySeller)
}

func TestListConversationsByRole(t *testing.T) {
	repo := newMemoryConversationRepository()
	uc := NewConversationUseCase(repo, newMemoryGigRepository(), ratelimit.NewRateLimiter())

	_, err := uc.Create(context.Background(), "seller1", true, "buyer1")
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "seller1", true, "buyer2")
	require.NoError(t, err)

	asSeller, err := uc.List(context.Background(), "seller1", true)
	require.NoError(t, err)
	assert.Len(t, asSeller, 2)

	asBuyer, err := uc.List(context.Background(), "buyer1", false)
	require.NoError(t, err)
	assert.Len(t, asBuyer, 1)
}

func TestGetConversationByGig(t *testing.T) {
	conversationRepo := newMemoryConversationRepository()
	gigRepo := newMemoryGigRepository()
	uc := NewConversationUseCase(conversationRepo, gigRepo, ratelimit.NewRateLimiter())

	gig := &entity.Gig{UserID: "seller1", Title: "Logo design"}
	require.NoError(t, gigRepo.Create(context.Background(), gig))

	// No conversation yet: nil result, no error.
	conversation, err := uc.GetByGig(context.Background(), gig.ID, "buyer1")
	require.NoError(t, err)
	assert.Nil(t, conversation)

	created, err := uc.Create(context.Background(), "buyer1", false, "seller1")
	require.NoError(t, err)

	conversation, err = uc.GetByGig(context.Background(), gig.ID, "buyer1")
	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Equal(t, created.ConversationID, conversation.ConversationID)

	_, err = uc.GetByGig(context.Background(), "missing-gig", "buyer1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
