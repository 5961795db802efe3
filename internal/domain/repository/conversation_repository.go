package repository

import (
	"context"

	"freelancehub/internal/domain/entity"
)

type ConversationRepository interface {
	// Create persists a new conversation keyed by its composite identifier
	// and fails with a Conflict error when that identifier already exists.
	Create(ctx context.Context, conversation *entity.Conversation) error

	GetByStorageID(ctx context.Context, id string) (*entity.Conversation, error)
	GetByConversationID(ctx context.Context, conversationID string) (*entity.Conversation, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Conversation, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Conversation, error)

	// FindByParticipants looks for a conversation between the two users in
	// either role assignment. A nil conversation with a nil error means no
	// conversation exists yet.
	FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error)

	// SetReadFlag, SetReadFlags and UpdateSummary write the new field values
	// directly by composite identifier, without a prior read. SetReadFlag
	// marks a single role's flag true and leaves the counterpart untouched.
	SetReadFlag(ctx context.Context, conversationID string, forSeller bool) error
	SetReadFlags(ctx context.Context, conversationID string, readBySeller, readByBuyer bool) error
	UpdateSummary(ctx context.Context, conversationID string, readBySeller, readByBuyer bool, lastMessage string) error
}
