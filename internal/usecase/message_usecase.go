package usecase

import (
	"context"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/internal/infrastructure/ratelimit"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/logger"
)

type MessageUseCase struct {
	messageRepo      repository.MessageRepository
	conversationRepo repository.ConversationRepository
	rateLimiter      *ratelimit.RateLimiter
}

func NewMessageUseCase(messageRepo repository.MessageRepository, conversationRepo repository.ConversationRepository, rateLimiter *ratelimit.RateLimiter) *MessageUseCase {
	return &MessageUseCase{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		rateLimiter:      rateLimiter,
	}
}

// Create appends a message to the conversation addressed by its storage
// identifier. The stored message carries the conversation's composite
// identifier. The summary update that follows is best-effort: the message
// is already durable, and a failed summary write is only logged.
func (uc *MessageUseCase) Create(ctx context.Context, conversationStorageID, actorID string, actorIsSeller bool, desc string) (*entity.Message, error) {
	if allowed, _ := uc.rateLimiter.Allow(actorID, "send_message"); !allowed {
		return nil, errors.TooManyRequests("Too many messages. Please slow down.")
	}

	conversation, err := uc.conversationRepo.GetByStorageID(ctx, conversationStorageID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversation.ConversationID,
		UserID:         actorID,
		Desc:           desc,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.conversationRepo.UpdateSummary(ctx, conversation.ConversationID, actorIsSeller, !actorIsSeller, desc); err != nil {
		logger.Warn("Conversation summary update failed for %s: %v", conversation.ConversationID, err)
	}

	return message, nil
}

// List treats the reference as a composite identifier first; when that
// yields nothing it is re-interpreted as a storage identifier and the
// lookup retried with the resolved composite id.
func (uc *MessageUseCase) List(ctx context.Context, conversationRef string) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListByConversationID(ctx, conversationRef)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return messages, nil
	}

	conversation, err := uc.conversationRepo.GetByStorageID(ctx, conversationRef)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return messages, nil
		}
		return nil, err
	}

	return uc.messageRepo.ListByConversationID(ctx, conversation.ConversationID)
}

// MarkRead sets the actor's read flag and clears the counterpart's, keyed
// by composite identifier. Calling it twice is a no-op the second time.
func (uc *MessageUseCase) MarkRead(ctx context.Context, conversationID string, actorIsSeller bool) error {
	return uc.conversationRepo.SetReadFlags(ctx, conversationID, actorIsSeller, !actorIsSeller)
}
