package repository

import (
	"context"

	"freelancehub/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByConversationID(ctx context.Context, conversationID string) ([]*entity.Message, error)
}
