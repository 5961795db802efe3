package repository

import (
	"context"

	"freelancehub/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByGigAndUser(ctx context.Context, gigID, userID string) (*entity.Review, error)
	ListByGig(ctx context.Context, gigID string) ([]*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
