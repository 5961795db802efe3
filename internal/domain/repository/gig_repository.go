package repository

import (
	"context"

	"freelancehub/internal/domain/entity"
)

// GigFilter narrows List results. Zero values mean "no constraint".
type GigFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Search   string
	Sort     string // "sales" or "createdAt" (default)
}

type GigRepository interface {
	Create(ctx context.Context, gig *entity.Gig) error
	GetByID(ctx context.Context, id string) (*entity.Gig, error)
	Update(ctx context.Context, gig *entity.Gig) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter GigFilter, limit, offset int) ([]*entity.Gig, int64, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error)
	AddStars(ctx context.Context, gigID string, stars int) error
}
