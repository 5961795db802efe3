package repository

import (
	"context"

	"freelancehub/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)
	SetPaymentIntent(ctx context.Context, id, paymentIntent string) error
	MarkCompleted(ctx context.Context, id string) error
}
