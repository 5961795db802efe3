package usecase

import (
	"context"
	"math"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/internal/domain/service"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	gigRepo   repository.GigRepository
	userRepo  repository.UserRepository
	gateway   *service.PaymentGateway
}

func NewOrderUseCase(orderRepo repository.OrderRepository, gigRepo repository.GigRepository, userRepo repository.UserRepository, gateway *service.PaymentGateway) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		gigRepo:   gigRepo,
		userRepo:  userRepo,
		gateway:   gateway,
	}
}

// CreateOrder records an order without contacting the payment provider.
// The payment intent field holds a placeholder until a real intent is
// attached later.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, gigID, buyerID string) (*entity.Order, error) {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		GigID:         gig.ID,
		Image:         gig.Cover,
		Title:         gig.Title,
		Price:         gig.Price,
		SellerID:      gig.UserID,
		BuyerID:       buyerID,
		PaymentIntent: entity.PaymentIntentPlaceholder,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns the actor's orders in their current role: sellers see orders
// placed against their gigs, buyers see orders they placed.
func (uc *OrderUseCase) List(ctx context.Context, actorID string, actorIsSeller bool) ([]*entity.Order, error) {
	if actorIsSeller {
		return uc.orderRepo.ListBySeller(ctx, actorID)
	}
	return uc.orderRepo.ListByBuyer(ctx, actorID)
}

type PaymentIntentResult struct {
	OrderID      string
	ClientSecret string
}

// CreatePaymentIntent creates a provider payment intent for the gig and only
// then records the order carrying the intent id. When the provider is not
// configured no order is written and the capability is reported unavailable.
func (uc *OrderUseCase) CreatePaymentIntent(ctx context.Context, gigID, buyerID string) (*PaymentIntentResult, error) {
	provider, ok := uc.gateway.Service()
	if !ok {
		return nil, errors.ServiceUnavailable("Payment processing is not available right now. Please try again later.", nil)
	}

	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	shippingName := buyer.Username
	if shippingName == "" {
		shippingName = buyer.Email
	}
	country := buyer.Country
	if country == "" {
		country = "US"
	}

	intent, err := provider.CreatePaymentIntent(ctx, service.PaymentIntentParams{
		Amount:       int64(math.Round(gig.Price * 100)),
		Currency:     "usd",
		Description:  "Payment for gig: " + gig.Title,
		ReceiptEmail: buyer.Email,
		Shipping: service.ShippingDetails{
			Name: shippingName,
			Address: service.ShippingAddress{
				Line1:      "N/A",
				City:       "N/A",
				State:      "N/A",
				PostalCode: "00000",
				Country:    country,
			},
		},
		Metadata: map[string]string{
			"gigId":    gig.ID,
			"buyerId":  buyerID,
			"sellerId": gig.UserID,
		},
	})
	if err != nil {
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	order := &entity.Order{
		GigID:         gig.ID,
		Image:         gig.Cover,
		Title:         gig.Title,
		Price:         gig.Price,
		SellerID:      gig.UserID,
		BuyerID:       buyerID,
		PaymentIntent: intent.ID,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Payment intent %s created for order %s", intent.ID, order.ID)

	return &PaymentIntentResult{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// UpdatePayment attaches a payment intent id to an existing order. When the
// provider is reachable the intent is verified against it first; an intent
// the provider does not recognize is rejected.
func (uc *OrderUseCase) UpdatePayment(ctx context.Context, orderID, paymentIntent string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if provider, ok := uc.gateway.Service(); ok {
		if _, err := provider.GetPaymentIntent(ctx, paymentIntent); err != nil {
			return nil, errors.BadRequest("Unknown payment intent", err)
		}
	}

	if err := uc.orderRepo.SetPaymentIntent(ctx, order.ID, paymentIntent); err != nil {
		return nil, err
	}

	order.PaymentIntent = paymentIntent
	return order, nil
}

// Confirm marks the order as completed. The flag is written directly; the
// order's prior completion state is not consulted.
func (uc *OrderUseCase) Confirm(ctx context.Context, orderID string) (*entity.Order, error) {
	if err := uc.orderRepo.MarkCompleted(ctx, orderID); err != nil {
		return nil, err
	}

	return uc.orderRepo.GetByID(ctx, orderID)
}
