package service

import (
	"context"
	"sync"
)

type ShippingAddress struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type ShippingDetails struct {
	Name    string
	Address ShippingAddress
}

// PaymentIntentParams describes a single attempted charge. Amount is in
// minor currency units (cents).
type PaymentIntentParams struct {
	Amount       int64
	Currency     string
	Description  string
	ReceiptEmail string
	Shipping     ShippingDetails
	Metadata     map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// PaymentGateway holds the process-wide payment provider handle. The
// provider may be absent when its credential is not configured; callers get
// one lazy reinitialization attempt before the capability is reported as
// unavailable.
type PaymentGateway struct {
	mu   sync.Mutex
	svc  PaymentService
	init func() PaymentService
}

// NewPaymentGateway attempts initialization once at startup. init must
// return nil when the provider credential is missing.
func NewPaymentGateway(init func() PaymentService) *PaymentGateway {
	return &PaymentGateway{
		svc:  init(),
		init: init,
	}
}

// Service returns the provider, retrying initialization if the startup
// attempt failed. ok is false when the provider is still unavailable.
func (g *PaymentGateway) Service() (PaymentService, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.svc == nil {
		g.svc = g.init()
	}

	return g.svc, g.svc != nil
}
