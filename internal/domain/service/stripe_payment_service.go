package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"freelancehub/pkg/logger"
)

// StripePaymentService drives the Stripe PaymentIntents API over its HTTP
// surface (form-encoded requests, bearer auth).
type StripePaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey:  secretKey,
		baseURL:    "https://api.stripe.com/v1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type stripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	logger.Info("Creating payment intent: amount=%d %s", params.Amount, params.Currency)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	if params.Description != "" {
		form.Set("description", params.Description)
	}
	if params.ReceiptEmail != "" {
		form.Set("receipt_email", params.ReceiptEmail)
	}
	if params.Shipping.Name != "" {
		form.Set("shipping[name]", params.Shipping.Name)
		form.Set("shipping[address][line1]", params.Shipping.Address.Line1)
		form.Set("shipping[address][city]", params.Shipping.Address.City)
		form.Set("shipping[address][state]", params.Shipping.Address.State)
		form.Set("shipping[address][postal_code]", params.Shipping.Address.PostalCode)
		form.Set("shipping[address][country]", params.Shipping.Address.Country)
	}
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	intent, err := s.do(ctx, http.MethodPost, "/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	return intent, nil
}

func (s *StripePaymentService) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	return s.do(ctx, http.MethodGet, "/payment_intents/"+url.PathEscape(id), nil)
}

func (s *StripePaymentService) do(ctx context.Context, method, path string, body io.Reader) (*PaymentIntent, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr stripeError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("payment provider error: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("payment provider error: status %d", resp.StatusCode)
	}

	var intent stripePaymentIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}, nil
}
