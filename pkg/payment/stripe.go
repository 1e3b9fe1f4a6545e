// Package payment provides a Stripe payment-intent client over raw HTTP.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// ErrNotConfigured is returned when no secret key is set.
var ErrNotConfigured = errors.New("payment: provider not configured")

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeClient talks to the Stripe payment_intents API over raw HTTP.
type StripeClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewStripeClient builds a client authenticated with the given secret key.
func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey:  secretKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API host. Used by tests.
func (c *StripeClient) WithBaseURL(base string) *StripeClient {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

// CreateIntent creates a payment intent for the amount in minor currency
// units and returns the client secret used for client-side confirmation.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if c.secretKey == "" {
		return "", ErrNotConfigured
	}
	if amount <= 0 {
		return "", fmt.Errorf("payment: non-positive amount %d", amount)
	}

	data := url.Values{}
	data.Set("amount", strconv.FormatInt(amount, 10))
	data.Set("currency", currency)
	data.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents",
		strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.secretKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var intent struct {
		ClientSecret string `json:"client_secret"`
		Error        *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", err
	}
	if intent.Error != nil {
		return "", fmt.Errorf("stripe create intent: %s", intent.Error.Message)
	}
	if intent.ClientSecret == "" {
		return "", errors.New("stripe create intent: empty client secret in response")
	}
	return intent.ClientSecret, nil
}
