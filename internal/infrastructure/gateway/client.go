package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"payeasy.backend/internal/config"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/pkg/logger"
)

// ChargeRequest asks the mobile wallet gateway to collect a payment
// from a buyer's wallet.
type ChargeRequest struct {
	SaleID    uuid.UUID       `json:"saleId"`
	Phone     string          `json:"phone"`
	Provider  wallet.Provider `json:"provider"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// DisburseRequest asks the gateway to push a payout to a merchant's
// wallet.
type DisburseRequest struct {
	WithdrawalID uuid.UUID       `json:"withdrawalId"`
	Phone        string          `json:"phone"`
	Provider     wallet.Provider `json:"provider"`
	Amount       decimal.Decimal `json:"amount"`
}

// Result is the gateway's acknowledgement of a charge or disbursement.
// Final settlement arrives later on the webhook.
type Result struct {
	GatewayRef string `json:"gatewayRef"`
	Accepted   bool   `json:"accepted"`
}

// Charger is the outbound port to the mobile wallet gateway.
type Charger interface {
	Charge(ctx context.Context, req ChargeRequest) (*Result, error)
	Disburse(ctx context.Context, req DisburseRequest) (*Result, error)
}

// Client talks to the wallet gateway over HTTP using a
// client-credentials token that is cached until close to expiry.
type Client struct {
	cfg        config.GatewayConfig
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a gateway HTTP client
func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a cached token, refreshing it when it is within
// the expiry margin.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-c.cfg.TokenExpiryMargin)) {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/oauth/token", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned %d", domainerrors.ErrGatewayUnavailable, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}

	c.token = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}

// Charge initiates a wallet collection
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*Result, error) {
	return c.post(ctx, "/v1/charges", req)
}

// Disburse initiates a wallet payout
func (c *Client) Disburse(ctx context.Context, req DisburseRequest) (*Result, error) {
	return c.post(ctx, "/v1/disbursements", req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*Result, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(ctx, "gateway request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token may have been revoked server-side; drop the cache so
		// the next call fetches a fresh one.
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: unauthorized", domainerrors.ErrGatewayUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: gateway returned %d", domainerrors.ErrGatewayUnavailable, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
