package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"finance/src/config"

	"github.com/shopspring/decimal"
)

// ErrSymbolNotFound signals that the provider knows no such symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// Client is the single-operation quote lookup port. Every call is a
// fresh external request: no caching, no retries.
type Client interface {
	Lookup(ctx context.Context, symbol string) (*Quote, error)
}

// ServiceClient talks to an IEX-style quote endpoint:
// GET {baseURL}/stock/{symbol}/quote?token={apiKey}
type ServiceClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.Config) *ServiceClient {
	timeout := time.Duration(cfg.ExternalClients.Quotes.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ServiceClient{
		baseURL: cfg.ExternalClients.Quotes.BaseURL,
		apiKey:  cfg.ExternalClients.Quotes.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *ServiceClient) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/stock/%s/quote?token=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote lookup for %s returned status %s", symbol, resp.Status)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(body.LatestPrice.String())
	if err != nil {
		return nil, fmt.Errorf("quote lookup for %s returned bad price %q", symbol, body.LatestPrice)
	}

	return &Quote{
		Symbol: body.Symbol,
		Name:   body.CompanyName,
		Price:  price,
	}, nil
}
