package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"stars-converter/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 64 << 10

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// tokenRateResponse is the feed payload. message is accepted both as a
// JSON number and as a numeric string.
type tokenRateResponse struct {
	OK           bool                `json:"ok"`
	Message      decimal.NullDecimal `json:"message"`
	ErrorMessage string              `json:"error_message"`
}

// Client fetches the token price in usdt from the remote feed. It
// implements ports.TokenRateSource and makes exactly one attempt per call.
type Client struct {
	endpoint string
	http     HTTPClient
	log      zerolog.Logger
}

// NewClient creates a rate source for endpoint. A nil httpClient gets a
// default client with the given timeout.
func NewClient(endpoint string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		log:      log,
	}
}

// FetchTokenRate performs a GET on the feed and returns the quoted rate.
func (c *Client) FetchTokenRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, apperror.ErrRateSourceUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("reading body: %w", err))
	}

	c.log.Debug().
		Str("endpoint", c.endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("rate source responded")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, apperror.ErrRateSourceUnavailable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload tokenRateResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, apperror.ErrRateSourceRejected(fmt.Sprintf("undecodable payload: %v", err))
	}
	if !payload.OK {
		msg := payload.ErrorMessage
		if msg == "" {
			msg = "ok flag not set"
		}
		return 0, apperror.ErrRateSourceRejected(msg)
	}
	if !payload.Message.Valid {
		return 0, apperror.ErrRateSourceRejected("missing rate")
	}

	rate, _ := payload.Message.Decimal.Float64()
	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return 0, apperror.ErrRateSourceRejected(fmt.Sprintf("rate %s is not a positive number", payload.Message.Decimal))
	}
	return rate, nil
}
