// Package lifi is the HTTP client for the upstream swap/bridge
// aggregation API. The gateway treats the aggregator's route-finding
// as an opaque service: this client only ships parameters out and
// decodes responses, it never retries or re-ranks.
package lifi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OrderRecommended asks the aggregator for its own recommended route
// ordering. The gateway passes routes through in this order untouched.
const OrderRecommended = "RECOMMENDED"

const defaultTimeout = 15 * time.Second

type Client struct {
	base string
	http *http.Client
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// GetRoutes fetches candidate routes for a swap or bridge. The result
// preserves the upstream order; the slice is empty when the aggregator
// finds no path.
func (c *Client) GetRoutes(ctx context.Context, req RoutesRequest) ([]Route, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal routes request: %w", err)
	}

	var out routesResponse
	if err := c.do(ctx, http.MethodPost, "/advanced/routes", nil, bytes.NewReader(body), &out); err != nil {
		return nil, err
	}
	return out.Routes, nil
}

// GetQuote fetches a single quote and returns the upstream JSON
// verbatim for the proxy surface.
func (c *Client) GetQuote(ctx context.Context, req QuoteRequest) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("fromChain", req.FromChain)
	q.Set("toChain", req.ToChain)
	q.Set("fromToken", req.FromToken)
	q.Set("toToken", req.ToToken)
	q.Set("fromAmount", req.FromAmount)
	q.Set("fromAddress", req.FromAddress)
	if req.Slippage != "" {
		q.Set("slippage", req.Slippage)
	} else {
		q.Set("slippage", "0.03")
	}

	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/quote", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetChains(ctx context.Context) ([]Chain, error) {
	var out chainsResponse
	if err := c.do(ctx, http.MethodGet, "/chains", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Chains, nil
}

// GetTokens returns the upstream token catalog keyed by chain id.
// chainID 0 fetches every supported chain.
func (c *Client) GetTokens(ctx context.Context, chainID int) (map[string][]Token, error) {
	var q url.Values
	if chainID != 0 {
		q = url.Values{}
		q.Set("chains", strconv.Itoa(chainID))
	}

	var out tokensResponse
	if err := c.do(ctx, http.MethodGet, "/tokens", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Tokens, nil
}

// GetConnections returns the upstream JSON verbatim; the proxy surface
// forwards it without interpretation.
func (c *Client) GetConnections(ctx context.Context, fromChain, toChain string) (json.RawMessage, error) {
	q := url.Values{}
	if fromChain != "" {
		q.Set("fromChain", fromChain)
	}
	if toChain != "" {
		q.Set("toChain", toChain)
	}

	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/connections", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("aggregator request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read aggregator response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return &UpstreamError{Status: resp.StatusCode, Message: apiErr.Message}
		}
		return &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("aggregator returned status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode aggregator response: %w", err)
	}
	return nil
}

// UpstreamError carries the aggregator's HTTP status and message so
// the proxy surface can forward both.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
