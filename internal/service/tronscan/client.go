package tronscan

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"TronLens/internal/domain/models"
	drepo "TronLens/internal/domain/repository"
	xhttp "TronLens/pkg/http"
)

// Upstream paths, relative to the API base URL.
const (
	PathAccountTokens  = "/account/tokens"
	PathTRC20Transfers = "/filter/trc20/transfers"
	PathAccount        = "/account"
	PathAccountRes     = "/account/resourcev2"
)

const (
	DefaultBaseURL   = "https://apilist.tronscanapi.com/api"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultOrigin    = "https://tronscan.org"
	DefaultReferer   = "https://tronscan.org/"

	apiKeyHeader = "TRON-PRO-API-KEY"
)

// Config holds the explorer client settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
	Origin    string
	Referer   string
	Transport http.RoundTripper
}

// Client talks to the TronScan explorer API. Every request carries the
// browser-like headers upstream's anti-bot filter expects.
type Client struct {
	baseURL string
	http    *xhttp.Client
	metrics drepo.Metrics
}

// New creates an explorer client. metrics may be nil.
func New(cfg Config, metrics drepo.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Origin == "" {
		cfg.Origin = DefaultOrigin
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}

	opts := []xhttp.ClientOption{
		xhttp.WithTimeout(cfg.Timeout),
		xhttp.WithHeader("Accept", "application/json"),
		xhttp.WithHeader("Content-Type", "application/json"),
		xhttp.WithHeader("User-Agent", cfg.UserAgent),
		xhttp.WithHeader("Origin", cfg.Origin),
		xhttp.WithHeader("Referer", cfg.Referer),
		xhttp.WithHeader(apiKeyHeader, cfg.APIKey),
	}
	if cfg.Transport != nil {
		opts = append(opts, xhttp.WithTransport(cfg.Transport))
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    xhttp.NewClient(opts...),
		metrics: metrics,
	}
}

// TransferPage fetches one page of TRC20 transfers, newest first.
func (c *Client) TransferPage(ctx context.Context, address string, start, limit int) (*models.TransferPage, error) {
	var page models.TransferPage
	err := c.get(ctx, "transfers", PathTRC20Transfers, map[string][]string{
		"limit":            {strconv.Itoa(limit)},
		"start":            {strconv.Itoa(start)},
		"sort":             {"-timestamp"},
		"count":            {"true"},
		"filterTokenValue": {"0"},
		"relatedAddress":   {address},
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// TokenBalances fetches the token holdings of address.
func (c *Client) TokenBalances(ctx context.Context, address string, start, limit int) (*models.TokenList, error) {
	var list models.TokenList
	err := c.get(ctx, "tokens", PathAccountTokens, map[string][]string{
		"address": {address},
		"start":   {strconv.Itoa(start)},
		"limit":   {strconv.Itoa(limit)},
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// AccountInfo fetches the account summary.
func (c *Client) AccountInfo(ctx context.Context, address string) (*models.AccountInfo, error) {
	var info models.AccountInfo
	if err := c.get(ctx, "account", PathAccount, map[string][]string{"address": {address}}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ResourceInfo fetches bandwidth/energy delegations.
func (c *Client) ResourceInfo(ctx context.Context, address string) (*models.ResourceInfo, error) {
	var info models.ResourceInfo
	err := c.get(ctx, "resources", PathAccountRes, map[string][]string{
		"address":      {address},
		"resourceType": {"0"},
	}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Forward issues a GET for path with the caller's raw query string and returns
// the upstream response untouched. The caller closes the body.
func (c *Client) Forward(ctx context.Context, path, rawQuery string) (*http.Response, error) {
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{Method: xhttp.MethodGet, URL: u})
	c.record("proxy", err)
	if err != nil {
		return nil, fmt.Errorf("forward %s: %w", path, err)
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query map[string][]string, dest interface{}) error {
	start := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
	}, dest)
	c.record(endpoint, err)
	if c.metrics != nil {
		c.metrics.RecordLatency("upstream_"+endpoint, time.Since(start).Seconds())
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (c *Client) record(endpoint string, err error) {
	if c.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.metrics.RecordUpstreamCall(endpoint, result)
}

var _ drepo.Explorer = (*Client)(nil)
