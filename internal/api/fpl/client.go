package fpl

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/omarshaarawi/fplboard/internal/config"
)

// Client performs single-attempt GETs against the FPL API. No retries and no
// client-side timeout; callers bound requests through the context.
type Client struct {
	http *resty.Client
	base string
}

func NewClient(cfg config.FPLAPI) *Client {
	base := cfg.BaseURL()

	client := resty.New()
	client.SetBaseURL(base)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: client, base: base}
}

func (c *Client) BaseURL() string {
	return c.base
}

// Get fetches path and decodes the JSON body into result. Every failure is
// returned as a *FetchError and result is left untouched.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, result any) error {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return c.fail(&FetchError{Kind: KindTransport, Path: path, Err: err})
	}

	if !resp.IsSuccess() {
		return c.fail(&FetchError{Kind: KindStatus, Path: path, Status: resp.StatusCode()})
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return c.fail(&FetchError{Kind: KindDecode, Path: path, Status: resp.StatusCode(), Err: err})
	}

	return nil
}

func (c *Client) fail(err *FetchError) error {
	slog.Error("FPL request failed",
		"base", c.base,
		"path", err.Path,
		"kind", err.Kind.String(),
		"status", err.Status,
		"error", err,
	)
	return err
}
