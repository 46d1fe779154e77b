package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

const (
	defaultFetchTimeout = 10 * time.Second
	maxErrorBody        = 128
)

type httpListFetcher struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPListFetcher returns a [ListFetcher] that issues plain GET requests.
// Transport failures and temporary statuses are retried once. A non-positive
// timeout falls back to 10 seconds.
func NewHTTPListFetcher(timeout time.Duration, log *logger.Logger) ListFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/plain").
		SetRetryCount(1).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || isTemporary(resp.StatusCode())
		})

	return &httpListFetcher{client: cli, logger: log}
}

func (h *httpListFetcher) FetchList(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrEmptyURL
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpListFetcher.FetchList").Str("url", rawURL).Msg("request failed")
		return "", fmt.Errorf("fetch list request: %w", err)
	}
	if err = listStatusError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpListFetcher.FetchList").Int("status", resp.StatusCode()).Msg("unexpected response")
		return "", err
	}

	h.logger.Debug().Str("func", "httpListFetcher.FetchList").Int("bytes", len(resp.Body())).Msg("list fetched")
	return resp.String(), nil
}

func isTemporary(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// listStatusError maps a non-2xx list response to one of the package
// sentinels, keeping a short excerpt of the body.
func listStatusError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return fmt.Errorf("%w: http %d: %s", ErrListNotFound, status, body)
	case isTemporary(status):
		return fmt.Errorf("%w: http %d: %s", ErrListUnavailable, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}
