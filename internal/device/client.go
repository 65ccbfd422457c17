package device

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gymgate/pkg/utils"
)

// Config is injected at startup; the scanner address is never compiled in.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// Client talks to the fingerprint scanner over its local HTTP API. The
// scanner expects GET requests with query parameters and answers 200 on
// success. Anything else, including a timeout, counts as failure.
type Client interface {
	EnrollUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID, firstName string) error
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *client) EnrollUser(ctx context.Context, userID string) error {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("operation", "enroll")
	return c.get(ctx, "/enroll_user", params)
}

func (c *client) DeleteUser(ctx context.Context, userID, firstName string) error {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("operation", "delete")
	params.Set("first_name", firstName)
	return c.get(ctx, "/delete_user", params)
}

func (c *client) get(ctx context.Context, path string, params url.Values) error {
	endpoint := c.cfg.BaseURL + path + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDeviceFailure, err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", utils.ErrDeviceFailure, err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return nil
		}
		lastErr = fmt.Errorf("%w: device returned status %d", utils.ErrDeviceFailure, resp.StatusCode)
	}

	return lastErr
}
