package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// PushGateway is the delivery transport. One call per device token; the
// response is classified by the dispatcher, not here.
type PushGateway interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) (*GatewayResponse, error)
}

// GatewayResponse is the raw outcome of one gateway call.
type GatewayResponse struct {
	StatusCode int
	Body       string
}

// TokenInvalid reports whether the gateway flagged the token as permanently
// unusable (device uninstalled the app, token rotated) rather than a
// transient delivery problem.
func (r *GatewayResponse) TokenInvalid() bool {
	if r.StatusCode == http.StatusNotFound || r.StatusCode == http.StatusGone {
		return true
	}
	body := strings.ToLower(r.Body)
	return strings.Contains(body, "devicenotregistered") ||
		strings.Contains(body, "unregistered") ||
		strings.Contains(body, "invalid token")
}

func (r *GatewayResponse) Delivered() bool {
	return r.StatusCode == http.StatusOK && !r.TokenInvalid()
}

// GatewayConfig is built once at startup. Missing required fields fail the
// constructor instead of silently degrading at send time.
type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func LoadGatewayConfig() GatewayConfig {
	cfg := GatewayConfig{
		BaseURL: os.Getenv("PUSH_GATEWAY_URL"),
		APIKey:  os.Getenv("PUSH_GATEWAY_KEY"),
	}
	if secs, err := strconv.Atoi(os.Getenv("PUSH_GATEWAY_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return cfg
}

type HTTPGateway struct {
	cfg    GatewayConfig
	client *http.Client
}

func NewHTTPGateway(cfg GatewayConfig) (*HTTPGateway, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("push gateway: base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("push gateway: API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (g *HTTPGateway) Send(ctx context.Context, token, title, body string, data map[string]string) (*GatewayResponse, error) {
	payload := map[string]any{
		"to":    token,
		"title": title,
		"body":  body,
		"data":  data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &GatewayResponse{StatusCode: resp.StatusCode, Body: string(b)}, nil
}
