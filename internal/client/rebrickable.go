package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"rebrickable/lookup/internal/config"
	"rebrickable/lookup/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type RebrickableClient interface {
	Fetch(ctx context.Context, path string, params map[string]string) (any, error)
	GetPart(ctx context.Context, partNum string) (domain.Part, error)
	GetPartColors(ctx context.Context, partNum string) (domain.ColorsPayload, error)
	GetColor(ctx context.Context, colorID string) (map[string]any, error)
}

type rebrickableClient struct {
	rl         ratelimit.Limiter
	config     config.RebrickableConfig
	baseURL    string
	httpClient *resty.Client
}

func NewRebrickableClient(cfg config.RebrickableConfig) RebrickableClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "key "+cfg.APIKey)

	if cfg.SkipSSLVerify {
		client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})
		log.Warn("⚠️ TLS certificate verification is disabled (REBRICKABLE_SKIP_SSL_VERIFY)")
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &rebrickableClient{
		rl:         rl,
		config:     cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
	}
}

// BuildURL joins an API path (leading slashes trimmed) onto the base URL and
// appends URL-encoded query parameters.
func BuildURL(baseURL, path string, params map[string]string) string {
	u := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		u += "?" + query.Encode()
	}
	return u
}

func (c *rebrickableClient) Fetch(ctx context.Context, path string, params map[string]string) (any, error) {
	c.rl.Take()

	requestURL := BuildURL(c.baseURL, path, params)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(requestURL)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		var certErr *tls.CertificateVerificationError
		if errors.As(err, &certErr) {
			return nil, &TLSVerificationError{Err: err}
		}
		return nil, &NetworkError{Err: err}
	}

	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	data, err := decodeJSON(resp.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", requestURL, err)
	}

	log.Debugf("Fetched %s", requestURL)
	return data, nil
}

func (c *rebrickableClient) GetPart(ctx context.Context, partNum string) (domain.Part, error) {
	obj, err := c.fetchObject(ctx, "lego/parts/"+url.PathEscape(partNum)+"/")
	if err != nil {
		return nil, err
	}
	return domain.Part(obj), nil
}

func (c *rebrickableClient) GetPartColors(ctx context.Context, partNum string) (domain.ColorsPayload, error) {
	obj, err := c.fetchObject(ctx, "lego/parts/"+url.PathEscape(partNum)+"/colors/")
	if err != nil {
		return nil, err
	}
	return domain.ColorsPayload(obj), nil
}

func (c *rebrickableClient) GetColor(ctx context.Context, colorID string) (map[string]any, error) {
	return c.fetchObject(ctx, "lego/colors/"+url.PathEscape(colorID)+"/")
}

func (c *rebrickableClient) fetchObject(ctx context.Context, path string) (map[string]any, error) {
	data, err := c.Fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload shape for %s", path)
	}
	return obj, nil
}

// decodeJSON decodes with json.Number so payload values round-trip verbatim
// into tables and raw JSON dumps.
func decodeJSON(body []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var data any
	if err := decoder.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}
