package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config holds configuration for the product lookup service.
type Config struct {
	// BaseURL is the lookup API base URL.
	BaseURL string `mapstructure:"base_url" default:"https://api.upcitemdb.com/prod/trial"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Product is the result of a barcode lookup.
//
// Found reports whether the service identified the product. On any failure,
// network or not-found alike, Name falls back to the queried code so the
// caller always has a usable placeholder.
type Product struct {
	Found       bool     `json:"found"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
}

// Client resolves barcodes to product metadata.
type Client interface {
	// Lookup queries the product database for the given canonical code.
	// It never fails: errors degrade to a not-found Product.
	Lookup(ctx context.Context, code string) Product
}

type httpClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a lookup client against the configured API.
func NewClient(cfg Config, logger *zap.Logger) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
		logger: logger,
	}
}

// lookupResponse matches the UPCItemDB lookup payload.
type lookupResponse struct {
	Code  string `json:"code"`
	Total int    `json:"total"`
	Items []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Brand       string   `json:"brand"`
		Images      []string `json:"images"`
	} `json:"items"`
}

func (c *httpClient) Lookup(ctx context.Context, code string) Product {
	endpoint := fmt.Sprintf("%s/lookup?upc=%s", c.baseURL, url.QueryEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("Failed to build lookup request", zap.String("code", code), zap.Error(err))
		return notFound(code)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Product lookup failed", zap.String("code", code), zap.Error(err))
		return notFound(code)
	}
	defer resp.Body.Close()

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("Unparseable lookup response", zap.String("code", code), zap.Error(err))
		return notFound(code)
	}

	if body.Code != "OK" || body.Total <= 0 || len(body.Items) == 0 {
		return notFound(code)
	}

	item := body.Items[0]
	name := item.Title
	if name == "" {
		name = code
	}
	images := item.Images
	if images == nil {
		images = []string{}
	}

	return Product{
		Found:       true,
		Name:        name,
		Description: item.Description,
		Brand:       item.Brand,
		Images:      images,
	}
}

func notFound(code string) Product {
	return Product{
		Found:  false,
		Name:   code,
		Images: []string{},
	}
}
