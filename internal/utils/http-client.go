package utils

import (
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	Timeout   time.Duration
	KATimeout time.Duration
	UserAgent string
}

type GetrHTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

// NewGetrHTTPClient builds a client on top of a clone of the default
// transport. A zero Timeout leaves the request unbounded.
func NewGetrHTTPClient(cfg HTTPClientConfig) *GetrHTTPClient {
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 90 * time.Second
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.IdleConnTimeout = cfg.KATimeout
	return &GetrHTTPClient{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config: cfg,
	}
}

func (g *GetrHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if g.config.UserAgent != "" {
		req.Header.Set("User-Agent", g.config.UserAgent)
	} else {
		req.Header.Set("User-Agent", ToolUserAgent)
	}
	return g.client.Do(req)
}
