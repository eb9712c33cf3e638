package esdex

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL   string
	timeout   time.Duration
	transport Transport
	logger    *zap.Logger
}

// WithHTTP points the client at an engine endpoint, e.g.
// "http://localhost:9200". The default HTTP transport is used.
func WithHTTP(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithTransport replaces the default HTTP transport. WithHTTP, WithTimeout
// and WithLogger are ignored when a custom transport is set.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithLogger sets the logger used by the default HTTP transport.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
