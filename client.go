// Package esdex is a client for a JSON-over-HTTP document search engine.
// Each API call is a typed operation builder created from a Client:
// mandatory parameters are constructor arguments, optional parameters are
// chained With* setters, and the terminal Do performs exactly one request.
// Query-bearing operations compose with the query subpackage's DSL clauses.
package esdex

import (
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/esdex/internal/config"
	"github.com/kailas-cloud/esdex/internal/logger"
	"github.com/kailas-cloud/esdex/internal/transport"
)

// Client is the esdex SDK entry point. A Client holds no mutable state
// between operations; concurrent operations are as safe as its Transport.
type Client struct {
	transport Transport
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.transport != nil {
		return &Client{transport: cfg.transport}, nil
	}
	if cfg.baseURL == "" {
		return nil, errors.New("esdex: engine address required (use WithHTTP or WithTransport)")
	}

	t, err := transport.NewHTTP(transport.Config{
		BaseURL: cfg.baseURL,
		Timeout: cfg.timeout,
		Logger:  cfg.logger,
	})
	if err != nil {
		return nil, err
	}
	return &Client{transport: t}, nil
}

// NewFromConfig creates a Client from a YAML configuration file. Explicit
// options override values from the file.
func NewFromConfig(path string, opts ...Option) (*Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("esdex: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("esdex: %w", err)
	}

	fromFile := []Option{
		WithHTTP(cfg.Endpoint.URL()),
		WithTimeout(time.Duration(cfg.Endpoint.TimeoutSec) * time.Second),
		WithLogger(log),
	}
	return New(append(fromFile, opts...)...)
}

// Index starts an index operation for a document of the given type.
func (c *Client) Index(index, docType string) *IndexOperation {
	return newIndexOperation(c, index, docType)
}

// Get starts a get operation for a document by id.
func (c *Client) Get(index, id string) *GetOperation {
	return newGetOperation(c, index, id)
}

// Delete starts a delete operation for a single document.
func (c *Client) Delete(index, docType, id string) *DeleteOperation {
	return newDeleteOperation(c, index, docType, id)
}

// DeleteByQuery starts a delete-by-query operation.
func (c *Client) DeleteByQuery() *DeleteByQueryOperation {
	return newDeleteByQueryOperation(c)
}

// Refresh starts a refresh operation.
func (c *Client) Refresh() *RefreshOperation {
	return newRefreshOperation(c)
}

// Search starts a search operation.
func (c *Client) Search() *SearchOperation {
	return newSearchOperation(c)
}
