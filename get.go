package esdex

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetResult is the decoded response of a get operation. The source document
// is kept as a generic structured value; Decode projects it on demand.
type GetResult struct {
	Found   bool
	Index   string
	DocType string
	ID      string
	Version int64

	source map[string]any
}

// Source returns the document as a generic structured value.
func (r *GetResult) Source() map[string]any { return r.source }

// Decode projects the document into target with the same strict semantics
// as Hit.Decode.
func (r *GetResult) Decode(target any) error {
	if r.source == nil {
		return ErrNoSource
	}
	return decodeSource(r.source, target)
}

// GetOperation retrieves a single document by id. Without a document type
// the engine searches all types of the index.
type GetOperation struct {
	client  *Client
	index   string
	id      string
	docType string
	opts    opParams
}

func newGetOperation(c *Client, index, id string) *GetOperation {
	return &GetOperation{client: c, index: index, id: id}
}

// WithDocType restricts the lookup to one document type.
func (op *GetOperation) WithDocType(docType string) *GetOperation {
	op.docType = docType
	return op
}

// WithRouting sets the routing value.
func (op *GetOperation) WithRouting(routing string) *GetOperation {
	op.opts.add("routing", routing)
	return op
}

// Do fetches the document.
func (op *GetOperation) Do(ctx context.Context) (*GetResult, error) {
	docType := op.docType
	if docType == "" {
		docType = "_all"
	}
	path := "/" + op.index + "/" + docType + "/" + op.id + op.opts.encode()

	raw, err := op.client.transport.Perform(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Found   bool           `json:"found"`
		Index   string         `json:"_index"`
		DocType string         `json:"_type"`
		ID      string         `json:"_id"`
		Version int64          `json:"_version"`
		Source  map[string]any `json:"_source"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("esdex: decode get response: %w", err)
	}

	return &GetResult{
		Found:   decoded.Found,
		Index:   decoded.Index,
		DocType: decoded.DocType,
		ID:      decoded.ID,
		Version: decoded.Version,
		source:  decoded.Source,
	}, nil
}
