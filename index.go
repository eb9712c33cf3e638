package esdex

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// IndexResult is the decoded response of an index operation.
type IndexResult struct {
	Created bool   `json:"created"`
	Index   string `json:"_index"`
	DocType string `json:"_type"`
	ID      string `json:"_id"`
	Version int64  `json:"_version"`
}

// IndexOperation stores a document. With an id the document is PUT in
// place; without one the engine assigns an id on POST.
type IndexOperation struct {
	client   *Client
	index    string
	docType  string
	id       string
	opts     opParams
	document any
	hasDoc   bool
}

func newIndexOperation(c *Client, index, docType string) *IndexOperation {
	return &IndexOperation{client: c, index: index, docType: docType}
}

// WithID sets the document id.
func (op *IndexOperation) WithID(id string) *IndexOperation {
	op.id = id
	return op
}

// WithDocument sets the document body. The document is serialized as-is;
// the client performs no schema validation.
func (op *IndexOperation) WithDocument(doc any) *IndexOperation {
	op.document = doc
	op.hasDoc = true
	return op
}

// WithRouting sets the routing value.
func (op *IndexOperation) WithRouting(routing string) *IndexOperation {
	op.opts.add("routing", routing)
	return op
}

// WithTTL sets the document's time to live, e.g. "10d".
func (op *IndexOperation) WithTTL(ttl string) *IndexOperation {
	op.opts.add("ttl", ttl)
	return op
}

// WithRefresh asks the engine to refresh the affected shard after indexing.
func (op *IndexOperation) WithRefresh(refresh bool) *IndexOperation {
	op.opts.add("refresh", strconv.FormatBool(refresh))
	return op
}

// WithTimeout sets the engine-side timeout, e.g. "1m".
func (op *IndexOperation) WithTimeout(timeout string) *IndexOperation {
	op.opts.add("timeout", timeout)
	return op
}

// Do sends the document to the engine.
func (op *IndexOperation) Do(ctx context.Context) (*IndexResult, error) {
	var body []byte
	if op.hasDoc {
		var err error
		body, err = json.Marshal(op.document)
		if err != nil {
			return nil, fmt.Errorf("esdex: encode document: %w", err)
		}
	}

	method := "POST"
	path := "/" + op.index + "/" + op.docType
	if op.id != "" {
		method = "PUT"
		path += "/" + op.id
	}
	path += op.opts.encode()

	raw, err := op.client.transport.Perform(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var result IndexResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("esdex: decode index response: %w", err)
	}
	return &result, nil
}
