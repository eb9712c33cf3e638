package esdex

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/esdex/query"
)

// DeleteResult is the decoded response of a delete operation.
type DeleteResult struct {
	Found   bool   `json:"found"`
	Index   string `json:"_index"`
	DocType string `json:"_type"`
	ID      string `json:"_id"`
	Version int64  `json:"_version"`
}

// DeleteOperation removes a single document.
type DeleteOperation struct {
	client  *Client
	index   string
	docType string
	id      string
	opts    opParams
}

func newDeleteOperation(c *Client, index, docType, id string) *DeleteOperation {
	return &DeleteOperation{client: c, index: index, docType: docType, id: id}
}

// WithVersion deletes only the given document version.
func (op *DeleteOperation) WithVersion(version int64) *DeleteOperation {
	op.opts.add("version", strconv.FormatInt(version, 10))
	return op
}

// WithRouting sets the routing value.
func (op *DeleteOperation) WithRouting(routing string) *DeleteOperation {
	op.opts.add("routing", routing)
	return op
}

// WithParent sets the parent document id.
func (op *DeleteOperation) WithParent(parent string) *DeleteOperation {
	op.opts.add("parent", parent)
	return op
}

// WithConsistency sets the write consistency level.
func (op *DeleteOperation) WithConsistency(consistency string) *DeleteOperation {
	op.opts.add("consistency", consistency)
	return op
}

// WithRefresh asks the engine to refresh the affected shard after deleting.
func (op *DeleteOperation) WithRefresh(refresh bool) *DeleteOperation {
	op.opts.add("refresh", strconv.FormatBool(refresh))
	return op
}

// WithTimeout sets the engine-side timeout, e.g. "1m".
func (op *DeleteOperation) WithTimeout(timeout string) *DeleteOperation {
	op.opts.add("timeout", timeout)
	return op
}

// Do deletes the document.
func (op *DeleteOperation) Do(ctx context.Context) (*DeleteResult, error) {
	path := "/" + op.index + "/" + op.docType + "/" + op.id + op.opts.encode()

	raw, err := op.client.transport.Perform(ctx, "DELETE", path, nil)
	if err != nil {
		return nil, err
	}

	var result DeleteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("esdex: decode delete response: %w", err)
	}
	return &result, nil
}

// IndexShardResult reports the shard counts of one index touched by a
// delete-by-query operation.
type IndexShardResult struct {
	Shards ShardCount `json:"_shards"`
}

// Successful reports whether no shard failed.
func (r IndexShardResult) Successful() bool {
	return r.Shards.Failed == 0
}

// DeleteByQueryResult is the decoded response of a delete-by-query
// operation, keyed by index name.
type DeleteByQueryResult struct {
	Indices map[string]IndexShardResult
}

// Successful reports whether the operation succeeded on every index.
func (r *DeleteByQueryResult) Successful() bool {
	for _, idx := range r.Indices {
		if !idx.Successful() {
			return false
		}
	}
	return true
}

// DeleteByQueryOperation removes every document matching a query. The query
// can be given either as a query string (sent as the q= parameter) or as a
// DSL clause tree (sent as the request body); setting one discards the
// other, last write wins.
type DeleteByQueryOperation struct {
	client   *Client
	indexes  []string
	docTypes []string
	opts     opParams

	queryString    string
	hasQueryString bool
	query          query.Query
}

func newDeleteByQueryOperation(c *Client) *DeleteByQueryOperation {
	return &DeleteByQueryOperation{client: c}
}

// WithIndexes restricts the operation to the given indexes.
func (op *DeleteByQueryOperation) WithIndexes(indexes ...string) *DeleteByQueryOperation {
	op.indexes = append(op.indexes, indexes...)
	return op
}

// WithDocTypes restricts the operation to the given document types.
func (op *DeleteByQueryOperation) WithDocTypes(docTypes ...string) *DeleteByQueryOperation {
	op.docTypes = append(op.docTypes, docTypes...)
	return op
}

// WithQueryString sets a query string as the query source, discarding any
// previously set clause tree.
func (op *DeleteByQueryOperation) WithQueryString(qs string) *DeleteByQueryOperation {
	op.queryString = qs
	op.hasQueryString = true
	op.query = nil
	return op
}

// WithQuery sets a DSL clause tree as the query source, discarding any
// previously set query string.
func (op *DeleteByQueryOperation) WithQuery(q query.Query) *DeleteByQueryOperation {
	op.query = q
	op.queryString = ""
	op.hasQueryString = false
	return op
}

// WithDF sets the default field for query-string form.
func (op *DeleteByQueryOperation) WithDF(field string) *DeleteByQueryOperation {
	op.opts.add("df", field)
	return op
}

// WithAnalyzer sets the analyzer for query-string form.
func (op *DeleteByQueryOperation) WithAnalyzer(analyzer string) *DeleteByQueryOperation {
	op.opts.add("analyzer", analyzer)
	return op
}

// WithDefaultOperator sets the default boolean operator ("AND" or "OR") for
// query-string form.
func (op *DeleteByQueryOperation) WithDefaultOperator(operator string) *DeleteByQueryOperation {
	op.opts.add("default_operator", operator)
	return op
}

// WithRouting sets the routing value.
func (op *DeleteByQueryOperation) WithRouting(routing string) *DeleteByQueryOperation {
	op.opts.add("routing", routing)
	return op
}

// WithConsistency sets the write consistency level.
func (op *DeleteByQueryOperation) WithConsistency(consistency string) *DeleteByQueryOperation {
	op.opts.add("consistency", consistency)
	return op
}

// Do deletes the matching documents. When the engine answers 404 (no such
// index) the result is nil without an error.
func (op *DeleteByQueryOperation) Do(ctx context.Context) (*DeleteByQueryResult, error) {
	var body []byte
	p := op.opts.clone()

	if op.query != nil {
		envelope := struct {
			Query query.Query `json:"query"`
		}{op.query}
		var err error
		body, err = json.Marshal(envelope)
		if err != nil {
			return nil, fmt.Errorf("esdex: encode delete-by-query body: %w", err)
		}
	} else if op.hasQueryString {
		p.add("q", op.queryString)
	}

	path := "/" + formatIndexesAndTypes(op.indexes, op.docTypes) + "/_query" + p.encode()
	raw, err := op.client.transport.Perform(ctx, "DELETE", path, body)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var decoded struct {
		Indices map[string]IndexShardResult `json:"_indices"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("esdex: decode delete-by-query response: %w", err)
	}
	if decoded.Indices == nil {
		return nil, fmt.Errorf("%w: missing \"_indices\"", ErrInvalidResponse)
	}
	return &DeleteByQueryResult{Indices: decoded.Indices}, nil
}
