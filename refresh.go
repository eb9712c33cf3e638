package esdex

import (
	"context"
	"encoding/json"
	"fmt"
)

// RefreshResult is the decoded response of a refresh operation.
type RefreshResult struct {
	Shards ShardCount
}

// RefreshOperation makes recent index changes visible to search.
type RefreshOperation struct {
	client  *Client
	indexes []string
}

func newRefreshOperation(c *Client) *RefreshOperation {
	return &RefreshOperation{client: c}
}

// WithIndexes restricts the refresh to the given indexes. All indexes are
// refreshed when none are set.
func (op *RefreshOperation) WithIndexes(indexes ...string) *RefreshOperation {
	op.indexes = append(op.indexes, indexes...)
	return op
}

// Do refreshes the indexes.
func (op *RefreshOperation) Do(ctx context.Context) (*RefreshResult, error) {
	path := "/" + formatIndexesAndTypes(op.indexes, nil) + "/_refresh"

	raw, err := op.client.transport.Perform(ctx, "POST", path, nil)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Shards *ShardCount `json:"_shards"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("esdex: decode refresh response: %w", err)
	}
	if decoded.Shards == nil {
		return nil, fmt.Errorf("%w: missing \"_shards\"", ErrInvalidResponse)
	}
	return &RefreshResult{Shards: *decoded.Shards}, nil
}
