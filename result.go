package esdex

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ShardCount reports how many shards served a request.
type ShardCount struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// SearchResult is the decoded envelope of a search response.
type SearchResult struct {
	Shards ShardCount
	Hits   SearchHits
}

// SearchHits holds the total match count and the ordered hit list.
type SearchHits struct {
	Total int64
	Hits  []Hit
}

// Hit is one matched document: its metadata plus the source document as the
// engine returned it. The source is kept as a generic structured value;
// Decode projects it into a caller-defined shape on demand.
type Hit struct {
	Index   string
	DocType string // serialized under the literal key "_type"
	ID      string
	Score   *float64

	source map[string]any
	fields map[string]any
}

// Source returns the source document as a generic structured value, or nil
// when the operation suppressed source retrieval.
func (h *Hit) Source() map[string]any { return h.source }

// Fields returns the requested stored fields, if any.
func (h *Hit) Fields() map[string]any { return h.fields }

// Decode projects the source document into target, which must be a pointer.
// The projection is strict: a source that misses a target field or holds an
// incompatible value is an error. Decode never modifies the hit and may be
// called repeatedly, with different targets.
func (h *Hit) Decode(target any) error {
	if h.source == nil {
		return ErrNoSource
	}
	return decodeSource(h.source, target)
}

func decodeSource(source map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "json",
		ErrorUnset: true,
	})
	if err != nil {
		return fmt.Errorf("esdex: build source decoder: %w", err)
	}
	if err := dec.Decode(source); err != nil {
		return fmt.Errorf("esdex: decode source: %w", err)
	}
	return nil
}

type rawHit struct {
	Index   string         `json:"_index"`
	DocType string         `json:"_type"`
	ID      string         `json:"_id"`
	Score   *float64       `json:"_score"`
	Source  map[string]any `json:"_source"`
	Fields  map[string]any `json:"fields"`
}

// decodeSearchResult decodes a search response envelope. The top-level shape
// is checked strictly: a missing _shards or hits section is a codec error,
// while per-document schema concerns are deferred to Hit.Decode.
func decodeSearchResult(data []byte) (*SearchResult, error) {
	var raw struct {
		Shards *ShardCount `json:"_shards"`
		Hits   *struct {
			Total *int64    `json:"total"`
			Hits  *[]rawHit `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("esdex: decode search response: %w", err)
	}
	if raw.Shards == nil {
		return nil, fmt.Errorf("%w: missing \"_shards\"", ErrInvalidResponse)
	}
	if raw.Hits == nil {
		return nil, fmt.Errorf("%w: missing \"hits\"", ErrInvalidResponse)
	}
	if raw.Hits.Total == nil {
		return nil, fmt.Errorf("%w: missing \"hits.total\"", ErrInvalidResponse)
	}
	if raw.Hits.Hits == nil {
		return nil, fmt.Errorf("%w: missing \"hits.hits\"", ErrInvalidResponse)
	}

	hits := make([]Hit, len(*raw.Hits.Hits))
	for i, rh := range *raw.Hits.Hits {
		hits[i] = Hit{
			Index:   rh.Index,
			DocType: rh.DocType,
			ID:      rh.ID,
			Score:   rh.Score,
			source:  rh.Source,
			fields:  rh.Fields,
		}
	}

	return &SearchResult{
		Shards: *raw.Shards,
		Hits:   SearchHits{Total: *raw.Hits.Total, Hits: hits},
	}, nil
}
