package esdex

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/esdex/query"
)

// SearchType selects the engine's query execution strategy.
type SearchType string

// Search types accepted by the engine.
const (
	SearchTypeDFSQueryThenFetch SearchType = "dfs_query_then_fetch"
	SearchTypeDFSQueryAndFetch  SearchType = "dfs_query_and_fetch"
	SearchTypeQueryThenFetch    SearchType = "query_then_fetch"
	SearchTypeQueryAndFetch     SearchType = "query_and_fetch"
)

const defaultSearchSize = 10

type searchBody struct {
	From           int64       `json:"from"`
	Size           int64       `json:"size"`
	Query          query.Query `json:"query,omitempty"`
	Timeout        string      `json:"timeout,omitempty"`
	TerminateAfter *int64      `json:"terminate_after,omitempty"`
	Stats          []string    `json:"stats,omitempty"`
	MinScore       *float64    `json:"min_score,omitempty"`
}

// SearchOperation searches one or more indexes, either with a query string
// (sent as the q= parameter) or with a DSL clause tree (sent as the request
// body). A query string and a clause tree are mutually exclusive sources:
// setting one discards the other, last write wins.
type SearchOperation struct {
	client   *Client
	indexes  []string
	docTypes []string
	opts     opParams

	queryString    string
	hasQueryString bool
	body           searchBody
}

func newSearchOperation(c *Client) *SearchOperation {
	return &SearchOperation{
		client: c,
		body:   searchBody{Size: defaultSearchSize},
	}
}

// WithIndexes restricts the search to the given indexes.
func (s *SearchOperation) WithIndexes(indexes ...string) *SearchOperation {
	s.indexes = append(s.indexes, indexes...)
	return s
}

// WithDocTypes restricts the search to the given document types.
func (s *SearchOperation) WithDocTypes(docTypes ...string) *SearchOperation {
	s.docTypes = append(s.docTypes, docTypes...)
	return s
}

// WithQueryString sets a query string as the query source, discarding any
// previously set clause tree.
func (s *SearchOperation) WithQueryString(qs string) *SearchOperation {
	s.queryString = qs
	s.hasQueryString = true
	s.body.Query = nil
	return s
}

// WithQuery sets a DSL clause tree as the query source, discarding any
// previously set query string.
func (s *SearchOperation) WithQuery(q query.Query) *SearchOperation {
	s.body.Query = q
	s.queryString = ""
	s.hasQueryString = false
	return s
}

// WithFrom sets the offset of the first hit to return. Defaults to 0.
func (s *SearchOperation) WithFrom(from int64) *SearchOperation {
	s.body.From = from
	return s
}

// WithSize sets the maximum number of hits to return. Defaults to 10.
func (s *SearchOperation) WithSize(size int64) *SearchOperation {
	s.body.Size = size
	return s
}

// WithTimeout sets the engine-side timeout, e.g. "5s". The value is a
// serialized request field, not a client-side deadline.
func (s *SearchOperation) WithTimeout(timeout string) *SearchOperation {
	s.body.Timeout = timeout
	return s
}

// WithTerminateAfter caps the number of documents collected per shard.
func (s *SearchOperation) WithTerminateAfter(n int64) *SearchOperation {
	s.body.TerminateAfter = &n
	return s
}

// WithStats tags the query for the given stats groups.
func (s *SearchOperation) WithStats(groups ...string) *SearchOperation {
	s.body.Stats = append(s.body.Stats, groups...)
	return s
}

// WithMinScore drops hits scoring below the given value.
func (s *SearchOperation) WithMinScore(score float64) *SearchOperation {
	s.body.MinScore = &score
	return s
}

// WithSearchType sets the query execution strategy.
func (s *SearchOperation) WithSearchType(st SearchType) *SearchOperation {
	s.opts.add("search_type", string(st))
	return s
}

// WithRouting sets the routing value.
func (s *SearchOperation) WithRouting(routing string) *SearchOperation {
	s.opts.add("routing", routing)
	return s
}

// WithDF sets the default field for query-string searches.
func (s *SearchOperation) WithDF(field string) *SearchOperation {
	s.opts.add("df", field)
	return s
}

// WithAnalyzer sets the analyzer for query-string searches.
func (s *SearchOperation) WithAnalyzer(analyzer string) *SearchOperation {
	s.opts.add("analyzer", analyzer)
	return s
}

// WithDefaultOperator sets the default boolean operator ("AND" or "OR") for
// query-string searches.
func (s *SearchOperation) WithDefaultOperator(op string) *SearchOperation {
	s.opts.add("default_operator", op)
	return s
}

// WithExplain asks the engine to include scoring explanations.
func (s *SearchOperation) WithExplain(explain bool) *SearchOperation {
	s.opts.add("explain", strconv.FormatBool(explain))
	return s
}

// WithSort sets the sort specification, e.g. "year:desc".
func (s *SearchOperation) WithSort(sort string) *SearchOperation {
	s.opts.add("sort", sort)
	return s
}

// WithFields selects the stored fields to return with each hit.
func (s *SearchOperation) WithFields(fields ...string) *SearchOperation {
	s.opts.add("fields", strings.Join(fields, ","))
	return s
}

// WithTrackScores asks the engine to compute scores even when sorting.
func (s *SearchOperation) WithTrackScores(track bool) *SearchOperation {
	s.opts.add("track_scores", strconv.FormatBool(track))
	return s
}

// Do sends the search and decodes the result envelope.
func (s *SearchOperation) Do(ctx context.Context) (*SearchResult, error) {
	method := "GET"
	var body []byte
	p := s.opts.clone()

	if s.body.Query != nil {
		method = "POST"
		var err error
		body, err = json.Marshal(&s.body)
		if err != nil {
			return nil, fmt.Errorf("esdex: encode search body: %w", err)
		}
	} else if s.hasQueryString {
		p.add("q", s.queryString)
	}

	path := "/" + formatIndexesAndTypes(s.indexes, s.docTypes) + "/_search" + p.encode()
	raw, err := s.client.transport.Perform(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeSearchResult(raw)
}
