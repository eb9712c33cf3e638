// Package query models the engine's search DSL as two closed clause
// families: Query clauses and Filter clauses. Every clause serializes to the
// single-key JSON object the engine expects, and combinators nest clauses of
// their own family; Filtered is the one bridge from the filter family into a
// query context.
//
// Clauses are built variant-first: mandatory fields are constructor
// arguments, optional fields are chained With* setters. A constructed clause
// is always serializable.
package query

import "encoding/json"

// Query is a clause in the query family.
type Query interface {
	json.Marshaler
	queryClause()
}

// MatchAllQuery matches every document.
type MatchAllQuery struct{}

// NewMatchAll creates a match_all query.
func NewMatchAll() *MatchAllQuery { return &MatchAllQuery{} }

func (*MatchAllQuery) queryClause() {}

// MarshalJSON implements json.Marshaler.
func (*MatchAllQuery) MarshalJSON() ([]byte, error) {
	return []byte(`{"match_all":{}}`), nil
}

// MatchQuery matches documents whose field contains the given value.
type MatchQuery struct {
	field string
	value any
}

// NewMatch creates a match query for a field and value.
func NewMatch(field string, value any) *MatchQuery {
	return &MatchQuery{field: field, value: value}
}

// Field returns the field name.
func (q *MatchQuery) Field() string { return q.field }

// Value returns the matched value.
func (q *MatchQuery) Value() any { return q.value }

func (*MatchQuery) queryClause() {}

// MarshalJSON implements json.Marshaler.
func (q *MatchQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]any{
		"match": {q.field: q.value},
	})
}

// QueryStringQuery runs the engine's query-string mini language.
type QueryStringQuery struct {
	query        string
	defaultField string
}

// NewQueryString creates a query_string query.
func NewQueryString(qs string) *QueryStringQuery {
	return &QueryStringQuery{query: qs}
}

// WithDefaultField sets the field searched when the query string names none.
func (q *QueryStringQuery) WithDefaultField(field string) *QueryStringQuery {
	q.defaultField = field
	return q
}

// QueryString returns the query string.
func (q *QueryStringQuery) QueryString() string { return q.query }

func (*QueryStringQuery) queryClause() {}

// MarshalJSON implements json.Marshaler.
func (q *QueryStringQuery) MarshalJSON() ([]byte, error) {
	body := struct {
		Query        string `json:"query"`
		DefaultField string `json:"default_field,omitempty"`
	}{q.query, q.defaultField}
	return json.Marshal(map[string]any{"query_string": body})
}

// BoolQuery combines sub-queries with must/should/must_not semantics.
// Each group preserves the order in which clauses were added.
type BoolQuery struct {
	must    []Query
	should  []Query
	mustNot []Query
}

// NewBool creates an empty bool query. A bool query with no sub-clauses is
// valid and serializes to {"bool":{}}.
func NewBool() *BoolQuery { return &BoolQuery{} }

// WithMust appends clauses that all matched documents must satisfy.
func (q *BoolQuery) WithMust(clauses ...Query) *BoolQuery {
	q.must = append(q.must, clauses...)
	return q
}

// WithShould appends clauses that matched documents should satisfy.
func (q *BoolQuery) WithShould(clauses ...Query) *BoolQuery {
	q.should = append(q.should, clauses...)
	return q
}

// WithMustNot appends clauses that matched documents must not satisfy.
func (q *BoolQuery) WithMustNot(clauses ...Query) *BoolQuery {
	q.mustNot = append(q.mustNot, clauses...)
	return q
}

// Must returns the must clauses.
func (q *BoolQuery) Must() []Query { return q.must }

// Should returns the should clauses.
func (q *BoolQuery) Should() []Query { return q.should }

// MustNot returns the must_not clauses.
func (q *BoolQuery) MustNot() []Query { return q.mustNot }

func (*BoolQuery) queryClause() {}

// MarshalJSON implements json.Marshaler.
func (q *BoolQuery) MarshalJSON() ([]byte, error) {
	body := struct {
		Must    []Query `json:"must,omitempty"`
		Should  []Query `json:"should,omitempty"`
		MustNot []Query `json:"must_not,omitempty"`
	}{q.must, q.should, q.mustNot}
	return json.Marshal(map[string]any{"bool": body})
}

// FilteredQuery wraps a query together with a filter, bringing a Filter
// clause into a query context.
type FilteredQuery struct {
	query  Query
	filter Filter
}

// NewFiltered creates a filtered query. A nil query is omitted from the
// serialized form, leaving a filter-only wrapper.
func NewFiltered(q Query, f Filter) *FilteredQuery {
	return &FilteredQuery{query: q, filter: f}
}

// Query returns the wrapped query clause.
func (q *FilteredQuery) Query() Query { return q.query }

// Filter returns the wrapped filter clause.
func (q *FilteredQuery) Filter() Filter { return q.filter }

func (*FilteredQuery) queryClause() {}

// MarshalJSON implements json.Marshaler.
func (q *FilteredQuery) MarshalJSON() ([]byte, error) {
	body := struct {
		Query  Query  `json:"query,omitempty"`
		Filter Filter `json:"filter,omitempty"`
	}{q.query, q.filter}
	return json.Marshal(map[string]any{"filtered": body})
}
