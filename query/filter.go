package query

import "encoding/json"

// Filter is a clause in the filter family.
type Filter interface {
	json.Marshaler
	filterClause()
}

// TermFilter matches documents whose field holds exactly the given value.
type TermFilter struct {
	field string
	value any
}

// NewTerm creates a term filter.
func NewTerm(field string, value any) *TermFilter {
	return &TermFilter{field: field, value: value}
}

// Field returns the field name.
func (f *TermFilter) Field() string { return f.field }

// Value returns the matched value.
func (f *TermFilter) Value() any { return f.value }

func (*TermFilter) filterClause() {}

// MarshalJSON implements json.Marshaler.
func (f *TermFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]any{
		"term": {f.field: f.value},
	})
}

// TermsFilter matches documents whose field holds any of the given values.
// Value order is preserved in the serialized form.
type TermsFilter struct {
	field  string
	values []any
}

// NewTerms creates a terms filter.
func NewTerms(field string, values ...any) *TermsFilter {
	return &TermsFilter{field: field, values: values}
}

// Field returns the field name.
func (f *TermsFilter) Field() string { return f.field }

// Values returns the matched values.
func (f *TermsFilter) Values() []any { return f.values }

func (*TermsFilter) filterClause() {}

// MarshalJSON implements json.Marshaler.
func (f *TermsFilter) MarshalJSON() ([]byte, error) {
	values := f.values
	if values == nil {
		values = []any{}
	}
	return json.Marshal(map[string]map[string][]any{
		"terms": {f.field: values},
	})
}

// RangeFilter matches documents whose numeric field falls inside the set
// bounds. All bounds are optional; a range with no bounds is valid and
// serializes to an empty object under the field key.
type RangeFilter struct {
	field string
	gte   *float64
	gt    *float64
	lte   *float64
	lt    *float64
}

// NewRange creates a range filter for a field.
func NewRange(field string) *RangeFilter {
	return &RangeFilter{field: field}
}

// WithGTE sets the inclusive lower bound.
func (f *RangeFilter) WithGTE(v float64) *RangeFilter {
	f.gte = &v
	return f
}

// WithGT sets the exclusive lower bound.
func (f *RangeFilter) WithGT(v float64) *RangeFilter {
	f.gt = &v
	return f
}

// WithLTE sets the inclusive upper bound.
func (f *RangeFilter) WithLTE(v float64) *RangeFilter {
	f.lte = &v
	return f
}

// WithLT sets the exclusive upper bound.
func (f *RangeFilter) WithLT(v float64) *RangeFilter {
	f.lt = &v
	return f
}

// Field returns the field name.
func (f *RangeFilter) Field() string { return f.field }

func (*RangeFilter) filterClause() {}

type rangeBounds struct {
	GTE *float64 `json:"gte,omitempty"`
	GT  *float64 `json:"gt,omitempty"`
	LTE *float64 `json:"lte,omitempty"`
	LT  *float64 `json:"lt,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (f *RangeFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]rangeBounds{
		"range": {f.field: {GTE: f.gte, GT: f.gt, LTE: f.lte, LT: f.lt}},
	})
}

// ExistsFilter matches documents that carry the given field at all.
type ExistsFilter struct {
	field string
}

// NewExists creates an exists filter.
func NewExists(field string) *ExistsFilter {
	return &ExistsFilter{field: field}
}

// Field returns the field name.
func (f *ExistsFilter) Field() string { return f.field }

func (*ExistsFilter) filterClause() {}

// MarshalJSON implements json.Marshaler.
func (f *ExistsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]string{
		"exists": {"field": f.field},
	})
}

// BoolFilter combines sub-filters with must/should/must_not semantics.
// Each group preserves the order in which clauses were added.
type BoolFilter struct {
	must    []Filter
	should  []Filter
	mustNot []Filter
}

// NewBoolFilter creates an empty bool filter.
func NewBoolFilter() *BoolFilter { return &BoolFilter{} }

// WithMust appends filters that all matched documents must satisfy.
func (f *BoolFilter) WithMust(clauses ...Filter) *BoolFilter {
	f.must = append(f.must, clauses...)
	return f
}

// WithShould appends filters that matched documents should satisfy.
func (f *BoolFilter) WithShould(clauses ...Filter) *BoolFilter {
	f.should = append(f.should, clauses...)
	return f
}

// WithMustNot appends filters that matched documents must not satisfy.
func (f *BoolFilter) WithMustNot(clauses ...Filter) *BoolFilter {
	f.mustNot = append(f.mustNot, clauses...)
	return f
}

// Must returns the must clauses.
func (f *BoolFilter) Must() []Filter { return f.must }

// Should returns the should clauses.
func (f *BoolFilter) Should() []Filter { return f.should }

// MustNot returns the must_not clauses.
func (f *BoolFilter) MustNot() []Filter { return f.mustNot }

func (*BoolFilter) filterClause() {}

// MarshalJSON implements json.Marshaler.
func (f *BoolFilter) MarshalJSON() ([]byte, error) {
	body := struct {
		Must    []Filter `json:"must,omitempty"`
		Should  []Filter `json:"should,omitempty"`
		MustNot []Filter `json:"must_not,omitempty"`
	}{f.must, f.should, f.mustNot}
	return json.Marshal(map[string]any{"bool": body})
}
