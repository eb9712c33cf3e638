package query

import (
	"encoding/json"
	"fmt"
)

// DecodeQuery parses a serialized query clause back into its clause value.
// The input must be a single-key object whose key names a known query
// variant; anything else is a codec error.
func DecodeQuery(data []byte) (Query, error) {
	kind, body, err := splitClause(data)
	if err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}

	switch kind {
	case "match_all":
		return NewMatchAll(), nil
	case "match":
		field, value, err := decodeFieldValue(body)
		if err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		return NewMatch(field, value), nil
	case "query_string":
		var qs struct {
			Query        string `json:"query"`
			DefaultField string `json:"default_field"`
		}
		if err := json.Unmarshal(body, &qs); err != nil {
			return nil, fmt.Errorf("decode query_string: %w", err)
		}
		q := NewQueryString(qs.Query)
		if qs.DefaultField != "" {
			q.WithDefaultField(qs.DefaultField)
		}
		return q, nil
	case "bool":
		return decodeBoolQuery(body)
	case "filtered":
		return decodeFilteredQuery(body)
	default:
		return nil, fmt.Errorf("decode query: unknown clause %q", kind)
	}
}

// DecodeFilter parses a serialized filter clause back into its clause value.
func DecodeFilter(data []byte) (Filter, error) {
	kind, body, err := splitClause(data)
	if err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}

	switch kind {
	case "term":
		field, value, err := decodeFieldValue(body)
		if err != nil {
			return nil, fmt.Errorf("decode term: %w", err)
		}
		return NewTerm(field, value), nil
	case "terms":
		var fields map[string][]any
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("decode terms: %w", err)
		}
		if len(fields) != 1 {
			return nil, fmt.Errorf("decode terms: expected one field, got %d", len(fields))
		}
		for field, values := range fields {
			return NewTerms(field, values...), nil
		}
	case "range":
		var fields map[string]rangeBounds
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("decode range: %w", err)
		}
		if len(fields) != 1 {
			return nil, fmt.Errorf("decode range: expected one field, got %d", len(fields))
		}
		for field, bounds := range fields {
			f := NewRange(field)
			f.gte, f.gt, f.lte, f.lt = bounds.GTE, bounds.GT, bounds.LTE, bounds.LT
			return f, nil
		}
	case "exists":
		var body2 struct {
			Field string `json:"field"`
		}
		if err := json.Unmarshal(body, &body2); err != nil {
			return nil, fmt.Errorf("decode exists: %w", err)
		}
		return NewExists(body2.Field), nil
	case "bool":
		return decodeBoolFilter(body)
	}
	return nil, fmt.Errorf("decode filter: unknown clause %q", kind)
}

// splitClause unwraps the {"<kind>": <body>} envelope shared by all clauses.
func splitClause(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("expected a single-key clause object, got %d keys", len(obj))
	}
	for kind, body := range obj {
		return kind, body, nil
	}
	return "", nil, nil // unreachable
}

// decodeFieldValue unwraps the {"<field>": <value>} body of match and term
// clauses.
func decodeFieldValue(body json.RawMessage) (string, any, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", nil, err
	}
	if len(fields) != 1 {
		return "", nil, fmt.Errorf("expected one field, got %d", len(fields))
	}
	for field, value := range fields {
		return field, value, nil
	}
	return "", nil, nil // unreachable
}

type rawBool struct {
	Must    []json.RawMessage `json:"must"`
	Should  []json.RawMessage `json:"should"`
	MustNot []json.RawMessage `json:"must_not"`
}

func decodeBoolQuery(body json.RawMessage) (*BoolQuery, error) {
	var raw rawBool
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bool: %w", err)
	}
	q := NewBool()
	for _, group := range []struct {
		name    string
		clauses []json.RawMessage
		add     func(...Query) *BoolQuery
	}{
		{"must", raw.Must, q.WithMust},
		{"should", raw.Should, q.WithShould},
		{"must_not", raw.MustNot, q.WithMustNot},
	} {
		for _, clause := range group.clauses {
			sub, err := DecodeQuery(clause)
			if err != nil {
				return nil, fmt.Errorf("decode bool %s: %w", group.name, err)
			}
			group.add(sub)
		}
	}
	return q, nil
}

func decodeBoolFilter(body json.RawMessage) (*BoolFilter, error) {
	var raw rawBool
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bool: %w", err)
	}
	f := NewBoolFilter()
	for _, group := range []struct {
		name    string
		clauses []json.RawMessage
		add     func(...Filter) *BoolFilter
	}{
		{"must", raw.Must, f.WithMust},
		{"should", raw.Should, f.WithShould},
		{"must_not", raw.MustNot, f.WithMustNot},
	} {
		for _, clause := range group.clauses {
			sub, err := DecodeFilter(clause)
			if err != nil {
				return nil, fmt.Errorf("decode bool %s: %w", group.name, err)
			}
			group.add(sub)
		}
	}
	return f, nil
}

func decodeFilteredQuery(body json.RawMessage) (*FilteredQuery, error) {
	var raw struct {
		Query  json.RawMessage `json:"query"`
		Filter json.RawMessage `json:"filter"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode filtered: %w", err)
	}

	var (
		q   Query
		f   Filter
		err error
	)
	if len(raw.Query) > 0 {
		if q, err = DecodeQuery(raw.Query); err != nil {
			return nil, fmt.Errorf("decode filtered query: %w", err)
		}
	}
	if len(raw.Filter) > 0 {
		if f, err = DecodeFilter(raw.Filter); err != nil {
			return nil, fmt.Errorf("decode filtered filter: %w", err)
		}
	}
	return NewFiltered(q, f), nil
}
