package esdex

import (
	"net/url"
	"strings"
)

// opParams is the ordered list of optional query-string parameters of an
// operation. Insertion order is preserved in the rendered URL so generated
// requests are reproducible.
type opParams struct {
	pairs []paramPair
}

type paramPair struct {
	key   string
	value string
}

func (p *opParams) add(key, value string) {
	p.pairs = append(p.pairs, paramPair{key: key, value: value})
}

func (p *opParams) clone() opParams {
	out := opParams{pairs: make([]paramPair, len(p.pairs))}
	copy(out.pairs, p.pairs)
	return out
}

// encode renders the parameters as a query string, including the leading
// "?". Empty parameter lists render as "".
func (p *opParams) encode() string {
	if len(p.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('?')
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// formatIndexesAndTypes renders the index/type path segment shared by the
// multi-index operations. Missing indexes become "_all" so that a type list
// is never left without an index segment.
func formatIndexesAndTypes(indexes, docTypes []string) string {
	segment := strings.Join(indexes, ",")
	if segment == "" {
		segment = "_all"
	}
	if len(docTypes) == 0 {
		return segment
	}
	return segment + "/" + strings.Join(docTypes, ",")
}
