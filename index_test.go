package esdex

import (
	"context"
	"testing"
)

func TestIndex_WithID(t *testing.T) {
	ft := &fakeTransport{response: []byte(
		`{"created": true, "_index": "messages", "_type": "comment", "_id": "doc-1", "_version": 1}`,
	)}
	c := testClient(t, ft)

	doc := map[string]any{"title": "go", "year": 2015}
	result, err := c.Index("messages", "comment").
		WithID("doc-1").
		WithDocument(doc).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ft.lastMethod != "PUT" {
		t.Errorf("method = %q, want PUT", ft.lastMethod)
	}
	if want := "/messages/comment/doc-1"; ft.lastPath != want {
		t.Errorf("path = %q, want %q", ft.lastPath, want)
	}
	if want := `{"title":"go","year":2015}`; string(ft.lastBody) != want {
		t.Errorf("body = %s, want %s", ft.lastBody, want)
	}

	if !result.Created || result.ID != "doc-1" || result.Version != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestIndex_WithoutID(t *testing.T) {
	ft := &fakeTransport{response: []byte(
		`{"created": true, "_index": "messages", "_type": "comment", "_id": "generated", "_version": 1}`,
	)}
	c := testClient(t, ft)

	result, err := c.Index("messages", "comment").
		WithDocument(map[string]any{"title": "go"}).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ft.lastMethod != "POST" {
		t.Errorf("method = %q, want POST", ft.lastMethod)
	}
	if want := "/messages/comment"; ft.lastPath != want {
		t.Errorf("path = %q, want %q", ft.lastPath, want)
	}
	if result.ID != "generated" {
		t.Errorf("ID = %q", result.ID)
	}
}

func TestIndex_Options(t *testing.T) {
	ft := &fakeTransport{response: []byte(`{"created": false}`)}
	c := testClient(t, ft)

	_, err := c.Index("messages", "comment").
		WithID("doc-1").
		WithRouting("user-1").
		WithTTL("10d").
		WithRefresh(true).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/messages/comment/doc-1?routing=user-1&ttl=10d&refresh=true"
	if ft.lastPath != want {
		t.Errorf("path = %q\nwant   %q", ft.lastPath, want)
	}
	if ft.lastBody != nil {
		t.Errorf("body = %q, want none", ft.lastBody)
	}
}

func TestIndex_TypedDocument(t *testing.T) {
	ft := &fakeTransport{response: []byte(`{"created": true}`)}
	c := testClient(t, ft)

	type message struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	}
	_, err := c.Index("messages", "comment").
		WithID("doc-1").
		WithDocument(message{Title: "go", Year: 2015}).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"title":"go","year":2015}`; string(ft.lastBody) != want {
		t.Errorf("body = %s, want %s", ft.lastBody, want)
	}
}
