package esdex

import (
	"context"
	"errors"
	"testing"
)

func TestRefresh_AllIndexes(t *testing.T) {
	ft := &fakeTransport{response: []byte(
		`{"_shards": {"total": 10, "successful": 10, "failed": 0}}`,
	)}
	c := testClient(t, ft)

	result, err := c.Refresh().Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ft.lastMethod != "POST" {
		t.Errorf("method = %q, want POST", ft.lastMethod)
	}
	if want := "/_all/_refresh"; ft.lastPath != want {
		t.Errorf("path = %q, want %q", ft.lastPath, want)
	}
	if result.Shards.Successful != 10 {
		t.Errorf("shards = %+v", result.Shards)
	}
}

func TestRefresh_WithIndexes(t *testing.T) {
	ft := &fakeTransport{response: []byte(
		`{"_shards": {"total": 2, "successful": 2, "failed": 0}}`,
	)}
	c := testClient(t, ft)

	_, err := c.Refresh().WithIndexes("messages", "logs").Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "/messages,logs/_refresh"; ft.lastPath != want {
		t.Errorf("path = %q, want %q", ft.lastPath, want)
	}
}

func TestRefresh_MissingShards(t *testing.T) {
	ft := &fakeTransport{response: []byte(`{"ok": true}`)}
	c := testClient(t, ft)

	_, err := c.Refresh().Do(context.Background())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("error = %v, want ErrInvalidResponse", err)
	}
}
