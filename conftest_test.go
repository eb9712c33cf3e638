package esdex

import (
	"context"
	"testing"
)

// fakeTransport records the single request an operation performs and plays
// back a canned response.
type fakeTransport struct {
	lastMethod string
	lastPath   string
	lastBody   []byte
	calls      int

	response []byte
	err      error
}

func (f *fakeTransport) Perform(_ context.Context, method, path string, body []byte) ([]byte, error) {
	f.calls++
	f.lastMethod = method
	f.lastPath = path
	f.lastBody = body
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func testClient(tb testing.TB, ft *fakeTransport) *Client {
	tb.Helper()
	c, err := New(WithTransport(ft))
	if err != nil {
		tb.Fatalf("new client: %v", err)
	}
	return c
}
