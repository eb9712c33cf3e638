package esdex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestNew_WithHTTP(t *testing.T) {
	c, err := New(WithHTTP("http://localhost:9200"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.transport == nil {
		t.Fatal("expected default transport")
	}
}

func TestNew_BadBaseURL(t *testing.T) {
	_, err := New(WithHTTP("localhost:9200")) // no scheme
	if err == nil {
		t.Fatal("expected error for base URL without scheme")
	}
}

func TestNew_CustomTransport(t *testing.T) {
	ft := &fakeTransport{}
	c, err := New(WithTransport(ft))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.transport != Transport(ft) {
		t.Error("custom transport not used")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithHTTP("http://engine:9200")(cfg)
	if cfg.baseURL != "http://engine:9200" {
		t.Errorf("baseURL = %q", cfg.baseURL)
	}

	WithTimeout(5 * time.Second)(cfg)
	if cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}

	logger := zap.NewNop()
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger not set")
	}
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	content := "endpoint:\n  host: localhost\n  port: 9200\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := NewFromConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.transport == nil {
		t.Fatal("expected transport from config")
	}
}

func TestNewFromConfig_MissingFile(t *testing.T) {
	_, err := NewFromConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
