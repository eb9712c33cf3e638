package metrics

import "testing"

func TestOperationFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/messages/_search", "search"},
		{"/messages/_search?q=hello", "search"},
		{"/_all/_refresh", "refresh"},
		{"/messages,logs/comment/_query?routing=x", "query"},
		{"/messages/comment/doc-1", "document"},
		{"/messages/_all/doc-1", "document"},
		{"/", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := OperationFromPath(tt.path); got != tt.want {
				t.Errorf("OperationFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
