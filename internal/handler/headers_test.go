package handler

import (
	"net/http"
	"testing"
)

func TestAttachFixedHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
	}{
		{name: "nil header", header: nil},
		{name: "empty header", header: http.Header{}},
		{
			name: "overrides caching headers",
			header: http.Header{
				"Cache-Control": {"public, max-age=3600"},
				"Expires":       {"Thu, 01 Dec 2094 16:00:00 GMT"},
				"Content-Type":  {"text/html; charset=utf-8"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Response{Status: http.StatusOK, Body: []byte("up"), Header: tt.header}
			var before http.Header
			if tt.header != nil {
				before = tt.header.Clone()
			}

			out := AttachFixedHeaders(in)

			assertFixedHeaders(t, out.Header)
			if got := len(out.Header.Values("Cache-Control")); got != 1 {
				t.Errorf("Cache-Control has %d values, want 1", got)
			}
			if out.Status != in.Status || string(out.Body) != string(in.Body) {
				t.Errorf("status/body changed: got %d %q", out.Status, out.Body)
			}
			if ct := tt.header.Get("Content-Type"); ct != "" && out.Header.Get("Content-Type") != ct {
				t.Errorf("Content-Type = %q, want %q", out.Header.Get("Content-Type"), ct)
			}
			for key, values := range before {
				if tt.header.Get(key) != values[0] {
					t.Errorf("input header %s mutated to %q", key, tt.header.Get(key))
				}
			}
			if tt.header != nil && len(tt.header) != len(before) {
				t.Errorf("input header gained keys: %v", tt.header)
			}
		})
	}
}
