package handler

import "net/http"

var fixedHeaders = []struct {
	key   string
	value string
}{
	{"Cache-Control", "no-cache, no-store, must-revalidate"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// AttachFixedHeaders returns resp with the no-cache headers set, replacing
// any value already present. The input header map is left untouched.
func AttachFixedHeaders(resp Response) Response {
	header := resp.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	for _, h := range fixedHeaders {
		header.Set(h.key, h.value)
	}
	resp.Header = header
	return resp
}
