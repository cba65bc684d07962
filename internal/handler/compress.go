package handler

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

const (
	compressLevel   = 6
	compressMinSize = 500
)

var compressContentTypes = []string{
	"text/html",
	"text/css",
	"text/xml",
	"application/json",
	"application/javascript",
}

// NewCompressor returns a gzip stage for any handler. Only the listed
// content types larger than compressMinSize bytes are compressed.
func NewCompressor() (func(http.Handler) http.HandlerFunc, error) {
	return gzhttp.NewWrapper(
		gzhttp.CompressionLevel(compressLevel),
		gzhttp.MinSize(compressMinSize),
		gzhttp.ContentTypes(compressContentTypes),
	)
}
