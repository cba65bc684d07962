package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/mashiahd/http-mock/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	HealthPath = "/monitors/isalive"

	healthBody        = "up"
	contentTypeHTML   = "text/html; charset=utf-8"
	consoleLineFormat = "Request received: %s %s\n"
)

// Response is what a route computes before anything reaches the wire.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// Dispatcher answers every request: the liveness path with "up", anything
// else with an empty body and the configured status code.
type Dispatcher struct {
	statusCode   int
	consolePrint bool
	logger       log.FieldLogger
	console      io.Writer
}

func NewDispatcher(cfg *config.Config, logger log.FieldLogger, console io.Writer) *Dispatcher {
	return &Dispatcher{
		statusCode:   cfg.ResponseStatusCode,
		consolePrint: cfg.ConsolePrint,
		logger:       logger,
		console:      console,
	}
}

// Handler returns the dispatcher behind the compression stage.
func (d *Dispatcher) Handler() (http.Handler, error) {
	compress, err := NewCompressor()
	if err != nil {
		return nil, fmt.Errorf("creating compressor: %w", err)
	}
	return compress(d), nil
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response
	switch {
	case isHealthCheck(r):
		resp = Health()
	default:
		resp = d.CatchAll(r.Method, r.URL.Path)
	}

	d.writeResponse(w, AttachFixedHeaders(resp))
}

func isHealthCheck(r *http.Request) bool {
	if r.URL.Path != HealthPath {
		return false
	}
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func Health() Response {
	return Response{
		Status: http.StatusOK,
		Body:   []byte(healthBody),
		Header: http.Header{"Content-Type": {contentTypeHTML}},
	}
}

// CatchAll records the request and returns the configured empty response.
func (d *Dispatcher) CatchAll(method, path string) Response {
	d.record(method, path)
	return Response{
		Status: d.statusCode,
		Header: http.Header{},
	}
}

// record logs at error level so the line is written with the default
// error-only log level.
func (d *Dispatcher) record(method, path string) {
	d.logger.WithFields(log.Fields{
		"method": method,
		"path":   path,
	}).Error("request received")

	if !d.consolePrint {
		return
	}
	if _, err := fmt.Fprintf(d.console, consoleLineFormat, method, path); err != nil {
		d.logger.WithField("error", err).Warn("failed to write console line")
	}
}

func (d *Dispatcher) writeResponse(w http.ResponseWriter, resp Response) {
	header := w.Header()
	for key, values := range resp.Header {
		header[key] = values
	}
	w.WriteHeader(resp.Status)

	if len(resp.Body) == 0 {
		return
	}
	if _, err := w.Write(resp.Body); err != nil {
		d.logger.WithField("error", err).Error("failed to write response body")
	}
}
