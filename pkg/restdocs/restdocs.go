// Package restdocs generates AsciiDoc API documentation snippets from HTTP
// exchanges performed in tests.
//
// Each documented operation writes one directory of snippets under the output
// directory. curl-request, http-request and http-response are always written;
// the table snippets (request headers, path and query parameters, request and
// response fields) are written only when passed to Document, and fail the
// operation when the exchange does not match what they describe.
package restdocs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// OutputDirEnv names the environment variable that overrides the snippet directory.
const OutputDirEnv = "RESTDOCS_OUTPUT_DIR"

// DefaultHost is the host shown in generated snippets.
const DefaultHost = "localhost:8080"

// Documenter performs requests against a handler and writes snippets.
type Documenter struct {
	handler   http.Handler
	outputDir string
	host      string
}

// New returns a Documenter that serves requests with handler and writes
// snippets below outputDir.
func New(handler http.Handler, outputDir string) *Documenter {
	return &Documenter{handler: handler, outputDir: outputDir, host: DefaultHost}
}

// OutputDir returns $RESTDOCS_OUTPUT_DIR when set, otherwise a per-test temp dir.
func OutputDir(tb testing.TB) string {
	tb.Helper()
	if dir := os.Getenv(OutputDirEnv); dir != "" {
		return dir
	}
	return tb.TempDir()
}

// Exchange is one captured request/response pair.
type Exchange struct {
	Request      *http.Request
	RequestBody  []byte
	Status       int
	Header       http.Header
	ResponseBody []byte
}

// DecodeJSON unmarshals the response body into v.
func (e *Exchange) DecodeJSON(v any) error {
	return json.Unmarshal(e.ResponseBody, v)
}

// Perform serves req and captures both bodies.
func (d *Documenter) Perform(req *http.Request) (*Exchange, error) {
	var reqBody []byte
	if req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("restdocs: read request body: %w", err)
		}
		reqBody = b
		req.Body = io.NopCloser(bytes.NewReader(b))
		req.ContentLength = int64(len(b))
	}
	req.Host = d.host
	req.URL.Host = d.host
	if req.URL.Scheme == "" {
		req.URL.Scheme = "http"
	}

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	res := rec.Result()
	defer res.Body.Close() //nolint:errcheck
	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("restdocs: read response body: %w", err)
	}

	return &Exchange{
		Request:      req,
		RequestBody:  reqBody,
		Status:       res.StatusCode,
		Header:       res.Header,
		ResponseBody: respBody,
	}, nil
}

// Document renders the default snippets plus the given ones into
// <outputDir>/<operation>/. Every snippet is verified before anything is
// written, so a failed verification leaves no partial output.
func (d *Documenter) Document(operation string, ex *Exchange, snippets ...Snippet) error {
	all := append([]Snippet{CurlRequest(), HTTPRequest(), HTTPResponse()}, snippets...)

	rendered := make(map[string]string, len(all))
	var errs []error
	for _, s := range all {
		out, err := s.render(ex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name(), err))
			continue
		}
		rendered[s.name()] = out
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("restdocs: document %s: %w", operation, err)
	}

	dir := filepath.Join(d.outputDir, filepath.FromSlash(operation))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("restdocs: create %s: %w", dir, err)
	}
	for name, content := range rendered {
		path := filepath.Join(dir, name+".adoc")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("restdocs: write %s: %w", path, err)
		}
	}
	return nil
}

// Do performs req and documents it as operation, failing tb on any error.
func (d *Documenter) Do(tb testing.TB, operation string, req *http.Request, snippets ...Snippet) *Exchange {
	tb.Helper()
	ex, err := d.Perform(req)
	if err != nil {
		tb.Fatalf("perform %s: %v", operation, err)
	}
	if err := d.Document(operation, ex, snippets...); err != nil {
		tb.Fatalf("%v", err)
	}
	return ex
}
