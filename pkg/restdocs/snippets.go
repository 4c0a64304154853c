package restdocs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// Snippet renders one documentation file from an exchange.
type Snippet interface {
	name() string
	render(ex *Exchange) (string, error)
}

type snippetFunc struct {
	fileName string
	fn       func(ex *Exchange) (string, error)
}

func (s snippetFunc) name() string                        { return s.fileName }
func (s snippetFunc) render(ex *Exchange) (string, error) { return s.fn(ex) }

// CurlRequest documents the request as a curl command.
func CurlRequest() Snippet {
	return snippetFunc{fileName: "curl-request", fn: func(ex *Exchange) (string, error) {
		var opts strings.Builder
		for _, h := range headerLines(ex.Request.Header) {
			opts.WriteString(" \\\n    -H " + shellQuote(h))
		}
		if len(ex.RequestBody) > 0 {
			opts.WriteString(" \\\n    -d " + shellQuote(string(prettyJSON(ex.RequestBody))))
		}
		return curlTmpl.ExecuteString(map[string]any{
			"url":     ex.Request.URL.String(),
			"method":  ex.Request.Method,
			"options": opts.String(),
		}), nil
	}}
}

// HTTPRequest documents the raw HTTP request.
func HTTPRequest() Snippet {
	return snippetFunc{fileName: "http-request", fn: func(ex *Exchange) (string, error) {
		header := ex.Request.Header.Clone()
		header.Set("Host", ex.Request.Host)
		if len(ex.RequestBody) > 0 {
			header.Set("Content-Length", strconv.Itoa(len(prettyJSON(ex.RequestBody))))
		}
		return httpRequestTmpl.ExecuteString(map[string]any{
			"method":  ex.Request.Method,
			"target":  ex.Request.URL.RequestURI(),
			"headers": joinLines(headerLines(header)),
			"body":    bodyBlock(ex.RequestBody),
		}), nil
	}}
}

// HTTPResponse documents the raw HTTP response.
func HTTPResponse() Snippet {
	return snippetFunc{fileName: "http-response", fn: func(ex *Exchange) (string, error) {
		header := ex.Header.Clone()
		if len(ex.ResponseBody) > 0 {
			header.Set("Content-Length", strconv.Itoa(len(prettyJSON(ex.ResponseBody))))
		}
		return httpResponseTmpl.ExecuteString(map[string]any{
			"status":  strconv.Itoa(ex.Status),
			"reason":  http.StatusText(ex.Status),
			"headers": joinLines(headerLines(header)),
			"body":    bodyBlock(ex.ResponseBody),
		}), nil
	}}
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// headerLines returns "Name: value" lines sorted by name.
func headerLines(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var lines []string
	for _, k := range keys {
		for _, v := range h[k] {
			lines = append(lines, k+": "+v)
		}
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func bodyBlock(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	return string(prettyJSON(body)) + "\n"
}

// prettyJSON indents body when it is JSON and returns it unchanged otherwise.
func prettyJSON(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return body
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return body
	}
	return buf.Bytes()
}
