package restdocs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
)

var pathParamPattern = regexp.MustCompile(`\{([^/{}]+)\}`)

type pathTemplateKey struct{}

// pathTemplate is the unexpanded URL path and its parameter names.
type pathTemplate struct {
	template string
	names    []string
}

// NewRequest builds a test request for urlTemplate, replacing each {name}
// placeholder with the next pathArg. The template is remembered so that
// PathParameters can document it. Like httptest.NewRequest it panics on
// invalid input.
func NewRequest(method, urlTemplate string, body io.Reader, pathArgs ...any) *http.Request {
	names := make([]string, 0, len(pathArgs))
	i := 0
	target := pathParamPattern.ReplaceAllStringFunc(urlTemplate, func(m string) string {
		if i >= len(pathArgs) {
			panic(fmt.Sprintf("restdocs: missing value for %s in %s", m, urlTemplate))
		}
		name := m[1 : len(m)-1]
		v := fmt.Sprint(pathArgs[i])
		i++
		names = append(names, name)
		return url.PathEscape(v)
	})
	if i != len(pathArgs) {
		panic(fmt.Sprintf("restdocs: %d path args for %d placeholders in %s", len(pathArgs), i, urlTemplate))
	}

	if body == nil {
		body = http.NoBody
	}
	req := httptest.NewRequest(method, target, body)
	pt := pathTemplate{template: urlTemplate, names: names}
	return req.WithContext(context.WithValue(req.Context(), pathTemplateKey{}, pt))
}

func pathTemplateFrom(req *http.Request) (pathTemplate, bool) {
	pt, ok := req.Context().Value(pathTemplateKey{}).(pathTemplate)
	return pt, ok
}
