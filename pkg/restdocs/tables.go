package restdocs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RequestHeaders documents request headers. Every non-optional header must be
// present in the request.
func RequestHeaders(descs ...Descriptor) Snippet {
	return snippetFunc{fileName: "request-headers", fn: func(ex *Exchange) (string, error) {
		var errs []error
		for _, d := range descs {
			if !d.Optional && ex.Request.Header.Get(d.Name) == "" {
				errs = append(errs, fmt.Errorf("header %q is documented but missing", d.Name))
			}
		}
		if err := errors.Join(errs...); err != nil {
			return "", err
		}
		return renderTable("", "Name", descs), nil
	}}
}

// PathParameters documents the parameters of the request's URL template.
// The request must have been built with NewRequest. Documented and actual
// parameters must match exactly.
func PathParameters(descs ...Descriptor) Snippet {
	return snippetFunc{fileName: "path-parameters", fn: func(ex *Exchange) (string, error) {
		pt, ok := pathTemplateFrom(ex.Request)
		if !ok {
			return "", errors.New("request has no URL template; build it with restdocs.NewRequest")
		}
		actual := make(map[string]bool, len(pt.names))
		for _, n := range pt.names {
			actual[n] = true
		}
		if err := verifyNames("path parameter", descs, actual); err != nil {
			return "", err
		}
		caption := "." + strings.SplitN(pt.template, "?", 2)[0] + "\n"
		return renderTable(caption, "Parameter", descs), nil
	}}
}

// QueryParameters documents the query string. Every parameter in the request
// must be documented and every non-optional one must be present.
func QueryParameters(descs ...Descriptor) Snippet {
	return snippetFunc{fileName: "query-parameters", fn: func(ex *Exchange) (string, error) {
		actual := make(map[string]bool)
		for k := range ex.Request.URL.Query() {
			actual[k] = true
		}
		if err := verifyNames("query parameter", descs, actual); err != nil {
			return "", err
		}
		return renderTable("", "Parameter", descs), nil
	}}
}

// RequestFields documents the request body. Every field in the payload must
// be documented.
func RequestFields(descs ...Descriptor) Snippet {
	return fieldsSnippet("request-fields", false, descs, func(ex *Exchange) []byte { return ex.RequestBody })
}

// RelaxedRequestFields documents the request body without requiring every
// payload field to be documented.
func RelaxedRequestFields(descs ...Descriptor) Snippet {
	return fieldsSnippet("request-fields", true, descs, func(ex *Exchange) []byte { return ex.RequestBody })
}

// ResponseFields documents the response body. Every field in the payload must
// be documented.
func ResponseFields(descs ...Descriptor) Snippet {
	return fieldsSnippet("response-fields", false, descs, func(ex *Exchange) []byte { return ex.ResponseBody })
}

// RelaxedResponseFields documents the response body without requiring every
// payload field to be documented.
func RelaxedResponseFields(descs ...Descriptor) Snippet {
	return fieldsSnippet("response-fields", true, descs, func(ex *Exchange) []byte { return ex.ResponseBody })
}

func fieldsSnippet(name string, relaxed bool, descs []Descriptor, body func(*Exchange) []byte) Snippet {
	return snippetFunc{fileName: name, fn: func(ex *Exchange) (string, error) {
		payload, err := parsePayload(body(ex))
		if err != nil {
			return "", err
		}
		resolved, err := payload.verify(descs, relaxed)
		if err != nil {
			return "", err
		}
		return renderTable("", "Path", resolved), nil
	}}
}

// verifyNames checks documented names against the actual set.
func verifyNames(kind string, descs []Descriptor, actual map[string]bool) error {
	var errs []error
	documented := make(map[string]bool, len(descs))
	for _, d := range descs {
		documented[d.Name] = true
		if !d.Optional && !actual[d.Name] {
			errs = append(errs, fmt.Errorf("%s %q is documented but missing", kind, d.Name))
		}
	}
	undocumented := make([]string, 0)
	for n := range actual {
		if !documented[n] {
			undocumented = append(undocumented, n)
		}
	}
	sort.Strings(undocumented)
	for _, n := range undocumented {
		errs = append(errs, fmt.Errorf("%s %q is not documented", kind, n))
	}
	return errors.Join(errs...)
}

func renderTable(caption, key string, descs []Descriptor) string {
	var rows strings.Builder
	for _, d := range descs {
		typ := d.Type
		if typ == "" {
			typ = "Varies"
		}
		rows.WriteString(rowTmpl.ExecuteString(map[string]any{
			"name":        d.Name,
			"type":        typ,
			"optional":    strconv.FormatBool(d.Optional),
			"constraints": escapeCell(d.Constraints),
			"description": escapeCell(d.Description),
		}))
	}
	return tableTmpl.ExecuteString(map[string]any{
		"caption": caption,
		"key":     key,
		"rows":    rows.String(),
	})
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
