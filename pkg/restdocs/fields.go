package restdocs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// payload is the flattened field structure of a JSON body.
//
// Paths use dots for object members and [] for array elements: the members
// of a top-level array of objects are "[].id", those of an array member are
// "errors[].field". A path ending in [] names the array itself.
type payload struct {
	types  map[string]string
	leaves map[string]bool
}

func parsePayload(body []byte) (*payload, error) {
	p := &payload{types: map[string]string{}, leaves: map[string]bool{}}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return p, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("payload is not JSON: %w", err)
	}
	p.walk("", v)
	return p, nil
}

func (p *payload) walk(path string, v any) {
	switch val := v.(type) {
	case map[string]any:
		if path != "" {
			p.record(path, "Object")
			if len(val) == 0 {
				p.leaves[path] = true
			}
		}
		for k, child := range val {
			p.walk(join(path, k), child)
		}
	case []any:
		if path != "" {
			p.record(path, "Array")
		}
		scalarOnly := true
		for _, elem := range val {
			switch elem.(type) {
			case map[string]any, []any:
				scalarOnly = false
				p.walk(path+"[]", elem)
			}
		}
		if path != "" && (len(val) == 0 || scalarOnly) {
			p.leaves[path] = true
		}
	default:
		p.record(path, jsonType(val))
		p.leaves[path] = true
	}
}

func (p *payload) record(path, typ string) {
	if prev, ok := p.types[path]; ok && prev != typ {
		typ = "Varies"
	}
	p.types[path] = typ
}

// verify checks descs against the payload and returns them with inferred
// types filled in. A documented field covers its whole subtree.
func (p *payload) verify(descs []Descriptor, relaxed bool) ([]Descriptor, error) {
	var errs []error
	resolved := make([]Descriptor, len(descs))
	documented := make([]string, 0, len(descs))
	for i, d := range descs {
		path := normalizePath(d.Name)
		documented = append(documented, path)

		typ, present := p.types[path]
		if path == "" {
			typ, present = "Array", true
		}
		if !present && !d.Optional {
			errs = append(errs, fmt.Errorf("field %q is documented but missing", d.Name))
		}
		if d.Type == "" && present {
			d.Type = typ
		}
		resolved[i] = d
	}

	if !relaxed {
		leaves := make([]string, 0, len(p.leaves))
		for leaf := range p.leaves {
			leaves = append(leaves, leaf)
		}
		sort.Strings(leaves)
		for _, leaf := range leaves {
			if !covered(leaf, documented) {
				errs = append(errs, fmt.Errorf("field %q is not documented", leaf))
			}
		}
	}
	return resolved, errors.Join(errs...)
}

func covered(leaf string, documented []string) bool {
	for _, d := range documented {
		if d == "" || leaf == d || strings.HasPrefix(leaf, d+".") || strings.HasPrefix(leaf, d+"[]") {
			return true
		}
	}
	return false
}

// normalizePath maps "errors[]" to "errors" and the root array "[]" to "".
func normalizePath(path string) string {
	return strings.TrimSuffix(path, "[]")
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "Null"
	case string:
		return "String"
	case bool:
		return "Boolean"
	case json.Number:
		return "Number"
	default:
		return "Varies"
	}
}
