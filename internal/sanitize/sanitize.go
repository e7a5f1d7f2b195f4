// Package sanitize cleans untrusted gateway payloads before they are stored.
package sanitize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidJSON = errors.New("invalid json")
	ErrNotObject   = errors.New("payload is not a json object")
)

// Options bounds what survives cleaning.
type Options struct {
	MaxDepth     int
	MaxStringLen int
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:     32,
		MaxStringLen: 65536,
	}
}

var reservedKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// Decode parses body as a JSON object and cleans it. Numbers are kept as json.Number.
func Decode(body []byte, opts Options) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	cleaned, _ := Clean(obj, opts).(map[string]any)
	if cleaned == nil {
		cleaned = map[string]any{}
	}
	return cleaned, nil
}

// Clean strips reserved and operator keys, truncates strings and drops
// subtrees nested deeper than opts.MaxDepth.
func Clean(v any, opts Options) any {
	return clean(v, opts, 0)
}

func clean(v any, opts Options, depth int) any {
	switch t := v.(type) {
	case map[string]any:
		if depth >= opts.MaxDepth {
			return nil
		}
		out := make(map[string]any, len(t))
		for k, child := range t {
			if IsReservedKey(k) {
				continue
			}
			cleaned := clean(child, opts, depth+1)
			if cleaned == nil && child != nil {
				continue
			}
			out[k] = cleaned
		}
		return out
	case []any:
		if depth >= opts.MaxDepth {
			return nil
		}
		out := make([]any, 0, len(t))
		for _, child := range t {
			cleaned := clean(child, opts, depth+1)
			if cleaned == nil && child != nil {
				continue
			}
			out = append(out, cleaned)
		}
		return out
	case string:
		return Truncate(t, opts.MaxStringLen)
	default:
		return t
	}
}

// IsReservedKey reports whether a key must never reach storage.
func IsReservedKey(k string) bool {
	if _, ok := reservedKeys[k]; ok {
		return true
	}
	return strings.HasPrefix(k, "$")
}

// Truncate cuts s to at most n runes without splitting a rune.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
