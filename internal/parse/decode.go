// Package parse turns a raw RPC response body into a value tree.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/Alfex4936/mapsrpc/internal/value"
)

var (
	// ErrFormat signals a body that does not start with the anti-hijacking prefix.
	ErrFormat = errors.New("mapsrpc: response is missing the )]}' prefix")
	// ErrDecode signals a body whose payload is not valid JSON.
	ErrDecode = errors.New("mapsrpc: response payload is not valid JSON")
)

// Parse strips the prefix and decodes the remaining JSON document.
// No partial value is returned on failure.
func Parse(raw []byte) (value.Value, error) {
	body, ok := StripPrefix(raw)
	if !ok {
		return value.Value{}, ErrFormat
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	// one document only; trailing garbage means we misread the envelope
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	return value.Of(doc), nil
}

// ParseString is Parse for string input.
func ParseString(raw string) (value.Value, error) { return Parse([]byte(raw)) }
