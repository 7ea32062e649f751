package mapsrpc

import "github.com/Alfex4936/mapsrpc/internal/parse"

var (
	// ErrFormat signals a body without the anti-hijacking prefix.
	ErrFormat = parse.ErrFormat
	// ErrDecode signals a body whose payload is not valid JSON.
	ErrDecode = parse.ErrDecode
)
