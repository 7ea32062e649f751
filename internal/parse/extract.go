package parse

import "bytes"

// Prefix is the anti-hijacking guard the service prepends to every RPC body.
const Prefix = ")]}'"

var prefix = []byte(Prefix)

// StripPrefix removes the guard and reports whether it was there.
// A UTF-8 byte order mark before the guard is tolerated.
func StripPrefix(b []byte) ([]byte, bool) {
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(b, prefix) {
		return nil, false
	}
	return b[len(prefix):], true
}
