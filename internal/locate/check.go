// Package locate finds typed fields inside positional arrays whose layout
// drifts between response variants.
package locate

import (
	"regexp"
	"strings"

	"github.com/Alfex4936/mapsrpc/internal/value"
)

// Check is a declarative validator: a kind, an optional closed numeric
// range and an optional text pattern. The zero Check accepts anything
// present.
type Check struct {
	Kind     value.Kind
	Ranged   bool
	Min, Max float64
	Pattern  *regexp.Regexp
	NonEmpty bool
}

// IDPattern matches the service's feature ids, e.g. 0x30e29ecfc2f455e1:0xc4ad0280d8906604.
var IDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+:0x[0-9a-fA-F]+$`)

func NumberIn(min, max float64) Check {
	return Check{Kind: value.Number, Ranged: true, Min: min, Max: max}
}

func TextMatching(re *regexp.Regexp) Check {
	return Check{Kind: value.Text, Pattern: re, NonEmpty: true}
}

func NonEmptyText() Check { return Check{Kind: value.Text, NonEmpty: true} }

// Valid reports whether v satisfies every constraint of c.
func (c Check) Valid(v value.Value) bool {
	if v.Absent() {
		return false
	}
	if c.Kind != value.Missing && v.Kind() != c.Kind {
		return false
	}
	if c.Ranged {
		f, ok := v.Float()
		if !ok || f < c.Min || f > c.Max {
			return false
		}
	}
	if c.NonEmpty || c.Pattern != nil {
		s, ok := v.Str()
		if !ok {
			return false
		}
		if c.NonEmpty && strings.TrimSpace(s) == "" {
			return false
		}
		if c.Pattern != nil && !c.Pattern.MatchString(s) {
			return false
		}
	}
	return true
}
