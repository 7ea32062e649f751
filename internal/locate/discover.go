package locate

import "github.com/Alfex4936/mapsrpc/internal/value"

// Matcher recognises a record root by shape.
type Matcher interface {
	Match(v value.Value) bool
}

// Probe is one offset/validator pair of a Signature.
type Probe struct {
	Path        value.Path
	Check       Check
	AllowAbsent bool // Missing or null also passes
}

// Signature recognises a List longer than MinLen whose probes all pass.
type Signature struct {
	MinLen int
	Probes []Probe
}

func (s Signature) Match(v value.Value) bool {
	if v.Kind() != value.List || v.Len() <= s.MinLen {
		return false
	}
	for _, p := range s.Probes {
		got := value.Get(v, p.Path)
		if p.AllowAbsent && got.Absent() {
			continue
		}
		if !p.Check.Valid(got) {
			return false
		}
	}
	return true
}

// ListSignature recognises a List of records: it matches when any element
// matches Element, wherever it sits. Malformed entries, including the first
// one or a majority, never hide the rest of the batch.
type ListSignature struct {
	Element Signature
}

func (s ListSignature) Match(v value.Value) bool {
	for _, it := range v.Items() {
		if s.Element.Match(it) {
			return true
		}
	}
	return false
}

// Discover scans tree breadth-first down to maxDepth (tree itself is depth 0)
// and returns the first node m matches, or Missing.
func Discover(tree value.Value, m Matcher, maxDepth int) value.Value {
	level := []value.Value{tree}
	for depth := 0; depth <= maxDepth && len(level) > 0; depth++ {
		var next []value.Value
		for _, n := range level {
			if m.Match(n) {
				return n
			}
			switch n.Kind() {
			case value.List:
				next = append(next, n.Items()...)
			case value.Map:
				for _, k := range n.Keys() {
					next = append(next, n.Key(k))
				}
			}
		}
		level = next
	}
	return value.Value{}
}
