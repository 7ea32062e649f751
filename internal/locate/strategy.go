package locate

import (
	"strconv"
	"strings"

	"github.com/Alfex4936/mapsrpc/internal/value"
)

// SiblingScan looks for the field at the same relative path inside nested
// Lists of root: Depth 0 scans root's children, Depth 1 also its
// grandchildren. Only Lists longer than or equal to MinLen are candidates.
type SiblingScan struct {
	Depth  int
	MinLen int
}

func (s SiblingScan) Search(root value.Value, spec FieldSpec) value.Value {
	level := root.Items()
	for d := 0; d <= s.Depth && len(level) > 0; d++ {
		var next []value.Value
		for _, cand := range level {
			if cand.Kind() != value.List {
				continue
			}
			if cand.Len() >= s.MinLen {
				if v := value.Get(cand, spec.Path); spec.Check.Valid(v) {
					return v
				}
			}
			next = append(next, cand.Items()...)
		}
		level = next
	}
	return value.Value{}
}

func (s SiblingScan) String() string {
	return "sibling-scan(depth=" + strconv.Itoa(s.Depth) + ",min=" + strconv.Itoa(s.MinLen) + ")"
}

// OffsetWindow shifts the first step of the primary path across
// [From, To] and keeps the rest of the path. It suits fields whose value
// is distinctive enough (ids, URLs) that a neighbouring hit is trustworthy.
type OffsetWindow struct {
	From, To int
}

func (w OffsetWindow) Search(root value.Value, spec FieldSpec) value.Value {
	if len(spec.Path) == 0 {
		return value.Value{}
	}
	first, ok := spec.Path[0].(int)
	if !ok {
		return value.Value{}
	}
	rest := spec.Path[1:]
	for i := max(w.From, 0); i <= w.To && i < root.Len(); i++ {
		if i == first {
			continue
		}
		if v := value.Get(root.Index(i), rest); spec.Check.Valid(v) {
			return v
		}
	}
	return value.Value{}
}

func (w OffsetWindow) String() string {
	return "offset-window(" + strconv.Itoa(w.From) + ".." + strconv.Itoa(w.To) + ")"
}

// AltPaths tries other declared paths from the same root, in order.
type AltPaths []value.Path

func (a AltPaths) Search(root value.Value, spec FieldSpec) value.Value {
	for _, p := range a {
		if v := value.Get(root, p); spec.Check.Valid(v) {
			return v
		}
	}
	return value.Value{}
}

func (a AltPaths) String() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = p.String()
	}
	return "alt-paths(" + strings.Join(parts, ",") + ")"
}
