package locate

import "github.com/Alfex4936/mapsrpc/internal/value"

// FieldSpec declares where a field lives and how to recognise it.
// Specs are built once and never mutated.
type FieldSpec struct {
	Name     string
	Path     value.Path
	Check    Check
	Fallback []Strategy // tried in order when Path does not validate
	Required bool
}

// Strategy searches for a field when its primary path fails validation.
// Implementations return Missing when nothing validates.
type Strategy interface {
	Search(root value.Value, spec FieldSpec) value.Value
	String() string
}

// Resolution is the outcome of Resolve: the value and how it was found.
type Resolution struct {
	Value value.Value
	Via   string // "path", the strategy name, or "" when unresolved
}

// Found reports whether a valid value was located.
func (r Resolution) Found() bool { return r.Via != "" }

// Resolve tries spec.Path first and then each fallback strategy in rank
// order. It never panics on malformed input.
func Resolve(root value.Value, spec FieldSpec) Resolution {
	if v := value.Get(root, spec.Path); spec.Check.Valid(v) {
		return Resolution{Value: v, Via: "path"}
	}
	for _, st := range spec.Fallback {
		if v := st.Search(root, spec); !v.IsMissing() {
			return Resolution{Value: v, Via: st.String()}
		}
	}
	return Resolution{}
}
