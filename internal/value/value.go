// Package value wraps decoded JSON nodes in a tagged variant whose accessors
// never fail: indexing past the end, into a scalar, or with a missing key
// yields Missing.
package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	Missing Kind = iota
	Null
	Bool
	Number
	Text
	List
	Map
)

var kindNames = [...]string{"missing", "null", "bool", "number", "text", "list", "map"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable JSON node. The zero Value is Missing.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    map[string]Value
}

// Of converts the output of a generic JSON decode (nil, bool, float64,
// json.Number, string, []any, map[string]any) into a Value.
// Anything else becomes Missing.
func Of(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Value{kind: Null}
	case bool:
		return Value{kind: Bool, b: x}
	case float64:
		return Value{kind: Number, n: x}
	case int:
		return Value{kind: Number, n: float64(x)}
	case int64:
		return Value{kind: Number, n: float64(x)}
	case interface{ Float64() (float64, error) }:
		f, err := x.Float64()
		if err != nil {
			return Value{}
		}
		return Value{kind: Number, n: f}
	case string:
		return Value{kind: Text, s: x}
	case []any:
		list := make([]Value, len(x))
		for i, e := range x {
			list[i] = Of(e)
		}
		return Value{kind: List, list: list}
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			m[k] = Of(e)
		}
		return Value{kind: Map, m: m}
	}
	return Value{}
}

// NewList builds a List from already wrapped elements.
func NewList(items ...Value) Value {
	return Value{kind: List, list: items}
}

func NewText(s string) Value    { return Value{kind: Text, s: s} }
func NewNumber(f float64) Value { return Value{kind: Number, n: f} }
func NewBool(b bool) Value      { return Value{kind: Bool, b: b} }
func NewNull() Value            { return Value{kind: Null} }

func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the Missing variant.
func (v Value) IsMissing() bool { return v.kind == Missing }

// Absent reports whether v carries no data (Missing or JSON null).
func (v Value) Absent() bool { return v.kind == Missing || v.kind == Null }

// Len is the element count of a List or Map, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.list)
	case Map:
		return len(v.m)
	}
	return 0
}

// Index returns the i-th element of a List. Negative or overlong indices and
// non-List receivers yield Missing.
func (v Value) Index(i int) Value {
	if v.kind != List || i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// Key returns the member k of a Map, Missing otherwise.
func (v Value) Key(k string) Value {
	if v.kind != Map {
		return Value{}
	}
	return v.m[k]
}

// Items returns the elements of a List. The slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != List {
		return nil
	}
	return v.list
}

// Keys returns the member names of a Map in sorted order.
func (v Value) Keys() []string {
	if v.kind != Map {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v Value) Float() (float64, bool) { return v.n, v.kind == Number }
func (v Value) Str() (string, bool)    { return v.s, v.kind == Text }
func (v Value) Boolean() (bool, bool)  { return v.b, v.kind == Bool }

// String renders scalars for diagnostics; containers print their kind and size.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case Text:
		return strconv.Quote(v.s)
	case List, Map:
		return v.kind.String() + "[" + strconv.Itoa(v.Len()) + "]"
	}
	return v.kind.String()
}

// Path is a sequence of steps from a node: int steps index Lists, string
// steps select Map members.
type Path []any

// P is shorthand for building a Path.
func P(steps ...any) Path { return Path(steps) }

// ParsePath reads "9/2" or "items/0/name": numeric segments become indices.
// The empty string is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, &PathError{Path: s}
		}
		if i, err := strconv.Atoi(part); err == nil {
			p = append(p, i)
			continue
		}
		p = append(p, part)
	}
	return p, nil
}

// PathError reports a malformed path literal.
type PathError struct{ Path string }

func (e *PathError) Error() string { return "value: malformed path " + strconv.Quote(e.Path) }

func (p Path) String() string {
	var b strings.Builder
	for i, st := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		switch x := st.(type) {
		case int:
			b.WriteString(strconv.Itoa(x))
		case string:
			b.WriteString(x)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Get walks path through node. Any step that cannot be taken yields Missing.
func Get(node Value, path Path) Value {
	cur := node
	for _, st := range path {
		switch x := st.(type) {
		case int:
			cur = cur.Index(x)
		case string:
			cur = cur.Key(x)
		default:
			return Value{}
		}
		if cur.kind == Missing {
			return cur
		}
	}
	return cur
}
