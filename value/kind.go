// Package value implements the tagged-value memory model member operations
// run over: Cell, the refcounted Array and String containers, and the
// Object/property table. It plays the role the teacher's types package
// plays for MOO values, but as a fixed-layout struct rather than an
// interface, since pointer identity and in-place mutation are load-bearing
// here in a way they are not for MOO's copy-on-assign values.
package value

// Kind is the tag of a Cell, mirroring HHVM's DataType enum closely enough
// that the dispatch tables in package member read the same way the original
// member-operations.h switches do.
type Kind uint8

const (
	KindUninit Kind = iota
	KindNull
	KindBool
	KindInt
	KindDouble
	KindStaticString
	KindString
	KindArray
	KindObject
	KindResource
	KindRef
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindUninit:
		return "uninit"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindStaticString:
		return "static_string"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindResource:
		return "resource"
	case KindRef:
		return "ref"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// IsString reports whether k is one of the two string variants. Static and
// heap strings share all member-op semantics; only refcounting differs.
func (k Kind) IsString() bool {
	return k == KindString || k == KindStaticString
}

// IsNullish reports whether k is treated as "empty" by the scalar-fallback
// table in spec.md §4.5 (Uninit and Null collapse to one case there).
func (k Kind) IsNullish() bool {
	return k == KindUninit || k == KindNull
}
