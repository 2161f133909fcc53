// Package types implements Ultraviolet's primitive type system: the five
// scalar kinds, Union types, and the assignability relation between them.
// The AST generator uses FromTagName to recognize value tags; it does not
// call IsAssignableFrom.
//
// Assignability is asymmetric, unlike a naive "compatibility" check that is
// existential on both sides. A value is assignable to a declared type iff
// every possible runtime value of the source type is valid for the target:
// a Union source needs universal quantification (every member must satisfy
// the target) while a Union target only needs one member to match (see
// IsAssignableFrom).
package types

import "strings"

// Kind identifies which primitive (or Union) a Type is.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Boolean
	Null
	UnionKind
)

// Type is a Ultraviolet type: one of the five scalar kinds, or a Union of
// member types.
type Type struct {
	Kind    Kind
	Members []Type // populated only when Kind == UnionKind
}

// NewUnion builds a Union type over members, flattening any nested unions so
// Members never itself contains a UnionKind entry.
func NewUnion(members ...Type) Type {
	flat := make([]Type, 0, len(members))
	for _, m := range members {
		if m.Kind == UnionKind {
			flat = append(flat, m.Members...)
		} else {
			flat = append(flat, m)
		}
	}
	return Type{Kind: UnionKind, Members: flat}
}

var (
	TypeInt     = Type{Kind: Int}
	TypeFloat   = Type{Kind: Float}
	TypeString  = Type{Kind: String}
	TypeBoolean = Type{Kind: Boolean}
	TypeNull    = Type{Kind: Null}
)

// String renders a Type for diagnostics, e.g. "Int" or "Union(Int | String)".
func (t Type) String() string {
	switch t.Kind {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case UnionKind:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return "Union(" + strings.Join(parts, " | ") + ")"
	default:
		return "<unknown type>"
	}
}

// Equal reports whether t and other denote the same type, treating Union
// member order as insignificant.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != UnionKind {
		return true
	}
	if len(t.Members) != len(other.Members) {
		return false
	}
	matched := make([]bool, len(other.Members))
	for _, m := range t.Members {
		found := false
		for i, om := range other.Members {
			if !matched[i] && m.Equal(om) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsAssignableFrom reports whether a value of type source may be assigned to
// a variable declared with type t — i.e. source is a subtype of t.
//
//   - Non-union to non-union: the kinds must match exactly.
//   - Union source (t.IsAssignableFrom(Union(a,b))): true only if t accepts
//     EVERY member — a value that could be either `a` or `b` is only safe to
//     assign if both are safe.
//   - Union target (Union(a,b).IsAssignableFrom(source)): true if ANY member
//     accepts source — the declared type just needs one branch that fits.
func (t Type) IsAssignableFrom(source Type) bool {
	if source.Kind == UnionKind {
		for _, m := range source.Members {
			if !t.IsAssignableFrom(m) {
				return false
			}
		}
		return true
	}
	if t.Kind == UnionKind {
		for _, m := range t.Members {
			if m.IsAssignableFrom(source) {
				return true
			}
		}
		return false
	}
	return t.Kind == source.Kind
}

// FromTagName maps a Ultraviolet value-tag name (`int`, `float`, `str`,
// `bool`, `null`) to its primitive Type. Union types have no tag of their
// own, so they are not reachable through this lookup.
func FromTagName(name string) (Type, bool) {
	switch name {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "str":
		return TypeString, true
	case "bool":
		return TypeBoolean, true
	case "null":
		return TypeNull, true
	default:
		return Type{}, false
	}
}
