package ast

import "github.com/Andcool-Systems/Ultraviolet/internal/types"

// ValueKind identifies which scalar case a UVValue holds.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueBoolean
	ValueNull
)

// UVValue is a typed scalar value produced by the AST generator. Only the
// field matching Kind is meaningful.
type UVValue struct {
	Kind ValueKind

	Int    int64
	Float  float64
	String string
	Bool   bool
}

// Type reports the primitive type of v.
func (v UVValue) Type() types.Type {
	switch v.Kind {
	case ValueInt:
		return types.TypeInt
	case ValueFloat:
		return types.TypeFloat
	case ValueString:
		return types.TypeString
	case ValueBoolean:
		return types.TypeBoolean
	default:
		return types.TypeNull
	}
}
