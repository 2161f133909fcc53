// Package ast defines Ultraviolet's typed AST and the generator that builds
// it from a parser.ParseNode tree by dispatching on tag names.
package ast

import "github.com/Andcool-Systems/Ultraviolet/internal/lexer"

// Node is any AST node, all of which carry the span of the parse-tree node
// they were generated from.
type Node interface {
	Span() lexer.Span
	astNode()
}

// Program is the root of a Ultraviolet program: an optional <head> block
// and a required <main> block, each a flat list of generated nodes.
type Program struct {
	Head []Node
	Main []Node
	Pos  lexer.Span
}

func (p *Program) Span() lexer.Span { return p.Pos }
func (*Program) astNode()           {}

// VariableDefinition is a `<let>` binding: a name, an initializing value
// node, and whether it was marked `<const/>`.
type VariableDefinition struct {
	Name     string
	NameSpan lexer.Span

	Value     Node
	ValueSpan lexer.Span

	IsConst bool
	Pos     lexer.Span
}

func (v *VariableDefinition) Span() lexer.Span { return v.Pos }
func (*VariableDefinition) astNode()           {}

// Value wraps a parsed scalar literal (int/float/str/bool/null).
type Value struct {
	Val UVValue
	Pos lexer.Span
}

func (v *Value) Span() lexer.Span { return v.Pos }
func (*Value) astNode()           {}
