package parser

import "github.com/Andcool-Systems/Ultraviolet/internal/lexer"

// ParseBody is one child of a ParseNode's body: either a run of literal text
// or a nested tag.
type ParseBody interface {
	Span() lexer.Span
	isParseBody()
}

// ParseLiteral is a literal text run inside a tag's body.
type ParseLiteral struct {
	Value string
	Pos   lexer.Span
}

func (l ParseLiteral) Span() lexer.Span { return l.Pos }
func (ParseLiteral) isParseBody()       {}

// ParseTag wraps a nested tag inside a parent tag's body.
type ParseTag struct {
	Node *ParseNode
}

func (t ParseTag) Span() lexer.Span { return t.Node.Pos }
func (ParseTag) isParseBody()       {}

// ParseNode is a single node of the parse tree: a tag name, its extra
// parameter (if any), whether it self-closes, and its children. ExtraParam
// preserves a single Literal token that followed the tag name before
// ">"/"/>"; the AST generator decides what, if anything, it means.
type ParseNode struct {
	Name        string
	ExtraParam  string
	SelfClosing bool
	Children    []ParseBody
	Pos         lexer.Span
}

func (n *ParseNode) Span() lexer.Span { return n.Pos }
