// Package parser turns a lexer.Token stream into a parse tree (ParseNode).
// UV has no operator precedence to resolve — every tag either opens, closes,
// self-closes, or carries a literal/nested tag in its body, so the whole
// grammar fits in one small state table recursing on nested "<".
//
// The frontend is fail-fast: Parse returns a single *diag.Diagnostic on the
// first error, never an accumulated slice.
package parser

import (
	"fmt"

	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	maxDepth int
}

const defaultMaxDepth = 512

// WithMaxDepth overrides the nesting-depth limit that converts runaway tag
// recursion into a diagnostic instead of a stack overflow.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// parseState is the parser's state-machine position within the current tag.
type parseState int

const (
	stateUnknown parseState = iota
	stateTagName
	stateExtraParam
	stateClosingAngleOpeningTag
	stateTagBody
	stateClosingTagName
	stateClosingAngleClosingTag
)

// Parser walks a fixed token slice, producing a ParseNode tree.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	maxDepth int
}

// New creates a Parser over the given token slice.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	cfg := options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{tokens: tokens, maxDepth: cfg.maxDepth}
}

// Parse runs the state machine to completion and returns the root
// ParseNode, or the first diagnostic encountered.
func (p *Parser) Parse() (*ParseNode, error) {
	return p.parseTag(0)
}

func (p *Parser) next() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *Parser) stepBack() {
	p.pos--
}

// parseTag parses one tag (and, recursively, any nested tags in its body)
// starting at the parser's current position. depth counts tag nesting so
// pathological input can't blow the Go call stack.
func (p *Parser) parseTag(depth int) (*ParseNode, error) {
	if depth > p.maxDepth {
		return nil, diag.New(diag.StageParser, diag.CodeParserMaxDepth,
			fmt.Sprintf("Tag nesting exceeds the maximum depth of %d", p.maxDepth),
			p.currentSpan())
	}

	state := stateUnknown
	node := &ParseNode{}
	var closingTagName string

	for {
		tok, ok := p.next()
		if !ok {
			break
		}

		switch tok.Type {
		case lexer.OpenAngle:
			switch state {
			case stateUnknown:
				state = stateTagName
				node.Pos.Start = tok.Span.Start
			case stateTagBody:
				p.stepBack()
				child, err := p.parseTag(depth + 1)
				if err != nil {
					return nil, err
				}
				node.Children = append(node.Children, ParseTag{Node: child})
			default:
				return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
					"Unexpected `<` token", toDiagSpan(tok.Span))
			}

		case lexer.CloseAngle:
			switch state {
			case stateExtraParam, stateClosingAngleOpeningTag:
				state = stateTagBody
			case stateClosingAngleClosingTag:
				if node.Name != closingTagName {
					return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedTag,
						fmt.Sprintf("Unexpected closing tag `%s`. Expected `%s`", closingTagName, node.Name),
						diag.Span{Start: tok.Span.Start - len([]rune(closingTagName)), End: tok.Span.End - 1})
				}
				node.Pos.End = tok.Span.End
				return node, nil
			default:
				return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
					"Unexpected `>` token", toDiagSpan(tok.Span))
			}

		case lexer.SelfCloseAngle:
			switch state {
			case stateExtraParam, stateClosingAngleOpeningTag:
				node.SelfClosing = true
				node.Pos.End = tok.Span.End
				return node, nil
			default:
				return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
					"Unexpected `/>` token", toDiagSpan(tok.Span))
			}

		case lexer.OpenAngleSlash:
			switch state {
			case stateTagBody:
				state = stateClosingTagName
			default:
				return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
					"Unexpected `</` token", toDiagSpan(tok.Span))
			}

		case lexer.Literal, lexer.RawString:
			switch state {
			case stateTagName:
				node.Name = tok.Text
				state = stateExtraParam
			case stateExtraParam:
				node.ExtraParam = tok.Text
				state = stateClosingAngleOpeningTag
			case stateTagBody:
				node.Children = append(node.Children, ParseLiteral{Value: tok.Text, Pos: tok.Span})
			case stateClosingTagName:
				closingTagName = tok.Text
				state = stateClosingAngleClosingTag
			default:
				return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
					fmt.Sprintf("Unexpected literal `%s`", tok.Text), toDiagSpan(tok.Span))
			}

		case lexer.Unknown:
			return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedToken,
				fmt.Sprintf("Unexpected token: `%s`", tok.Text), toDiagSpan(tok.Span))
		}
	}

	return nil, diag.New(diag.StageParser, diag.CodeParserUnexpectedEOF, "Unexpected EOF", p.currentSpan())
}

// currentSpan returns a 3-character span ending at the last token's end,
// used for EOF and max-depth diagnostics when there's no "next" token to
// anchor on.
func (p *Parser) currentSpan() diag.Span {
	if len(p.tokens) == 0 {
		return diag.Span{}
	}
	last := p.tokens[len(p.tokens)-1]
	return diag.Span{Start: last.Span.End - 3, End: last.Span.End}
}

func toDiagSpan(s lexer.Span) diag.Span {
	return diag.Span{Start: s.Start, End: s.End}
}
