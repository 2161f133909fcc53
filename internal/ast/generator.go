package ast

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
	"github.com/Andcool-Systems/Ultraviolet/internal/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// knownTags is the complete tag vocabulary the AST generator recognizes,
// used for the fuzzy "did you mean" suggestion on an unrecognized tag.
// Dispatch itself matches tag names directly (see Generate).
var knownTags = []string{
	"program", "head", "main", "let", "name", "value", "const",
	"int", "float", "str", "bool", "null",
}

// GenerateProgram builds a Program from the root parse-tree node, which must
// be a `<program>` tag.
func GenerateProgram(root *parser.ParseNode) (*Program, error) {
	if root.Name != "program" {
		return nil, diag.New(diag.StageAst, diag.CodeAstUnexpectedTag,
			"The program must begin with the <program> tag", toDiagSpan(root.Pos))
	}
	return parseProgramBlock(root)
}

// Generate dispatches on node's tag name, producing the AST node it
// describes. A tag whose name maps to a primitive type is a value tag and
// goes through parseValue.
func Generate(node *parser.ParseNode) (Node, error) {
	if node.Name == "let" {
		return parseVarDefinition(node)
	}
	if _, ok := types.FromTagName(node.Name); ok {
		return parseValue(node)
	}
	return nil, unexpectedTagError(node)
}

func parseProgramBlock(node *parser.ParseNode) (*Program, error) {
	var head []Node
	if headNode := getChildByName(node, "head"); headNode != nil {
		h, err := parseRootChildren(headNode.Children)
		if err != nil {
			return nil, err
		}
		head = h
	}

	mainNode := getChildByName(node, "main")
	if mainNode == nil {
		return nil, diag.New(diag.StageAst, diag.CodeAstMissingChild,
			"Main block in <program> is required", toDiagSpan(node.Pos))
	}
	main, err := parseRootChildren(mainNode.Children)
	if err != nil {
		return nil, err
	}

	return &Program{Head: head, Main: main, Pos: node.Pos}, nil
}

func parseRootChildren(children []parser.ParseBody) ([]Node, error) {
	nodes := make([]Node, 0, len(children))
	for _, ch := range children {
		switch c := ch.(type) {
		case parser.ParseLiteral:
			return nil, diag.New(diag.StageAst, diag.CodeAstInvalidValue,
				"Unexpected unwrapped literal in root tag", toDiagSpan(c.Pos))
		case parser.ParseTag:
			n, err := Generate(c.Node)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func parseVarDefinition(node *parser.ParseNode) (Node, error) {
	nameNode := getChildByName(node, "name")
	if nameNode == nil {
		return nil, diag.New(diag.StageAst, diag.CodeAstMissingChild,
			"Variable definition should have an inner <name> tag", toDiagSpan(node.Pos))
	}
	if len(nameNode.Children) != 1 || !allLiterals(nameNode.Children) {
		return nil, diag.New(diag.StageAst, diag.CodeAstInvalidIdentifier,
			"Invalid variable name", toDiagSpan(nameNode.Pos))
	}
	nameLit := nameNode.Children[0].(parser.ParseLiteral)

	if !identifierRe.MatchString(nameLit.Value) {
		return nil, diag.New(diag.StageAst, diag.CodeAstInvalidIdentifier,
			fmt.Sprintf("`%s` is not a valid name for variable", nameLit.Value), toDiagSpan(nameLit.Pos))
	}

	valueNode := getChildByName(node, "value")
	if valueNode == nil {
		return nil, diag.New(diag.StageAst, diag.CodeAstMissingChild,
			"Variable must be initialized", toDiagSpan(node.Pos))
	}
	if len(valueNode.Children) != 1 || !allTags(valueNode.Children) {
		return nil, diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			"Variable value must have only one inner tag.",
			toDiagSpan(valueNode.Pos)).
			WithHelp("if you want to place multiple tags, wrap them in a <b> tag")
	}
	innerTag := valueNode.Children[0].(parser.ParseTag)

	value, err := Generate(innerTag.Node)
	if err != nil {
		return nil, err
	}

	isConst := false
	if constNode := getChildByName(node, "const"); constNode != nil {
		isConst = constNode.SelfClosing
	}

	return &VariableDefinition{
		Name:      nameLit.Value,
		NameSpan:  nameNode.Pos,
		Value:     value,
		ValueSpan: valueNode.Pos,
		IsConst:   isConst,
		Pos:       node.Pos,
	}, nil
}

// unexpectedTagError builds the "Unexpected <name> tag" diagnostic, using
// fuzzy matching to suggest the closest known tag.
func unexpectedTagError(node *parser.ParseNode) error {
	d := diag.New(diag.StageAst, diag.CodeAstUnexpectedTag,
		fmt.Sprintf("Unexpected <%s> tag", node.Name), toDiagSpan(node.Pos))

	if ranks := fuzzy.RankFindFold(node.Name, knownTags); len(ranks) > 0 {
		sort.Sort(ranks)
		d = d.WithNote(fmt.Sprintf("did you mean `%s`?", ranks[0].Target))
	}
	return d
}

func getChildByName(node *parser.ParseNode, name string) *parser.ParseNode {
	for _, ch := range node.Children {
		if tag, ok := ch.(parser.ParseTag); ok && tag.Node.Name == name {
			return tag.Node
		}
	}
	return nil
}

func getInnerLiteral(node *parser.ParseNode) (parser.ParseLiteral, bool) {
	for _, ch := range node.Children {
		if lit, ok := ch.(parser.ParseLiteral); ok {
			return lit, true
		}
	}
	return parser.ParseLiteral{}, false
}

func allLiterals(children []parser.ParseBody) bool {
	for _, ch := range children {
		if _, ok := ch.(parser.ParseLiteral); !ok {
			return false
		}
	}
	return true
}

func allTags(children []parser.ParseBody) bool {
	for _, ch := range children {
		if _, ok := ch.(parser.ParseTag); !ok {
			return false
		}
	}
	return true
}

func toDiagSpan(s lexer.Span) diag.Span {
	return diag.Span{Start: s.Start, End: s.End}
}
