package ast

import (
	"fmt"
	"strconv"

	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
)

// parseValue builds a scalar Value node. The caller guarantees node.Name is
// one of the recognized value tags.
func parseValue(node *parser.ParseNode) (Node, error) {
	switch node.Name {
	case "int":
		v, err := parseIntValue(node)
		if err != nil {
			return nil, err
		}
		return &Value{Val: UVValue{Kind: ValueInt, Int: v}, Pos: node.Pos}, nil

	case "float":
		v, err := parseFloatValue(node)
		if err != nil {
			return nil, err
		}
		return &Value{Val: UVValue{Kind: ValueFloat, Float: v}, Pos: node.Pos}, nil

	case "str":
		return &Value{Val: UVValue{Kind: ValueString, String: parseStrValue(node)}, Pos: node.Pos}, nil

	case "bool":
		v, err := parseBoolValue(node)
		if err != nil {
			return nil, err
		}
		return &Value{Val: UVValue{Kind: ValueBoolean, Bool: v}, Pos: node.Pos}, nil

	case "null":
		if err := validateNull(node); err != nil {
			return nil, err
		}
		return &Value{Val: UVValue{Kind: ValueNull}, Pos: node.Pos}, nil
	}

	panic(fmt.Sprintf("ast: parseValue called with non-value tag <%s>", node.Name))
}

// validateInner requires node to have exactly one literal child.
func validateInner(node *parser.ParseNode) error {
	if len(node.Children) != 1 || !allLiterals(node.Children) {
		return diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			fmt.Sprintf("Invalid value for `%s` type", node.Name), toDiagSpan(node.Pos))
	}
	return nil
}

func parseIntValue(node *parser.ParseNode) (int64, error) {
	if err := validateInner(node); err != nil {
		return 0, err
	}
	lit, _ := getInnerLiteral(node)

	n, err := strconv.ParseInt(lit.Value, 10, 64)
	if err != nil {
		return 0, diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			fmt.Sprintf("Cannot parse `%s` to an integer", lit.Value), toDiagSpan(lit.Pos))
	}
	return n, nil
}

func parseFloatValue(node *parser.ParseNode) (float64, error) {
	if err := validateInner(node); err != nil {
		return 0, err
	}
	lit, _ := getInnerLiteral(node)

	f, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		return 0, diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			fmt.Sprintf("Cannot parse `%s` to an float", lit.Value), toDiagSpan(lit.Pos))
	}
	return f, nil
}

// parseStrValue deliberately skips validateInner: an empty `<str></str>` is
// a valid empty string, and it doesn't matter whether the body is a plain
// Literal or a RawString token underneath.
func parseStrValue(node *parser.ParseNode) string {
	lit, ok := getInnerLiteral(node)
	if !ok {
		return ""
	}
	return lit.Value
}

func parseBoolValue(node *parser.ParseNode) (bool, error) {
	if err := validateInner(node); err != nil {
		return false, err
	}
	lit, _ := getInnerLiteral(node)

	switch lit.Value {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			fmt.Sprintf("Cannot parse `%s` to a boolean", lit.Value), toDiagSpan(lit.Pos))
	}
}

func validateNull(node *parser.ParseNode) error {
	if !node.SelfClosing {
		return diag.New(diag.StageAst, diag.CodeAstInvalidValue,
			"`null` tag must be self-closing", toDiagSpan(node.Pos))
	}
	return nil
}
