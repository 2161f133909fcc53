package main

import (
	"fmt"
	"strings"

	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
)

// dumpProgram renders an indented debug dump of prog, what `uvc ast` prints
// on success.
func dumpProgram(prog *ast.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Program %s\n", spanString(prog.Span()))
	if len(prog.Head) > 0 {
		fmt.Fprintf(&b, "  head:\n")
		dumpNodes(&b, prog.Head, "    ")
	}
	fmt.Fprintf(&b, "  main:\n")
	dumpNodes(&b, prog.Main, "    ")
	return b.String()
}

func dumpNodes(b *strings.Builder, nodes []ast.Node, indent string) {
	for _, n := range nodes {
		dumpNode(b, n, indent)
	}
}

func dumpNode(b *strings.Builder, n ast.Node, indent string) {
	switch v := n.(type) {
	case *ast.VariableDefinition:
		constTag := ""
		if v.IsConst {
			constTag = " const"
		}
		fmt.Fprintf(b, "%slet %s%s %s\n", indent, v.Name, constTag, spanString(v.Span()))
		dumpNode(b, v.Value, indent+"  ")
	case *ast.Value:
		fmt.Fprintf(b, "%svalue %s %s\n", indent, dumpValue(v.Val), spanString(v.Span()))
	default:
		fmt.Fprintf(b, "%s<unknown node %T> %s\n", indent, n, spanString(n.Span()))
	}
}

func dumpValue(v ast.UVValue) string {
	switch v.Kind {
	case ast.ValueInt:
		return fmt.Sprintf("int(%d)", v.Int)
	case ast.ValueFloat:
		return fmt.Sprintf("float(%g)", v.Float)
	case ast.ValueString:
		return fmt.Sprintf("str(%q)", v.String)
	case ast.ValueBoolean:
		return fmt.Sprintf("bool(%t)", v.Bool)
	case ast.ValueNull:
		return "null"
	default:
		return "<unknown value>"
	}
}

func spanString(s lexer.Span) string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
