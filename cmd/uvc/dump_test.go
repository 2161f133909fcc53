package main

import (
	"strings"
	"testing"

	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
	"github.com/Andcool-Systems/Ultraviolet/internal/source"
)

func mustGenerate(t *testing.T, src string) *ast.Program {
	t.Helper()
	tree, err := parser.New(lexer.Lex(src)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	prog, err := ast.GenerateProgram(tree)
	if err != nil {
		t.Fatalf("GenerateProgram(%q) failed: %v", src, err)
	}
	return prog
}

func TestDumpProgram_IncludesVariableNameAndValue(t *testing.T) {
	prog := mustGenerate(t, `<program><main><let><name>x</name><value><int>42</int></value></let></main></program>`)

	out := dumpProgram(prog)
	if !strings.Contains(out, "let x") {
		t.Errorf("expected dump to mention variable name, got:\n%s", out)
	}
	if !strings.Contains(out, "int(42)") {
		t.Errorf("expected dump to mention parsed int value, got:\n%s", out)
	}
}

func TestDumpProgram_MarksConstVariables(t *testing.T) {
	prog := mustGenerate(t, `<program><main><let><name>pi</name><value><float>3.14</float></value><const/></let></main></program>`)

	out := dumpProgram(prog)
	if !strings.Contains(out, "let pi const") {
		t.Errorf("expected dump to mark pi as const, got:\n%s", out)
	}
}

func TestDumpProgram_OmitsHeadSectionWhenAbsent(t *testing.T) {
	prog := mustGenerate(t, `<program><main></main></program>`)

	out := dumpProgram(prog)
	if strings.Contains(out, "head:") {
		t.Errorf("expected no head section when <head> is absent, got:\n%s", out)
	}
}

func TestFormatToken_IncludesLineColumnAndText(t *testing.T) {
	src := source.FromString("main.uv", "<main>x</main>")
	toks := lexer.Lex(src.Text())

	out := formatToken(src, toks[1]) // Literal "main"
	if !strings.Contains(out, `"main"`) {
		t.Errorf("expected formatted token to include its text, got %q", out)
	}
	if !strings.Contains(out, "1:2") {
		t.Errorf("expected formatted token to include its 1-based position, got %q", out)
	}
}
