package ast

import (
	"testing"

	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
)

func generate(t *testing.T, src string) *Program {
	t.Helper()
	tree, err := parser.New(lexer.Lex(src)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	prog, err := GenerateProgram(tree)
	if err != nil {
		t.Fatalf("GenerateProgram(%q) failed: %v", src, err)
	}
	return prog
}

func TestGenerateProgram_RequiresProgramTag(t *testing.T) {
	tree, err := parser.New(lexer.Lex("<main></main>")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := GenerateProgram(tree); err == nil {
		t.Fatal("expected an error when the root tag isn't <program>")
	}
}

func TestGenerateProgram_RequiresMainBlock(t *testing.T) {
	tree, err := parser.New(lexer.Lex("<program><head></head></program>")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := GenerateProgram(tree); err == nil {
		t.Fatal("expected an error when <main> is missing")
	}
}

func TestGenerateProgram_LetWithIntValue(t *testing.T) {
	prog := generate(t, `<program><main><let><name>x</name><value><int>42</int></value></let></main></program>`)

	if len(prog.Main) != 1 {
		t.Fatalf("expected 1 node in <main>, got %d", len(prog.Main))
	}
	def, ok := prog.Main[0].(*VariableDefinition)
	if !ok {
		t.Fatalf("expected a *VariableDefinition, got %T", prog.Main[0])
	}
	if def.Name != "x" || def.IsConst {
		t.Errorf("unexpected definition: name=%q isConst=%v", def.Name, def.IsConst)
	}
	val, ok := def.Value.(*Value)
	if !ok {
		t.Fatalf("expected def.Value to be *Value, got %T", def.Value)
	}
	if val.Val.Kind != ValueInt || val.Val.Int != 42 {
		t.Errorf("unexpected value: %+v", val.Val)
	}
}

func TestGenerateProgram_ConstFlagFollowsSelfClosingConstTag(t *testing.T) {
	prog := generate(t, `<program><main><let><name>pi</name><value><float>3.14</float></value><const/></let></main></program>`)

	def := prog.Main[0].(*VariableDefinition)
	if !def.IsConst {
		t.Error("expected IsConst to be true when <const/> is present and self-closing")
	}
}

func TestGenerateVarDefinition_RejectsInvalidIdentifier(t *testing.T) {
	_, err := GenerateProgram(mustParse(t, `<program><main><let><name>1bad</name><value><int>1</int></value></let></main></program>`))
	if err == nil {
		t.Fatal("expected an error for an identifier starting with a digit")
	}
}

func TestGenerateVarDefinition_RejectsMultiTagValue(t *testing.T) {
	_, err := GenerateProgram(mustParse(t, `<program><main><let><name>x</name><value><int>1</int><int>2</int></value></let></main></program>`))
	if err == nil {
		t.Fatal("expected an error when <value> wraps more than one tag")
	}
}

func TestGenerateValue_Bool(t *testing.T) {
	prog := generate(t, `<program><main><let><name>flag</name><value><bool>true</bool></value></let></main></program>`)
	val := prog.Main[0].(*VariableDefinition).Value.(*Value)
	if val.Val.Kind != ValueBoolean || !val.Val.Bool {
		t.Errorf("unexpected value: %+v", val.Val)
	}
}

func TestGenerateValue_NullMustBeSelfClosing(t *testing.T) {
	_, err := Generate(mustTag(t, `<program><main><null>oops</null></main></program>`, "null"))
	if err == nil {
		t.Fatal("expected an error for a non-self-closing <null> tag")
	}
}

func TestGenerateValue_Null(t *testing.T) {
	prog := generate(t, `<program><main><let><name>n</name><value><null/></value></let></main></program>`)
	val := prog.Main[0].(*VariableDefinition).Value.(*Value)
	if val.Val.Kind != ValueNull {
		t.Errorf("unexpected value: %+v", val.Val)
	}
}

func TestGenerateValue_Str(t *testing.T) {
	prog := generate(t, `<program><main><let><name>s</name><value><str>hello</str></value></let></main></program>`)
	val := prog.Main[0].(*VariableDefinition).Value.(*Value)
	if val.Val.Kind != ValueString || val.Val.String != "hello" {
		t.Errorf("unexpected value: %+v", val.Val)
	}
}

func TestGenerateValue_LabeledRawStringKeepsBodyVerbatim(t *testing.T) {
	prog := generate(t, `<program><main><let><name>s</name><value><str-x>a </str> b</str-x></value></let></main></program>`)
	val := prog.Main[0].(*VariableDefinition).Value.(*Value)
	if val.Val.Kind != ValueString || val.Val.String != "a </str> b" {
		t.Errorf("unexpected value: %+v", val.Val)
	}
}

func TestGenerate_UnknownTagIsRejected(t *testing.T) {
	_, err := Generate(mustTag(t, `<program><main><itn>1</itn></main></program>`, "itn"))
	if err == nil {
		t.Fatal("expected an error for an unrecognized tag")
	}
}

func mustParse(t *testing.T, src string) *parser.ParseNode {
	t.Helper()
	tree, err := parser.New(lexer.Lex(src)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return tree
}

// mustTag parses src and returns the first descendant tag named name, for
// tests that want to call Generate on an isolated fragment.
func mustTag(t *testing.T, src, name string) *parser.ParseNode {
	t.Helper()
	tree := mustParse(t, src)
	var find func(n *parser.ParseNode) *parser.ParseNode
	find = func(n *parser.ParseNode) *parser.ParseNode {
		if n.Name == name {
			return n
		}
		for _, ch := range n.Children {
			if tag, ok := ch.(parser.ParseTag); ok {
				if found := find(tag.Node); found != nil {
					return found
				}
			}
		}
		return nil
	}
	found := find(tree)
	if found == nil {
		t.Fatalf("no <%s> tag found in %q", name, src)
	}
	return found
}
