package astcache

import (
	"testing"

	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
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

func TestEncodeDecode_RoundTrip(t *testing.T) {
	prog := mustGenerate(t, `<program><head><let><name>pi</name><value><float>3.14</float></value><const/></let></head>`+
		`<main><let><name>x</name><value><int>42</int></value></let>`+
		`<let><name>s</name><value><str>hi</str></value></let>`+
		`<let><name>b</name><value><bool>true</bool></value></let>`+
		`<let><name>n</name><value><null/></value></let></main></program>`)

	data, err := Encode(prog)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if diff := cmp.Diff(prog, got); diff != "" {
		t.Errorf("round trip changed the AST (-want +got):\n%s", diff)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	prog := mustGenerate(t, `<program><main><let><name>x</name><value><int>1</int></value></let></main></program>`)

	a, err := Encode(prog)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, err := Encode(prog)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Encode produced different bytes for identical input")
	}
}

func TestDecode_RejectsWrongVersion(t *testing.T) {
	data, err := cbor.Marshal(struct{ Version int }{Version: formatVersion + 1})
	if err != nil {
		t.Fatalf("cbor.Marshal failed: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected an error decoding a payload with an unsupported version")
	}
}
