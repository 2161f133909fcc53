// Package astcache serializes a generated ast.Program to CBOR and back,
// giving a downstream compiler stage (semantic analysis, lowering) a stable
// binary handoff format instead of forcing it to re-lex and re-parse source
// text.
//
// The encoding builds a plain, tagged-union "wire" representation of the
// tree (ast.Node is an interface, which cbor cannot marshal directly), then
// encodes that with cbor.CanonicalEncOptions() so repeated encodes of the
// same AST produce byte-identical output.
package astcache

import (
	"fmt"

	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/fxamacker/cbor/v2"
)

// formatVersion is bumped whenever the wire shape below changes
// incompatibly; Decode rejects a mismatched version rather than guessing.
const formatVersion = 1

type wireSpan struct {
	Start int
	End   int
}

func toWireSpan(s lexer.Span) wireSpan { return wireSpan{Start: s.Start, End: s.End} }
func (w wireSpan) toSpan() lexer.Span  { return lexer.NewSpan(w.Start, w.End) }

// nodeKind tags which ast.Node variant a wireNode encodes.
type nodeKind uint8

const (
	kindVariableDefinition nodeKind = iota
	kindValue
)

// wireNode is a flattened, tagged-union stand-in for ast.Node: only the
// fields relevant to Kind are populated. Future node variants get a wire
// encoding together with a formatVersion bump.
type wireNode struct {
	Kind nodeKind

	// kindVariableDefinition
	Name      string
	NameSpan  wireSpan
	Value     *wireNode
	ValueSpan wireSpan
	IsConst   bool

	// kindValue
	ValueKind ast.ValueKind
	Int       int64
	Float     float64
	String    string
	Bool      bool

	Pos wireSpan
}

type wireProgram struct {
	Version int
	Head    []wireNode
	Main    []wireNode
	Pos     wireSpan
}

func toWireNode(n ast.Node) (wireNode, error) {
	switch v := n.(type) {
	case *ast.VariableDefinition:
		valueWire, err := toWireNode(v.Value)
		if err != nil {
			return wireNode{}, err
		}
		return wireNode{
			Kind:      kindVariableDefinition,
			Name:      v.Name,
			NameSpan:  toWireSpan(v.NameSpan),
			Value:     &valueWire,
			ValueSpan: toWireSpan(v.ValueSpan),
			IsConst:   v.IsConst,
			Pos:       toWireSpan(v.Pos),
		}, nil
	case *ast.Value:
		return wireNode{
			Kind:      kindValue,
			ValueKind: v.Val.Kind,
			Int:       v.Val.Int,
			Float:     v.Val.Float,
			String:    v.Val.String,
			Bool:      v.Val.Bool,
			Pos:       toWireSpan(v.Pos),
		}, nil
	default:
		return wireNode{}, fmt.Errorf("astcache: no wire encoding for %T", n)
	}
}

func (w wireNode) toNode() (ast.Node, error) {
	switch w.Kind {
	case kindVariableDefinition:
		if w.Value == nil {
			return nil, fmt.Errorf("astcache: variable definition %q has no value", w.Name)
		}
		value, err := w.Value.toNode()
		if err != nil {
			return nil, err
		}
		return &ast.VariableDefinition{
			Name:      w.Name,
			NameSpan:  w.NameSpan.toSpan(),
			Value:     value,
			ValueSpan: w.ValueSpan.toSpan(),
			IsConst:   w.IsConst,
			Pos:       w.Pos.toSpan(),
		}, nil
	case kindValue:
		return &ast.Value{
			Val: ast.UVValue{
				Kind:   w.ValueKind,
				Int:    w.Int,
				Float:  w.Float,
				String: w.String,
				Bool:   w.Bool,
			},
			Pos: w.Pos.toSpan(),
		}, nil
	default:
		return nil, fmt.Errorf("astcache: unknown wire node kind %d", w.Kind)
	}
}

func toWireNodes(nodes []ast.Node) ([]wireNode, error) {
	out := make([]wireNode, len(nodes))
	for i, n := range nodes {
		w, err := toWireNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func toNodes(wire []wireNode) ([]ast.Node, error) {
	out := make([]ast.Node, len(wire))
	for i, w := range wire {
		n, err := w.toNode()
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Encode serializes prog to deterministic CBOR bytes: encoding the same AST
// twice always produces the same output. The CLI's `uvc ast --cache` path
// stores this output in a file named by the source's fingerprint.
func Encode(prog *ast.Program) ([]byte, error) {
	head, err := toWireNodes(prog.Head)
	if err != nil {
		return nil, fmt.Errorf("astcache: encoding head: %w", err)
	}
	main, err := toWireNodes(prog.Main)
	if err != nil {
		return nil, fmt.Errorf("astcache: encoding main: %w", err)
	}

	wire := wireProgram{
		Version: formatVersion,
		Head:    head,
		Main:    main,
		Pos:     toWireSpan(prog.Pos),
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("astcache: building CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("astcache: CBOR encoding: %w", err)
	}
	return data, nil
}

// Decode reverses Encode, rebuilding an *ast.Program from CBOR bytes.
func Decode(data []byte) (*ast.Program, error) {
	var wire wireProgram
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("astcache: CBOR decoding: %w", err)
	}
	if wire.Version != formatVersion {
		return nil, fmt.Errorf("astcache: unsupported cache format version %d (want %d)", wire.Version, formatVersion)
	}

	head, err := toNodes(wire.Head)
	if err != nil {
		return nil, fmt.Errorf("astcache: decoding head: %w", err)
	}
	main, err := toNodes(wire.Main)
	if err != nil {
		return nil, fmt.Errorf("astcache: decoding main: %w", err)
	}

	return &ast.Program{Head: head, Main: main, Pos: wire.Pos.toSpan()}, nil
}
