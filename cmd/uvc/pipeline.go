package main

import (
	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/config"
	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/parser"
	"github.com/Andcool-Systems/Ultraviolet/internal/source"
)

// loadConfig resolves the project's uvconfig.json, falling back to defaults
// when it doesn't exist (internal/config.LoadOrDefault).
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(configPath)
}

// parserOptions translates config knobs into parser.Options.
func parserOptions(cfg *config.Config) []parser.Option {
	if cfg.MaxDepth > 0 {
		return []parser.Option{parser.WithMaxDepth(cfg.MaxDepth)}
	}
	return nil
}

// runPipeline loads path, then runs the lexer/parser/ast pipeline over it.
// loadErr reports an ambient failure (the file couldn't be read at all) and
// is never a compiler diagnostic; d is the first diagnostic the pipeline
// itself produced, exactly one, never a slice. At most one of
// loadErr/d/prog is non-nil.
func runPipeline(path string, cfg *config.Config) (src *source.File, prog *ast.Program, d *diag.Diagnostic, loadErr error) {
	src, loadErr = source.Load(path)
	if loadErr != nil {
		return nil, nil, nil, loadErr
	}

	tokens := lexer.Lex(src.Text())

	tree, err := parser.New(tokens, parserOptions(cfg)...).Parse()
	if err != nil {
		return src, nil, err.(*diag.Diagnostic), nil
	}

	prog, err = ast.GenerateProgram(tree)
	if err != nil {
		return src, nil, err.(*diag.Diagnostic), nil
	}

	return src, prog, nil, nil
}
