package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Andcool-Systems/Ultraviolet/internal/ast"
	"github.com/Andcool-Systems/Ultraviolet/internal/astcache"
	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/Andcool-Systems/Ultraviolet/internal/source"
	"github.com/spf13/cobra"
)

var useCache bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print a debug dump of the generated AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err.Error())
		}

		wantCache := useCache || cfg.Cache
		src, err := source.Load(args[0])
		if err != nil {
			return fail(cmd, err.Error())
		}

		if wantCache {
			if prog, ok := readCache(src); ok {
				fmt.Print(dumpProgram(prog))
				return nil
			}
		}

		_, prog, d, loadErr := runPipeline(args[0], cfg)
		if loadErr != nil {
			return fail(cmd, loadErr.Error())
		}
		if d != nil {
			diag.NewFormatter().Format(d, src)
			return fail(cmd, "")
		}

		if wantCache {
			writeCache(src, prog)
		}

		fmt.Print(dumpProgram(prog))
		return nil
	},
}

func init() {
	astCmd.Flags().BoolVar(&useCache, "cache", false,
		"read/write a CBOR AST cache keyed by the source's blake2b fingerprint")
}

// cachePath returns the path a fingerprint-keyed cache entry for src would
// live at, under a .uvcache directory next to the source file.
func cachePath(src *source.File) string {
	dir := filepath.Join(filepath.Dir(src.Name), ".uvcache")
	return filepath.Join(dir, src.Fingerprint()+".cbor")
}

// readCache reports whether a valid cache entry exists for src's current
// content and, if so, the decoded Program it holds. A fingerprint mismatch
// (the file changed since the cache was written) is treated as a cache miss,
// never an error; the pipeline is deterministic, so a fresh run reproduces
// the same AST anyway.
func readCache(src *source.File) (*ast.Program, bool) {
	data, err := os.ReadFile(cachePath(src))
	if err != nil {
		return nil, false
	}
	prog, err := astcache.Decode(data)
	if err != nil {
		return nil, false
	}
	return prog, true
}

func writeCache(src *source.File, prog *ast.Program) {
	data, err := astcache.Encode(prog)
	if err != nil {
		return
	}
	dir := filepath.Join(filepath.Dir(src.Name), ".uvcache")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(cachePath(src), data, 0o644)
}
