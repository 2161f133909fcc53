// Command uvc is the thin entry binary for the Ultraviolet frontend: it
// wires a file path to the lexer/parser/ast pipeline and prints either an
// AST dump to stdout or a rendered diagnostic to stderr, exiting non-zero on
// the latter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "uvc",
	Short: "Ultraviolet frontend: lex, parse, and build the AST for .uv source files",
	Long: `uvc drives the Ultraviolet compiler frontend: the lexer, the token
parser, and the AST generator. It does not implement later compiler stages
(semantic analysis, lowering, codegen) — those are out of this frontend's
scope.`,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "uvconfig.json",
		"path to the project's uvconfig.json")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(watchCmd)
}

// fail prints msg to stderr and returns a non-nil error so cobra's Execute
// exits with status 1, without cobra also re-printing a "Error: ..." banner
// (RunE's returned error is otherwise printed by cobra itself; we've already
// rendered the diagnostic ourselves, so silence that banner here).
func fail(cmd *cobra.Command, msg string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	return errSilent
}

var errSilent = fmt.Errorf("uvc: command failed")
