package main

import (
	"fmt"

	"github.com/Andcool-Systems/Ultraviolet/internal/lexer"
	"github.com/Andcool-Systems/Ultraviolet/internal/source"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source.Load(args[0])
		if err != nil {
			return fail(cmd, err.Error())
		}

		for _, tok := range lexer.Lex(src.Text()) {
			fmt.Println(formatToken(src, tok))
		}
		return nil
	},
}

// formatToken renders a single token with its 1-based line:column start
// position, the way a developer-facing token dump should read.
func formatToken(src *source.File, tok lexer.Token) string {
	line, col := src.Position(tok.Span.Start)
	if tok.Text != "" {
		return fmt.Sprintf("%d:%d  %-16s %q  [%d,%d)", line, col, tok.Type, tok.Text, tok.Span.Start, tok.Span.End)
	}
	return fmt.Sprintf("%d:%d  %-16s [%d,%d)", line, col, tok.Type, tok.Span.Start, tok.Span.End)
}
