package main

import (
	"fmt"

	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the frontend pipeline and report the first diagnostic, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err.Error())
		}

		src, prog, d, loadErr := runPipeline(args[0], cfg)
		if loadErr != nil {
			return fail(cmd, loadErr.Error())
		}
		if d != nil {
			diag.NewFormatter().Format(d, src)
			return fail(cmd, "")
		}

		fmt.Printf("ok: %s (%d head, %d main)\n", args[0], len(prog.Head), len(prog.Main))
		return nil
	},
}
