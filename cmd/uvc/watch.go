package main

import (
	"fmt"
	"path/filepath"

	"github.com/Andcool-Systems/Ultraviolet/internal/diag"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the pipeline every time <file> changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fail(cmd, fmt.Sprintf("uvc watch: creating watcher: %v", err))
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fail(cmd, fmt.Sprintf("uvc watch: watching %s: %v", path, err))
		}

		runOnce(path)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				runOnce(path)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "uvc watch: %v\n", err)
			}
		}
	},
}

// runOnce runs the pipeline once over path and prints either the AST dump or
// the diagnostic, without ever returning an error — a parse failure is a
// normal, expected outcome of editing a file under a watch, not a reason to
// stop watching.
func runOnce(path string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	src, prog, d, loadErr := runPipeline(path, cfg)
	if loadErr != nil {
		fmt.Println(loadErr)
		return
	}
	if d != nil {
		diag.NewFormatter().Format(d, src)
		return
	}
	fmt.Print(dumpProgram(prog))
}
