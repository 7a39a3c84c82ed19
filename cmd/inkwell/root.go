package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	backend string
	dataDir string
	stdout  io.Writer
	stderr  io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "inkwell",
		Short:         "Organize notes into notebooks from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir := strings.TrimSpace(opts.dataDir); dir != "" {
				return os.Setenv("INKWELL_HOME", dir)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.Version = buildVersion()

	flags := root.PersistentFlags()
	flags.StringVar(&opts.backend, "backend", "", "storage backend: bbolt|file|memory (overrides config)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "data directory (default $INKWELL_HOME or ~/.inkwell)")

	root.AddCommand(
		newUICommand(opts),
		newNotebooksCommand(opts),
		newNotesCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newConfigCommand(opts),
	)
	return root
}
