package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/logging"
	"inkwell/internal/store"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all notebooks as JSON to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
				data, err := store.Encode(env.store.Snapshot(cmd.Context()))
				if err != nil {
					return err
				}
				data = append(data, '\n')
				if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
					_, err = opts.stdout.Write(data)
					return err
				}
				if err := os.WriteFile(args[0], data, 0o600); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				env.logger.Info("exported notebooks", logging.F("path", args[0]))
				return nil
			})
		},
	}
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all notebooks with the contents of a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			snapshot, err := store.Decode(data)
			if err != nil {
				return err
			}
			return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
				if err := env.store.Replace(cmd.Context(), snapshot); err != nil {
					return err
				}
				fmt.Fprintf(opts.stdout, "imported %d notebooks\n", len(snapshot.Notebooks))
				return nil
			})
		},
	}
}
