package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"inkwell/internal/types"
)

func newNotebooksCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notebooks",
		Aliases: []string{"nb"},
		Short:   "Manage notebooks",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List notebooks in order; the first one opens by default",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					return writeNotebookList(opts.stdout, env.store.ListNotebooks(cmd.Context()))
				})
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a notebook",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					nb, err := env.store.CreateNotebook(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(opts.stdout, nb.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a notebook",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					_, err := env.store.RenameNotebook(cmd.Context(), args[0], args[1])
					return err
				})
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Delete a notebook and all of its notes",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					return env.store.DeleteNotebook(cmd.Context(), args[0])
				})
			},
		},
	)
	return cmd
}

func writeNotebookList(out io.Writer, notebooks []*types.Notebook) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNOTES")
	active := color.New(color.FgGreen, color.Bold)
	for i, nb := range notebooks {
		name := nb.Name
		if i == 0 {
			name = active.Sprint(name)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", nb.ID, name, len(nb.Notes))
	}
	return w.Flush()
}
