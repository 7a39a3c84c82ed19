package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"inkwell/internal/render"
	"inkwell/internal/types"
)

func newNotesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage the notes of a notebook",
	}

	var input types.NoteInput
	add := &cobra.Command{
		Use:   "add <notebook-id>",
		Short: "Create a note at the top of a notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
				note, err := env.store.CreateNote(cmd.Context(), args[0], input)
				if err != nil {
					return err
				}
				fmt.Fprintln(opts.stdout, note.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&input.Title, "title", "", "note title")
	add.Flags().StringVar(&input.Text, "text", "", "note text")

	var edit types.NoteInput
	editCmd := &cobra.Command{
		Use:   "edit <notebook-id> <note-id>",
		Short: "Replace the title and text of a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
				_, err := env.store.UpdateNote(cmd.Context(), args[0], args[1], edit)
				return err
			})
		},
	}
	editCmd.Flags().StringVar(&edit.Title, "title", "", "note title")
	editCmd.Flags().StringVar(&edit.Text, "text", "", "note text")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <notebook-id>",
			Short: "List notes newest first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					notes, err := env.store.ListNotes(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return writeNoteList(opts.stdout, notes, time.Now())
				})
			},
		},
		add,
		editCmd,
		&cobra.Command{
			Use:     "rm <notebook-id> <note-id>",
			Aliases: []string{"delete"},
			Short:   "Delete a note",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRuntime(cmd.Context(), opts, func(env *runtimeEnv) error {
					remaining, err := env.store.DeleteNote(cmd.Context(), args[0], args[1])
					if err != nil {
						return err
					}
					fmt.Fprintf(opts.stdout, "%d remaining\n", remaining)
					return nil
				})
			},
		},
	)
	return cmd
}

func writeNoteList(out io.Writer, notes []*types.Note, now time.Time) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(out, render.EmptyNotesLabel)
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED")
	meta := color.New(color.Faint)
	for _, note := range notes {
		card := render.NewCard(*note, now)
		fmt.Fprintf(w, "%s\t%s\t%s\n", card.ID, card.Title, meta.Sprint(card.Relative))
	}
	return w.Flush()
}
