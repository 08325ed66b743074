package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todod/internal/commands"
	"github.com/sandeepkv93/todod/internal/views"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(rootOpts, cmd, "add "+strings.Join(args, " "))
		},
	}
}

// NewTargetCommand creates a command that acts on one task reference: an
// id, a unique id prefix or a 1-based position.
func NewTargetCommand(rootOpts *RootOptions, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <ref>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(rootOpts, cmd, name+" "+args[0])
		},
	}
}

// NewRenameCommand creates the rename command.
func NewRenameCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rename <ref> <title...>",
		Aliases: []string{"mv"},
		Short:   "Change the title of a task",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(rootOpts, cmd, "rename "+strings.Join(args, " "))
		},
	}
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(rootOpts, cmd, "clear")
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var showIDs bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withSession(cmd, func(ctx context.Context, sess *session) error {
				tasks := sess.service.List(ctx)
				out := cmd.OutOrStdout()
				if len(tasks) == 0 {
					_, err := fmt.Fprintln(out, "no tasks")
					return err
				}
				for i, task := range tasks {
					line := fmt.Sprintf("%2d. %s %s", i+1, views.Checkbox(task.Completed), task.Title)
					if showIDs {
						line += "  (" + task.ID + ")"
					}
					if _, err := fmt.Fprintln(out, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show task ids")
	return cmd
}

// runLine executes one command line through the same parser and handlers as
// the command palette and prints the result message.
func runLine(rootOpts *RootOptions, cmd *cobra.Command, line string) error {
	parsed, err := commands.Parse(line)
	if err != nil {
		return err
	}
	return rootOpts.withSession(cmd, func(ctx context.Context, sess *session) error {
		res, err := commands.Execute(parsed, sess.service.Handlers(ctx))
		if err != nil {
			return err
		}
		sess.log.Debug("command executed", "type", parsed.Type, "result", res.Message)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return err
	})
}
