package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todod/internal/update"
	"github.com/spf13/cobra"
)

func runTUI(rootOpts *RootOptions, cmd *cobra.Command) error {
	return rootOpts.withSession(cmd, func(ctx context.Context, sess *session) error {
		m := update.NewModel(sess.service, update.Options{
			Context:  ctx,
			Logger:   sess.log,
			ShowHelp: sess.cfg.ShowHelp,
		})
		program := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		sess.log.Info("tui started", "tasks", len(m.Tasks))
		_, err := program.Run()
		return err
	})
}
