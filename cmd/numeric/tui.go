package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/numeric/internal/field"
)

func newTUICmd(o *options) *cobra.Command {
	var history int
	cmd := &cobra.Command{
		Use:   "tui [expr...]",
		Short: "Evaluate expressions interactively",
		Long: `tui starts an interactive expression field. Arguments are joined to form
its initial content.

Keys:
  alt+= or enter  replace the expression with its value
  esc or ctrl+c   quit`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := o.setup(cmd)
			if err != nil {
				return err
			}
			m := field.New(cfg,
				field.Detail(o.verbose),
				field.History(history),
				field.OnChange(func(s string) { logger.Debug("field changed", "value", s) }),
			)
			m.SetValue(strings.Join(args, " "))
			p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().IntVar(&history, "history", field.DefaultHistory, "number of evaluated lines to show")
	return cmd
}
