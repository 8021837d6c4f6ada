package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/airfare-routefinder/route-finder/internal/adapter/tui"
)

func newTUICommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive search form",
		Long: `Launch the interactive search form.

Keyboard shortcuts:
  ↑/↓ or j/k  Move between fields
  ←/→ or h/l  Change the focused field
  Enter       Search
  r           Reset the result
  q           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := root.components.NewController(nil)
			defer ctrl.Close()

			p := tea.NewProgram(
				tui.NewModel(cmd.Context(), ctrl),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			return err
		},
	}
}
