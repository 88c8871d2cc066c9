package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the generator full screen with mouse support and blocks until
// the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewGeneratorModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running stackgen: %w", err)
	}
	return nil
}
