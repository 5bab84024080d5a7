package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktsuji/habitloop/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m, err := tui.NewModel(ctx.Store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
