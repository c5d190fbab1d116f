package app

import (
	"errors"
	"fmt"

	"car-catalog/internal/browser"
	"car-catalog/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *Application) runTerminal() error {
	model := tui.New(a.controller, browser.NewSystemLauncher(a.logger), a.LoadCatalog)

	// Signals go through the shutdown manager, which cancels the program context.
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(a.shutdown.Context()),
		tea.WithoutSignalHandler(),
	)

	a.startWatcher(func() { program.Send(tui.ReloadMsg{}) })
	a.shutdown.Listen()
	defer a.shutdown.Shutdown()

	a.logger.Info("Application", "terminal UI started", nil)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
