package tui

import (
	"log/slog"

	"todo-cli/internal/config"
	"todo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser on s and blocks until the user quits.
// The terminal is restored by the program before Run returns.
func Run(s store.Store, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	applyColorProfilePreference(cfg.TUI.NoColor)
	applyThemePreference(cfg.TUI.Theme)
	applyGlyphPreference(cfg.TUI.Glyphs)

	m := newAppModel(s, cfg)
	if st, err := s.LoadTUIState(); err == nil {
		m.restore(st)
	} else {
		slog.Debug("tui state not restored", "error", err)
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(appModel); ok {
		if err := s.SaveTUIState(fm.tuiState()); err != nil {
			slog.Warn("save tui state", "error", err)
		}
	}
	return nil
}
