package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. Each message triggers at most one state
// change; the framework re-renders after every update.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input according to the active mode.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c always quits, whatever the mode.
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// An open overlay swallows input until dismissed.
	if m.overlay != overlayNone {
		switch key {
		case "esc", "enter", "q", "?", "w":
			m.overlay = overlayNone
		}
		return m, nil
	}

	if m.mode == modeFilter {
		return m.handleFilterKey(msg)
	}
	return m.handleNormalKey(key)
}

// handleNormalKey processes keys in Normal mode.
func (m model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.sel.moveBy(-1, len(m.view))

	case "down", "j":
		m.sel.moveBy(1, len(m.view))

	case "home", "g":
		m.sel.setIndex(0, len(m.view))

	case "end", "G":
		m.sel.setIndex(len(m.view)-1, len(m.view))

	case "tab":
		if m.dagView == dagViewText {
			m.dagView = dagViewGrid
		} else {
			m.dagView = dagViewText
		}

	case "/":
		// Buffer is preserved from the last edit; only 'c' clears it.
		m.mode = modeFilter
		m.filterInput.Focus()

	case "c":
		m.filterInput.SetValue("")
		m.applyFilter("")

	case "?":
		m.overlay = overlayHelp

	case "w":
		m.overlay = overlayWarnings
	}

	return m, nil
}

// handleFilterKey processes keys in Filter mode. Enter and escape both
// return to Normal mode with the buffer retained as the active filter.
func (m model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	if m.filterInput.Value() != before {
		m.applyFilter(m.filterInput.Value())
	}
	return m, cmd
}
