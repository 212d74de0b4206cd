// Package tui renders the scanned tree and translates key events into
// navigation operations.
//
// The model is single-threaded inside the bubbletea event loop. Scans
// and refreshes run synchronously in Update, so the interface blocks
// for their duration; there is no partial render of an in-flight scan.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShinuToki/rdu/internal/nav"
)

const (
	// chromeLines is the vertical space taken by the title bar, the
	// directory info line, and the footer.
	chromeLines = 3

	defaultWidth      = 80
	defaultListHeight = 10
)

// Model is the bubbletea model for the interactive browser.
type Model struct {
	app      *nav.App
	version  string
	width    int
	height   int
	offset   int
	showHelp bool
}

// New wraps a navigation state machine for display.
func New(app *nav.App, version string) Model {
	return Model{app: app, version: version}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press drops the transient status message.
	m.app.ClearStatus()

	if m.showHelp {
		// Any key closes the overlay; Esc and q do not quit from here.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = true
	case key.Matches(msg, keys.Down):
		m.app.Next()
	case key.Matches(msg, keys.Up):
		m.app.Previous()
	case key.Matches(msg, keys.PageDown):
		m.app.PageDown()
	case key.Matches(msg, keys.PageUp):
		m.app.PageUp()
	case key.Matches(msg, keys.First):
		m.app.First()
	case key.Matches(msg, keys.Last):
		m.app.Last()
	case key.Matches(msg, keys.Enter):
		m.app.Enter()
	case key.Matches(msg, keys.GoUp):
		m.app.GoUp()
	case key.Matches(msg, keys.Refresh):
		m.app.Refresh()
	case key.Matches(msg, keys.SortSize):
		m.app.ToggleSizeSort()
	case key.Matches(msg, keys.SortMTime):
		m.app.ToggleMTimeSort()
	case key.Matches(msg, keys.SortCount):
		m.app.ToggleCountSort()
	}

	m.clampOffset()
	return m, nil
}

// clampOffset keeps the selection inside the visible window, the way
// the list follows the cursor in mole's analyzer.
func (m *Model) clampOffset() {
	sel := m.app.Selection()
	n := len(m.app.Children())
	if n == 0 || sel < 0 {
		m.offset = 0
		return
	}
	vp := m.listHeight()
	maxOffset := n - vp
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if sel < m.offset {
		m.offset = sel
	}
	if sel >= m.offset+vp {
		m.offset = sel - vp + 1
	}
}

func (m Model) listHeight() int {
	if m.height <= chromeLines {
		return defaultListHeight
	}
	return m.height - chromeLines
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}
