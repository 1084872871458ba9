package component

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Cursor symbols for menu items.
const (
	cursorEmpty    = "  "
	cursorSelected = "▸ "
)

// ToggleDropdown is an icon button that opens a list of every enabled mode.
type ToggleDropdown struct {
	Keys DropdownKeyMap

	ctx    context.Context
	ctrl   Controller
	props  Props
	open   bool
	cursor int
}

// NewToggleDropdown creates a closed dropdown bound to ctrl.
func NewToggleDropdown(ctx context.Context, ctrl Controller, props Props) ToggleDropdown {
	return ToggleDropdown{
		Keys:  DefaultDropdownKeyMap(),
		ctx:   ctx,
		ctrl:  ctrl,
		props: props,
	}
}

// Open reports whether the mode list is shown.
func (m ToggleDropdown) Open() bool {
	return m.open
}

// Cursor returns the index of the highlighted mode while open.
func (m ToggleDropdown) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m ToggleDropdown) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ToggleDropdown) Update(msg tea.Msg) (ToggleDropdown, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.open {
		if key.Matches(keyMsg, m.Keys.Open) {
			v := m.ctrl.Value()
			m.open = true
			m.cursor = max(slices.Index(v.Modes, v.Mode), 0)
		}
		return m, nil
	}

	modes := m.ctrl.Value().Modes
	switch {
	case key.Matches(keyMsg, m.Keys.Close):
		m.open = false
	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(modes)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.Keys.Select):
		if m.cursor < 0 || m.cursor >= len(modes) {
			m.open = false
			return m, nil
		}
		m.open = false
		return m, modeChanged(selectMode(m.ctx, m.ctrl, modes[m.cursor], m.props.OnChange))
	}
	return m, nil
}

// View implements tea.Model.
func (m ToggleDropdown) View() string {
	v := m.ctrl.Value()
	s := newToggleStyles(v.Theme, m.props.size(), m.props.variant())

	button := s.Button.Render(m.props.icon(v.Mode))
	if !m.open {
		return button
	}

	var sb strings.Builder
	for i, mode := range v.Modes {
		cursor := cursorEmpty
		if i == m.cursor {
			cursor = s.ItemCursor.Render(cursorSelected)
		}
		item := s.Item
		if mode == v.Mode {
			item = s.ItemActive
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(cursor + item.Render(m.props.icon(mode)+" "+m.props.label(mode)))
	}

	return lipgloss.JoinVertical(lipgloss.Right, button, s.Menu.Render(sb.String()))
}
