package component

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Toggle is an icon button that cycles through the provider's modes.
type Toggle struct {
	Keys ToggleKeyMap

	ctx   context.Context
	ctrl  Controller
	props Props
}

// NewToggle creates a toggle bound to ctrl.
func NewToggle(ctx context.Context, ctrl Controller, props Props) Toggle {
	return Toggle{
		Keys:  DefaultToggleKeyMap(),
		ctx:   ctx,
		ctrl:  ctrl,
		props: props,
	}
}

// Init implements tea.Model.
func (m Toggle) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.Keys.Toggle) {
		return m, modeChanged(advance(m.ctx, m.ctrl, m.props.OnChange))
	}
	return m, nil
}

// View implements tea.Model.
func (m Toggle) View() string {
	v := m.ctrl.Value()
	s := newToggleStyles(v.Theme, m.props.size(), m.props.variant())

	content := m.props.icon(v.Mode)
	if m.props.ShowLabels {
		content = lipgloss.JoinHorizontal(lipgloss.Center, content, " ", m.props.label(v.Mode))
	}
	return s.Button.Render(content)
}

// Title describes the current mode and what activating the toggle does.
func (m Toggle) Title() string {
	return "Current: " + m.props.label(m.ctrl.Value().Mode) + ". Press enter to cycle through themes."
}
