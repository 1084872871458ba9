package component

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleText is a text-only toggle showing the current mode's label.
// Size, Variant, ShowLabels and Icons are ignored.
type ToggleText struct {
	Keys ToggleKeyMap

	ctx   context.Context
	ctrl  Controller
	props Props
}

// NewToggleText creates a text toggle bound to ctrl.
func NewToggleText(ctx context.Context, ctrl Controller, props Props) ToggleText {
	return ToggleText{
		Keys:  DefaultToggleKeyMap(),
		ctx:   ctx,
		ctrl:  ctrl,
		props: props,
	}
}

// Init implements tea.Model.
func (m ToggleText) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ToggleText) Update(msg tea.Msg) (ToggleText, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.Keys.Toggle) {
		return m, modeChanged(advance(m.ctx, m.ctrl, m.props.OnChange))
	}
	return m, nil
}

// View implements tea.Model.
func (m ToggleText) View() string {
	v := m.ctrl.Value()
	s := newToggleStyles(v.Theme, SizeMedium, VariantGhost)
	return s.Text.Render(m.props.label(v.Mode))
}
