// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/ui/component"
	"github.com/bnema/shade/internal/ui/theme"
)

const (
	widgetToggle = iota
	widgetText
	widgetDropdown
	widgetCount
)

var widgetNames = [widgetCount]string{"Icon", "Text", "Dropdown"}

// PickerModel lets the user change the mode with each toggle widget.
type PickerModel struct {
	toggle   component.Toggle
	text     component.ToggleText
	dropdown component.ToggleDropdown

	focus int
	keys  styles.PickerKeyMap
	help  help.Model

	ctrl   component.Controller
	markup func() string
	value  theme.Value
	theme  *styles.Theme
}

// NewPickerModel creates a picker over ctrl. markup renders the themed
// document root shown under the widgets; it may be nil.
func NewPickerModel(ctx context.Context, ctrl component.Controller, markup func() string) PickerModel {
	value := ctrl.Value()
	th := styles.NewTheme(value.Theme)

	return PickerModel{
		toggle: component.NewToggle(ctx, ctrl, component.Props{
			Size:    component.SizeLarge,
			Variant: component.VariantOutline,
		}),
		text: component.NewToggleText(ctx, ctrl, component.Props{
			Size:    component.SizeMedium,
			Variant: component.VariantGhost,
		}),
		dropdown: component.NewToggleDropdown(ctx, ctrl, component.Props{
			Size:       component.SizeMedium,
			ShowLabels: true,
		}),
		keys:   styles.DefaultPickerKeyMap(),
		help:   styles.NewStyledHelp(th),
		ctrl:   ctrl,
		markup: markup,
		value:  value,
		theme:  th,
	}
}

// Focus returns the index of the focused widget.
func (m PickerModel) Focus() int {
	return m.focus
}

// Init implements tea.Model.
func (PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case component.ThemeChangedMsg:
		return m.withValue(msg.Value), nil
	case component.ModeChangedMsg:
		// The provider may not have notified yet; read it back now.
		return m.withValue(m.ctrl.Value()), nil
	case tea.KeyMsg:
		if m.dropdown.Open() && msg.String() != "ctrl+c" {
			return m.updateFocused(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextWidget):
			m.focus = (m.focus + 1) % widgetCount
			return m, nil
		case key.Matches(msg, m.keys.PrevWidget):
			m.focus = (m.focus + widgetCount - 1) % widgetCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m.updateFocused(msg)
}

func (m PickerModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case widgetToggle:
		m.toggle, cmd = m.toggle.Update(msg)
	case widgetText:
		m.text, cmd = m.text.Update(msg)
	case widgetDropdown:
		m.dropdown, cmd = m.dropdown.Update(msg)
	}
	return m, cmd
}

// withValue records v and restyles the picker when the rendered theme changed.
func (m PickerModel) withValue(v theme.Value) PickerModel {
	changed := v.Theme != m.value.Theme
	m.value = v
	if changed {
		showAll := m.help.ShowAll
		m.theme = styles.NewTheme(v.Theme)
		m.help = styles.NewStyledHelp(m.theme)
		m.help.ShowAll = showAll
	}
	return m
}

// Value returns the last provider value the picker saw.
func (m PickerModel) Value() theme.Value {
	return m.value
}

// View implements tea.Model.
func (m PickerModel) View() string {
	views := [widgetCount]string{m.toggle.View(), m.text.View(), m.dropdown.View()}

	rows := make([]string, 0, widgetCount)
	for i, view := range views {
		marker := "  "
		name := m.theme.Subtle.Render(fmt.Sprintf("%-9s", widgetNames[i]))
		if i == m.focus {
			marker = m.theme.Highlight.Render(styles.IconCursor + " ")
			name = m.theme.Highlight.Render(fmt.Sprintf("%-9s", widgetNames[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, name, " ", view))
	}

	status := fmt.Sprintf("%s %s %s %s %s",
		m.theme.Subtle.Render("mode"),
		m.theme.Highlight.Render(m.value.Mode.String()),
		m.theme.Subtle.Render(styles.IconArrow),
		m.theme.Normal.Render(m.value.Theme.String()),
		m.theme.Subtle.Render("(system "+m.value.SystemTheme.String()+")"),
	)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(styles.IconPalette + " Theme"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(rows, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(status)
	if m.markup != nil {
		if markup := m.markup(); markup != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.Subtle.Render(markup))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return m.theme.Box.Render(b.String())
}
