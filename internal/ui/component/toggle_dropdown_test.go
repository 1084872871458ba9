package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/domain/entity"
)

func TestToggleDropdown_OpensOnCurrentMode(t *testing.T) {
	p := mountProvider(t, withMode(entity.ThemeModeDark))
	m := NewToggleDropdown(context.Background(), p, Props{})
	assert.False(t, m.Open())

	m, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.True(t, m.Open())
	assert.Equal(t, 1, m.Cursor())
}

func TestToggleDropdown_SelectSetsModeAndCloses(t *testing.T) {
	p := mountProvider(t, withMode(entity.ThemeModeLight))
	var changes []entity.ThemeMode
	m := NewToggleDropdown(context.Background(), p, Props{OnChange: func(mode entity.ThemeMode) {
		changes = append(changes, mode)
	}})

	m, _ = m.Update(runeKey('o'))
	m, _ = m.Update(downKey)
	m, _ = m.Update(downKey)
	m, _ = m.Update(downKey)
	assert.Equal(t, 2, m.Cursor())

	m, cmd := m.Update(enterKey)

	assert.False(t, m.Open())
	assert.Equal(t, entity.ThemeModeSystem, p.Value().Mode)
	assert.Equal(t, ModeChangedMsg{Mode: entity.ThemeModeSystem}, execCmd(cmd))
	assert.Equal(t, []entity.ThemeMode{entity.ThemeModeSystem}, changes)
}

func TestToggleDropdown_SelectingCurrentModeStillReports(t *testing.T) {
	p := mountProvider(t, withMode(entity.ThemeModeLight))
	calls := 0
	m := NewToggleDropdown(context.Background(), p, Props{OnChange: func(entity.ThemeMode) { calls++ }})

	m, _ = m.Update(enterKey)
	_, _ = m.Update(enterKey)

	assert.Equal(t, 1, calls)
	assert.Equal(t, entity.ThemeModeLight, p.Value().Mode)
}

func TestToggleDropdown_CloseWithoutSelecting(t *testing.T) {
	p := mountProvider(t, withMode(entity.ThemeModeLight))
	m := NewToggleDropdown(context.Background(), p, Props{})

	m, _ = m.Update(enterKey)
	m, _ = m.Update(downKey)
	m, cmd := m.Update(escKey)

	assert.Nil(t, cmd)
	assert.False(t, m.Open())
	assert.Equal(t, entity.ThemeModeLight, p.Value().Mode)
}

func TestToggleDropdown_CursorStaysInRange(t *testing.T) {
	cfg := withMode(entity.ThemeModeLight)
	cfg.EnableSystem = false
	p := mountProvider(t, cfg)
	m := NewToggleDropdown(context.Background(), p, Props{})

	m, _ = m.Update(enterKey)
	m, _ = m.Update(upKey)
	assert.Equal(t, 0, m.Cursor())
	m, _ = m.Update(downKey)
	m, _ = m.Update(downKey)
	assert.Equal(t, 1, m.Cursor())
}

func TestToggleDropdown_View(t *testing.T) {
	p := mountProvider(t, withMode(entity.ThemeModeDark))
	m := NewToggleDropdown(context.Background(), p, Props{
		Labels: map[entity.ThemeMode]string{entity.ThemeModeSystem: "Auto"},
	})

	closed := m.View()
	assert.Contains(t, closed, DefaultIcons[entity.ThemeModeDark])
	assert.NotContains(t, closed, "Light")

	m, _ = m.Update(enterKey)
	open := m.View()
	assert.Contains(t, open, "Light")
	assert.Contains(t, open, "Dark")
	assert.Contains(t, open, "Auto")
	assert.Contains(t, open, cursorSelected)
}
