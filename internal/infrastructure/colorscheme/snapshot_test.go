package colorscheme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/domain/entity"
)

func TestSnapshotOf(t *testing.T) {
	r := NewResolver(StaticScheme("dark"))
	assert.Equal(t, entity.ThemeDark, SnapshotOf(r).Current())

	r = NewResolver(StaticScheme("prefer-light"))
	assert.Equal(t, entity.ThemeLight, SnapshotOf(r).Current())
}

func TestSnapshot_InvalidValueIsLight(t *testing.T) {
	assert.Equal(t, entity.ThemeLight, Snapshot("").Current())
	assert.Equal(t, entity.ThemeLight, Snapshot("system").Current())
}

func TestSnapshot_SubscribeNeverNotifies(t *testing.T) {
	called := false
	unsubscribe := Snapshot(entity.ThemeDark).Subscribe(func(entity.ResolvedTheme) { called = true })
	unsubscribe()
	unsubscribe()
	assert.False(t, called)
}
