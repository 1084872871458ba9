package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ClassMutations(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.AddClass(ctx, "antialiased"))
	require.NoError(t, m.AddClass(ctx, "light"))
	require.NoError(t, m.AddClass(ctx, "light"))
	assert.Equal(t, []string{"antialiased", "light"}, m.Classes())

	require.NoError(t, m.RemoveClasses(ctx, "light", "dark"))
	require.NoError(t, m.AddClass(ctx, "dark"))

	assert.True(t, m.HasClass("dark"))
	assert.False(t, m.HasClass("light"))
	assert.Equal(t, []string{"antialiased", "dark"}, m.Classes())
}

func TestMemory_RejectsInvalidTokens(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	assert.Error(t, m.AddClass(ctx, ""))
	assert.Error(t, m.AddClass(ctx, "two words"))
	assert.Error(t, m.SetAttribute(ctx, "", "x"))
}

func TestMemory_SetAttributeClassReplacesList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.AddClass(ctx, "light"))

	require.NoError(t, m.SetAttribute(ctx, "class", "dark  high-contrast"))
	assert.Equal(t, []string{"dark", "high-contrast"}, m.Classes())
}

func TestMemory_InjectStyleRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	removeFirst, err := m.InjectStyle(ctx, "a{}")
	require.NoError(t, err)
	_, err = m.InjectStyle(ctx, "b{}")
	require.NoError(t, err)
	assert.Equal(t, []string{"a{}", "b{}"}, m.StyleSheets())

	removeFirst()
	removeFirst()
	assert.Equal(t, []string{"b{}"}, m.StyleSheets())
}

func TestMemory_Markup(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	assert.Equal(t, "<html>", m.Markup())

	require.NoError(t, m.AddClass(ctx, "dark"))
	require.NoError(t, m.SetAttribute(ctx, "data-theme", "dark"))
	require.NoError(t, m.SetColorScheme(ctx, "dark"))

	assert.Equal(t, `<html class="dark" data-theme="dark" style="color-scheme: dark">`, m.Markup())
	v, ok := m.Attribute("data-theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, "dark", m.ColorScheme())
}
