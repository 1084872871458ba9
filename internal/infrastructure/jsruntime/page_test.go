package jsruntime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/frame"
)

func newTestPage(t *testing.T, opts ...Option) *Page {
	t.Helper()
	page, err := NewPage(opts...)
	require.NoError(t, err)
	return page
}

func TestPage_EmptyRoot(t *testing.T) {
	page := newTestPage(t)

	markup, err := page.Markup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html>", markup)
}

func TestPage_ClassListAndAttributes(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	require.NoError(t, page.RunJavaScript(ctx, `
		var root = document.documentElement;
		root.classList.add("light", "antialiased");
		root.classList.remove("light");
		root.classList.add("dark");
		root.setAttribute("data-theme", "dark");
	`))

	ok, err := page.HasClass(ctx, "dark")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = page.HasClass(ctx, "light")
	require.NoError(t, err)
	assert.False(t, ok)

	v, found, err := page.Attribute(ctx, "data-theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", v)

	_, found, err = page.Attribute(ctx, "data-missing")
	require.NoError(t, err)
	assert.False(t, found)

	markup, err := page.Markup(ctx)
	require.NoError(t, err)
	assert.Equal(t, `<html class="antialiased dark" data-theme="dark">`, markup)
}

func TestPage_MatchMedia(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t, WithPrefersDark(true))

	dark, err := page.Eval(ctx, `matchMedia("(prefers-color-scheme: dark)").matches`)
	require.NoError(t, err)
	assert.Equal(t, true, dark)

	light, err := page.Eval(ctx, `window.matchMedia("(prefers-color-scheme: light)").matches`)
	require.NoError(t, err)
	assert.Equal(t, false, light)
}

func TestPage_MediaChangeListeners(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	require.NoError(t, page.RunJavaScript(ctx, `
		var seen = [];
		var mql = matchMedia("(prefers-color-scheme: dark)");
		var onChange = function (e) { seen.push(e.matches); };
		mql.addEventListener("change", onChange);
	`))

	require.NoError(t, page.SetPrefersDark(ctx, true))
	require.NoError(t, page.SetPrefersDark(ctx, true))
	require.NoError(t, page.SetPrefersDark(ctx, false))

	seen, err := page.Eval(ctx, `seen.join(",")`)
	require.NoError(t, err)
	assert.Equal(t, "true,false", seen)

	require.NoError(t, page.RunJavaScript(ctx, `mql.removeEventListener("change", onChange);`))
	n, err := page.MediaListeners(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPage_Scheme(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)
	scheme := page.Scheme()

	assert.Equal(t, entity.ThemeLight, scheme.Current())

	var got []entity.ResolvedTheme
	unsubscribe := scheme.Subscribe(func(theme entity.ResolvedTheme) {
		got = append(got, theme)
	})

	require.NoError(t, page.SetPrefersDark(ctx, true))
	assert.Equal(t, entity.ThemeDark, scheme.Current())
	assert.Equal(t, []entity.ResolvedTheme{entity.ThemeDark}, got)

	unsubscribe()
	unsubscribe()
	require.NoError(t, page.SetPrefersDark(ctx, false))
	assert.Len(t, got, 1)
}

func TestPage_RequestAnimationFrame(t *testing.T) {
	ctx := context.Background()
	frames := frame.NewQueue()
	page := newTestPage(t, WithFrames(frames))

	require.NoError(t, page.RunJavaScript(ctx, `
		var painted = 0;
		requestAnimationFrame(function () { painted++; });
	`))

	painted, err := page.Eval(ctx, "painted")
	require.NoError(t, err)
	assert.EqualValues(t, 0, painted)

	assert.Equal(t, 1, frames.Flush())
	painted, err = page.Eval(ctx, "painted")
	require.NoError(t, err)
	assert.EqualValues(t, 1, painted)
}

func TestPage_StyleElements(t *testing.T) {
	ctx := context.Background()
	page := newTestPage(t)

	require.NoError(t, page.RunJavaScript(ctx, `
		var s = document.createElement("style");
		s.setAttribute("data-id", "1");
		s.textContent = "a{}";
		document.head.appendChild(s);
	`))

	sheets, err := page.StyleSheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a{}"}, sheets)

	require.NoError(t, page.RunJavaScript(ctx, `
		document.querySelectorAll('style[data-id="1"]').forEach(function (n) { n.parentNode.removeChild(n); });
	`))
	sheets, err = page.StyleSheets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

func TestPage_ScriptErrors(t *testing.T) {
	page := newTestPage(t)

	err := page.RunJavaScript(context.Background(), "undefinedFunction()")
	assert.Error(t, err)

	err = page.RunJavaScript(context.Background(), "document.querySelectorAll('div > p')")
	assert.Error(t, err)
}

func TestPage_ContextCancelInterruptsScript(t *testing.T) {
	page := newTestPage(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := page.RunJavaScript(ctx, "for (;;) {}")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The page stays usable after an interrupt
	require.NoError(t, page.RunJavaScript(context.Background(), "1 + 1"))
}
