package dom

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_dom "github.com/bnema/shade/internal/infrastructure/dom/mocks"
	"github.com/bnema/shade/internal/infrastructure/jsruntime"
)

// scriptContaining matches scripts that include fragment.
func scriptContaining(fragment string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.Contains(s, fragment)
	})
}

func TestScript_EmitsRootMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_dom.NewMockScriptRunner(ctrl)
	doc := NewScript(runner)
	ctx := context.Background()

	gomock.InOrder(
		runner.EXPECT().RunJavaScript(ctx, scriptContaining(`root.classList.remove("light", "dark");`)).Return(nil),
		runner.EXPECT().RunJavaScript(ctx, scriptContaining(`root.classList.add("dark");`)).Return(nil),
		runner.EXPECT().RunJavaScript(ctx, scriptContaining(`root.style.colorScheme = "dark";`)).Return(nil),
	)

	require.NoError(t, doc.RemoveClasses(ctx, "light", "dark"))
	require.NoError(t, doc.AddClass(ctx, "dark"))
	require.NoError(t, doc.SetColorScheme(ctx, "dark"))
}

func TestScript_QuotesValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_dom.NewMockScriptRunner(ctrl)
	doc := NewScript(runner)
	ctx := context.Background()

	runner.EXPECT().RunJavaScript(ctx, scriptContaining(`root.setAttribute("data-theme", "\"); alert(1); (\"");`)).Return(nil)

	require.NoError(t, doc.SetAttribute(ctx, "data-theme", `"); alert(1); ("`))
}

func TestScript_WrapsRunnerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_dom.NewMockScriptRunner(ctrl)
	doc := NewScript(runner)
	boom := errors.New("page crashed")

	runner.EXPECT().RunJavaScript(gomock.Any(), gomock.Any()).Return(boom)

	err := doc.AddClass(context.Background(), "dark")
	assert.ErrorIs(t, err, boom)
}

func TestScript_EmptyRemoveIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock_dom.NewMockScriptRunner(ctrl)

	require.NoError(t, NewScript(runner).RemoveClasses(context.Background()))
}

func TestScript_OnHeadlessPage(t *testing.T) {
	ctx := context.Background()
	page, err := jsruntime.NewPage()
	require.NoError(t, err)
	doc := NewScript(page)

	require.NoError(t, doc.AddClass(ctx, "light"))
	require.NoError(t, doc.RemoveClasses(ctx, "light", "dark"))
	require.NoError(t, doc.AddClass(ctx, "dark"))
	require.NoError(t, doc.SetAttribute(ctx, "data-theme", "dark"))
	require.NoError(t, doc.SetColorScheme(ctx, "dark"))

	markup, err := page.Markup(ctx)
	require.NoError(t, err)
	assert.Equal(t, `<html class="dark" data-theme="dark" style="color-scheme: dark">`, markup)

	remove, err := doc.InjectStyle(ctx, "*{transition:none}")
	require.NoError(t, err)
	sheets, err := page.StyleSheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"*{transition:none}"}, sheets)

	remove()
	sheets, err = page.StyleSheets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheets)
}
