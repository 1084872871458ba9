package colorscheme

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/application/port/mocks"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countingSource records starts and stops and exposes the changed callback.
type countingSource struct {
	mu      sync.Mutex
	starts  int
	stops   int
	changed func()
}

func (s *countingSource) source() Source {
	return func(_ context.Context, changed func()) (func(), error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.starts++
		s.changed = changed
		return func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.stops++
		}, nil
	}
}

func (s *countingSource) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts, s.stops
}

func TestListener_CurrentRefreshesResolver(t *testing.T) {
	resolver := mocks.NewMockColorSchemeResolver(t)
	resolver.EXPECT().Refresh().Return(port.ColorSchemePreference{PrefersDark: true, Source: "portal"}).Once()

	l := NewListener(context.Background(), resolver, nil)

	assert.Equal(t, entity.ThemeDark, l.Current())
}

func TestListener_SubscribeDeliversChanges(t *testing.T) {
	resolver := mocks.NewMockColorSchemeResolver(t)

	var onChange func(port.ColorSchemePreference)
	unregistered := 0
	resolver.EXPECT().OnChange(mock.Anything).RunAndReturn(func(cb func(port.ColorSchemePreference)) func() {
		onChange = cb
		return func() { unregistered++ }
	}).Once()

	l := NewListener(context.Background(), resolver, nil)

	var got []entity.ResolvedTheme
	unsubscribe := l.Subscribe(func(theme entity.ResolvedTheme) {
		got = append(got, theme)
	})
	require.NotNil(t, onChange)

	onChange(port.ColorSchemePreference{PrefersDark: true})
	onChange(port.ColorSchemePreference{PrefersDark: false})
	assert.Equal(t, []entity.ResolvedTheme{entity.ThemeDark, entity.ThemeLight}, got)

	unsubscribe()
	assert.Equal(t, 1, unregistered)

	// A notification racing with unsubscribe is dropped
	onChange(port.ColorSchemePreference{PrefersDark: true})
	assert.Len(t, got, 2)

	// Unsubscribe is idempotent
	unsubscribe()
	assert.Equal(t, 1, unregistered)
}

func TestListener_SourceFollowsSubscriptions(t *testing.T) {
	resolver := NewResolver(nil)
	src := &countingSource{}
	l := NewListener(context.Background(), resolver, src.source())

	first := l.Subscribe(func(entity.ResolvedTheme) {})
	second := l.Subscribe(func(entity.ResolvedTheme) {})

	starts, stops := src.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 0, stops)
	assert.Equal(t, 2, l.Active())

	first()
	first()
	_, stops = src.counts()
	assert.Equal(t, 0, stops)
	assert.Equal(t, 1, l.Active())

	second()
	_, stops = src.counts()
	assert.Equal(t, 1, stops)
	assert.Equal(t, 0, l.Active())

	// A new subscriber restarts the source
	third := l.Subscribe(func(entity.ResolvedTheme) {})
	starts, _ = src.counts()
	assert.Equal(t, 2, starts)
	third()
}

func TestListener_SourceTriggersRefresh(t *testing.T) {
	dark := &atomic.Bool{}
	resolver := NewResolver(nil)
	resolver.RegisterDetector(&funcDetector{detect: func() (bool, bool) { return dark.Load(), true }})

	src := &countingSource{}
	l := NewListener(context.Background(), resolver, src.source())

	var got []entity.ResolvedTheme
	unsubscribe := l.Subscribe(func(theme entity.ResolvedTheme) {
		got = append(got, theme)
	})
	defer unsubscribe()

	// No change, no notification
	src.changed()
	assert.Empty(t, got)

	dark.Store(true)
	src.changed()
	src.changed()
	assert.Equal(t, []entity.ResolvedTheme{entity.ThemeDark}, got)
}

func TestListener_SourceStartFailureIsTolerated(t *testing.T) {
	failing := func(context.Context, func()) (func(), error) {
		return nil, assert.AnError
	}
	l := NewListener(context.Background(), NewResolver(nil), failing)

	unsubscribe := l.Subscribe(func(entity.ResolvedTheme) {})
	assert.NotPanics(t, unsubscribe)
}

func TestPollSource_CallsChangedUntilStopped(t *testing.T) {
	var calls atomic.Int32
	stop, err := PollSource(5*time.Millisecond)(context.Background(), func() { calls.Add(1) })
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestFallbackSource(t *testing.T) {
	failing := func(context.Context, func()) (func(), error) { return nil, assert.AnError }
	src := &countingSource{}

	stop, err := FallbackSource(failing, src.source())(context.Background(), func() {})
	require.NoError(t, err)
	stop()

	starts, stops := src.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
}

type funcDetector struct {
	detect func() (bool, bool)
}

func (*funcDetector) Name() string           { return "func" }
func (*funcDetector) Priority() int          { return 1 }
func (*funcDetector) Available() bool        { return true }
func (d *funcDetector) Detect() (bool, bool) { return d.detect() }
