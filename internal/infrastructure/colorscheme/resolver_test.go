package colorscheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/config"
)

// stubDetector answers with fixed values; dark may be flipped between calls.
type stubDetector struct {
	name      string
	priority  int
	available bool
	answers   bool

	mu   sync.Mutex
	dark bool
}

func (d *stubDetector) Name() string    { return d.name }
func (d *stubDetector) Priority() int   { return d.priority }
func (d *stubDetector) Available() bool { return d.available }

func (d *stubDetector) Detect() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dark, d.answers
}

func (d *stubDetector) set(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dark = dark
}

func answering(name string, priority int, dark bool) *stubDetector {
	return &stubDetector{name: name, priority: priority, available: true, answers: true, dark: dark}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		force      string
		detectors  []*stubDetector
		wantDark   bool
		wantSource string
	}{
		{"forced dark", "dark", []*stubDetector{answering("d", 1, false)}, true, SourceConfig},
		{"forced prefer-dark", "prefer-dark", nil, true, SourceConfig},
		{"forced light ignores case", " Light ", []*stubDetector{answering("d", 1, true)}, false, SourceConfig},
		{"forced prefer-light", "prefer-light", nil, false, SourceConfig},
		{"empty detects", "", []*stubDetector{answering("d", 1, true)}, true, "d"},
		{"auto detects", "auto", []*stubDetector{answering("d", 1, true)}, true, "d"},
		{"default detects", "default", []*stubDetector{answering("d", 1, false)}, false, "d"},
		{
			"highest priority wins", "",
			[]*stubDetector{answering("low", 10, true), answering("high", 100, false)},
			false, "high",
		},
		{
			"unavailable detector skipped", "",
			[]*stubDetector{{name: "off", priority: 100, dark: true}, answering("on", 1, false)},
			false, "on",
		},
		{
			"silent detector skipped", "",
			[]*stubDetector{{name: "quiet", priority: 100, available: true, dark: true}, answering("loud", 1, true)},
			true, "loud",
		},
		{"no detectors falls back to light", "", nil, false, SourceFallback},
		{
			"nobody answers falls back to light", "",
			[]*stubDetector{{name: "quiet", available: true, dark: true}},
			false, SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(StaticScheme(tt.force))
			for _, d := range tt.detectors {
				r.RegisterDetector(d)
			}

			pref := r.Resolve()
			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_NilConfigDetects(t *testing.T) {
	r := NewResolver(nil)
	r.RegisterDetector(answering("d", 1, true))
	assert.Equal(t, "d", r.Resolve().Source)
}

func TestResolver_ConfigAdapterForces(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.System.Force = "prefer-dark"
	r := NewResolver(NewConfigAdapter(cfg))
	r.RegisterDetector(answering("d", 1, false))

	assert.Equal(t, SourceConfig, r.Resolve().Source)
	assert.Equal(t, "", NewConfigAdapter(nil).GetColorScheme())
}

func TestResolver_RefreshNotifiesOnFlipOnly(t *testing.T) {
	d := answering("d", 1, true)
	r := NewResolver(nil)
	r.RegisterDetector(d)

	var got []bool
	unregister := r.OnChange(func(p port.ColorSchemePreference) { got = append(got, p.PrefersDark) })

	r.Refresh() // light -> dark
	r.Refresh() // unchanged
	d.set(false)
	r.Refresh() // dark -> light
	assert.Equal(t, []bool{true, false}, got)

	unregister()
	unregister()
	d.set(true)
	r.Refresh()
	assert.Len(t, got, 2)
}

func TestResolver_ListenerMayReadResolver(t *testing.T) {
	r := NewResolver(nil)
	r.RegisterDetector(answering("d", 1, true))

	var seen port.ColorSchemePreference
	r.OnChange(func(port.ColorSchemePreference) { seen = r.Resolve() })

	r.Refresh()
	assert.True(t, seen.PrefersDark)
}

func TestResolver_DetectorsOrder(t *testing.T) {
	r := NewResolver(nil)
	r.RegisterDetector(answering("low", 1, false))
	r.RegisterDetector(answering("high", 100, false))
	r.RegisterDetector(answering("mid-a", 20, false))
	r.RegisterDetector(answering("mid-b", 20, false))

	var names []string
	for _, d := range r.Detectors() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"high", "mid-a", "mid-b", "low"}, names)
}

func TestResolver_ConcurrentUse(t *testing.T) {
	r := NewResolver(nil)
	d := answering("d", 1, false)
	r.RegisterDetector(d)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for range 50 {
				r.Resolve()
				r.Refresh()
			}
		}()
		go func() {
			defer wg.Done()
			unregister := r.OnChange(func(port.ColorSchemePreference) {})
			defer unregister()
			d.set(i%2 == 0)
		}()
		go func() {
			defer wg.Done()
			r.RegisterDetector(answering("extra", i, i%2 == 0))
		}()
	}
	wg.Wait()
	assert.Len(t, r.Detectors(), 9)
}

func TestPreference_Theme(t *testing.T) {
	assert.Equal(t, entity.ThemeDark, port.ColorSchemePreference{PrefersDark: true}.Theme())
	assert.Equal(t, entity.ThemeLight, port.ColorSchemePreference{}.Theme())
}
