package colorscheme

import "time"

// NewDefaultResolver creates a resolver with every built-in detector registered.
func NewDefaultResolver(config ConfigProvider) *Resolver {
	r := NewResolver(config)
	r.RegisterDetector(NewPortalDetector())
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewDefaultsDetector())
	r.RegisterDetector(NewGsettingsDetector())
	r.RegisterDetector(NewTerminalDetector())
	return r
}

// DefaultSource listens to the portal and falls back to polling every pollInterval.
func DefaultSource(debounce, pollInterval time.Duration) Source {
	return FallbackSource(PortalSource(debounce), PollSource(pollInterval))
}
