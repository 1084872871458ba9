// Package jsruntime runs document scripts in an embedded JavaScript engine.
package jsruntime

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/frame"
	"github.com/bnema/shade/internal/logging"
)

//go:embed shim.js
var shimScript string

var (
	_ port.ScriptRunner = (*Page)(nil)
	_ port.SystemScheme = (*pageScheme)(nil)
)

// Page is a headless page: a sobek runtime holding a minimal DOM. Every
// entry into the runtime is serialized because sobek is not goroutine-safe.
type Page struct {
	mu          sync.Mutex
	vm          *sobek.Runtime
	host        *sobek.Object
	frames      port.FrameScheduler
	prefersDark bool

	subsMu sync.Mutex
	subs   map[int]*subscription
	nextID int
}

// Option configures a Page.
type Option func(*Page)

// WithFrames sets the scheduler backing requestAnimationFrame.
func WithFrames(frames port.FrameScheduler) Option {
	return func(p *Page) { p.frames = frames }
}

// WithPrefersDark sets the initial prefers-color-scheme answer.
func WithPrefersDark(dark bool) Option {
	return func(p *Page) { p.prefersDark = dark }
}

// NewPage creates a page with an empty <html> root.
func NewPage(opts ...Option) (*Page, error) {
	p := &Page{
		vm:     sobek.New(),
		frames: frame.NewTimer(0),
		subs:   make(map[int]*subscription),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.host = p.vm.NewObject()
	if err := p.host.Set("prefersDark", func() bool { return p.prefersDark }); err != nil {
		return nil, fmt.Errorf("install host bindings: %w", err)
	}
	if err := p.host.Set("requestFrame", p.requestFrame); err != nil {
		return nil, fmt.Errorf("install host bindings: %w", err)
	}
	if err := p.vm.Set("__shade", p.host); err != nil {
		return nil, fmt.Errorf("install host bindings: %w", err)
	}
	if _, err := p.vm.RunScript("shim.js", shimScript); err != nil {
		return nil, fmt.Errorf("load dom shim: %w", err)
	}
	return p, nil
}

// RunJavaScript implements port.ScriptRunner.
func (p *Page) RunJavaScript(ctx context.Context, script string) error {
	_, err := p.eval(ctx, script)
	return err
}

// Eval evaluates expr and returns its exported Go value.
func (p *Page) Eval(ctx context.Context, expr string) (any, error) {
	v, err := p.eval(ctx, expr)
	if err != nil {
		return nil, err
	}
	return v.Export(), nil
}

func (p *Page) eval(ctx context.Context, script string) (sobek.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { p.vm.Interrupt(ctx.Err()) })
	defer func() {
		stop()
		p.vm.ClearInterrupt()
	}()

	v, err := p.vm.RunString(script)
	if err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return nil, fmt.Errorf("script interrupted: %w", ctx.Err())
		}
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	return v, nil
}

// requestFrame backs window.requestAnimationFrame. It runs inside the VM,
// so the page lock is already held.
func (p *Page) requestFrame(call sobek.FunctionCall) sobek.Value {
	fn, ok := sobek.AssertFunction(call.Argument(0))
	if !ok {
		panic(p.vm.NewTypeError("requestAnimationFrame: callback is not a function"))
	}
	p.frames.RequestFrame(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if _, err := fn(sobek.Undefined()); err != nil {
			logging.FromContext(context.Background()).Warn().Err(err).Msg("animation frame callback failed")
		}
	})
	return sobek.Undefined()
}

// SetPrefersDark changes the page's prefers-color-scheme answer and fires
// media query change listeners, then Go subscribers, when it differs.
func (p *Page) SetPrefersDark(ctx context.Context, dark bool) error {
	p.mu.Lock()
	if p.prefersDark == dark {
		p.mu.Unlock()
		return nil
	}
	p.prefersDark = dark
	p.mu.Unlock()

	if err := p.RunJavaScript(ctx, "__shade.emitMediaChange();"); err != nil {
		return err
	}

	theme := entity.ThemeLight
	if dark {
		theme = entity.ThemeDark
	}
	p.subsMu.Lock()
	subs := make([]*subscription, 0, len(p.subs))
	for _, s := range p.subs {
		subs = append(subs, s)
	}
	p.subsMu.Unlock()
	for _, s := range subs {
		s.deliver(theme)
	}
	return nil
}

// Scheme returns the page's prefers-color-scheme as a port.SystemScheme.
func (p *Page) Scheme() port.SystemScheme {
	return &pageScheme{page: p}
}

// Markup renders the root start tag, e.g. <html class="dark" style="color-scheme: dark">.
func (p *Page) Markup(ctx context.Context) (string, error) {
	return p.evalString(ctx, "__shade.startTag(document.documentElement)")
}

// HasClass reports whether the root carries class name.
func (p *Page) HasClass(ctx context.Context, name string) (bool, error) {
	v, err := p.eval(ctx, "document.documentElement.classList.contains("+quote(name)+")")
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

// Attribute returns a root attribute.
func (p *Page) Attribute(ctx context.Context, name string) (string, bool, error) {
	v, err := p.eval(ctx, "document.documentElement.getAttribute("+quote(name)+")")
	if err != nil {
		return "", false, err
	}
	if sobek.IsNull(v) || sobek.IsUndefined(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}

// ColorScheme returns the root's color-scheme style property.
func (p *Page) ColorScheme(ctx context.Context) (string, error) {
	return p.evalString(ctx, "document.documentElement.style.colorScheme || ''")
}

// StyleSheets returns the text of every <style> element, in document order.
func (p *Page) StyleSheets(ctx context.Context) ([]string, error) {
	v, err := p.eval(ctx, "JSON.stringify(__shade.styleSheets())")
	if err != nil {
		return nil, err
	}
	var sheets []string
	if err := json.Unmarshal([]byte(v.String()), &sheets); err != nil {
		return nil, fmt.Errorf("decode stylesheets: %w", err)
	}
	return sheets, nil
}

// MediaListeners returns the number of registered media query change listeners.
func (p *Page) MediaListeners(ctx context.Context) (int, error) {
	v, err := p.eval(ctx, "__shade.mediaListenerCount()")
	if err != nil {
		return 0, err
	}
	return int(v.ToInteger()), nil
}

func (p *Page) evalString(ctx context.Context, expr string) (string, error) {
	v, err := p.eval(ctx, expr)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// pageScheme adapts the page's media state to port.SystemScheme.
type pageScheme struct {
	page *Page
}

func (s *pageScheme) Current() entity.ResolvedTheme {
	s.page.mu.Lock()
	defer s.page.mu.Unlock()
	if s.page.prefersDark {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

func (s *pageScheme) Subscribe(callback func(entity.ResolvedTheme)) func() {
	p := s.page
	sub := &subscription{fn: callback, active: true}

	p.subsMu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = sub
	p.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.cancel()
			p.subsMu.Lock()
			delete(p.subs, id)
			p.subsMu.Unlock()
		})
	}
}

// subscription gates deliveries so none happens once cancel has returned.
type subscription struct {
	mu     sync.Mutex
	fn     func(entity.ResolvedTheme)
	active bool
}

func (s *subscription) deliver(theme entity.ResolvedTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.fn(theme)
	}
}

func (s *subscription) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
