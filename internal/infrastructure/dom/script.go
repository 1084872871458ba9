package dom

//go:generate mockgen -destination=mocks/mock_runner.go -package=mock_dom github.com/bnema/shade/internal/application/port ScriptRunner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

// Compile-time interface check.
var _ port.Document = (*Script)(nil)

// styleMarker tags the <style> elements injected by Script.
const styleMarker = "data-shade-style"

// rootScript wraps a statement operating on the document root.
const rootScript = `(function() {
  var root = document.documentElement;
  %s
})();`

const injectStyleScript = `(function() {
  var style = document.createElement('style');
  style.setAttribute('%s', %s);
  style.textContent = %s;
  (document.head || document.documentElement).appendChild(style);
})();`

const removeStyleScript = `(function() {
  var nodes = document.querySelectorAll('style[%s="' + %s + '"]');
  for (var i = 0; i < nodes.length; i++) {
    nodes[i].parentNode.removeChild(nodes[i]);
  }
})();`

// Script is a document whose root lives in a JavaScript page. Every mutation
// becomes a script evaluated by the runner.
type Script struct {
	runner port.ScriptRunner
	nextID atomic.Uint64
}

// NewScript creates a document driving the page behind runner.
func NewScript(runner port.ScriptRunner) *Script {
	return &Script{runner: runner}
}

// RemoveClasses implements port.Document.
func (s *Script) RemoveClasses(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := make([]string, 0, len(names))
	for _, n := range names {
		args = append(args, quote(n))
	}
	stmt := "root.classList.remove(" + strings.Join(args, ", ") + ");"
	return s.run(ctx, fmt.Sprintf(rootScript, stmt))
}

// AddClass implements port.Document.
func (s *Script) AddClass(ctx context.Context, name string) error {
	if err := validateToken(name); err != nil {
		return err
	}
	return s.run(ctx, fmt.Sprintf(rootScript, "root.classList.add("+quote(name)+");"))
}

// SetAttribute implements port.Document.
func (s *Script) SetAttribute(ctx context.Context, name, value string) error {
	if err := validateToken(name); err != nil {
		return err
	}
	stmt := fmt.Sprintf("root.setAttribute(%s, %s);", quote(name), quote(value))
	return s.run(ctx, fmt.Sprintf(rootScript, stmt))
}

// SetColorScheme implements port.Document.
func (s *Script) SetColorScheme(ctx context.Context, scheme string) error {
	return s.run(ctx, fmt.Sprintf(rootScript, "root.style.colorScheme = "+quote(scheme)+";"))
}

// InjectStyle implements port.Document.
func (s *Script) InjectStyle(ctx context.Context, css string) (func(), error) {
	id := fmt.Sprintf("%d", s.nextID.Add(1))
	if err := s.run(ctx, fmt.Sprintf(injectStyleScript, styleMarker, quote(id), quote(css))); err != nil {
		return nil, err
	}

	// Removal runs on a later frame, after the caller's context may be done.
	ctx = context.WithoutCancel(ctx)
	return func() {
		if err := s.run(ctx, fmt.Sprintf(removeStyleScript, styleMarker, quote(id))); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("style_id", id).Msg("failed to remove injected style")
		}
	}, nil
}

func (s *Script) run(ctx context.Context, script string) error {
	if err := s.runner.RunJavaScript(ctx, script); err != nil {
		return fmt.Errorf("run document script: %w", err)
	}
	return nil
}

// quote renders s as a JavaScript string literal.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
