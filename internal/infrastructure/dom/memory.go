// Package dom provides port.Document implementations.
package dom

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/shade/internal/application/port"
)

// Compile-time interface check.
var _ port.Document = (*Memory)(nil)

// Memory is an in-process document root: an ordered class list, attributes,
// inline style properties and the stylesheets injected into <head>.
type Memory struct {
	mu      sync.RWMutex
	classes []string
	attrs   map[string]string
	style   map[string]string
	sheets  map[int]string
	nextID  int
}

// NewMemory creates an empty root element.
func NewMemory() *Memory {
	return &Memory{
		attrs:  make(map[string]string),
		style:  make(map[string]string),
		sheets: make(map[int]string),
	}
}

// RemoveClasses implements port.Document.
func (m *Memory) RemoveClasses(_ context.Context, names ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes = slices.DeleteFunc(m.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
	return nil
}

// AddClass implements port.Document.
func (m *Memory) AddClass(_ context.Context, name string) error {
	if err := validateToken(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.classes, name) {
		m.classes = append(m.classes, name)
	}
	return nil
}

// SetAttribute implements port.Document.
func (m *Memory) SetAttribute(_ context.Context, name, value string) error {
	if err := validateToken(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == "class" {
		m.classes = strings.Fields(value)
		return nil
	}
	m.attrs[name] = value
	return nil
}

// SetColorScheme implements port.Document.
func (m *Memory) SetColorScheme(_ context.Context, scheme string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.style["color-scheme"] = scheme
	return nil
}

// InjectStyle implements port.Document.
func (m *Memory) InjectStyle(_ context.Context, css string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.sheets[id] = css

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.sheets, id)
	}, nil
}

// HasClass reports whether the root carries class name.
func (m *Memory) HasClass(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Contains(m.classes, name)
}

// Classes returns the root's class list in insertion order.
func (m *Memory) Classes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.classes)
}

// Attribute returns the value of attribute name.
func (m *Memory) Attribute(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.attrs[name]
	return v, ok
}

// ColorScheme returns the color-scheme style property.
func (m *Memory) ColorScheme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.style["color-scheme"]
}

// StyleSheets returns the injected stylesheets still attached, oldest first.
func (m *Memory) StyleSheets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int, 0, len(m.sheets))
	for id := range m.sheets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.sheets[id])
	}
	return out
}

// Markup renders the root start tag, e.g. <html class="dark" style="color-scheme: dark">.
func (m *Memory) Markup() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("<html")
	if len(m.classes) > 0 {
		fmt.Fprintf(&sb, " class=%q", strings.Join(m.classes, " "))
	}
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%q", name, m.attrs[name])
	}
	if scheme := m.style["color-scheme"]; scheme != "" {
		fmt.Fprintf(&sb, " style=%q", "color-scheme: "+scheme)
	}
	sb.WriteString(">")
	return sb.String()
}

// validateToken rejects names the DOM would refuse (empty or containing whitespace).
func validateToken(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n\r\f") {
		return fmt.Errorf("invalid token %q", name)
	}
	return nil
}
