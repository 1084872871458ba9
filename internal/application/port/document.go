package port

import "context"

// Document exposes the mutations a theme needs on a document root
// (the <html> element of a page, or an equivalent).
type Document interface {
	// RemoveClasses removes the given class names from the root.
	RemoveClasses(ctx context.Context, names ...string) error

	// AddClass adds a class name to the root.
	AddClass(ctx context.Context, name string) error

	// SetAttribute sets an attribute on the root.
	SetAttribute(ctx context.Context, name, value string) error

	// SetColorScheme sets the root's color-scheme style property.
	SetColorScheme(ctx context.Context, scheme string) error

	// InjectStyle appends a global stylesheet and returns a function removing it.
	InjectStyle(ctx context.Context, css string) (remove func(), err error)
}

// FrameScheduler runs one-shot tasks on the next paint frame.
type FrameScheduler interface {
	// RequestFrame schedules fn to run exactly once on the next frame.
	RequestFrame(fn func())
}

// ScriptRunner evaluates JavaScript in a page.
type ScriptRunner interface {
	// RunJavaScript evaluates script in the page's main world.
	RunJavaScript(ctx context.Context, script string) error
}
