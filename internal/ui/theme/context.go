package theme

import "context"

type providerKey struct{}

// MissingProviderError is returned when the theme is read from a context
// that carries no provider.
type MissingProviderError struct{}

func (*MissingProviderError) Error() string {
	return "theme: no provider in context, wrap the caller with theme.WithProvider"
}

// WithProvider returns a context carrying p. An inner provider shadows an outer one.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider carried by ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// Use returns the current value of the provider carried by ctx.
func Use(ctx context.Context) (Value, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Value{}, &MissingProviderError{}
	}
	return p.Value(), nil
}

// MustUse is Use for callers that treat a missing provider as a programming error.
func MustUse(ctx context.Context) Value {
	v, err := Use(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// WithTheme wraps fn so it receives the current theme value alongside its props.
func WithTheme[P, R any](fn func(ctx context.Context, props P, theme Value) R) func(ctx context.Context, props P) (R, error) {
	return func(ctx context.Context, props P) (R, error) {
		v, err := Use(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, props, v), nil
	}
}
