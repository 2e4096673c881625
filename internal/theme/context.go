package theme

import (
	"context"

	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

type providerKey struct{}

// WithProvider scopes p to ctx and everything derived from it.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider scoped to ctx.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx != nil {
		if p, ok := ctx.Value(providerKey{}).(*Provider); ok && p != nil {
			return p, nil
		}
	}
	return nil, apperrors.NewProviderError("theme.Provider", "theme.Use")
}

// Use reads the scoped provider. Calling it outside a provider scope is a programming
// error and panics with the missing-provider error.
func Use(ctx context.Context) Value {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p.Read()
}
