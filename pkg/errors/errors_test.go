package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("yodl.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "yodl.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: yodl.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("yodl.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: yodl.yaml: permission denied", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme", "must be one of [dark light]", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)
	require.Equal(t, "validation error: theme: must be one of [dark light]", err.Error())
}

func TestProviderErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewProviderError("theme.Provider", "theme.Use")

	require.ErrorIs(t, err, ErrMissingProvider)
	require.Contains(t, err.Error(), "theme.Use must be used within a theme.Provider")

	var providerErr *ProviderError
	require.ErrorAs(t, fmt.Errorf("render: %w", err), &providerErr)
	require.Equal(t, "theme.Use", providerErr.Consumer)
}

func TestRouteErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewRouteError("/nowhere")

	require.ErrorIs(t, err, ErrRouteNotFound)
	require.Equal(t, `route not found: "/nowhere"`, err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var routeErr *RouteError
	var providerErr *ProviderError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, routeErr.Error())
	require.Nil(t, providerErr.Unwrap())
}
