package cache

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"storefront/config"
)

func TestNewCartCache_MissingConfigRejected(t *testing.T) {
	_, err := NewCartCache(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.Default(),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache configuration")
}
