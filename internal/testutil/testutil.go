package testutil

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/evmkit/chain-resolver/internal/config"
	"github.com/evmkit/chain-resolver/internal/resolver"
	"github.com/evmkit/chain-resolver/pkg/types"
)

// QuietLogger returns a logger that stays silent during tests.
func QuietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// TestResolver builds a resolver without an alias overlay.
func TestResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	r, err := resolver.New(QuietLogger(), "", time.Minute, 5*time.Minute)
	require.NoError(t, err)
	return r
}

// TestConfig returns a config usable by handler tests.
func TestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Jobs = types.JobConfig{MaxConcurrent: 1}
	return cfg
}
