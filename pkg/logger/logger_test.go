package logger

import (
	"os"
	"path/filepath"
	"testing"

	"customers-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes to the configured log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.log")
		logg, closer, err := New(&config.Config{LogFile: path, LogFormat: "text"})
		require.NoError(t, err)

		logg.Info("hello")
		require.NoError(t, closer.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "hello")
		assert.Contains(t, string(content), "service=customers")
	})

	t.Run("stderr fallback without a file", func(t *testing.T) {
		logg, closer, err := New(&config.Config{LogFormat: "json"})
		require.NoError(t, err)
		require.NotNil(t, logg)
		require.NoError(t, closer.Close())
	})
}
