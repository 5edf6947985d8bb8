package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "delayalert.log")

	logger, err := New(path, "info")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("routes loaded", zap.Int("count", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"routes loaded"`)
	assert.Contains(t, out, `"count":3`)
	assert.False(t, strings.Contains(out, "hidden"), "debug is below info")
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
