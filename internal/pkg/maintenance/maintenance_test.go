package maintenance

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	flag := filepath.Join(t.TempDir(), "maintenance_mode.flag")
	toggle := NewToggle(flag)

	assert.False(t, toggle.Enabled())

	require.NoError(t, toggle.Enable())
	assert.True(t, toggle.Enabled())

	require.NoError(t, toggle.Disable())
	assert.False(t, toggle.Enabled())

	// Disabling twice is not an error
	require.NoError(t, toggle.Disable())
}
