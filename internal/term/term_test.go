package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/metagetter/internal/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())

	Configure(config.ColorNever)
	assert.False(t, Enabled())
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular file is not a terminal")
}
