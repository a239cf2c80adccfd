package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())

	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#7aa2f7"), p.Primary)

	_, ok = GetPalette("solarized")
	assert.False(t, ok)
}

func TestSetColorMode(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	t.Run("never renders plain text", func(t *testing.T) {
		require.NoError(t, SetColorMode(ColorNever, &bytes.Buffer{}))
		assert.Equal(t, "done", StatusStyle("done").Render("done"))
	})

	t.Run("auto is plain for non-terminals", func(t *testing.T) {
		require.NoError(t, SetColorMode(ColorAuto, &bytes.Buffer{}))
		assert.Equal(t, "todo", StatusStyle("todo").Render("todo"))
	})

	t.Run("always adds escape codes", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		require.NoError(t, SetColorMode(ColorAlways, &bytes.Buffer{}))
		got := StatusStyle("done").Render("done")
		assert.Contains(t, got, "\x1b[")
		assert.Contains(t, got, "done")
	})

	t.Run("unknown mode", func(t *testing.T) {
		assert.Error(t, SetColorMode("rainbow", &bytes.Buffer{}))
	})
}

func TestStatusStyle_Unknown(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	require.NoError(t, SetColorMode(ColorAlways, &bytes.Buffer{}))
	assert.Equal(t, "blocked", StatusStyle("blocked").Render("blocked"))
}
