package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeOverrides(t *testing.T) {
	path := writeTheme(t, `
palette:
  bg: "#0d0d0d"
  accent_green: 00ff88
fonts:
  sans: Helvetica
`)
	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, pptx.Color("0D0D0D"), theme.Palette.BG)
	assert.Equal(t, pptx.Color("00FF88"), theme.Palette.AccentGreen)
	assert.Equal(t, "Helvetica", theme.Fonts.Sans)

	def := DefaultTheme()
	assert.Equal(t, def.Palette.AccentPurple, theme.Palette.AccentPurple)
	assert.Equal(t, def.Fonts.Mono, theme.Fonts.Mono)
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"short colour", "palette:\n  bg: fff\n", "palette.bg"},
		{"not hex", "palette:\n  text_muted: GGGGGG\n", "palette.text_muted"},
		{"bad yaml", "palette: [\n", "parse theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheme(writeTheme(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestThemeFonts(t *testing.T) {
	theme := DefaultTheme()

	sans := theme.Sans(20, "FFFFFF")
	assert.Equal(t, "Arial Black", sans.Name)
	assert.True(t, sans.Bold)

	body := theme.Body(12, false, "C0C0C0")
	assert.Equal(t, "Arial", body.Name)
	assert.False(t, body.Bold)
	assert.Equal(t, 12.0, body.Size)
}
