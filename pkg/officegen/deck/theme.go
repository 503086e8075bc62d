// Package deck lays out the Axiom Forge slide decks on top of the pptx writer.
package deck

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
	"go.yaml.in/yaml/v3"
)

// Palette holds the deck colours as RRGGBB.
type Palette struct {
	BG            pptx.Color `yaml:"bg"`
	BGSecondary   pptx.Color `yaml:"bg_secondary"`
	TextPrimary   pptx.Color `yaml:"text_primary"`
	TextSecondary pptx.Color `yaml:"text_secondary"`
	TextMuted     pptx.Color `yaml:"text_muted"`
	AccentPurple  pptx.Color `yaml:"accent_purple"`
	AccentGreen   pptx.Color `yaml:"accent_green"`
	AccentRed     pptx.Color `yaml:"accent_red"`
	AccentYellow  pptx.Color `yaml:"accent_yellow"`
}

// Fonts holds the typeface names.
type Fonts struct {
	Sans     string `yaml:"sans"`
	Body     string `yaml:"body"`
	Mono     string `yaml:"mono"`
	Terminal string `yaml:"terminal"`
}

// Theme is the palette and fonts shared by every deck.
type Theme struct {
	Palette Palette `yaml:"palette"`
	Fonts   Fonts   `yaml:"fonts"`
}

// DefaultTheme returns the black Axiom Forge theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			BG:            "000000",
			BGSecondary:   "0A0A0A",
			TextPrimary:   "FFFFFF",
			TextSecondary: "C0C0C0",
			TextMuted:     "666666",
			AccentPurple:  "A78BFA",
			AccentGreen:   "CCFF00",
			AccentRed:     "FF0000",
			AccentYellow:  "FFFF00",
		},
		Fonts: Fonts{
			Sans:     "Arial Black",
			Body:     "Arial",
			Mono:     "Consolas",
			Terminal: "Courier New",
		},
	}
}

// LoadTheme reads a YAML theme file. Keys missing from the file keep their
// DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := t.normalize(); err != nil {
		return t, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// normalize strips a leading '#' and upper-cases every colour, rejecting
// values that are not six hex digits.
func (t *Theme) normalize() error {
	fields := map[string]*pptx.Color{
		"bg":             &t.Palette.BG,
		"bg_secondary":   &t.Palette.BGSecondary,
		"text_primary":   &t.Palette.TextPrimary,
		"text_secondary": &t.Palette.TextSecondary,
		"text_muted":     &t.Palette.TextMuted,
		"accent_purple":  &t.Palette.AccentPurple,
		"accent_green":   &t.Palette.AccentGreen,
		"accent_red":     &t.Palette.AccentRed,
		"accent_yellow":  &t.Palette.AccentYellow,
	}
	for key, c := range fields {
		v := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(string(*c)), "#"))
		if !isHexColor(v) {
			return fmt.Errorf("palette.%s: invalid colour %q", key, string(*c))
		}
		*c = pptx.Color(v)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}

// Font returns a pptx font in the given face.
func (t Theme) Font(name string, size float64, bold bool, color pptx.Color) pptx.Font {
	return pptx.Font{Name: name, Size: size, Bold: bold, Color: color}
}

// Sans returns the bold display font.
func (t Theme) Sans(size float64, color pptx.Color) pptx.Font {
	return t.Font(t.Fonts.Sans, size, true, color)
}

// Body returns the body font.
func (t Theme) Body(size float64, bold bool, color pptx.Color) pptx.Font {
	return t.Font(t.Fonts.Body, size, bold, color)
}
