package deck

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/ukaji3/officegen-go/pkg/officegen/parser"
	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

func generateAndRead(t *testing.T, name string) *models.DeckData {
	t.Helper()
	file, err := FileName(name)
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), file)
	require.NoError(t, Generate(name, out, DefaultTheme(), nil))

	d, err := parser.ExtractSlides(out, "standard")
	require.NoError(t, err)
	return d
}

func allTexts(d *models.DeckData) []string {
	var out []string
	for _, s := range d.Slides {
		out = append(out, s.Texts()...)
	}
	return out
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"pitch", "closing", "gtm", "options", "device-frames"}, Names())
	for _, name := range Names() {
		_, err := FileName(name)
		assert.NoError(t, err, name)
	}
}

func TestBuildUnknownDeck(t *testing.T) {
	_, err := Build("keynote", DefaultTheme())
	require.Error(t, err)
	assert.True(t, errors.Is(err, officegen.ErrUnknownDeck))

	_, err = FileName("keynote")
	assert.True(t, errors.Is(err, officegen.ErrUnknownDeck))
}

func TestSlideCounts(t *testing.T) {
	tests := []struct {
		name   string
		slides int
	}{
		{"pitch", 11},
		{"closing", 5},
		{"gtm", 7},
		{"options", 4},
		{"device-frames", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.name, DefaultTheme())
			require.NoError(t, err)
			assert.Len(t, p.Slides(), tt.slides)

			d := generateAndRead(t, tt.name)
			require.Len(t, d.Slides, tt.slides)
			for _, s := range d.Slides {
				assert.Equal(t, "000000", s.Background, "slide %d", s.Index)
			}
		})
	}
}

func TestDeckTexts(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{"pitch", []string{
			"Axiom Forge",
			"ROUTINES THAT TURN INTENT INTO IDENTITY",
			"// Context",
			"Routines are the new obsession",
			"The Team Behind Axiom Forge",
		}},
		{"closing", []string{
			"THANK YOU FOR ARRIVING THIS FAR.",
			"TRY THE PROTOTYPE",
			"SYSTEM INITIALIZATION COMPLETE",
			"axiom-forge -- init",
			"FROM THEORY TO PRACTICE.",
			"MINDSET #001",
		}},
		{"gtm", []string{
			"Go-to-Market Slide Options",
			"// GO-TO-MARKET / OPTION 1",
			"4-Channel Beta Recruitment Strategy",
			"MIT-to-Market Pipeline",
			"Which Strategy Fits Best?",
			"Credibility + Access (Recommended)",
		}},
		{"options", []string{
			"SLIDE 8 - OPTION B: TIERED LAYOUT",
			"Freemium Core",
			"$4.99/mo",
			"$4,500",
			"Launch App",
		}},
		{"device-frames", []string{
			"DEMO SLIDE - OPTION B: DEVICE FRAMES",
			"Experience Axiom Forge in Action",
			"Onboarding Flow",
			"Watch: 2 min",
			"LAUNCH APP",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := allTexts(generateAndRead(t, tt.name))
			for _, want := range tt.texts {
				assert.Contains(t, texts, want)
			}
		})
	}
}

func TestClosingSlideCaptions(t *testing.T) {
	d := generateAndRead(t, "closing")
	captions := []string{
		"OPTION 1: SPLIT SCREEN",
		"OPTION 2: PRODUCT CONTEXT",
		"OPTION 3: PHILOSOPHY FIRST",
		"OPTION 4: SYSTEM TERMINAL",
		"OPTION 5: CARD REVEAL",
	}
	for i, caption := range captions {
		assert.Contains(t, d.Slides[i].Texts(), caption)
	}
}

func TestCanvasTextBoxWrap(t *testing.T) {
	c := NewCanvas(pptx.New(), DefaultTheme())
	assert.False(t, c.H3("grows", 0, 0, in(2), c.P.TextPrimary).Text().WordWrap)

	c.Wrap = true
	assert.True(t, c.H3("wraps", 0, 0, in(2), c.P.TextPrimary).Text().WordWrap)
}

func firstSlideXML(t *testing.T, name string) string {
	t.Helper()
	file, err := FileName(name)
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), file)
	require.NoError(t, Generate(name, out, DefaultTheme(), nil))

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	rc, err := zr.Open("ppt/slides/slide1.xml")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestDeckTextWrap(t *testing.T) {
	tests := []struct {
		name   string
		noWrap bool
	}{
		{"pitch", true},
		{"options", true},
		{"device-frames", true},
		{"closing", false},
		{"gtm", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xml := firstSlideXML(t, tt.name)
			if tt.noWrap {
				assert.Contains(t, xml, `wrap="none"`)
			} else {
				assert.NotContains(t, xml, `wrap="none"`)
				assert.Contains(t, xml, `wrap="square"`)
			}
		})
	}
}

func TestPitchSlideSizes(t *testing.T) {
	d := generateAndRead(t, "pitch")
	// 13.333in truncates to 1279px at 96 DPI.
	assert.Equal(t, 1279, d.SlideWidth)
	assert.Equal(t, 720, d.SlideHeight)
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := GenerateAll(dir, DefaultTheme(), nil)
	require.NoError(t, err)
	require.Len(t, paths, len(Names()))

	for _, name := range Names() {
		file, err := FileName(name)
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, name)
	}
}

func TestThemeAppliesBackground(t *testing.T) {
	theme := DefaultTheme()
	theme.Palette.BG = "101010"

	p, err := Build("device-frames", theme)
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "frames.pptx")
	require.NoError(t, p.Save(out))

	d, err := parser.ExtractSlides(out, "light")
	require.NoError(t, err)
	require.Len(t, d.Slides, 1)
	assert.Equal(t, "101010", d.Slides[0].Background)
	assert.Empty(t, d.Slides[0].Shapes)
}
