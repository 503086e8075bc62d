package deck

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

type entry struct {
	title string
	file  string
	build func(*pptx.Presentation, Theme)
}

var decks = map[string]entry{
	"pitch":         {"Axiom Forge Pitch Deck", "axiom-forge-pitch-deck-v3.pptx", buildPitch},
	"closing":       {"Closing Slide Options", "closing-slide-options.pptx", buildClosing},
	"gtm":           {"Go-to-Market Slide Options", "gtm-slide-options.pptx", buildGTM},
	"options":       {"Slide Options", "slide-options-v3.pptx", buildOptions},
	"device-frames": {"Demo Slide: Device Frames", "slide-options-v3-device-frames.pptx", buildDeviceFrames},
}

// Names returns the deck names in build order.
func Names() []string {
	return []string{"pitch", "closing", "gtm", "options", "device-frames"}
}

func lookup(name string) (entry, error) {
	s, ok := decks[name]
	if !ok {
		return entry{}, fmt.Errorf("%w: %q (want one of %v)", officegen.ErrUnknownDeck, name, Names())
	}
	return s, nil
}

// FileName returns the default output file name for a deck.
func FileName(name string) (string, error) {
	s, err := lookup(name)
	if err != nil {
		return "", err
	}
	return s.file, nil
}

// Build lays out the named deck with theme t.
func Build(name string, t Theme) (*pptx.Presentation, error) {
	s, err := lookup(name)
	if err != nil {
		return nil, err
	}
	p := pptx.New()
	p.Title = s.title
	s.build(p, t)
	if len(p.Slides()) == 0 {
		return nil, officegen.NewGenerationError(name, "slides", errors.New("no slides"))
	}
	return p, nil
}

// Generate builds the named deck and saves it to path.
func Generate(name, path string, t Theme, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p, err := Build(name, t)
	if err != nil {
		return err
	}
	if err := p.Save(path); err != nil {
		return officegen.NewGenerationError(name, "save", err)
	}
	logger.Info("created", "deck", name, "path", path, "slides", len(p.Slides()))
	return nil
}

// GenerateAll writes every deck into dir under its default file name and
// returns the written paths.
func GenerateAll(dir string, t Theme, logger *slog.Logger) ([]string, error) {
	var paths []string
	for _, name := range Names() {
		path := filepath.Join(dir, decks[name].file)
		if err := Generate(name, path, t, logger); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
