// Package icons rasterises an SVG logo into square PNG app icons.
package icons

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/natefinch/atomic"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/ukaji3/officegen-go/pkg/officegen"
)

// DefaultSizes are the PWA manifest, iOS and Android icon sizes.
var DefaultSizes = []int{72, 96, 128, 144, 152, 180, 192, 384, 512}

// Failure records one size that could not be written.
type Failure struct {
	Size int
	Err  error
}

// Result lists what a Generate run wrote.
type Result struct {
	// Generated holds the written PNG paths in request order.
	Generated []string
	// Failed holds sizes that were skipped.
	Failed []Failure
}

// ParseSizes parses a comma or space separated list of pixel sizes.
func ParseSizes(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid icon size %q", f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// FileName returns the icon file name for size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return icon, nil
}

// Render draws icon scaled to a size x size image.
func Render(icon *oksvg.SvgIcon, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// Generate renders src once per size into outDir as icon-<size>.png.
// A size that fails is logged and recorded in Result.Failed; the remaining
// sizes are still written. A missing or unparsable source fails the run.
func Generate(src, outDir string, sizes []int, logger *slog.Logger) (Result, error) {
	var res Result
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, fmt.Errorf("%w: %s", officegen.ErrFileNotFound, src)
		}
		return res, fmt.Errorf("read %s: %w", src, err)
	}
	icon, err := Parse(bytes.NewReader(data))
	if err != nil {
		return res, officegen.NewGenerationError(filepath.Base(src), "icon", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}
	logger.Info("generating icons", "source", src, "out_dir", outDir, "sizes", len(sizes))

	for _, size := range sizes {
		path := filepath.Join(outDir, FileName(size))
		if err := writeIcon(icon, size, path); err != nil {
			logger.Warn("icon failed", "path", path, "size", size, "error", err)
			res.Failed = append(res.Failed, Failure{Size: size, Err: err})
			continue
		}
		logger.Info("icon generated", "path", path, "size", size)
		res.Generated = append(res.Generated, path)
	}
	return res, nil
}

func writeIcon(icon *oksvg.SvgIcon, size int, path string) error {
	img, err := Render(icon, size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
