// Package pdfsplit splits a PDF into fixed-size page ranges.
package pdfsplit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ukaji3/officegen-go/pkg/officegen"
)

// DefaultPagesPerChunk is the chunk size used when none is given.
const DefaultPagesPerChunk = 20

// Chunk is one output file's page range. Pages are 1-based and inclusive.
type Chunk struct {
	Index int
	First int
	Last  int
}

// Pages returns the number of pages in the chunk.
func (c Chunk) Pages() int {
	return c.Last - c.First + 1
}

// Selection returns the range in pdfcpu page selection syntax.
func (c Chunk) Selection() string {
	return fmt.Sprintf("%d-%d", c.First, c.Last)
}

// FileName returns "<stem>_part<N>_pages<A>-<B>.pdf".
func (c Chunk) FileName(stem string) string {
	return fmt.Sprintf("%s_part%d_pages%d-%d.pdf", stem, c.Index, c.First, c.Last)
}

// Result describes a completed split.
type Result struct {
	Dir        string
	TotalPages int
	Files      []string
}

// Plan divides total pages into consecutive chunks of at most chunk pages.
func Plan(total, chunk int) []Chunk {
	if total <= 0 || chunk <= 0 {
		return nil
	}
	chunks := make([]Chunk, 0, (total+chunk-1)/chunk)
	for first := 1; first <= total; first += chunk {
		chunks = append(chunks, Chunk{
			Index: len(chunks) + 1,
			First: first,
			Last:  min(first+chunk-1, total),
		})
	}
	return chunks
}

// OutputDir returns the directory Split writes into for input.
func OutputDir(input string) string {
	return filepath.Join(filepath.Dir(input), stem(input)+"_split")
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var disableConfigDir sync.Once

func newConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Split writes input as ceil(pages/pagesPerChunk) files into OutputDir(input).
func Split(input string, pagesPerChunk int, logger *slog.Logger) (Result, error) {
	var res Result
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if pagesPerChunk <= 0 {
		return res, fmt.Errorf("%w: %d", officegen.ErrInvalidChunkSize, pagesPerChunk)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, fmt.Errorf("%w: %s", officegen.ErrFileNotFound, input)
		}
		return res, fmt.Errorf("read %s: %w", input, err)
	}

	conf := newConfig()
	total, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return res, officegen.NewGenerationError(filepath.Base(input), "chunk", fmt.Errorf("count pages: %w", err))
	}
	res.TotalPages = total
	logger.Info("processing", "file", filepath.Base(input), "pages", total)

	res.Dir = OutputDir(input)
	if err := os.MkdirAll(res.Dir, 0o755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	name := stem(input)
	for _, c := range Plan(total, pagesPerChunk) {
		path := filepath.Join(res.Dir, c.FileName(name))
		if err := writeChunk(data, c, path, conf); err != nil {
			return res, officegen.NewGenerationError(filepath.Base(path), "chunk", err)
		}
		logger.Info("chunk written", "path", filepath.Base(path), "first", c.First, "last", c.Last)
		res.Files = append(res.Files, path)
	}

	logger.Info("split complete", "chunks", len(res.Files), "dir", res.Dir)
	return res, nil
}

func writeChunk(data []byte, c Chunk, path string, conf *model.Configuration) error {
	var buf bytes.Buffer
	if err := api.Trim(bytes.NewReader(data), &buf, []string{c.Selection()}, conf); err != nil {
		return fmt.Errorf("trim pages %s: %w", c.Selection(), err)
	}
	return atomic.WriteFile(path, &buf)
}
