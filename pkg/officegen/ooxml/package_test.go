package ooxml

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "<a>", "&lt;a&gt;"},
		{"quotes", `say "hi"`, "say &#34;hi&#34;"},
		{"newline kept", "a\nb", "a\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestRelsPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
		{"/word/document.xml", "word/_rels/document.xml.rels"},
		{"", "_rels/.rels"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RelsPath(tt.input), tt.input)
	}
}

func TestRelationships(t *testing.T) {
	var rels Relationships
	assert.Equal(t, "rId1", rels.Add(RelStyles, "styles.xml"))
	assert.Equal(t, "rId2", rels.AddExternal(RelHyperlink, "https://example.com/?a=1&b=2"))
	assert.Equal(t, 2, rels.Len())

	out := string(rels.Bytes())
	assert.Contains(t, out, `Id="rId1"`)
	assert.Contains(t, out, `Target="styles.xml"`)
	assert.Contains(t, out, `TargetMode="External"`)
	assert.Contains(t, out, `a=1&amp;b=2`)
}

func TestPackageWrite(t *testing.T) {
	pkg := NewPackage()
	pkg.AddPart("/word/document.xml", ContentTypeWordDocument, []byte("<doc/>"))
	pkg.AddPart("_rels/.rels", "", []byte("<rels/>"))

	data, err := pkg.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	contents := map[string]string{}
	for _, f := range zr.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		contents[f.Name] = string(b)
	}

	assert.Equal(t, []string{"[Content_Types].xml", "word/document.xml", "_rels/.rels"}, names)
	ct := contents["[Content_Types].xml"]
	assert.Contains(t, ct, `<Override PartName="/word/document.xml"`)
	assert.Contains(t, ct, `<Default Extension="rels"`)
	assert.False(t, strings.Contains(ct, `PartName="/_rels/.rels"`))
	assert.Equal(t, "<doc/>", contents["word/document.xml"])
}

func TestPackageSave(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.zip")

	pkg := NewPackage()
	pkg.AddPart("a.xml", "", []byte("<a/>"))
	require.NoError(t, pkg.Save(out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, []string{"a.xml"}, pkg.PartNames())
}

func TestSaveFileMissingDir(t *testing.T) {
	err := SaveFile(filepath.Join(t.TempDir(), "missing", "x.bin"), []byte("x"))
	assert.Error(t, err)
}
