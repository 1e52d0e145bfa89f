package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("cv.pdf"))
	assert.True(t, Supported("cv.PDF"))
	assert.True(t, Supported("cv.docx"))
	assert.True(t, Supported("cv.doc"))
	assert.False(t, Supported("cv.txt"))
	assert.False(t, Supported("cv"))
}

func TestText_UnsupportedExtension(t *testing.T) {
	_, err := Text("resume.txt")
	require.Error(t, err)
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestText_MissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

// writeMinimalDocx builds a bare zip with just word/document.xml, enough for
// the fallback reader.
func writeMinimalDocx(t *testing.T, path, body string) {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	zw := zip.NewWriter(file)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestText_DocxFallbackReadsTextNodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	writeMinimalDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Ousmane SY</w:t></w:r></w:p>
    <w:p><w:r><w:t>Data Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := Text(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Ousmane SY")
	assert.Contains(t, text, "Data Engineer")
}

func TestText_DocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")

	file, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(file)
	w, err := zw.Create("other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, file.Close())

	_, err = Text(path)
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

func TestText_BlankDocumentIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	writeMinimalDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>   </w:t></w:r></w:p></w:body>
</w:document>`)

	_, err := Text(path)
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}
