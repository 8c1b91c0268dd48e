package textextract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-review/internal/domain"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestKind(t *testing.T) {
	tests := []struct {
		filename string
		mime     string
		want     string
	}{
		{"paper.pdf", "", "pdf"},
		{"paper.bin", MimePDF, "pdf"},
		{"paper.bin", "application/pdf; charset=binary", "pdf"},
		{"Paper.DOCX", "application/octet-stream", "docx"},
		{"paper", MimeDOCX, "docx"},
		{"paper.doc", "application/msword", ""},
		{"notes.txt", "text/plain", ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename+" "+tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.filename, tt.mime))
		})
	}
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Bronze casting in</w:t></w:r><w:r><w:t xml:space="preserve"> Thanjavur</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Lost</w:t><w:tab/><w:t>wax</w:t></w:r></w:p>`)

	text, err := New().ExtractText("paper.docx", data, MimeDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Bronze casting in Thanjavur\nLost wax\n", text)
}

func TestExtractDocxWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = New().ExtractText("empty.docx", buf.Bytes(), MimeDOCX)

	var extractionErr *domain.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "empty.docx", extractionErr.Filename)
}

func TestExtractMalformedPDF(t *testing.T) {
	_, err := New().ExtractText("broken.pdf", []byte("%PDF-1.4 this is not really a pdf"), MimePDF)

	var extractionErr *domain.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "broken.pdf", extractionErr.Filename)
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := New().ExtractText("notes.txt", []byte("plain text"), "text/plain")

	var extractionErr *domain.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Equal(t, "notes.txt", extractionErr.Filename)
}
