// Package textextract turns uploaded PDF and DOCX documents into plain text.
package textextract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"museum-review/internal/domain"
)

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is wrapped in an ExtractionError for other formats.
var ErrUnsupportedType = errors.New("unsupported document type")

// Extractor reads plain text out of a document.
type Extractor interface {
	ExtractText(filename string, data []byte, mimeType string) (string, error)
}

// DocumentExtractor handles PDF and DOCX files.
type DocumentExtractor struct{}

// New creates a DocumentExtractor.
func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Kind resolves the document kind ("pdf" or "docx") from the MIME type,
// falling back to the file extension. Empty when unsupported.
func Kind(filename, mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0])) {
	case MimePDF:
		return "pdf"
	case MimeDOCX:
		return "docx"
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	}
	return ""
}

// ExtractText returns the document text. Any failure is an
// *domain.ExtractionError naming the file.
func (e *DocumentExtractor) ExtractText(filename string, data []byte, mimeType string) (string, error) {
	var (
		text string
		err  error
	)
	switch Kind(filename, mimeType) {
	case "pdf":
		text, err = pdfText(data)
	case "docx":
		text, err = docxText(data)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}
	if err != nil {
		return "", &domain.ExtractionError{Filename: filename, Err: err}
	}
	return text, nil
}

func pdfText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", errors.New("open docx: word/document.xml missing")
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("open docx body: %w", err)
	}
	defer rc.Close()

	var (
		out    strings.Builder
		inText bool
	)
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab", "br":
				out.WriteByte(' ')
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}
	return out.String(), nil
}
