// Package extract pulls plain text out of uploaded study material so it can
// feed structured generation.
package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError means the file was a supported format but its text could
// not be recovered, for example a damaged PDF page or an empty document.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// UnsupportedFormatError is returned for file extensions the extractor does
// not handle.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q; supported formats are .txt, .pdf, and .docx", e.Ext)
}

// ExtractText dispatches on the file extension and returns the document's
// plain text.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return extractTXT(data)
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

func extractTXT(data []byte) (string, error) {
	text := normalizeText(string(data))
	if text == "" {
		return "", &ExtractionError{Message: "file contains no text"}
	}
	return text, nil
}

// extractPDF reads pages in order. A single unreadable page fails the whole
// extraction: a silently truncated document would produce flashcards that
// miss part of the material.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open PDF: %v", err)}
	}

	var b strings.Builder
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read page %d of %d", i, total)}
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read page %d of %d", i, total)}
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	out := normalizeText(b.String())
	if out == "" {
		return "", &ExtractionError{Message: "PDF contains no extractable text"}
	}
	return out, nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open DOCX: %v", err)}
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read DOCX contents: %v", err)}
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read DOCX contents: %v", err)}
		}

		text := normalizeText(stripDocXML(string(raw)))
		if text == "" {
			return "", &ExtractionError{Message: "DOCX contains no text"}
		}
		return text, nil
	}

	return "", &ExtractionError{Message: "DOCX has no word/document.xml entry"}
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

// stripDocXML turns WordprocessingML into plain text. Paragraph ends and
// explicit breaks become newlines before the remaining tags are dropped.
func stripDocXML(s string) string {
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")
	s = xmlTag.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	return s
}

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = excessBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
