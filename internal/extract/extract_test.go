package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtractTXT(t *testing.T) {
	got, err := ExtractText("notes.TXT", []byte("line one\r\nline two\n\n\n\nline three"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "line one\nline two\n\nline three" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestExtractTXTEmpty(t *testing.T) {
	_, err := ExtractText("empty.txt", []byte("   \n  "))
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("slides.pptx", []byte("whatever"))
	var ue *UnsupportedFormatError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if ue.Ext != ".pptx" {
		t.Errorf("expected extension .pptx, got %q", ue.Ext)
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	doc := `<w:document><w:body>` +
		`<w:p><w:r><w:t>First paragraph &amp; more</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second</w:t><w:tab/><w:t>tabbed</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := ExtractText("doc.docx", buildDOCX(t, doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "First paragraph & more") {
		t.Errorf("entities not decoded: %q", got)
	}
	if !strings.Contains(got, "Second\ttabbed") {
		t.Errorf("tab not preserved: %q", got)
	}
	if strings.Contains(got, "<w:") {
		t.Errorf("tags leaked into output: %q", got)
	}
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/styles.xml")
	w.Write([]byte("<styles/>"))
	zw.Close()

	_, err := ExtractText("doc.docx", buf.Bytes())
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
}

func TestExtractDOCXNotAZip(t *testing.T) {
	_, err := ExtractText("doc.docx", []byte("definitely not a zip archive"))
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
}

func TestExtractPDFGarbage(t *testing.T) {
	_, err := ExtractText("doc.pdf", []byte("not a pdf"))
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
}
