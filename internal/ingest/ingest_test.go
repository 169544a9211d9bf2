package ingest

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Governing Law</w:t></w:r></w:p>
<w:p>
<w:r><w:t xml:space="preserve">This agreement is governed by </w:t></w:r>
<w:r><w:rPr><w:b/></w:rPr><w:t>Indian</w:t></w:r>
<w:r><w:rPr><w:i/><w:b w:val="0"/></w:rPr><w:t xml:space="preserve"> law &lt;script&gt;</w:t></w:r>
</w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell one</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p></w:p>
</w:body>
</w:document>`

func writeDOCX(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	ct, _ := zw.Create("[Content_Types].xml")
	ct.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`))
	w, _ := zw.Create(docxBody)
	w.Write([]byte(body))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return path
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		expected documentModel.DocType
	}{
		{"a.bin", "application/pdf", documentModel.PDF},
		{"contract.PDF", "", documentModel.PDF},
		{"a", mimeDOCX, documentModel.DOCX},
		{"contract.docx", "application/octet-stream", documentModel.DOCX},
		{"old.doc", "", documentModel.DOC},
		{"old", "application/msword", documentModel.DOC},
		{"notes", "text/plain; charset=utf-8", documentModel.TXT},
		{"notes.txt", "", documentModel.TXT},
		{"image.png", "image/png", documentModel.UNSUPPORTED},
	}

	for _, tt := range tests {
		if got := Detect(tt.name, tt.mimeType); got != tt.expected {
			t.Errorf("Detect(%q, %q) = %v; want %v", tt.name, tt.mimeType, got, tt.expected)
		}
	}
}

func TestAdmit_Warnings(t *testing.T) {
	if _, w := Admit("old.doc", ""); w != WarningDOC {
		t.Errorf("doc warning = %q", w)
	}
	if _, w := Admit("photo.png", "image/png"); w != WarningUnsupported {
		t.Errorf("unsupported warning = %q", w)
	}
	if dt, w := Admit("a.pdf", ""); w != "" || dt != documentModel.PDF {
		t.Errorf("pdf should be admitted, got %v %q", dt, w)
	}
}

func TestConvert_Text(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("line one\nbad \xff byte"))

	conv, err := Convert(context.Background(), path, documentModel.TXT)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if conv.ContentKind != documentModel.ContentText {
		t.Errorf("kind = %s", conv.ContentKind)
	}
	if conv.Content != "line one\nbad \uFFFD byte" {
		t.Errorf("content = %q", conv.Content)
	}
	if conv.Blob != nil {
		t.Error("text conversion should not carry a blob")
	}
}

func TestConvert_DOCX(t *testing.T) {
	path := writeDOCX(t, testDocumentXML)

	conv, err := Convert(context.Background(), path, documentModel.DOCX)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if conv.ContentKind != documentModel.ContentHTML {
		t.Errorf("kind = %s", conv.ContentKind)
	}

	for _, want := range []string{
		"<h1>Governing Law</h1>",
		"<strong>Indian</strong>",
		"<em> law &lt;script&gt;</em>",
		"<p>Cell one</p>",
	} {
		if !strings.Contains(conv.Content, want) {
			t.Errorf("html missing %q:\n%s", want, conv.Content)
		}
	}
	if strings.Contains(conv.Content, "<p></p>") {
		t.Error("empty paragraphs should be dropped")
	}
	if !strings.Contains(conv.Text, "Governing Law") {
		t.Errorf("text = %q", conv.Text)
	}
}

func TestParseDocumentXML_TextBoxKeepsOuterRuns(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p>
<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">Before box </w:t></w:r>
<w:r><w:pict><w:txbxContent><w:p><w:r><w:t>Inside box</w:t></w:r></w:p></w:txbxContent></w:pict><w:t xml:space="preserve"> anchor</w:t></w:r>
<w:r><w:t xml:space="preserve"> after box</w:t></w:r>
</w:p>
</w:body></w:document>`

	paragraphs, err := parseDocumentXML(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parseDocumentXML failed: %v", err)
	}
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %+v", paragraphs)
	}
	if got := paragraphText(paragraphs[0]); got != "Inside box" {
		t.Errorf("text box paragraph = %q", got)
	}
	if got := paragraphText(paragraphs[1]); got != "Before box  anchor after box" {
		t.Errorf("outer paragraph = %q", got)
	}
	if !paragraphs[1].Runs[0].Bold {
		t.Error("outer run formatting lost")
	}
}

func TestConvert_PDFKeepsBlobWhenTextFails(t *testing.T) {
	data := []byte("%PDF-1.4 not really a pdf")
	path := writeFile(t, "scan.pdf", data)

	conv, err := Convert(context.Background(), path, documentModel.PDF)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if conv.ContentKind != documentModel.ContentURL {
		t.Errorf("kind = %s", conv.ContentKind)
	}
	if conv.PreviewToken == "" || conv.Content != config.PreviewRoutePrefix+conv.PreviewToken {
		t.Errorf("content = %q token = %q", conv.Content, conv.PreviewToken)
	}
	if conv.Blob == nil || string(conv.Blob.Data) != string(data) || conv.Blob.ContentType != "application/pdf" {
		t.Errorf("blob = %+v", conv.Blob)
	}
	if conv.Text != "" {
		t.Errorf("expected no text, got %q", conv.Text)
	}
}

func TestConvert_Unsupported(t *testing.T) {
	path := writeFile(t, "old.doc", []byte("x"))
	_, err := Convert(context.Background(), path, documentModel.DOC)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("\uFEFFhello"))
	text, err := ExtractText(context.Background(), path, documentModel.TXT)
	if err != nil || text != "hello" {
		t.Errorf("ExtractText = %q, %v", text, err)
	}

	bad := writeFile(t, "broken.pdf", []byte("nope"))
	if _, err := ExtractText(context.Background(), bad, documentModel.PDF); err == nil {
		t.Error("expected error for unreadable pdf")
	}

	if _, err := ExtractText(context.Background(), path, documentModel.UNSUPPORTED); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestHeadingLevel(t *testing.T) {
	cases := map[string]int{"Heading1": 1, "heading 3": 3, "Title": 1, "Normal": 0, "Heading9": 0}
	for style, want := range cases {
		if got := headingLevel(style); got != want {
			t.Errorf("headingLevel(%q) = %d; want %d", style, got, want)
		}
	}
}
