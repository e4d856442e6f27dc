package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kailas-cloud/resrank/internal/domain"
	"github.com/kailas-cloud/resrank/internal/domain/document"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n..."), FormatPDF},
		{"pdf leading whitespace", []byte("\r\n%PDF-1.4"), FormatPDF},
		{"text", []byte("Senior Go engineer"), FormatText},
		{"utf8 text", []byte("Café résumé"), FormatText},
		{"empty", nil, FormatUnknown},
		{"binary", []byte{0xff, 0xd8, 0xff, 0xe0}, FormatUnknown},
		{"nul bytes", []byte("a\x00b"), FormatUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.in); got != tc.want {
				t.Errorf("Detect() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	e := NewPlainText().Extract([]byte("  Go developer\n"))
	if !e.Readable() {
		t.Fatalf("expected readable, reason %q", e.Reason())
	}
	if e.Text() != "Go developer" {
		t.Errorf("Text() = %q", e.Text())
	}

	if NewPlainText().Extract([]byte{0xff, 0xfe}).Readable() {
		t.Error("invalid utf-8 must be unreadable")
	}
	if NewPlainText().Extract([]byte("   ")).Readable() {
		t.Error("blank text must be unreadable")
	}
}

func TestPDF_Malformed(t *testing.T) {
	inputs := map[string][]byte{
		"empty":          nil,
		"header only":    []byte("%PDF-1.4\n"),
		"garbage":        []byte("%PDF-1.4\nthis is not really a pdf at all\n%%EOF"),
		"truncated xref": []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\nxref\n0 1\nstartxref\n9\n%%EOF"),
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			e := NewPDF().Extract(in)
			if e.Readable() {
				t.Fatalf("expected unreadable, got text %q", e.Text())
			}
			if !errors.Is(e.Err(), domain.ErrUnreadableDocument) {
				t.Errorf("Err() = %v", e.Err())
			}
			if e.Reason() == "" {
				t.Error("expected a reason")
			}
		})
	}
}

// buildPDF assembles a minimal PDF with one page per content stream, all
// sharing a Helvetica font resource named F1.
func buildPDF(t *testing.T, contents ...string) []byte {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	kids := make([]string, 0, len(contents))
	for _, c := range contents {
		pageNum := len(objects) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", pageNum+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(c), c),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPDF_ExtractsPagesInOrder(t *testing.T) {
	doc := buildPDF(t,
		"BT /F1 24 Tf 72 720 Td (Senior Python developer) Tj ET",
		"BT /F1 24 Tf 72 720 Td (Django and AWS) Tj ET",
	)

	for name, ext := range map[string]Extractor{"pdf": NewPDF(), "auto": NewAuto()} {
		t.Run(name, func(t *testing.T) {
			e := ext.Extract(doc)
			if !e.Readable() {
				t.Fatalf("expected readable, reason %q", e.Reason())
			}
			if want := "Senior Python developer Django and AWS"; e.Text() != want {
				t.Errorf("Text() = %q, want %q", e.Text(), want)
			}
		})
	}
}

func TestPDF_SkipsEmptyPages(t *testing.T) {
	doc := buildPDF(t,
		"0 0 10 10 re f",
		"BT /F1 12 Tf 72 720 Td (Go engineer) Tj ET",
	)

	e := NewPDF().Extract(doc)
	if !e.Readable() {
		t.Fatalf("expected readable, reason %q", e.Reason())
	}
	if e.Text() != "Go engineer" {
		t.Errorf("Text() = %q, want %q", e.Text(), "Go engineer")
	}
}

func TestPDF_AllPagesEmpty(t *testing.T) {
	doc := buildPDF(t, "0 0 10 10 re f", "0 0 20 20 re f")

	e := NewAuto().Extract(doc)
	if e.Readable() {
		t.Fatalf("expected unreadable, got text %q", e.Text())
	}
	if !strings.Contains(e.Reason(), "no extractable text") {
		t.Errorf("Reason() = %q", e.Reason())
	}
	if !errors.Is(e.Err(), domain.ErrUnreadableDocument) {
		t.Errorf("Err() = %v", e.Err())
	}
}

type stubExtractor struct {
	called bool
}

func (s *stubExtractor) Extract(_ []byte) document.Extracted {
	s.called = true
	return document.Text("stub")
}

func TestAuto_Dispatch(t *testing.T) {
	pdfStub := &stubExtractor{}
	textStub := &stubExtractor{}
	a := &Auto{pdf: pdfStub, text: textStub}

	a.Extract([]byte("%PDF-1.4"))
	if !pdfStub.called || textStub.called {
		t.Errorf("pdf dispatch: pdf=%v text=%v", pdfStub.called, textStub.called)
	}

	pdfStub.called = false
	a.Extract([]byte("plain resume"))
	if pdfStub.called || !textStub.called {
		t.Errorf("text dispatch: pdf=%v text=%v", pdfStub.called, textStub.called)
	}
}

func TestAuto_Unsupported(t *testing.T) {
	a := NewAuto()
	tests := map[string][]byte{
		"empty":  nil,
		"binary": {0x89, 'P', 'N', 'G', 0x00},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if a.Extract(in).Readable() {
				t.Error("expected unreadable")
			}
		})
	}
}

func TestAuto_HealthCheck(t *testing.T) {
	if err := NewAuto().HealthCheck(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&Auto{}).HealthCheck(context.Background()); err == nil {
		t.Error("expected error for unconfigured extractor")
	}
}
