package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/kailas-cloud/resrank/internal/domain/document"
)

// Format is a detected document format.
type Format string

// Supported formats.
const (
	FormatPDF     Format = "pdf"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

var pdfMagic = []byte("%PDF-")

// Extractor converts raw bytes into extracted text.
type Extractor interface {
	Extract(content []byte) document.Extracted
}

// Detect sniffs the document format from its content.
func Detect(content []byte) Format {
	trimmed := bytes.TrimLeft(content, "\x00\t\r\n ")
	if bytes.HasPrefix(trimmed, pdfMagic) {
		return FormatPDF
	}
	if len(content) > 0 && utf8.Valid(content) && !bytes.ContainsRune(content, 0) {
		return FormatText
	}
	return FormatUnknown
}

// PlainText passes UTF-8 text documents through unchanged.
type PlainText struct{}

// NewPlainText creates a plain text extractor.
func NewPlainText() *PlainText { return &PlainText{} }

// Extract returns the content as text; invalid UTF-8 is unreadable.
func (PlainText) Extract(content []byte) document.Extracted {
	if !utf8.Valid(content) {
		return document.Unreadable("invalid utf-8 text")
	}
	return document.Text(string(content))
}

// Auto dispatches to the PDF or plain text extractor by sniffed format.
type Auto struct {
	pdf  Extractor
	text Extractor
}

// NewAuto creates a format-sniffing extractor.
func NewAuto() *Auto {
	return &Auto{pdf: NewPDF(), text: NewPlainText()}
}

// Extract implements Extractor.
func (a *Auto) Extract(content []byte) document.Extracted {
	switch Detect(content) {
	case FormatPDF:
		return a.pdf.Extract(content)
	case FormatText:
		return a.text.Extract(content)
	default:
		if len(content) == 0 {
			return document.Unreadable("empty file")
		}
		return document.Unreadable("unsupported format")
	}
}

// HealthCheck runs a probe document through the text path.
func (a *Auto) HealthCheck(_ context.Context) error {
	if a == nil || a.pdf == nil || a.text == nil {
		return errors.New("extractor not configured")
	}
	if ext := a.Extract([]byte("health probe")); !ext.Readable() {
		return fmt.Errorf("extractor self-test: %w", ext.Err())
	}
	return nil
}
