// Package extract turns uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kailas-cloud/resrank/internal/domain/document"
)

// PDF extracts text from PDF documents page by page.
type PDF struct{}

// NewPDF creates a PDF extractor.
func NewPDF() *PDF { return &PDF{} }

// Extract returns the text of all pages joined by single spaces.
// Parse failures (including parser panics) and documents whose pages are all
// empty yield an unreadable result; no error is propagated.
func (p *PDF) Extract(content []byte) (ext document.Extracted) {
	defer func() {
		if r := recover(); r != nil {
			ext = document.Unreadable(fmt.Sprintf("parse pdf: %v", r))
		}
	}()

	if len(content) == 0 {
		return document.Unreadable("empty file")
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return document.Unreadable("parse pdf: " + err.Error())
	}

	pages := make([]string, 0, reader.NumPage())
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			return document.Unreadable(fmt.Sprintf("extract page %d: %v", i, err))
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return document.Unreadable("no extractable text (scanned or image-only document?)")
	}
	return document.Text(strings.Join(pages, " "))
}
