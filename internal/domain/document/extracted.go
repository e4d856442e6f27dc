package document

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/resrank/internal/domain"
)

// Extracted is the outcome of text extraction: either readable text or an unreadable marker.
// The zero value is unreadable.
type Extracted struct {
	text     string
	readable bool
	reason   string
}

// Text creates a readable extraction result.
// Whitespace-only text counts as nothing extractable.
func Text(s string) Extracted {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unreadable("no extractable text")
	}
	return Extracted{text: s, readable: true}
}

// Unreadable creates an unreadable extraction result with a short reason.
func Unreadable(reason string) Extracted {
	return Extracted{reason: reason}
}

// Readable reports whether text was extracted.
func (e Extracted) Readable() bool { return e.readable }

// Text returns the extracted text (empty when unreadable).
func (e Extracted) Text() string { return e.text }

// Reason returns why the document is unreadable (empty when readable).
func (e Extracted) Reason() string { return e.reason }

// Err returns nil for readable results, otherwise an error wrapping domain.ErrUnreadableDocument.
func (e Extracted) Err() error {
	if e.readable {
		return nil
	}
	if e.reason == "" {
		return domain.ErrUnreadableDocument
	}
	return fmt.Errorf("%w: %s", domain.ErrUnreadableDocument, e.reason)
}
