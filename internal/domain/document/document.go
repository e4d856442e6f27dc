package document

import (
	"errors"
	"fmt"
)

// MaxNameLength is the maximum display name length in bytes.
const MaxNameLength = 255

// Upload is a candidate document as received from the user (immutable value object).
// Names identify uploads in results; duplicates are kept as distinct entries.
type Upload struct {
	name    string
	content []byte
}

// NewUpload validates and creates an Upload.
// Name: non-empty, max 255 bytes. Content may be empty (it is reported unreadable later).
func NewUpload(name string, content []byte) (Upload, error) {
	if name == "" {
		return Upload{}, errors.New("document name is required")
	}
	if len(name) > MaxNameLength {
		return Upload{}, fmt.Errorf("document name too long (max %d)", MaxNameLength)
	}
	return Upload{name: name, content: content}, nil
}

// Name returns the display name.
func (u Upload) Name() string { return u.name }

// Content returns the raw bytes.
func (u Upload) Content() []byte { return u.content }

// Size returns the content length in bytes.
func (u Upload) Size() int { return len(u.content) }
