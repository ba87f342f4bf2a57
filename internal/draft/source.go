package draft

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/gorewood/worklog/internal/output"
)

// Source yields the text of one entry.
type Source interface {
	// Read returns the entry with trailing newlines removed. An empty entry
	// is a user error.
	Read() (string, error)
	// Consume releases the draft after the entry has been stored.
	Consume() error
	// Describe names the source for messages.
	Describe() string
}

// FileSource reads a draft file and deletes it on Consume.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the draft file path.
func (s *FileSource) Path() string {
	return s.path
}

// Read returns the draft content. A missing file or a draft that is empty
// after trimming trailing newlines is a user error.
func (s *FileSource) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", output.NewUserError("draft file not found: " + s.path)
		}
		return "", output.NewSystemErrorWithCause("failed to read draft file: "+s.path, err)
	}
	return nonEmpty(string(data))
}

// Consume deletes the draft file.
func (s *FileSource) Consume() error {
	if err := os.Remove(s.path); err != nil {
		return output.NewSystemErrorWithCause("failed to delete draft file: "+s.path, err)
	}
	return nil
}

// Describe implements Source.
func (s *FileSource) Describe() string {
	return s.path
}

// ClipboardReadFunc reads the clipboard contents.
type ClipboardReadFunc func() (string, error)

// ClipboardSource reads the entry from the system clipboard.
type ClipboardSource struct {
	read ClipboardReadFunc
}

// NewClipboardSource creates a ClipboardSource.
// If read is nil, the system clipboard is used.
func NewClipboardSource(read ClipboardReadFunc) *ClipboardSource {
	if read == nil {
		read = readSystemClipboard
	}
	return &ClipboardSource{read: read}
}

// readSystemClipboard reads the clipboard through atotto/clipboard.
func readSystemClipboard() (string, error) {
	if clipboard.Unsupported {
		return "", output.NewUserError("clipboard is not supported on this system")
	}
	return clipboard.ReadAll()
}

// Read implements Source.
func (s *ClipboardSource) Read() (string, error) {
	text, err := s.read()
	if err != nil {
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) {
			return "", err
		}
		return "", output.NewSystemErrorWithCause("failed to read clipboard", err)
	}
	return nonEmpty(text)
}

// Consume is a no-op; the clipboard is left as is.
func (s *ClipboardSource) Consume() error {
	return nil
}

// Describe implements Source.
func (s *ClipboardSource) Describe() string {
	return "clipboard"
}

// TextSource serves literal entry text.
type TextSource struct {
	text string
}

// NewTextSource creates a TextSource.
func NewTextSource(text string) *TextSource {
	return &TextSource{text: text}
}

// Read implements Source.
func (s *TextSource) Read() (string, error) {
	return nonEmpty(s.text)
}

// Consume implements Source.
func (s *TextSource) Consume() error {
	return nil
}

// Describe implements Source.
func (s *TextSource) Describe() string {
	return "text"
}

// nonEmpty trims the entry and rejects it when nothing is left.
func nonEmpty(content string) (string, error) {
	entry := TrimEntry(content)
	if entry == "" {
		return "", output.NewUserError("draft file is empty")
	}
	return entry, nil
}

// ReadAll reads src and wraps failures with the source description when the
// error carries no exit code of its own.
func ReadAll(src Source) (string, error) {
	entry, err := src.Read()
	if err != nil {
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) {
			return "", err
		}
		return "", fmt.Errorf("reading %s: %w", src.Describe(), err)
	}
	return entry, nil
}
