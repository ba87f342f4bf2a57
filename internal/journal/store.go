package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/worklog/internal/output"
)

// DateLayout is the only accepted journal date format.
const DateLayout = "2006-01-02"

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Store reads and writes journal files named <dir>/<date><ext>.
type Store struct {
	dir string
	ext string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir, ext string) *Store {
	return &Store{dir: dir, ext: ext}
}

// Dir returns the journals directory.
func (s *Store) Dir() string {
	return s.dir
}

// ValidateDate checks that date is a calendar date in DateLayout.
// Rejecting anything else also keeps the date from escaping the directory.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return output.NewUserError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", date))
	}
	return nil
}

// Path returns the journal path for date.
func (s *Store) Path(date string) (string, error) {
	if err := ValidateDate(date); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, date+s.ext), nil
}

// Load returns the journal content for date and whether the file exists.
// A missing journal is not an error.
func (s *Store) Load(date string) (content string, exists bool, err error) {
	path, err := s.Path(date)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, output.NewSystemErrorWithCause("failed to read journal: "+path, err)
	}
	return string(data), true, nil
}

// Save replaces the journal for date with content, creating the directory
// if needed.
func (s *Store) Save(date, content string) error {
	path, err := s.Path(date)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return output.NewSystemErrorWithCause("failed to create journals directory", err)
	}

	if err := atomicWrite(path, []byte(content)); err != nil {
		return output.NewSystemErrorWithCause("failed to write journal: "+path, err)
	}
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file lives next to path; an existing file's mode is kept.
func atomicWrite(path string, data []byte) error {
	perm := filePerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
