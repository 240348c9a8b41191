package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxResumeSize = 5 << 20 // 5MB

var (
	ErrNotPDF    = errors.New("only PDF allowed")
	ErrTooLarge  = errors.New("file exceeds size limit")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// LocalStore keeps uploaded resumes on the local filesystem. Stored names
// are opaque tokens; callers never see the directory.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

// SaveResume validates and writes an uploaded resume, returning the
// stored filename.
func (s *LocalStore) SaveResume(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxResumeSize {
		return "", ErrTooLarge
	}
	ct := fh.Header.Get("Content-Type")
	if ct != "application/pdf" && !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return "", ErrNotPDF
	}

	name := UniqueName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes a stored file. A missing file is not an error: the
// application record may outlive its upload.
func (s *LocalStore) Delete(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Path returns the on-disk location of a stored file.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

// UniqueName prefixes the original filename with a timestamp and a short
// random token, and collapses whitespace so names are shell-safe.
func UniqueName(original string) string {
	unique := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	name := unique + "-" + filepath.Base(original)
	return whitespaceRe.ReplaceAllString(name, "_")
}
