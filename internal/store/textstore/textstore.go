package textstore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/expenses/internal/model"
)

// Plain-text record file: one entry per line, each line newline-terminated.
// No locking; a local single-user tool has one writer.

// DefaultFileName matches the file the desktop tracker always used.
const DefaultFileName = "expenses.txt"

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// LoadAll returns entries in file order. A missing file reads as an empty
// list. Lines are trimmed; blank lines are skipped.
func (s *Store) LoadAll(_ context.Context) ([]model.Entry, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Entry{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	entries := []model.Entry{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		entries = append(entries, model.Entry{Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return entries, nil
}

// Append adds one line at the end of the record.
func (s *Store) Append(_ context.Context, e model.Entry) error {
	e = model.NewEntry(e.Text)
	if err := model.CheckEntries(e); err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	line := e.Text + "\n"
	terminated, err := endsWithNewline(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	if !terminated {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// endsWithNewline reports whether f is empty or its last byte is '\n'.
// A hand-edited record may lack the final newline.
func endsWithNewline(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat file: %w", err)
	}
	if fi.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, fi.Size()-1); err != nil {
		return false, fmt.Errorf("read file: %w", err)
	}
	return last[0] == '\n', nil
}

// OverwriteAll replaces the record with entries, in order. The new content
// is written next to the record and renamed over it.
func (s *Store) OverwriteAll(_ context.Context, entries []model.Entry) error {
	trimmed := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		trimmed = append(trimmed, model.NewEntry(e.Text))
	}
	if err := model.CheckEntries(trimmed...); err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, e := range trimmed {
		buf.WriteString(e.Text)
		buf.WriteByte('\n')
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return writeFileAtomic(s.path, buf.Bytes(), 0o644)
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
