// Package store persists extraction results as JSON files, one
// <stem>_outline.json per input document.
package store

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

const suffix = "_outline.json"

// Result is a stored outline together with additive telemetry fields.
type Result struct {
	outline.Outline
	ExtractionTimestamp string `json:"extraction_timestamp,omitempty"`
	TotalHeadings       int    `json:"total_headings"`
}

// NewResult wraps an outline with the current telemetry.
func NewResult(o outline.Outline, at time.Time) Result {
	return Result{
		Outline:             o,
		ExtractionTimestamp: at.UTC().Format(time.RFC3339),
		TotalHeadings:       len(o.Headings),
	}
}

// Entry identifies one stored result.
type Entry struct {
	Stem    string    `json:"stem"`
	Path    string    `json:"path"`
	ModTime time.Time `json:"modified_at"`
}

// Store writes and reads results under a single directory. Writes are
// atomic: a temp file in the same directory is renamed into place.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(stem string) string {
	return filepath.Join(s.dir, stem+suffix)
}

// Save writes the result for the given document stem and returns the
// file path used.
func (s *Store) Save(stem string, res Result) (string, error) {
	stem = Sanitize(stem)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(res, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, ".outline-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	dest := s.path(stem)
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename result: %w", err)
	}
	return dest, nil
}

// Get reads a stored result by document stem. A missing result is
// reported as fs.ErrNotExist.
func (s *Store) Get(stem string) (Result, error) {
	data, err := os.ReadFile(s.path(Sanitize(stem)))
	if err != nil {
		return Result{}, err
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("decode result %s: %w", stem, err)
	}
	return res, nil
}

// List returns all stored results sorted by stem.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Stem:    strings.TrimSuffix(d.Name(), suffix),
			Path:    path,
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Stem < entries[j].Stem })
	return entries, nil
}

// Delete removes a stored result. Deleting a missing result is an
// error so callers can report not-found.
func (s *Store) Delete(stem string) error {
	return os.Remove(s.path(Sanitize(stem)))
}

// Sanitize strips path components and separators from a document stem
// so stored filenames stay inside the output directory.
func Sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
