// Package batch walks an input directory and writes one outline JSON
// file per supported document, mirroring immediate subfolders into the
// output directory. A document that fails still writes its error
// variant so every input has a corresponding output.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/outliner/internal/extractor"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/store"
)

// Runner processes every supported document under InputDir.
type Runner struct {
	InputDir   string
	OutputDir  string
	Heuristics outline.Heuristics
	PageLimit  int
	Sections   bool
	Log        *slog.Logger
}

// Summary reports what a batch run did.
type Summary struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Run processes files directly under InputDir, then files in each
// immediate subfolder. Subfolder results land in a matching subfolder
// of OutputDir.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	info, err := os.Stat(r.InputDir)
	if err != nil {
		return sum, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("input path %s is not a directory", r.InputDir)
	}

	if err := r.runFolder(ctx, r.InputDir, r.OutputDir, &sum); err != nil {
		return sum, err
	}

	dirEntries, err := os.ReadDir(r.InputDir)
	if err != nil {
		return sum, fmt.Errorf("read input directory: %w", err)
	}
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		sub := filepath.Join(r.InputDir, de.Name())
		out := filepath.Join(r.OutputDir, de.Name())
		if err := r.runFolder(ctx, sub, out, &sum); err != nil {
			return sum, err
		}
	}

	r.Log.Info("batch complete",
		"processed", sum.Processed,
		"failed", sum.Failed,
		"skipped", sum.Skipped)
	return sum, nil
}

func (r *Runner) runFolder(ctx context.Context, inDir, outDir string, sum *Summary) error {
	dirEntries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read folder %s: %w", inDir, err)
	}

	st := store.New(outDir)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := de.Name()
		if !extractor.IsSupportedExtension(name) {
			sum.Skipped++
			continue
		}
		r.processFile(filepath.Join(inDir, name), st, sum)
	}
	return nil
}

func (r *Runner) processFile(path string, st *store.Store, sum *Summary) {
	log := r.Log.With("file", path)
	name := filepath.Base(path)
	stem := extractor.Stem(name)

	o, sections, err := r.extract(path, name)
	if err != nil {
		log.Error("extraction failed", "error", err)
		o = outline.Failed(err)
		sum.Failed++
	} else {
		sum.Processed++
	}

	for _, p := range outline.Problems(o) {
		log.Warn("outline problem", "problem", p)
	}

	out, saveErr := st.Save(stem, store.NewResult(o, time.Now()))
	if saveErr != nil {
		log.Error("write failed", "error", saveErr)
		if err == nil {
			sum.Processed--
			sum.Failed++
		}
		return
	}
	log.Info("outline written", "output", out, "headings", len(o.Headings))

	if r.Sections && err == nil && sections != nil {
		if err := r.writeSections(st.Dir(), stem, sections); err != nil {
			log.Error("sections write failed", "error", err)
		}
	}
}

// extract opens the file and runs the extractor for its format. When
// sections were requested and the format supports them, both the
// outline and the grouped section content come back from one pass.
func (r *Runner) extract(path, name string) (outline.Outline, []outline.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return outline.Outline{}, nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	ext, err := extractor.ForFile(name, r.Heuristics, r.PageLimit)
	if err != nil {
		return outline.Outline{}, nil, err
	}

	if r.Sections {
		if sp, ok := ext.(extractor.SectionProvider); ok {
			o, sections, err := sp.ExtractSections(f, name)
			return o, sections, err
		}
	}
	o, err := ext.Extract(f, name)
	return o, nil, err
}

func (r *Runner) writeSections(dir, stem string, sections []outline.Section) error {
	data, err := json.MarshalIndent(sections, "", "    ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, stem+"_sections.json")
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
