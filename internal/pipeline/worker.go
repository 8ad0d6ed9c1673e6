package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/outliner/internal/extractor"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/store"
)

// Worker processes a single document job.
type Worker struct {
	st        *store.Store
	heur      outline.Heuristics
	stats     *ExtractionStats
	pageLimit int
	log       *slog.Logger
}

func NewWorker(st *store.Store, heur outline.Heuristics, stats *ExtractionStats, pageLimit int, log *slog.Logger) *Worker {
	return &Worker{
		st:        st,
		heur:      heur,
		stats:     stats,
		pageLimit: pageLimit,
		log:       log,
	}
}

// Process runs the extraction pipeline for a job. A document that
// cannot be read still produces a stored result: an empty outline
// carrying the error, so batch consumers never see a missing file.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "stem", job.Stem)

	pageLimit := job.PageLimit()
	if pageLimit == 0 {
		pageLimit = w.pageLimit
	}

	job.SetStatus(StatusExtracting, "extracting")
	ext, err := extractor.ForFile(job.Filename, w.heur, pageLimit)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	start := time.Now()
	o, err := ext.Extract(bytes.NewReader(job.FileData()), job.Filename)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		o = outline.Failed(err)
	}
	if w.stats != nil {
		w.stats.Record(elapsed)
	}

	for _, p := range outline.Problems(o) {
		log.Warn("outline problem", "problem", p)
	}

	job.SetStatus(StatusStoring, "storing")
	result := store.NewResult(o, time.Now())
	if _, saveErr := w.st.Save(job.Stem, result); saveErr != nil {
		log.Error("store failed", "error", saveErr)
		job.AddError(fmt.Sprintf("store: %s", saveErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	job.SetResult(o.Title, len(o.Headings))
	if err != nil {
		job.SetStatus(StatusFailed, "done")
		return
	}

	log.Info("extraction complete",
		"title", o.Title,
		"headings", len(o.Headings),
		"duration_ms", elapsed.Milliseconds())
	job.SetStatus(StatusCompleted, "done")
}
