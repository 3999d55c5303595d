package bdcat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mbakke/go-bdcat/internal/bdmv"
	"github.com/mbakke/go-bdcat/internal/report"
)

// Stage represents a coarse progress stage for Run.
type Stage string

const (
	StageStarting Stage = "starting"
	StageDecoding Stage = "decoding"
	StageDone     Stage = "done"
)

// ProgressEvent is emitted when Run transitions between major phases.
type ProgressEvent struct {
	Stage      Stage
	Path       string
	Titles     int
	Elapsed    time.Duration
	OccurredAt time.Time
}

// Options configure one Run call for a single disc root.
type Options struct {
	// Path is the disc root holding index.bdmv, CLIPINF, PLAYLIST and
	// STREAM.
	Path string

	// SkipDuplicateTitles drops playlists structurally identical to one
	// already catalogued.
	SkipDuplicateTitles bool

	// VerifyClipFiles rejects playlists whose referenced media segments
	// are absent from STREAM.
	VerifyClipFiles bool

	OnProgress func(ProgressEvent)
}

// Result contains the decoded catalogue plus rendered report content.
type Result struct {
	// Titles is the catalogue, sorted by descending duration.
	Titles []*bdmv.Playlist

	// Skipped maps rejected playlist file names to the reason text.
	Skipped map[string]string

	// Report is the rendered human-readable catalogue listing.
	Report string
}

// MainTitle returns the longest decoded title, or nil for an empty result.
func (r Result) MainTitle() *bdmv.Playlist {
	if len(r.Titles) == 0 {
		return nil
	}
	return r.Titles[0]
}

// Run decodes one disc root and returns the catalogue. The catalogue is a
// plain value owned by the caller; Run keeps no state between calls.
func Run(ctx context.Context, options Options) (Result, error) {
	if options.Path == "" {
		return Result{}, errors.New("path is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	emit(options.OnProgress, ProgressEvent{
		Stage:      StageStarting,
		Path:       options.Path,
		OccurredAt: time.Now(),
	})

	emit(options.OnProgress, ProgressEvent{
		Stage:      StageDecoding,
		Path:       options.Path,
		OccurredAt: time.Now(),
	})
	catalog, err := bdmv.Parse(options.Path, bdmv.Options{
		SkipDuplicateTitles: options.SkipDuplicateTitles,
		VerifyClipFiles:     options.VerifyClipFiles,
	})
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var rendered strings.Builder
	if err := report.Render(&rendered, catalog); err != nil {
		return Result{}, err
	}

	result := Result{
		Titles:  catalog.Playlists,
		Skipped: make(map[string]string, len(catalog.FileErrors)),
		Report:  rendered.String(),
	}
	for name, fileErr := range catalog.FileErrors {
		result.Skipped[name] = fileErr.Error()
	}

	emit(options.OnProgress, ProgressEvent{
		Stage:      StageDone,
		Path:       options.Path,
		Titles:     len(result.Titles),
		Elapsed:    time.Since(start),
		OccurredAt: time.Now(),
	})

	return result, nil
}

func emit(cb func(ProgressEvent), event ProgressEvent) {
	if cb != nil {
		cb(event)
	}
}
