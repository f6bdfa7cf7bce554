package site

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Snapshot maps every file under a directory to its modification time.
type Snapshot map[string]time.Time

// TakeSnapshot records the modification time of every file under dir.
// Directories in skip, like an output directory nested in dir, are not visited.
func TakeSnapshot(dir string, skip ...string) (Snapshot, error) {
	snap := Snapshot{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, s := range skip {
				if path != dir && filepath.Clean(path) == filepath.Clean(s) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		snap[path] = info.ModTime()
		return nil
	})
	if err != nil {
		return nil, NewBuildError(err, ErrMsgWalkFailed, dir)
	}
	return snap, nil
}

// ChangedSince reports whether any file in s is new or has a different
// modification time than in last. Removed files are not a change.
func (s Snapshot) ChangedSince(last Snapshot) bool {
	for path, modTime := range s {
		old, ok := last[path]
		if !ok || !old.Equal(modTime) {
			return true
		}
	}
	return false
}

// Watcher rebuilds a directory whenever one of its files changes.
// Every rebuild recompiles all the files.
type Watcher struct {
	builder  *Builder
	interval time.Duration
	log      *zap.SugaredLogger

	// OnBuild, if set, is called after every build with its result.
	OnBuild func(*Report, error)
}

// NewWatcher returns a watcher polling at the builder's configured interval.
func NewWatcher(b *Builder, logger *zap.SugaredLogger) *Watcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Watcher{
		builder:  b,
		interval: b.cfg.Interval,
		log:      logger,
	}
}

func (w *Watcher) build(ctx context.Context) error {
	report, err := w.builder.Build(ctx)
	if err != nil {
		w.log.Errorw("build failed", "error", err)
	}
	if w.OnBuild != nil {
		w.OnBuild(report, err)
	}
	return err
}

// Run builds the directory once and then polls modification times until ctx
// is cancelled. The snapshot is only refreshed after a successful build, so a
// failed build is retried on the next tick.
func (w *Watcher) Run(ctx context.Context) error {
	dir := w.builder.cfg.SourceDir
	outputDir := w.builder.cfg.OutputDir

	last, err := TakeSnapshot(dir, outputDir)
	if err != nil {
		return err
	}
	w.build(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Infow("watching for changes", "dir", dir, "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		current, err := TakeSnapshot(dir, outputDir)
		if err != nil {
			w.log.Errorw("reading modification times failed", "dir", dir, "error", err)
			continue
		}

		if !current.ChangedSince(last) {
			w.log.Debugw("no files modified", "dir", dir)
			continue
		}

		w.log.Infow("files modified, rebuilding", "dir", dir)
		if err := w.build(ctx); err != nil {
			continue
		}
		last = current
	}
}
