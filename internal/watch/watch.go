// Package watch re-validates a mission file whenever it changes on disk.
// It backs the CLI's --watch mode: edit the document in one terminal,
// see the placement verdict refresh in another.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/missionfile"
)

// ErrFileRemoved reports that the watched file disappeared. Editors that
// save atomically rename a new file into place, which is tolerated; this
// error only fires when the path stays gone past the debounce.
var ErrFileRemoved = errors.New("watched file removed")

// ValidateFunc turns a freshly loaded document into a report.
type ValidateFunc func(ctx context.Context, doc domain.Document) (*contract.ValidationReport, error)

// Result is one re-validation outcome. Exactly one of Report and Err is
// set: Err carries load or validation failures, which do not stop the
// watch — the next save gets a fresh chance.
type Result struct {
	Report *contract.ValidationReport
	Err    error
}

const debounce = 100 * time.Millisecond

// Run watches path and calls notify with a new result after every change,
// debounced so editor write bursts validate once. It blocks until ctx is
// cancelled (returns nil) or the file is removed (returns ErrFileRemoved).
//
// The parent directory is watched rather than the file itself so that
// atomic saves, which replace the inode, keep being seen.
func Run(ctx context.Context, path string, validate ValidateFunc, notify func(Result)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < debounce {
				continue
			}
			pending = time.Time{}

			if _, err := os.Stat(abs); err != nil {
				return fmt.Errorf("%s: %w", path, ErrFileRemoved)
			}
			notify(revalidate(ctx, abs, validate))

		case _, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; the next event still arrives.
		}
	}
}

func revalidate(ctx context.Context, path string, validate ValidateFunc) Result {
	doc, err := missionfile.Load(path)
	if err != nil {
		return Result{Err: err}
	}
	if errs := missionfile.Validate(doc); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return Result{Err: fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))}
	}
	report, err := validate(ctx, *doc)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Report: report}
}
