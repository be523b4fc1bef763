package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const timestampLayout = "20060102-150405"

// ArtifactNames returns the export filenames for one timestamp, in UTC.
func ArtifactNames(ts time.Time) (mission, patch, summary string) {
	stamp := ts.UTC().Format(timestampLayout)
	return "mission-" + stamp + ".yaml", "conops-patch-" + stamp + ".yaml", "conops-summary-" + stamp + ".md"
}

// Writer persists export artifacts under one directory. Each file is
// written atomically: content goes to a temp file, is synced, then renamed
// into place, so a crashed export never leaves a half-written spec.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// WriteYAML marshals v and writes it under name.
func (w *Writer) WriteYAML(name string, v interface{}) error {
	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return w.WriteRaw(name, content)
}

// WriteRaw writes content under name atomically, creating the export
// directory on first use.
func (w *Writer) WriteRaw(name string, content []byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, ".conops-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		// Clean up the temp file on any failure path.
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(w.dir, name)); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
