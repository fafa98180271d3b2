// Package storage is the persistence gateway: whole-collection load and
// save against a single JSON file, plus timestamped copy-based backups.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avdeev/taskdeck/internal/task"
)

// ErrIO marks persistence read/write/copy failures. The underlying
// cause stays wrapped for inspection.
var ErrIO = errors.New("task file I/O")

// Gateway mediates between the store and one on-disk JSON file. It
// assumes it is the sole writer of that file for the duration of a run.
type Gateway struct {
	path string
}

// New creates a gateway for the given file path.
func New(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the backing file path.
func (g *Gateway) Path() string {
	return g.path
}

// Save serializes the full collection (soft-deleted included) as
// pretty-printed JSON and overwrites the target file. A crash mid-write
// is a known, unmitigated risk.
func (g *Gateway) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal tasks: %w", ErrIO, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, g.path, err)
	}
	return nil
}

// Load reads the whole collection back. A missing file is the expected
// first-run case and yields an empty collection. Any other read or
// parse failure ALSO yields an empty collection, logged at warn level:
// a corrupted data file must never block startup. Callers should know
// this masks corruption.
func (g *Gateway) Load() []task.Task {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		slog.Warn("task file unreadable, starting empty", "path", g.path, "error", err)
		return nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		slog.Warn("task file corrupted, starting empty", "path", g.path, "error", err)
		return nil
	}
	return tasks
}

// Exists reports whether the backing file is present.
func (g *Gateway) Exists() bool {
	_, err := os.Stat(g.path)
	return err == nil
}

// Backup copies the current file to a sibling named with a
// filesystem-safe timestamp suffix and returns the copy's path. With no
// backing file it is a no-op returning an empty path.
func (g *Gateway) Backup() (string, error) {
	if !g.Exists() {
		return "", nil
	}

	dest := backupPath(g.path, time.Now().UTC())

	src, err := os.Open(g.path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrIO, g.path, err)
	}
	defer src.Close()

	// O_EXCL so a stamp collision fails instead of silently
	// overwriting an earlier backup.
	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrIO, dest, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: copy to %s: %w", ErrIO, dest, err)
	}
	return dest, nil
}

// backupStampLayout is RFC3339 extended to fixed-width nanoseconds, so
// backups taken within the same second still get distinct names.
const backupStampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// backupPath derives <base>_backup_<stamp>.json beside the original,
// with colons and dots in the timestamp replaced for filesystem safety.
func backupPath(path string, now time.Time) string {
	stamp := now.Format(backupStampLayout)
	stamp = strings.ReplaceAll(stamp, ":", "-")
	stamp = strings.ReplaceAll(stamp, ".", "-")

	base := strings.TrimSuffix(path, ".json")
	return fmt.Sprintf("%s_backup_%s.json", base, stamp)
}
