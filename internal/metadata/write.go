package metadata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"codecast/internal/fileutil"
	"codecast/internal/logging"
)

// ErrLocked is returned when another process is writing the same document.
var ErrLocked = errors.New("metadata document is locked by another writer")

// LockPath returns the advisory lock file guarding path.
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}

// WriteFile stores the document at path. The write holds an advisory lock
// beside the file and replaces the previous document atomically.
func WriteFile(ctx context.Context, path string, doc *Document, logger *slog.Logger) error {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "metadata"))

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire metadata lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release metadata lock failed", logging.Error(err))
		}
	}()

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	logger.Info("metadata written",
		logging.String(logging.FieldOutputPath, path),
		logging.Int("total_frames", doc.TotalFrames),
		logging.Int("blocks", len(doc.Blocks)),
		logging.Int("cut_points", len(doc.CutPoints)),
	)
	return nil
}
