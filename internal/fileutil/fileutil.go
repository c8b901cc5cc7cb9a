package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file beside path, verifies the
// bytes on disk, and renames it into place. Readers never observe a partially
// written file.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	srcHasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(tmp, srcHasher), bytes.NewReader(data))
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if written != int64(len(data)) {
		return fmt.Errorf("write size mismatch: expected %d bytes, wrote %d bytes", len(data), written)
	}
	if err := verifyHash(tmpPath, srcHasher.Sum(nil)); err != nil {
		return err
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func verifyHash(path string, want []byte) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopen temp file: %w", err)
	}
	defer in.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, in); err != nil {
		return fmt.Errorf("read back temp file: %w", err)
	}
	if !bytes.Equal(hasher.Sum(nil), want) {
		return fmt.Errorf("write hash mismatch: file corrupted during write")
	}
	return nil
}
