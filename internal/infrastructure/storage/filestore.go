// Package storage implements the attachment blob store with a two-phase
// write: uploads land in a staging directory, the owning database row is
// inserted, and only then is the file promoted into the serving directory.
// A failed insert discards the staged file so no orphan blobs survive.
package storage

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"curator/internal/shared/errors"
)

const filenamePrefix = "kb-"

// FileStore persists attachment blobs under generated names.
type FileStore struct {
	uploadDir  string
	stagingDir string
	maxBytes   int64
}

func NewFileStore(uploadDir, stagingDir string, maxUploadMB int64) (*FileStore, error) {
	if stagingDir == "" {
		stagingDir = filepath.Join(uploadDir, ".staging")
	}
	for _, dir := range []string{uploadDir, stagingDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	return &FileStore{
		uploadDir:  uploadDir,
		stagingDir: stagingDir,
		maxBytes:   maxUploadMB << 20,
	}, nil
}

// GenerateFilename produces a collision-resistant name for an upload,
// preserving only the (lower-cased) extension of the original name.
func (s *FileStore) GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails on catastrophic OS errors
		panic("storage: failed to read random bytes: " + err.Error())
	}
	suffix := binary.BigEndian.Uint32(b[:]) % 1_000_000_000

	return fmt.Sprintf("%s%d-%d%s", filenamePrefix, time.Now().UnixMilli(), suffix, ext)
}

// Stage writes the upload into the staging area. The blob is not served
// until Promote moves it into the upload directory.
func (s *FileStore) Stage(filename string, src io.Reader) error {
	if err := validateFilename(filename); err != nil {
		return err
	}

	dst, err := os.OpenFile(filepath.Join(s.stagingDir, filename), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	limited := io.LimitReader(src, s.maxBytes+1)
	n, err := io.Copy(dst, limited)
	if err != nil {
		os.Remove(dst.Name())
		return fmt.Errorf("failed to write staged file: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(dst.Name())
		return errors.NewValidationError(fmt.Sprintf("file exceeds %d MB limit", s.maxBytes>>20))
	}

	return nil
}

// Promote moves a staged file into the serving directory and returns its
// final path.
func (s *FileStore) Promote(filename string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}

	final := filepath.Join(s.uploadDir, filename)
	if err := os.Rename(filepath.Join(s.stagingDir, filename), final); err != nil {
		return "", fmt.Errorf("failed to promote staged file: %w", err)
	}
	return final, nil
}

// FinalPath reports where a blob will be served from once promoted. Used to
// record the path on the owning row before promotion happens.
func (s *FileStore) FinalPath(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}

// Discard removes a staged file. Used as the compensating cleanup when the
// database insert fails after the upload was written.
func (s *FileStore) Discard(filename string) error {
	if err := validateFilename(filename); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.stagingDir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard staged file: %w", err)
	}
	return nil
}

// Resolve returns the serving path of a stored blob, or a not-found error.
func (s *FileStore) Resolve(filename string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("file not found")
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	return path, nil
}

// validateFilename rejects anything that could escape the storage
// directories. Only generated names are ever accepted.
func validateFilename(filename string) error {
	if filename == "" ||
		filename != filepath.Base(filename) ||
		strings.Contains(filename, "..") ||
		!strings.HasPrefix(filename, filenamePrefix) {
		return errors.NewValidationError("invalid filename")
	}
	return nil
}
