package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
)

// DefaultMaxProofBytes caps uploads when no limit is configured
const DefaultMaxProofBytes int64 = 5 << 20

// sniffBytes is how much of a file is read to detect its type
const sniffBytes = 3072

// allowedTypes are the proof formats accepted, keyed by detected MIME type
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"image/heif":      ".heif",
	"application/pdf": ".pdf",
}

// LocalProofStorage keeps proof-of-payment files in a directory served under a public URL
type LocalProofStorage struct {
	dir       string
	publicURL string
	maxBytes  int64
	logger    coreport.Logger
}

var _ gateway.ProofStorage = (*LocalProofStorage)(nil)

// NewLocalProofStorage creates the directory if needed
func NewLocalProofStorage(dir, publicBaseURL string, maxBytes int64, logger coreport.Logger) (*LocalProofStorage, error) {
	if dir == "" {
		return nil, errors.New("proof directory is required")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxProofBytes
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating proof directory: %w", err)
	}
	return &LocalProofStorage{
		dir:       dir,
		publicURL: strings.TrimRight(publicBaseURL, "/"),
		maxBytes:  maxBytes,
		logger:    logger,
	}, nil
}

// Store sniffs the file type, then writes the file under a random name
func (s *LocalProofStorage) Store(ctx context.Context, file gateway.ProofFile) (entity.ProofRef, error) {
	if file.Content == nil {
		return entity.ProofRef{}, errs.NewValidationError(errs.ErrInvalidRequest, "proof", "is empty")
	}
	if file.Size > s.maxBytes {
		return entity.ProofRef{}, errs.NewValidationError(errs.ErrInvalidRequest, "proof", fmt.Sprintf("exceeds %d bytes", s.maxBytes))
	}
	if err := ctx.Err(); err != nil {
		return entity.ProofRef{}, err
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return entity.ProofRef{}, fmt.Errorf("%w: reading upload: %v", errs.ErrStorage, err)
	}
	if n == 0 {
		return entity.ProofRef{}, errs.NewValidationError(errs.ErrInvalidRequest, "proof", "is empty")
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	ext, ok := allowedTypes[detected.String()]
	if !ok {
		for parent := detected.Parent(); parent != nil && !ok; parent = parent.Parent() {
			ext, ok = allowedTypes[parent.String()]
		}
	}
	if !ok {
		s.logger.Warn("Rejected proof file type", map[string]any{
			"filename": file.Filename,
			"declared": file.ContentType,
			"detected": detected.String(),
		})
		return entity.ProofRef{}, errs.NewValidationError(errs.ErrInvalidRequest, "proof", "must be a JPEG, PNG, WEBP, HEIC or PDF file")
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return entity.ProofRef{}, fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	content := io.MultiReader(bytes.NewReader(head), file.Content)
	written, copyErr := io.Copy(out, io.LimitReader(content, s.maxBytes+1))
	closeErr := out.Close()
	switch {
	case copyErr != nil || closeErr != nil:
		_ = os.Remove(path)
		return entity.ProofRef{}, fmt.Errorf("%w: writing %s: %v", errs.ErrStorage, name, errors.Join(copyErr, closeErr))
	case written > s.maxBytes:
		_ = os.Remove(path)
		return entity.ProofRef{}, errs.NewValidationError(errs.ErrInvalidRequest, "proof", fmt.Sprintf("exceeds %d bytes", s.maxBytes))
	}

	s.logger.Info("Proof stored", map[string]any{
		"storage_id": name,
		"bytes":      written,
		"type":       detected.String(),
	})
	return entity.ProofRef{URL: s.publicURL + "/" + name, StorageID: name}, nil
}

// Delete removes a stored file. Missing files are ignored.
func (s *LocalProofStorage) Delete(_ context.Context, storageID string) error {
	if storageID == "" || storageID != filepath.Base(storageID) || strings.HasPrefix(storageID, ".") {
		return errs.NewValidationError(errs.ErrInvalidRequest, "storageId", "is not a stored file name")
	}

	err := os.Remove(filepath.Join(s.dir, storageID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: deleting %s: %v", errs.ErrStorage, storageID, err)
	}

	s.logger.Debug("Proof deleted", map[string]any{"storage_id": storageID})
	return nil
}

// Dir returns the directory the files are written to
func (s *LocalProofStorage) Dir() string {
	return s.dir
}
