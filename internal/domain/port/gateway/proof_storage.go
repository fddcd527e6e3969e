package gateway

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// ProofFile is an uploaded proof-of-payment file
type ProofFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProofStorage persists proof-of-payment files
type ProofStorage interface {
	// Store writes the file and returns where it can be reached
	//
	// Possible errors:
	// - ErrStorage: If the file cannot be written
	// - ErrInvalidRequest: If the file type or size is not accepted
	Store(ctx context.Context, file ProofFile) (entity.ProofRef, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, storageID string) error
}
