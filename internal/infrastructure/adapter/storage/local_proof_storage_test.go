package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	pdfHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
)

func newStorage(t *testing.T, maxBytes int64) *LocalProofStorage {
	t.Helper()

	s, err := NewLocalProofStorage(filepath.Join(t.TempDir(), "comprobantes"), "/uploads/comprobantes/", maxBytes, logger.NewNoopLogger())
	require.NoError(t, err)
	return s
}

func proof(content []byte) gateway.ProofFile {
	return gateway.ProofFile{
		Filename: "receipt",
		Size:     int64(len(content)),
		Content:  bytes.NewReader(content),
	}
}

func TestNewLocalProofStorage(t *testing.T) {
	t.Run("Creates directory and applies default limit", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")

		s, err := NewLocalProofStorage(dir, "", 0, logger.NewNoopLogger())
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, DefaultMaxProofBytes, s.maxBytes)
		assert.Equal(t, dir, s.Dir())
	})

	t.Run("Empty directory", func(t *testing.T) {
		_, err := NewLocalProofStorage("", "", 0, logger.NewNoopLogger())
		assert.Error(t, err)
	})
}

func TestLocalProofStorage_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted types", func(t *testing.T) {
		tests := []struct {
			name    string
			content []byte
			ext     string
		}{
			{"PNG", append(pngHeader, bytes.Repeat([]byte{0}, 64)...), ".png"},
			{"PDF", append(pdfHeader, []byte("trailer\n%%EOF\n")...), ".pdf"},
			{"JPEG", append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{1}, 32)...), ".jpg"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newStorage(t, 0)

				ref, err := s.Store(ctx, proof(tt.content))
				require.NoError(t, err)

				assert.True(t, strings.HasSuffix(ref.StorageID, tt.ext))
				assert.Equal(t, "/uploads/comprobantes/"+ref.StorageID, ref.URL)

				stored, err := os.ReadFile(filepath.Join(s.Dir(), ref.StorageID))
				require.NoError(t, err)
				assert.Equal(t, tt.content, stored)
			})
		}
	})

	t.Run("Files get distinct names", func(t *testing.T) {
		s := newStorage(t, 0)

		first, err := s.Store(ctx, proof(pngHeader))
		require.NoError(t, err)
		second, err := s.Store(ctx, proof(pngHeader))
		require.NoError(t, err)

		assert.NotEqual(t, first.StorageID, second.StorageID)
	})

	t.Run("Rejected uploads", func(t *testing.T) {
		tests := []struct {
			name     string
			maxBytes int64
			file     gateway.ProofFile
		}{
			{"Plain text", 0, proof([]byte("just some text, not a receipt"))},
			{"Declared type is ignored", 0, gateway.ProofFile{ContentType: "image/png", Content: strings.NewReader("<html></html>")}},
			{"Empty content", 0, proof(nil)},
			{"Nil reader", 0, gateway.ProofFile{Filename: "x.png"}},
			{"Declared size over limit", 16, proof(append(pngHeader, bytes.Repeat([]byte{0}, 64)...))},
			{"Actual size over limit", 40, gateway.ProofFile{Content: bytes.NewReader(append(pngHeader, bytes.Repeat([]byte{0}, 64)...))}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newStorage(t, tt.maxBytes)

				_, err := s.Store(ctx, tt.file)

				require.Error(t, err)
				assert.True(t, errs.IsValidationError(err))

				entries, readErr := os.ReadDir(s.Dir())
				require.NoError(t, readErr)
				assert.Empty(t, entries)
			})
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		s := newStorage(t, 0)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Store(cctx, proof(pngHeader))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalProofStorage_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes stored file", func(t *testing.T) {
		s := newStorage(t, 0)
		ref, err := s.Store(ctx, proof(pngHeader))
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, ref.StorageID))

		_, err = os.Stat(filepath.Join(s.Dir(), ref.StorageID))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Missing file is ignored", func(t *testing.T) {
		s := newStorage(t, 0)
		assert.NoError(t, s.Delete(ctx, "gone.png"))
	})

	t.Run("Names outside the directory are refused", func(t *testing.T) {
		s := newStorage(t, 0)

		for _, id := range []string{"", "../secret", "a/b.png", "..", ".hidden"} {
			err := s.Delete(ctx, id)
			assert.True(t, errs.IsValidationError(err), id)
		}
	})
}
