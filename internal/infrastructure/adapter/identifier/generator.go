package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/google/uuid"
)

const (
	// TransactionPrefix starts every generated transaction id
	TransactionPrefix = "TXN-"

	// codeAlphabet leaves out characters that are easy to misread on a printed ticket
	codeAlphabet      = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	defaultCodeLength = 8
)

// Generator creates ticket codes and transaction ids
type Generator struct {
	codeLength int
}

var _ core.IDGenerator = (*Generator)(nil)

// NewGenerator creates a generator producing codes of the default length
func NewGenerator() *Generator {
	return &Generator{codeLength: defaultCodeLength}
}

// NewGeneratorWithLength creates a generator producing codes of the given length
func NewGeneratorWithLength(length int) *Generator {
	if length < 4 {
		length = 4
	}
	return &Generator{codeLength: length}
}

// TicketCode returns a random code drawn from crypto/rand
func (g *Generator) TicketCode() (string, error) {
	var sb strings.Builder
	sb.Grow(g.codeLength)

	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < g.codeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket code: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// TransactionID returns TXN- followed by a random UUID
func (g *Generator) TransactionID() string {
	return TransactionPrefix + strings.ToUpper(uuid.NewString())
}
