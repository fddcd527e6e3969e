package draw

import (
	"math"
	"math/rand"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seededSource struct {
	rnd *rand.Rand
}

func (s seededSource) Intn(n int) (int, error) {
	return s.rnd.Intn(n), nil
}

func pool(size int) []*entity.Ticket {
	tickets := make([]*entity.Ticket, size)
	for i := range tickets {
		tickets[i] = &entity.Ticket{ID: uint64(i + 1), Number: i + 1}
	}
	return tickets
}

func TestShuffle_KeepsEveryTicket(t *testing.T) {
	tickets := pool(20)
	require.NoError(t, shuffle(tickets, seededSource{rand.New(rand.NewSource(1))}))

	seen := make(map[uint64]bool, len(tickets))
	for _, tk := range tickets {
		seen[tk.ID] = true
	}
	assert.Len(t, seen, 20)
}

func TestShuffle_FirstPositionIsUniform(t *testing.T) {
	const (
		size  = 8
		draws = 40000
	)
	src := seededSource{rand.New(rand.NewSource(42))}
	counts := make([]int, size)

	for i := 0; i < draws; i++ {
		tickets := pool(size)
		require.NoError(t, shuffle(tickets, src))
		counts[tickets[0].ID-1]++
	}

	// Chi-square with 7 degrees of freedom; 24.32 is the 0.001 critical value
	expected := float64(draws) / size
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	assert.Less(t, chi, 24.32, "counts %v", counts)

	for id, c := range counts {
		assert.InDelta(t, expected, float64(c), 5*math.Sqrt(expected), "ticket %d", id+1)
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	src := seededSource{rand.New(rand.NewSource(3))}
	assert.NoError(t, shuffle(nil, src))

	one := pool(1)
	require.NoError(t, shuffle(one, src))
	assert.Equal(t, uint64(1), one[0].ID)
}
