package core

// RandomSource supplies uniform random integers for draws
type RandomSource interface {
	// Intn returns a uniformly distributed value in [0, n). n must be > 0.
	Intn(n int) (int, error)
}
