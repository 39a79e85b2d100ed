package ports

// Chooser picks an index in [0, n). *math/rand/v2.Rand satisfies it.
type Chooser interface {
	IntN(n int) int
}
