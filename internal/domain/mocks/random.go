package mocks

// Chooser is a mock ports.Chooser that returns scripted indexes.
// Once the script runs out it keeps returning 0.
type Chooser struct {
	Picks []int
	// Calls records the n passed to every IntN call.
	Calls []int
}

// IntN returns the next scripted index, clamped to [0, n).
func (m *Chooser) IntN(n int) int {
	m.Calls = append(m.Calls, n)
	if len(m.Picks) == 0 {
		return 0
	}
	pick := m.Picks[0]
	m.Picks = m.Picks[1:]
	if pick >= n {
		pick = n - 1
	}
	if pick < 0 {
		pick = 0
	}
	return pick
}
