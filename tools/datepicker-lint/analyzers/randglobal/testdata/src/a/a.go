package a

import (
	oldrand "math/rand"
	"math/rand/v2"
)

type Chooser interface {
	IntN(n int) int
}

func bad(ideas []string) string {
	_ = oldrand.Intn(len(ideas)) // want "rand.Intn draws from the global source"
	rand.Shuffle(len(ideas), func(i, j int) { // want "rand.Shuffle draws from the global source"
		ideas[i], ideas[j] = ideas[j], ideas[i]
	})
	return ideas[rand.IntN(len(ideas))] // want "rand.IntN draws from the global source"
}

func good(ideas []string, c Chooser) string {
	return ideas[c.IntN(len(ideas))]
}

func seeded(ideas []string) string {
	r := rand.New(rand.NewPCG(rand.Uint64(), 1))
	return ideas[r.IntN(len(ideas))]
}
