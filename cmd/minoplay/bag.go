package main

import (
	"math/rand"

	"github.com/s-shin/mino/piece"
)

// generateBag returns the seven piece kinds in a freshly shuffled order,
// the same "shuffle the full set" strategy the original CLI's
// generate_pieces used rather than a running weighted-random pick.
func generateBag(rng *rand.Rand) []piece.Kind {
	ks := append([]piece.Kind{}, piece.All()...)
	rng.Shuffle(len(ks), func(i, j int) { ks[i], ks[j] = ks[j], ks[i] })
	return ks
}
