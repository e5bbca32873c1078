package performance

import (
	"hash/fnv"
	"math/rand/v2"
)

// StreamFor returns a deterministic rng for one player in one gameweek,
// derived from the simulation seed. Each player gets an independent stream
// so generation order and parallelism do not change the results.
func StreamFor(seed uint64, gameweek int, playerID string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(playerID))
	stream := h.Sum64() ^ (uint64(gameweek) << 32)
	return rand.New(rand.NewPCG(seed, stream))
}
