package question

import "math/rand/v2"

// Sample draws n records without replacement. When n exceeds the number of
// records every record is returned in shuffled order. A nil rng uses the
// package-level source.
func Sample(records []Record, n int, rng *rand.Rand) []Record {
	if n <= 0 || len(records) == 0 {
		return []Record{}
	}

	pool := make([]Record, len(records))
	copy(pool, records)

	swap := func(i, j int) { pool[i], pool[j] = pool[j], pool[i] }
	if rng != nil {
		rng.Shuffle(len(pool), swap)
	} else {
		rand.Shuffle(len(pool), swap)
	}

	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
