package dataset

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Source supplies the uniform randomness behind every generator. A single
// float method is enough for bounded ints, pool picks, weighted choices and
// date sampling, and lets tests inject a seeded source.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// SystemSource returns a Source backed by the process-wide math/rand/v2 state.
func SystemSource() Source {
	return systemSource{}
}

type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// SeededSource returns a deterministic Source for reproducible generations.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// intBetween returns a uniform integer in [min, max] inclusive.
func intBetween(src Source, min, max int) int {
	return min + int(src.Float64()*float64(max-min+1))
}

// pick returns a uniformly chosen element. Pools are validated non-empty
// before generation starts, so an empty slice is a programming error here.
func pick[T any](src Source, pool []T) T {
	return pool[intBetween(src, 0, len(pool)-1)]
}

// weightedPick walks cumulative weight buckets in declaration order and
// returns the first label whose cumulative weight exceeds the draw. If the
// weights do not sum to 1.0 exactly and the draw lands past the final
// cumulative sum, the last label is returned rather than failing.
func weightedPick[T any](src Source, labels []T, weights []float64) T {
	draw := src.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return labels[i]
		}
	}
	return labels[len(labels)-1]
}

// dateWithin returns a timestamp uniformly distributed between the first day
// of the calendar month monthsAgo months before now, and now.
func dateWithin(src Source, now time.Time, monthsAgo int) time.Time {
	past := time.Date(now.Year(), now.Month()-time.Month(monthsAgo), 1, 0, 0, 0, 0, now.Location())
	span := now.Sub(past)
	return past.Add(time.Duration(src.Float64() * float64(span)))
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// shortID generates an opaque 9-character base36 identifier.
func shortID(src Source) string {
	var b strings.Builder
	b.Grow(9)
	for i := 0; i < 9; i++ {
		b.WriteByte(idAlphabet[intBetween(src, 0, len(idAlphabet)-1)])
	}
	return b.String()
}
