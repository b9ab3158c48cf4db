package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource returns a scripted sequence of draws, repeating the last value.
type fixedSource struct {
	values []float64
	idx    int
}

func (f *fixedSource) Float64() float64 {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

func testNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

// ============================================
// intBetween Tests
// ============================================

func TestIntBetween_Bounds(t *testing.T) {
	src := SeededSource(1)
	for i := 0; i < 10000; i++ {
		v := intBetween(src, 1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
	}
}

func TestIntBetween_Inclusive(t *testing.T) {
	assert.Equal(t, 5, intBetween(&fixedSource{values: []float64{0}}, 5, 10))
	assert.Equal(t, 10, intBetween(&fixedSource{values: []float64{0.999999}}, 5, 10))
}

func TestIntBetween_SingleValue(t *testing.T) {
	src := SeededSource(2)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 7, intBetween(src, 7, 7))
	}
}

// ============================================
// pick Tests
// ============================================

func TestPick_CoversAllElements(t *testing.T) {
	src := SeededSource(3)
	pool := []string{"a", "b", "c"}

	seen := map[string]int{}
	for i := 0; i < 3000; i++ {
		seen[pick(src, pool)]++
	}

	for _, label := range pool {
		assert.Greater(t, seen[label], 0, "element %q never picked", label)
	}
}

// ============================================
// weightedPick Tests
// ============================================

func TestWeightedPick_EmpiricalDistribution(t *testing.T) {
	src := SeededSource(4)
	labels := []string{"pending", "processing", "shipped", "delivered", "cancelled"}
	weights := []float64{0.1, 0.15, 0.2, 0.5, 0.05}

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[weightedPick(src, labels, weights)]++
	}

	for i, label := range labels {
		freq := float64(counts[label]) / draws
		assert.InDelta(t, weights[i], freq, 0.02, "label %q frequency %f", label, freq)
	}
}

func TestWeightedPick_FallsBackToLastLabel(t *testing.T) {
	// Weights summing below 1.0 leave a gap; a draw past the final cumulative
	// sum must deterministically yield the last label.
	src := &fixedSource{values: []float64{0.99}}
	got := weightedPick(src, []string{"a", "b"}, []float64{0.4, 0.4})
	assert.Equal(t, "b", got)
}

func TestWeightedPick_FirstBucket(t *testing.T) {
	src := &fixedSource{values: []float64{0.0}}
	got := weightedPick(src, []string{"a", "b"}, []float64{0.5, 0.5})
	assert.Equal(t, "a", got)
}

// ============================================
// dateWithin Tests
// ============================================

func TestDateWithin_Bounds(t *testing.T) {
	src := SeededSource(5)
	now := testNow()
	floor := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		d := dateWithin(src, now, 12)
		assert.False(t, d.Before(floor), "date %v before window start %v", d, floor)
		assert.False(t, d.After(now), "date %v after now %v", d, now)
	}
}

func TestDateWithin_WindowStartIsCalendarMonthDayOne(t *testing.T) {
	// A zero draw lands exactly on day 1 of the window's first month.
	src := &fixedSource{values: []float64{0}}
	d := dateWithin(src, testNow(), 3)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), d)
}

// ============================================
// shortID Tests
// ============================================

func TestShortID_Format(t *testing.T) {
	src := SeededSource(6)
	for i := 0; i < 100; i++ {
		id := shortID(src)
		require.Len(t, id, 9)
		for _, r := range id {
			assert.Contains(t, idAlphabet, string(r))
		}
	}
}

func TestShortID_Distinct(t *testing.T) {
	src := SeededSource(7)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[shortID(src)] = true
	}
	// Collisions over 36^9 are vanishingly unlikely in 1000 draws.
	assert.Len(t, seen, 1000)
}
