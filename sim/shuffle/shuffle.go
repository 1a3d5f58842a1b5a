// Package shuffle plans Fisher–Yates shuffles as replayable swap sequences
// and provides the small array primitives shared with the player.
package shuffle

import (
	"fmt"
	"math/rand"
)

// Swap means "exchange the elements currently at positions I and J".
// Unlike a sort step it carries no snapshot; the player applies it to its
// own copy of the array.
type Swap struct {
	I int
	J int
}

// PrepareShuffle plans a Fisher–Yates shuffle of values without mutating it:
// for i from len-1 down to 1 it draws j uniformly from [0, i] and records (i, j).
// An array of length n yields n-1 swaps (none for n <= 1).
func PrepareShuffle(values []float64, rng *rand.Rand) []Swap {
	n := len(values)
	if n < 2 {
		return []Swap{}
	}
	plan := make([]Swap, 0, n-1)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		plan = append(plan, Swap{I: i, J: j})
	}
	return plan
}

// Apply performs every swap in plan on values, in order.
func Apply(values []float64, plan []Swap) {
	for _, s := range plan {
		SwapValues(values, s.I, s.J)
	}
}

// SwapValues exchanges values[i] and values[j] in place.
func SwapValues(values []float64, i, j int) {
	values[i], values[j] = values[j], values[i]
}

// IsSorted reports whether values is non-decreasing end to end.
func IsSorted(values []float64) bool {
	for i := 0; i < len(values)-1; i++ {
		if values[i] > values[i+1] {
			return false
		}
	}
	return true
}

// Random returns a random permutation of 1..n.
func Random(n int, rng *rand.Rand) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("shuffle.Random: negative size %d", n))
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i + 1)
	}
	Apply(values, PrepareShuffle(values, rng))
	return values
}

// Bars returns n bar magnitudes in (0, maxHeight], one per rank 1..n, in random order.
func Bars(n int, maxHeight float64, rng *rand.Rand) []float64 {
	if maxHeight <= 0 {
		panic(fmt.Sprintf("shuffle.Bars: maxHeight must be positive, got %f", maxHeight))
	}
	bars := Random(n, rng)
	for i, rank := range bars {
		bars[i] = rank / float64(n) * maxHeight
	}
	return bars
}
