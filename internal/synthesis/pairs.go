// internal/synthesis/pairs.go
package synthesis

// Pair indexes two submissions in manifest order, earlier member first.
type Pair struct {
	A int
	B int
}

// Pairs enumerates the index pairs that receive a comparison: each index is
// paired with its next two successors when they exist. This bounds the
// comparison count at 2n while giving every non-boundary submission at
// least two appearances as the earlier member. No randomness is consumed.
func Pairs(n int) []Pair {
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j <= i+2 && j < n; j++ {
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}
