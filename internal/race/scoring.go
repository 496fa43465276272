package race

import "sort"

// Result is the outcome of a finished run.
type Result struct {
	Score   int
	Rank    int
	Field   int // vehicles ranked against, including the player
	Elapsed float64
}

// Rank places score among the lap credits of every vehicle spawned so far.
// The score is inserted into a sorted copy of credits; rank counts down from
// the top, and ties resolve to the first matching index, so a tie ranks the
// player behind the traffic it tied with.
func Rank(credits []int, spawned, score int) int {
	sorted := append([]int(nil), credits...)
	sort.Ints(sorted)
	idx := sort.SearchInts(sorted, score)
	return spawned - idx + 1
}
