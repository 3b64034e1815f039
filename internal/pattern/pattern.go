// internal/pattern/pattern.go
//
// Reveal-key engine for Evil Hangman.
// Responsibilities:
//   - Compute the reveal key a word would produce for a guessed letter.
//   - Partition a candidate pool into classes by reveal key.
//   - Pick the surviving class: largest first, then the lowest weight.
//
// Notes:
//   - Every function here is pure; callers pass the current pattern in
//     explicitly, so the package is safe to share across goroutines.
//   - Letters are expected to be lowercase a–z. Case folding happens in the
//     game package before anything reaches this one.
package pattern

import (
	"errors"
	"sort"
	"strings"
)

// Blank marks a position whose letter has not been revealed.
const Blank = '_'

// ErrNoGroups is returned by SelectBest when there is nothing to choose from.
// It only happens when the caller partitions an empty pool.
var ErrNoGroups = errors.New("pattern: no groups to select from")

// Initial returns the all-blank pattern for a word of the given length.
func Initial(length int) string {
	if length <= 0 {
		return ""
	}
	return strings.Repeat(string(Blank), length)
}

// Key returns the pattern that would be shown if word were the secret and
// guess had just been played on top of current.
//
// Positions where word holds guess show guess; every other position carries
// current forward unchanged (including letters revealed by earlier guesses).
// word and current must have the same length.
func Key(word string, guess byte, current string) string {
	b := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		if word[i] == guess {
			b[i] = guess
		} else {
			b[i] = current[i]
		}
	}
	return string(b)
}

// Partition groups every word in pool by its Key under guess and current.
// Words inside a group keep their relative order from pool.
func Partition(pool []string, guess byte, current string) map[string][]string {
	groups := make(map[string][]string)
	for _, w := range pool {
		k := Key(w, guess, current)
		groups[k] = append(groups[k], w)
	}
	return groups
}

// Weight scores a key for tie-breaking; lower is preferred.
//
// Walking offsets i = 1..L-1, the character at L-i-1 is checked, and a hit on
// guess adds L+i. The last character of the key is never examined.
func Weight(key string, guess byte) int {
	n := len(key)
	weight := 0
	for i := 1; i < n; i++ {
		if key[n-i-1] == guess {
			weight += n + i
		}
	}
	return weight
}

// SelectBest picks the class that survives a guess.
//
// The largest class wins. Among equally sized classes the lower Weight wins,
// and among those the lexicographically smallest key, so the result never
// depends on map iteration order.
func SelectBest(groups map[string][]string, guess byte) (string, []string, error) {
	if len(groups) == 0 {
		return "", nil, ErrNoGroups
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	bestSize, bestWeight := len(groups[best]), Weight(best, guess)
	for _, k := range keys[1:] {
		size := len(groups[k])
		switch {
		case size > bestSize:
			best, bestSize, bestWeight = k, size, Weight(k, guess)
		case size == bestSize:
			if w := Weight(k, guess); w < bestWeight {
				best, bestWeight = k, w
			}
		}
	}
	return best, groups[best], nil
}

// Count returns how many times letter appears in p.
func Count(p string, letter byte) int {
	return strings.Count(p, string(letter))
}

// Solved reports whether p has no blanks left.
func Solved(p string) bool {
	return p != "" && strings.IndexByte(p, Blank) < 0
}
