// internal/game/engine.go
//
// Session engine for a single Evil Hangman game.
// Responsibilities:
//   - Start games from a word source and a fixed word length.
//   - Validate guesses (alphabetic, not repeated) in a fixed order.
//   - Delegate partitioning to the pattern package and commit the
//     surviving class as the new pool and pattern.
//
// Notes:
//   - Letters are folded to lowercase here, once; the pattern package never
//     sees uppercase input.
//   - A rejected guess never touches the pool, the pattern, or the guessed set.
//   - Win/lose is not tracked here. Callers inspect Pattern() and their own
//     guess budget.
package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/daronb83/hang/internal/pattern"
)

// New constructs an Unstarted session.
func New() *Session {
	return &Session{guessed: make(map[rune]bool)}
}

// StartGame resets the session and seeds the pool with every distinct entry
// of source whose length is exactly length. Entries are lowercased, and any
// entry with a character outside a–z is dropped.
//
// An empty resulting pool is allowed here; it surfaces as ErrEmptyPool on the
// first MakeGuess.
func (s *Session) StartGame(source []string, length int) error {
	if length < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	seen := make(map[string]struct{}, len(source))
	pool := make([]string, 0)
	for _, w := range source {
		w = strings.ToLower(w)
		if len(w) != length || !isASCIIWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		pool = append(pool, w)
	}
	sort.Strings(pool)

	s.pool = pool
	s.guessed = make(map[rune]bool)
	s.pattern = pattern.Initial(length)
	s.length = length
	s.started = true

	log.Debug().Int("length", length).Int("pool", len(pool)).Msg("game started")
	return nil
}

// MakeGuess applies letter and returns the new candidate pool.
//
// Checks run in this order, each with its own error:
//   - letter is not a–z / A–Z       → ErrInvalidInput
//   - letter was already guessed    → ErrGuessAlreadyMade
//   - the pool is empty             → ErrEmptyPool
//
// On success the returned slice is a non-empty subset of the previous pool.
func (s *Session) MakeGuess(letter rune) ([]string, error) {
	if !isASCIILetter(letter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, letter)
	}
	letter = unicode.ToLower(letter)
	if s.guessed[letter] {
		return nil, fmt.Errorf("%w: %q", ErrGuessAlreadyMade, letter)
	}
	if len(s.pool) == 0 {
		return nil, ErrEmptyPool
	}

	guess := byte(letter)
	groups := pattern.Partition(s.pool, guess, s.pattern)
	key, subset, err := pattern.SelectBest(groups, guess)
	if err != nil {
		// Unreachable with a non-empty pool.
		return nil, fmt.Errorf("select class: %w", err)
	}

	before := len(s.pool)
	if s.guessed == nil {
		s.guessed = make(map[rune]bool)
	}
	s.guessed[letter] = true
	s.pattern = key
	s.pool = subset

	log.Debug().
		Str("letter", string(letter)).
		Int("classes", len(groups)).
		Int("before", before).
		Int("after", len(subset)).
		Str("pattern", key).
		Msg("guess applied")

	return s.Pool(), nil
}

// Pattern returns the current reveal key ("" before StartGame).
func (s *Session) Pattern() string { return s.pattern }

// Guessed returns the guessed letters in ascending order.
func (s *Session) Guessed() []rune {
	out := make([]rune, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pool returns a copy of the current candidate words, sorted.
func (s *Session) Pool() []string {
	return append([]string(nil), s.pool...)
}

// WordLength returns the length chosen at StartGame.
func (s *Session) WordLength() int { return s.length }

// Started reports whether StartGame has been called.
func (s *Session) Started() bool { return s.started }

// isASCIIWord reports whether every byte of w is in a–z.
func isASCIIWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// isASCIILetter reports whether r is in a–z or A–Z.
func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
