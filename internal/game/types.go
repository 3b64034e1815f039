// internal/game/types.go
//
// Core type definitions for the Evil Hangman session.
// Defines:
//   - Session: state for a single game (candidate pool, guesses, pattern).
//   - Sentinel errors returned by StartGame and MakeGuess.

package game

import "errors"

// Session holds the state of a single Evil Hangman game.
//
// A zero Session is Unstarted; StartGame moves it to InProgress. A Session is
// owned by one caller and is not safe for concurrent use. Run independent
// games on independent Sessions.
type Session struct {
	pool    []string      // candidate words, sorted ascending
	guessed map[rune]bool // lowercase letters guessed so far
	pattern string        // current reveal key
	length  int           // word length chosen at StartGame
	started bool          // true once StartGame has succeeded
}

var (
	// ErrInvalidInput is returned when a guess is not an a–z letter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGuessAlreadyMade is returned when a letter is guessed twice.
	ErrGuessAlreadyMade = errors.New("guess already made")

	// ErrEmptyPool is returned by MakeGuess when there are no candidate
	// words: either StartGame was never called, or no word in the source had
	// the requested length. It is a usage error, not a game outcome.
	ErrEmptyPool = errors.New("candidate pool is empty")

	// ErrInvalidLength is returned by StartGame for a word length below 1.
	ErrInvalidLength = errors.New("word length must be at least 1")
)

// IsRecoverable reports whether err is a rejected guess the caller should
// re-prompt for without charging the player.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrGuessAlreadyMade)
}
