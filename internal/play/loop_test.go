package play

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daronb83/hang/internal/game"
)

var fiveWords = []string{"adze", "axes", "eyes", "eyed", "eyer"}

func newSession(t *testing.T, source []string, length int) *game.Session {
	t.Helper()
	s := game.New()
	require.NoError(t, s.StartGame(source, length))
	return s
}

// TestRun_Win plays e, y, d, r, s against the five-word pool.
func TestRun_Win(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	res, err := Run(s, strings.NewReader("e\ny\nd\nr\ns\n"), &out, Options{Guesses: 3})
	require.NoError(t, err)

	assert.True(t, res.Won)
	assert.Equal(t, "eyes", res.Word)
	assert.Equal(t, "eyes", res.Pattern)
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, 5, res.Turns)

	text := out.String()
	assert.Contains(t, text, "Welcome to Hangman!")
	assert.Contains(t, text, "Yes, there are 2 e's")
	assert.Contains(t, text, "Yes, there is 1 y")
	assert.Contains(t, text, "Sorry, there are no d's")
	assert.Contains(t, text, "Sorry, there are no r's")
	assert.Contains(t, text, "Used Letters: d, e, r, y")
	assert.Contains(t, text, "Word: e_e_")
	assert.Contains(t, text, "You win!")
	assert.NotContains(t, text, "You lose!")
}

// TestRun_Lose exhausts a one-guess budget on z. Only adze has a z, so the
// four blank words survive and the z costs the last guess.
func TestRun_Lose(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	res, err := Run(s, strings.NewReader("z"), &out, Options{Guesses: 1})
	require.NoError(t, err)

	assert.False(t, res.Won)
	assert.Equal(t, "____", res.Pattern)
	assert.Equal(t, []string{"axes", "eyed", "eyer", "eyes"}, s.Pool())
	assert.Equal(t, "axes", res.Word)
	assert.Equal(t, 0, res.Remaining)
	assert.Contains(t, out.String(), "Sorry, there are no z's")
	assert.Contains(t, out.String(), "You lose!")
	assert.Contains(t, out.String(), "The word was: axes")
}

// TestRun_LoseNoMatch spends the budget on a letter no word contains, so the
// whole pool survives and the first word is claimed.
func TestRun_LoseNoMatch(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	res, err := Run(s, strings.NewReader("q"), &out, Options{Guesses: 1})
	require.NoError(t, err)

	assert.False(t, res.Won)
	assert.Equal(t, "____", res.Pattern)
	assert.Len(t, s.Pool(), 5)
	assert.Equal(t, "adze", res.Word)
	assert.Contains(t, out.String(), "The word was: adze")
}

// TestRun_RejectedGuessesAreFree verifies invalid and repeated guesses do
// not cost a turn.
func TestRun_RejectedGuessesAreFree(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	res, err := Run(s, strings.NewReader("1 e E e x"), &out, Options{Guesses: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Turns)
	assert.False(t, res.Won)
	assert.Equal(t, "eyed", res.Word)

	text := out.String()
	assert.Contains(t, text, "Invalid input")
	assert.Equal(t, 2, strings.Count(text, "You already used that letter"))
	assert.Contains(t, text, "Sorry, there are no x's")
}

// TestRun_UsesFirstCharacter verifies multi-letter tokens guess their first letter.
func TestRun_UsesFirstCharacter(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	_, err := Run(s, strings.NewReader("Elephant zz"), &out, Options{Guesses: 1})
	require.NoError(t, err)
	assert.Equal(t, []rune{'e', 'z'}, s.Guessed())
}

// TestRun_InputClosed verifies EOF mid-game is reported as ErrInputClosed.
func TestRun_InputClosed(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	var out bytes.Buffer

	res, err := Run(s, strings.NewReader("e\n"), &out, Options{Guesses: 2})
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 1, res.Turns)
}

// TestRun_EmptyPool surfaces the session's usage error.
func TestRun_EmptyPool(t *testing.T) {
	s := newSession(t, fiveWords, 7)
	var out bytes.Buffer

	_, err := Run(s, strings.NewReader("a"), &out, Options{Guesses: 2})
	assert.ErrorIs(t, err, game.ErrEmptyPool)
}

// TestRun_BadBudget rejects a budget below one before prompting.
func TestRun_BadBudget(t *testing.T) {
	s := newSession(t, fiveWords, 4)
	_, err := Run(s, strings.NewReader("a"), &bytes.Buffer{}, Options{Guesses: 0})
	assert.Error(t, err)
}

// TestUsedLetters verifies the comma-separated letter list.
func TestUsedLetters(t *testing.T) {
	assert.Equal(t, "", usedLetters(nil))
	assert.Equal(t, "a", usedLetters([]rune{'a'}))
	assert.Equal(t, "a, e, z", usedLetters([]rune{'a', 'e', 'z'}))
}
