// internal/play/loop.go
//
// Line-oriented interactive loop around a game.Session.
// Responsibilities:
//   - Prompt for one letter per turn and feed it to the session.
//   - Narrate each result ("Yes, there are 2 e's", "Sorry, there are no x's").
//   - Own the guess budget: it drops only when a guess reveals nothing.
//   - Decide win (no blanks left) and loss (budget exhausted).
//
// Notes:
//   - Rejected guesses (invalid or repeated) re-prompt at no cost.
//   - On a loss any word left in the pool is a valid answer; the first in
//     sorted order is shown.

package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/daronb83/hang/internal/game"
	"github.com/daronb83/hang/internal/pattern"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game finished")

// Options configures a Run.
type Options struct {
	Guesses int  // wrong-guess budget, must be >= 1
	Color   bool // styled output
}

// Result summarizes a finished game.
type Result struct {
	Won       bool   // pattern fully revealed before the budget ran out
	Word      string // the revealed word, or the word claimed on a loss
	Pattern   string // final pattern
	Remaining int    // guesses left at the end
	Turns     int    // accepted guesses
}

// Run plays one game on s, which must already be started, reading guesses
// from in and writing narration to out.
func Run(s *game.Session, in io.Reader, out io.Writer, opts Options) (Result, error) {
	if opts.Guesses < 1 {
		return Result{}, fmt.Errorf("guess budget must be at least 1, got %d", opts.Guesses)
	}
	st := newStyles(out, opts.Color)
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	res := Result{Remaining: opts.Guesses}
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Title.Render("Welcome to Hangman!"))

	for res.Remaining > 0 {
		fmt.Fprintf(out, "You have %d guess(es) left\n", res.Remaining)
		fmt.Fprintf(out, "Used Letters: %s\n", st.Muted.Render(usedLetters(s.Guessed())))
		fmt.Fprintf(out, "Word: %s\n", st.Word.Render(s.Pattern()))
		fmt.Fprint(out, "\nGuess a letter: ")

		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return res, fmt.Errorf("read guess: %w", err)
			}
			return res, ErrInputClosed
		}
		letter, _ := utf8.DecodeRuneInString(sc.Text())
		letter = unicode.ToLower(letter)

		if _, err := s.MakeGuess(letter); err != nil {
			switch {
			case errors.Is(err, game.ErrGuessAlreadyMade):
				fmt.Fprintln(out, st.Error.Render("You already used that letter"))
			case errors.Is(err, game.ErrInvalidInput):
				fmt.Fprintln(out, st.Error.Render("Invalid input"))
			default:
				return res, err
			}
			log.Debug().Err(err).Msg("guess rejected")
			continue
		}
		res.Turns++

		p := s.Pattern()
		switch n := pattern.Count(p, byte(letter)); {
		case n > 1:
			fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Yes, there are %d %c's", n, letter)))
		case n == 1:
			fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Yes, there is %d %c", n, letter)))
		default:
			fmt.Fprintln(out, st.Error.Render(fmt.Sprintf("Sorry, there are no %c's", letter)))
			res.Remaining--
		}

		if pattern.Solved(p) {
			res.Won, res.Word, res.Pattern = true, p, p
			fmt.Fprintln(out)
			fmt.Fprintln(out, st.Success.Render("You win!"))
			fmt.Fprintf(out, "Word: %s\n", st.Word.Render(p))
			log.Info().Str("word", p).Int("turns", res.Turns).Msg("player won")
			return res, nil
		}
	}

	res.Pattern = s.Pattern()
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Error.Render("You lose!"))
	if pool := s.Pool(); len(pool) > 0 {
		res.Word = pool[0]
		fmt.Fprintf(out, "The word was: %s\n\n", st.Word.Render(res.Word))
	}
	log.Info().Str("word", res.Word).Int("turns", res.Turns).Msg("player lost")
	return res, nil
}

// usedLetters renders guessed letters as "a, b, c".
func usedLetters(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
