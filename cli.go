// cli.go
//
// Command-line entry point.
//
//   hang [dictionary...] wordLength guesses
//
// Every argument before the last two is joined with spaces to form the
// dictionary path, so paths containing spaces work unquoted. With no
// dictionary argument the HANGMAN_DICTIONARY setting is used, and failing
// that the embedded word list.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/daronb83/hang/internal/config"
	"github.com/daronb83/hang/internal/game"
	"github.com/daronb83/hang/internal/play"
	"github.com/daronb83/hang/internal/words"
)

const usage = "Usage: hang dictionary wordLength guesses"

var errUsage = errors.New(usage)

// args is the parsed positional argument list.
type args struct {
	dictionary string
	wordLength int
	guesses    int
}

// parseArgs validates the positional arguments: wordLength >= 2, guesses >= 1.
func parseArgs(in []string) (args, error) {
	if len(in) < 2 {
		return args{}, errUsage
	}
	n := len(in)
	wordLength, err := strconv.Atoi(in[n-2])
	if err != nil {
		return args{}, errUsage
	}
	guesses, err := strconv.Atoi(in[n-1])
	if err != nil {
		return args{}, errUsage
	}
	if wordLength < 2 || guesses < 1 {
		return args{}, errUsage
	}
	return args{
		dictionary: strings.TrimSpace(strings.Join(in[:n-2], " ")),
		wordLength: wordLength,
		guesses:    guesses,
	}, nil
}

// loadWords resolves the dictionary from the argument, then config, then the
// embedded default.
func loadWords(arg string, cfg *config.Config) ([]string, error) {
	path := arg
	if path == "" {
		path = cfg.Dictionary
	}
	if path == "" {
		log.Debug().Msg("using embedded dictionary")
		return words.Default()
	}
	log.Debug().Str("path", path).Msg("loading dictionary")
	return words.Load(path)
}

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "hang [dictionary] wordLength guesses",
		Short: "Play hangman against a computer that never picks a word",
		Long: `hang plays Evil Hangman: instead of choosing a secret word up front,
the computer keeps every word consistent with its answers and, after each
guess, sticks with the largest family of words it can.

Examples:
  hang words.txt 5 10     # five-letter words, ten wrong guesses allowed
  hang 4 6                # embedded dictionary`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			zerolog.SetGlobalLevel(cfg.Level())

			a, err := parseArgs(argv)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return err
			}

			list, err := loadWords(a.dictionary, cfg)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return err
			}
			if words.Lengths(list)[a.wordLength] == 0 {
				log.Warn().Int("length", a.wordLength).Msg("no words of that length")
				fmt.Fprintf(cmd.OutOrStdout(), "No %d-letter words in the dictionary\n", a.wordLength)
				return fmt.Errorf("no words of length %d", a.wordLength)
			}

			s := game.New()
			if err := s.StartGame(list, a.wordLength); err != nil {
				return err
			}

			color := !cfg.NoColor && !noColor && isatty.IsTerminal(os.Stdout.Fd())
			_, err = play.Run(s, cmd.InOrStdin(), cmd.OutOrStdout(), play.Options{
				Guesses: a.guesses,
				Color:   color,
			})
			if errors.Is(err, play.ErrInputClosed) {
				log.Info().Msg("input closed, game abandoned")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	// Negative numbers such as "-1" reach here as unknown shorthand flags.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.OutOrStdout(), usage)
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	return cmd
}
