// commands.go
//
// Cobra command tree for the helper binary.
//   - (default) / shell: interactive constraint-tracking session on stdin.
//   - serve:             expose the same session over local HTTP.
//   - score:             replay a guess against a known answer and print the
//                        feedback string a real game would emit.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/httpserver"
	"github.com/robalobadob/wordle-helper/internal/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "wordle-helper",
		Short: "Track Wordle feedback and vet your next guess",
		Long: "wordle-helper won't tell you which word to play, but it remembers every\n" +
			"feedback round and tells you whether a guess you are about to make\n" +
			"contradicts what the game has already taught you.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Interactive session (same as running with no subcommand)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker over local HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := httpserver.New(store.NewSession())
			port := getEnv("PORT", "5176")
			log.Info().Str("port", port).Msg("starting wordle-helper server")
			return srv.Start(":" + port)
		},
	}

	scoreCmd = &cobra.Command{
		Use:   "score <answer> <guess>",
		Short: "Print the feedback a game with the given answer gives the guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			marks, err := game.Score(args[0], args[1])
			if err != nil {
				if errors.Is(err, game.ErrBadWord) {
					return fmt.Errorf("score %q %q: %w", args[0], args[1], err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), game.MarksString(marks))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(shellCmd, serveCmd, scoreCmd)
	rootCmd.SetOut(os.Stdout)
}
