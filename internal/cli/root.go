package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"srtjoin/internal/logging"
	"srtjoin/internal/subtitle"
)

var logger *logging.Logger

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd builds a fresh root command. Flag state lives on the
// returned command, never in package globals, so runs are independent.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srtjoin [flags] first second",
		Short: "Merge two SRT subtitle tracks into one",
		Long: `Srtjoin merges two time-ordered SRT subtitle tracks (for example
dialogue and signs/songs from the same video) into one chronologically
ordered track, renumbered from 1.

Entries whose time intervals overlap are combined into a single
multi-line cue spanning both intervals; each merge is reported on the
diagnostic stream. Leading or trailing entries can be dropped from
either input with a skip spec.

Examples:
  srtjoin dialogue.srt signs.srt > merged.srt
  srtjoin dialogue.srt signs.srt -o merged.srt
  srtjoin -s 1:+2 -s 2:+1,-3 dialogue.srt signs.srt`,
		Args: cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger = logging.NewLogger(verbose)
		},
		RunE: runJoin,
	}

	cmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().
		StringArrayP("skip", "s", nil, "Skip spec <1|2>:<+first,-last> (repeatable, once per input)")
	cmd.Flags().
		StringP("output", "o", "", "Output file path (default stdout)")

	return cmd
}

func runJoin(cmd *cobra.Command, args []string) error {
	skipValues, _ := cmd.Flags().GetStringArray("skip")
	outputPath, _ := cmd.Flags().GetString("output")

	specs, err := parseSkipSpecs(skipValues)
	if err != nil {
		return err
	}

	// Config is valid; anything past here is a runtime failure, not
	// a usage error.
	cmd.SilenceUsage = true

	sources := [2]subtitle.Source{
		{Path: args[0], SkipFirst: specs[1].first, SkipLast: specs[1].last},
		{Path: args[1], SkipFirst: specs[2].first, SkipLast: specs[2].last},
	}

	var tracks [2][]subtitle.Entry
	for i, src := range sources {
		entries, err := subtitle.ReadFile(src)
		if err != nil {
			return err
		}
		logger.Debugw("Parsed source",
			"path", src.Path,
			"entries", len(entries),
			"skip_first", src.SkipFirst,
			"skip_last", src.SkipLast,
		)
		tracks[i] = entries
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	warnings := 0
	err = subtitle.Join(out, tracks[0], tracks[1], func(w subtitle.Warning) {
		warnings++
		logger.Warnw(w.Message)
	})
	if err != nil {
		return fmt.Errorf("failed to write merged output: %w", err)
	}

	logger.Debugw("Merge complete",
		"output", outputPath,
		"warnings", warnings,
	)
	return nil
}
