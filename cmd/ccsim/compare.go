package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccplag/ccsim/internal/ccerrors"
	"github.com/ccplag/ccsim/internal/corpus"
	"github.com/ccplag/ccsim/internal/frontend"
)

var compareCmd = &cobra.Command{
	Use:   "compare <known_samples_dir> <to_check_dir>",
	Short: "All-pairs compare every function in to_check_dir against known_samples_dir",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := newParser()
		if err != nil {
			return err
		}
		defer parser.Dispose()

		known, checked, err := loadCorpora(parser, args[0], args[1])
		if err != nil {
			return err
		}

		findings := corpus.CompareAll(checked.Entries, known.Entries, cfg.Workers())
		printFindings(findings)
		return nil
	},
}

func loadCorpora(parser *frontend.Parser, knownDir, checkDir string) (*corpus.Corpus, *corpus.Corpus, error) {
	known, err := corpus.Load(knownDir, cfg.SourceSuffixes(), cfg.CompileArgs(), parser, logger)
	if isFatalInput(err) {
		return nil, nil, err
	}
	checked, err := corpus.Load(checkDir, cfg.SourceSuffixes(), cfg.CompileArgs(), parser, logger)
	if isFatalInput(err) {
		return nil, nil, err
	}
	return known, checked, nil
}

// isFatalInput reports whether err is the directory-walk failure that
// should abort the command, as opposed to the aggregated per-file parse
// diagnostics Load always returns alongside a partial corpus — per
// spec.md §7 ("Parse failure... comparisons proceed on whatever
// top-level declarations parsed").
func isFatalInput(err error) bool {
	return errors.Is(err, ccerrors.ErrUnreadableInput)
}

func printFindings(findings []corpus.Finding) {
	for _, f := range findings {
		fmt.Printf("comparing %s at %s\n", f.CheckedName, f.CheckedLocation)
		fmt.Printf("to %s at %s\n", f.ComparedName, f.ComparedLocation)
		printScore(f.Score)
		fmt.Println()
	}
}

func printScore(score float64) {
	line := fmt.Sprintf("similarity: %.2f", score)
	switch {
	case score >= 0.9:
		color.New(color.FgRed, color.Bold).Println(line)
	case score >= 0.5:
		color.New(color.FgYellow).Println(line)
	default:
		fmt.Println(line)
	}
}
