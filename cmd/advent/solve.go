package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/almanac"
	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/puzzle"
)

// ErrVerifyMismatch indicates the brute-force check disagreed with the answer.
var ErrVerifyMismatch = errors.New("verification failed")

// almanacDay is the day whose part 2 has a brute-force oracle.
const almanacDay = 5

func solveCmd(reg *puzzle.Registry, g *globals) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "solve <day> [file|-]",
		Short: "Solve one day",
		Long: `Solve one day and print both answers.

The input is read from file, from stdin when file is "-", or from
$ADVENT_INPUT_DIR/<NN>.txt when file is omitted.

Environment variables:
  ADVENT_INPUT_DIR    Directory of default inputs (default: inputs)
  ADVENT_LOG_LEVEL    trace, debug, info, warn, error (default: info)
  ADVENT_LOG_FORMAT   text, json (default: text)
  ADVENT_SCAN_LIMIT   Transform budget of --verify (default: 10000000)`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(g.format)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", puzzle.ErrInvalidDay, args[0])
			}
			entry, err := reg.Lookup(n)
			if err != nil {
				return err
			}
			cfg, log, err := setup(cmd, g)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 2 {
				path = args[1]
			}
			input, err := readInput(cmd.InOrStdin(), cfg, n, path)
			if err != nil {
				return err
			}

			began := time.Now()
			ans, err := entry.Solve(input)
			if err != nil {
				return fmt.Errorf("day %d: %w", n, err)
			}
			log.WithFields(logrus.Fields{
				"day":     n,
				"part1":   ans.Part1,
				"part2":   ans.Part2,
				"elapsed": time.Since(began).String(),
			}).Info("solved")

			if verify {
				if err := verifyAnswer(log, cfg, n, input, ans); err != nil {
					return err
				}
			}
			return writeResult(cmd.OutOrStdout(), f, result{Day: n, Title: entry.Title, Answer: ans})
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "Cross-check part 2 by brute force where an oracle exists")
	return cmd
}

// readInput resolves the input source: "-" is stdin, an empty path is the
// day's file under cfg.InputDir.
func readInput(stdin io.Reader, cfg config.Config, day int, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	if path == "" {
		path = filepath.Join(cfg.InputDir, fmt.Sprintf("%02d.txt", day))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// verifyAnswer rechecks the almanac range answer by scanning every seed,
// within cfg.ScanLimit transforms. Other days have no oracle and are skipped.
func verifyAnswer(log logrus.FieldLogger, cfg config.Config, day int, input string, ans puzzle.Answer) error {
	if day != almanacDay {
		log.WithField("day", day).Warn("no oracle for day; skipping verification")
		return nil
	}
	a, err := almanac.Parse(input, almanac.WithLogger(log))
	if err != nil {
		return err
	}
	want, err := a.MinLocationBySeedScan(cfg.ScanLimit)
	if errors.Is(err, almanac.ErrScanLimit) {
		log.WithField("limit", cfg.ScanLimit).Warn("seed ranges exceed scan limit; skipping verification")
		return nil
	}
	if err != nil {
		return err
	}
	if want != ans.Part2 {
		return fmt.Errorf("%w: day %d part 2 is %d, scan found %d", ErrVerifyMismatch, day, ans.Part2, want)
	}
	log.WithField("day", day).Info("verified")
	return nil
}
