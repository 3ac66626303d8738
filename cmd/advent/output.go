package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/puzzle"
)

// ErrInvalidFormat indicates an unknown --format value.
var ErrInvalidFormat = errors.New("invalid output format")

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// result is one solved day as printed by "solve".
type result struct {
	Day    int           `json:"day" yaml:"day"`
	Title  string        `json:"title" yaml:"title"`
	Answer puzzle.Answer `json:"answer" yaml:"answer"`
}

// day is one registered day as printed by "list".
type day struct {
	Day   int    `json:"day" yaml:"day"`
	Title string `json:"title" yaml:"title"`
}

// write encodes v to w. text renders through textFn.
func write(w io.Writer, f format, v any, textFn func(io.Writer) error) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return textFn(w)
	}
}

func writeResult(w io.Writer, f format, r result) error {
	return write(w, f, r, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "day %d: %s\npart 1: %d\npart 2: %d\n", r.Day, r.Title, r.Answer.Part1, r.Answer.Part2)
		return err
	})
}

func writeDays(w io.Writer, f format, days []day) error {
	return write(w, f, days, func(w io.Writer) error {
		for _, d := range days {
			if _, err := fmt.Fprintf(w, "%2d  %s\n", d.Day, d.Title); err != nil {
				return err
			}
		}
		return nil
	})
}
