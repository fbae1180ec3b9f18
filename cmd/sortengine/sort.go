// Copyright 2025 go-sortengine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-sortengine/sorting"
)

func cmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortValues,
		Usage:     "sort values given as arguments or read from stdin",
		ArgsUsage: "[VALUE ...]",
		Description: `Sorts the values and prints them on one line separated by spaces.
Without arguments, whitespace-separated values are read from stdin.

Examples:
$ sortengine sort --algorithm heap 5 3 9 1
$ sortengine sort --type string --reverse pear apple fig
# negative numbers must follow --
$ sortengine sort -- -3 7 -10`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   string(sorting.Quick),
				EnvVars: []string{"SORTENGINE_ALGORITHM"},
				Usage:   "sorting algorithm (" + algorithmNames() + ")",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   "int",
				EnvVars: []string{"SORTENGINE_TYPE"},
				Usage:   "element type: int, float or string",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "sort in descending order",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "log the number of comparisons and elapsed time",
			},
		},
	}
}

func algorithmNames() string {
	var names []string
	for _, a := range sorting.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func sortValues(c *cli.Context) error {
	algo, err := sorting.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}

	tokens := c.Args().Slice()
	if len(tokens) == 0 {
		logger.Debug("no arguments, reading values from stdin")
		if tokens, err = readTokens(c.App.Reader); err != nil {
			return err
		}
	}

	switch kind := c.String("type"); kind {
	case "int":
		vals, err := parseTokens(tokens, kind, strconv.Atoi)
		if err != nil {
			return err
		}
		return sortAndPrint(c, algo, vals, cmp.Compare[int])
	case "float":
		vals, err := parseTokens(tokens, kind, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
		if err != nil {
			return err
		}
		return sortAndPrint(c, algo, vals, cmp.Compare[float64])
	case "string":
		return sortAndPrint(c, algo, tokens, strings.Compare)
	default:
		return errors.Errorf("unknown element type %q", kind)
	}
}

// readTokens splits r into whitespace-separated words.
func readTokens(r io.Reader) ([]string, error) {
	tokens := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read values")
	}
	return tokens, nil
}

func parseTokens[T any](tokens []string, kind string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q as %s", tok, kind)
		}
		out = append(out, v)
	}
	return out, nil
}

func sortAndPrint[T any](c *cli.Context, algo sorting.Algorithm, vals []T, order func(a, b T) int) error {
	if c.Bool("reverse") {
		order = sorting.Reverse(order)
	}
	fn, err := sorting.Lookup[T](algo)
	if err != nil {
		return err
	}

	counter := sorting.NewCounter(order)
	start := time.Now()
	sorted, err := fn(vals, counter.Compare)
	if err != nil {
		return errors.Wrapf(err, "%s sort", algo)
	}

	fields := logrus.Fields{
		"algorithm":   algo,
		"elements":    len(sorted),
		"comparisons": counter.Count(),
		"elapsed":     time.Since(start),
	}
	if c.Bool("stats") {
		logger.WithFields(fields).Info("sorted")
	} else {
		logger.WithFields(fields).Debug("sorted")
	}

	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = fmt.Sprint(v)
	}
	_, err = fmt.Fprintln(c.App.Writer, strings.Join(out, " "))
	return err
}
