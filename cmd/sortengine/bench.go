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
	"cmp"
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-sortengine/sorting"
	"github.com/ajroetker/go-sortengine/workerpool"
)

func cmdBench() *cli.Command {
	return &cli.Command{
		Name:   "bench",
		Action: bench,
		Usage:  "compare algorithms on the same random input",
		Description: `Generates random integers and sorts them with every selected algorithm.
The algorithms run concurrently, each on its own copy of the input.

Examples:
$ sortengine bench --size 2000
$ sortengine bench --size 100000 --algorithm merge,quick,heap,counting --seed 42`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Value:   1000,
				Usage:   "number of random integers",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (default: current time)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "concurrent workers (0 means GOMAXPROCS)",
			},
			&cli.StringSliceFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "algorithms to run (default: all)",
			},
		},
	}
}

type benchResult struct {
	algo        sorting.Algorithm
	comparisons int64
	elapsed     time.Duration
	sorted      bool
	err         error
}

func bench(c *cli.Context) error {
	algos, err := selectAlgorithms(c.StringSlice("algorithm"))
	if err != nil {
		return err
	}
	size := c.Int("size")
	if size < 0 {
		return errors.Errorf("invalid size %d", size)
	}
	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	input := make([]int, size)
	for i := range input {
		input[i] = rng.Intn(10*size+1) - 5*size
	}

	pool := workerpool.New(c.Int("workers"))
	defer pool.Close()

	logger.Infof("benchmarking %d algorithms on %s random ints (seed %d, %d workers)",
		len(algos), humanize.Comma(int64(size)), seed, pool.Size())

	results := workerpool.Map(pool, algos, func(a sorting.Algorithm) benchResult {
		return runBench(a, input)
	})

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCOMPARISONS\tTIME\tSTABLE")
	for _, r := range results {
		if r.err != nil {
			return errors.Wrapf(r.err, "%s sort", r.algo)
		}
		if !r.sorted {
			return errors.Errorf("%s sort produced unsorted output", r.algo)
		}
		logger.Debugf("%s: %d comparisons in %s", r.algo, r.comparisons, r.elapsed)
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
			r.algo, humanize.Comma(r.comparisons), r.elapsed.Round(time.Microsecond), r.algo.Stable())
	}
	return w.Flush()
}

// runBench sorts input with a. Input is only read, so concurrent calls may
// share it.
func runBench(a sorting.Algorithm, input []int) benchResult {
	res := benchResult{algo: a}
	fn, err := sorting.Lookup[int](a)
	if err != nil {
		res.err = err
		return res
	}

	counter := sorting.NewCounter(cmp.Compare[int])
	start := time.Now()
	sorted, err := fn(input, counter.Compare)
	res.elapsed = time.Since(start)
	res.comparisons = counter.Count()
	res.err = err
	res.sorted = err == nil && len(sorted) == len(input) && sorting.IsSorted(sorted, cmp.Compare[int])
	return res
}

// selectAlgorithms parses names, dropping duplicates. No names selects every
// algorithm.
func selectAlgorithms(names []string) ([]sorting.Algorithm, error) {
	if len(names) == 0 {
		return sorting.Algorithms(), nil
	}
	var out []sorting.Algorithm
	seen := map[sorting.Algorithm]bool{}
	for _, name := range names {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out, nil
}
