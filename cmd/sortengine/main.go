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

// Command sortengine sorts values and compares sorting algorithms.
//
// Usage:
//
//	sortengine sort --algorithm quick 5 3 9 1
//	echo "pear apple fig" | sortengine sort --type string --algorithm merge
//	sortengine bench --size 5000 --algorithm merge,quick,heap
//	sortengine list
//
// Flags may also be set through the environment: SORTENGINE_ALGORITHM and
// SORTENGINE_TYPE.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-sortengine/internal/logging"
)

var logger = logging.GetLogger("sortengine")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "sortengine",
		Usage:                "sort values with classic comparison sorts",
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Before:               setup,
		Commands: []*cli.Command{
			cmdSort(),
			cmdBench(),
			cmdList(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only warning and errors",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
	}
}

func setup(c *cli.Context) error {
	switch {
	case c.Bool("verbose"):
		logging.SetLogLevel(logrus.DebugLevel)
	case c.Bool("quiet"):
		logging.SetLogLevel(logrus.WarnLevel)
	default:
		logging.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		logging.DisableLogColor()
	}
	return nil
}
