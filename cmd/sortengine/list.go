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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-sortengine/sorting"
)

func cmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list available algorithms",
		Action: func(c *cli.Context) error {
			for _, a := range sorting.Algorithms() {
				line := a.String()
				if a.Stable() {
					line += " (stable)"
				}
				if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
