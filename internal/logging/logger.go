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

// Package logging holds the process-wide logrus logger used by the
// sortengine command.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	root    = newRoot(os.Stderr)
	loggers = map[string]*logrus.Entry{}
)

func newRoot(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:      isTerminal(w),
		DisableTimestamp: true,
	})
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLogger returns the logger for a named component. Repeated calls with
// the same name return the same entry.
func GetLogger(name string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := root.WithField("component", name)
	loggers[name] = l
	return l
}

// SetLogLevel sets the level of every logger.
func SetLogLevel(lvl logrus.Level) {
	root.SetLevel(lvl)
}

// DisableLogColor turns off coloured output.
func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()

	if f, ok := root.Formatter.(*logrus.TextFormatter); ok {
		f.ForceColors = false
		f.DisableColors = true
	}
}

// SetOutput redirects every logger to w. Colours follow w's terminal status.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	root.SetOutput(w)
	if f, ok := root.Formatter.(*logrus.TextFormatter); ok {
		f.ForceColors = isTerminal(w)
	}
}
