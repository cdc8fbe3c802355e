/*
Copyright 2026 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	// Default log level
	DefaultLevel = "info"
	// Default timestamp in logs
	DefaultLogTimestamp = false

	// Text format
	FormatText = "text"
	// Colored text format
	FormatColor = "color"
	// JSON format
	FormatJSON = "json"
)

// Options hold the logging flags
type Options struct {
	Level     string
	Format    string
	Timestamp bool
}

// AddFlags registers the logging flags on fs
func AddFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Level, "verbosity", "v", DefaultLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	fs.StringVar(&opts.Format, "log-format", FormatText, "Log format (text, color, json)")
	fs.BoolVar(&opts.Timestamp, "log-timestamp", DefaultLogTimestamp, "Timestamp in log output")
}

// Configure sets the logrus logging level and formatter. Logs always go to
// stderr, stdout carries prompts and copy progress.
func Configure(opts Options) error {
	return configure(os.Stderr, opts)
}

func configure(out io.Writer, opts Options) error {
	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(out)

	var formatter logrus.Formatter
	switch opts.Format {
	case FormatText:
		formatter = &logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: !opts.Timestamp,
			FullTimestamp:    opts.Timestamp,
		}
	case FormatColor:
		formatter = &logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: opts.Timestamp,
		}
	case FormatJSON:
		formatter = &logrus.JSONFormatter{
			DisableTimestamp: !opts.Timestamp,
		}
	default:
		return fmt.Errorf("not a valid log format: %q. Please specify one of (text, color, json)", opts.Format)
	}
	logrus.SetFormatter(formatter)

	return nil
}
