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

package cmd

import (
	"fmt"
	"os"

	"github.com/GoogleContainerTools/dupl/pkg/config"
	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/GoogleContainerTools/dupl/pkg/executor"
	"github.com/GoogleContainerTools/dupl/pkg/logging"
	"github.com/GoogleContainerTools/dupl/pkg/prompt"
	"github.com/GoogleContainerTools/dupl/pkg/timing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	opts    = &config.DuplOptions{}
	logOpts = &logging.Options{}
)

func init() {
	logging.AddFlags(RootCmd.PersistentFlags(), logOpts)
	addDuplOptionsFlags(RootCmd, opts)
	RootCmd.AddCommand(versionCmd)
}

// RootCmd is the dupl command that is run
var RootCmd = &cobra.Command{
	Use:   "dupl <src> <out>",
	Short: "Copy a directory tree to a destination, skipping ignored paths",
	Long: `Copy every file under src to the same relative path under out.

Paths matching --ignore globs or lines of src/.gitignore are skipped, and
ignored directories are not descended into. Patterns are anchored at src.
If out already contains files, the whole of out is emptied first.

Flag values must be attached with '=', e.g. --ignore=node_modules,*.log.`,
	Args: validateArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Configure(*logOpts)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.Resolve(args[0], args[1]); err != nil {
			return errors.Wrap(err, "resolving paths")
		}
		logrus.Debugf("Duplicating %s to %s", opts.Src, opts.Out)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// past this point errors are not usage problems
		cmd.SilenceUsage = true

		out := cmd.OutOrStdout()
		outcome, err := executor.DoDuplicate(opts, prompt.NewTerminal(cmd.InOrStdin(), out), out)
		if err != nil {
			return err
		}
		if outcome == executor.Declined {
			logrus.Info("Nothing was copied")
			return nil
		}
		logrus.Debugf("Timings:\n%s", timing.Summary())
		writeBenchmark()
		return nil
	},
}

// addDuplOptionsFlags configures o
func addDuplOptionsFlags(cmd *cobra.Command, o *config.DuplOptions) {
	cmd.Flags().VarP(&o.Ignore, "ignore", "i", "Ignore files/directories that match the given comma separated globs. Attach the value with '=', as in --ignore=x or -i=x. Set it repeatedly for more globs.")
	cmd.Flags().Lookup("ignore").NoOptDefVal = config.GlobNoValue
	cmd.Flags().StringVar(&o.Gitignore, "gitignore", constants.DefaultGitignore, "Use the .gitignore file in the src directory. Only \"false\" disables it.")
	cmd.Flags().Lookup("gitignore").NoOptDefVal = constants.DefaultGitignore
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false, "Overwrite files/directories that already exist and skip all prompts.")
}

// validateArgs requires exactly src and out
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return errors.New("please provide a source and destination")
	}
	if len(args) > 2 {
		return fmt.Errorf("unexpected argument %q, flag values must be attached with '=' (e.g. --ignore=%s)", args[2], args[2])
	}
	return nil
}

func writeBenchmark() {
	benchmarkFile := os.Getenv(constants.BenchmarkFileEnv)
	// false is a keyword to turn off benchmarking
	if benchmarkFile == "" || benchmarkFile == "false" {
		return
	}
	if err := timing.DefaultRun.WriteJSON(benchmarkFile); err != nil {
		logrus.Warnf("Unable to write benchmark file: %s", err)
	}
}
