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

package executor

import (
	"io"

	"github.com/GoogleContainerTools/dupl/pkg/config"
	"github.com/GoogleContainerTools/dupl/pkg/ignore"
	"github.com/GoogleContainerTools/dupl/pkg/prompt"
	"github.com/GoogleContainerTools/dupl/pkg/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Outcome is how a run ended
type Outcome int

const (
	// Failed is returned alongside every error
	Failed Outcome = iota
	// Completed means every file was copied
	Completed
	// Declined means a confirmation prompt was answered with no
	Declined
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Completed:
		return "completed"
	case Declined:
		return "declined"
	}
	return "unknown"
}

// for testing
var fs = afero.NewOsFs()

// DoDuplicate runs the whole pipeline for opts: prepare the destination,
// resolve ignore patterns, scan the source and copy. Prompts go through p
// unless opts.Force is set, progress is written to w.
func DoDuplicate(opts *config.DuplOptions, p prompt.Prompter, w io.Writer) (Outcome, error) {
	if opts.Force {
		p = prompt.Always{}
	}

	proceed, err := PrepareDestination(fs, opts.Out, p)
	if err != nil {
		return Failed, errors.Wrap(err, "preparing destination")
	}
	if !proceed {
		logrus.Debugf("Leaving %s untouched", opts.Out)
		return Declined, nil
	}

	matcher, err := ignore.Resolve(fs, opts)
	if err != nil {
		return Failed, errors.Wrap(err, "resolving ignore patterns")
	}

	logrus.Debugf("Scanning %s", opts.Src)
	files, err := util.ScanFiles(opts.Src, matcher)
	if err != nil {
		return Failed, errors.Wrap(err, "scanning source")
	}

	proceed, err = CopyFiles(opts, files, p, w)
	if err != nil {
		return Failed, errors.Wrap(err, "copying files")
	}
	if !proceed {
		return Declined, nil
	}
	return Completed, nil
}
