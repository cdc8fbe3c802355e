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
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/GoogleContainerTools/dupl/pkg/config"
	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/GoogleContainerTools/dupl/pkg/prompt"
	"github.com/GoogleContainerTools/dupl/pkg/timing"
	"github.com/GoogleContainerTools/dupl/pkg/util"
	"github.com/sirupsen/logrus"
)

// CopyFiles asks for confirmation and then copies files, in order, to the
// same relative location under opts.Out. The first failure stops the copy.
// It returns false if the user declined.
func CopyFiles(opts *config.DuplOptions, files []util.FileEntry, p prompt.Prompter, w io.Writer) (bool, error) {
	fmt.Fprintf(w, "Copying %d files from %s to %s\n", len(files), opts.Src, opts.Out)
	ok, err := p.Confirm(fmt.Sprintf("Copy %d files from %s to %s", len(files), opts.Src, opts.Out))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	timer := timing.Start(constants.CopyCategory)
	pr := newProgress(w, len(files))
	for i, f := range files {
		dest, err := util.DestinationPath(opts.Src, opts.Out, f.Path)
		if err != nil {
			return false, err
		}
		if err := util.CopyFile(f.Path, dest); err != nil {
			return false, err
		}
		pr.copied(i+1, f.Path)
	}
	elapsed := timing.DefaultRun.Stop(timer)
	pr.done(elapsed)
	logrus.Debugf("Copied %d files in %s", len(files), elapsed)
	return true, nil
}

// progress rewrites a single terminal line after every copied file
type progress struct {
	w     io.Writer
	total int
	width int
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{
		w:     w,
		total: total,
		width: len(strconv.Itoa(total)),
	}
}

func (p *progress) copied(n int, path string) {
	fmt.Fprintf(p.w, "%s[%0*d/%d] Copying %s", constants.ClearLine, p.width, n, p.total, path)
}

func (p *progress) done(elapsed time.Duration) {
	fmt.Fprintf(p.w, "%s[%d/%d] Operation completed in %ss\n", constants.ClearLine, p.total, p.total,
		strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
}
