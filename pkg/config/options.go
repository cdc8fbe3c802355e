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

package config

import (
	"os"
	"path/filepath"

	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/pkg/errors"
)

// DuplOptions are options that are set by command line arguments
type DuplOptions struct {
	Src       string
	Out       string
	Ignore    GlobList
	Gitignore string
	Force     bool
}

// GitignoreEnabled reports whether src/.gitignore should be read.
// Only the literal "false" turns it off.
func (o *DuplOptions) GitignoreEnabled() bool {
	return o.Gitignore != constants.GitignoreDisabled
}

// Resolve sets Src and Out from the positional arguments and makes them
// absolute. The source has to be an existing directory, and the destination
// may not be the source or one of its parents, since the destination can
// get wiped.
func (o *DuplOptions) Resolve(src, out string) error {
	var err error
	if o.Src, err = filepath.Abs(src); err != nil {
		return errors.Wrap(err, "getting absolute path for source")
	}
	if o.Out, err = filepath.Abs(out); err != nil {
		return errors.Wrap(err, "getting absolute path for destination")
	}
	fi, err := os.Stat(o.Src)
	if err != nil {
		return errors.Wrapf(err, "checking source %s", o.Src)
	}
	if !fi.IsDir() {
		return errors.Errorf("source %s is not a directory", o.Src)
	}
	if rel, err := filepath.Rel(o.Out, o.Src); err == nil && !startsWithParent(rel) {
		return errors.Errorf("destination %s must not contain the source %s", o.Out, o.Src)
	}
	return nil
}

func startsWithParent(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
