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

	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/GoogleContainerTools/dupl/pkg/prompt"
	"github.com/GoogleContainerTools/dupl/pkg/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// PrepareDestination creates out if needed. When out already holds a file
// anywhere below it the user is asked before out is emptied. It returns
// false if the user declined, in which case nothing was changed.
func PrepareDestination(fs afero.Fs, out string, p prompt.Prompter) (bool, error) {
	if err := fs.MkdirAll(out, constants.DirPerm); err != nil {
		return false, errors.Wrapf(err, "creating %s", out)
	}
	hasFiles, err := util.ContainsFile(fs, out)
	if err != nil {
		return false, err
	}
	if !hasFiles {
		return true, nil
	}

	ok, err := p.Confirm(fmt.Sprintf("Overwrite existing files in %s (this will delete the entire folder before the operation)", out))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	logrus.Infof("Emptying %s", out)
	return true, util.EmptyDir(fs, out)
}
