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

package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/GoogleContainerTools/dupl/pkg/timing"
	"github.com/karrick/godirwalk"
	otiai10Cpy "github.com/otiai10/copy"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileEntry is a non-directory entry found while scanning the source tree
type FileEntry struct {
	Path string
	Name string
}

// Skipper decides whether a path is left out of a scan
type Skipper interface {
	Matches(path string) (bool, error)
}

// preserveTimes keeps mtime and atime of the source on the copy. Symlinks
// are recreated rather than followed.
var preserveTimes = otiai10Cpy.Options{
	OnSymlink: func(string) otiai10Cpy.SymlinkAction {
		return otiai10Cpy.Shallow
	},
	PreserveTimes: true,
}

// ScanFiles walks root in lexical order and returns every entry that is not
// a directory. Paths matched by skip are left out, and a matched directory
// is not descended into. Symbolic links are reported as entries and never
// followed.
func ScanFiles(root string, skip Skipper) ([]FileEntry, error) {
	timer := timing.Start(constants.ScanCategory)
	defer timing.DefaultRun.Stop(timer)

	var files []FileEntry
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, ent *godirwalk.Dirent) error {
			logrus.Tracef("Analyzing path '%s'", path)
			if path == root {
				return nil
			}
			ignored, err := skip.Matches(path)
			if err != nil {
				return err
			}
			if ignored {
				if ent.IsDir() {
					logrus.Debugf("Skipping paths under %s, as it is an ignored directory", path)
					return filepath.SkipDir
				}
				logrus.Debugf("Skipping ignored file %s", path)
				return nil
			}
			if ent.IsDir() {
				return nil
			}
			files = append(files, FileEntry{Path: path, Name: ent.Name()})
			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}
	return files, nil
}

// DestinationPath maps path, which lives under src, onto out
func DestinationPath(src, out, path string) (string, error) {
	rel, err := filepath.Rel(src, path)
	if err != nil {
		return "", errors.Wrapf(err, "getting path of %s relative to %s", path, src)
	}
	return filepath.Join(out, rel), nil
}

// CopyFile copies the file at src to dest, replacing whatever file is
// already there and keeping the source timestamps.
func CopyFile(src, dest string) error {
	fi, err := os.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, "getting stat of %s", src)
	}
	if err := createParentDirectory(dest); err != nil {
		return errors.Wrapf(err, "creating parent directory of %s", dest)
	}
	if IsSymlink(fi) && FilepathExists(dest) {
		// a symlink cannot be created over an existing path
		if err := os.RemoveAll(dest); err != nil {
			return errors.Wrapf(err, "removing %s", dest)
		}
	}
	logrus.Debugf("Copying file %s to %s", src, dest)
	if err := otiai10Cpy.Copy(src, dest, preserveTimes); err != nil {
		return errors.Wrapf(err, "copying %s to %s", src, dest)
	}
	return nil
}

func createParentDirectory(path string) error {
	baseDir := filepath.Dir(path)
	if _, err := os.Lstat(baseDir); os.IsNotExist(err) {
		logrus.Tracef("BaseDir %s for file %s does not exist. Creating.", baseDir, path)
		return os.MkdirAll(baseDir, constants.DirPerm)
	} else if err != nil {
		return err
	}
	return nil
}

// FilepathExists returns true if the path exists
func FilepathExists(path string) bool {
	_, err := os.Lstat(path)
	return !os.IsNotExist(err)
}

// Returns true if a file is a symlink
func IsSymlink(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeSymlink != 0
}

// ContainsFile reports whether anything other than a directory exists
// under dir. Empty subdirectories do not count.
func ContainsFile(fs afero.Fs, dir string) (bool, error) {
	found := false
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			logrus.Debugf("Found existing file %s in %s", path, dir)
			found = true
			return io.EOF
		}
		return nil
	})
	if err != nil && err != io.EOF {
		return false, errors.Wrapf(err, "walking %s", dir)
	}
	return found, nil
}

// EmptyDir removes everything inside dir but keeps dir itself
func EmptyDir(fs afero.Fs, dir string) error {
	timer := timing.Start(constants.WipeCategory)
	defer timing.DefaultRun.Stop(timer)

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return errors.Wrapf(err, "reading %s", dir)
	}
	for _, fi := range infos {
		path := filepath.Join(dir, fi.Name())
		logrus.Tracef("Removing %s", path)
		if err := fs.RemoveAll(path); err != nil {
			return errors.Wrapf(err, "removing %s", path)
		}
	}
	return nil
}
