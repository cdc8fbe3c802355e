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

// Package ignore turns --ignore globs and .gitignore lines into matchers
// anchored at the source directory.
package ignore

import (
	"path/filepath"
	"strings"

	"github.com/GoogleContainerTools/dupl/pkg/config"
	"github.com/GoogleContainerTools/dupl/pkg/constants"
	"github.com/moby/patternmatcher"
	"github.com/moby/patternmatcher/ignorefile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Pattern is an absolute glob and its compiled form
type Pattern struct {
	Glob    string
	matcher *patternmatcher.PatternMatcher
}

// Match reports whether path, or one of its parents, matches the glob
func (p Pattern) Match(path string) (bool, error) {
	return p.matcher.MatchesOrParentMatches(path)
}

// Matcher is the union of a set of patterns
type Matcher struct {
	patterns []Pattern
}

// Patterns returns the compiled patterns in the order they were added
func (m *Matcher) Patterns() []Pattern {
	return m.patterns
}

// Matches reports whether any pattern matches path.
func (m *Matcher) Matches(path string) (bool, error) {
	for _, p := range m.patterns {
		match, err := p.Match(path)
		if err != nil {
			return false, errors.Wrapf(err, "matching %s against %s", path, p.Glob)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// Resolve builds the ignore matcher for opts. The --ignore globs come first,
// followed by the lines of src/.gitignore when gitignore mode is on. A
// missing or unreadable .gitignore is an error in that mode.
func Resolve(fs afero.Fs, opts *config.DuplOptions) (*Matcher, error) {
	globs := append([]string{}, opts.Ignore...)
	if opts.GitignoreEnabled() {
		lines, err := readGitignore(fs, opts.Src)
		if err != nil {
			return nil, err
		}
		globs = append(globs, lines...)
	}

	m := &Matcher{}
	for _, g := range globs {
		p, err := compile(Anchor(opts.Src, negateClasses(g)))
		if err != nil {
			return nil, err
		}
		logrus.Debugf("Ignoring paths matching %s", p.Glob)
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Anchor resolves glob against src. A leading slash only means "relative
// to src", so /build and build end up at the same place. Glob characters in
// src are escaped so they match literally.
func Anchor(src, glob string) string {
	return filepath.Join(escapeMeta(src), strings.TrimPrefix(glob, "/"))
}

// escapeMeta backslash-escapes the characters patternmatcher treats as glob
// syntax. Backslash is the separator on windows, so nothing can be escaped there.
func escapeMeta(path string) string {
	if filepath.Separator == '\\' {
		return path
	}
	var b strings.Builder
	for _, r := range path {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// negateClasses rewrites gitignore style negated classes ([!a]) into the
// [^a] form patternmatcher understands. Escaped brackets are left alone.
func negateClasses(glob string) string {
	b := []byte(glob)
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\\':
			i++
		case '[':
			if i+1 < len(b) && b[i+1] == '!' {
				b[i+1] = '^'
			}
			// a ! later in the class is literal
			for i++; i < len(b) && b[i] != ']'; i++ {
				if b[i] == '\\' {
					i++
				}
			}
		}
	}
	return string(b)
}

func compile(glob string) (Pattern, error) {
	pm, err := patternmatcher.New([]string{glob})
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "compiling ignore pattern %s", glob)
	}
	return Pattern{Glob: glob, matcher: pm}, nil
}

func readGitignore(fs afero.Fs, src string) ([]string, error) {
	path := filepath.Join(src, constants.GitignoreFile)
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s (pass --gitignore=false to skip it)", path)
	}
	defer f.Close()
	logrus.Infof("Using gitignore file: %v", path)
	lines, err := ignorefile.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return lines, nil
}
