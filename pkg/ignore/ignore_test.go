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

package ignore

import (
	"testing"

	"github.com/GoogleContainerTools/dupl/pkg/config"
	"github.com/GoogleContainerTools/dupl/testutil"
	"github.com/spf13/afero"
)

const gitignore = `# build output
*.log

node_modules
/build/
   
#tmp
`

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return fs
}

func globs(m *Matcher) []string {
	var out []string
	for _, p := range m.Patterns() {
		out = append(out, p.Glob)
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		opts        config.DuplOptions
		expected    []string
		shouldErr   bool
	}{
		{
			description: "ignore flag only",
			opts: config.DuplOptions{
				Src:       "/src",
				Ignore:    config.GlobList{"*.tmp", "/dist"},
				Gitignore: "false",
			},
			expected: []string{"/src/*.tmp", "/src/dist"},
		},
		{
			description: "gitignore lines after flag globs",
			files:       map[string]string{"/src/.gitignore": gitignore},
			opts: config.DuplOptions{
				Src:       "/src",
				Ignore:    config.GlobList{"vendor"},
				Gitignore: "true",
			},
			expected: []string{"/src/vendor", "/src/*.log", "/src/node_modules", "/src/build"},
		},
		{
			description: "gitignore defaults to on",
			files:       map[string]string{"/src/.gitignore": "out\n"},
			opts:        config.DuplOptions{Src: "/src"},
			expected:    []string{"/src/out"},
		},
		{
			description: "missing gitignore is fatal",
			opts:        config.DuplOptions{Src: "/src", Gitignore: "true"},
			shouldErr:   true,
		},
		{
			description: "missing gitignore is fine when disabled",
			opts:        config.DuplOptions{Src: "/src", Gitignore: "false"},
		},
		{
			description: "gitignore disabled ignores file content",
			files:       map[string]string{"/src/.gitignore": gitignore},
			opts:        config.DuplOptions{Src: "/src", Gitignore: "false"},
		},
		{
			description: "negated class",
			opts: config.DuplOptions{
				Src:       "/src",
				Ignore:    config.GlobList{"[!a].txt", "x[a!].md", `\[!b].txt`},
				Gitignore: "false",
			},
			expected: []string{"/src/[^a].txt", "/src/x[a!].md", `/src/\[!b].txt`},
		},
		{
			description: "bad glob",
			opts: config.DuplOptions{
				Src:       "/src",
				Ignore:    config.GlobList{"[a-"},
				Gitignore: "false",
			},
			shouldErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			fs := newFs(t, test.files)
			m, err := Resolve(fs, &test.opts)
			testutil.CheckError(t, test.shouldErr, err)
			if err != nil {
				return
			}
			testutil.CheckDeepEqual(t, test.expected, globs(m))
		})
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		glob     string
		expected string
	}{
		{glob: "node_modules", expected: "/home/me/src/node_modules"},
		{glob: "/node_modules", expected: "/home/me/src/node_modules"},
		{glob: "build/", expected: "/home/me/src/build"},
		{glob: "**/*.o", expected: "/home/me/src/**/*.o"},
		{glob: "!keep.log", expected: "/home/me/src/!keep.log"},
	}
	for _, test := range tests {
		t.Run(test.glob, func(t *testing.T) {
			testutil.CheckDeepEqual(t, test.expected, Anchor("/home/me/src", test.glob))
		})
	}
}

func TestAnchor_GlobCharsInSource(t *testing.T) {
	testutil.CheckDeepEqual(t, `/home/me/proj\[1\]/node_modules`, Anchor("/home/me/proj[1]", "node_modules"))
	testutil.CheckDeepEqual(t, `/home/me/a\*b\?/*.log`, Anchor("/home/me/a*b?", "*.log"))
}

func TestMatcher_GlobCharsInSource(t *testing.T) {
	m, err := Resolve(afero.NewMemMapFs(), &config.DuplOptions{
		Src:       "/home/me/proj[1]",
		Ignore:    config.GlobList{"node_modules", "*.log"},
		Gitignore: "false",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/home/me/proj[1]/node_modules", expected: true},
		{path: "/home/me/proj[1]/node_modules/pkg/index.js", expected: true},
		{path: "/home/me/proj[1]/debug.log", expected: true},
		{path: "/home/me/proj1/node_modules"},
		{path: "/home/me/proj[1]/main.go"},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			match, err := m.Matches(test.path)
			testutil.CheckErrorAndDeepEqual(t, false, err, test.expected, match)
		})
	}
}

func TestMatcher_Matches(t *testing.T) {
	fs := newFs(t, map[string]string{"/src/.gitignore": gitignore})
	m, err := Resolve(fs, &config.DuplOptions{
		Src:       "/src",
		Ignore:    config.GlobList{"**/*.o", "docs/v?", "img/[ab].png", "[!a].txt", "notes/[!0-9]*"},
		Gitignore: "true",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/src/a.txt"},
		{path: "/src/b.log", expected: true},
		{path: "/src/sub/b.log"},
		{path: "/src/node_modules", expected: true},
		{path: "/src/node_modules/pkg/index.js", expected: true},
		{path: "/src/lib/node_modules"},
		{path: "/elsewhere/node_modules"},
		{path: "/src/build", expected: true},
		{path: "/src/builder"},
		{path: "/src/main.o", expected: true},
		{path: "/src/deep/er/main.o", expected: true},
		{path: "/src/docs/v1", expected: true},
		{path: "/src/docs/v10"},
		{path: "/src/img/a.png", expected: true},
		{path: "/src/img/c.png"},
		{path: "/src/b.txt", expected: true},
		{path: "/src/!.txt", expected: true},
		{path: "/src/notes/draft.md", expected: true},
		{path: "/src/notes/2024.md"},
		{path: "/src/.gitignore"},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			match, err := m.Matches(test.path)
			testutil.CheckErrorAndDeepEqual(t, false, err, test.expected, match)
		})
	}
}
