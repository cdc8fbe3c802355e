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
	"testing"

	"github.com/GoogleContainerTools/dupl/testutil"
)

func TestGlobList_Set(t *testing.T) {
	tests := []struct {
		description string
		values      []string
		expected    GlobList
	}{
		{
			description: "single glob",
			values:      []string{"*.log"},
			expected:    GlobList{"*.log"},
		},
		{
			description: "comma separated globs",
			values:      []string{"*.log,node_modules,/build"},
			expected:    GlobList{"*.log", "node_modules", "/build"},
		},
		{
			description: "repeated flag accumulates",
			values:      []string{"*.log", "dist,tmp"},
			expected:    GlobList{"*.log", "dist", "tmp"},
		},
		{
			description: "bare flag adds nothing",
			values:      []string{GlobNoValue},
		},
		{
			description: "empty segments are dropped",
			values:      []string{"a,, ,b,"},
			expected:    GlobList{"a", "b"},
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			var globs GlobList
			for _, v := range test.values {
				if err := globs.Set(v); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			testutil.CheckDeepEqual(t, test.expected, globs)
		})
	}
}

func TestGlobList_String(t *testing.T) {
	globs := GlobList{"a", "b/**"}
	testutil.CheckDeepEqual(t, "a,b/**", globs.String())
}
