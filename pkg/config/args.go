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
	"strings"

	"github.com/sirupsen/logrus"
)

// GlobNoValue is what pflag hands to GlobList.Set when --ignore is passed
// without a value. It splits into nothing.
const GlobNoValue = ","

// GlobList collects comma-separated globs from one or more --ignore flags.
// A bare --ignore contributes no globs.
type GlobList []string

// String implements pflag.Value
func (g *GlobList) String() string {
	return strings.Join(*g, ",")
}

// Set splits value on commas and appends the non-empty globs
func (g *GlobList) Set(value string) error {
	for _, glob := range strings.Split(value, ",") {
		glob = strings.TrimSpace(glob)
		if glob == "" {
			continue
		}
		logrus.Debugf("appending ignore glob %s", glob)
		*g = append(*g, glob)
	}
	return nil
}

// Type implements pflag.Value
func (g *GlobList) Type() string {
	return "globs"
}
