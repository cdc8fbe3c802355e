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

package timing

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"
	"text/template"
	"time"

	"github.com/pkg/errors"
)

// For testing
var currentTimeFunc = time.Now

// DefaultRun is the default "singleton" TimedRun instance.
var DefaultRun = NewTimedRun()

// TimedRun provides a running store of how long is spent in each stage.
type TimedRun struct {
	cl         sync.Mutex
	categories map[string]time.Duration // protected by cl
}

// Stop stops the specified timer, adds the time to its category and
// returns how long the timer ran.
func (tr *TimedRun) Stop(t *Timer) time.Duration {
	elapsed := t.Elapsed()
	tr.cl.Lock()
	defer tr.cl.Unlock()
	tr.categories[t.category] += elapsed
	return elapsed
}

// Start starts a new Timer and returns it.
func Start(category string) *Timer {
	return &Timer{
		category:  category,
		startTime: currentTimeFunc(),
	}
}

// NewTimedRun returns an initialized TimedRun instance.
func NewTimedRun() *TimedRun {
	return &TimedRun{
		categories: map[string]time.Duration{},
	}
}

// Timer represents a running timer.
type Timer struct {
	category  string
	startTime time.Time
}

// Elapsed is the wall clock time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return currentTimeFunc().Sub(t.startTime)
}

// DefaultFormat is a default format string used by Summary.
var DefaultFormat = template.Must(template.New("").Parse("{{range $c, $t := .}}{{$c}}: {{$t}}\n{{end}}"))

// Summary outputs a summary of the DefaultTimedRun.
func Summary() string {
	return DefaultRun.Summary()
}

func JSON() (string, error) {
	return DefaultRun.JSON()
}

// Summary outputs a summary of the specified TimedRun.
func (tr *TimedRun) Summary() string {
	b := bytes.Buffer{}

	tr.cl.Lock()
	defer tr.cl.Unlock()
	DefaultFormat.Execute(&b, tr.categories)
	return b.String()
}

func (tr *TimedRun) JSON() (string, error) {
	tr.cl.Lock()
	defer tr.cl.Unlock()
	b, err := json.Marshal(tr.categories)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteJSON writes the JSON form of the run to path.
func (tr *TimedRun) WriteJSON(path string) error {
	s, err := tr.JSON()
	if err != nil {
		return errors.Wrap(err, "encoding timings")
	}
	return errors.Wrapf(os.WriteFile(path, []byte(s), 0o644), "writing timings to %s", path)
}
