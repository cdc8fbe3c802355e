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

// Package prompt asks the user yes/no questions before destructive steps.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mock_prompt/mock_prompt.go github.com/GoogleContainerTools/dupl/pkg/prompt Prompter

// Prompter asks for confirmation
type Prompter interface {
	Confirm(message string) (bool, error)
}

// Terminal prompts on out and reads answers from in
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm writes message followed by [y/N] and waits for an answer.
// Only "y" and "yes" confirm. A blank answer or end of input declines.
func (t *Terminal) Confirm(message string) (bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s [y/N] ", message); err != nil {
		return false, errors.Wrap(err, "writing prompt")
	}
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "reading answer")
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(t.out)
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Always confirms without asking. Used for --force.
type Always struct{}

func (Always) Confirm(string) (bool, error) {
	return true, nil
}
