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

package constants

const (
	// GitignoreFile is the name of the ignore file read from the source root
	GitignoreFile = ".gitignore"

	// DefaultGitignore is the default value of the --gitignore flag
	DefaultGitignore = "true"

	// GitignoreDisabled is the only --gitignore value that turns the file off
	GitignoreDisabled = "false"

	// BenchmarkFileEnv names the file stage timings are written to
	BenchmarkFileEnv = "BENCHMARK_FILE"

	// StacklogEnv names the file stack samples are written to
	StacklogEnv = "STACKLOG_PATH"

	// DirPerm is used when creating destination directories
	DirPerm = 0o755

	// ClearLine erases the current terminal line and returns the cursor
	ClearLine = "\x1b[1K\r"

	// Timing categories
	ScanCategory = "Scanning source tree"
	CopyCategory = "Copying files"
	WipeCategory = "Emptying destination"
)
