/*
Copyright 2025 The Saltcheck Authors.

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

package utils

import (
	"bytes"
	"io"
	"os"
)

// CaptureStdout captures output written to os.Stdout while f runs.
// os.Stdout is restored even if f panics.
// Example:
//
//	out := testutils.CaptureStdout(func() {
//	   utils.OutputPrintf("hello")
//	})
//	assert.Contains(t, out, "hello")
func CaptureStdout(f func()) string {
	return capture(&os.Stdout, f)
}

// CaptureStderr captures output written to os.Stderr while f runs.
// os.Stderr is restored even if f panics.
// Example:
//
//	out := testutils.CaptureStderr(func() {
//	   utils.WarningPrintf("state missing")
//	})
//	assert.Contains(t, out, "state missing")
func CaptureStderr(f func()) string {
	return capture(&os.Stderr, f)
}

func capture(stream **os.File, f func()) string {
	old := *stream
	r, w, _ := os.Pipe()
	*stream = w

	var buf bytes.Buffer

	defer func() {
		*stream = old

		_ = recover()
	}()

	f()

	w.Close() //nolint:errcheck // cleanup, nothing to do with the error
	_, _ = io.Copy(&buf, r)

	return buf.String()
}
