// Copyright 2026 The fmod-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmod

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	if got := ErrFileNotFound.Error(); got != "File not found." {
		t.Errorf("ErrFileNotFound = %q", got)
	}
	if got := Error(9999).Error(); got != "Unknown error (9999)." {
		t.Errorf("Error(9999) = %q", got)
	}
	for e := ErrBadCommand; e <= ErrTooManySamples; e++ {
		if errorStrings[e] == "" {
			t.Errorf("error %d has no message", int32(e))
		}
	}
}

func TestCheck(t *testing.T) {
	if err := check(0); err != nil {
		t.Errorf("check(0) = %v", err)
	}
	err := fmt.Errorf("opening: %w", check(int32(ErrFormat)))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("%v does not wrap ErrFormat", err)
	}
	var e Error
	if !errors.As(err, &e) || e != ErrFormat {
		t.Errorf("errors.As gave %v", e)
	}
}

func TestResultOf(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want uintptr
	}{
		{nil, 0},
		{ErrFileEOF, uintptr(ErrFileEOF)},
		{fmt.Errorf("read: %w", ErrFileBad), uintptr(ErrFileBad)},
		{errors.New("plain"), uintptr(ErrInternal)},
	} {
		if got := resultOf(tc.err); got != tc.want {
			t.Errorf("resultOf(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
