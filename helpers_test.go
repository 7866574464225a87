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
	"testing"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// pinned holds memory handed to code under test as raw addresses, so it
// lives on the heap and stays put.
var pinned []any

// cstr returns the address of a NUL-terminated copy of s.
func cstr(s string) uintptr {
	b := append([]byte(s), 0)
	pinned = append(pinned, b)
	return uintptr(unsafe.Pointer(&b[0]))
}

// alloc returns a new zero T and its address.
func alloc[T any]() (*T, uintptr) {
	p := new(T)
	pinned = append(pinned, p)
	return p, uintptr(unsafe.Pointer(p))
}

// withFakeLibrary installs l as the bound API for the duration of the test.
// Unset entries panic when called, which fails the test.
func withFakeLibrary(t *testing.T, l *native.Lib) {
	t.Helper()
	libMu.Lock()
	old := lib
	lib = l
	libMu.Unlock()

	globalState.Lock()
	systems, live := globalState.systems, globalState.live
	globalState.systems, globalState.live = 0, nil
	globalState.Unlock()

	t.Cleanup(func() {
		libMu.Lock()
		lib = old
		libMu.Unlock()
		globalState.Lock()
		globalState.systems, globalState.live = systems, live
		globalState.Unlock()
		pinned = nil
	})
}
