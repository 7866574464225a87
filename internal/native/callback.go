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

package native

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// NewCallback returns a C function pointer that calls fn.
// Callbacks are never released, so callers create one per callback kind.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}

// Call invokes the C function pointer fn.
func Call(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := purego.SyscallN(fn, args...)
	return r
}

// BytesToString returns the string before the first NUL in b.
func BytesToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

//go:nocheckptr
func unsafePointer(p uintptr) unsafe.Pointer {
	return unsafe.Pointer(p)
}

// Pointer converts an address handed over by FMOD back into a pointer.
func Pointer(p uintptr) unsafe.Pointer {
	return unsafePointer(p)
}
