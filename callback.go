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
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/fmodgo/fmod/internal/native"
)

// catchPanic runs f on behalf of a native callback. A panic is logged and
// reported to the engine as ErrInternal rather than unwinding through
// native frames.
func catchPanic(name string, f func() error) (result uintptr) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic in %s callback: %v\n%s", name, r, debug.Stack())
			result = uintptr(ErrInternal)
		}
	}()
	return resultOf(f())
}

// registry maps native keys (handles or userdata cookies) to Go values
// referenced by callbacks.
type registry[T any] struct {
	mu sync.RWMutex
	m  map[uintptr]T
}

func (r *registry[T]) store(key uintptr, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.m == nil {
		r.m = map[uintptr]T{}
	}
	r.m[key] = v
}

func (r *registry[T]) load(key uintptr) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

func (r *registry[T]) delete(key uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, key)
}

func (r *registry[T]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// cookies hands out nonzero userdata values for callback state that must not
// be passed to native code as a Go pointer.
var cookies struct {
	sync.Mutex
	next uintptr
}

func newCookie() uintptr {
	cookies.Lock()
	defer cookies.Unlock()
	cookies.next++
	return cookies.next
}

// lazyCallback creates a native function pointer for fn on first use.
// Native callbacks are never freed, so each kind is created once.
type lazyCallback struct {
	once sync.Once
	fn   any
	ptr  uintptr
}

func (c *lazyCallback) get() uintptr {
	c.once.Do(func() {
		c.ptr = native.NewCallback(c.fn)
	})
	return c.ptr
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("fmod: "+format, args...)
}
