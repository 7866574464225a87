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
	"sync"
)

// globalState serializes System creation and release against the free
// functions of the API, which must not race a System being created.
var globalState struct {
	sync.RWMutex
	systems int
	live    map[uintptr]struct{}
}

// readLocked runs f with the native library loaded and the global state
// read-locked.
func readLocked(f func() error) error {
	if _, err := library(); err != nil {
		return err
	}
	globalState.RLock()
	defer globalState.RUnlock()
	return f()
}

// SystemCount returns the number of Systems created and not yet released.
func SystemCount() int {
	globalState.RLock()
	defer globalState.RUnlock()
	return globalState.systems
}

func trackSystemLocked(raw uintptr) {
	if globalState.live == nil {
		globalState.live = map[uintptr]struct{}{}
	}
	globalState.live[raw] = struct{}{}
}

// suspendAll suspends the mixer of every live System. Errors are logged
// since the callers are notification handlers with nobody to report to.
func suspendAll() {
	globalState.RLock()
	defer globalState.RUnlock()
	for raw := range globalState.live {
		if err := (System{raw: raw}).MixerSuspend(); err != nil {
			log.Warnf("Suspending system %#x: %v", raw, err)
		}
	}
}

// resumeAll undoes suspendAll.
func resumeAll() {
	globalState.RLock()
	defer globalState.RUnlock()
	for raw := range globalState.live {
		if err := (System{raw: raw}).MixerResume(); err != nil {
			log.Warnf("Resuming system %#x: %v", raw, err)
		}
	}
}
