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
	"unsafe"
)

// System is the main object of the engine. It owns the mixer, the output
// device and every other object created through it.
//
// Handles created by a System must not be used after it is released.
type System struct {
	raw uintptr
}

// Raw returns the native FMOD_SYSTEM pointer.
func (s System) Raw() uintptr { return s.raw }

// NewSystem creates a System.
//
// Creating more than one System at a time is not supported by the safe API:
// if a System already exists, NewSystem logs a warning and returns
// ErrInitialized. Use NewSystemUnchecked to create additional Systems.
//
// NewSystem loads the shared library on first use and, when a logger was set
// with UseLogger, routes engine debug output to it.
func NewSystem() (System, error) {
	if _, err := library(); err != nil {
		return System{}, err
	}
	globalState.Lock()
	defer globalState.Unlock()

	if globalState.systems != 0 {
		log.Warnf("NewSystem called while %d system(s) exist; use NewSystemUnchecked to create more than one", globalState.systems)
		return System{}, ErrInitialized
	}
	return newSystemLocked()
}

// NewSystemUnchecked creates a System even if others exist. The engine
// supports up to MaxSystems Systems, but most engine state is process-wide
// and callers are responsible for keeping concurrent Systems apart.
func NewSystemUnchecked() (System, error) {
	if _, err := library(); err != nil {
		return System{}, err
	}
	globalState.Lock()
	defer globalState.Unlock()
	return newSystemLocked()
}

func newSystemLocked() (System, error) {
	initDefaultDebug()

	var raw uintptr
	if err := check(lib.System_Create(&raw, headerVersion)); err != nil {
		return System{}, err
	}
	globalState.systems++
	trackSystemLocked(raw)
	log.Debugf("Created system %#x", raw)
	return System{raw: raw}, nil
}

// Release closes and frees the System and every object created by it.
func (s System) Release() error {
	globalState.Lock()
	defer globalState.Unlock()

	if err := check(lib.System_Release(s.raw)); err != nil {
		return err
	}
	globalState.systems--
	delete(globalState.live, s.raw)
	systemCallbacks.delete(s.raw)
	log.Debugf("Released system %#x", s.raw)
	return nil
}

// Init initializes the System and opens the output device.
func (s System) Init(maxChannels int, flags InitFlags) error {
	return s.InitEx(maxChannels, flags, nil)
}

// InitEx is like Init, passing extraDriverData to the output plugin, such as
// the output file name for OutputWavWriter.
func (s System) InitEx(maxChannels int, flags InitFlags, extraDriverData unsafe.Pointer) error {
	return check(lib.System_Init(s.raw, int32(maxChannels), uint32(flags), extraDriverData))
}

// InitWavWriter initializes the System with the wav writer output, recording
// the mix to filename instead of playing it.
func (s System) InitWavWriter(maxChannels int, flags InitFlags, filename string, realtime bool) error {
	output := OutputWavWriterNRT
	if realtime {
		output = OutputWavWriter
	}
	if err := s.SetOutput(output); err != nil {
		return err
	}
	name := append([]byte(filename), 0)
	return s.InitEx(maxChannels, flags, unsafe.Pointer(&name[0]))
}

// Close closes the output device. The System can be initialized again.
func (s System) Close() error {
	return check(lib.System_Close(s.raw))
}

// Update updates the System. It should be called once per frame.
func (s System) Update() error {
	return check(lib.System_Update(s.raw))
}

// MixerSuspend suspends mixer thread and relinquishes usage of audio hardware
// while maintaining internal state.
func (s System) MixerSuspend() error {
	return check(lib.System_MixerSuspend(s.raw))
}

// MixerResume resumes the mixer suspended by MixerSuspend.
func (s System) MixerResume() error {
	return check(lib.System_MixerResume(s.raw))
}
