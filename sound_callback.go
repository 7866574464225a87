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
	"sync/atomic"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// soundState is the Go side of a sound created with callbacks, keyed by the
// cookie stored as the sound's userdata. Such sounds keep the value set by
// Sound.SetUserData here instead.
type soundState struct {
	pcmRead        func(Sound, []byte) error
	pcmSetPosition func(Sound, int, uint32, TimeUnit) error
	nonBlock       func(Sound, error) error
	userData       atomic.Uintptr
}

var (
	soundStates registry[*soundState]
	// soundCookies maps the handles of sounds created with callbacks to their
	// cookie. Plain sounds have no entry.
	soundCookies registry[uintptr]

	pcmReadCallback   = lazyCallback{fn: pcmReadTrampoline}
	pcmSetPosCallback = lazyCallback{fn: pcmSetPosTrampoline}
	nonBlockCallback  = lazyCallback{fn: nonBlockTrampoline}
)

// callbackSoundState returns the state of a sound created with callbacks.
// The engine may call back before the handle is known, so the trampolines
// use lookupSoundState instead.
func callbackSoundState(sound uintptr) (*soundState, bool) {
	cookie, ok := soundCookies.load(sound)
	if !ok {
		return nil, false
	}
	return soundStates.load(cookie)
}

func lookupSoundState(sound uintptr) (*soundState, bool) {
	var cookie uintptr
	if err := check(lib.Sound_GetUserData(sound, &cookie)); err != nil {
		return nil, false
	}
	return soundStates.load(cookie)
}

// forgetSoundState drops the callback state of a released sound.
func forgetSoundState(sound uintptr) {
	cookie, ok := soundCookies.load(sound)
	if !ok {
		return
	}
	soundCookies.delete(sound)
	soundStates.delete(cookie)
	fileSystems.delete(cookie)
}

func pcmReadTrampoline(sound, data, dataLen uintptr) uintptr {
	return catchPanic("pcm read", func() error {
		st, ok := lookupSoundState(sound)
		if !ok || st.pcmRead == nil {
			return ErrInvalidHandle
		}
		buf := unsafe.Slice((*byte)(native.Pointer(data)), uint32(dataLen))
		return st.pcmRead(Sound{raw: sound}, buf)
	})
}

func pcmSetPosTrampoline(sound, subSound, position, posType uintptr) uintptr {
	return catchPanic("pcm set position", func() error {
		st, ok := lookupSoundState(sound)
		if !ok || st.pcmSetPosition == nil {
			return ErrInvalidHandle
		}
		return st.pcmSetPosition(Sound{raw: sound}, int(int32(subSound)), uint32(position), TimeUnit(uint32(posType)))
	})
}

func nonBlockTrampoline(sound, result uintptr) uintptr {
	return catchPanic("non-blocking load", func() error {
		st, ok := lookupSoundState(sound)
		if !ok || st.nonBlock == nil {
			return ErrInvalidHandle
		}
		return st.nonBlock(Sound{raw: sound}, check(int32(result)))
	})
}
