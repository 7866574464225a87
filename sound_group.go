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
	"github.com/fmodgo/fmod/internal/native"
)

// SoundGroup limits and controls a set of sounds together.
type SoundGroup struct {
	raw uintptr
}

// Raw returns the native handle.
func (g SoundGroup) Raw() uintptr { return g.raw }

// Release frees the group. Its sounds move to the master sound group.
func (g SoundGroup) Release() error {
	return check(lib.SoundGroup_Release(g.raw))
}

// SystemObject returns the System that created the group.
func (g SoundGroup) SystemObject() (System, error) {
	var raw uintptr
	err := check(lib.SoundGroup_GetSystemObject(g.raw, &raw))
	return System{raw: raw}, err
}

// SetMaxAudible limits how many sounds of the group play at once; -1 removes
// the limit.
func (g SoundGroup) SetMaxAudible(max int) error {
	return check(lib.SoundGroup_SetMaxAudible(g.raw, int32(max)))
}

// MaxAudible returns the playback limit.
func (g SoundGroup) MaxAudible() (int, error) {
	var n int32
	err := check(lib.SoundGroup_GetMaxAudible(g.raw, &n))
	return int(n), err
}

// SetMaxAudibleBehavior sets what happens when the limit is reached.
func (g SoundGroup) SetMaxAudibleBehavior(b SoundGroupBehavior) error {
	return check(lib.SoundGroup_SetMaxAudibleBehavior(g.raw, int32(b)))
}

// MaxAudibleBehavior returns the behavior at the limit.
func (g SoundGroup) MaxAudibleBehavior() (SoundGroupBehavior, error) {
	var b int32
	err := check(lib.SoundGroup_GetMaxAudibleBehavior(g.raw, &b))
	return SoundGroupBehavior(b), err
}

// SetMuteFadeSpeed sets the fade time in seconds for SoundGroupBehaviorMute.
func (g SoundGroup) SetMuteFadeSpeed(seconds float32) error {
	return check(lib.SoundGroup_SetMuteFadeSpeed(g.raw, seconds))
}

// MuteFadeSpeed returns the mute fade time in seconds.
func (g SoundGroup) MuteFadeSpeed() (float32, error) {
	var v float32
	err := check(lib.SoundGroup_GetMuteFadeSpeed(g.raw, &v))
	return v, err
}

// SetVolume scales the volume of every sound in the group.
func (g SoundGroup) SetVolume(volume float32) error {
	return check(lib.SoundGroup_SetVolume(g.raw, volume))
}

// Volume returns the group volume.
func (g SoundGroup) Volume() (float32, error) {
	var v float32
	err := check(lib.SoundGroup_GetVolume(g.raw, &v))
	return v, err
}

// Stop stops every channel playing a sound of the group.
func (g SoundGroup) Stop() error {
	return check(lib.SoundGroup_Stop(g.raw))
}

// Name returns the name given at creation.
func (g SoundGroup) Name() (string, error) {
	buf := make([]byte, nameMaxLength)
	if err := check(lib.SoundGroup_GetName(g.raw, &buf[0], int32(len(buf)))); err != nil {
		return "", err
	}
	return native.BytesToString(buf), nil
}

// NumSounds returns the number of sounds in the group.
func (g SoundGroup) NumSounds() (int, error) {
	var n int32
	err := check(lib.SoundGroup_GetNumSounds(g.raw, &n))
	return int(n), err
}

// Sound returns the sound at index.
func (g SoundGroup) Sound(index int) (Sound, error) {
	var raw uintptr
	err := check(lib.SoundGroup_GetSound(g.raw, int32(index), &raw))
	return Sound{raw: raw}, err
}

// NumPlaying returns the number of channels playing sounds of the group.
func (g SoundGroup) NumPlaying() (int, error) {
	var n int32
	err := check(lib.SoundGroup_GetNumPlaying(g.raw, &n))
	return int(n), err
}

// SetUserData stores an arbitrary value with the group.
func (g SoundGroup) SetUserData(data uintptr) error {
	return check(lib.SoundGroup_SetUserData(g.raw, data))
}

// UserData returns the value stored with SetUserData.
func (g SoundGroup) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.SoundGroup_GetUserData(g.raw, &data))
	return data, err
}
