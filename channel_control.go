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

// ChannelControl is the API shared by Channel and ChannelGroup. Both embed
// it, and the engine accepts either handle in the FMOD_Channel_* entry points
// that implement it.
type ChannelControl struct {
	raw uintptr
}

// Raw returns the native handle.
func (c ChannelControl) Raw() uintptr { return c.raw }

// IsPlaying reports whether the channel or group is playing.
func (c ChannelControl) IsPlaying() (bool, error) {
	var p int32
	err := check(lib.Channel_IsPlaying(c.raw, &p))
	return p != 0, err
}

// Stop stops playback. A stopped channel becomes invalid.
func (c ChannelControl) Stop() error {
	return check(lib.Channel_Stop(c.raw))
}

// SetPaused pauses or resumes playback.
func (c ChannelControl) SetPaused(paused bool) error {
	return check(lib.Channel_SetPaused(c.raw, boolToC(paused)))
}

// Paused reports whether playback is paused.
func (c ChannelControl) Paused() (bool, error) {
	var p int32
	err := check(lib.Channel_GetPaused(c.raw, &p))
	return p != 0, err
}

// SetMode changes loop and 3D behavior.
func (c ChannelControl) SetMode(mode Mode) error {
	return check(lib.Channel_SetMode(c.raw, uint32(mode)))
}

// Mode returns the playback mode.
func (c ChannelControl) Mode() (Mode, error) {
	var m uint32
	err := check(lib.Channel_GetMode(c.raw, &m))
	return Mode(m), err
}

// SetPitch sets the relative pitch; 1 is normal speed, 2 is an octave up.
func (c ChannelControl) SetPitch(pitch float32) error {
	return check(lib.Channel_SetPitch(c.raw, pitch))
}

// Pitch returns the relative pitch.
func (c ChannelControl) Pitch() (float32, error) {
	var p float32
	err := check(lib.Channel_GetPitch(c.raw, &p))
	return p, err
}

// Audibility returns the combined volume after 3D, occlusion and group
// attenuation.
func (c ChannelControl) Audibility() (float32, error) {
	var a float32
	err := check(lib.Channel_GetAudibility(c.raw, &a))
	return a, err
}

// SetVolume sets the linear volume; 0 is silent, 1 is full.
func (c ChannelControl) SetVolume(volume float32) error {
	return check(lib.Channel_SetVolume(c.raw, volume))
}

// Volume returns the linear volume.
func (c ChannelControl) Volume() (float32, error) {
	var v float32
	err := check(lib.Channel_GetVolume(c.raw, &v))
	return v, err
}

// SetVolumeRamp enables ramping of volume changes to avoid clicks.
func (c ChannelControl) SetVolumeRamp(ramp bool) error {
	return check(lib.Channel_SetVolumeRamp(c.raw, boolToC(ramp)))
}

// VolumeRamp reports whether volume ramping is enabled.
func (c ChannelControl) VolumeRamp() (bool, error) {
	var r int32
	err := check(lib.Channel_GetVolumeRamp(c.raw, &r))
	return r != 0, err
}

// SetMute mutes or unmutes without changing the volume.
func (c ChannelControl) SetMute(mute bool) error {
	return check(lib.Channel_SetMute(c.raw, boolToC(mute)))
}

// Mute reports whether the channel or group is muted.
func (c ChannelControl) Mute() (bool, error) {
	var m int32
	err := check(lib.Channel_GetMute(c.raw, &m))
	return m != 0, err
}

// SetReverbProperties sets the wet level sent to a global reverb instance.
func (c ChannelControl) SetReverbProperties(instance int, wet float32) error {
	return check(lib.Channel_SetReverbProperties(c.raw, int32(instance), wet))
}

// ReverbProperties returns the wet level sent to a global reverb instance.
func (c ChannelControl) ReverbProperties(instance int) (float32, error) {
	var wet float32
	err := check(lib.Channel_GetReverbProperties(c.raw, int32(instance), &wet))
	return wet, err
}

// SetLowPassGain sets the gain of the built-in low pass filter. It requires
// InitChannelLowpass.
func (c ChannelControl) SetLowPassGain(gain float32) error {
	return check(lib.Channel_SetLowPassGain(c.raw, gain))
}

// LowPassGain returns the gain of the built-in low pass filter.
func (c ChannelControl) LowPassGain() (float32, error) {
	var g float32
	err := check(lib.Channel_GetLowPassGain(c.raw, &g))
	return g, err
}

// SystemObject returns the System that created the channel or group.
func (c ChannelControl) SystemObject() (System, error) {
	var raw uintptr
	err := check(lib.Channel_GetSystemObject(c.raw, &raw))
	return System{raw: raw}, err
}

// SetUserData stores an arbitrary value with the channel or group.
func (c ChannelControl) SetUserData(data uintptr) error {
	return check(lib.Channel_SetUserData(c.raw, data))
}

// UserData returns the value stored with SetUserData.
func (c ChannelControl) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.Channel_GetUserData(c.raw, &data))
	return data, err
}
