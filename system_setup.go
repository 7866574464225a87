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

// SoftwareFormat is the mixer output format.
type SoftwareFormat struct {
	SampleRate     int
	SpeakerMode    SpeakerMode
	NumRawSpeakers int
}

// ThreeDSettings are the global 3D scaling factors.
type ThreeDSettings struct {
	DopplerScale   float32
	DistanceFactor float32
	RolloffScale   float32
}

// SetSoftwareChannels sets the maximum number of software mixed channels.
func (s System) SetSoftwareChannels(n int) error {
	return check(lib.System_SetSoftwareChannels(s.raw, int32(n)))
}

// SoftwareChannels returns the maximum number of software mixed channels.
func (s System) SoftwareChannels() (int, error) {
	var n int32
	err := check(lib.System_GetSoftwareChannels(s.raw, &n))
	return int(n), err
}

// SetSoftwareFormat sets the mixer output format. It must be called before Init.
func (s System) SetSoftwareFormat(f SoftwareFormat) error {
	return check(lib.System_SetSoftwareFormat(s.raw, int32(f.SampleRate), int32(f.SpeakerMode), int32(f.NumRawSpeakers)))
}

// SoftwareFormat returns the mixer output format.
func (s System) SoftwareFormat() (SoftwareFormat, error) {
	var rate, mode, raw int32
	if err := check(lib.System_GetSoftwareFormat(s.raw, &rate, &mode, &raw)); err != nil {
		return SoftwareFormat{}, err
	}
	return SoftwareFormat{SampleRate: int(rate), SpeakerMode: SpeakerMode(mode), NumRawSpeakers: int(raw)}, nil
}

// SetDSPBufferSize sets the mixer buffer length in samples and the number of
// buffers. It must be called before Init.
func (s System) SetDSPBufferSize(bufferLength uint32, numBuffers int) error {
	return check(lib.System_SetDSPBufferSize(s.raw, bufferLength, int32(numBuffers)))
}

// DSPBufferSize returns the mixer buffer length and count.
func (s System) DSPBufferSize() (bufferLength uint32, numBuffers int, err error) {
	var n int32
	err = check(lib.System_GetDSPBufferSize(s.raw, &bufferLength, &n))
	return bufferLength, int(n), err
}

// SetStreamBufferSize sets the default file buffer size for newly opened streams.
func (s System) SetStreamBufferSize(size uint32, unit TimeUnit) error {
	return check(lib.System_SetStreamBufferSize(s.raw, size, uint32(unit)))
}

// StreamBufferSize returns the default file buffer size for streams.
func (s System) StreamBufferSize() (uint32, TimeUnit, error) {
	var size, unit uint32
	err := check(lib.System_GetStreamBufferSize(s.raw, &size, &unit))
	return size, TimeUnit(unit), err
}

// SetAdvancedSettings sets advanced engine settings. It must be called before Init.
func (s System) SetAdvancedSettings(settings AdvancedSettings) error {
	settings.cbSize = int32(sizeofAdvancedSettings)
	settings.asioChannelList = 0
	settings.asioSpeakerList = 0
	return check(lib.System_SetAdvancedSettings(s.raw, ptrOf(&settings)))
}

// AdvancedSettings returns the advanced engine settings.
func (s System) AdvancedSettings() (AdvancedSettings, error) {
	settings := AdvancedSettings{cbSize: int32(sizeofAdvancedSettings)}
	if err := check(lib.System_GetAdvancedSettings(s.raw, ptrOf(&settings))); err != nil {
		return AdvancedSettings{}, err
	}
	settings.asioChannelList = 0
	settings.asioSpeakerList = 0
	return settings, nil
}

// SetSpeakerPosition sets the position of a speaker for the current speaker mode.
func (s System) SetSpeakerPosition(speaker Speaker, x, y float32, active bool) error {
	return check(lib.System_SetSpeakerPosition(s.raw, int32(speaker), x, y, boolToC(active)))
}

// SpeakerPosition returns the position of a speaker.
func (s System) SpeakerPosition(speaker Speaker) (x, y float32, active bool, err error) {
	var a int32
	err = check(lib.System_GetSpeakerPosition(s.raw, int32(speaker), &x, &y, &a))
	return x, y, a != 0, err
}

// Set3DSettings sets the global doppler scale, distance factor and rolloff scale.
func (s System) Set3DSettings(settings ThreeDSettings) error {
	return check(lib.System_Set3DSettings(s.raw, settings.DopplerScale, settings.DistanceFactor, settings.RolloffScale))
}

// ThreeDSettings returns the global 3D settings.
func (s System) ThreeDSettings() (ThreeDSettings, error) {
	var t ThreeDSettings
	err := check(lib.System_Get3DSettings(s.raw, &t.DopplerScale, &t.DistanceFactor, &t.RolloffScale))
	return t, err
}

// Set3DNumListeners sets the number of 3D listeners, up to MaxListeners.
func (s System) Set3DNumListeners(n int) error {
	return check(lib.System_Set3DNumListeners(s.raw, int32(n)))
}

// ThreeDNumListeners returns the number of 3D listeners.
func (s System) ThreeDNumListeners() (int, error) {
	var n int32
	err := check(lib.System_Get3DNumListeners(s.raw, &n))
	return int(n), err
}

// Set3DListenerAttributes sets the position, velocity and orientation of a
// listener.
func (s System) Set3DListenerAttributes(listener int, attr Attributes3D) error {
	return check(lib.System_Set3DListenerAttributes(s.raw, int32(listener),
		ptrOf(&attr.Position), ptrOf(&attr.Velocity), ptrOf(&attr.Forward), ptrOf(&attr.Up)))
}

// ThreeDListenerAttributes returns the attributes of a listener.
func (s System) ThreeDListenerAttributes(listener int) (Attributes3D, error) {
	var attr Attributes3D
	err := check(lib.System_Get3DListenerAttributes(s.raw, int32(listener),
		ptrOf(&attr.Position), ptrOf(&attr.Velocity), ptrOf(&attr.Forward), ptrOf(&attr.Up)))
	return attr, err
}
