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
)

// Version returns the engine version in 0xaaaabbcc form (major.minor.patch).
func (s System) Version() (uint32, error) {
	var v uint32
	err := check(lib.System_GetVersion(s.raw, &v))
	return v, err
}

// VersionString formats a version from Version as "major.minor.patch".
func VersionString(v uint32) string {
	return fmt.Sprintf("%x.%02x.%02x", v>>16, v>>8&0xff, v&0xff)
}

// OutputHandle returns the native handle of the output backend, such as an
// IDirectSound or an ALSA handle.
func (s System) OutputHandle() (uintptr, error) {
	var h uintptr
	err := check(lib.System_GetOutputHandle(s.raw, &h))
	return h, err
}

// ChannelsPlaying returns the number of playing channels and how many of them
// are real (not virtual).
func (s System) ChannelsPlaying() (channels, real int, err error) {
	var c, r int32
	err = check(lib.System_GetChannelsPlaying(s.raw, &c, &r))
	return int(c), int(r), err
}

// CPUUsage returns the engine CPU usage.
func (s System) CPUUsage() (CPUUsage, error) {
	var u CPUUsage
	err := check(lib.System_GetCPUUsage(s.raw, ptrOf(&u)))
	return u, err
}

// FileUsage reports the number of bytes read from files.
type FileUsage struct {
	SampleBytesRead int64
	StreamBytesRead int64
	OtherBytesRead  int64
}

// FileUsage returns the number of bytes read from files since init.
func (s System) FileUsage() (FileUsage, error) {
	var u FileUsage
	err := check(lib.System_GetFileUsage(s.raw, &u.SampleBytesRead, &u.StreamBytesRead, &u.OtherBytesRead))
	return u, err
}

// DefaultMixMatrix returns the default mix matrix used to convert between
// two speaker modes, as rows of output channels by columns of input channels.
func (s System) DefaultMixMatrix(source, target SpeakerMode) ([][]float32, error) {
	in, err := s.SpeakerModeChannels(source)
	if err != nil {
		return nil, err
	}
	out, err := s.SpeakerModeChannels(target)
	if err != nil {
		return nil, err
	}
	flat := make([]float32, in*out)
	if err := check(lib.System_GetDefaultMixMatrix(s.raw, int32(source), int32(target), floatsPtr(flat), int32(in))); err != nil {
		return nil, err
	}
	return unflattenMatrix(flat, out, in, in), nil
}

// SpeakerModeChannels returns the number of channels of a speaker mode.
func (s System) SpeakerModeChannels(mode SpeakerMode) (int, error) {
	var n int32
	err := check(lib.System_GetSpeakerModeChannels(s.raw, int32(mode), &n))
	return int(n), err
}

func unflattenMatrix(flat []float32, outChannels, inChannels, hop int) [][]float32 {
	m := make([][]float32, outChannels)
	for o := range m {
		m[o] = append([]float32(nil), flat[o*hop:o*hop+inChannels]...)
	}
	return m
}

func flattenMatrix(m [][]float32) (flat []float32, outChannels, inChannels int) {
	outChannels = len(m)
	for _, row := range m {
		if len(row) > inChannels {
			inChannels = len(row)
		}
	}
	flat = make([]float32, outChannels*inChannels)
	for o, row := range m {
		copy(flat[o*inChannels:], row)
	}
	return flat, outChannels, inChannels
}
