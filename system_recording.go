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

// RecordDriverInfo describes an input device.
type RecordDriverInfo struct {
	DriverInfo
	State DriverState
}

// RecordNumDrivers returns the number of recording drivers and how many of
// them are connected.
func (s System) RecordNumDrivers() (drivers, connected int, err error) {
	var n, c int32
	err = check(lib.System_GetRecordNumDrivers(s.raw, &n, &c))
	return int(n), int(c), err
}

// RecordDriverInfo returns information about recording driver id.
func (s System) RecordDriverInfo(id int) (RecordDriverInfo, error) {
	var (
		info     RecordDriverInfo
		rate     int32
		mode     int32
		channels int32
		state    uint32
	)
	buf := make([]byte, driverNameMaxLength)
	if err := check(lib.System_GetRecordDriverInfo(s.raw, int32(id), &buf[0], int32(len(buf)), ptrOf(&info.GUID), &rate, &mode, &channels, &state)); err != nil {
		return RecordDriverInfo{}, err
	}
	info.Name = native.BytesToString(buf)
	info.SystemRate = int(rate)
	info.SpeakerMode = SpeakerMode(mode)
	info.SpeakerModeChannels = int(channels)
	info.State = DriverState(state)
	return info, nil
}

// RecordPosition returns the write position of a recording, in PCM samples,
// inside the sound passed to RecordStart.
func (s System) RecordPosition(id int) (uint32, error) {
	var pos uint32
	err := check(lib.System_GetRecordPosition(s.raw, int32(id), &pos))
	return pos, err
}

// RecordStart starts recording from driver id into sound.
func (s System) RecordStart(id int, sound Sound, loop bool) error {
	return check(lib.System_RecordStart(s.raw, int32(id), sound.raw, boolToC(loop)))
}

// RecordStop stops recording from driver id.
func (s System) RecordStop(id int) error {
	return check(lib.System_RecordStop(s.raw, int32(id)))
}

// IsRecording reports whether driver id is recording.
func (s System) IsRecording(id int) (bool, error) {
	var r int32
	err := check(lib.System_IsRecording(s.raw, int32(id), &r))
	return r != 0, err
}
