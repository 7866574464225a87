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

// DriverInfo describes an output or input sound device.
type DriverInfo struct {
	Name                string
	GUID                GUID
	SystemRate          int
	SpeakerMode         SpeakerMode
	SpeakerModeChannels int
}

// SetOutput selects the output backend. It must be called before Init.
func (s System) SetOutput(output OutputType) error {
	return check(lib.System_SetOutput(s.raw, int32(output)))
}

// Output returns the output backend.
func (s System) Output() (OutputType, error) {
	var o int32
	err := check(lib.System_GetOutput(s.raw, &o))
	return OutputType(o), err
}

// NumDrivers returns the number of output drivers of the selected backend.
func (s System) NumDrivers() (int, error) {
	var n int32
	err := check(lib.System_GetNumDrivers(s.raw, &n))
	return int(n), err
}

// DriverInfo returns information about output driver id.
func (s System) DriverInfo(id int) (DriverInfo, error) {
	var (
		info     DriverInfo
		rate     int32
		mode     int32
		channels int32
	)
	buf := make([]byte, driverNameMaxLength)
	if err := check(lib.System_GetDriverInfo(s.raw, int32(id), &buf[0], int32(len(buf)), ptrOf(&info.GUID), &rate, &mode, &channels)); err != nil {
		return DriverInfo{}, err
	}
	info.Name = native.BytesToString(buf)
	info.SystemRate = int(rate)
	info.SpeakerMode = SpeakerMode(mode)
	info.SpeakerModeChannels = int(channels)
	return info, nil
}

// Drivers returns information about every output driver.
func (s System) Drivers() ([]DriverInfo, error) {
	n, err := s.NumDrivers()
	if err != nil {
		return nil, err
	}
	drivers := make([]DriverInfo, 0, n)
	for i := 0; i < n; i++ {
		d, err := s.DriverInfo(i)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// SetDriver selects the output driver. 0 is the system default.
func (s System) SetDriver(driver int) error {
	return check(lib.System_SetDriver(s.raw, int32(driver)))
}

// Driver returns the selected output driver.
func (s System) Driver() (int, error) {
	var d int32
	err := check(lib.System_GetDriver(s.raw, &d))
	return int(d), err
}

// SetOutputByPlugin selects an output plugin loaded with LoadPlugin.
func (s System) SetOutputByPlugin(handle PluginHandle) error {
	return check(lib.System_SetOutputByPlugin(s.raw, uint32(handle)))
}

// OutputByPlugin returns the selected output plugin.
func (s System) OutputByPlugin() (PluginHandle, error) {
	var h uint32
	err := check(lib.System_GetOutputByPlugin(s.raw, &h))
	return PluginHandle(h), err
}
