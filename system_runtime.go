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

// AttachChannelGroupToPort routes a channel group to an auxiliary output port
// such as a controller speaker. Pass PortIndexNone for ports with a single
// instance.
func (s System) AttachChannelGroupToPort(portType PortType, portIndex uint64, group ChannelGroup, passThru bool) error {
	return check(lib.System_AttachChannelGroupToPort(s.raw, uint32(portType), portIndex, group.raw, boolToC(passThru)))
}

// DetachChannelGroupFromPort routes a channel group back to the main mix.
func (s System) DetachChannelGroupFromPort(group ChannelGroup) error {
	return check(lib.System_DetachChannelGroupFromPort(s.raw, group.raw))
}

// SetReverbProperties sets the properties of a global reverb instance, from 0
// to ReverbMaxInstances-1.
func (s System) SetReverbProperties(instance int, props ReverbProperties) error {
	return check(lib.System_SetReverbProperties(s.raw, int32(instance), ptrOf(&props)))
}

// ReverbProperties returns the properties of a global reverb instance.
func (s System) ReverbProperties(instance int) (ReverbProperties, error) {
	var props ReverbProperties
	err := check(lib.System_GetReverbProperties(s.raw, int32(instance), ptrOf(&props)))
	return props, err
}

// LockDSP blocks the mixer so several DSP graph changes apply atomically.
// Every LockDSP must be paired with UnlockDSP.
func (s System) LockDSP() error {
	return check(lib.System_LockDSP(s.raw))
}

// UnlockDSP releases the mixer locked by LockDSP.
func (s System) UnlockDSP() error {
	return check(lib.System_UnlockDSP(s.raw))
}

// WithDSPLock runs f with the mixer locked.
func (s System) WithDSPLock(f func() error) error {
	if err := s.LockDSP(); err != nil {
		return err
	}
	ferr := f()
	if err := s.UnlockDSP(); err != nil && ferr == nil {
		return err
	}
	return ferr
}
