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

// SyncPoint marks a position in a sound. Channels playing the sound fire
// ChannelControlCallbackSyncPoint when they pass it.
type SyncPoint struct {
	raw uintptr
}

// SyncPointInfo is the name and offset of a sync point.
type SyncPointInfo struct {
	Name   string
	Offset uint32
}

// NumSyncPoints returns the number of sync points in the sound.
func (s Sound) NumSyncPoints() (int, error) {
	var n int32
	err := check(lib.Sound_GetNumSyncPoints(s.raw, &n))
	return int(n), err
}

// SyncPoint returns the sync point at index.
func (s Sound) SyncPoint(index int) (SyncPoint, error) {
	var raw uintptr
	err := check(lib.Sound_GetSyncPoint(s.raw, int32(index), &raw))
	return SyncPoint{raw: raw}, err
}

// SyncPointInfo returns the name and offset of point measured in unit.
func (s Sound) SyncPointInfo(point SyncPoint, unit TimeUnit) (SyncPointInfo, error) {
	var (
		info SyncPointInfo
		buf  = make([]byte, nameMaxLength)
	)
	if err := check(lib.Sound_GetSyncPointInfo(s.raw, point.raw, &buf[0], int32(len(buf)), &info.Offset, uint32(unit))); err != nil {
		return SyncPointInfo{}, err
	}
	info.Name = native.BytesToString(buf)
	return info, nil
}

// AddSyncPoint adds a named sync point at offset measured in unit.
func (s Sound) AddSyncPoint(offset uint32, unit TimeUnit, name string) (SyncPoint, error) {
	var raw uintptr
	err := check(lib.Sound_AddSyncPoint(s.raw, offset, uint32(unit), name, &raw))
	return SyncPoint{raw: raw}, err
}

// DeleteSyncPoint removes point from the sound.
func (s Sound) DeleteSyncPoint(point SyncPoint) error {
	return check(lib.Sound_DeleteSyncPoint(s.raw, point.raw))
}
