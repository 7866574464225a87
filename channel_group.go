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

// ChannelGroup submixes channels and other groups.
type ChannelGroup struct {
	ChannelControl
}

func newChannelGroup(raw uintptr) ChannelGroup {
	return ChannelGroup{ChannelControl{raw: raw}}
}

// Release frees the group. Channels and child groups are moved to the master
// group. The master group itself cannot be released.
func (g ChannelGroup) Release() error {
	if err := check(lib.ChannelGroup_Release(g.raw)); err != nil {
		return err
	}
	channelCallbacks.delete(g.raw)
	rolloffCurves.delete(g.raw)
	return nil
}

// AddGroup makes child an input of g. If propagateClock is set the child's
// DSP clock follows g.
func (g ChannelGroup) AddGroup(child ChannelGroup, propagateClock bool) (DSPConnection, error) {
	var conn uintptr
	err := check(lib.ChannelGroup_AddGroup(g.raw, child.raw, boolToC(propagateClock), &conn))
	return DSPConnection{raw: conn}, err
}

// NumGroups returns the number of child groups.
func (g ChannelGroup) NumGroups() (int, error) {
	var n int32
	err := check(lib.ChannelGroup_GetNumGroups(g.raw, &n))
	return int(n), err
}

// Group returns the child group at index.
func (g ChannelGroup) Group(index int) (ChannelGroup, error) {
	var raw uintptr
	err := check(lib.ChannelGroup_GetGroup(g.raw, int32(index), &raw))
	return newChannelGroup(raw), err
}

// Groups returns all child groups.
func (g ChannelGroup) Groups() ([]ChannelGroup, error) {
	n, err := g.NumGroups()
	if err != nil {
		return nil, err
	}
	groups := make([]ChannelGroup, 0, n)
	for i := 0; i < n; i++ {
		child, err := g.Group(i)
		if err != nil {
			return nil, err
		}
		groups = append(groups, child)
	}
	return groups, nil
}

// ParentGroup returns the group g outputs to. It is the zero ChannelGroup for
// the master group.
func (g ChannelGroup) ParentGroup() (ChannelGroup, error) {
	var raw uintptr
	err := check(lib.ChannelGroup_GetParentGroup(g.raw, &raw))
	return newChannelGroup(raw), err
}

// Name returns the name given at creation.
func (g ChannelGroup) Name() (string, error) {
	buf := make([]byte, nameMaxLength)
	if err := check(lib.ChannelGroup_GetName(g.raw, &buf[0], int32(len(buf)))); err != nil {
		return "", err
	}
	return native.BytesToString(buf), nil
}

// NumChannels returns the number of channels playing directly in g.
func (g ChannelGroup) NumChannels() (int, error) {
	var n int32
	err := check(lib.ChannelGroup_GetNumChannels(g.raw, &n))
	return int(n), err
}

// Channel returns the channel at index.
func (g ChannelGroup) Channel(index int) (Channel, error) {
	var raw uintptr
	err := check(lib.ChannelGroup_GetChannel(g.raw, int32(index), &raw))
	return newChannel(raw), err
}
