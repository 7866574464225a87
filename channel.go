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

// Channel is a playing instance of a Sound or DSP. It becomes invalid when it
// stops or is stolen by a higher priority sound, after which its methods
// return ErrInvalidHandle or ErrChannelStolen.
type Channel struct {
	ChannelControl
}

func newChannel(raw uintptr) Channel {
	return Channel{ChannelControl{raw: raw}}
}

// SetFrequency sets the playback frequency in Hz.
func (c Channel) SetFrequency(frequency float32) error {
	return check(lib.Channel_SetFrequency(c.raw, frequency))
}

// Frequency returns the playback frequency in Hz.
func (c Channel) Frequency() (float32, error) {
	var f float32
	err := check(lib.Channel_GetFrequency(c.raw, &f))
	return f, err
}

// SetPriority sets the priority used for voice stealing; 0 is most important
// and 256 least.
func (c Channel) SetPriority(priority int) error {
	return check(lib.Channel_SetPriority(c.raw, int32(priority)))
}

// Priority returns the voice stealing priority.
func (c Channel) Priority() (int, error) {
	var p int32
	err := check(lib.Channel_GetPriority(c.raw, &p))
	return int(p), err
}

// SetPosition seeks to position measured in unit.
func (c Channel) SetPosition(position uint32, unit TimeUnit) error {
	return check(lib.Channel_SetPosition(c.raw, position, uint32(unit)))
}

// Position returns the playback position measured in unit.
func (c Channel) Position(unit TimeUnit) (uint32, error) {
	var p uint32
	err := check(lib.Channel_GetPosition(c.raw, &p, uint32(unit)))
	return p, err
}

// SetChannelGroup moves the channel to group.
func (c Channel) SetChannelGroup(group ChannelGroup) error {
	return check(lib.Channel_SetChannelGroup(c.raw, group.raw))
}

// ChannelGroup returns the group the channel outputs to.
func (c Channel) ChannelGroup() (ChannelGroup, error) {
	var raw uintptr
	err := check(lib.Channel_GetChannelGroup(c.raw, &raw))
	return newChannelGroup(raw), err
}

// SetLoopCount sets how many times to loop; -1 loops forever.
func (c Channel) SetLoopCount(count int) error {
	return check(lib.Channel_SetLoopCount(c.raw, int32(count)))
}

// LoopCount returns the remaining loop count.
func (c Channel) LoopCount() (int, error) {
	var n int32
	err := check(lib.Channel_GetLoopCount(c.raw, &n))
	return int(n), err
}

// SetLoopPoints sets the loop region.
func (c Channel) SetLoopPoints(start uint32, startUnit TimeUnit, end uint32, endUnit TimeUnit) error {
	return check(lib.Channel_SetLoopPoints(c.raw, start, uint32(startUnit), end, uint32(endUnit)))
}

// LoopPoints returns the loop region.
func (c Channel) LoopPoints(startUnit, endUnit TimeUnit) (start, end uint32, err error) {
	err = check(lib.Channel_GetLoopPoints(c.raw, &start, uint32(startUnit), &end, uint32(endUnit)))
	return start, end, err
}

// IsVirtual reports whether the channel is emulated because of the voice
// limit.
func (c Channel) IsVirtual() (bool, error) {
	var v int32
	err := check(lib.Channel_IsVirtual(c.raw, &v))
	return v != 0, err
}

// CurrentSound returns the sound being played. It is the zero Sound when the
// channel plays a DSP.
func (c Channel) CurrentSound() (Sound, error) {
	var raw uintptr
	err := check(lib.Channel_GetCurrentSound(c.raw, &raw))
	return Sound{raw: raw}, err
}

// Index returns the index of the channel in the System channel pool.
func (c Channel) Index() (int, error) {
	var i int32
	err := check(lib.Channel_GetIndex(c.raw, &i))
	return int(i), err
}
