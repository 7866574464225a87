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

// Head and tail are the DSP chain positions accepted by AddDSP.
const (
	DSPIndexHead  = -1
	DSPIndexFader = -2
	DSPIndexTail  = -3
)

// FadePoint is a volume at a DSP clock, interpolated linearly.
type FadePoint struct {
	Clock  uint64
	Volume float32
}

// Delay is a start and end in DSP clocks of the parent. A zero Start means
// start immediately and a zero End means never end.
type Delay struct {
	Start        uint64
	End          uint64
	StopChannels bool
}

// SetPan pans a mono or stereo signal from -1 (left) to 1 (right).
func (c ChannelControl) SetPan(pan float32) error {
	return check(lib.Channel_SetPan(c.raw, pan))
}

// SetMixLevelsOutput sets the level sent to each speaker.
func (c ChannelControl) SetMixLevelsOutput(frontLeft, frontRight, center, lfe, surroundLeft, surroundRight, backLeft, backRight float32) error {
	return check(lib.Channel_SetMixLevelsOutput(c.raw, frontLeft, frontRight, center, lfe, surroundLeft, surroundRight, backLeft, backRight))
}

// SetMixLevelsInput sets the level of each input channel.
func (c ChannelControl) SetMixLevelsInput(levels []float32) error {
	return check(lib.Channel_SetMixLevelsInput(c.raw, floatsPtr(levels), int32(len(levels))))
}

// SetMixMatrix sets the matrix mapping input channels (columns) to output
// channels (rows). A nil matrix resets it to the default.
func (c ChannelControl) SetMixMatrix(matrix [][]float32) error {
	flat, out, in := flattenMatrix(matrix)
	return check(lib.Channel_SetMixMatrix(c.raw, floatsPtr(flat), int32(out), int32(in), int32(in)))
}

// MixMatrix returns the current mix matrix.
func (c ChannelControl) MixMatrix() ([][]float32, error) {
	var out, in int32
	if err := check(lib.Channel_GetMixMatrix(c.raw, nil, &out, &in, 0)); err != nil {
		return nil, err
	}
	if out == 0 || in == 0 {
		return nil, nil
	}
	flat := make([]float32, out*in)
	if err := check(lib.Channel_GetMixMatrix(c.raw, &flat[0], &out, &in, in)); err != nil {
		return nil, err
	}
	return unflattenMatrix(flat, int(out), int(in), int(in)), nil
}

// DSPClock returns the DSP clock of the channel or group and of its parent.
func (c ChannelControl) DSPClock() (clock, parent uint64, err error) {
	err = check(lib.Channel_GetDSPClock(c.raw, &clock, &parent))
	return clock, parent, err
}

// SetDelay schedules sample accurate start and end times.
func (c ChannelControl) SetDelay(d Delay) error {
	return check(lib.Channel_SetDelay(c.raw, d.Start, d.End, boolToC(d.StopChannels)))
}

// Delay returns the scheduled start and end times.
func (c ChannelControl) Delay() (Delay, error) {
	var (
		d    Delay
		stop int32
	)
	err := check(lib.Channel_GetDelay(c.raw, &d.Start, &d.End, &stop))
	d.StopChannels = stop != 0
	return d, err
}

// AddFadePoint adds a volume point at a DSP clock of the parent.
func (c ChannelControl) AddFadePoint(clock uint64, volume float32) error {
	return check(lib.Channel_AddFadePoint(c.raw, clock, volume))
}

// SetFadePointRamp adds a ramp from the current volume to volume ending at
// clock.
func (c ChannelControl) SetFadePointRamp(clock uint64, volume float32) error {
	return check(lib.Channel_SetFadePointRamp(c.raw, clock, volume))
}

// RemoveFadePoints removes the fade points between start and end inclusive.
func (c ChannelControl) RemoveFadePoints(start, end uint64) error {
	return check(lib.Channel_RemoveFadePoints(c.raw, start, end))
}

// FadePoints returns all fade points.
func (c ChannelControl) FadePoints() ([]FadePoint, error) {
	var n uint32
	if err := check(lib.Channel_GetFadePoints(c.raw, &n, nil, nil)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	clocks := make([]uint64, n)
	volumes := make([]float32, n)
	if err := check(lib.Channel_GetFadePoints(c.raw, &n, &clocks[0], &volumes[0])); err != nil {
		return nil, err
	}
	points := make([]FadePoint, min(int(n), len(clocks)))
	for i := range points {
		points[i] = FadePoint{Clock: clocks[i], Volume: volumes[i]}
	}
	return points, nil
}

// DSP returns the DSP at index in the chain. DSPIndexHead, DSPIndexFader and
// DSPIndexTail are accepted.
func (c ChannelControl) DSP(index int) (DSP, error) {
	var raw uintptr
	err := check(lib.Channel_GetDSP(c.raw, int32(index), &raw))
	return DSP{raw: raw}, err
}

// AddDSP inserts dsp into the chain at index.
func (c ChannelControl) AddDSP(index int, dsp DSP) error {
	return check(lib.Channel_AddDSP(c.raw, int32(index), dsp.raw))
}

// RemoveDSP removes dsp from the chain.
func (c ChannelControl) RemoveDSP(dsp DSP) error {
	return check(lib.Channel_RemoveDSP(c.raw, dsp.raw))
}

// NumDSPs returns the length of the DSP chain.
func (c ChannelControl) NumDSPs() (int, error) {
	var n int32
	err := check(lib.Channel_GetNumDSPs(c.raw, &n))
	return int(n), err
}

// SetDSPIndex moves dsp to index in the chain.
func (c ChannelControl) SetDSPIndex(dsp DSP, index int) error {
	return check(lib.Channel_SetDSPIndex(c.raw, dsp.raw, int32(index)))
}

// DSPIndex returns the position of dsp in the chain.
func (c ChannelControl) DSPIndex(dsp DSP) (int, error) {
	var i int32
	err := check(lib.Channel_GetDSPIndex(c.raw, dsp.raw, &i))
	return int(i), err
}
