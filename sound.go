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
	"errors"
	"io"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// Sound is loaded or streamed audio data created by a System.
type Sound struct {
	raw uintptr
}

// Raw returns the native handle.
func (s Sound) Raw() uintptr { return s.raw }

// SoundFormatInfo describes the encoding of a sound.
type SoundFormatInfo struct {
	Type     SoundType
	Format   SoundFormat
	Channels int
	Bits     int
}

// OpenStateInfo is the loading state of a non-blocking sound or stream.
type OpenStateInfo struct {
	State           OpenState
	PercentBuffered uint32
	Starving        bool
	DiskBusy        bool
}

// Release frees the sound. Channels playing it are stopped. Go callbacks
// attached at creation are released with it.
func (s Sound) Release() error {
	if err := check(lib.Sound_Release(s.raw)); err != nil {
		return err
	}
	forgetSoundState(s.raw)
	rolloffCurves.delete(s.raw)
	return nil
}

// SystemObject returns the System that created the sound.
func (s Sound) SystemObject() (System, error) {
	var raw uintptr
	err := check(lib.Sound_GetSystemObject(s.raw, &raw))
	return System{raw: raw}, err
}

// Name returns the name of the sound, usually its file name or tag title.
func (s Sound) Name() (string, error) {
	buf := make([]byte, nameMaxLength)
	if err := check(lib.Sound_GetName(s.raw, &buf[0], int32(len(buf)))); err != nil {
		return "", err
	}
	return native.BytesToString(buf), nil
}

// Length returns the length of the sound measured in unit.
func (s Sound) Length(unit TimeUnit) (uint32, error) {
	var n uint32
	err := check(lib.Sound_GetLength(s.raw, &n, uint32(unit)))
	return n, err
}

// Format returns the encoding of the sound.
func (s Sound) Format() (SoundFormatInfo, error) {
	var typ, format, channels, bits int32
	err := check(lib.Sound_GetFormat(s.raw, &typ, &format, &channels, &bits))
	return SoundFormatInfo{
		Type:     SoundType(typ),
		Format:   SoundFormat(format),
		Channels: int(channels),
		Bits:     int(bits),
	}, err
}

// OpenState returns the loading state of the sound.
func (s Sound) OpenState() (OpenStateInfo, error) {
	var (
		state          int32
		percent        uint32
		starving, busy int32
	)
	err := check(lib.Sound_GetOpenState(s.raw, &state, &percent, &starving, &busy))
	return OpenStateInfo{
		State:           OpenState(state),
		PercentBuffered: percent,
		Starving:        starving != 0,
		DiskBusy:        busy != 0,
	}, err
}

// SetDefaults sets the frequency and priority a channel starts with.
func (s Sound) SetDefaults(frequency float32, priority int) error {
	return check(lib.Sound_SetDefaults(s.raw, frequency, int32(priority)))
}

// Defaults returns the default frequency and priority.
func (s Sound) Defaults() (frequency float32, priority int, err error) {
	var p int32
	err = check(lib.Sound_GetDefaults(s.raw, &frequency, &p))
	return frequency, int(p), err
}

// Set3DMinMaxDistance sets the default attenuation distances.
func (s Sound) Set3DMinMaxDistance(min, max float32) error {
	return check(lib.Sound_Set3DMinMaxDistance(s.raw, min, max))
}

// ThreeDMinMaxDistance returns the default attenuation distances.
func (s Sound) ThreeDMinMaxDistance() (min, max float32, err error) {
	err = check(lib.Sound_Get3DMinMaxDistance(s.raw, &min, &max))
	return min, max, err
}

// Set3DConeSettings sets the default projection cone.
func (s Sound) Set3DConeSettings(cone ConeSettings) error {
	return check(lib.Sound_Set3DConeSettings(s.raw, cone.InsideAngle, cone.OutsideAngle, cone.OutsideVolume))
}

// ThreeDConeSettings returns the default projection cone.
func (s Sound) ThreeDConeSettings() (ConeSettings, error) {
	var cone ConeSettings
	err := check(lib.Sound_Get3DConeSettings(s.raw, &cone.InsideAngle, &cone.OutsideAngle, &cone.OutsideVolume))
	return cone, err
}

// Set3DCustomRolloff sets the default rolloff curve. The points are retained
// until replaced or the sound is released.
func (s Sound) Set3DCustomRolloff(points []Vector) error {
	kept := append([]Vector(nil), points...)
	var p unsafe.Pointer
	if len(kept) > 0 {
		p = unsafe.Pointer(&kept[0])
	}
	if err := check(lib.Sound_Set3DCustomRolloff(s.raw, p, int32(len(kept)))); err != nil {
		return err
	}
	if len(kept) == 0 {
		rolloffCurves.delete(s.raw)
	} else {
		rolloffCurves.store(s.raw, kept)
	}
	return nil
}

// ThreeDCustomRolloff returns a copy of the default rolloff curve.
func (s Sound) ThreeDCustomRolloff() ([]Vector, error) {
	var (
		p unsafe.Pointer
		n int32
	)
	if err := check(lib.Sound_Get3DCustomRolloff(s.raw, &p, &n)); err != nil {
		return nil, err
	}
	if p == nil || n == 0 {
		return nil, nil
	}
	return append([]Vector(nil), unsafe.Slice((*Vector)(p), n)...), nil
}

// NumSubSounds returns the number of sub-sounds in a container format.
func (s Sound) NumSubSounds() (int, error) {
	var n int32
	err := check(lib.Sound_GetNumSubSounds(s.raw, &n))
	return int(n), err
}

// SubSound returns the sub-sound at index.
func (s Sound) SubSound(index int) (Sound, error) {
	var raw uintptr
	err := check(lib.Sound_GetSubSound(s.raw, int32(index), &raw))
	return Sound{raw: raw}, err
}

// SubSoundParent returns the container of a sub-sound, or the zero Sound.
func (s Sound) SubSoundParent() (Sound, error) {
	var raw uintptr
	err := check(lib.Sound_GetSubSoundParent(s.raw, &raw))
	return Sound{raw: raw}, err
}

// SetSoundGroup moves the sound to group.
func (s Sound) SetSoundGroup(group SoundGroup) error {
	return check(lib.Sound_SetSoundGroup(s.raw, group.raw))
}

// SoundGroup returns the group of the sound.
func (s Sound) SoundGroup() (SoundGroup, error) {
	var raw uintptr
	err := check(lib.Sound_GetSoundGroup(s.raw, &raw))
	return SoundGroup{raw: raw}, err
}

// SetMode changes the loop mode of the sound.
func (s Sound) SetMode(mode Mode) error {
	return check(lib.Sound_SetMode(s.raw, uint32(mode)))
}

// Mode returns the mode of the sound.
func (s Sound) Mode() (Mode, error) {
	var m uint32
	err := check(lib.Sound_GetMode(s.raw, &m))
	return Mode(m), err
}

// SetLoopCount sets the default loop count; -1 loops forever.
func (s Sound) SetLoopCount(count int) error {
	return check(lib.Sound_SetLoopCount(s.raw, int32(count)))
}

// LoopCount returns the default loop count.
func (s Sound) LoopCount() (int, error) {
	var n int32
	err := check(lib.Sound_GetLoopCount(s.raw, &n))
	return int(n), err
}

// SetLoopPoints sets the default loop region.
func (s Sound) SetLoopPoints(start uint32, startUnit TimeUnit, end uint32, endUnit TimeUnit) error {
	return check(lib.Sound_SetLoopPoints(s.raw, start, uint32(startUnit), end, uint32(endUnit)))
}

// LoopPoints returns the default loop region.
func (s Sound) LoopPoints(startUnit, endUnit TimeUnit) (start, end uint32, err error) {
	err = check(lib.Sound_GetLoopPoints(s.raw, &start, uint32(startUnit), &end, uint32(endUnit)))
	return start, end, err
}

// SetUserData stores an arbitrary value with the sound.
func (s Sound) SetUserData(data uintptr) error {
	if st, ok := callbackSoundState(s.raw); ok {
		st.userData.Store(data)
		return nil
	}
	return check(lib.Sound_SetUserData(s.raw, data))
}

// UserData returns the value stored with SetUserData.
func (s Sound) UserData() (uintptr, error) {
	if st, ok := callbackSoundState(s.raw); ok {
		return st.userData.Load(), nil
	}
	var data uintptr
	err := check(lib.Sound_GetUserData(s.raw, &data))
	return data, err
}

// ReadData decodes PCM data from a sound opened with ModeOpenOnly into buf.
// It returns io.EOF once the end of the sound has been reached.
func (s Sound) ReadData(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var n uint32
	err := check(lib.Sound_ReadData(s.raw, unsafe.Pointer(&buf[0]), uint32(len(buf)), &n))
	if errors.Is(err, ErrFileEOF) {
		if n == 0 {
			return 0, io.EOF
		}
		err = nil
	}
	return int(n), err
}

// SeekData seeks the decoder used by ReadData to a PCM sample position.
func (s Sound) SeekData(pcm uint32) error {
	return check(lib.Sound_SeekData(s.raw, pcm))
}

// Reader returns an io.Reader over the decoded PCM data of a sound opened
// with ModeOpenOnly.
func (s Sound) Reader() io.Reader {
	return soundReader{s}
}

type soundReader struct {
	s Sound
}

func (r soundReader) Read(buf []byte) (int, error) {
	return r.s.ReadData(buf)
}

// SoundLock is a region of sample memory locked with Sound.Lock. The region
// may wrap around the end of the buffer, in which case Data2 holds the rest.
type SoundLock struct {
	sound  uintptr
	Data1  []byte
	Data2  []byte
	p1, p2 unsafe.Pointer
}

// Lock gives direct access to length bytes of sample memory starting at
// offset. The slices are valid until Unlock.
func (s Sound) Lock(offset, length uint32) (*SoundLock, error) {
	var (
		p1, p2 unsafe.Pointer
		n1, n2 uint32
	)
	if err := check(lib.Sound_Lock(s.raw, offset, length, &p1, &p2, &n1, &n2)); err != nil {
		return nil, err
	}
	l := &SoundLock{sound: s.raw, p1: p1, p2: p2}
	if p1 != nil {
		l.Data1 = unsafe.Slice((*byte)(p1), n1)
	}
	if p2 != nil {
		l.Data2 = unsafe.Slice((*byte)(p2), n2)
	}
	return l, nil
}

// Unlock releases the region.
func (l *SoundLock) Unlock() error {
	if l.sound == 0 {
		return ErrInvalidParam
	}
	err := check(lib.Sound_Unlock(l.sound, l.p1, l.p2, uint32(len(l.Data1)), uint32(len(l.Data2))))
	*l = SoundLock{}
	return err
}

// MusicNumChannels returns the number of channels of a MOD/S3M/XM/IT/MIDI
// sound.
func (s Sound) MusicNumChannels() (int, error) {
	var n int32
	err := check(lib.Sound_GetMusicNumChannels(s.raw, &n))
	return int(n), err
}

// SetMusicChannelVolume sets the volume of a music channel.
func (s Sound) SetMusicChannelVolume(channel int, volume float32) error {
	return check(lib.Sound_SetMusicChannelVolume(s.raw, int32(channel), volume))
}

// MusicChannelVolume returns the volume of a music channel.
func (s Sound) MusicChannelVolume(channel int) (float32, error) {
	var v float32
	err := check(lib.Sound_GetMusicChannelVolume(s.raw, int32(channel), &v))
	return v, err
}

// SetMusicSpeed scales the tempo of a music sound.
func (s Sound) SetMusicSpeed(speed float32) error {
	return check(lib.Sound_SetMusicSpeed(s.raw, speed))
}

// MusicSpeed returns the tempo scale of a music sound.
func (s Sound) MusicSpeed() (float32, error) {
	var v float32
	err := check(lib.Sound_GetMusicSpeed(s.raw, &v))
	return v, err
}
