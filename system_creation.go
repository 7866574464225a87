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
	"runtime"
	"unsafe"
)

// CreateSound loads a sound from the file or URL name.
//
// Modes that reinterpret the name, such as ModeOpenMemory or ModeOpenUser,
// are rejected with ErrInvalidParam; use CreateSoundEx for those.
func (s System) CreateSound(name string, mode Mode) (Sound, error) {
	if mode&modeUserData != 0 {
		log.Warnf("CreateSound called with mode %v; use CreateSoundEx instead", mode)
		return Sound{}, ErrInvalidParam
	}
	return s.createSound(lib.System_CreateSound, cString(name), mode, nil)
}

// CreateStream opens name as a stream, decoding it on the fly while playing.
// Like CreateSound, it rejects modes that reinterpret the name.
func (s System) CreateStream(name string, mode Mode) (Sound, error) {
	if mode&modeUserData != 0 {
		log.Warnf("CreateStream called with mode %v; use CreateSoundEx instead", mode)
		return Sound{}, ErrInvalidParam
	}
	return s.createSound(lib.System_CreateStream, cString(name), mode, nil)
}

// CreateSoundEx creates a sound with extended options. It requires one of
// ModeOpenUser, ModeOpenMemory, ModeOpenMemoryPoint and ModeOpenRaw, or an
// info that installs callbacks.
//
// For ModeOpenMemory, data holds the encoded file. ModeOpenMemoryPoint uses
// data in place, so it must stay alive and unchanged until the sound is
// released. ModeOpenUser ignores data. Otherwise data is the file name.
func (s System) CreateSoundEx(data []byte, mode Mode, info *CreateSoundExInfo) (Sound, error) {
	if mode&modeUserData == 0 && (info == nil || !info.hasCallbacks()) {
		log.Warnf("CreateSoundEx called with mode %v; use CreateSound instead", mode)
		return Sound{}, ErrInvalidParam
	}
	var local CreateSoundExInfo
	if info != nil {
		local = *info
	}
	if mode&(ModeOpenMemory|ModeOpenMemoryPoint) != 0 && local.Length == 0 {
		local.Length = uint32(len(data))
	}

	var ptr unsafe.Pointer
	switch {
	case mode&(ModeOpenMemory|ModeOpenMemoryPoint) != 0:
		if len(data) > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
	case mode&ModeOpenUser != 0:
	default:
		ptr = cString(string(data))
	}
	sound, err := s.createSound(lib.System_CreateSound, ptr, mode, &local)
	runtime.KeepAlive(data)
	return sound, err
}

// CreateSoundFromMemory creates a sound from an encoded file held in data,
// which is copied by the engine.
func (s System) CreateSoundFromMemory(data []byte, mode Mode) (Sound, error) {
	return s.CreateSoundEx(data, mode|ModeOpenMemory, &CreateSoundExInfo{Length: uint32(len(data))})
}

// UserSoundFormat describes the PCM produced by a user sound.
type UserSoundFormat struct {
	Channels   int
	SampleRate int
	Format     SoundFormat
	// Length is the total length of the sound in samples per channel.
	Length uint32
}

// CreateUserSound creates a sound whose PCM data is produced by read. The
// setPosition callback may be nil.
func (s System) CreateUserSound(mode Mode, format UserSoundFormat, read func(Sound, []byte) error, setPosition func(Sound, int, uint32, TimeUnit) error) (Sound, error) {
	info := &CreateSoundExInfo{
		NumChannels:      format.Channels,
		DefaultFrequency: format.SampleRate,
		Format:           format.Format,
		Length:           format.Length * uint32(format.Channels*format.Format.BytesPerSample()),
		PCMRead:          read,
		PCMSetPosition:   setPosition,
	}
	return s.CreateSoundEx(nil, mode|ModeOpenUser, info)
}

type createFunc func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32

func (s System) createSound(create createFunc, nameOrData unsafe.Pointer, mode Mode, info *CreateSoundExInfo) (Sound, error) {
	var (
		raw    uintptr
		exinfo *createSoundExInfo
		cookie uintptr
	)
	if info != nil {
		if info.hasCallbacks() {
			cookie = newCookie()
			soundStates.store(cookie, &soundState{
				pcmRead:        info.PCMRead,
				pcmSetPosition: info.PCMSetPosition,
				nonBlock:       info.NonBlock,
			})
			if info.FileSystem != nil {
				fileSystems.store(cookie, info.FileSystem)
			}
		}
		exinfo = info.toNative(cookie)
	}
	err := check(create(s.raw, nameOrData, uint32(mode), unsafe.Pointer(exinfo), &raw))
	runtime.KeepAlive(exinfo)
	runtime.KeepAlive(info)
	if err != nil {
		if cookie != 0 {
			soundStates.delete(cookie)
			fileSystems.delete(cookie)
		}
		return Sound{}, err
	}
	if cookie != 0 {
		soundCookies.store(raw, cookie)
	}
	return Sound{raw: raw}, nil
}

// CreateDSPByType creates one of the built-in effects.
func (s System) CreateDSPByType(typ DSPType) (DSP, error) {
	var raw uintptr
	err := check(lib.System_CreateDSPByType(s.raw, int32(typ), &raw))
	return DSP{raw: raw}, err
}

// CreateChannelGroup creates a channel group, which is attached to the
// master channel group.
func (s System) CreateChannelGroup(name string) (ChannelGroup, error) {
	var raw uintptr
	err := check(lib.System_CreateChannelGroup(s.raw, name, &raw))
	return newChannelGroup(raw), err
}

// CreateSoundGroup creates a sound group.
func (s System) CreateSoundGroup(name string) (SoundGroup, error) {
	var raw uintptr
	err := check(lib.System_CreateSoundGroup(s.raw, name, &raw))
	return SoundGroup{raw: raw}, err
}

// CreateReverb3D creates a 3D reverb zone.
func (s System) CreateReverb3D() (Reverb3D, error) {
	var raw uintptr
	err := check(lib.System_CreateReverb3D(s.raw, &raw))
	return Reverb3D{raw: raw}, err
}

// PlaySound plays sound on a new channel in group. A zero group means the
// master channel group.
func (s System) PlaySound(sound Sound, group ChannelGroup) (Channel, error) {
	return s.playSound(sound, group, false)
}

// CreateSoundChannel is like PlaySound but leaves the channel paused so it can
// be configured before it is heard.
func (s System) CreateSoundChannel(sound Sound, group ChannelGroup) (Channel, error) {
	return s.playSound(sound, group, true)
}

func (s System) playSound(sound Sound, group ChannelGroup, paused bool) (Channel, error) {
	var raw uintptr
	err := check(lib.System_PlaySound(s.raw, sound.raw, group.raw, boolToC(paused), &raw))
	return newChannel(raw), err
}

// PlayDSP plays dsp as a generator on a new channel in group.
func (s System) PlayDSP(dsp DSP, group ChannelGroup) (Channel, error) {
	return s.playDSP(dsp, group, false)
}

// CreateDSPChannel is like PlayDSP but leaves the channel paused.
func (s System) CreateDSPChannel(dsp DSP, group ChannelGroup) (Channel, error) {
	return s.playDSP(dsp, group, true)
}

func (s System) playDSP(dsp DSP, group ChannelGroup, paused bool) (Channel, error) {
	var raw uintptr
	err := check(lib.System_PlayDSP(s.raw, dsp.raw, group.raw, boolToC(paused), &raw))
	return newChannel(raw), err
}

// Channel returns the channel with the given index.
func (s System) Channel(id int) (Channel, error) {
	var raw uintptr
	err := check(lib.System_GetChannel(s.raw, int32(id), &raw))
	return newChannel(raw), err
}

// MasterChannelGroup returns the channel group every other group and channel
// mixes into.
func (s System) MasterChannelGroup() (ChannelGroup, error) {
	var raw uintptr
	err := check(lib.System_GetMasterChannelGroup(s.raw, &raw))
	return newChannelGroup(raw), err
}

// MasterSoundGroup returns the default sound group.
func (s System) MasterSoundGroup() (SoundGroup, error) {
	var raw uintptr
	err := check(lib.System_GetMasterSoundGroup(s.raw, &raw))
	return SoundGroup{raw: raw}, err
}
