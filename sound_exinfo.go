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
	"io/fs"
	"unsafe"
)

// CreateSoundExInfo holds the extended options of CreateSoundEx. Zero fields
// keep the engine defaults.
type CreateSoundExInfo struct {
	// Length is the size of the data for ModeOpenMemory, the length of a
	// ModeOpenUser sound in TimeUnitPCMBytes, or the number of bytes to read
	// from a file.
	Length uint32
	// FileOffset is the offset to start reading from in a file.
	FileOffset uint32
	// NumChannels is the channel count of ModeOpenUser and ModeOpenRaw sounds.
	NumChannels int
	// DefaultFrequency is the sample rate of ModeOpenUser and ModeOpenRaw sounds.
	DefaultFrequency int
	// Format is the sample format of ModeOpenUser and ModeOpenRaw sounds.
	Format              SoundFormat
	DecodeBufferSize    uint32
	InitialSubSound     int
	NumSubSounds        int
	InclusionList       []int32
	DLSName             string
	EncryptionKey       string
	MaxPolyphony        int
	SuggestedSoundType  SoundType
	FileBufferSize      int
	ChannelOrder        ChannelOrder
	InitialSoundGroup   SoundGroup
	InitialSeekPosition uint32
	InitialSeekPosType  TimeUnit
	IgnoreSetFileSystem bool
	MinMIDIGranularity  uint32
	NonBlockThreadID    int
	FSBGUID             *GUID

	// PCMRead fills data with PCM for ModeOpenUser sounds.
	PCMRead func(sound Sound, data []byte) error
	// PCMSetPosition is called when a ModeOpenUser stream seeks.
	PCMSetPosition func(sound Sound, subSound int, position uint32, unit TimeUnit) error
	// NonBlock is called when a ModeNonBlocking sound finishes loading.
	NonBlock func(sound Sound, result error) error
	// FileSystem reads this sound's data instead of the System file system.
	FileSystem fs.FS
}

func (info *CreateSoundExInfo) hasCallbacks() bool {
	return info.PCMRead != nil || info.PCMSetPosition != nil || info.NonBlock != nil || info.FileSystem != nil
}

// createSoundExInfo has the native FMOD_CREATESOUNDEXINFO layout.
type createSoundExInfo struct {
	cbSize              int32
	length              uint32
	fileOffset          uint32
	numChannels         int32
	defaultFrequency    int32
	format              int32
	decodeBufferSize    uint32
	initialSubSound     int32
	numSubSounds        int32
	inclusionList       unsafe.Pointer
	inclusionListNum    int32
	pcmReadCallback     uintptr
	pcmSetPosCallback   uintptr
	nonBlockCallback    uintptr
	dlsName             unsafe.Pointer
	encryptionKey       unsafe.Pointer
	maxPolyphony        int32
	userData            uintptr
	suggestedSoundType  int32
	fileUserOpen        uintptr
	fileUserClose       uintptr
	fileUserRead        uintptr
	fileUserSeek        uintptr
	fileUserAsyncRead   uintptr
	fileUserAsyncCancel uintptr
	fileUserData        uintptr
	fileBufferSize      int32
	channelOrder        int32
	initialSoundGroup   uintptr
	initialSeekPosition uint32
	initialSeekPosType  uint32
	ignoreSetFileSystem int32
	audioQueuePolicy    uint32
	minMIDIGranularity  uint32
	nonBlockThreadID    int32
	fsbGUID             unsafe.Pointer
}

func cString(s string) unsafe.Pointer {
	if s == "" {
		return nil
	}
	b := append([]byte(s), 0)
	return unsafe.Pointer(&b[0])
}

// toNative converts info into the native layout. cookie is stored as the
// sound userdata and file userdata so callbacks can find their state.
func (info *CreateSoundExInfo) toNative(cookie uintptr) *createSoundExInfo {
	n := &createSoundExInfo{
		cbSize:              int32(unsafe.Sizeof(createSoundExInfo{})),
		length:              info.Length,
		fileOffset:          info.FileOffset,
		numChannels:         int32(info.NumChannels),
		defaultFrequency:    int32(info.DefaultFrequency),
		format:              int32(info.Format),
		decodeBufferSize:    info.DecodeBufferSize,
		initialSubSound:     int32(info.InitialSubSound),
		numSubSounds:        int32(info.NumSubSounds),
		dlsName:             cString(info.DLSName),
		encryptionKey:       cString(info.EncryptionKey),
		maxPolyphony:        int32(info.MaxPolyphony),
		suggestedSoundType:  int32(info.SuggestedSoundType),
		fileBufferSize:      int32(info.FileBufferSize),
		channelOrder:        int32(info.ChannelOrder),
		initialSoundGroup:   info.InitialSoundGroup.raw,
		initialSeekPosition: info.InitialSeekPosition,
		initialSeekPosType:  uint32(info.InitialSeekPosType),
		ignoreSetFileSystem: boolToC(info.IgnoreSetFileSystem),
		minMIDIGranularity:  info.MinMIDIGranularity,
		nonBlockThreadID:    int32(info.NonBlockThreadID),
		userData:            cookie,
	}
	if len(info.InclusionList) > 0 {
		n.inclusionList = unsafe.Pointer(&info.InclusionList[0])
		n.inclusionListNum = int32(len(info.InclusionList))
	}
	if info.FSBGUID != nil {
		n.fsbGUID = unsafe.Pointer(info.FSBGUID)
	}
	if info.PCMRead != nil {
		n.pcmReadCallback = pcmReadCallback.get()
	}
	if info.PCMSetPosition != nil {
		n.pcmSetPosCallback = pcmSetPosCallback.get()
	}
	if info.NonBlock != nil {
		n.nonBlockCallback = nonBlockCallback.get()
	}
	if info.FileSystem != nil {
		n.fileUserOpen = fileOpenCallback.get()
		n.fileUserClose = fileCloseCallback.get()
		n.fileUserRead = fileReadCallback.get()
		n.fileUserSeek = fileSeekCallback.get()
		n.fileUserData = cookie
	}
	return n
}
