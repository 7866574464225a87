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
	"fmt"
	"strings"
)

func enumString(typ string, names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

// OutputType selects the output backend used by a System.
type OutputType int32

const (
	OutputAutoDetect OutputType = iota
	OutputUnknown
	OutputNoSound
	OutputWavWriter
	OutputNoSoundNRT
	OutputWavWriterNRT
	OutputWASAPI
	OutputASIO
	OutputPulseAudio
	OutputALSA
	OutputCoreAudio
	OutputAudioTrack
	OutputOpenSL
	OutputAudioOut
	OutputAudio3D
	OutputWebAudio
	OutputNNAudio
	OutputWinSonic
	OutputAAudio
	OutputAudioWorklet
	OutputPhase
)

var outputTypeNames = []string{
	"AutoDetect", "Unknown", "NoSound", "WavWriter", "NoSoundNRT", "WavWriterNRT",
	"WASAPI", "ASIO", "PulseAudio", "ALSA", "CoreAudio", "AudioTrack", "OpenSL",
	"AudioOut", "Audio3D", "WebAudio", "NNAudio", "WinSonic", "AAudio",
	"AudioWorklet", "Phase",
}

func (o OutputType) String() string { return enumString("OutputType", outputTypeNames, int32(o)) }

// ParseOutputType returns the OutputType whose name matches s, ignoring case.
func ParseOutputType(s string) (OutputType, error) {
	for i, n := range outputTypeNames {
		if strings.EqualFold(n, s) {
			return OutputType(i), nil
		}
	}
	return 0, fmt.Errorf("fmod: unknown output type %q", s)
}

// SpeakerMode is a speaker layout.
type SpeakerMode int32

const (
	SpeakerModeDefault SpeakerMode = iota
	SpeakerModeRaw
	SpeakerModeMono
	SpeakerModeStereo
	SpeakerModeQuad
	SpeakerModeSurround
	SpeakerMode5Point1
	SpeakerMode7Point1
	SpeakerMode7Point1Point4
)

var speakerModeNames = []string{"Default", "Raw", "Mono", "Stereo", "Quad", "Surround", "5.1", "7.1", "7.1.4"}

func (m SpeakerMode) String() string { return enumString("SpeakerMode", speakerModeNames, int32(m)) }

// ParseSpeakerMode returns the SpeakerMode whose name matches s, ignoring case.
func ParseSpeakerMode(s string) (SpeakerMode, error) {
	for i, n := range speakerModeNames {
		if strings.EqualFold(n, s) {
			return SpeakerMode(i), nil
		}
	}
	return 0, fmt.Errorf("fmod: unknown speaker mode %q", s)
}

// Speaker identifies a speaker in a layout.
type Speaker int32

const (
	SpeakerNone Speaker = iota - 1
	SpeakerFrontLeft
	SpeakerFrontRight
	SpeakerFrontCenter
	SpeakerLowFrequency
	SpeakerSurroundLeft
	SpeakerSurroundRight
	SpeakerBackLeft
	SpeakerBackRight
	SpeakerTopFrontLeft
	SpeakerTopFrontRight
	SpeakerTopBackLeft
	SpeakerTopBackRight
)

var speakerNames = []string{
	"FrontLeft", "FrontRight", "FrontCenter", "LowFrequency", "SurroundLeft",
	"SurroundRight", "BackLeft", "BackRight", "TopFrontLeft", "TopFrontRight",
	"TopBackLeft", "TopBackRight",
}

func (s Speaker) String() string {
	if s == SpeakerNone {
		return "None"
	}
	return enumString("Speaker", speakerNames, int32(s))
}

// ChannelOrder is the speaker ordering for multichannel signals.
type ChannelOrder int32

const (
	ChannelOrderDefault ChannelOrder = iota
	ChannelOrderWaveFormat
	ChannelOrderProTools
	ChannelOrderAllMono
	ChannelOrderAllStereo
	ChannelOrderALSA
)

// PluginType is the kind of a loaded plugin.
type PluginType int32

const (
	PluginTypeOutput PluginType = iota
	PluginTypeCodec
	PluginTypeDSP
)

var pluginTypeNames = []string{"Output", "Codec", "DSP"}

func (p PluginType) String() string { return enumString("PluginType", pluginTypeNames, int32(p)) }

// SoundType is the container format of a sound.
type SoundType int32

const (
	SoundTypeUnknown SoundType = iota
	SoundTypeAIFF
	SoundTypeASF
	SoundTypeDLS
	SoundTypeFLAC
	SoundTypeFSB
	SoundTypeIT
	SoundTypeMIDI
	SoundTypeMOD
	SoundTypeMPEG
	SoundTypeOggVorbis
	SoundTypePlaylist
	SoundTypeRaw
	SoundTypeS3M
	SoundTypeUser
	SoundTypeWAV
	SoundTypeXM
	SoundTypeXMA
	SoundTypeAudioQueue
	SoundTypeAT9
	SoundTypeVorbis
	SoundTypeMediaFoundation
	SoundTypeMediaCodec
	SoundTypeFADPCM
	SoundTypeOpus
)

var soundTypeNames = []string{
	"Unknown", "AIFF", "ASF", "DLS", "FLAC", "FSB", "IT", "MIDI", "MOD", "MPEG",
	"OggVorbis", "Playlist", "Raw", "S3M", "User", "WAV", "XM", "XMA",
	"AudioQueue", "AT9", "Vorbis", "MediaFoundation", "MediaCodec", "FADPCM", "Opus",
}

func (t SoundType) String() string { return enumString("SoundType", soundTypeNames, int32(t)) }

// SoundFormat is the sample format of a sound.
type SoundFormat int32

const (
	SoundFormatNone SoundFormat = iota
	SoundFormatPCM8
	SoundFormatPCM16
	SoundFormatPCM24
	SoundFormatPCM32
	SoundFormatPCMFloat
	SoundFormatBitstream
)

var soundFormatNames = []string{"None", "PCM8", "PCM16", "PCM24", "PCM32", "PCMFloat", "Bitstream"}

func (f SoundFormat) String() string { return enumString("SoundFormat", soundFormatNames, int32(f)) }

// BytesPerSample returns the size of one sample of one channel, or 0 for
// compressed formats.
func (f SoundFormat) BytesPerSample() int {
	switch f {
	case SoundFormatPCM8:
		return 1
	case SoundFormatPCM16:
		return 2
	case SoundFormatPCM24:
		return 3
	case SoundFormatPCM32, SoundFormatPCMFloat:
		return 4
	}
	return 0
}

// OpenState is the loading state of a sound.
type OpenState int32

const (
	OpenStateReady OpenState = iota
	OpenStateLoading
	OpenStateError
	OpenStateConnecting
	OpenStateBuffering
	OpenStateSeeking
	OpenStatePlaying
	OpenStateSetPosition
)

var openStateNames = []string{"Ready", "Loading", "Error", "Connecting", "Buffering", "Seeking", "Playing", "SetPosition"}

func (s OpenState) String() string { return enumString("OpenState", openStateNames, int32(s)) }

// SoundGroupBehavior decides what happens when a sound group exceeds its
// audible limit.
type SoundGroupBehavior int32

const (
	SoundGroupBehaviorFail SoundGroupBehavior = iota
	SoundGroupBehaviorMute
	SoundGroupBehaviorStealLowest
)

// ChannelControlType tells whether a ChannelControl callback fired for a
// Channel or a ChannelGroup.
type ChannelControlType int32

const (
	ChannelControlChannel ChannelControlType = iota
	ChannelControlChannelGroup
)

// ChannelControlCallbackType is the event a ChannelControl callback reports.
type ChannelControlCallbackType int32

const (
	ChannelControlCallbackEnd ChannelControlCallbackType = iota
	ChannelControlCallbackVirtualVoice
	ChannelControlCallbackSyncPoint
	ChannelControlCallbackOcclusion
)

var channelControlCallbackNames = []string{"End", "VirtualVoice", "SyncPoint", "Occlusion"}

func (t ChannelControlCallbackType) String() string {
	return enumString("ChannelControlCallbackType", channelControlCallbackNames, int32(t))
}

// DSPConnectionType is the kind of a DSP graph edge.
type DSPConnectionType int32

const (
	DSPConnectionStandard DSPConnectionType = iota
	DSPConnectionSidechain
	DSPConnectionSend
	DSPConnectionSendSidechain
)

var dspConnectionTypeNames = []string{"Standard", "Sidechain", "Send", "SendSidechain"}

func (t DSPConnectionType) String() string {
	return enumString("DSPConnectionType", dspConnectionTypeNames, int32(t))
}

// TagType is the metadata standard a tag comes from.
type TagType int32

const (
	TagTypeUnknown TagType = iota
	TagTypeID3v1
	TagTypeID3v2
	TagTypeVorbisComment
	TagTypeShoutcast
	TagTypeIcecast
	TagTypeASF
	TagTypeMIDI
	TagTypePlaylist
	TagTypeFMOD
	TagTypeUser
)

var tagTypeNames = []string{"Unknown", "ID3v1", "ID3v2", "VorbisComment", "Shoutcast", "Icecast", "ASF", "MIDI", "Playlist", "FMOD", "User"}

func (t TagType) String() string { return enumString("TagType", tagTypeNames, int32(t)) }

// TagDataType is the encoding of a tag payload.
type TagDataType int32

const (
	TagDataBinary TagDataType = iota
	TagDataInt
	TagDataFloat
	TagDataString
	TagDataStringUTF16
	TagDataStringUTF16BE
	TagDataStringUTF8
)

// PortType is an auxiliary output port kind.
type PortType int32

const (
	PortTypeMusic PortType = iota
	PortTypeCopyright
	PortTypeVoice
	PortTypeController
	PortTypePersonal
	PortTypeVibration
	PortTypeAux
)

// PortIndexNone is the port index for ports that only have one instance.
const PortIndexNone uint64 = 0xFFFFFFFFFFFFFFFF

// DebugMode is the destination of engine debug output.
type DebugMode int32

const (
	DebugModeTTY DebugMode = iota
	DebugModeFile
	DebugModeCallback
)

// ThreadType names an engine thread.
type ThreadType int32

const (
	ThreadTypeMixer ThreadType = iota
	ThreadTypeFeeder
	ThreadTypeStream
	ThreadTypeFile
	ThreadTypeNonBlocking
	ThreadTypeRecord
	ThreadTypeGeometry
	ThreadTypeProfiler
	ThreadTypeStudioUpdate
	ThreadTypeStudioLoadBank
	ThreadTypeStudioLoadSample
	ThreadTypeConvolution1
	ThreadTypeConvolution2
)

var threadTypeNames = []string{
	"Mixer", "Feeder", "Stream", "File", "NonBlocking", "Record", "Geometry",
	"Profiler", "StudioUpdate", "StudioLoadBank", "StudioLoadSample",
	"Convolution1", "Convolution2",
}

func (t ThreadType) String() string { return enumString("ThreadType", threadTypeNames, int32(t)) }

// ErrorCallbackInstance is the kind of object reported by a system error callback.
type ErrorCallbackInstance int32

const (
	InstanceNone ErrorCallbackInstance = iota
	InstanceSystem
	InstanceChannel
	InstanceChannelGroup
	InstanceChannelControl
	InstanceSound
	InstanceSoundGroup
	InstanceDSP
	InstanceDSPConnection
	InstanceGeometry
	InstanceReverb3D
)

// Resampler is the interpolation method used by the mixer.
type Resampler int32

const (
	ResamplerDefault Resampler = iota
	ResamplerNoInterp
	ResamplerLinear
	ResamplerCubic
	ResamplerSpline
)

// DSPParameterType is the value kind of a DSP parameter.
type DSPParameterType int32

const (
	DSPParameterFloat DSPParameterType = iota
	DSPParameterInt
	DSPParameterBool
	DSPParameterData
)

var dspParameterTypeNames = []string{"Float", "Int", "Bool", "Data"}

func (t DSPParameterType) String() string {
	return enumString("DSPParameterType", dspParameterTypeNames, int32(t))
}

// DSPParameterDataType identifies well-known data parameters.
type DSPParameterDataType int32

const (
	DSPParameterDataUser              DSPParameterDataType = 0
	DSPParameterDataOverallGain       DSPParameterDataType = -1
	DSPParameterData3DAttributes      DSPParameterDataType = -2
	DSPParameterDataSidechain         DSPParameterDataType = -3
	DSPParameterDataFFT               DSPParameterDataType = -4
	DSPParameterData3DAttributesMulti DSPParameterDataType = -5
	DSPParameterDataAttenuationRange  DSPParameterDataType = -6
)

// Engine limits.
const (
	MaxChannelWidth     = 32
	MaxListeners        = 8
	ReverbMaxInstances  = 4
	MaxSystems          = 8
	PluginSDKVersion    = 110
	DefaultMaxChannels  = 512
	headerVersion       = 0x00020222
	driverNameMaxLength = 512
	nameMaxLength       = 256
)
