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

// DSPType is a built-in DSP effect.
type DSPType int32

const (
	DSPTypeUnknown DSPType = iota
	DSPTypeMixer
	DSPTypeOscillator
	DSPTypeLowpass
	DSPTypeITLowpass
	DSPTypeHighpass
	DSPTypeEcho
	DSPTypeFader
	DSPTypeFlange
	DSPTypeDistortion
	DSPTypeNormalize
	DSPTypeLimiter
	DSPTypeParamEQ
	DSPTypePitchShift
	DSPTypeChorus
	DSPTypeVSTPlugin
	DSPTypeWinampPlugin
	DSPTypeITEcho
	DSPTypeCompressor
	DSPTypeSFXReverb
	DSPTypeLowpassSimple
	DSPTypeDelay
	DSPTypeTremolo
	DSPTypeLADSPAPlugin
	DSPTypeSend
	DSPTypeReturn
	DSPTypeHighpassSimple
	DSPTypePan
	DSPTypeThreeEQ
	DSPTypeFFT
	DSPTypeLoudnessMeter
	DSPTypeEnvelopeFollower
	DSPTypeConvolutionReverb
	DSPTypeChannelMix
	DSPTypeTransceiver
	DSPTypeObjectPan
	DSPTypeMultibandEQ
)

var dspTypeNames = []string{
	"Unknown", "Mixer", "Oscillator", "Lowpass", "ITLowpass", "Highpass",
	"Echo", "Fader", "Flange", "Distortion", "Normalize", "Limiter",
	"ParamEQ", "PitchShift", "Chorus", "VSTPlugin", "WinampPlugin", "ITEcho",
	"Compressor", "SFXReverb", "LowpassSimple", "Delay", "Tremolo",
	"LADSPAPlugin", "Send", "Return", "HighpassSimple", "Pan", "ThreeEQ",
	"FFT", "LoudnessMeter", "EnvelopeFollower", "ConvolutionReverb",
	"ChannelMix", "Transceiver", "ObjectPan", "MultibandEQ",
}

func (t DSPType) String() string { return enumString("DSPType", dspTypeNames, int32(t)) }

// ParseDSPType parses a DSP type name such as "echo", ignoring case.
func ParseDSPType(s string) (DSPType, error) {
	for i, name := range dspTypeNames {
		if strings.EqualFold(s, name) {
			return DSPType(i), nil
		}
	}
	return 0, fmt.Errorf("fmod: unknown DSP type %q", s)
}

// Echo parameters.
const (
	EchoDelay = iota
	EchoFeedback
	EchoDryLevel
	EchoWetLevel
)

// Lowpass parameters.
const (
	LowpassCutoff = iota
	LowpassResonance
)

// Highpass parameters.
const (
	HighpassCutoff = iota
	HighpassResonance
)

// Chorus parameters.
const (
	ChorusMix = iota
	ChorusRate
	ChorusDepth
)

// Compressor parameters.
const (
	CompressorThreshold = iota
	CompressorRatio
	CompressorAttack
	CompressorRelease
	CompressorGainMakeup
	CompressorUseSidechain
	CompressorLinked
)

// ParamEQ parameters.
const (
	ParamEQCenter = iota
	ParamEQBandwidth
	ParamEQGain
)

// PitchShift parameters.
const (
	PitchShiftPitch = iota
	PitchShiftFFTSize
	PitchShiftOverlap
	PitchShiftMaxChannels
)

// SFXReverb parameters.
const (
	SFXReverbDecayTime = iota
	SFXReverbEarlyDelay
	SFXReverbLateDelay
	SFXReverbHFReference
	SFXReverbHFDecayRatio
	SFXReverbDiffusion
	SFXReverbDensity
	SFXReverbLowShelfFrequency
	SFXReverbLowShelfGain
	SFXReverbHighCut
	SFXReverbEarlyLateMix
	SFXReverbWetLevel
	SFXReverbDryLevel
)

// Fader parameters.
const (
	FaderGain = iota
	FaderOverallGain
)

// Oscillator parameters.
const (
	OscillatorType = iota
	OscillatorRate
)

// Oscillator waveforms for OscillatorType.
const (
	OscillatorSine = iota
	OscillatorSquare
	OscillatorSawUp
	OscillatorSawDown
	OscillatorTriangle
	OscillatorNoise
)

// Distortion parameters.
const (
	DistortionLevel = 0
)

// Flange parameters.
const (
	FlangeMix = iota
	FlangeDepth
	FlangeRate
)

// Tremolo parameters.
const (
	TremoloFrequency = iota
	TremoloDepth
	TremoloShape
	TremoloSkew
	TremoloDuty
	TremoloSquare
	TremoloPhase
	TremoloSpread
)

// Normalize parameters.
const (
	NormalizeFadeTime = iota
	NormalizeThreshold
	NormalizeMaxAmp
)

// Limiter parameters.
const (
	LimiterReleaseTime = iota
	LimiterCeiling
	LimiterMaximizerGain
	LimiterMode
)

// ThreeEQ parameters.
const (
	ThreeEQLowGain = iota
	ThreeEQMidGain
	ThreeEQHighGain
	ThreeEQLowCrossover
	ThreeEQHighCrossover
	ThreeEQCrossoverSlope
)

// MultibandEQ parameters of band A. Bands B to E follow at
// MultibandEQBand(n).
const (
	MultibandEQFilter = iota
	MultibandEQFrequency
	MultibandEQQ
	MultibandEQGain

	multibandEQParamsPerBand
)

// MultibandEQBands is the number of bands of the multiband EQ.
const MultibandEQBands = 5

// MultibandEQBand returns the index of param for band, counted from 0.
func MultibandEQBand(band, param int) int {
	return band*multibandEQParamsPerBand + param
}

// Pan parameters.
const (
	PanMode = iota
	Pan2DStereoPosition
	Pan2DDirection
	Pan2DExtent
	Pan2DRotation
	Pan2DLFELevel
	Pan2DStereoMode
	Pan2DStereoSeparation
	Pan2DStereoAxis
	PanEnabledSpeakers
	Pan3DPosition
	Pan3DRolloff
	Pan3DMinDistance
	Pan3DMaxDistance
)

// ChannelMix parameters. Per channel gains and outputs are at
// ChannelMixGain and ChannelMixOutput.
const (
	ChannelMixOutputGrouping = 0
)

// ChannelMixGain returns the index of the gain parameter of ch.
func ChannelMixGain(ch int) int { return 1 + ch }

// ChannelMixOutput returns the index of the output parameter of ch.
func ChannelMixOutput(ch int) int { return 1 + MaxChannelWidth + ch }

// Send parameters.
const (
	SendReturnID = iota
	SendLevel
)

// Return parameters.
const (
	ReturnID = iota
	ReturnInputSpeakerMode
)

// Delay parameters. Per channel delays are at indices 0 to 15.
const (
	DelayMaxChannels = 16
	DelayMaxDelay    = DelayMaxChannels
)

// Transceiver parameters.
const (
	TransceiverTransmit = iota
	TransceiverGain
	TransceiverChannel
	TransceiverTransmitSpeakerMode
)
