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
	"unsafe"
)

// Vector is a 3D vector in engine space.
type Vector struct {
	X, Y, Z float32
}

// Attributes3D are the 3D attributes of an object.
type Attributes3D struct {
	Position Vector
	Velocity Vector
	Forward  Vector
	Up       Vector
}

// GUID is a globally unique identifier, used for output and record drivers.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// CPUUsage is the engine's CPU usage, in percent of one core, per subsystem.
type CPUUsage struct {
	DSP          float32
	Stream       float32
	Geometry     float32
	Update       float32
	Convolution1 float32
	Convolution2 float32
}

// AdvancedSettings tune engine internals. Zero fields keep their defaults.
//
// The struct has the native memory layout. ASIO channel and speaker lists are
// not exposed.
type AdvancedSettings struct {
	cbSize                   int32
	MaxMPEGCodecs            int32
	MaxADPCMCodecs           int32
	MaxXMACodecs             int32
	MaxVorbisCodecs          int32
	MaxAT9Codecs             int32
	MaxFADPCMCodecs          int32
	MaxPCMCodecs             int32
	ASIONumChannels          int32
	asioChannelList          uintptr
	asioSpeakerList          uintptr
	Vol0VirtualVol           float32
	DefaultDecodeBufferSize  uint32
	ProfilePort              uint16
	GeometryMaxFadeTime      uint32
	DistanceFilterCenterFreq float32
	Reverb3DInstance         int32
	DSPBufferPoolSize        int32
	ResamplerMethod          Resampler
	RandomSeed               uint32
	MaxConvolutionThreads    int32
	MaxOpusCodecs            int32
}

// DSPMeteringInfo holds peak and RMS levels measured on a DSP.
type DSPMeteringInfo struct {
	NumSamples  int32
	PeakLevel   [MaxChannelWidth]float32
	RMSLevel    [MaxChannelWidth]float32
	NumChannels int16
}

// ErrorCallbackInfo describes a failed API call reported through a
// SystemCallbackError notification.
type ErrorCallbackInfo struct {
	Result         error
	InstanceType   ErrorCallbackInstance
	Instance       uintptr
	FunctionName   string
	FunctionParams string
}

type errorCallbackInfo struct {
	result         int32
	instanceType   int32
	instance       uintptr
	functionName   uintptr
	functionParams uintptr
}

func boolToC(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func ptrOf[T any](v *T) unsafe.Pointer {
	return unsafe.Pointer(v)
}

// floatsPtr returns a pointer to the first element of s, or nil.
func floatsPtr(s []float32) *float32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

const sizeofAdvancedSettings = unsafe.Sizeof(AdvancedSettings{})
