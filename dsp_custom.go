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
	"sync/atomic"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// DSPBuffer is one block handed to a DSPDescription.Read callback. In and
// Out are interleaved; In holds Length frames of InChannels samples and Out
// holds Length frames of OutChannels samples. Read may lower OutChannels.
type DSPBuffer struct {
	In          []float32
	Out         []float32
	Length      int
	InChannels  int
	OutChannels int
}

// DSPDescription defines a DSP implemented in Go.
type DSPDescription struct {
	Name             string
	Version          uint32
	NumInputBuffers  int
	NumOutputBuffers int

	// Read processes one block on the mixer thread. It must not block or
	// call back into the System.
	Read func(*DSPBuffer) error
	// Reset, if set, clears internal state. It is called by DSP.Reset and
	// when the DSP is reused.
	Reset func() error
}

// DSPDescriptionInfo describes a built-in DSP type.
type DSPDescriptionInfo struct {
	Name             string
	Version          uint32
	NumInputBuffers  int
	NumOutputBuffers int
	Parameters       []DSPParameterDesc
}

// nativeDSPDescription mirrors FMOD_DSP_DESCRIPTION.
type nativeDSPDescription struct {
	pluginSDKVersion  uint32
	name              [32]byte
	version           uint32
	numInputBuffers   int32
	numOutputBuffers  int32
	create            uintptr
	release           uintptr
	reset             uintptr
	read              uintptr
	process           uintptr
	setPosition       uintptr
	numParameters     int32
	paramDesc         uintptr
	setParameterFloat uintptr
	setParameterInt   uintptr
	setParameterBool  uintptr
	setParameterData  uintptr
	getParameterFloat uintptr
	getParameterInt   uintptr
	getParameterBool  uintptr
	getParameterData  uintptr
	shouldIProcess    uintptr
	userData          uintptr
	sysRegister       uintptr
	sysDeregister     uintptr
	sysMix            uintptr
}

// Offsets into FMOD_DSP_STATE and FMOD_DSP_STATE_FUNCTIONS.
const (
	dspStateFunctionsOffset    = 40
	dspFunctionsUserDataOffset = 88
)

type dspState struct {
	desc     DSPDescription
	userData atomic.Uintptr
}

var (
	dspStates registry[*dspState]
	// dspCookies maps DSP handles to the cookie in their description.
	dspCookies registry[uintptr]

	dspReadCallback    = lazyCallback{fn: dspReadTrampoline}
	dspResetCallback   = lazyCallback{fn: dspResetTrampoline}
	dspReleaseCallback = lazyCallback{fn: dspReleaseTrampoline}
)

// CreateDSP creates a DSP whose audio is produced by desc.Read. The DSP is
// inactive until added to a channel or played.
func (s System) CreateDSP(desc DSPDescription) (DSP, error) {
	if desc.Read == nil {
		log.Warnf("CreateDSP called without a read callback")
		return DSP{}, ErrInvalidParam
	}
	cookie := newCookie()
	dspStates.store(cookie, &dspState{desc: desc})

	nd := &nativeDSPDescription{
		pluginSDKVersion: PluginSDKVersion,
		version:          desc.Version,
		numInputBuffers:  int32(desc.NumInputBuffers),
		numOutputBuffers: int32(desc.NumOutputBuffers),
		read:             dspReadCallback.get(),
		release:          dspReleaseCallback.get(),
		userData:         cookie,
	}
	copy(nd.name[:len(nd.name)-1], desc.Name)
	if desc.Reset != nil {
		nd.reset = dspResetCallback.get()
	}

	var raw uintptr
	err := check(lib.System_CreateDSP(s.raw, unsafe.Pointer(nd), &raw))
	runtime.KeepAlive(nd)
	if err != nil {
		dspStates.delete(cookie)
		return DSP{}, err
	}
	dspCookies.store(raw, cookie)
	return DSP{raw: raw}, nil
}

// DSPInfoByType describes a built-in DSP type without creating it.
func (s System) DSPInfoByType(typ DSPType) (DSPDescriptionInfo, error) {
	var p unsafe.Pointer
	if err := check(lib.System_GetDSPInfoByType(s.raw, int32(typ), &p)); err != nil {
		return DSPDescriptionInfo{}, err
	}
	if p == nil {
		return DSPDescriptionInfo{}, ErrInternal
	}
	nd := (*nativeDSPDescription)(p)
	info := DSPDescriptionInfo{
		Name:             native.BytesToString(nd.name[:]),
		Version:          nd.version,
		NumInputBuffers:  int(nd.numInputBuffers),
		NumOutputBuffers: int(nd.numOutputBuffers),
	}
	if nd.numParameters > 0 && nd.paramDesc != 0 {
		descs := unsafe.Slice((*uintptr)(native.Pointer(nd.paramDesc)), nd.numParameters)
		info.Parameters = make([]DSPParameterDesc, 0, len(descs))
		for _, d := range descs {
			if d != 0 {
				info.Parameters = append(info.Parameters, decodeParameterDesc(native.Pointer(d)))
			}
		}
	}
	return info, nil
}

// forgetDSPState drops the Go side of a DSP created with CreateDSP.
func forgetDSPState(dsp uintptr) {
	if cookie, ok := dspCookies.load(dsp); ok {
		dspCookies.delete(dsp)
		dspStates.delete(cookie)
	}
}

// dspCookie reads the description userdata through the state's function
// table.
func dspCookie(state uintptr) uintptr {
	if state == 0 {
		return 0
	}
	functions := *(*uintptr)(native.Pointer(state + dspStateFunctionsOffset))
	if functions == 0 {
		return 0
	}
	getUserData := *(*uintptr)(native.Pointer(functions + dspFunctionsUserDataOffset))
	if getUserData == 0 {
		return 0
	}
	var cookie uintptr
	if Error(int32(native.Call(getUserData, state, uintptr(unsafe.Pointer(&cookie))))) != 0 {
		return 0
	}
	return cookie
}

func lookupDSPState(state uintptr) (*dspState, bool) {
	return dspStates.load(dspCookie(state))
}

func dspReadTrampoline(state, in, out, length, inChannels, outChannels uintptr) uintptr {
	return catchPanic("dsp read", func() error {
		st, ok := lookupDSPState(state)
		if !ok {
			return ErrInvalidHandle
		}
		outCh := (*int32)(native.Pointer(outChannels))
		b := &DSPBuffer{
			Length:      int(uint32(length)),
			InChannels:  int(int32(inChannels)),
			OutChannels: int(*outCh),
		}
		if in != 0 && b.InChannels > 0 {
			b.In = unsafe.Slice((*float32)(native.Pointer(in)), b.Length*b.InChannels)
		}
		if out != 0 && b.OutChannels > 0 {
			b.Out = unsafe.Slice((*float32)(native.Pointer(out)), b.Length*b.OutChannels)
		}
		limit := b.OutChannels
		err := st.desc.Read(b)
		if b.OutChannels >= 0 && b.OutChannels <= limit {
			*outCh = int32(b.OutChannels)
		}
		return err
	})
}

func dspResetTrampoline(state uintptr) uintptr {
	return catchPanic("dsp reset", func() error {
		st, ok := lookupDSPState(state)
		if !ok || st.desc.Reset == nil {
			return nil
		}
		return st.desc.Reset()
	})
}

func dspReleaseTrampoline(state uintptr) uintptr {
	return catchPanic("dsp release", func() error {
		dspStates.delete(dspCookie(state))
		return nil
	})
}
