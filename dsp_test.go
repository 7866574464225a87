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
	"testing"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

func paramName(s string) (b [16]byte) {
	copy(b[:], s)
	return b
}

func TestDecodeFloatParameter(t *testing.T) {
	values := []float32{0, 100, 1000}
	positions := []float32{0, 0.5, 1}
	pinned = append(pinned, values, positions)

	nd, addr := alloc[nativeParameterDesc]()
	nd.typ = int32(DSPParameterFloat)
	nd.name = paramName("Cutoff")
	nd.label = paramName("Hz")
	nd.description = cstr("Lowpass cutoff frequency.")
	*(*nativeFloatDesc)(unsafe.Pointer(&nd.union)) = nativeFloatDesc{
		min: 10, max: 22000, def: 5000,
		mapping:   int32(DSPParameterMappingPiecewiseLinear),
		numPoints: 3,
		values:    uintptr(unsafe.Pointer(&values[0])),
		positions: uintptr(unsafe.Pointer(&positions[0])),
	}

	d := decodeParameterDesc(native.Pointer(addr))
	if d.Type != DSPParameterFloat || d.Name != "Cutoff" || d.Label != "Hz" || d.Description != "Lowpass cutoff frequency." {
		t.Errorf("header = %+v", d)
	}
	if d.FloatMin != 10 || d.FloatMax != 22000 || d.FloatDefault != 5000 {
		t.Errorf("range = %v..%v default %v", d.FloatMin, d.FloatMax, d.FloatDefault)
	}
	if len(d.MappingPoints) != 3 || d.MappingPoints[1] != [2]float32{100, 0.5} {
		t.Errorf("mapping points = %v", d.MappingPoints)
	}
}

func TestDecodeIntParameter(t *testing.T) {
	names := []uintptr{cstr("Sine"), cstr("Square"), cstr("Saw")}
	pinned = append(pinned, names)

	nd, addr := alloc[nativeParameterDesc]()
	nd.typ = int32(DSPParameterInt)
	nd.name = paramName("Type")
	*(*nativeIntDesc)(unsafe.Pointer(&nd.union)) = nativeIntDesc{
		min: 0, max: 2, def: 1,
		valueNames: uintptr(unsafe.Pointer(&names[0])),
	}

	d := decodeParameterDesc(native.Pointer(addr))
	if d.IntMin != 0 || d.IntMax != 2 || d.IntDefault != 1 || d.GoesToInfinity {
		t.Errorf("int desc = %+v", d)
	}
	if len(d.ValueNames) != 3 || d.ValueNames[2] != "Saw" {
		t.Errorf("value names = %q", d.ValueNames)
	}
}

func TestDecodeBoolAndDataParameters(t *testing.T) {
	nd, addr := alloc[nativeParameterDesc]()
	nd.typ = int32(DSPParameterBool)
	*(*nativeBoolDesc)(unsafe.Pointer(&nd.union)) = nativeBoolDesc{def: 1}
	d := decodeParameterDesc(native.Pointer(addr))
	if !d.BoolDefault || d.ValueNames != nil {
		t.Errorf("bool desc = %+v", d)
	}

	nd.typ = int32(DSPParameterData)
	nd.union = [5]uint64{}
	*(*int32)(unsafe.Pointer(&nd.union)) = int32(DSPParameterDataFFT)
	if d := decodeParameterDesc(native.Pointer(addr)); d.DataType != DSPParameterDataFFT {
		t.Errorf("data type = %d", d.DataType)
	}
}

func TestDSPInfoByType(t *testing.T) {
	pd, pdAddr := alloc[nativeParameterDesc]()
	pd.typ = int32(DSPParameterFloat)
	pd.name = paramName("Delay")
	descs := []uintptr{pdAddr, 0}
	pinned = append(pinned, descs)

	nd, _ := alloc[nativeDSPDescription]()
	copy(nd.name[:], "FMOD Echo")
	nd.version = 0x00010000
	nd.numInputBuffers = 1
	nd.numOutputBuffers = 1
	nd.numParameters = int32(len(descs))
	nd.paramDesc = uintptr(unsafe.Pointer(&descs[0]))

	withFakeLibrary(t, &native.Lib{
		System_GetDSPInfoByType: func(system uintptr, typ int32, description *unsafe.Pointer) int32 {
			if DSPType(typ) != DSPTypeEcho {
				return int32(ErrDSPType)
			}
			*description = unsafe.Pointer(nd)
			return 0
		},
	})
	info, err := System{raw: 1}.DSPInfoByType(DSPTypeEcho)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "FMOD Echo" || info.Version != 0x00010000 || info.NumInputBuffers != 1 {
		t.Errorf("info = %+v", info)
	}
	// Null entries are skipped.
	if len(info.Parameters) != 1 || info.Parameters[0].Name != "Delay" {
		t.Errorf("parameters = %+v", info.Parameters)
	}
	if _, err := (System{raw: 1}).DSPInfoByType(DSPTypeFFT); !errors.Is(err, ErrDSPType) {
		t.Errorf("unknown type = %v", err)
	}
}

func TestCreateDSPRequiresRead(t *testing.T) {
	withFakeLibrary(t, &native.Lib{})
	n := dspStates.len()
	if _, err := (System{raw: 1}).CreateDSP(DSPDescription{Name: "silent"}); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("CreateDSP without Read = %v, want ErrInvalidParam", err)
	}
	if dspStates.len() != n {
		t.Error("state leaked for a rejected description")
	}
}

func TestDSPReleaseForgetsState(t *testing.T) {
	cookie := newCookie()
	st := &dspState{desc: DSPDescription{Read: func(*DSPBuffer) error { return nil }}}
	dspStates.store(cookie, st)
	dspCookies.store(0x70, cookie)
	withFakeLibrary(t, &native.Lib{
		DSP_GetUserData: func(dsp uintptr, userData *uintptr) int32 {
			*userData = cookie
			return 0
		},
		DSP_SetUserData: func(dsp uintptr, userData uintptr) int32 {
			t.Error("cookie overwritten")
			return 0
		},
		DSP_Release: func(dsp uintptr) int32 { return 0 },
	})
	d := DSP{raw: 0x70}
	if err := d.SetUserData(7); err != nil {
		t.Fatal(err)
	}
	if v, err := d.UserData(); err != nil || v != 7 {
		t.Errorf("UserData() = %d, %v", v, err)
	}
	if err := d.Release(); err != nil {
		t.Fatal(err)
	}
	if _, ok := dspStates.load(cookie); ok {
		t.Error("state kept after Release")
	}
	if _, ok := dspCookies.load(0x70); ok {
		t.Error("cookie mapping kept after Release")
	}
}

func TestDSPCookieWithoutFunctions(t *testing.T) {
	if c := dspCookie(0); c != 0 {
		t.Errorf("dspCookie(0) = %d", c)
	}
	// A state whose function table is null yields no cookie.
	_, state := alloc[[8]uintptr]()
	if c := dspCookie(state); c != 0 {
		t.Errorf("dspCookie(empty state) = %d", c)
	}
	if r := dspReadTrampoline(state, 0, 0, 0, 0, 0); r != uintptr(ErrInvalidHandle) {
		t.Errorf("read with unknown state = %v, want ErrInvalidHandle", Error(r))
	}
	if r := dspResetTrampoline(state); r != 0 {
		t.Errorf("reset with unknown state = %v", Error(r))
	}
}

func TestMultibandEQBand(t *testing.T) {
	if got := MultibandEQBand(0, MultibandEQFilter); got != 0 {
		t.Errorf("band A filter = %d", got)
	}
	if got := MultibandEQBand(4, MultibandEQGain); got != 4*4+3 {
		t.Errorf("band E gain = %d", got)
	}
}
