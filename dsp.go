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
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// DSP is a unit of the mixing graph: a built-in effect, a plugin or a Go
// read callback created with System.CreateDSP.
type DSP struct {
	raw uintptr
}

// Raw returns the native handle.
func (d DSP) Raw() uintptr { return d.raw }

// ChannelFormat is the channel layout a DSP processes.
type ChannelFormat struct {
	Mask        ChannelMask
	Channels    int
	SpeakerMode SpeakerMode
}

// DSPInfo identifies a DSP implementation.
type DSPInfo struct {
	Name         string
	Version      uint32
	Channels     int
	ConfigWidth  int
	ConfigHeight int
}

// dspValueStringLength is the size of the buffer receiving a parameter's
// display string.
const dspValueStringLength = 32

// Release frees the DSP. It must be removed from any channel first.
func (d DSP) Release() error {
	if err := check(lib.DSP_Release(d.raw)); err != nil {
		return err
	}
	forgetDSPState(d.raw)
	return nil
}

// SystemObject returns the System that created the DSP.
func (d DSP) SystemObject() (System, error) {
	var raw uintptr
	err := check(lib.DSP_GetSystemObject(d.raw, &raw))
	return System{raw: raw}, err
}

// AddInput connects input to d with a connection of type typ.
func (d DSP) AddInput(input DSP, typ DSPConnectionType) (DSPConnection, error) {
	var conn uintptr
	err := check(lib.DSP_AddInput(d.raw, input.raw, &conn, int32(typ)))
	return DSPConnection{raw: conn}, err
}

// DisconnectFrom removes the connection between d and target. A zero
// connection removes every connection to target.
func (d DSP) DisconnectFrom(target DSP, conn DSPConnection) error {
	return check(lib.DSP_DisconnectFrom(d.raw, target.raw, conn.raw))
}

// DisconnectAll removes the selected inputs and outputs of d.
func (d DSP) DisconnectAll(inputs, outputs bool) error {
	return check(lib.DSP_DisconnectAll(d.raw, boolToC(inputs), boolToC(outputs)))
}

// NumInputs returns the number of inputs.
func (d DSP) NumInputs() (int, error) {
	var n int32
	err := check(lib.DSP_GetNumInputs(d.raw, &n))
	return int(n), err
}

// NumOutputs returns the number of outputs.
func (d DSP) NumOutputs() (int, error) {
	var n int32
	err := check(lib.DSP_GetNumOutputs(d.raw, &n))
	return int(n), err
}

// Input returns the input at index and its connection.
func (d DSP) Input(index int) (DSP, DSPConnection, error) {
	var in, conn uintptr
	err := check(lib.DSP_GetInput(d.raw, int32(index), &in, &conn))
	return DSP{raw: in}, DSPConnection{raw: conn}, err
}

// Output returns the output at index and its connection.
func (d DSP) Output(index int) (DSP, DSPConnection, error) {
	var out, conn uintptr
	err := check(lib.DSP_GetOutput(d.raw, int32(index), &out, &conn))
	return DSP{raw: out}, DSPConnection{raw: conn}, err
}

// SetActive enables or disables processing. A DSP is inactive when created
// with System.CreateDSPByType until added to a channel.
func (d DSP) SetActive(active bool) error {
	return check(lib.DSP_SetActive(d.raw, boolToC(active)))
}

// Active reports whether the DSP is processing.
func (d DSP) Active() (bool, error) {
	var a int32
	err := check(lib.DSP_GetActive(d.raw, &a))
	return a != 0, err
}

// SetBypass passes the input through unprocessed while keeping the DSP in
// the graph.
func (d DSP) SetBypass(bypass bool) error {
	return check(lib.DSP_SetBypass(d.raw, boolToC(bypass)))
}

// Bypass reports whether the DSP is bypassed.
func (d DSP) Bypass() (bool, error) {
	var b int32
	err := check(lib.DSP_GetBypass(d.raw, &b))
	return b != 0, err
}

// SetWetDryMix sets the pre-wet, post-wet and dry levels.
func (d DSP) SetWetDryMix(preWet, postWet, dry float32) error {
	return check(lib.DSP_SetWetDryMix(d.raw, preWet, postWet, dry))
}

// WetDryMix returns the pre-wet, post-wet and dry levels.
func (d DSP) WetDryMix() (preWet, postWet, dry float32, err error) {
	err = check(lib.DSP_GetWetDryMix(d.raw, &preWet, &postWet, &dry))
	return preWet, postWet, dry, err
}

// SetChannelFormat sets the channel layout the DSP processes.
func (d DSP) SetChannelFormat(f ChannelFormat) error {
	return check(lib.DSP_SetChannelFormat(d.raw, uint32(f.Mask), int32(f.Channels), int32(f.SpeakerMode)))
}

// ChannelFormat returns the channel layout the DSP processes.
func (d DSP) ChannelFormat() (ChannelFormat, error) {
	var (
		mask    uint32
		n, mode int32
	)
	err := check(lib.DSP_GetChannelFormat(d.raw, &mask, &n, &mode))
	return ChannelFormat{Mask: ChannelMask(mask), Channels: int(n), SpeakerMode: SpeakerMode(mode)}, err
}

// OutputChannelFormat returns the layout the DSP produces for input in.
func (d DSP) OutputChannelFormat(in ChannelFormat) (ChannelFormat, error) {
	var (
		mask    uint32
		n, mode int32
	)
	err := check(lib.DSP_GetOutputChannelFormat(d.raw, uint32(in.Mask), int32(in.Channels), int32(in.SpeakerMode), &mask, &n, &mode))
	return ChannelFormat{Mask: ChannelMask(mask), Channels: int(n), SpeakerMode: SpeakerMode(mode)}, err
}

// Reset clears the internal state of the DSP, such as echo buffers.
func (d DSP) Reset() error {
	return check(lib.DSP_Reset(d.raw))
}

// Info returns the name, version and configuration of the DSP.
func (d DSP) Info() (DSPInfo, error) {
	var (
		name           [32]byte
		version        uint32
		channels, w, h int32
	)
	if err := check(lib.DSP_GetInfo(d.raw, &name[0], &version, &channels, &w, &h)); err != nil {
		return DSPInfo{}, err
	}
	return DSPInfo{
		Name:         native.BytesToString(name[:]),
		Version:      version,
		Channels:     int(channels),
		ConfigWidth:  int(w),
		ConfigHeight: int(h),
	}, nil
}

// Type returns the built-in type of the DSP, or DSPTypeUnknown for plugins
// and Go DSPs.
func (d DSP) Type() (DSPType, error) {
	var t int32
	err := check(lib.DSP_GetType(d.raw, &t))
	return DSPType(t), err
}

// Idle reports whether the DSP has no signal to process.
func (d DSP) Idle() (bool, error) {
	var i int32
	err := check(lib.DSP_GetIdle(d.raw, &i))
	return i != 0, err
}

// SetMeteringEnabled enables level metering on the input and output.
func (d DSP) SetMeteringEnabled(input, output bool) error {
	return check(lib.DSP_SetMeteringEnabled(d.raw, boolToC(input), boolToC(output)))
}

// MeteringEnabled reports whether input and output metering are enabled.
func (d DSP) MeteringEnabled() (input, output bool, err error) {
	var in, out int32
	err = check(lib.DSP_GetMeteringEnabled(d.raw, &in, &out))
	return in != 0, out != 0, err
}

// MeteringInfo returns the input and output levels of the last mix.
func (d DSP) MeteringInfo() (input, output DSPMeteringInfo, err error) {
	err = check(lib.DSP_GetMeteringInfo(d.raw, ptrOf(&input), ptrOf(&output)))
	return input, output, err
}

// CPUUsage returns the processing time of the DSP in microseconds, excluding
// and including its inputs.
func (d DSP) CPUUsage() (exclusive, inclusive uint32, err error) {
	err = check(lib.DSP_GetCPUUsage(d.raw, &exclusive, &inclusive))
	return exclusive, inclusive, err
}

// SetUserData stores an arbitrary value with the DSP.
func (d DSP) SetUserData(data uintptr) error {
	if st, ok := d.state(); ok {
		st.userData.Store(data)
		return nil
	}
	return check(lib.DSP_SetUserData(d.raw, data))
}

// UserData returns the value stored with SetUserData.
func (d DSP) UserData() (uintptr, error) {
	if st, ok := d.state(); ok {
		return st.userData.Load(), nil
	}
	var data uintptr
	err := check(lib.DSP_GetUserData(d.raw, &data))
	return data, err
}

// state returns the Go side of a DSP created with System.CreateDSP, whose
// native userdata is reserved.
func (d DSP) state() (*dspState, bool) {
	cookie, ok := dspCookies.load(d.raw)
	if !ok {
		return nil, false
	}
	return dspStates.load(cookie)
}

// NumParameters returns the number of parameters of the DSP.
func (d DSP) NumParameters() (int, error) {
	var n int32
	err := check(lib.DSP_GetNumParameters(d.raw, &n))
	return int(n), err
}

// SetParameterFloat sets a float parameter.
func (d DSP) SetParameterFloat(index int, value float32) error {
	return check(lib.DSP_SetParameterFloat(d.raw, int32(index), value))
}

// SetParameterInt sets an int parameter.
func (d DSP) SetParameterInt(index int, value int) error {
	return check(lib.DSP_SetParameterInt(d.raw, int32(index), int32(value)))
}

// SetParameterBool sets a bool parameter.
func (d DSP) SetParameterBool(index int, value bool) error {
	return check(lib.DSP_SetParameterBool(d.raw, int32(index), boolToC(value)))
}

// SetParameterData sets a data parameter. The engine copies data.
func (d DSP) SetParameterData(index int, data []byte) error {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	return check(lib.DSP_SetParameterData(d.raw, int32(index), p, uint32(len(data))))
}

// ParameterFloat returns a float parameter and its display string.
func (d DSP) ParameterFloat(index int) (float32, string, error) {
	var (
		v   float32
		str [dspValueStringLength]byte
	)
	err := check(lib.DSP_GetParameterFloat(d.raw, int32(index), &v, &str[0], int32(len(str))))
	return v, native.BytesToString(str[:]), err
}

// ParameterInt returns an int parameter and its display string.
func (d DSP) ParameterInt(index int) (int, string, error) {
	var (
		v   int32
		str [dspValueStringLength]byte
	)
	err := check(lib.DSP_GetParameterInt(d.raw, int32(index), &v, &str[0], int32(len(str))))
	return int(v), native.BytesToString(str[:]), err
}

// ParameterBool returns a bool parameter and its display string.
func (d DSP) ParameterBool(index int) (bool, string, error) {
	var (
		v   int32
		str [dspValueStringLength]byte
	)
	err := check(lib.DSP_GetParameterBool(d.raw, int32(index), &v, &str[0], int32(len(str))))
	return v != 0, native.BytesToString(str[:]), err
}

// ParameterData returns a copy of a data parameter and its display string.
func (d DSP) ParameterData(index int) ([]byte, string, error) {
	var (
		p   unsafe.Pointer
		n   uint32
		str [dspValueStringLength]byte
	)
	if err := check(lib.DSP_GetParameterData(d.raw, int32(index), &p, &n, &str[0], int32(len(str)))); err != nil {
		return nil, "", err
	}
	var data []byte
	if p != nil && n > 0 {
		data = append([]byte(nil), unsafe.Slice((*byte)(p), n)...)
	}
	return data, native.BytesToString(str[:]), nil
}

// DataParameterIndex returns the index of the first data parameter of type
// typ.
func (d DSP) DataParameterIndex(typ DSPParameterDataType) (int, error) {
	var i int32
	err := check(lib.DSP_GetDataParameterIndex(d.raw, int32(typ), &i))
	return int(i), err
}

// ParameterInfo describes the parameter at index.
func (d DSP) ParameterInfo(index int) (DSPParameterDesc, error) {
	var p unsafe.Pointer
	if err := check(lib.DSP_GetParameterInfo(d.raw, int32(index), &p)); err != nil {
		return DSPParameterDesc{}, err
	}
	if p == nil {
		return DSPParameterDesc{}, ErrInternal
	}
	return decodeParameterDesc(p), nil
}
