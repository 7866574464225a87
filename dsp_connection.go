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

// DSPConnection is an edge of the DSP graph.
type DSPConnection struct {
	raw uintptr
}

// Raw returns the native handle.
func (c DSPConnection) Raw() uintptr { return c.raw }

// Input returns the DSP feeding the connection.
func (c DSPConnection) Input() (DSP, error) {
	var raw uintptr
	err := check(lib.DSPConnection_GetInput(c.raw, &raw))
	return DSP{raw: raw}, err
}

// Output returns the DSP the connection feeds.
func (c DSPConnection) Output() (DSP, error) {
	var raw uintptr
	err := check(lib.DSPConnection_GetOutput(c.raw, &raw))
	return DSP{raw: raw}, err
}

// SetMix sets the volume of the connection.
func (c DSPConnection) SetMix(volume float32) error {
	return check(lib.DSPConnection_SetMix(c.raw, volume))
}

// Mix returns the volume of the connection.
func (c DSPConnection) Mix() (float32, error) {
	var v float32
	err := check(lib.DSPConnection_GetMix(c.raw, &v))
	return v, err
}

// SetMixMatrix sets the matrix mapping input channels (columns) to output
// channels (rows). A nil matrix resets it.
func (c DSPConnection) SetMixMatrix(matrix [][]float32) error {
	flat, out, in := flattenMatrix(matrix)
	return check(lib.DSPConnection_SetMixMatrix(c.raw, floatsPtr(flat), int32(out), int32(in), int32(in)))
}

// MixMatrix returns the mix matrix of the connection.
func (c DSPConnection) MixMatrix() ([][]float32, error) {
	var out, in int32
	if err := check(lib.DSPConnection_GetMixMatrix(c.raw, nil, &out, &in, 0)); err != nil {
		return nil, err
	}
	if out == 0 || in == 0 {
		return nil, nil
	}
	flat := make([]float32, out*in)
	if err := check(lib.DSPConnection_GetMixMatrix(c.raw, &flat[0], &out, &in, in)); err != nil {
		return nil, err
	}
	return unflattenMatrix(flat, int(out), int(in), int(in)), nil
}

// Type returns the kind of the connection.
func (c DSPConnection) Type() (DSPConnectionType, error) {
	var t int32
	err := check(lib.DSPConnection_GetType(c.raw, &t))
	return DSPConnectionType(t), err
}

// SetUserData stores an arbitrary value with the connection.
func (c DSPConnection) SetUserData(data uintptr) error {
	return check(lib.DSPConnection_SetUserData(c.raw, data))
}

// UserData returns the value stored with SetUserData.
func (c DSPConnection) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.DSPConnection_GetUserData(c.raw, &data))
	return data, err
}
