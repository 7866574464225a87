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

// DSPParameterFloatMapping is how a float parameter is laid out on a UI
// control.
type DSPParameterFloatMapping int32

const (
	DSPParameterMappingLinear DSPParameterFloatMapping = iota
	DSPParameterMappingAuto
	DSPParameterMappingPiecewiseLinear
)

// DSPParameterDesc describes a DSP parameter. The range fields that apply
// depend on Type.
type DSPParameterDesc struct {
	Type        DSPParameterType
	Name        string
	Label       string
	Description string

	// Float parameters.
	FloatMin     float32
	FloatMax     float32
	FloatDefault float32
	Mapping      DSPParameterFloatMapping
	// MappingPoints holds parameter value and UI position pairs for
	// DSPParameterMappingPiecewiseLinear.
	MappingPoints [][2]float32

	// Int parameters.
	IntMin         int
	IntMax         int
	IntDefault     int
	GoesToInfinity bool

	// Bool parameters.
	BoolDefault bool

	// ValueNames names each int value from IntMin to IntMax, or the false
	// and true values of a bool.
	ValueNames []string

	// Data parameters.
	DataType DSPParameterDataType
}

// nativeParameterDesc mirrors FMOD_DSP_PARAMETER_DESC. The union is decoded
// by decodeParameterDesc.
type nativeParameterDesc struct {
	typ         int32
	name        [16]byte
	label       [16]byte
	description uintptr
	union       [5]uint64
}

type nativeFloatDesc struct {
	min, max, def float32
	mapping       int32
	numPoints     int32
	values        uintptr
	positions     uintptr
}

type nativeIntDesc struct {
	min, max, def int32
	goesToInf     int32
	valueNames    uintptr
}

type nativeBoolDesc struct {
	def        int32
	valueNames uintptr
}

func decodeParameterDesc(p unsafe.Pointer) DSPParameterDesc {
	nd := (*nativeParameterDesc)(p)
	d := DSPParameterDesc{
		Type:        DSPParameterType(nd.typ),
		Name:        native.BytesToString(nd.name[:]),
		Label:       native.BytesToString(nd.label[:]),
		Description: native.GoString(nd.description),
	}
	u := unsafe.Pointer(&nd.union)
	switch d.Type {
	case DSPParameterFloat:
		f := (*nativeFloatDesc)(u)
		d.FloatMin, d.FloatMax, d.FloatDefault = f.min, f.max, f.def
		d.Mapping = DSPParameterFloatMapping(f.mapping)
		if d.Mapping == DSPParameterMappingPiecewiseLinear && f.numPoints > 0 && f.values != 0 && f.positions != 0 {
			values := unsafe.Slice((*float32)(native.Pointer(f.values)), f.numPoints)
			positions := unsafe.Slice((*float32)(native.Pointer(f.positions)), f.numPoints)
			d.MappingPoints = make([][2]float32, f.numPoints)
			for i := range d.MappingPoints {
				d.MappingPoints[i] = [2]float32{values[i], positions[i]}
			}
		}
	case DSPParameterInt:
		i := (*nativeIntDesc)(u)
		d.IntMin, d.IntMax, d.IntDefault = int(i.min), int(i.max), int(i.def)
		d.GoesToInfinity = i.goesToInf != 0
		if n := i.max - i.min + 1; n > 0 {
			d.ValueNames = stringArray(i.valueNames, int(n))
		}
	case DSPParameterBool:
		b := (*nativeBoolDesc)(u)
		d.BoolDefault = b.def != 0
		d.ValueNames = stringArray(b.valueNames, 2)
	case DSPParameterData:
		d.DataType = DSPParameterDataType(*(*int32)(u))
	}
	return d
}

// stringArray copies n C strings from a char** array.
func stringArray(p uintptr, n int) []string {
	if p == 0 {
		return nil
	}
	ptrs := unsafe.Slice((*uintptr)(native.Pointer(p)), n)
	s := make([]string, n)
	for i, q := range ptrs {
		s[i] = native.GoString(q)
	}
	return s
}
