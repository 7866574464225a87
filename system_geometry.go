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
)

// CreateGeometry creates a geometry object for occlusion.
func (s System) CreateGeometry(maxPolygons, maxVertices int) (Geometry, error) {
	var raw uintptr
	err := check(lib.System_CreateGeometry(s.raw, int32(maxPolygons), int32(maxVertices), &raw))
	return Geometry{raw: raw}, err
}

// SetGeometrySettings sets the maximum world size for the geometry engine.
func (s System) SetGeometrySettings(maxWorldSize float32) error {
	return check(lib.System_SetGeometrySettings(s.raw, maxWorldSize))
}

// GeometrySettings returns the maximum world size for the geometry engine.
func (s System) GeometrySettings() (float32, error) {
	var size float32
	err := check(lib.System_GetGeometrySettings(s.raw, &size))
	return size, err
}

// LoadGeometry creates a geometry object from data produced by Geometry.Save.
func (s System) LoadGeometry(data []byte) (Geometry, error) {
	if len(data) == 0 {
		return Geometry{}, ErrInvalidParam
	}
	var raw uintptr
	err := check(lib.System_LoadGeometry(s.raw, unsafe.Pointer(&data[0]), int32(len(data)), &raw))
	return Geometry{raw: raw}, err
}

// GeometryOcclusion computes the direct and reverb occlusion between a
// listener and a source.
func (s System) GeometryOcclusion(listener, source Vector) (direct, reverb float32, err error) {
	err = check(lib.System_GetGeometryOcclusion(s.raw, ptrOf(&listener), ptrOf(&source), &direct, &reverb))
	return direct, reverb, err
}
