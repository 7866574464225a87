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

// Geometry is a set of polygons occluding sound between sources and the
// listener.
type Geometry struct {
	raw uintptr
}

// Raw returns the native handle.
func (g Geometry) Raw() uintptr { return g.raw }

// PolygonAttributes are the occlusion factors of a polygon.
type PolygonAttributes struct {
	DirectOcclusion float32
	ReverbOcclusion float32
	DoubleSided     bool
}

// Release frees the geometry.
func (g Geometry) Release() error {
	return check(lib.Geometry_Release(g.raw))
}

// AddPolygon adds a convex planar polygon with at least three vertices and
// returns its index.
func (g Geometry) AddPolygon(attrs PolygonAttributes, vertices []Vector) (int, error) {
	if len(vertices) < 3 {
		return 0, ErrInvalidParam
	}
	var index int32
	err := check(lib.Geometry_AddPolygon(g.raw, attrs.DirectOcclusion, attrs.ReverbOcclusion, boolToC(attrs.DoubleSided),
		int32(len(vertices)), unsafe.Pointer(&vertices[0]), &index))
	return int(index), err
}

// NumPolygons returns the number of polygons.
func (g Geometry) NumPolygons() (int, error) {
	var n int32
	err := check(lib.Geometry_GetNumPolygons(g.raw, &n))
	return int(n), err
}

// MaxPolygons returns the capacity given at creation.
func (g Geometry) MaxPolygons() (polygons, vertices int, err error) {
	var p, v int32
	err = check(lib.Geometry_GetMaxPolygons(g.raw, &p, &v))
	return int(p), int(v), err
}

// PolygonNumVertices returns the number of vertices of polygon index.
func (g Geometry) PolygonNumVertices(index int) (int, error) {
	var n int32
	err := check(lib.Geometry_GetPolygonNumVertices(g.raw, int32(index), &n))
	return int(n), err
}

// SetPolygonVertex moves a vertex of a polygon.
func (g Geometry) SetPolygonVertex(index, vertex int, v Vector) error {
	return check(lib.Geometry_SetPolygonVertex(g.raw, int32(index), int32(vertex), ptrOf(&v)))
}

// PolygonVertex returns a vertex of a polygon.
func (g Geometry) PolygonVertex(index, vertex int) (Vector, error) {
	var v Vector
	err := check(lib.Geometry_GetPolygonVertex(g.raw, int32(index), int32(vertex), ptrOf(&v)))
	return v, err
}

// SetPolygonAttributes sets the occlusion of a polygon.
func (g Geometry) SetPolygonAttributes(index int, attrs PolygonAttributes) error {
	return check(lib.Geometry_SetPolygonAttributes(g.raw, int32(index), attrs.DirectOcclusion, attrs.ReverbOcclusion, boolToC(attrs.DoubleSided)))
}

// PolygonAttributes returns the occlusion of a polygon.
func (g Geometry) PolygonAttributes(index int) (PolygonAttributes, error) {
	var (
		attrs  PolygonAttributes
		double int32
	)
	err := check(lib.Geometry_GetPolygonAttributes(g.raw, int32(index), &attrs.DirectOcclusion, &attrs.ReverbOcclusion, &double))
	attrs.DoubleSided = double != 0
	return attrs, err
}

// SetActive enables or disables occlusion by the geometry.
func (g Geometry) SetActive(active bool) error {
	return check(lib.Geometry_SetActive(g.raw, boolToC(active)))
}

// Active reports whether the geometry occludes.
func (g Geometry) Active() (bool, error) {
	var a int32
	err := check(lib.Geometry_GetActive(g.raw, &a))
	return a != 0, err
}

// SetRotation orients the geometry with forward and up vectors.
func (g Geometry) SetRotation(forward, up Vector) error {
	return check(lib.Geometry_SetRotation(g.raw, ptrOf(&forward), ptrOf(&up)))
}

// Rotation returns the forward and up vectors.
func (g Geometry) Rotation() (forward, up Vector, err error) {
	err = check(lib.Geometry_GetRotation(g.raw, ptrOf(&forward), ptrOf(&up)))
	return forward, up, err
}

// SetPosition moves the geometry.
func (g Geometry) SetPosition(pos Vector) error {
	return check(lib.Geometry_SetPosition(g.raw, ptrOf(&pos)))
}

// Position returns the position of the geometry.
func (g Geometry) Position() (Vector, error) {
	var v Vector
	err := check(lib.Geometry_GetPosition(g.raw, ptrOf(&v)))
	return v, err
}

// SetScale scales the geometry on each axis.
func (g Geometry) SetScale(scale Vector) error {
	return check(lib.Geometry_SetScale(g.raw, ptrOf(&scale)))
}

// Scale returns the scale of the geometry.
func (g Geometry) Scale() (Vector, error) {
	var v Vector
	err := check(lib.Geometry_GetScale(g.raw, ptrOf(&v)))
	return v, err
}

// Save serializes the geometry for System.LoadGeometry.
func (g Geometry) Save() ([]byte, error) {
	var n int32
	if err := check(lib.Geometry_Save(g.raw, nil, &n)); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	data := make([]byte, n)
	if err := check(lib.Geometry_Save(g.raw, unsafe.Pointer(&data[0]), &n)); err != nil {
		return nil, err
	}
	return data[:n], nil
}

// SetUserData stores an arbitrary value with the geometry.
func (g Geometry) SetUserData(data uintptr) error {
	return check(lib.Geometry_SetUserData(g.raw, data))
}

// UserData returns the value stored with SetUserData.
func (g Geometry) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.Geometry_GetUserData(g.raw, &data))
	return data, err
}
