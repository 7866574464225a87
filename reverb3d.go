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

// Reverb3D is a reverb zone. Listeners inside the sphere between its min and
// max distance hear its properties blended with other zones.
type Reverb3D struct {
	raw uintptr
}

// Raw returns the native handle.
func (r Reverb3D) Raw() uintptr { return r.raw }

// Release frees the reverb zone.
func (r Reverb3D) Release() error {
	return check(lib.Reverb3D_Release(r.raw))
}

// Set3DAttributes places the zone and sets its full-effect and falloff radii.
func (r Reverb3D) Set3DAttributes(pos Vector, minDistance, maxDistance float32) error {
	return check(lib.Reverb3D_Set3DAttributes(r.raw, ptrOf(&pos), minDistance, maxDistance))
}

// ThreeDAttributes returns the position and radii of the zone.
func (r Reverb3D) ThreeDAttributes() (pos Vector, minDistance, maxDistance float32, err error) {
	err = check(lib.Reverb3D_Get3DAttributes(r.raw, ptrOf(&pos), &minDistance, &maxDistance))
	return pos, minDistance, maxDistance, err
}

// SetProperties sets the environment of the zone.
func (r Reverb3D) SetProperties(props ReverbProperties) error {
	return check(lib.Reverb3D_SetProperties(r.raw, ptrOf(&props)))
}

// Properties returns the environment of the zone.
func (r Reverb3D) Properties() (ReverbProperties, error) {
	var props ReverbProperties
	err := check(lib.Reverb3D_GetProperties(r.raw, ptrOf(&props)))
	return props, err
}

// SetActive enables or disables the zone.
func (r Reverb3D) SetActive(active bool) error {
	return check(lib.Reverb3D_SetActive(r.raw, boolToC(active)))
}

// Active reports whether the zone is enabled.
func (r Reverb3D) Active() (bool, error) {
	var a int32
	err := check(lib.Reverb3D_GetActive(r.raw, &a))
	return a != 0, err
}

// SetUserData stores an arbitrary value with the zone.
func (r Reverb3D) SetUserData(data uintptr) error {
	return check(lib.Reverb3D_SetUserData(r.raw, data))
}

// UserData returns the value stored with SetUserData.
func (r Reverb3D) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.Reverb3D_GetUserData(r.raw, &data))
	return data, err
}
