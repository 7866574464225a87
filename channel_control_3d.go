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

// rolloffCurves keeps custom rolloff points alive: the engine stores the
// pointer rather than copying the points.
var rolloffCurves registry[[]Vector]

// ConeSettings describe a sound projection cone.
type ConeSettings struct {
	InsideAngle   float32
	OutsideAngle  float32
	OutsideVolume float32
}

// DistanceFilter describes the 3D distance filter.
type DistanceFilter struct {
	Custom      bool
	CustomLevel float32
	CenterFreq  float32
}

// Set3DAttributes sets the position and velocity used for 3D panning.
func (c ChannelControl) Set3DAttributes(pos, vel Vector) error {
	return check(lib.Channel_Set3DAttributes(c.raw, ptrOf(&pos), ptrOf(&vel)))
}

// ThreeDAttributes returns the position and velocity.
func (c ChannelControl) ThreeDAttributes() (pos, vel Vector, err error) {
	err = check(lib.Channel_Get3DAttributes(c.raw, ptrOf(&pos), ptrOf(&vel)))
	return pos, vel, err
}

// Set3DConeOrientation sets the direction of the projection cone.
func (c ChannelControl) Set3DConeOrientation(orientation Vector) error {
	return check(lib.Channel_Set3DConeOrientation(c.raw, ptrOf(&orientation)))
}

// ThreeDConeOrientation returns the direction of the projection cone.
func (c ChannelControl) ThreeDConeOrientation() (Vector, error) {
	var v Vector
	err := check(lib.Channel_Get3DConeOrientation(c.raw, ptrOf(&v)))
	return v, err
}

// Set3DConeSettings sets the angles and outside volume of the projection cone.
func (c ChannelControl) Set3DConeSettings(cone ConeSettings) error {
	return check(lib.Channel_Set3DConeSettings(c.raw, cone.InsideAngle, cone.OutsideAngle, cone.OutsideVolume))
}

// ThreeDConeSettings returns the projection cone settings.
func (c ChannelControl) ThreeDConeSettings() (ConeSettings, error) {
	var cone ConeSettings
	err := check(lib.Channel_Get3DConeSettings(c.raw, &cone.InsideAngle, &cone.OutsideAngle, &cone.OutsideVolume))
	return cone, err
}

// Set3DCustomRolloff sets a distance to volume curve, used with
// Mode3DCustomRolloff. Each point has distance in X and volume in Y. The
// points are retained until replaced.
func (c ChannelControl) Set3DCustomRolloff(points []Vector) error {
	kept := append([]Vector(nil), points...)
	var p unsafe.Pointer
	if len(kept) > 0 {
		p = unsafe.Pointer(&kept[0])
	}
	if err := check(lib.Channel_Set3DCustomRolloff(c.raw, p, int32(len(kept)))); err != nil {
		return err
	}
	if len(kept) == 0 {
		rolloffCurves.delete(c.raw)
	} else {
		rolloffCurves.store(c.raw, kept)
	}
	return nil
}

// ThreeDCustomRolloff returns a copy of the custom rolloff curve.
func (c ChannelControl) ThreeDCustomRolloff() ([]Vector, error) {
	var (
		p unsafe.Pointer
		n int32
	)
	if err := check(lib.Channel_Get3DCustomRolloff(c.raw, &p, &n)); err != nil {
		return nil, err
	}
	if p == nil || n == 0 {
		return nil, nil
	}
	return append([]Vector(nil), unsafe.Slice((*Vector)(p), n)...), nil
}

// Set3DDistanceFilter overrides the distance filter applied by the engine.
// It requires InitChannelDistanceFilter.
func (c ChannelControl) Set3DDistanceFilter(f DistanceFilter) error {
	return check(lib.Channel_Set3DDistanceFilter(c.raw, boolToC(f.Custom), f.CustomLevel, f.CenterFreq))
}

// ThreeDDistanceFilter returns the distance filter settings.
func (c ChannelControl) ThreeDDistanceFilter() (DistanceFilter, error) {
	var (
		f      DistanceFilter
		custom int32
	)
	err := check(lib.Channel_Get3DDistanceFilter(c.raw, &custom, &f.CustomLevel, &f.CenterFreq))
	f.Custom = custom != 0
	return f, err
}

// Set3DDopplerLevel scales the doppler effect; 0 disables it.
func (c ChannelControl) Set3DDopplerLevel(level float32) error {
	return check(lib.Channel_Set3DDopplerLevel(c.raw, level))
}

// ThreeDDopplerLevel returns the doppler scale.
func (c ChannelControl) ThreeDDopplerLevel() (float32, error) {
	var l float32
	err := check(lib.Channel_Get3DDopplerLevel(c.raw, &l))
	return l, err
}

// Set3DLevel blends between 3D panning (1) and 2D panning (0).
func (c ChannelControl) Set3DLevel(level float32) error {
	return check(lib.Channel_Set3DLevel(c.raw, level))
}

// ThreeDLevel returns the 3D pan level.
func (c ChannelControl) ThreeDLevel() (float32, error) {
	var l float32
	err := check(lib.Channel_Get3DLevel(c.raw, &l))
	return l, err
}

// Set3DMinMaxDistance sets the distances where attenuation starts and stops.
func (c ChannelControl) Set3DMinMaxDistance(min, max float32) error {
	return check(lib.Channel_Set3DMinMaxDistance(c.raw, min, max))
}

// ThreeDMinMaxDistance returns the attenuation distances.
func (c ChannelControl) ThreeDMinMaxDistance() (min, max float32, err error) {
	err = check(lib.Channel_Get3DMinMaxDistance(c.raw, &min, &max))
	return min, max, err
}

// Set3DOcclusion sets the direct and reverb occlusion, from 0 to 1.
func (c ChannelControl) Set3DOcclusion(direct, reverb float32) error {
	return check(lib.Channel_Set3DOcclusion(c.raw, direct, reverb))
}

// ThreeDOcclusion returns the direct and reverb occlusion.
func (c ChannelControl) ThreeDOcclusion() (direct, reverb float32, err error) {
	err = check(lib.Channel_Get3DOcclusion(c.raw, &direct, &reverb))
	return direct, reverb, err
}

// Set3DSpread sets the spread angle of a multichannel sound in degrees.
func (c ChannelControl) Set3DSpread(angle float32) error {
	return check(lib.Channel_Set3DSpread(c.raw, angle))
}

// ThreeDSpread returns the spread angle.
func (c ChannelControl) ThreeDSpread() (float32, error) {
	var a float32
	err := check(lib.Channel_Get3DSpread(c.raw, &a))
	return a, err
}
