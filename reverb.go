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

// ReverbProperties describe a reverb environment. The struct has the native
// memory layout.
type ReverbProperties struct {
	DecayTime         float32
	EarlyDelay        float32
	LateDelay         float32
	HFReference       float32
	HFDecayRatio      float32
	Diffusion         float32
	Density           float32
	LowShelfFrequency float32
	LowShelfGain      float32
	HighCut           float32
	EarlyLateMix      float32
	WetLevel          float32
}

// Reverb presets.
var (
	ReverbOff             = ReverbProperties{1000, 7, 11, 5000, 100, 100, 100, 250, 0, 20, 96, -80.0}
	ReverbGeneric         = ReverbProperties{1500, 7, 11, 5000, 83, 100, 100, 250, 0, 14500, 96, -8.0}
	ReverbPaddedCell      = ReverbProperties{170, 1, 2, 5000, 10, 100, 100, 250, 0, 160, 84, -7.8}
	ReverbRoom            = ReverbProperties{400, 2, 3, 5000, 83, 100, 100, 250, 0, 6050, 88, -9.4}
	ReverbBathroom        = ReverbProperties{1500, 7, 11, 5000, 54, 100, 60, 250, 0, 2900, 83, 0.5}
	ReverbLivingRoom      = ReverbProperties{500, 3, 4, 5000, 10, 100, 100, 250, 0, 160, 58, -19.0}
	ReverbStoneRoom       = ReverbProperties{2300, 12, 17, 5000, 64, 100, 100, 250, 0, 7800, 71, -8.5}
	ReverbAuditorium      = ReverbProperties{4300, 20, 30, 5000, 59, 100, 100, 250, 0, 5850, 64, -11.7}
	ReverbConcertHall     = ReverbProperties{3900, 20, 29, 5000, 70, 100, 100, 250, 0, 5650, 80, -9.8}
	ReverbCave            = ReverbProperties{2900, 15, 22, 5000, 100, 100, 100, 250, 0, 20000, 59, -11.3}
	ReverbArena           = ReverbProperties{7200, 20, 30, 5000, 33, 100, 100, 250, 0, 4500, 80, -9.6}
	ReverbHangar          = ReverbProperties{10000, 20, 30, 5000, 23, 100, 100, 250, 0, 3400, 72, -7.4}
	ReverbCarpetedHallway = ReverbProperties{300, 2, 30, 5000, 10, 100, 100, 250, 0, 500, 56, -24.0}
	ReverbHallway         = ReverbProperties{1500, 7, 11, 5000, 59, 100, 100, 250, 0, 7800, 87, -5.5}
	ReverbStoneCorridor   = ReverbProperties{270, 13, 20, 5000, 79, 100, 100, 250, 0, 9000, 86, -6.0}
	ReverbAlley           = ReverbProperties{1500, 7, 11, 5000, 86, 100, 100, 250, 0, 8300, 80, -9.8}
	ReverbForest          = ReverbProperties{1500, 162, 88, 5000, 54, 79, 100, 250, 0, 760, 94, -12.3}
	ReverbCity            = ReverbProperties{1500, 7, 11, 5000, 67, 50, 100, 250, 0, 4050, 66, -26.0}
	ReverbMountains       = ReverbProperties{1500, 300, 100, 5000, 21, 27, 100, 250, 0, 1220, 82, -24.0}
	ReverbQuarry          = ReverbProperties{1500, 61, 25, 5000, 83, 100, 100, 250, 0, 3400, 100, -5.0}
	ReverbPlain           = ReverbProperties{1500, 179, 100, 5000, 50, 21, 100, 250, 0, 1670, 65, -28.0}
	ReverbParkingLot      = ReverbProperties{1700, 8, 12, 5000, 100, 100, 100, 250, 0, 20000, 56, -19.5}
	ReverbSewerPipe       = ReverbProperties{2800, 14, 21, 5000, 14, 80, 60, 250, 0, 3400, 66, 1.2}
	ReverbUnderwater      = ReverbProperties{1500, 7, 11, 5000, 10, 100, 100, 250, 0, 500, 92, 7.0}
)

// ReverbPresets maps lower-case preset names to their properties.
var ReverbPresets = map[string]ReverbProperties{
	"off":             ReverbOff,
	"generic":         ReverbGeneric,
	"paddedcell":      ReverbPaddedCell,
	"room":            ReverbRoom,
	"bathroom":        ReverbBathroom,
	"livingroom":      ReverbLivingRoom,
	"stoneroom":       ReverbStoneRoom,
	"auditorium":      ReverbAuditorium,
	"concerthall":     ReverbConcertHall,
	"cave":            ReverbCave,
	"arena":           ReverbArena,
	"hangar":          ReverbHangar,
	"carpetedhallway": ReverbCarpetedHallway,
	"hallway":         ReverbHallway,
	"stonecorridor":   ReverbStoneCorridor,
	"alley":           ReverbAlley,
	"forest":          ReverbForest,
	"city":            ReverbCity,
	"mountains":       ReverbMountains,
	"quarry":          ReverbQuarry,
	"plain":           ReverbPlain,
	"parkinglot":      ReverbParkingLot,
	"sewerpipe":       ReverbSewerPipe,
	"underwater":      ReverbUnderwater,
}
