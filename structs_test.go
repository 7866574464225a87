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
	"testing"
	"unsafe"
)

func TestNativeLayouts(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layouts are checked on 64-bit platforms")
	}
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"FMOD_VECTOR", unsafe.Sizeof(Vector{}), 12},
		{"FMOD_3D_ATTRIBUTES", unsafe.Sizeof(Attributes3D{}), 48},
		{"FMOD_GUID", unsafe.Sizeof(GUID{}), 16},
		{"FMOD_REVERB_PROPERTIES", unsafe.Sizeof(ReverbProperties{}), 48},
		{"FMOD_ADVANCEDSETTINGS", unsafe.Sizeof(AdvancedSettings{}), 104},
		{"FMOD_DSP_METERING_INFO", unsafe.Sizeof(DSPMeteringInfo{}), 264},
		{"FMOD_ERRORCALLBACK_INFO", unsafe.Sizeof(errorCallbackInfo{}), 32},
		{"FMOD_CREATESOUNDEXINFO", unsafe.Sizeof(createSoundExInfo{}), 224},
		{"FMOD_TAG", unsafe.Sizeof(nativeTag{}), 32},
		{"FMOD_DSP_PARAMETER_DESC", unsafe.Sizeof(nativeParameterDesc{}), 88},
		{"FMOD_DSP_DESCRIPTION", unsafe.Sizeof(nativeDSPDescription{}), 216},
		{"FMOD_ASYNCREADINFO", unsafe.Sizeof(asyncReadInfo{}), 56},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: size %d, want %d", tc.name, tc.got, tc.want)
		}
	}

	var fd nativeFloatDesc
	if unsafe.Sizeof(fd) > unsafe.Sizeof(nativeParameterDesc{}.union) {
		t.Errorf("float descriptor of %d bytes overflows the union", unsafe.Sizeof(fd))
	}
	var nd nativeDSPDescription
	if off := unsafe.Offsetof(nd.userData); off != 184 {
		t.Errorf("FMOD_DSP_DESCRIPTION.userdata at %d, want 184", off)
	}
	var ex createSoundExInfo
	if off := unsafe.Offsetof(ex.userData); off != 104 {
		t.Errorf("FMOD_CREATESOUNDEXINFO.userdata at %d, want 104", off)
	}
	var ar asyncReadInfo
	if off := unsafe.Offsetof(ar.userData); off != 24 {
		t.Errorf("FMOD_ASYNCREADINFO.userdata at %d, want 24", off)
	}
	if off := unsafe.Offsetof(ar.done); off != 48 {
		t.Errorf("FMOD_ASYNCREADINFO.done at %d, want 48", off)
	}
}

func TestBoolToC(t *testing.T) {
	if boolToC(true) != 1 || boolToC(false) != 0 {
		t.Error("boolToC")
	}
}
