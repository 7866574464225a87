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

func fakeSystemLib(t *testing.T) *native.Lib {
	next := uintptr(0x1000)
	return &native.Lib{
		System_Create: func(system *uintptr, version uint32) int32 {
			if version != headerVersion {
				t.Errorf("header version %#x", version)
			}
			next += 0x10
			*system = next
			return 0
		},
		System_Release: func(system uintptr) int32 { return 0 },
	}
}

func TestNewSystemGuard(t *testing.T) {
	withFakeLibrary(t, fakeSystemLib(t))

	a, err := NewSystem()
	if err != nil {
		t.Fatal(err)
	}
	if a.Raw() == 0 {
		t.Error("NewSystem returned a zero handle")
	}
	if _, err := NewSystem(); !errors.Is(err, ErrInitialized) {
		t.Errorf("second NewSystem = %v, want ErrInitialized", err)
	}
	b, err := NewSystemUnchecked()
	if err != nil {
		t.Fatal(err)
	}
	if SystemCount() != 2 {
		t.Errorf("SystemCount() = %d, want 2", SystemCount())
	}
	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if err := b.Release(); err != nil {
		t.Fatal(err)
	}
	if SystemCount() != 0 {
		t.Errorf("SystemCount() = %d after release, want 0", SystemCount())
	}
	if _, err := NewSystem(); err != nil {
		t.Errorf("NewSystem after release: %v", err)
	}
}

func TestNewSystemError(t *testing.T) {
	withFakeLibrary(t, &native.Lib{
		System_Create: func(system *uintptr, version uint32) int32 { return int32(ErrHeaderMismatch) },
	})
	if _, err := NewSystem(); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("NewSystem = %v, want ErrHeaderMismatch", err)
	}
	if SystemCount() != 0 {
		t.Errorf("failed create counted: %d", SystemCount())
	}
}

func TestReleaseErrorKeepsCount(t *testing.T) {
	l := fakeSystemLib(t)
	l.System_Release = func(system uintptr) int32 { return int32(ErrInvalidHandle) }
	withFakeLibrary(t, l)

	sys, err := NewSystem()
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.Release(); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Release = %v", err)
	}
	if SystemCount() != 1 {
		t.Errorf("SystemCount() = %d, want 1", SystemCount())
	}
}

func TestSuspendAllLiveSystems(t *testing.T) {
	suspended := map[uintptr]int{}
	l := fakeSystemLib(t)
	l.System_MixerSuspend = func(system uintptr) int32 {
		suspended[system]++
		return 0
	}
	l.System_MixerResume = func(system uintptr) int32 {
		suspended[system]--
		return 0
	}
	withFakeLibrary(t, l)

	a, err := NewSystem()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSystemUnchecked()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Release(); err != nil {
		t.Fatal(err)
	}

	suspendAll()
	if len(suspended) != 1 || suspended[a.Raw()] != 1 {
		t.Errorf("suspended = %v, want only %#x", suspended, a.Raw())
	}
	resumeAll()
	if suspended[a.Raw()] != 0 {
		t.Errorf("system %#x still suspended", a.Raw())
	}
}

func TestCreateSoundRejectsUserModes(t *testing.T) {
	withFakeLibrary(t, &native.Lib{
		System_CreateSound: func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32 {
			t.Error("engine called for a rejected mode")
			return 0
		},
		System_CreateStream: func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32 {
			t.Error("engine called for a rejected mode")
			return 0
		},
	})
	sys := System{raw: 1}
	for _, mode := range []Mode{ModeOpenUser, ModeOpenMemory, ModeOpenMemoryPoint, ModeOpenRaw | Mode2D} {
		if _, err := sys.CreateSound("a.wav", mode); !errors.Is(err, ErrInvalidParam) {
			t.Errorf("CreateSound(%v) = %v, want ErrInvalidParam", mode, err)
		}
		if _, err := sys.CreateStream("a.wav", mode); !errors.Is(err, ErrInvalidParam) {
			t.Errorf("CreateStream(%v) = %v, want ErrInvalidParam", mode, err)
		}
	}
	if _, err := sys.CreateSoundEx([]byte("a.wav"), Mode2D, nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("CreateSoundEx without a user mode = %v, want ErrInvalidParam", err)
	}
}

func TestCreateSoundPassesName(t *testing.T) {
	withFakeLibrary(t, &native.Lib{
		System_CreateSound: func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32 {
			if got := native.GoString(uintptr(nameOrData)); got != "music/intro.ogg" {
				t.Errorf("name = %q", got)
			}
			if Mode(mode) != Mode2D|ModeLoopNormal {
				t.Errorf("mode = %v", Mode(mode))
			}
			if exinfo != nil {
				t.Error("exinfo passed for a plain sound")
			}
			*sound = 0x2000
			return 0
		},
	})
	s, err := System{raw: 1}.CreateSound("music/intro.ogg", Mode2D|ModeLoopNormal)
	if err != nil {
		t.Fatal(err)
	}
	if s.Raw() != 0x2000 {
		t.Errorf("sound = %#x", s.Raw())
	}
}

func TestCreateSoundFromMemory(t *testing.T) {
	data := []byte("RIFF....WAVE")
	withFakeLibrary(t, &native.Lib{
		System_CreateSound: func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32 {
			if Mode(mode)&ModeOpenMemory == 0 {
				t.Errorf("mode = %v, want ModeOpenMemory", Mode(mode))
			}
			if nameOrData != unsafe.Pointer(&data[0]) {
				t.Error("data not passed in place")
			}
			info := (*createSoundExInfo)(exinfo)
			if info == nil || info.length != uint32(len(data)) {
				t.Errorf("exinfo = %+v", info)
			} else if info.cbSize != int32(unsafe.Sizeof(createSoundExInfo{})) {
				t.Errorf("cbsize = %d", info.cbSize)
			}
			*sound = 0x3000
			return 0
		},
	})
	if _, err := (System{raw: 1}).CreateSoundFromMemory(data, Mode2D); err != nil {
		t.Fatal(err)
	}
}

func TestCreateSoundExKeepsCallerInfo(t *testing.T) {
	var lengths []uint32
	withFakeLibrary(t, &native.Lib{
		System_CreateSound: func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32 {
			lengths = append(lengths, (*createSoundExInfo)(exinfo).length)
			*sound = 0x3100
			return 0
		},
	})
	sys := System{raw: 1}
	info := &CreateSoundExInfo{NumChannels: 2}
	for _, data := range [][]byte{make([]byte, 100), make([]byte, 40)} {
		if _, err := sys.CreateSoundEx(data, Mode2D|ModeOpenMemory, info); err != nil {
			t.Fatal(err)
		}
	}
	if len(lengths) != 2 || lengths[0] != 100 || lengths[1] != 40 {
		t.Errorf("lengths = %v, want [100 40]", lengths)
	}
	if info.Length != 0 {
		t.Errorf("caller info Length = %d, want 0", info.Length)
	}
}

func TestMixMatrixHelpers(t *testing.T) {
	m := [][]float32{{1, 2}, {3}, {5, 6}}
	flat, out, in := flattenMatrix(m)
	if out != 3 || in != 2 {
		t.Fatalf("flattenMatrix dims = %d x %d", out, in)
	}
	want := []float32{1, 2, 3, 0, 5, 6}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flat = %v, want %v", flat, want)
		}
	}

	// A hop wider than the row skips padding.
	got := unflattenMatrix([]float32{1, 2, 9, 3, 4, 9}, 2, 2, 3)
	if len(got) != 2 || got[0][0] != 1 || got[0][1] != 2 || got[1][0] != 3 || got[1][1] != 4 {
		t.Errorf("unflattenMatrix = %v", got)
	}
}

func TestVersionString(t *testing.T) {
	if got := VersionString(0x00020222); got != "2.02.22" {
		t.Errorf("VersionString = %q", got)
	}
}
