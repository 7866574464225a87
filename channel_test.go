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

	"github.com/fmodgo/fmod/internal/native"
)

func TestChannelCallbackEnd(t *testing.T) {
	const raw = 0x80
	var events []ChannelControlCallbackType
	channelCallbacks.store(raw, func(ev ChannelControlEvent) error {
		if ev.Channel().Raw() != raw {
			t.Errorf("channel = %#x", ev.Channel().Raw())
		}
		events = append(events, ev.Type)
		return nil
	})
	rolloffCurves.store(raw, []Vector{{X: 1, Y: 1}})

	if r := channelControlTrampoline(raw, uintptr(ChannelControlChannel), uintptr(ChannelControlCallbackSyncPoint), 3, 0); r != 0 {
		t.Errorf("sync point = %v", Error(r))
	}
	if r := channelControlTrampoline(raw, uintptr(ChannelControlChannel), uintptr(ChannelControlCallbackEnd), 0, 0); r != 0 {
		t.Errorf("end = %v", Error(r))
	}
	if len(events) != 2 || events[1] != ChannelControlCallbackEnd {
		t.Errorf("events = %v", events)
	}
	if _, ok := channelCallbacks.load(raw); ok {
		t.Error("callback kept after the end event")
	}
	if _, ok := rolloffCurves.load(raw); ok {
		t.Error("rolloff curve kept after the end event")
	}
	// A later event for the reused handle reaches nobody.
	if r := channelControlTrampoline(raw, uintptr(ChannelControlChannel), uintptr(ChannelControlCallbackVirtualVoice), 1, 0); r != 0 {
		t.Errorf("event without callback = %v", Error(r))
	}
	if len(events) != 2 {
		t.Errorf("callback ran after removal: %v", events)
	}
}

func TestChannelCallbackOcclusion(t *testing.T) {
	const raw = 0x90
	t.Cleanup(func() { channelCallbacks.delete(raw) })
	channelCallbacks.store(raw, func(ev ChannelControlEvent) error {
		direct, reverb := ev.Occlusion()
		if direct != 0.25 || reverb != 0.5 {
			t.Errorf("occlusion = %v, %v", direct, reverb)
		}
		ev.SetOcclusion(1, 0)
		return ErrNotReady
	})
	direct, directAddr := alloc[float32]()
	reverb, reverbAddr := alloc[float32]()
	*direct, *reverb = 0.25, 0.5

	r := channelControlTrampoline(raw, uintptr(ChannelControlChannelGroup), uintptr(ChannelControlCallbackOcclusion), directAddr, reverbAddr)
	if r != uintptr(ErrNotReady) {
		t.Errorf("result = %v, want the callback error", Error(r))
	}
	if *direct != 1 || *reverb != 0 {
		t.Errorf("occlusion after override = %v, %v", *direct, *reverb)
	}
	// Group events never drop the callback.
	channelControlTrampoline(raw, uintptr(ChannelControlChannelGroup), uintptr(ChannelControlCallbackEnd), 0, 0)
	if _, ok := channelCallbacks.load(raw); !ok {
		t.Error("group callback removed by an end event")
	}
}

func TestSetCallbackNil(t *testing.T) {
	const raw = 0xa0
	channelCallbacks.store(raw, func(ChannelControlEvent) error { return nil })
	withFakeLibrary(t, &native.Lib{
		Channel_SetCallback: func(channel uintptr, callback uintptr) int32 {
			if callback != 0 {
				t.Error("callback installed")
			}
			return 0
		},
	})
	if err := (ChannelControl{raw: raw}).SetCallback(nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := channelCallbacks.load(raw); ok {
		t.Error("callback kept")
	}
}

func TestCustomRolloffKeptAlive(t *testing.T) {
	var stored unsafe.Pointer
	var count int32
	withFakeLibrary(t, &native.Lib{
		Channel_Set3DCustomRolloff: func(channel uintptr, points unsafe.Pointer, numPoints int32) int32 {
			stored, count = points, numPoints
			return 0
		},
		Channel_Get3DCustomRolloff: func(channel uintptr, points *unsafe.Pointer, numPoints *int32) int32 {
			*points, *numPoints = stored, count
			return 0
		},
		ChannelGroup_Release: func(channelGroup uintptr) int32 { return 0 },
	})
	g := ChannelGroup{ChannelControl{raw: 0xb0}}
	points := []Vector{{X: 0, Y: 1}, {X: 10, Y: 0.5}, {X: 20, Y: 0}}
	if err := g.Set3DCustomRolloff(points); err != nil {
		t.Fatal(err)
	}
	if stored == unsafe.Pointer(&points[0]) {
		t.Error("engine was handed the caller's slice")
	}
	points[1].Y = 99

	got, err := g.ThreeDCustomRolloff()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1].Y != 0.5 {
		t.Errorf("curve = %v", got)
	}
	if kept, ok := rolloffCurves.load(g.Raw()); !ok || unsafe.Pointer(&kept[0]) != stored {
		t.Error("points handed to the engine are not retained")
	}

	if err := g.Release(); err != nil {
		t.Fatal(err)
	}
	if _, ok := rolloffCurves.load(g.Raw()); ok {
		t.Error("curve retained after Release")
	}
}

func TestMixMatrixRoundTrip(t *testing.T) {
	var (
		stored  []float32
		out, in int32
	)
	withFakeLibrary(t, &native.Lib{
		Channel_SetMixMatrix: func(channel uintptr, matrix *float32, outChannels, inChannels, hop int32) int32 {
			if hop != inChannels {
				t.Errorf("hop = %d, want %d", hop, inChannels)
			}
			out, in = outChannels, inChannels
			stored = append([]float32(nil), unsafe.Slice(matrix, outChannels*inChannels)...)
			return 0
		},
		Channel_GetMixMatrix: func(channel uintptr, matrix *float32, outChannels, inChannels *int32, hop int32) int32 {
			*outChannels, *inChannels = out, in
			if matrix != nil {
				copy(unsafe.Slice(matrix, out*hop), stored)
			}
			return 0
		},
	})
	c := ChannelControl{raw: 1}
	if err := c.SetMixMatrix([][]float32{{1, 0}, {0, 1}, {0.5, 0.5}}); err != nil {
		t.Fatal(err)
	}
	m, err := c.MixMatrix()
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 3 || len(m[2]) != 2 || m[2][0] != 0.5 || m[1][1] != 1 {
		t.Errorf("matrix = %v", m)
	}
}
