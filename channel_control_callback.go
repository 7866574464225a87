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
	"github.com/fmodgo/fmod/internal/native"
)

// ChannelControlEvent is delivered to a ChannelControlCallback.
type ChannelControlEvent struct {
	Control     ChannelControl
	ControlType ChannelControlType
	Type        ChannelControlCallbackType

	data1, data2 uintptr
}

// Channel returns the channel the event fired for. It is valid only when
// ControlType is ChannelControlChannel.
func (e ChannelControlEvent) Channel() Channel { return Channel{e.Control} }

// Group returns the group the event fired for. It is valid only when
// ControlType is ChannelControlChannelGroup.
func (e ChannelControlEvent) Group() ChannelGroup { return ChannelGroup{e.Control} }

// SyncPoint returns the index of the sync point reached by a
// ChannelControlCallbackSyncPoint event.
func (e ChannelControlEvent) SyncPoint() int { return int(int32(e.data1)) }

// Virtual reports whether a ChannelControlCallbackVirtualVoice event moved
// the channel to virtual.
func (e ChannelControlEvent) Virtual() bool { return int32(e.data1) != 0 }

// Occlusion returns the direct and reverb occlusion of a
// ChannelControlCallbackOcclusion event.
func (e ChannelControlEvent) Occlusion() (direct, reverb float32) {
	if e.data1 != 0 {
		direct = *(*float32)(native.Pointer(e.data1))
	}
	if e.data2 != 0 {
		reverb = *(*float32)(native.Pointer(e.data2))
	}
	return direct, reverb
}

// SetOcclusion overrides the occlusion computed by the geometry engine for a
// ChannelControlCallbackOcclusion event.
func (e ChannelControlEvent) SetOcclusion(direct, reverb float32) {
	if e.Type != ChannelControlCallbackOcclusion {
		return
	}
	if e.data1 != 0 {
		*(*float32)(native.Pointer(e.data1)) = direct
	}
	if e.data2 != 0 {
		*(*float32)(native.Pointer(e.data2)) = reverb
	}
}

// ChannelControlCallback receives channel and group events on the thread
// that calls System.Update.
type ChannelControlCallback func(ChannelControlEvent) error

var (
	channelCallbacks registry[ChannelControlCallback]

	channelControlCallback = lazyCallback{fn: channelControlTrampoline}
)

// SetCallback installs fn for this channel or group, replacing any previous
// callback. A nil fn removes it. The callback of a channel is forgotten after
// its end event.
func (c ChannelControl) SetCallback(fn ChannelControlCallback) error {
	if fn == nil {
		if err := check(lib.Channel_SetCallback(c.raw, 0)); err != nil {
			return err
		}
		channelCallbacks.delete(c.raw)
		return nil
	}
	channelCallbacks.store(c.raw, fn)
	if err := check(lib.Channel_SetCallback(c.raw, channelControlCallback.get())); err != nil {
		channelCallbacks.delete(c.raw)
		return err
	}
	return nil
}

func channelControlTrampoline(control, controlType, callbackType, data1, data2 uintptr) uintptr {
	return catchPanic("channel control", func() error {
		ev := ChannelControlEvent{
			Control:     ChannelControl{raw: control},
			ControlType: ChannelControlType(int32(controlType)),
			Type:        ChannelControlCallbackType(int32(callbackType)),
			data1:       data1,
			data2:       data2,
		}
		fn, ok := channelCallbacks.load(control)
		if ev.Type == ChannelControlCallbackEnd && ev.ControlType == ChannelControlChannel {
			// The handle may be reused for the next channel played.
			channelCallbacks.delete(control)
			rolloffCurves.delete(control)
		}
		if !ok {
			return nil
		}
		return fn(ev)
	})
}
