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

// SystemEvent is a notification delivered to a SystemCallback.
type SystemEvent struct {
	System System
	Type   SystemCallbackType
	// Data1 and Data2 are the raw callback arguments, whose meaning depends
	// on Type.
	Data1, Data2 uintptr
	// Error is set for SystemCallbackError.
	Error *ErrorCallbackInfo
	// ThreadName is set for SystemCallbackThreadCreated and
	// SystemCallbackThreadDestroyed.
	ThreadName string
}

// SystemCallback receives System events.
type SystemCallback func(SystemEvent) error

var (
	systemCallbacks registry[SystemCallback]

	systemCallback = lazyCallback{fn: systemTrampoline}
)

// SetCallback installs fn for the events in mask. A nil fn removes the
// callback.
func (s System) SetCallback(fn SystemCallback, mask SystemCallbackType) error {
	if fn == nil {
		if err := check(lib.System_SetCallback(s.raw, 0, 0)); err != nil {
			return err
		}
		systemCallbacks.delete(s.raw)
		return nil
	}
	systemCallbacks.store(s.raw, fn)
	return check(lib.System_SetCallback(s.raw, systemCallback.get(), uint32(mask)))
}

func systemTrampoline(system, typ, data1, data2, userData uintptr) uintptr {
	return catchPanic("system", func() error {
		fn, ok := systemCallbacks.load(system)
		if !ok {
			return nil
		}
		ev := SystemEvent{
			System: System{raw: system},
			Type:   SystemCallbackType(uint32(typ)),
			Data1:  data1,
			Data2:  data2,
		}
		switch ev.Type {
		case SystemCallbackError:
			if data1 != 0 {
				raw := (*errorCallbackInfo)(native.Pointer(data1))
				ev.Error = &ErrorCallbackInfo{
					Result:         check(raw.result),
					InstanceType:   ErrorCallbackInstance(raw.instanceType),
					Instance:       raw.instance,
					FunctionName:   native.GoString(raw.functionName),
					FunctionParams: native.GoString(raw.functionParams),
				}
			}
		case SystemCallbackThreadCreated, SystemCallbackThreadDestroyed:
			ev.ThreadName = native.GoString(data2)
		}
		return fn(ev)
	})
}

// SetUserData stores an arbitrary value with the System.
func (s System) SetUserData(data uintptr) error {
	return check(lib.System_SetUserData(s.raw, data))
}

// UserData returns the value stored with SetUserData.
func (s System) UserData() (uintptr, error) {
	var data uintptr
	err := check(lib.System_GetUserData(s.raw, &data))
	return data, err
}
