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

//go:build darwin && !ios

package fmod

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

const appKitPath = "/System/Library/Frameworks/AppKit.framework/Versions/Current/AppKit"

var observeSleepOnce sync.Once

// platformInit suspends the mixer of every live System while the machine
// sleeps. Core Audio devices vanish during sleep and the engine otherwise
// spins on a dead output until wake.
func platformInit() error {
	var err error
	observeSleepOnce.Do(func() {
		err = observeSleep()
	})
	return err
}

func observeSleep() error {
	appkit, err := purego.Dlopen(appKitPath, purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("fmod: loading AppKit: %w", err)
	}
	willSleep, err := purego.Dlsym(appkit, "NSWorkspaceWillSleepNotification")
	if err != nil {
		return fmt.Errorf("fmod: %w", err)
	}
	didWake, err := purego.Dlsym(appkit, "NSWorkspaceDidWakeNotification")
	if err != nil {
		return fmt.Errorf("fmod: %w", err)
	}

	class := objc.AllocateClassPair(objc.GetClass("NSObject"), "FMODSleepObserver", 0)
	class.AddMethod(objc.RegisterName("receiveSleepNote:"), objc.NewIMP(func(self objc.ID, cmd objc.SEL, note objc.ID) {
		log.Debugf("System going to sleep; suspending mixers")
		suspendAll()
	}), "v@:@")
	class.AddMethod(objc.RegisterName("receiveWakeNote:"), objc.NewIMP(func(self objc.ID, cmd objc.SEL, note objc.ID) {
		log.Debugf("System woke; resuming mixers")
		resumeAll()
	}), "v@:@")
	class.Register()

	observer := objc.ID(class).Send(objc.RegisterName("new"))
	workspace := objc.ID(objc.GetClass("NSWorkspace")).Send(objc.RegisterName("sharedWorkspace"))
	center := workspace.Send(objc.RegisterName("notificationCenter"))

	addObserver := objc.RegisterName("addObserver:selector:name:object:")
	// The symbols are pointers to the NSString constants.
	center.Send(addObserver, observer, objc.RegisterName("receiveSleepNote:"), *(*uintptr)(unsafe.Pointer(willSleep)), 0)
	center.Send(addObserver, observer, objc.RegisterName("receiveWakeNote:"), *(*uintptr)(unsafe.Pointer(didWake)), 0)
	return nil
}
