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

package jni

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/mobile/app"

	"github.com/fmodgo/fmod/internal/native"
)

// Indices into JNINativeInterface.
const (
	fnExceptionClear        = 17
	fnDeleteLocalRef        = 23
	fnGetObjectClass        = 31
	fnGetMethodID           = 33
	fnCallObjectMethodA     = 36
	fnGetStaticMethodID     = 113
	fnCallStaticVoidMethodA = 143
	fnNewStringUTF          = 167
	fnExceptionCheck        = 228
)

const fmodClass = "org.fmod.FMOD"

var (
	initOnce sync.Once
	initErr  error
)

// InitFMOD calls org.fmod.FMOD.init with the application context. Only the
// first call does any work.
func InitFMOD() error {
	initOnce.Do(func() {
		initErr = app.RunOnJVM(func(vm, env, ctx uintptr) error {
			if ctx == 0 {
				return errors.New("jni: no Android context")
			}
			return callInit(jniEnv(env), ctx)
		})
	})
	return initErr
}

type jniEnv uintptr

func (e jniEnv) fn(index int) uintptr {
	table := *(*uintptr)(native.Pointer(uintptr(e)))
	return *(*uintptr)(native.Pointer(table + uintptr(index)*unsafe.Sizeof(uintptr(0))))
}

func (e jniEnv) call(index int, args ...uintptr) uintptr {
	return native.Call(e.fn(index), append([]uintptr{uintptr(e)}, args...)...)
}

func (e jniEnv) exception() bool {
	if uint8(e.call(fnExceptionCheck)) == 0 {
		return false
	}
	e.call(fnExceptionClear)
	return true
}

func (e jniEnv) deleteLocalRef(ref uintptr) {
	if ref != 0 {
		e.call(fnDeleteLocalRef, ref)
	}
}

func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func (e jniEnv) methodID(class uintptr, name, sig string) (uintptr, error) {
	n, s := cstr(name), cstr(sig)
	id := e.call(fnGetMethodID, class, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(s)))
	if id == 0 || e.exception() {
		return 0, fmt.Errorf("jni: method %s%s not found", name, sig)
	}
	return id, nil
}

// loadClass loads name through the class loader of ctx. FindClass would use
// the system class loader on threads attached from native code, which cannot
// see application classes.
func (e jniEnv) loadClass(ctx uintptr, name string) (uintptr, error) {
	ctxClass := e.call(fnGetObjectClass, ctx)
	defer e.deleteLocalRef(ctxClass)
	getLoader, err := e.methodID(ctxClass, "getClassLoader", "()Ljava/lang/ClassLoader;")
	if err != nil {
		return 0, err
	}
	loader := e.call(fnCallObjectMethodA, ctx, getLoader, 0)
	if loader == 0 || e.exception() {
		return 0, errors.New("jni: getClassLoader failed")
	}
	defer e.deleteLocalRef(loader)

	loaderClass := e.call(fnGetObjectClass, loader)
	defer e.deleteLocalRef(loaderClass)
	load, err := e.methodID(loaderClass, "loadClass", "(Ljava/lang/String;)Ljava/lang/Class;")
	if err != nil {
		return 0, err
	}
	jname := e.call(fnNewStringUTF, uintptr(unsafe.Pointer(cstr(name))))
	defer e.deleteLocalRef(jname)
	args := [1]uintptr{jname}
	class := e.call(fnCallObjectMethodA, loader, load, uintptr(unsafe.Pointer(&args[0])))
	if class == 0 || e.exception() {
		return 0, fmt.Errorf("jni: class %s not found; is fmod.jar packaged with the app?", name)
	}
	return class, nil
}

func callInit(e jniEnv, ctx uintptr) error {
	class, err := e.loadClass(ctx, fmodClass)
	if err != nil {
		return err
	}
	defer e.deleteLocalRef(class)

	n, s := cstr("init"), cstr("(Landroid/content/Context;)V")
	id := e.call(fnGetStaticMethodID, class, uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(s)))
	if id == 0 || e.exception() {
		return fmt.Errorf("jni: %s.init not found", fmodClass)
	}
	args := [1]uintptr{ctx}
	e.call(fnCallStaticVoidMethodA, class, id, uintptr(unsafe.Pointer(&args[0])))
	if e.exception() {
		return fmt.Errorf("jni: %s.init threw", fmodClass)
	}
	return nil
}
