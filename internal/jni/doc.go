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

// Package jni hands the Android application context to the Java half of the
// FMOD runtime (org.fmod.FMOD), which must see it before a System is
// created. JNI is driven through the function table of the JNIEnv so no cgo
// is required beyond what golang.org/x/mobile/app already uses.
package jni
