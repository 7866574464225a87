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

// PluginHandle identifies a loaded plugin.
type PluginHandle uint32

// PluginInfo describes a loaded plugin.
type PluginInfo struct {
	Type    PluginType
	Name    string
	Version uint32
}

// SetPluginPath sets the directory LoadPlugin searches for plugins.
func (s System) SetPluginPath(path string) error {
	return check(lib.System_SetPluginPath(s.raw, path))
}

// LoadPlugin loads a plugin library. Plugins with a higher priority are
// preferred when the engine picks a codec.
func (s System) LoadPlugin(filename string, priority uint32) (PluginHandle, error) {
	var h uint32
	err := check(lib.System_LoadPlugin(s.raw, filename, &h, priority))
	return PluginHandle(h), err
}

// UnloadPlugin unloads a plugin loaded with LoadPlugin.
func (s System) UnloadPlugin(handle PluginHandle) error {
	return check(lib.System_UnloadPlugin(s.raw, uint32(handle)))
}

// NumNestedPlugins returns the number of plugins contained in a plugin library.
func (s System) NumNestedPlugins(handle PluginHandle) (int, error) {
	var n int32
	err := check(lib.System_GetNumNestedPlugins(s.raw, uint32(handle), &n))
	return int(n), err
}

// NestedPlugin returns a plugin contained in a plugin library.
func (s System) NestedPlugin(handle PluginHandle, index int) (PluginHandle, error) {
	var h uint32
	err := check(lib.System_GetNestedPlugin(s.raw, uint32(handle), int32(index), &h))
	return PluginHandle(h), err
}

// NumPlugins returns the number of loaded plugins of a type.
func (s System) NumPlugins(typ PluginType) (int, error) {
	var n int32
	err := check(lib.System_GetNumPlugins(s.raw, int32(typ), &n))
	return int(n), err
}

// PluginHandle returns the handle of the index'th plugin of a type.
func (s System) PluginHandle(typ PluginType, index int) (PluginHandle, error) {
	var h uint32
	err := check(lib.System_GetPluginHandle(s.raw, int32(typ), int32(index), &h))
	return PluginHandle(h), err
}

// PluginInfo returns information about a plugin.
func (s System) PluginInfo(handle PluginHandle) (PluginInfo, error) {
	var (
		typ     int32
		version uint32
	)
	buf := make([]byte, 256)
	if err := check(lib.System_GetPluginInfo(s.raw, uint32(handle), &typ, &buf[0], int32(len(buf)), &version)); err != nil {
		return PluginInfo{}, err
	}
	return PluginInfo{Type: PluginType(typ), Name: native.BytesToString(buf), Version: version}, nil
}

// CreateDSPByPlugin creates a DSP from a loaded DSP plugin.
func (s System) CreateDSPByPlugin(handle PluginHandle) (DSP, error) {
	var raw uintptr
	err := check(lib.System_CreateDSPByPlugin(s.raw, uint32(handle), &raw))
	return DSP{raw: raw}, err
}
