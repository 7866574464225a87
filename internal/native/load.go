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

// Package native binds the FMOD Core C API at run time without cgo.
package native

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/ebitengine/purego"
)

// LibraryEnv names the environment variable that overrides the library path.
const LibraryEnv = "FMOD_LIBRARY"

const symbolPrefix = "FMOD_"

// MissingSymbolsError is returned by Load when the opened library does not
// export every entry point of Lib.
type MissingSymbolsError struct {
	Path    string
	Symbols []string
}

func (e *MissingSymbolsError) Error() string {
	return fmt.Sprintf("fmod: %s is missing %d symbol(s): %s", e.Path, len(e.Symbols), strings.Join(e.Symbols, ", "))
}

// LibraryNames returns the file names tried in order when no explicit path is
// given.
func LibraryNames() []string {
	if p := os.Getenv(LibraryEnv); p != "" {
		return []string{p}
	}
	return defaultLibraryNames
}

// Load opens the FMOD shared library and binds every entry point of Lib.
// An empty path tries LibraryNames.
func Load(path string) (*Lib, error) {
	names := []string{path}
	if path == "" {
		names = LibraryNames()
	}

	var errs []string
	for _, name := range names {
		handle, err := openLibrary(name)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		return bind(name, func(symbol string) (uintptr, error) {
			return lookupSymbol(handle, symbol)
		})
	}
	return nil, fmt.Errorf("fmod: loading the shared library failed: %s", strings.Join(errs, "; "))
}

// Symbols returns the C symbol names Lib binds, in declaration order.
func Symbols() []string {
	t := reflect.TypeOf(Lib{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, symbolPrefix+t.Field(i).Name)
	}
	return names
}

func bind(path string, lookup func(string) (uintptr, error)) (*Lib, error) {
	lib := &Lib{}
	v := reflect.ValueOf(lib).Elem()
	t := v.Type()

	var missing []string
	for i := 0; i < t.NumField(); i++ {
		symbol := symbolPrefix + t.Field(i).Name
		addr, err := lookup(symbol)
		if err != nil || addr == 0 {
			missing = append(missing, symbol)
			continue
		}
		purego.RegisterFunc(v.Field(i).Addr().Interface(), addr)
	}
	if len(missing) > 0 {
		return nil, &MissingSymbolsError{Path: path, Symbols: missing}
	}
	return lib, nil
}
