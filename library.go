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
	"fmt"
	"sync"

	"github.com/fmodgo/fmod/internal/native"
)

var (
	libMu sync.Mutex

	// lib is set once, before any handle exists, and read without locking
	// by handle methods afterwards.
	lib *native.Lib
)

// LoadLibrary loads the FMOD shared library at path and binds the API.
// An empty path searches the platform default names, honoring the
// FMOD_LIBRARY environment variable.
//
// Calling LoadLibrary is optional: NewSystem and the global functions load
// the default library on first use. LoadLibrary after a successful load is a
// no-op.
func LoadLibrary(path string) error {
	_, err := loadLibrary(path)
	return err
}

func loadLibrary(path string) (*native.Lib, error) {
	libMu.Lock()
	defer libMu.Unlock()

	if lib != nil {
		return lib, nil
	}
	l, err := native.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}
	if err := platformInit(); err != nil {
		return nil, err
	}
	lib = l
	log.Debugf("Loaded the FMOD shared library")
	return lib, nil
}

func library() (*native.Lib, error) {
	return loadLibrary("")
}
