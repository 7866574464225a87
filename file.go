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
	"io"
)

// FileSetDiskBusy tells the engine the disk is being used by someone else,
// making it hold off on file I/O.
func FileSetDiskBusy(busy bool) error {
	return readLocked(func() error {
		return check(lib.File_SetDiskBusy(boolToC(busy)))
	})
}

// FileGetDiskBusy reports whether the engine is accessing the disk.
func FileGetDiskBusy() (bool, error) {
	var busy int32
	err := readLocked(func() error {
		return check(lib.File_GetDiskBusy(&busy))
	})
	return busy != 0, err
}

type diskBusyLock struct{}

func (diskBusyLock) Close() error {
	return FileSetDiskBusy(false)
}

// LockDiskBusy marks the disk as busy until the returned Closer is closed.
func LockDiskBusy() (io.Closer, error) {
	if err := FileSetDiskBusy(true); err != nil {
		return nil, err
	}
	return diskBusyLock{}, nil
}
