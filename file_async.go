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
	"io/fs"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// AsyncFileSystem serves engine reads asynchronously. Files are opened and
// closed through the embedded fs.FS.
//
// The engine waits for a request to complete, so requests issued from
// CreateSound or CreateStream deadlock if they are served on the calling
// goroutine. Serve them from another goroutine.
type AsyncFileSystem interface {
	fs.FS
	// Read queues req. It returns without waiting for req to be served; an
	// error makes the engine abandon the operation.
	Read(req AsyncRead) error
	// Cancel must serve or drop req, which was passed to Read, before
	// returning.
	Cancel(req AsyncRead) error
}

// asyncReadInfo mirrors FMOD_ASYNCREADINFO.
type asyncReadInfo struct {
	handle    uintptr
	offset    uint32
	sizeBytes uint32
	priority  int32
	userData  uintptr
	buffer    uintptr
	bytesRead uint32
	done      uintptr
}

// AsyncRead is a pending read request.
type AsyncRead struct {
	info uintptr
	// File is the file opened for the request.
	File fs.File
	// Offset and Size locate the bytes to read.
	Offset uint32
	Size   uint32
	// Priority ranges from 0 (low) to 100 (high).
	Priority int
}

func newAsyncRead(info uintptr, f fs.File) AsyncRead {
	n := (*asyncReadInfo)(native.Pointer(info))
	return AsyncRead{
		info:     info,
		File:     f,
		Offset:   n.offset,
		Size:     n.sizeBytes,
		Priority: int(n.priority),
	}
}

// ID identifies the engine request, letting Cancel find a queued read.
func (r AsyncRead) ID() uintptr { return r.info }

// Buffer returns the Size bytes to fill. It must not be used after Done.
func (r AsyncRead) Buffer() []byte {
	n := (*asyncReadInfo)(native.Pointer(r.info))
	if n.sizeBytes == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(native.Pointer(n.buffer)), n.sizeBytes)
}

// Done completes the request with the number of bytes written to Buffer. A
// short read without an error is reported as ErrFileEOF.
func (r AsyncRead) Done(n int, err error) {
	info := (*asyncReadInfo)(native.Pointer(r.info))
	info.bytesRead = uint32(n)
	if err == nil && uint32(n) < info.sizeBytes {
		err = ErrFileEOF
	}
	asyncDone(info.done, r.info, fileResult(err))
}

var asyncDone = func(done, info uintptr, result Error) {
	native.Call(done, info, uintptr(uint32(result)))
}

func asyncFileSystem(userData uintptr) (AsyncFileSystem, bool) {
	fsys, ok := fileSystems.load(userData)
	if !ok {
		return nil, false
	}
	afs, ok := fsys.(AsyncFileSystem)
	return afs, ok
}

func fileAsyncReadTrampoline(info, userData uintptr) uintptr {
	return catchPanic("file async read", func() error {
		(*asyncReadInfo)(native.Pointer(info)).bytesRead = 0
		fsys, ok := asyncFileSystem(userData)
		if !ok {
			return ErrFileBad
		}
		f, ok := openFiles.load((*asyncReadInfo)(native.Pointer(info)).handle)
		if !ok {
			return ErrInvalidHandle
		}
		if err := fsys.Read(newAsyncRead(info, f)); err != nil {
			return fileResult(err)
		}
		return nil
	})
}

func fileAsyncCancelTrampoline(info, userData uintptr) uintptr {
	return catchPanic("file async cancel", func() error {
		fsys, ok := asyncFileSystem(userData)
		if !ok {
			return ErrFileBad
		}
		f, _ := openFiles.load((*asyncReadInfo)(native.Pointer(info)).handle)
		if err := fsys.Cancel(newAsyncRead(info, f)); err != nil {
			return fileResult(err)
		}
		return nil
	})
}
