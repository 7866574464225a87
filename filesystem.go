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
	"errors"
	"io"
	"io/fs"
	"math"
	"path"
	"strings"
	"unsafe"

	"github.com/fmodgo/fmod/internal/native"
)

// systemFileSystemKey is the userdata the engine passes to file callbacks
// installed with System.SetFileSystem.
const systemFileSystemKey = 0

var (
	fileSystems   registry[fs.FS]
	openFiles     registry[fs.File]
	fileListeners registry[FileListener]

	fileOpenCallback        = lazyCallback{fn: fileOpenTrampoline}
	fileCloseCallback       = lazyCallback{fn: fileCloseTrampoline}
	fileReadCallback        = lazyCallback{fn: fileReadTrampoline}
	fileSeekCallback        = lazyCallback{fn: fileSeekTrampoline}
	fileAsyncReadCallback   = lazyCallback{fn: fileAsyncReadTrampoline}
	fileAsyncCancelCallback = lazyCallback{fn: fileAsyncCancelTrampoline}

	listenOpenCallback  = lazyCallback{fn: listenOpenTrampoline}
	listenCloseCallback = lazyCallback{fn: listenCloseTrampoline}
	listenReadCallback  = lazyCallback{fn: listenReadTrampoline}
	listenSeekCallback  = lazyCallback{fn: listenSeekTrampoline}
)

// SetFileSystem makes the engine read every file through fsys. Names passed
// to CreateSound and CreateStream are resolved as slash-separated paths
// relative to the root of fsys. Files that implement io.Seeker can be
// seeked.
//
// A nil fsys restores the default file system. blockAlign is the engine's
// read granularity in bytes; -1 keeps the default of 2048.
//
// The engine passes no System to file callbacks, so the file system is shared
// by every System in the process.
func (s System) SetFileSystem(fsys fs.FS, blockAlign int) error {
	if fsys == nil {
		if err := check(lib.System_SetFileSystem(s.raw, 0, 0, 0, 0, 0, 0, int32(blockAlign))); err != nil {
			return err
		}
		fileSystems.delete(systemFileSystemKey)
		return nil
	}
	fileSystems.store(systemFileSystemKey, fsys)
	return check(lib.System_SetFileSystem(s.raw,
		fileOpenCallback.get(), fileCloseCallback.get(), fileReadCallback.get(), fileSeekCallback.get(),
		0, 0, int32(blockAlign)))
}

// SetAsyncFileSystem is like SetFileSystem but hands reads to fsys as
// AsyncRead requests that may complete later on another goroutine.
func (s System) SetAsyncFileSystem(fsys AsyncFileSystem, blockAlign int) error {
	if fsys == nil {
		return s.SetFileSystem(nil, blockAlign)
	}
	fileSystems.store(systemFileSystemKey, fsys)
	return check(lib.System_SetFileSystem(s.raw,
		fileOpenCallback.get(), fileCloseCallback.get(), 0, 0,
		fileAsyncReadCallback.get(), fileAsyncCancelCallback.get(), int32(blockAlign)))
}

// FileListener observes the file I/O the engine performs itself. It is told
// about each operation after it happened and cannot change the outcome.
// Handles are the engine's own and only identify files across calls.
type FileListener interface {
	FileOpened(name string, size uint32, handle uintptr)
	FileClosed(handle uintptr)
	// FileRead receives the bytes read. data is only valid during the call.
	FileRead(handle uintptr, data []byte, eof bool)
	FileSeeked(handle uintptr, pos uint32)
}

// AttachFileSystem makes the engine report its file I/O to l, which is useful
// for capturing data from sources such as internet streams. A nil l detaches
// the listener. Like SetFileSystem, the listener is shared by every System.
func (s System) AttachFileSystem(l FileListener) error {
	if l == nil {
		if err := check(lib.System_AttachFileSystem(s.raw, 0, 0, 0, 0)); err != nil {
			return err
		}
		fileListeners.delete(systemFileSystemKey)
		return nil
	}
	fileListeners.store(systemFileSystemKey, l)
	return check(lib.System_AttachFileSystem(s.raw,
		listenOpenCallback.get(), listenCloseCallback.get(), listenReadCallback.get(), listenSeekCallback.get()))
}

func fsPath(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	if name == "/" {
		return "."
	}
	return name[1:]
}

func fileError(err error) Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrFileEOF
	}
	return ErrFileBad
}

// fileResult maps an error from fs.FS code to a file result, keeping engine
// errors as they are.
func fileResult(err error) Error {
	if err == nil {
		return 0
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return fileError(err)
}

func fileOpenTrampoline(name, fileSize, handle, userData uintptr) uintptr {
	return catchPanic("file open", func() error {
		fsys, ok := fileSystems.load(userData)
		if !ok {
			return ErrFileNotFound
		}
		f, err := fsys.Open(fsPath(native.GoString(name)))
		if err != nil {
			return fileError(err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return fileError(err)
		}
		size := info.Size()
		if size < 0 || size > math.MaxUint32 {
			f.Close()
			return ErrFileBad
		}
		id := newCookie()
		openFiles.store(id, f)
		*(*uint32)(native.Pointer(fileSize)) = uint32(size)
		*(*uintptr)(native.Pointer(handle)) = id
		return nil
	})
}

func fileCloseTrampoline(handle, userData uintptr) uintptr {
	return catchPanic("file close", func() error {
		f, ok := openFiles.load(handle)
		if !ok {
			return ErrInvalidHandle
		}
		openFiles.delete(handle)
		if err := f.Close(); err != nil {
			log.Warnf("Closing file: %v", err)
		}
		return nil
	})
}

func fileReadTrampoline(handle, buffer, size, bytesRead, userData uintptr) uintptr {
	return catchPanic("file read", func() error {
		f, ok := openFiles.load(handle)
		if !ok {
			return ErrInvalidHandle
		}
		want := uint32(size)
		buf := unsafe.Slice((*byte)(native.Pointer(buffer)), want)
		n, err := io.ReadFull(f, buf)
		*(*uint32)(native.Pointer(bytesRead)) = uint32(n)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return fileError(err)
		}
		if uint32(n) < want {
			return ErrFileEOF
		}
		return nil
	})
}

func fileSeekTrampoline(handle, pos, userData uintptr) uintptr {
	return catchPanic("file seek", func() error {
		f, ok := openFiles.load(handle)
		if !ok {
			return ErrInvalidHandle
		}
		seeker, ok := f.(io.Seeker)
		if !ok {
			return ErrFileCouldNotSeek
		}
		if _, err := seeker.Seek(int64(uint32(pos)), io.SeekStart); err != nil {
			return ErrFileCouldNotSeek
		}
		return nil
	})
}

func listener() (FileListener, bool) {
	return fileListeners.load(systemFileSystemKey)
}

func listenOpenTrampoline(name, fileSize, handle, userData uintptr) uintptr {
	return catchPanic("file listen open", func() error {
		if l, ok := listener(); ok {
			l.FileOpened(native.GoString(name), *(*uint32)(native.Pointer(fileSize)), *(*uintptr)(native.Pointer(handle)))
		}
		return nil
	})
}

func listenCloseTrampoline(handle, userData uintptr) uintptr {
	return catchPanic("file listen close", func() error {
		if l, ok := listener(); ok {
			l.FileClosed(handle)
		}
		return nil
	})
}

func listenReadTrampoline(handle, buffer, size, bytesRead, userData uintptr) uintptr {
	return catchPanic("file listen read", func() error {
		l, ok := listener()
		if !ok {
			return nil
		}
		n := *(*uint32)(native.Pointer(bytesRead))
		var data []byte
		if n > 0 {
			data = unsafe.Slice((*byte)(native.Pointer(buffer)), n)
		}
		l.FileRead(handle, data, n < uint32(size))
		return nil
	})
}

func listenSeekTrampoline(handle, pos, userData uintptr) uintptr {
	return catchPanic("file listen seek", func() error {
		if l, ok := listener(); ok {
			l.FileSeeked(handle, uint32(pos))
		}
		return nil
	})
}
