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
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/fmodgo/fmod/internal/native"
)

func TestFSPath(t *testing.T) {
	for in, want := range map[string]string{
		"a.wav":         "a.wav",
		"/sounds/a.wav": "sounds/a.wav",
		"sounds\\a.wav": "sounds/a.wav",
		"../../etc/x":   "etc/x",
		"/":             ".",
		"":              ".",
	} {
		if got := fsPath(in); got != want {
			t.Errorf("fsPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileTrampolines(t *testing.T) {
	cookie := newCookie()
	fileSystems.store(cookie, fstest.MapFS{
		"sounds/a.wav": {Data: []byte("0123456789")},
	})
	t.Cleanup(func() { fileSystems.delete(cookie) })

	size, sizeAddr := alloc[uint32]()
	handle, handleAddr := alloc[uintptr]()
	if r := fileOpenTrampoline(cstr("sounds\\a.wav"), sizeAddr, handleAddr, cookie); r != 0 {
		t.Fatalf("open = %v", Error(r))
	}
	if *size != 10 {
		t.Errorf("size = %d, want 10", *size)
	}
	h := *handle

	buf, bufAddr := alloc[[8]byte]()
	n, nAddr := alloc[uint32]()
	if r := fileReadTrampoline(h, bufAddr, 4, nAddr, cookie); r != 0 {
		t.Fatalf("read = %v", Error(r))
	}
	if *n != 4 || string(buf[:4]) != "0123" {
		t.Errorf("read %d bytes %q", *n, buf[:*n])
	}

	// A short read reports how much was read and the end of the file.
	if r := fileReadTrampoline(h, bufAddr, 8, nAddr, cookie); r != uintptr(ErrFileEOF) {
		t.Errorf("short read = %v, want ErrFileEOF", Error(r))
	}
	if *n != 6 || string(buf[:6]) != "456789" {
		t.Errorf("short read %d bytes %q", *n, buf[:*n])
	}

	if r := fileSeekTrampoline(h, 2, cookie); r != 0 {
		t.Fatalf("seek = %v", Error(r))
	}
	if r := fileReadTrampoline(h, bufAddr, 3, nAddr, cookie); r != 0 || string(buf[:3]) != "234" {
		t.Errorf("read after seek = %v, %q", Error(r), buf[:3])
	}

	if r := fileCloseTrampoline(h, cookie); r != 0 {
		t.Errorf("close = %v", Error(r))
	}
	if r := fileCloseTrampoline(h, cookie); r != uintptr(ErrInvalidHandle) {
		t.Errorf("second close = %v, want ErrInvalidHandle", Error(r))
	}
	if r := fileReadTrampoline(h, bufAddr, 1, nAddr, cookie); r != uintptr(ErrInvalidHandle) {
		t.Errorf("read after close = %v, want ErrInvalidHandle", Error(r))
	}
}

func TestFileOpenMissing(t *testing.T) {
	cookie := newCookie()
	fileSystems.store(cookie, fstest.MapFS{})
	t.Cleanup(func() { fileSystems.delete(cookie) })

	_, sizeAddr := alloc[uint32]()
	_, handleAddr := alloc[uintptr]()
	if r := fileOpenTrampoline(cstr("nope.ogg"), sizeAddr, handleAddr, cookie); r != uintptr(ErrFileNotFound) {
		t.Errorf("open missing file = %v, want ErrFileNotFound", Error(r))
	}
	if r := fileOpenTrampoline(cstr("nope.ogg"), sizeAddr, handleAddr, newCookie()); r != uintptr(ErrFileNotFound) {
		t.Errorf("open without a file system = %v, want ErrFileNotFound", Error(r))
	}
}

func TestSetFileSystemNil(t *testing.T) {
	var calls int
	withFakeLibrary(t, &native.Lib{
		System_SetFileSystem: func(system, open, close, read, seek, asyncRead, asyncCancel uintptr, blockAlign int32) int32 {
			calls++
			if open != 0 || close != 0 || read != 0 || seek != 0 {
				t.Error("callbacks installed when restoring the default file system")
			}
			return 0
		},
	})
	fileSystems.store(systemFileSystemKey, fstest.MapFS{})
	if err := (System{raw: 1}).SetFileSystem(nil, -1); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("System_SetFileSystem called %d times", calls)
	}
	if _, ok := fileSystems.load(systemFileSystemKey); ok {
		t.Error("file system still registered")
	}
}

// sizedFile is an empty file that reports an arbitrary size.
type sizedFile int64

func (f sizedFile) Open(string) (fs.File, error) { return f, nil }
func (f sizedFile) Stat() (fs.FileInfo, error) { return f, nil }
func (sizedFile) Read([]byte) (int, error) { return 0, io.EOF }
func (sizedFile) Close() error { return nil }
func (sizedFile) Name() string { return "big.wav" }
func (f sizedFile) Size() int64 { return int64(f) }
func (sizedFile) Mode() fs.FileMode { return 0 }
func (sizedFile) ModTime() time.Time { return time.Time{} }
func (sizedFile) IsDir() bool { return false }
func (sizedFile) Sys() any { return nil }

func TestFileOpenTooLarge(t *testing.T) {
	for _, size := range []int64{1<<32 + 10, -1} {
		cookie := newCookie()
		fileSystems.store(cookie, sizedFile(size))
		t.Cleanup(func() { fileSystems.delete(cookie) })

		before := openFiles.len()
		fileSize, sizeAddr := alloc[uint32]()
		_, handleAddr := alloc[uintptr]()
		if r := fileOpenTrampoline(cstr("big.wav"), sizeAddr, handleAddr, cookie); r != uintptr(ErrFileBad) {
			t.Errorf("open file of size %d = %v, want ErrFileBad", size, Error(r))
		}
		if *fileSize != 0 {
			t.Errorf("size %d reported as %d", size, *fileSize)
		}
		if openFiles.len() != before {
			t.Errorf("file of size %d left open", size)
		}
	}
}

type panicFS struct{}

func (panicFS) Open(string) (fs.File, error) { panic("open") }

func TestFileCallbackPanics(t *testing.T) {
	cookie := newCookie()
	fileSystems.store(cookie, panicFS{})
	t.Cleanup(func() { fileSystems.delete(cookie) })

	_, sizeAddr := alloc[uint32]()
	_, handleAddr := alloc[uintptr]()
	if r := fileOpenTrampoline(cstr("a.wav"), sizeAddr, handleAddr, cookie); r != uintptr(ErrInternal) {
		t.Errorf("panicking open = %v, want ErrInternal", Error(r))
	}
}

type recordingListener struct {
	events []string
	read   []byte
}

func (l *recordingListener) FileOpened(name string, size uint32, handle uintptr) {
	l.events = append(l.events, "open "+name)
	if size != 10 || handle != 0x77 {
		l.events = append(l.events, "bad open args")
	}
}

func (l *recordingListener) FileClosed(handle uintptr) { l.events = append(l.events, "close") }

func (l *recordingListener) FileRead(handle uintptr, data []byte, eof bool) {
	l.read = append(l.read, data...)
	if eof {
		l.events = append(l.events, "read eof")
	} else {
		l.events = append(l.events, "read")
	}
}

func (l *recordingListener) FileSeeked(handle uintptr, pos uint32) {
	if pos == 3 {
		l.events = append(l.events, "seek")
	}
}

func TestFileListenerTrampolines(t *testing.T) {
	l := &recordingListener{}
	fileListeners.store(systemFileSystemKey, l)
	t.Cleanup(func() { fileListeners.delete(systemFileSystemKey) })

	size, sizeAddr := alloc[uint32]()
	handle, handleAddr := alloc[uintptr]()
	*size, *handle = 10, 0x77
	if r := listenOpenTrampoline(cstr("music/a.ogg"), sizeAddr, handleAddr, 0); r != 0 {
		t.Fatalf("open = %v", Error(r))
	}

	buf, bufAddr := alloc[[8]byte]()
	copy(buf[:], "abcdefgh")
	n, nAddr := alloc[uint32]()
	*n = 8
	listenReadTrampoline(0x77, bufAddr, 8, nAddr, 0)
	*n = 2
	listenReadTrampoline(0x77, bufAddr, 8, nAddr, 0)
	listenSeekTrampoline(0x77, 3, 0)
	listenCloseTrampoline(0x77, 0)

	want := []string{"open music/a.ogg", "read", "read eof", "seek", "close"}
	if len(l.events) != len(want) {
		t.Fatalf("events = %q, want %q", l.events, want)
	}
	for i := range want {
		if l.events[i] != want[i] {
			t.Errorf("events = %q, want %q", l.events, want)
			break
		}
	}
	if string(l.read) != "abcdefghab" {
		t.Errorf("read %q", l.read)
	}
}

func TestAttachFileSystem(t *testing.T) {
	var installed bool
	withFakeLibrary(t, &native.Lib{
		System_AttachFileSystem: func(system, open, close, read, seek uintptr) int32 {
			installed = open != 0 || close != 0 || read != 0 || seek != 0
			return 0
		},
	})
	fileListeners.store(systemFileSystemKey, &recordingListener{})
	if err := (System{raw: 1}).AttachFileSystem(nil); err != nil {
		t.Fatal(err)
	}
	if installed {
		t.Error("callbacks installed when detaching")
	}
	if _, ok := fileListeners.load(systemFileSystemKey); ok {
		t.Error("listener still registered")
	}
	// Without a listener the trampolines do nothing.
	if r := listenCloseTrampoline(0x77, 0); r != 0 {
		t.Errorf("close without a listener = %v", Error(r))
	}
}

// queueFS serves async reads when serve is called.
type queueFS struct {
	fstest.MapFS
	queued    []AsyncRead
	cancelled []uintptr
}

func (q *queueFS) Read(req AsyncRead) error {
	q.queued = append(q.queued, req)
	return nil
}

func (q *queueFS) Cancel(req AsyncRead) error {
	q.cancelled = append(q.cancelled, req.ID())
	return nil
}

func (q *queueFS) serve() {
	for _, req := range q.queued {
		n, err := req.File.(io.ReaderAt).ReadAt(req.Buffer(), int64(req.Offset))
		req.Done(n, err)
	}
	q.queued = nil
}

func TestAsyncReadTrampolines(t *testing.T) {
	results := map[uintptr]Error{}
	done := asyncDone
	asyncDone = func(fn, info uintptr, result Error) {
		if fn != 0x99 {
			t.Errorf("done func = %#x", fn)
		}
		results[info] = result
	}
	t.Cleanup(func() { asyncDone = done })

	cookie := newCookie()
	q := &queueFS{MapFS: fstest.MapFS{"a.raw": {Data: []byte("0123456789")}}}
	fileSystems.store(cookie, q)
	t.Cleanup(func() { fileSystems.delete(cookie) })

	_, sizeAddr := alloc[uint32]()
	handle, handleAddr := alloc[uintptr]()
	if r := fileOpenTrampoline(cstr("a.raw"), sizeAddr, handleAddr, cookie); r != 0 {
		t.Fatalf("open = %v", Error(r))
	}
	t.Cleanup(func() { fileCloseTrampoline(*handle, cookie) })

	buf, bufAddr := alloc[[4]byte]()
	full, fullAddr := alloc[asyncReadInfo]()
	*full = asyncReadInfo{handle: *handle, offset: 2, sizeBytes: 4, priority: 50, buffer: bufAddr, bytesRead: 9, done: 0x99}
	tail, tailAddr := alloc[asyncReadInfo]()
	*tail = asyncReadInfo{handle: *handle, offset: 8, sizeBytes: 4, buffer: bufAddr, done: 0x99}

	if r := fileAsyncReadTrampoline(fullAddr, cookie); r != 0 {
		t.Fatalf("async read = %v", Error(r))
	}
	if full.bytesRead != 0 {
		t.Errorf("bytes read not reset before queueing: %d", full.bytesRead)
	}
	if len(q.queued) != 1 || q.queued[0].Priority != 50 || q.queued[0].Offset != 2 {
		t.Fatalf("queued = %+v", q.queued)
	}
	q.serve()
	if r, ok := results[fullAddr]; !ok || r != 0 || full.bytesRead != 4 || string(buf[:]) != "2345" {
		t.Errorf("full read: result %v, %d bytes %q", r, full.bytesRead, buf[:])
	}

	if r := fileAsyncReadTrampoline(tailAddr, cookie); r != 0 {
		t.Fatalf("async read = %v", Error(r))
	}
	q.serve()
	if r := results[tailAddr]; r != ErrFileEOF || tail.bytesRead != 2 {
		t.Errorf("tail read: result %v, %d bytes", r, tail.bytesRead)
	}

	if r := fileAsyncCancelTrampoline(tailAddr, cookie); r != 0 {
		t.Errorf("cancel = %v", Error(r))
	}
	if len(q.cancelled) != 1 || q.cancelled[0] != tailAddr {
		t.Errorf("cancelled = %v", q.cancelled)
	}

	// A plain fs.FS cannot serve async reads.
	plain := newCookie()
	fileSystems.store(plain, fstest.MapFS{})
	t.Cleanup(func() { fileSystems.delete(plain) })
	if r := fileAsyncReadTrampoline(fullAddr, plain); r != uintptr(ErrFileBad) {
		t.Errorf("async read on a plain fs.FS = %v, want ErrFileBad", Error(r))
	}
}
