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
	"strings"
	"sync"

	"github.com/decred/slog"

	"github.com/fmodgo/fmod/internal/native"
)

// DebugMessage is one line of engine debug output.
type DebugMessage struct {
	Flags    DebugFlags
	File     string
	Line     int
	Function string
	Message  string
}

var (
	debugOnce    sync.Once
	debugMu      sync.RWMutex
	debugHandler func(DebugMessage) error

	debugCallback = lazyCallback{fn: debugTrampoline}
)

// DebugInitialize writes engine debug output to the terminal (DebugModeTTY).
//
// Only the first of DebugInitialize, DebugInitializeFile,
// DebugInitializeCallback, DebugInitializeLogger and NewSystem's default
// routing takes effect. Debug output requires the logging build of FMOD; other
// builds return ErrUnsupported.
func DebugInitialize(flags DebugFlags) error {
	return debugInitialize(flags, DebugModeTTY, nil, "")
}

// DebugInitializeFile writes engine debug output to filename.
func DebugInitializeFile(flags DebugFlags, filename string) error {
	return debugInitialize(flags, DebugModeFile, nil, filename)
}

// DebugInitializeCallback delivers engine debug output to fn.
func DebugInitializeCallback(flags DebugFlags, fn func(DebugMessage) error) error {
	return debugInitialize(flags, DebugModeCallback, fn, "")
}

// DebugInitializeLogger routes engine debug output to the package logger.
func DebugInitializeLogger(flags DebugFlags) error {
	return DebugInitializeCallback(flags, logDebugMessage)
}

func debugInitialize(flags DebugFlags, mode DebugMode, fn func(DebugMessage) error, filename string) error {
	return readLocked(func() error {
		var err error
		debugOnce.Do(func() {
			var cb uintptr
			if mode == DebugModeCallback {
				setDebugHandler(fn)
				cb = debugCallback.get()
			}
			err = check(lib.Debug_Initialize(uint32(flags), int32(mode), cb, filename))
		})
		return err
	})
}

// initDefaultDebug routes engine output to the package logger at a verbosity
// matching the logger level. It is a no-op when logging is disabled.
func initDefaultDebug() {
	flags, ok := debugFlagsForLevel(log.Level())
	if !ok {
		return
	}
	debugOnce.Do(func() {
		setDebugHandler(logDebugMessage)
		if err := check(lib.Debug_Initialize(uint32(flags), int32(DebugModeCallback), debugCallback.get(), "")); err != nil {
			log.Debugf("Engine debug output unavailable: %v", err)
		}
	})
}

func setDebugHandler(fn func(DebugMessage) error) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugHandler = fn
}

func debugFlagsForLevel(level slog.Level) (DebugFlags, bool) {
	switch level {
	case slog.LevelTrace:
		return DebugLevelLog | DebugTypeMemory | DebugTypeFile | DebugTypeCodec | DebugTypeTrace, true
	case slog.LevelDebug, slog.LevelInfo:
		return DebugLevelLog, true
	case slog.LevelWarn:
		return DebugLevelWarning, true
	case slog.LevelError, slog.LevelCritical:
		return DebugLevelError, true
	}
	return 0, false
}

func debugTrampoline(flags, file, line, function, message uintptr) uintptr {
	return catchPanic("debug", func() error {
		debugMu.RLock()
		h := debugHandler
		debugMu.RUnlock()
		if h == nil {
			return nil
		}
		return h(DebugMessage{
			Flags:    DebugFlags(flags),
			File:     strings.TrimSpace(native.GoString(file)),
			Line:     int(int32(line)),
			Function: strings.TrimSpace(native.GoString(function)),
			Message:  strings.TrimSpace(native.GoString(message)),
		})
	})
}

func logDebugMessage(m DebugMessage) error {
	switch {
	case m.Flags&DebugTypeMemory != 0:
		log.Errorf("[memory] %s: %s", m.Function, m.Message)
	case m.Flags&DebugTypeFile != 0:
		log.Errorf("[file] %s: %s", m.Function, m.Message)
	case m.Flags&DebugTypeCodec != 0:
		log.Errorf("[codec] %s: %s", m.Function, m.Message)
	case m.Flags&DebugTypeTrace != 0:
		log.Tracef("%s: %s", m.Function, m.Message)
	case m.Flags&DebugLevelLog != 0:
		log.Infof("%s: %s", m.Function, m.Message)
	case m.Flags&DebugLevelWarning != 0:
		log.Warnf("%s: %s", m.Function, m.Message)
	case m.Flags&DebugLevelError != 0:
		log.Errorf("%s: %s", m.Function, m.Message)
	default:
		log.Errorf("Debug message with unknown flags %v: %s", m.Flags, m.Message)
		return ErrInternal
	}
	return nil
}
