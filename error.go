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
	"fmt"
)

// Error is a status code returned by the FMOD engine.
//
// Errors compare with ==, or with errors.Is after wrapping.
type Error int32

const (
	ErrBadCommand Error = iota + 1
	ErrChannelAlloc
	ErrChannelStolen
	ErrDMA
	ErrDSPConnection
	ErrDSPDontProcess
	ErrDSPFormat
	ErrDSPInUse
	ErrDSPNotFound
	ErrDSPReserved
	ErrDSPSilence
	ErrDSPType
	ErrFileBad
	ErrFileCouldNotSeek
	ErrFileDiskEjected
	ErrFileEOF
	ErrFileEndOfData
	ErrFileNotFound
	ErrFormat
	ErrHeaderMismatch
	ErrHTTP
	ErrHTTPAccess
	ErrHTTPProxyAuth
	ErrHTTPServerError
	ErrHTTPTimeout
	ErrInitialization
	ErrInitialized
	ErrInternal
	ErrInvalidFloat
	ErrInvalidHandle
	ErrInvalidParam
	ErrInvalidPosition
	ErrInvalidSpeaker
	ErrInvalidSyncPoint
	ErrInvalidThread
	ErrInvalidVector
	ErrMaxAudible
	ErrMemory
	ErrMemoryCantPoint
	ErrNeeds3D
	ErrNeedsHardware
	ErrNetConnect
	ErrNetSocketError
	ErrNetURL
	ErrNetWouldBlock
	ErrNotReady
	ErrOutputAllocated
	ErrOutputCreateBuffer
	ErrOutputDriverCall
	ErrOutputFormat
	ErrOutputInit
	ErrOutputNoDrivers
	ErrPlugin
	ErrPluginMissing
	ErrPluginResource
	ErrPluginVersion
	ErrRecord
	ErrReverbChannelGroup
	ErrReverbInstance
	ErrSubSounds
	ErrSubSoundAllocated
	ErrSubSoundCantMove
	ErrTagNotFound
	ErrTooManyChannels
	ErrTruncated
	ErrUnimplemented
	ErrUninitialized
	ErrUnsupported
	ErrVersion
	ErrEventAlreadyLoaded
	ErrEventLiveUpdateBusy
	ErrEventLiveUpdateMismatch
	ErrEventLiveUpdateTimeout
	ErrEventNotFound
	ErrStudioUninitialized
	ErrStudioNotLoaded
	ErrInvalidString
	ErrAlreadyLocked
	ErrNotLocked
	ErrRecordDisconnected
	ErrTooManySamples
)

// ErrNotLoaded is returned when the FMOD shared library could not be loaded.
var ErrNotLoaded = errors.New("fmod: the FMOD shared library is not loaded")

var errorStrings = [...]string{
	ErrBadCommand:              "Tried to call a function on a data type that does not allow this type of functionality (ie calling Sound::lock on a streaming sound).",
	ErrChannelAlloc:            "Error trying to allocate a channel.",
	ErrChannelStolen:           "The specified channel has been reused to play another sound.",
	ErrDMA:                     "DMA Failure.  See debug output for more information.",
	ErrDSPConnection:           "DSP connection error.  Connection possibly caused a cyclic dependency or connected dsps with incompatible buffer counts.",
	ErrDSPDontProcess:          "DSP return code from a DSP process query callback.  Tells mixer not to call the process callback and therefore not consume CPU.  Use this to optimize the DSP graph.",
	ErrDSPFormat:               "DSP Format error.  A DSP unit may have attempted to connect to this network with the wrong format, or a matrix may have been set with the wrong size if the target unit has a specified channel map.",
	ErrDSPInUse:                "DSP is already in the mixer's DSP network. It must be removed before being reinserted or released.",
	ErrDSPNotFound:             "DSP connection error.  Couldn't find the DSP unit specified.",
	ErrDSPReserved:             "DSP operation error.  Cannot perform operation on this DSP as it is reserved by the system.",
	ErrDSPSilence:              "DSP return code from a DSP process query callback.  Tells mixer silence would be produced from read, so go idle and not consume CPU.  Use this to optimize the DSP graph.",
	ErrDSPType:                 "DSP operation cannot be performed on a DSP of this type.",
	ErrFileBad:                 "Error loading file.",
	ErrFileCouldNotSeek:        "Couldn't perform seek operation.  This is a limitation of the medium (ie netstreams) or the file format.",
	ErrFileDiskEjected:         "Media was ejected while reading.",
	ErrFileEOF:                 "End of file unexpectedly reached while trying to read essential data (truncated?).",
	ErrFileEndOfData:           "End of current chunk reached while trying to read data.",
	ErrFileNotFound:            "File not found.",
	ErrFormat:                  "Unsupported file or audio format.",
	ErrHeaderMismatch:          "There is a version mismatch between the FMOD header and either the FMOD Studio library or the FMOD Low Level library.",
	ErrHTTP:                    "A HTTP error occurred. This is a catch-all for HTTP errors not listed elsewhere.",
	ErrHTTPAccess:              "The specified resource requires authentication or is forbidden.",
	ErrHTTPProxyAuth:           "Proxy authentication is required to access the specified resource.",
	ErrHTTPServerError:         "A HTTP server error occurred.",
	ErrHTTPTimeout:             "The HTTP request timed out.",
	ErrInitialization:          "FMOD was not initialized correctly to support this function.",
	ErrInitialized:             "Cannot call this command after System::init.",
	ErrInternal:                "An error occurred that wasn't supposed to.  Contact support.",
	ErrInvalidFloat:            "Value passed in was a NaN, Inf or denormalized float.",
	ErrInvalidHandle:           "An invalid object handle was used.",
	ErrInvalidParam:            "An invalid parameter was passed to this function.",
	ErrInvalidPosition:         "An invalid seek position was passed to this function.",
	ErrInvalidSpeaker:          "An invalid speaker was passed to this function based on the current speaker mode.",
	ErrInvalidSyncPoint:        "The syncpoint did not come from this sound handle.",
	ErrInvalidThread:           "Tried to call a function on a thread that is not supported.",
	ErrInvalidVector:           "The vectors passed in are not unit length, or perpendicular.",
	ErrMaxAudible:              "Reached maximum audible playback count for this sound's soundgroup.",
	ErrMemory:                  "Not enough memory or resources.",
	ErrMemoryCantPoint:         "Can't use FMOD_OPENMEMORY_POINT on non PCM source data, or non mp3/xma/adpcm data if FMOD_CREATECOMPRESSEDSAMPLE was used.",
	ErrNeeds3D:                 "Tried to call a command on a 2d sound when the command was meant for 3d sound.",
	ErrNeedsHardware:           "Tried to use a feature that requires hardware support.",
	ErrNetConnect:              "Couldn't connect to the specified host.",
	ErrNetSocketError:          "A socket error occurred.  This is a catch-all for socket-related errors not listed elsewhere.",
	ErrNetURL:                  "The specified URL couldn't be resolved.",
	ErrNetWouldBlock:           "Operation on a non-blocking socket could not complete immediately.",
	ErrNotReady:                "Operation could not be performed because specified sound/DSP connection is not ready.",
	ErrOutputAllocated:         "Error initializing output device, but more specifically, the output device is already in use and cannot be reused.",
	ErrOutputCreateBuffer:      "Error creating hardware sound buffer.",
	ErrOutputDriverCall:        "A call to a standard soundcard driver failed, which could possibly mean a bug in the driver or resources were missing or exhausted.",
	ErrOutputFormat:            "Soundcard does not support the specified format.",
	ErrOutputInit:              "Error initializing output device.",
	ErrOutputNoDrivers:         "The output device has no drivers installed.  If pre-init, FMOD_OUTPUT_NOSOUND is selected as the output mode.  If post-init, the function just fails.",
	ErrPlugin:                  "An unspecified error has been returned from a plugin.",
	ErrPluginMissing:           "A requested output, dsp unit type or codec was not available.",
	ErrPluginResource:          "A resource that the plugin requires cannot be allocated or found. (ie the DLS file for MIDI playback)",
	ErrPluginVersion:           "A plugin was built with an unsupported SDK version.",
	ErrRecord:                  "An error occurred trying to initialize the recording device.",
	ErrReverbChannelGroup:      "Reverb properties cannot be set on this channel because a parent channelgroup owns the reverb connection.",
	ErrReverbInstance:          "Specified instance in FMOD_REVERB_PROPERTIES couldn't be set. Most likely because it is an invalid instance number or the reverb doesn't exist.",
	ErrSubSounds:               "The error occurred because the sound referenced contains subsounds when it shouldn't have, or it doesn't contain subsounds when it should have.  The operation may also not be able to be performed on a parent sound.",
	ErrSubSoundAllocated:       "This subsound is already being used by another sound, you cannot have more than one parent to a sound.  Null out the other parent's entry first.",
	ErrSubSoundCantMove:        "Shared subsounds cannot be replaced or moved from their parent stream, such as when the parent stream is an FSB file.",
	ErrTagNotFound:             "The specified tag could not be found or there are no tags.",
	ErrTooManyChannels:         "The sound created exceeds the allowable input channel count.  This can be increased using the 'maxinputchannels' parameter in System::setSoftwareFormat.",
	ErrTruncated:               "The retrieved string is too long to fit in the supplied buffer and has been truncated.",
	ErrUnimplemented:           "Something in FMOD hasn't been implemented when it should be! contact support!",
	ErrUninitialized:           "This command failed because System::init or System::setDriver was not called.",
	ErrUnsupported:             "A command issued was not supported by this object.  Possibly a plugin without certain callbacks specified.",
	ErrVersion:                 "The version number of this file format is not supported.",
	ErrEventAlreadyLoaded:      "The specified bank has already been loaded.",
	ErrEventLiveUpdateBusy:     "The live update connection failed due to the game already being connected.",
	ErrEventLiveUpdateMismatch: "The live update connection failed due to the game data being out of sync with the tool.",
	ErrEventLiveUpdateTimeout:  "The live update connection timed out.",
	ErrEventNotFound:           "The requested event, parameter, bus or vca could not be found.",
	ErrStudioUninitialized:     "The Studio::System object is not yet initialized.",
	ErrStudioNotLoaded:         "The specified resource is not loaded, so it can't be unloaded.",
	ErrInvalidString:           "An invalid string was passed to this function.",
	ErrAlreadyLocked:           "The specified resource is already locked.",
	ErrNotLocked:               "The specified resource is not locked, so it can't be unlocked.",
	ErrRecordDisconnected:      "The specified recording driver has been disconnected.",
	ErrTooManySamples:          "The length provided exceeds the allowable limit.",
}

func (e Error) Error() string {
	if e > 0 && int(e) < len(errorStrings) {
		return errorStrings[e]
	}
	return fmt.Sprintf("Unknown error (%d).", int32(e))
}

// check converts an FMOD_RESULT into an error.
func check(result int32) error {
	if result == 0 {
		return nil
	}
	return Error(result)
}

// resultOf converts err into the FMOD_RESULT a callback hands back to the engine.
func resultOf(err error) uintptr {
	if err == nil {
		return 0
	}
	var e Error
	if errors.As(err, &e) {
		return uintptr(uint32(e))
	}
	return uintptr(ErrInternal)
}
