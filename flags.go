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
	"strings"
)

type flagName struct {
	bit  uint64
	name string
}

func flagsString(v uint64, names []flagName) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	rest := v
	for _, n := range names {
		if n.bit != 0 && v&n.bit == n.bit && rest&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(parts, "|")
}

// InitFlags configure System initialization.
type InitFlags uint32

const (
	InitNormal                InitFlags = 0x00000000
	InitStreamFromUpdate      InitFlags = 0x00000001
	InitMixFromUpdate         InitFlags = 0x00000002
	Init3DRightHanded         InitFlags = 0x00000004
	InitClipOutput            InitFlags = 0x00000008
	InitChannelLowpass        InitFlags = 0x00000100
	InitChannelDistanceFilter InitFlags = 0x00000200
	InitProfileEnable         InitFlags = 0x00010000
	InitVol0BecomesVirtual    InitFlags = 0x00020000
	InitGeometryUseClosest    InitFlags = 0x00040000
	InitPreferDolbyDownmix    InitFlags = 0x00080000
	InitThreadUnsafe          InitFlags = 0x00100000
	InitProfileMeterAll       InitFlags = 0x00200000
	InitMemoryTracking        InitFlags = 0x00400000
)

var initFlagNames = []flagName{
	{0x1, "StreamFromUpdate"}, {0x2, "MixFromUpdate"}, {0x4, "3DRightHanded"},
	{0x8, "ClipOutput"}, {0x100, "ChannelLowpass"}, {0x200, "ChannelDistanceFilter"},
	{0x10000, "ProfileEnable"}, {0x20000, "Vol0BecomesVirtual"},
	{0x40000, "GeometryUseClosest"}, {0x80000, "PreferDolbyDownmix"},
	{0x100000, "ThreadUnsafe"}, {0x200000, "ProfileMeterAll"},
	{0x400000, "MemoryTracking"},
}

func (f InitFlags) String() string { return flagsString(uint64(f), initFlagNames) }

// ParseInitFlags parses a "|"-separated list of flag names such as
// "ChannelLowpass|ProfileEnable".
func ParseInitFlags(s string) (InitFlags, error) {
	var f InitFlags
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "Normal") {
			continue
		}
		found := false
		for _, n := range initFlagNames {
			if strings.EqualFold(n.name, part) {
				f |= InitFlags(n.bit)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("fmod: unknown init flag %q", part)
		}
	}
	return f, nil
}

// Mode configures how a sound is opened and played.
type Mode uint32

const (
	ModeDefault                 Mode = 0x00000000
	ModeLoopOff                 Mode = 0x00000001
	ModeLoopNormal              Mode = 0x00000002
	ModeLoopBidi                Mode = 0x00000004
	Mode2D                      Mode = 0x00000008
	Mode3D                      Mode = 0x00000010
	ModeCreateStream            Mode = 0x00000080
	ModeCreateSample            Mode = 0x00000100
	ModeCreateCompressedSample  Mode = 0x00000200
	ModeOpenUser                Mode = 0x00000400
	ModeOpenMemory              Mode = 0x00000800
	ModeOpenMemoryPoint         Mode = 0x10000000
	ModeOpenRaw                 Mode = 0x00001000
	ModeOpenOnly                Mode = 0x00002000
	ModeAccurateTime            Mode = 0x00004000
	ModeMPEGSearch              Mode = 0x00008000
	ModeNonBlocking             Mode = 0x00010000
	ModeUnique                  Mode = 0x00020000
	Mode3DHeadRelative          Mode = 0x00040000
	Mode3DWorldRelative         Mode = 0x00080000
	Mode3DInverseRolloff        Mode = 0x00100000
	Mode3DLinearRolloff         Mode = 0x00200000
	Mode3DLinearSquareRolloff   Mode = 0x00400000
	Mode3DInverseTaperedRolloff Mode = 0x00800000
	Mode3DCustomRolloff         Mode = 0x04000000
	Mode3DIgnoreGeometry        Mode = 0x40000000
	ModeIgnoreTags              Mode = 0x02000000
	ModeLowMem                  Mode = 0x08000000
	ModeVirtualPlayFromStart    Mode = 0x80000000
)

// modeUserData is the set of modes that treat the name argument of sound
// creation as something other than a path.
const modeUserData = ModeOpenUser | ModeOpenMemory | ModeOpenMemoryPoint | ModeOpenRaw

var modeNames = []flagName{
	{0x1, "LoopOff"}, {0x2, "LoopNormal"}, {0x4, "LoopBidi"}, {0x8, "2D"}, {0x10, "3D"},
	{0x80, "CreateStream"}, {0x100, "CreateSample"}, {0x200, "CreateCompressedSample"},
	{0x400, "OpenUser"}, {0x800, "OpenMemory"}, {0x10000000, "OpenMemoryPoint"},
	{0x1000, "OpenRaw"}, {0x2000, "OpenOnly"}, {0x4000, "AccurateTime"},
	{0x8000, "MPEGSearch"}, {0x10000, "NonBlocking"}, {0x20000, "Unique"},
	{0x40000, "3DHeadRelative"}, {0x80000, "3DWorldRelative"},
	{0x100000, "3DInverseRolloff"}, {0x200000, "3DLinearRolloff"},
	{0x400000, "3DLinearSquareRolloff"}, {0x800000, "3DInverseTaperedRolloff"},
	{0x4000000, "3DCustomRolloff"}, {0x40000000, "3DIgnoreGeometry"},
	{0x2000000, "IgnoreTags"}, {0x8000000, "LowMem"},
	{0x80000000, "VirtualPlayFromStart"},
}

func (m Mode) String() string {
	if m == ModeDefault {
		return "Default"
	}
	return flagsString(uint64(m), modeNames)
}

// TimeUnit selects the unit of a time or length value.
type TimeUnit uint32

const (
	TimeUnitMS          TimeUnit = 0x00000001
	TimeUnitPCM         TimeUnit = 0x00000002
	TimeUnitPCMBytes    TimeUnit = 0x00000004
	TimeUnitRawBytes    TimeUnit = 0x00000008
	TimeUnitPCMFraction TimeUnit = 0x00000010
	TimeUnitModOrder    TimeUnit = 0x00000100
	TimeUnitModRow      TimeUnit = 0x00000200
	TimeUnitModPattern  TimeUnit = 0x00000400
)

var timeUnitNames = []flagName{
	{0x1, "MS"}, {0x2, "PCM"}, {0x4, "PCMBytes"}, {0x8, "RawBytes"},
	{0x10, "PCMFraction"}, {0x100, "ModOrder"}, {0x200, "ModRow"}, {0x400, "ModPattern"},
}

func (u TimeUnit) String() string { return flagsString(uint64(u), timeUnitNames) }

// DebugFlags select the verbosity and categories of engine debug output.
type DebugFlags uint32

const (
	DebugLevelNone          DebugFlags = 0x00000000
	DebugLevelError         DebugFlags = 0x00000001
	DebugLevelWarning       DebugFlags = 0x00000002
	DebugLevelLog           DebugFlags = 0x00000004
	DebugTypeMemory         DebugFlags = 0x00000100
	DebugTypeFile           DebugFlags = 0x00000200
	DebugTypeCodec          DebugFlags = 0x00000400
	DebugTypeTrace          DebugFlags = 0x00000800
	DebugDisplayTimestamps  DebugFlags = 0x00010000
	DebugDisplayLineNumbers DebugFlags = 0x00020000
	DebugDisplayThread      DebugFlags = 0x00040000
)

var debugFlagNames = []flagName{
	{0x1, "LevelError"}, {0x2, "LevelWarning"}, {0x4, "LevelLog"},
	{0x100, "TypeMemory"}, {0x200, "TypeFile"}, {0x400, "TypeCodec"}, {0x800, "TypeTrace"},
	{0x10000, "DisplayTimestamps"}, {0x20000, "DisplayLineNumbers"}, {0x40000, "DisplayThread"},
}

func (f DebugFlags) String() string { return flagsString(uint64(f), debugFlagNames) }

// MemoryType classifies engine allocations.
type MemoryType uint32

const (
	MemoryNormal       MemoryType = 0x00000000
	MemoryStreamFile   MemoryType = 0x00000001
	MemoryStreamDecode MemoryType = 0x00000002
	MemorySampleData   MemoryType = 0x00000004
	MemoryDSPBuffer    MemoryType = 0x00000008
	MemoryPlugin       MemoryType = 0x00000010
	MemoryPersistent   MemoryType = 0x00200000
	MemoryAll          MemoryType = 0xFFFFFFFF
)

// SystemCallbackType is a bit set of System events.
type SystemCallbackType uint32

const (
	SystemCallbackDeviceListChanged      SystemCallbackType = 0x00000001
	SystemCallbackDeviceLost             SystemCallbackType = 0x00000002
	SystemCallbackMemoryAllocationFailed SystemCallbackType = 0x00000004
	SystemCallbackThreadCreated          SystemCallbackType = 0x00000008
	SystemCallbackBadDSPConnection       SystemCallbackType = 0x00000010
	SystemCallbackPreMix                 SystemCallbackType = 0x00000020
	SystemCallbackPostMix                SystemCallbackType = 0x00000040
	SystemCallbackError                  SystemCallbackType = 0x00000080
	SystemCallbackMidMix                 SystemCallbackType = 0x00000100
	SystemCallbackThreadDestroyed        SystemCallbackType = 0x00000200
	SystemCallbackPreUpdate              SystemCallbackType = 0x00000400
	SystemCallbackPostUpdate             SystemCallbackType = 0x00000800
	SystemCallbackRecordListChanged      SystemCallbackType = 0x00001000
	SystemCallbackBufferedNoMix          SystemCallbackType = 0x00002000
	SystemCallbackDeviceReinitialize     SystemCallbackType = 0x00004000
	SystemCallbackOutputUnderrun         SystemCallbackType = 0x00008000
	SystemCallbackRecordPositionChanged  SystemCallbackType = 0x00010000
	SystemCallbackAll                    SystemCallbackType = 0xFFFFFFFF
)

var systemCallbackNames = []flagName{
	{0x1, "DeviceListChanged"}, {0x2, "DeviceLost"}, {0x4, "MemoryAllocationFailed"},
	{0x8, "ThreadCreated"}, {0x10, "BadDSPConnection"}, {0x20, "PreMix"},
	{0x40, "PostMix"}, {0x80, "Error"}, {0x100, "MidMix"}, {0x200, "ThreadDestroyed"},
	{0x400, "PreUpdate"}, {0x800, "PostUpdate"}, {0x1000, "RecordListChanged"},
	{0x2000, "BufferedNoMix"}, {0x4000, "DeviceReinitialize"},
	{0x8000, "OutputUnderrun"}, {0x10000, "RecordPositionChanged"},
}

func (t SystemCallbackType) String() string { return flagsString(uint64(t), systemCallbackNames) }

// DriverState reports the state of a recording driver.
type DriverState uint32

const (
	DriverStateConnected DriverState = 0x00000001
	DriverStateDefault   DriverState = 0x00000002
)

// ChannelMask is a bit set of speakers used by a signal.
type ChannelMask uint32

const (
	ChannelMaskFrontLeft     ChannelMask = 0x00000001
	ChannelMaskFrontRight    ChannelMask = 0x00000002
	ChannelMaskFrontCenter   ChannelMask = 0x00000004
	ChannelMaskLowFrequency  ChannelMask = 0x00000008
	ChannelMaskSurroundLeft  ChannelMask = 0x00000010
	ChannelMaskSurroundRight ChannelMask = 0x00000020
	ChannelMaskBackLeft      ChannelMask = 0x00000040
	ChannelMaskBackRight     ChannelMask = 0x00000080
	ChannelMaskBackCenter    ChannelMask = 0x00000100

	ChannelMaskMono         = ChannelMaskFrontLeft
	ChannelMaskStereo       = ChannelMaskFrontLeft | ChannelMaskFrontRight
	ChannelMaskLRC          = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter
	ChannelMaskQuad         = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskSurroundLeft | ChannelMaskSurroundRight
	ChannelMaskSurround     = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter | ChannelMaskSurroundLeft | ChannelMaskSurroundRight
	ChannelMask5Point1      = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter | ChannelMaskLowFrequency | ChannelMaskSurroundLeft | ChannelMaskSurroundRight
	ChannelMask5Point1Rears = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter | ChannelMaskLowFrequency | ChannelMaskBackLeft | ChannelMaskBackRight
	ChannelMask7Point0      = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter | ChannelMaskSurroundLeft | ChannelMaskSurroundRight | ChannelMaskBackLeft | ChannelMaskBackRight
	ChannelMask7Point1      = ChannelMaskFrontLeft | ChannelMaskFrontRight | ChannelMaskFrontCenter | ChannelMaskLowFrequency | ChannelMaskSurroundLeft | ChannelMaskSurroundRight | ChannelMaskBackLeft | ChannelMaskBackRight
)

// ThreadAffinity is a core mask or core group for an engine thread.
type ThreadAffinity int64

const (
	ThreadAffinityGroupDefault ThreadAffinity = 0x4000000000000000
	ThreadAffinityGroupA       ThreadAffinity = 0x4000000000000001
	ThreadAffinityGroupB       ThreadAffinity = 0x4000000000000002
	ThreadAffinityGroupC       ThreadAffinity = 0x4000000000000003

	ThreadAffinityMixer            = ThreadAffinityGroupA
	ThreadAffinityFeeder           = ThreadAffinityGroupC
	ThreadAffinityStream           = ThreadAffinityGroupC
	ThreadAffinityFile             = ThreadAffinityGroupC
	ThreadAffinityNonBlocking      = ThreadAffinityGroupC
	ThreadAffinityRecord           = ThreadAffinityGroupC
	ThreadAffinityGeometry         = ThreadAffinityGroupC
	ThreadAffinityProfiler         = ThreadAffinityGroupC
	ThreadAffinityStudioUpdate     = ThreadAffinityGroupB
	ThreadAffinityStudioLoadBank   = ThreadAffinityGroupC
	ThreadAffinityStudioLoadSample = ThreadAffinityGroupC
	ThreadAffinityConvolution1     = ThreadAffinityGroupC
	ThreadAffinityConvolution2     = ThreadAffinityGroupC

	ThreadAffinityCoreAll ThreadAffinity = 0
)

// ThreadAffinityCore returns the affinity mask for a single core.
func ThreadAffinityCore(n int) ThreadAffinity {
	return ThreadAffinity(1) << uint(n)
}

// ThreadPriority is a platform-agnostic or platform-specific thread priority.
type ThreadPriority int32

const (
	ThreadPriorityPlatformMin ThreadPriority = -32 * 1024
	ThreadPriorityPlatformMax ThreadPriority = 32 * 1024

	ThreadPriorityDefault  = ThreadPriorityPlatformMin - 1
	ThreadPriorityLow      = ThreadPriorityPlatformMin - 2
	ThreadPriorityMedium   = ThreadPriorityPlatformMin - 3
	ThreadPriorityHigh     = ThreadPriorityPlatformMin - 4
	ThreadPriorityVeryHigh = ThreadPriorityPlatformMin - 5
	ThreadPriorityExtreme  = ThreadPriorityPlatformMin - 6
	ThreadPriorityCritical = ThreadPriorityPlatformMin - 7

	ThreadPriorityMixer            = ThreadPriorityExtreme
	ThreadPriorityFeeder           = ThreadPriorityCritical
	ThreadPriorityStream           = ThreadPriorityVeryHigh
	ThreadPriorityFile             = ThreadPriorityHigh
	ThreadPriorityNonBlocking      = ThreadPriorityHigh
	ThreadPriorityRecord           = ThreadPriorityHigh
	ThreadPriorityGeometry         = ThreadPriorityLow
	ThreadPriorityProfiler         = ThreadPriorityMedium
	ThreadPriorityStudioUpdate     = ThreadPriorityMedium
	ThreadPriorityStudioLoadBank   = ThreadPriorityMedium
	ThreadPriorityStudioLoadSample = ThreadPriorityMedium
	ThreadPriorityConvolution1     = ThreadPriorityVeryHigh
	ThreadPriorityConvolution2     = ThreadPriorityVeryHigh
)

// ThreadStackSize is the stack size of an engine thread in bytes.
type ThreadStackSize uint32

const (
	ThreadStackSizeDefault          ThreadStackSize = 0
	ThreadStackSizeMixer            ThreadStackSize = 80 * 1024
	ThreadStackSizeFeeder           ThreadStackSize = 16 * 1024
	ThreadStackSizeStream           ThreadStackSize = 96 * 1024
	ThreadStackSizeFile             ThreadStackSize = 64 * 1024
	ThreadStackSizeNonBlocking      ThreadStackSize = 112 * 1024
	ThreadStackSizeRecord           ThreadStackSize = 16 * 1024
	ThreadStackSizeGeometry         ThreadStackSize = 48 * 1024
	ThreadStackSizeProfiler         ThreadStackSize = 128 * 1024
	ThreadStackSizeStudioUpdate     ThreadStackSize = 96 * 1024
	ThreadStackSizeStudioLoadBank   ThreadStackSize = 96 * 1024
	ThreadStackSizeStudioLoadSample ThreadStackSize = 96 * 1024
	ThreadStackSizeConvolution1     ThreadStackSize = 16 * 1024
	ThreadStackSizeConvolution2     ThreadStackSize = 16 * 1024
)
