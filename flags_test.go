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
	"testing"
)

func TestInitFlagsString(t *testing.T) {
	for _, tc := range []struct {
		in   InitFlags
		want string
	}{
		{InitNormal, "0"},
		{InitChannelLowpass | InitProfileEnable, "ChannelLowpass|ProfileEnable"},
		{Init3DRightHanded | 0x10, "3DRightHanded|0x10"},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%#x.String() = %q, want %q", uint32(tc.in), got, tc.want)
		}
	}
}

func TestParseInitFlags(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want InitFlags
	}{
		{"", InitNormal},
		{"Normal", InitNormal},
		{"channellowpass | ProfileEnable", InitChannelLowpass | InitProfileEnable},
		{"3DRightHanded|", Init3DRightHanded},
	} {
		got, err := ParseInitFlags(tc.in)
		if err != nil {
			t.Errorf("ParseInitFlags(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInitFlags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseInitFlags("ChannelLowpass|Turbo"); err == nil {
		t.Error("unknown flag accepted")
	}

	all := InitStreamFromUpdate | InitMixFromUpdate | InitClipOutput | InitGeometryUseClosest | InitMemoryTracking
	got, err := ParseInitFlags(all.String())
	if err != nil || got != all {
		t.Errorf("round trip of %v gave %v, %v", all, got, err)
	}
}

func TestModeString(t *testing.T) {
	if got := ModeDefault.String(); got != "Default" {
		t.Errorf("ModeDefault = %q", got)
	}
	if got := (Mode2D | ModeLoopNormal).String(); got != "LoopNormal|2D" {
		t.Errorf("Mode2D|ModeLoopNormal = %q", got)
	}
}

func TestEnumNames(t *testing.T) {
	if got := SpeakerMode5Point1.String(); got != "5.1" {
		t.Errorf("SpeakerMode5Point1 = %q", got)
	}
	if got := SpeakerMode(99).String(); got != "SpeakerMode(99)" {
		t.Errorf("SpeakerMode(99) = %q", got)
	}
	if got := DSPTypeMultibandEQ.String(); got != "MultibandEQ" {
		t.Errorf("DSPTypeMultibandEQ = %q", got)
	}

	if m, err := ParseSpeakerMode("7.1.4"); err != nil || m != SpeakerMode7Point1Point4 {
		t.Errorf("ParseSpeakerMode(7.1.4) = %v, %v", m, err)
	}
	if o, err := ParseOutputType("nosound"); err != nil || o != OutputNoSound {
		t.Errorf("ParseOutputType(nosound) = %v, %v", o, err)
	}
	if _, err := ParseOutputType("hifi"); err == nil {
		t.Error("ParseOutputType accepted an unknown name")
	}
	if d, err := ParseDSPType("sfxreverb"); err != nil || d != DSPTypeSFXReverb {
		t.Errorf("ParseDSPType(sfxreverb) = %v, %v", d, err)
	}
}

func TestBytesPerSample(t *testing.T) {
	for f, want := range map[SoundFormat]int{
		SoundFormatPCM8:      1,
		SoundFormatPCM16:     2,
		SoundFormatPCM24:     3,
		SoundFormatPCMFloat:  4,
		SoundFormatBitstream: 0,
	} {
		if got := f.BytesPerSample(); got != want {
			t.Errorf("%v.BytesPerSample() = %d, want %d", f, got, want)
		}
	}
}
