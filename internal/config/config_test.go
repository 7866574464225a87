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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fmodgo/fmod"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("Load: got: %+v, want: %+v", c, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `{"output": "nosound", "sample_rate": 44100, "init_flags": "3DRightHanded|ProfileEnable"}`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "nosound" || c.SampleRate != 44100 {
		t.Errorf("Load: got: %+v", c)
	}
	if c.MaxChannels != fmod.DefaultMaxChannels {
		t.Errorf("MaxChannels: got: %v, want default %v", c.MaxChannels, fmod.DefaultMaxChannels)
	}
}

// TestLoadRejectsInvalid verifies that each malformed file is refused with an
// error wrapping ErrInvalid or a JSON error, never silently accepted.
func TestLoadRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "unknown field", content: `{"volume": 1}`},
		{name: "malformed json", content: `{`},
		{name: "zero channels", content: `{"max_channels": 0}`, invalid: true},
		{name: "sample rate too low", content: `{"sample_rate": 100}`, invalid: true},
		{name: "buffer not power of two", content: `{"dsp_buffer_length": 1000}`, invalid: true},
		{name: "one buffer", content: `{"dsp_buffer_count": 1}`, invalid: true},
		{name: "unknown output", content: `{"output": "gramophone"}`, invalid: true},
		{name: "unknown speaker mode", content: `{"speaker_mode": "9.1"}`, invalid: true},
		{name: "unknown init flag", content: `{"init_flags": "Turbo"}`, invalid: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.content))
			if err == nil {
				t.Fatal("Load: got nil error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load: got %v, want an error wrapping ErrInvalid", err)
			}
		})
	}
}

type fakeSetup struct {
	output   fmod.OutputType
	driver   int
	software int
	format   fmod.SoftwareFormat
	length   uint32
	count    int
	fail     error
}

func (f *fakeSetup) SetOutput(o fmod.OutputType) error {
	f.output = o
	return f.fail
}

func (f *fakeSetup) SetDriver(d int) error {
	f.driver = d
	return nil
}

func (f *fakeSetup) SetSoftwareChannels(n int) error {
	f.software = n
	return nil
}

func (f *fakeSetup) SetSoftwareFormat(sf fmod.SoftwareFormat) error {
	f.format = sf
	return nil
}

func (f *fakeSetup) SetDSPBufferSize(length uint32, count int) error {
	f.length, f.count = length, count
	return nil
}

func TestApply(t *testing.T) {
	c := Default()
	c.Output = "WavWriter"
	c.Driver = 2
	c.SoftwareChannels = 32
	c.SpeakerMode = "stereo"
	c.InitFlags = "StreamFromUpdate"

	var s fakeSetup
	flags, err := c.Apply(&s)
	if err != nil {
		t.Fatal(err)
	}
	if flags != fmod.InitStreamFromUpdate {
		t.Errorf("flags: got: %v, want: %v", flags, fmod.InitStreamFromUpdate)
	}
	if s.output != fmod.OutputWavWriter || s.driver != 2 || s.software != 32 {
		t.Errorf("setup: got: %+v", s)
	}
	if s.format.SampleRate != DefaultSampleRate || s.format.SpeakerMode != fmod.SpeakerModeStereo {
		t.Errorf("format: got: %+v", s.format)
	}
	if s.length != DefaultDSPBufferLength || s.count != DefaultDSPBufferCount {
		t.Errorf("dsp buffer: got: %v x %v", s.length, s.count)
	}
}

func TestApplyPropagatesEngineErrors(t *testing.T) {
	s := fakeSetup{fail: fmod.ErrOutputInit}
	if _, err := Default().Apply(&s); !errors.Is(err, fmod.ErrOutputInit) {
		t.Errorf("Apply: got: %v, want: %v", err, fmod.ErrOutputInit)
	}
}
