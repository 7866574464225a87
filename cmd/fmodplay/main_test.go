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

package main

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fmodgo/fmod"
)

func newParser(t *testing.T, c *CLI) *kong.Kong {
	t.Helper()
	p, err := kong.New(c,
		kong.Name("fmodplay"),
		kong.Configuration(kong.JSON),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEngineFlagDefaults(t *testing.T) {
	var c CLI
	if _, err := newParser(t, &c).Parse([]string{"info"}); err != nil {
		t.Fatal(err)
	}
	got := c.Engine.config()
	if err := got.Validate(); err != nil {
		t.Errorf("default flags do not validate: %v", err)
	}
	if got.SampleRate != 48000 || got.DSPBufferLength != 1024 || got.DSPBufferCount != 4 || got.MaxChannels != fmod.DefaultMaxChannels {
		t.Errorf("unexpected defaults: %+v", got)
	}
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmodplay.json")
	if err := os.WriteFile(path, []byte(`{"sample_rate": 44100, "output": "nosound", "dsp_buffer_count": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var c CLI
	if _, err := newParser(t, &c).Parse([]string{"--config", path, "--dsp-buffer-count", "8", "info"}); err != nil {
		t.Fatal(err)
	}
	if c.Engine.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", c.Engine.SampleRate)
	}
	if c.Engine.Output != "nosound" {
		t.Errorf("output = %q, want nosound", c.Engine.Output)
	}
	if c.Engine.DSPBufferCount != 8 {
		t.Errorf("command line did not override the file: dsp buffer count = %d", c.Engine.DSPBufferCount)
	}
}

func TestParseEffect(t *testing.T) {
	spec, err := parseEffect("echo:0=250, 1=40")
	if err != nil {
		t.Fatal(err)
	}
	if spec.typ != fmod.DSPTypeEcho {
		t.Errorf("type = %v, want Echo", spec.typ)
	}
	if spec.params[fmod.EchoDelay] != 250 || spec.params[fmod.EchoFeedback] != 40 || len(spec.params) != 2 {
		t.Errorf("params = %v", spec.params)
	}

	spec, err = parseEffect("LOWPASS")
	if err != nil {
		t.Fatal(err)
	}
	if spec.typ != fmod.DSPTypeLowpass || len(spec.params) != 0 {
		t.Errorf("got %+v", spec)
	}

	for _, bad := range []string{"nope", "echo:0", "echo:x=1", "echo:-1=1", "echo:0=loud"} {
		if _, err := parseEffect(bad); err == nil {
			t.Errorf("parseEffect(%q) succeeded", bad)
		}
	}
}

func TestSineWaveFill(t *testing.T) {
	const rate = 48000
	w := newSineWave(480, 10*time.Millisecond, rate, 2, fmod.SoundFormatPCM16)
	if w.length != 480 {
		t.Fatalf("length = %d frames, want 480", w.length)
	}

	// 3 bytes past a whole frame must stay zero.
	buf := make([]byte, 4*100+3)
	for i := range buf {
		buf[i] = 0xff
	}
	w.fill(buf)
	if w.pos != 100 {
		t.Errorf("pos = %d, want 100", w.pos)
	}
	for i := 400; i < len(buf); i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, buf[i])
		}
	}
	// Frame 25 is a quarter period in, the peak of the wave.
	l := int16(binary.LittleEndian.Uint16(buf[100:]))
	r := int16(binary.LittleEndian.Uint16(buf[102:]))
	if l < 9829 || l > 9831 || l != r {
		t.Errorf("peak = %d/%d, want about 9830", l, r)
	}

	w.seek(470)
	w.fill(buf)
	if w.pos != w.length {
		t.Errorf("pos = %d after reading past the end, want %d", w.pos, w.length)
	}
	for i := 40; i < len(buf); i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %d past the end = %#x, want 0", i, buf[i])
		}
	}
}

func TestSineWaveFloat(t *testing.T) {
	w := newSineWave(1000, time.Second, 4000, 1, fmod.SoundFormatPCMFloat)
	buf := make([]byte, 8)
	w.fill(buf)
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf)); v != 0 {
		t.Errorf("first sample = %v, want 0", v)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); math.Abs(float64(v)-0.3) > 1e-6 {
		t.Errorf("second sample = %v, want 0.3", v)
	}
}

func TestParseSoundFormat(t *testing.T) {
	for in, want := range map[string]fmod.SoundFormat{
		"pcm8":     fmod.SoundFormatPCM8,
		"pcm16":    fmod.SoundFormatPCM16,
		"pcmfloat": fmod.SoundFormatPCMFloat,
	} {
		got, err := parseSoundFormat(in)
		if err != nil || got != want {
			t.Errorf("parseSoundFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseSoundFormat("u8"); err == nil {
		t.Error("u8 accepted")
	}
}

func TestDriverRow(t *testing.T) {
	row := driverRow(1, fmod.DriverInfo{Name: "Speakers", SystemRate: 44100, SpeakerMode: fmod.SpeakerModeStereo, SpeakerModeChannels: 2}, true)
	if row[0] != "1*" || row[1] != "Speakers" || row[2] != "44100 Hz" {
		t.Errorf("row = %q", row)
	}
	if len(row) != len(driverHeader) {
		t.Errorf("row has %d cells, header has %d", len(row), len(driverHeader))
	}

	for _, tc := range []struct {
		state fmod.DriverState
		want  string
	}{
		{0, "-"},
		{fmod.DriverStateConnected, "connected"},
		{fmod.DriverStateConnected | fmod.DriverStateDefault, "connected, default"},
	} {
		if got := driverStateString(tc.state); got != tc.want {
			t.Errorf("driverStateString(%d) = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestParameterRow(t *testing.T) {
	row := parameterRow(0, fmod.DSPParameterDesc{
		Type: fmod.DSPParameterFloat, Name: "Delay", Label: "ms",
		FloatMin: 10, FloatMax: 5000, FloatDefault: 500,
	})
	if got := [...]string{row[0], row[1], row[2], row[3], row[4], row[5]}; got != [...]string{"0", "Delay", "float", "10 to 5000", "500", "ms"} {
		t.Errorf("float row = %q", row)
	}

	row = parameterRow(2, fmod.DSPParameterDesc{
		Type: fmod.DSPParameterInt, Name: "Shape",
		IntMin: 0, IntMax: 2, IntDefault: 1,
		ValueNames: []string{"Sine", "Square", "Saw"},
	})
	if row[3] != "0 to 2" || row[4] != "Square" {
		t.Errorf("int row = %q", row)
	}

	row = parameterRow(3, fmod.DSPParameterDesc{Type: fmod.DSPParameterBool, BoolDefault: true})
	if row[3] != "off, on" || row[4] != "true" {
		t.Errorf("bool row = %q", row)
	}
}

func TestListedEffectsSkipsPlugins(t *testing.T) {
	for _, typ := range listedEffects() {
		switch typ {
		case fmod.DSPTypeUnknown, fmod.DSPTypeVSTPlugin, fmod.DSPTypeWinampPlugin, fmod.DSPTypeLADSPAPlugin:
			t.Errorf("%v listed", typ)
		}
	}
}
