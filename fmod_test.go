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

package fmod_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fmodgo/fmod"
)

// newSystem returns a System mixing without a device, or skips the test when
// the FMOD library is not installed.
func newSystem(t *testing.T) fmod.System {
	t.Helper()
	if err := fmod.LoadLibrary(""); err != nil {
		t.Skipf("FMOD is not available: %v", err)
	}
	sys, err := fmod.NewSystem()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := sys.Release(); err != nil {
			t.Error(err)
		}
	})
	if err := sys.SetOutput(fmod.OutputNoSoundNRT); err != nil {
		t.Fatal(err)
	}
	if err := sys.Init(32, fmod.InitNormal); err != nil {
		t.Fatal(err)
	}
	return sys
}

func waitStopped(t *testing.T, sys fmod.System, ch fmod.Channel) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := sys.Update(); err != nil {
			t.Fatal(err)
		}
		playing, err := ch.IsPlaying()
		if errors.Is(err, fmod.ErrInvalidHandle) || errors.Is(err, fmod.ErrChannelStolen) || (err == nil && !playing) {
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("channel still playing")
}

func TestUserSoundPlaysToEnd(t *testing.T) {
	sys := newSystem(t)

	var reads atomic.Int32
	s, err := sys.CreateUserSound(fmod.Mode2D|fmod.ModeCreateStream|fmod.ModeOpenUser, fmod.UserSoundFormat{
		Channels:   2,
		SampleRate: 48000,
		Format:     fmod.SoundFormatPCMFloat,
		Length:     4800,
	}, func(_ fmod.Sound, buf []byte) error {
		reads.Add(1)
		clear(buf)
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	if n, err := s.Length(fmod.TimeUnitPCM); err != nil || n != 4800 {
		t.Errorf("Length() = %d, %v", n, err)
	}
	ch, err := sys.PlaySound(s, fmod.ChannelGroup{})
	if err != nil {
		t.Fatal(err)
	}
	waitStopped(t, sys, ch)
	if reads.Load() == 0 {
		t.Error("read callback never ran")
	}
}

func TestCustomDSPProcessesMix(t *testing.T) {
	sys := newSystem(t)

	var blocks atomic.Int32
	dsp, err := sys.CreateDSP(fmod.DSPDescription{
		Name:             "pass",
		NumInputBuffers:  1,
		NumOutputBuffers: 1,
		Read: func(b *fmod.DSPBuffer) error {
			copy(b.Out, b.In)
			blocks.Add(1)
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	master, err := sys.MasterChannelGroup()
	if err != nil {
		t.Fatal(err)
	}
	if err := master.AddDSP(fmod.DSPIndexHead, dsp); err != nil {
		t.Fatal(err)
	}
	if err := dsp.SetUserData(99); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20 && blocks.Load() == 0; i++ {
		if err := sys.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if blocks.Load() == 0 {
		t.Error("read callback never ran")
	}
	if v, err := dsp.UserData(); err != nil || v != 99 {
		t.Errorf("UserData() = %d, %v", v, err)
	}
	if err := master.RemoveDSP(dsp); err != nil {
		t.Fatal(err)
	}
	if err := dsp.Release(); err != nil {
		t.Fatal(err)
	}
}

func TestBuiltinEffectParameters(t *testing.T) {
	sys := newSystem(t)

	echo, err := sys.CreateDSPByType(fmod.DSPTypeEcho)
	if err != nil {
		t.Fatal(err)
	}
	defer echo.Release()
	if err := echo.SetParameterFloat(fmod.EchoDelay, 250); err != nil {
		t.Fatal(err)
	}
	v, _, err := echo.ParameterFloat(fmod.EchoDelay)
	if err != nil || v != 250 {
		t.Errorf("delay = %v, %v", v, err)
	}
	if typ, err := echo.Type(); err != nil || typ != fmod.DSPTypeEcho {
		t.Errorf("Type() = %v, %v", typ, err)
	}
}
