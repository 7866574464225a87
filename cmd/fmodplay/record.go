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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/cli"
	"github.com/fmodgo/fmod/internal/wavrec"
)

type recordCmd struct {
	Output   string        `arg:"" type:"path" help:"WAV file to write."`
	Device   int           `help:"Input driver index." default:"0"`
	Duration time.Duration `help:"How long to record; 0 records until interrupted." default:"5s"`
}

func (r *recordCmd) Run(e *engineFlags) error {
	sys, err := e.open()
	if err != nil {
		return err
	}
	defer sys.Release()

	info, err := sys.RecordDriverInfo(r.Device)
	if err != nil {
		return fmt.Errorf("input driver %d: %w", r.Device, err)
	}
	if info.State&fmod.DriverStateConnected == 0 {
		return fmt.Errorf("input driver %d (%s) is not connected", r.Device, info.Name)
	}
	rate, channels := info.SystemRate, info.SpeakerModeChannels
	const bitDepth = 16
	frameBytes := uint32(channels * bitDepth / 8)
	// One second of ring.
	frames := uint32(rate)

	sound, err := sys.CreateSoundEx(nil, fmod.Mode2D|fmod.ModeLoopNormal|fmod.ModeOpenUser, &fmod.CreateSoundExInfo{
		Length:           frames * frameBytes,
		NumChannels:      channels,
		DefaultFrequency: rate,
		Format:           fmod.SoundFormatPCM16,
	})
	if err != nil {
		return err
	}
	defer sound.Release()

	w, err := wavrec.Create(r.Output, rate, channels, bitDepth)
	if err != nil {
		return err
	}
	if err := sys.RecordStart(r.Device, sound, true); err != nil {
		w.Close()
		return err
	}
	cli.PrintInfo("Recording", fmt.Sprintf("%s, %d Hz, %d channels", info.Name, rate, channels))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	var deadline <-chan time.Time
	if r.Duration > 0 {
		deadline = time.After(r.Duration)
	}
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	var last uint32
	drain := func() error {
		if err := sys.Update(); err != nil {
			return err
		}
		cur, err := sys.RecordPosition(r.Device)
		if err != nil {
			return err
		}
		for _, span := range wavrec.Pending(last, cur, frames) {
			if err := copyRecorded(sound, w, span.Offset*frameBytes, span.Length*frameBytes); err != nil {
				return err
			}
		}
		last = cur
		return nil
	}

	var loopErr error
loop:
	for {
		select {
		case <-ticker.C:
			if loopErr = drain(); loopErr != nil {
				break loop
			}
		case <-deadline:
			loopErr = drain()
			break loop
		case <-interrupt:
			loopErr = drain()
			break loop
		}
	}
	err = errors.Join(loopErr, sys.RecordStop(r.Device), w.Close())
	if err != nil {
		return err
	}
	cli.PrintSuccess(fmt.Sprintf("Wrote %s of audio to %s", cli.FormatDuration(time.Duration(w.Frames())*time.Second/time.Duration(rate)), r.Output))
	return nil
}

func copyRecorded(sound fmod.Sound, w *wavrec.Writer, offset, length uint32) error {
	lock, err := sound.Lock(offset, length)
	if err != nil {
		return err
	}
	err = w.WritePCM(lock.Data1)
	if err == nil && len(lock.Data2) > 0 {
		err = w.WritePCM(lock.Data2)
	}
	return errors.Join(err, lock.Unlock())
}
