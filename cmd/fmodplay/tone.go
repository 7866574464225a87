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
	"fmt"
	"math"
	"time"

	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/cli"
)

type toneCmd struct {
	Channels int           `help:"Number of channels." default:"2"`
	Format   string        `help:"Sample format." enum:"pcm8,pcm16,pcmfloat" default:"pcm16"`
	Duration time.Duration `help:"Length of each note." default:"3s"`
	Gap      time.Duration `help:"Delay between note onsets." default:"1s"`
	Freqs    []float64     `arg:"" optional:"" help:"Note frequencies in Hz (default C-E-G)."`
}

func parseSoundFormat(s string) (fmod.SoundFormat, error) {
	switch s {
	case "pcm8":
		return fmod.SoundFormatPCM8, nil
	case "pcm16":
		return fmod.SoundFormatPCM16, nil
	case "pcmfloat":
		return fmod.SoundFormatPCMFloat, nil
	}
	return 0, fmt.Errorf("format must be pcm8, pcm16 or pcmfloat but: %s", s)
}

// sineWave renders a sine tone into interleaved PCM of a fixed length.
type sineWave struct {
	freq         float64
	sampleRate   int
	channelCount int
	format       fmod.SoundFormat

	// pos and length count frames.
	pos    int64
	length int64
}

func newSineWave(freq float64, duration time.Duration, sampleRate, channelCount int, format fmod.SoundFormat) *sineWave {
	return &sineWave{
		freq:         freq,
		sampleRate:   sampleRate,
		channelCount: channelCount,
		format:       format,
		length:       int64(sampleRate) * int64(duration) / int64(time.Second),
	}
}

// fill writes as many whole frames as fit in buf and zeroes the rest, which
// also covers reads past the end.
func (s *sineWave) fill(buf []byte) {
	num := s.format.BytesPerSample() * s.channelCount
	period := float64(s.sampleRate) / s.freq
	i := 0
	for ; i+num <= len(buf) && s.pos < s.length; i += num {
		v := math.Sin(2*math.Pi*float64(s.pos)/period) * 0.3
		for ch := 0; ch < s.channelCount; ch++ {
			o := i + ch*s.format.BytesPerSample()
			switch s.format {
			case fmod.SoundFormatPCMFloat:
				binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(float32(v)))
			case fmod.SoundFormatPCM8:
				const max = 127
				buf[o] = byte(int8(v * max))
			case fmod.SoundFormatPCM16:
				const max = 32767
				binary.LittleEndian.PutUint16(buf[o:], uint16(int16(v*max)))
			}
		}
		s.pos++
	}
	clear(buf[i:])
}

func (s *sineWave) seek(frame uint32) {
	s.pos = min(int64(frame), s.length)
}

func (t *toneCmd) Run(e *engineFlags) error {
	format, err := parseSoundFormat(t.Format)
	if err != nil {
		return err
	}
	if t.Channels < 1 || t.Channels > fmod.MaxChannelWidth {
		return fmt.Errorf("channels must be between 1 and %d", fmod.MaxChannelWidth)
	}
	freqs := t.Freqs
	if len(freqs) == 0 {
		const (
			freqC = 523.3
			freqE = 659.3
			freqG = 784.0
		)
		freqs = []float64{freqC, freqE, freqG}
	}

	sys, err := e.open()
	if err != nil {
		return err
	}
	defer sys.Release()

	var sounds []fmod.Sound
	defer func() {
		for _, s := range sounds {
			s.Release()
		}
	}()

	play := func(freq float64) error {
		wave := newSineWave(freq, t.Duration, e.SampleRate, t.Channels, format)
		sound, err := sys.CreateUserSound(fmod.Mode2D|fmod.ModeCreateStream|fmod.ModeOpenUser, fmod.UserSoundFormat{
			Channels:   t.Channels,
			SampleRate: e.SampleRate,
			Format:     format,
			Length:     uint32(wave.length),
		}, func(_ fmod.Sound, buf []byte) error {
			wave.fill(buf)
			return nil
		}, func(_ fmod.Sound, _ int, pos uint32, unit fmod.TimeUnit) error {
			if unit != fmod.TimeUnitPCM {
				return fmod.ErrFormat
			}
			wave.seek(pos)
			return nil
		})
		if err != nil {
			return err
		}
		sounds = append(sounds, sound)
		_, err = sys.PlaySound(sound, fmod.ChannelGroup{})
		return err
	}

	cli.PrintInfo("Tone", fmt.Sprintf("%d notes, %s, %d channels", len(freqs), format, t.Channels))
	start := time.Now()
	total := t.Gap*time.Duration(len(freqs)-1) + t.Duration
	next := 0
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if next < len(freqs) && time.Since(start) >= t.Gap*time.Duration(next) {
			if err := play(freqs[next]); err != nil {
				return err
			}
			next++
		}
		if err := sys.Update(); err != nil {
			return err
		}
		if time.Since(start) >= total {
			break
		}
	}
	return nil
}
