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
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/cli"
	"github.com/fmodgo/fmod/internal/ui"
	"github.com/fmodgo/fmod/internal/wavrec"
)

type playCmd struct {
	Path    string   `arg:"" help:"Sound file or stream URL."`
	Loop    bool     `help:"Loop until stopped."`
	Volume  float32  `help:"Initial volume." default:"1"`
	Pitch   float32  `help:"Pitch multiplier." default:"1"`
	Stream  bool     `help:"Stream from disk instead of decoding up front."`
	Effect  []string `short:"e" help:"Effect to apply, as TYPE or TYPE:INDEX=VALUE,... (repeatable)." placeholder:"EFFECT"`
	Capture string   `help:"Write the final mix to a WAV file." type:"path" placeholder:"FILE"`
	Meter   bool     `help:"Show output peak meters."`
	Plain   bool     `help:"Print progress lines instead of the interactive player."`
}

// effectSpec is a parsed --effect value.
type effectSpec struct {
	typ    fmod.DSPType
	params map[int]float32
}

// parseEffect parses "echo" or "echo:0=250,1=40".
func parseEffect(s string) (effectSpec, error) {
	name, rest, _ := strings.Cut(s, ":")
	typ, err := fmod.ParseDSPType(name)
	if err != nil {
		return effectSpec{}, err
	}
	spec := effectSpec{typ: typ, params: map[int]float32{}}
	if rest == "" {
		return spec, nil
	}
	for _, kv := range strings.Split(rest, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return effectSpec{}, fmt.Errorf("effect %s: parameter %q is not INDEX=VALUE", name, kv)
		}
		index, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || index < 0 {
			return effectSpec{}, fmt.Errorf("effect %s: bad parameter index %q", name, k)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if err != nil {
			return effectSpec{}, fmt.Errorf("effect %s: bad value %q", name, v)
		}
		spec.params[index] = float32(value)
	}
	return spec, nil
}

func (p *playCmd) Run(e *engineFlags) error {
	effects := make([]effectSpec, 0, len(p.Effect))
	for _, s := range p.Effect {
		spec, err := parseEffect(s)
		if err != nil {
			return err
		}
		effects = append(effects, spec)
	}

	sys, err := e.open()
	if err != nil {
		return err
	}
	defer sys.Release()

	mode := fmod.Mode2D | fmod.ModeLoopOff
	if p.Loop {
		mode = fmod.Mode2D | fmod.ModeLoopNormal
	}
	var sound fmod.Sound
	if p.Stream || strings.Contains(p.Path, "://") {
		sound, err = sys.CreateStream(p.Path, mode)
	} else {
		sound, err = sys.CreateSound(p.Path, mode)
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", p.Path, err)
	}
	defer sound.Release()

	ch, err := sys.CreateSoundChannel(sound, fmod.ChannelGroup{})
	if err != nil {
		return err
	}
	if p.Loop {
		if err := ch.SetLoopCount(-1); err != nil {
			return err
		}
	}
	if err := ch.SetVolume(p.Volume); err != nil {
		return err
	}
	if err := ch.SetPitch(p.Pitch); err != nil {
		return err
	}
	for _, spec := range effects {
		dsp, err := sys.CreateDSPByType(spec.typ)
		if err != nil {
			return fmt.Errorf("creating %s: %w", spec.typ, err)
		}
		defer func() {
			ch.RemoveDSP(dsp)
			dsp.Release()
		}()
		for index, value := range spec.params {
			if err := dsp.SetParameterFloat(index, value); err != nil {
				return fmt.Errorf("%s parameter %d: %w", spec.typ, index, err)
			}
		}
		if err := ch.AddDSP(fmod.DSPIndexTail, dsp); err != nil {
			return err
		}
	}

	player := &channelPlayer{sys: sys, ch: ch, sound: sound, volume: p.Volume}
	player.name, _ = sound.Name()
	if player.name == "" {
		player.name = filepath.Base(p.Path)
	}
	if ms, err := sound.Length(fmod.TimeUnitMS); err == nil && ms != 0xFFFFFFFF {
		player.length = time.Duration(ms) * time.Millisecond
	}

	if p.Capture != "" {
		stop, err := startCapture(sys, p.Capture)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				cli.PrintError(fmt.Sprintf("capture: %v", err))
			}
		}()
	}
	if p.Meter {
		if player.meter, err = meterMaster(sys); err != nil {
			return err
		}
	}

	if err := ch.SetPaused(false); err != nil {
		return err
	}
	if p.Plain {
		return playPlain(player)
	}
	m := ui.NewModel(player)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return m.Err()
}

func playPlain(player *channelPlayer) error {
	cli.PrintInfo("Playing", player.name)
	ticker := time.NewTicker(ui.TickInterval)
	defer ticker.Stop()
	last := -time.Second
	for range ticker.C {
		st, err := player.Update()
		if err != nil {
			return err
		}
		if !st.Playing {
			cli.PrintSuccess("Finished")
			return nil
		}
		if st.Position-last >= time.Second {
			last = st.Position
			fmt.Fprintf(cli.Stdout, "%s / %s\n", cli.FormatDuration(st.Position), cli.FormatDuration(st.Length))
		}
	}
	return nil
}

// startCapture inserts a pass-through DSP at the head of the master group
// that copies the mix into a WAV file. The returned func detaches it.
func startCapture(sys fmod.System, path string) (func() error, error) {
	format, err := sys.SoftwareFormat()
	if err != nil {
		return nil, err
	}
	channels, err := sys.SpeakerModeChannels(format.SpeakerMode)
	if err != nil {
		return nil, err
	}
	w, err := wavrec.Create(path, format.SampleRate, channels, 16)
	if err != nil {
		return nil, err
	}
	// Two seconds of headroom between the mixer and the writer.
	buf := wavrec.NewBuffer(2 * format.SampleRate * channels)
	rec := wavrec.NewRecorder(buf, w, 100*time.Millisecond)

	dsp, err := sys.CreateDSP(fmod.DSPDescription{
		Name:             "fmodplay capture",
		NumInputBuffers:  1,
		NumOutputBuffers: 1,
		Read: func(b *fmod.DSPBuffer) error {
			copy(b.Out, b.In)
			b.OutChannels = b.InChannels
			if b.InChannels == channels {
				buf.Write(b.In[:b.Length*b.InChannels])
			}
			return nil
		},
	})
	if err != nil {
		rec.Close()
		return nil, err
	}
	master, err := sys.MasterChannelGroup()
	if err == nil {
		err = master.AddDSP(fmod.DSPIndexHead, dsp)
	}
	if err != nil {
		dsp.Release()
		rec.Close()
		return nil, err
	}
	return func() error {
		err := errors.Join(master.RemoveDSP(dsp), dsp.Release(), rec.Close())
		if n := buf.Dropped(); n > 0 {
			cli.PrintWarning(fmt.Sprintf("capture dropped %d samples", n))
		}
		if err == nil {
			cli.PrintSuccess(fmt.Sprintf("Captured %s to %s", cli.FormatDuration(time.Duration(w.Frames())*time.Second/time.Duration(format.SampleRate)), path))
		}
		return err
	}, nil
}

// meterMaster enables output metering on the last DSP of the master group.
func meterMaster(sys fmod.System) (fmod.DSP, error) {
	master, err := sys.MasterChannelGroup()
	if err != nil {
		return fmod.DSP{}, err
	}
	head, err := master.DSP(fmod.DSPIndexHead)
	if err != nil {
		return fmod.DSP{}, err
	}
	return head, head.SetMeteringEnabled(false, true)
}

// channelPlayer drives one channel for the playback UI.
type channelPlayer struct {
	sys    fmod.System
	ch     fmod.Channel
	sound  fmod.Sound
	meter  fmod.DSP
	name   string
	length time.Duration
	volume float32
}

func (p *channelPlayer) Update() (ui.Status, error) {
	if err := p.sys.Update(); err != nil {
		return ui.Status{}, err
	}
	st := ui.Status{Name: p.name, Length: p.length, Volume: p.volume}
	playing, err := p.ch.IsPlaying()
	if errors.Is(err, fmod.ErrInvalidHandle) || errors.Is(err, fmod.ErrChannelStolen) {
		// The channel ended and its handle was recycled.
		return st, nil
	}
	if err != nil {
		return st, err
	}
	st.Playing = playing
	if st.Paused, err = p.ch.Paused(); err != nil {
		return st, err
	}
	ms, err := p.ch.Position(fmod.TimeUnitMS)
	if err != nil {
		return st, err
	}
	st.Position = time.Duration(ms) * time.Millisecond
	if usage, err := p.sys.CPUUsage(); err == nil {
		st.CPU = usage.DSP
	}
	st.Channels, _, _ = p.sys.ChannelsPlaying()
	if p.meter.Raw() != 0 {
		_, out, err := p.meter.MeteringInfo()
		if err != nil {
			return st, err
		}
		st.Levels = append([]float32(nil), out.PeakLevel[:out.NumChannels]...)
	}
	return st, nil
}

func (p *channelPlayer) SetPaused(paused bool) error {
	return p.ch.SetPaused(paused)
}

func (p *channelPlayer) SetVolume(volume float32) error {
	if err := p.ch.SetVolume(volume); err != nil {
		return err
	}
	p.volume = volume
	return nil
}

func (p *channelPlayer) Seek(offset time.Duration) error {
	ms, err := p.ch.Position(fmod.TimeUnitMS)
	if err != nil {
		return err
	}
	pos := time.Duration(ms)*time.Millisecond + offset
	if pos < 0 {
		pos = 0
	}
	if p.length > 0 && pos >= p.length {
		pos = p.length - time.Millisecond
	}
	return p.ch.SetPosition(uint32(pos/time.Millisecond), fmod.TimeUnitMS)
}
