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
	"fmt"
	"os"

	"github.com/decred/slog"

	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/config"
)

// engineFlags mirror config.Config so the JSON file named by --config
// supplies their defaults.
type engineFlags struct {
	Library          string `help:"Path to the FMOD shared library." env:"FMOD_LIBRARY" placeholder:"PATH"`
	Output           string `help:"Output type such as autodetect, nosound, wavwriter or pulseaudio."`
	Driver           int    `help:"Output driver index." default:"0"`
	MaxChannels      int    `name:"max-channels" help:"Maximum number of virtual channels." default:"512"`
	SoftwareChannels int    `name:"software-channels" help:"Maximum number of real channels; 0 keeps the engine default."`
	SampleRate       int    `name:"sample-rate" help:"Mixer sample rate." default:"48000"`
	SpeakerMode      string `name:"speaker-mode" help:"Mixer speaker mode such as stereo or 5.1."`
	DSPBufferLength  uint32 `name:"dsp-buffer-length" help:"Mixer block size in samples." default:"1024"`
	DSPBufferCount   int    `name:"dsp-buffer-count" help:"Number of mixer blocks." default:"4"`
	InitFlags        string `name:"init-flags" help:"Init flags joined with |, such as ProfileEnable|3DRightHanded."`
	LogLevel         string `name:"log-level" help:"Log level." enum:"trace,debug,info,warn,error,critical,off" default:"info"`
}

func (e *engineFlags) config() config.Config {
	return config.Config{
		Library:          e.Library,
		Output:           e.Output,
		Driver:           e.Driver,
		MaxChannels:      e.MaxChannels,
		SoftwareChannels: e.SoftwareChannels,
		SampleRate:       e.SampleRate,
		SpeakerMode:      e.SpeakerMode,
		DSPBufferLength:  e.DSPBufferLength,
		DSPBufferCount:   e.DSPBufferCount,
		InitFlags:        e.InitFlags,
		LogLevel:         e.LogLevel,
	}
}

// logger returns a logger writing to stderr at the configured level.
func (e *engineFlags) logger() slog.Logger {
	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("FMOD")
	level, ok := slog.LevelFromString(e.LogLevel)
	if !ok {
		level = slog.LevelInfo
	}
	log.SetLevel(level)
	return log
}

// create loads the library and creates an uninitialized System.
func (e *engineFlags) create() (fmod.System, error) {
	fmod.UseLogger(e.logger())
	if e.Library != "" {
		if err := fmod.LoadLibrary(e.Library); err != nil {
			return fmod.System{}, err
		}
	}
	sys, err := fmod.NewSystem()
	if err != nil {
		return fmod.System{}, fmt.Errorf("creating system: %w", err)
	}
	return sys, nil
}

// open creates and initializes a System. The caller releases it.
func (e *engineFlags) open() (fmod.System, error) {
	c := e.config()
	if err := c.Validate(); err != nil {
		return fmod.System{}, err
	}
	sys, err := e.create()
	if err != nil {
		return fmod.System{}, err
	}
	flags, err := c.Apply(sys)
	if err != nil {
		sys.Release()
		return fmod.System{}, err
	}
	if err := sys.Init(c.MaxChannels, flags); err != nil {
		sys.Release()
		return fmod.System{}, fmt.Errorf("initializing system: %w", err)
	}
	return sys, nil
}
