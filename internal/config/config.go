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

// Package config holds engine settings shared by the fmodplay commands. The
// same JSON file is read by Load and by kong as a source of flag defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fmodgo/fmod"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "fmodplay.json"

// Engine defaults.
const (
	DefaultSampleRate      = 48000
	DefaultDSPBufferLength = 1024
	DefaultDSPBufferCount  = 4
)

// Config holds engine settings applied before System.Init.
type Config struct {
	// Library overrides the FMOD shared library path.
	Library string `json:"library,omitempty"`

	Output           string `json:"output,omitempty"`
	Driver           int    `json:"driver"`
	MaxChannels      int    `json:"max_channels"`
	SoftwareChannels int    `json:"software_channels,omitempty"`
	SampleRate       int    `json:"sample_rate"`
	SpeakerMode      string `json:"speaker_mode,omitempty"`
	DSPBufferLength  uint32 `json:"dsp_buffer_length"`
	DSPBufferCount   int    `json:"dsp_buffer_count"`
	InitFlags        string `json:"init_flags,omitempty"`
	LogLevel         string `json:"log_level,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		MaxChannels:     fmod.DefaultMaxChannels,
		SampleRate:      DefaultSampleRate,
		DSPBufferLength: DefaultDSPBufferLength,
		DSPBufferCount:  DefaultDSPBufferCount,
		LogLevel:        "info",
	}
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return Config{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.MaxChannels <= 0 || c.MaxChannels > 4095 {
		return fmt.Errorf("%w: max_channels %d out of range 1-4095", ErrInvalid, c.MaxChannels)
	}
	if c.SoftwareChannels < 0 {
		return fmt.Errorf("%w: software_channels %d is negative", ErrInvalid, c.SoftwareChannels)
	}
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return fmt.Errorf("%w: sample_rate %d out of range 8000-192000", ErrInvalid, c.SampleRate)
	}
	if c.DSPBufferLength == 0 || c.DSPBufferLength&(c.DSPBufferLength-1) != 0 {
		return fmt.Errorf("%w: dsp_buffer_length %d is not a power of two", ErrInvalid, c.DSPBufferLength)
	}
	if c.DSPBufferCount < 2 {
		return fmt.Errorf("%w: dsp_buffer_count must be at least 2", ErrInvalid)
	}
	if c.Driver < 0 {
		return fmt.Errorf("%w: driver %d is negative", ErrInvalid, c.Driver)
	}
	if _, err := c.outputType(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.speakerMode(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := fmod.ParseInitFlags(c.InitFlags); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c Config) outputType() (fmod.OutputType, error) {
	if c.Output == "" {
		return fmod.OutputAutoDetect, nil
	}
	return fmod.ParseOutputType(c.Output)
}

func (c Config) speakerMode() (fmod.SpeakerMode, error) {
	if c.SpeakerMode == "" {
		return fmod.SpeakerModeDefault, nil
	}
	return fmod.ParseSpeakerMode(c.SpeakerMode)
}

// Setup is the part of System configuration that must happen before Init.
type Setup interface {
	SetOutput(fmod.OutputType) error
	SetDriver(int) error
	SetSoftwareChannels(int) error
	SetSoftwareFormat(fmod.SoftwareFormat) error
	SetDSPBufferSize(uint32, int) error
}

// Apply configures sys and returns the flags to pass to Init.
func (c Config) Apply(sys Setup) (fmod.InitFlags, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	output, _ := c.outputType()
	mode, _ := c.speakerMode()
	flags, _ := fmod.ParseInitFlags(c.InitFlags)

	if err := sys.SetOutput(output); err != nil {
		return 0, fmt.Errorf("config: set output %v: %w", output, err)
	}
	if c.Driver != 0 {
		if err := sys.SetDriver(c.Driver); err != nil {
			return 0, fmt.Errorf("config: set driver %d: %w", c.Driver, err)
		}
	}
	if c.SoftwareChannels > 0 {
		if err := sys.SetSoftwareChannels(c.SoftwareChannels); err != nil {
			return 0, fmt.Errorf("config: set software channels: %w", err)
		}
	}
	if err := sys.SetSoftwareFormat(fmod.SoftwareFormat{SampleRate: c.SampleRate, SpeakerMode: mode}); err != nil {
		return 0, fmt.Errorf("config: set software format: %w", err)
	}
	if err := sys.SetDSPBufferSize(c.DSPBufferLength, c.DSPBufferCount); err != nil {
		return 0, fmt.Errorf("config: set dsp buffer size: %w", err)
	}
	return flags, nil
}
