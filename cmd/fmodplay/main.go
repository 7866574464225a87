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

// Command fmodplay plays, inspects and records audio through FMOD Core.
package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fmodgo/fmod/internal/cli"
	"github.com/fmodgo/fmod/internal/config"
)

// version is set via ldflags at build time.
var version = "dev"

type CLI struct {
	Config kong.ConfigFlag `help:"JSON file with engine defaults." placeholder:"FILE"`
	Engine engineFlags     `embed:""`

	Play    playCmd    `cmd:"" help:"Play a sound file or stream URL."`
	Tone    toneCmd    `cmd:"" help:"Play a generated chord."`
	Info    infoCmd    `cmd:"" help:"Show engine, output and input devices."`
	Record  recordCmd  `cmd:"" help:"Record from an input device to a WAV file."`
	Effects effectsCmd `cmd:"" help:"List built-in effects and their parameters."`
	Version versionCmd `cmd:"" help:"Show version information."`
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("fmodplay"),
		kong.Description("Play, inspect and record audio with FMOD Core."),
		kong.Configuration(kong.JSON, config.DefaultPath),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	err := ctx.Run(&c.Engine)
	if err == nil {
		return
	}
	var exit exitCode
	if errors.As(err, &exit) {
		os.Exit(int(exit))
	}
	cli.PrintError(err.Error())
	os.Exit(1)
}

// exitCode ends the program with a status but no message.
type exitCode int

func (e exitCode) Error() string { return "exit" }
