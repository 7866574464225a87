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
	"strconv"
	"strings"

	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/cli"
)

type infoCmd struct{}

func (infoCmd) Run(e *engineFlags) error {
	sys, err := e.open()
	if err != nil {
		return err
	}
	defer sys.Release()

	v, err := sys.Version()
	if err != nil {
		return err
	}
	output, err := sys.Output()
	if err != nil {
		return err
	}
	format, err := sys.SoftwareFormat()
	if err != nil {
		return err
	}
	length, count, err := sys.DSPBufferSize()
	if err != nil {
		return err
	}

	cli.PrintSection("Engine")
	cli.PrintInfo("FMOD", fmod.VersionString(v))
	cli.PrintInfo("Output", output.String())
	cli.PrintInfo("Mixer", fmt.Sprintf("%d Hz, %s", format.SampleRate, format.SpeakerMode))
	cli.PrintInfo("DSP buffer", fmt.Sprintf("%d x %d samples", count, length))

	drivers, err := sys.Drivers()
	if err != nil {
		return err
	}
	current, _ := sys.Driver()
	cli.PrintSection("Output drivers")
	cli.PrintTable(driverHeader, driverRows(drivers, current))

	n, _, err := sys.RecordNumDrivers()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		info, err := sys.RecordDriverInfo(i)
		if err != nil {
			return err
		}
		rows = append(rows, append(driverRow(i, info.DriverInfo, false), driverStateString(info.State)))
	}
	cli.PrintSection("Input drivers")
	if len(rows) == 0 {
		cli.PrintWarning("no input drivers")
		return nil
	}
	cli.PrintTable(append(driverHeader[:len(driverHeader):len(driverHeader)], "State"), rows)
	return nil
}

var driverHeader = []string{"#", "Name", "Rate", "Speakers", "GUID"}

func driverRows(drivers []fmod.DriverInfo, current int) [][]string {
	rows := make([][]string, len(drivers))
	for i, d := range drivers {
		rows[i] = driverRow(i, d, i == current)
	}
	return rows
}

func driverRow(index int, d fmod.DriverInfo, current bool) []string {
	id := strconv.Itoa(index)
	if current {
		id += "*"
	}
	return []string{
		id,
		d.Name,
		fmt.Sprintf("%d Hz", d.SystemRate),
		fmt.Sprintf("%s (%d)", d.SpeakerMode, d.SpeakerModeChannels),
		d.GUID.String(),
	}
}

func driverStateString(s fmod.DriverState) string {
	var parts []string
	if s&fmod.DriverStateConnected != 0 {
		parts = append(parts, "connected")
	}
	if s&fmod.DriverStateDefault != 0 {
		parts = append(parts, "default")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
