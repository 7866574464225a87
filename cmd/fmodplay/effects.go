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

type effectsCmd struct {
	Types []string `arg:"" optional:"" help:"Effect types to describe; all when empty."`
}

// listedEffects are the built-in types that can be created by name.
func listedEffects() []fmod.DSPType {
	var types []fmod.DSPType
	for t := fmod.DSPTypeMixer; t <= fmod.DSPTypeMultibandEQ; t++ {
		switch t {
		case fmod.DSPTypeVSTPlugin, fmod.DSPTypeWinampPlugin, fmod.DSPTypeLADSPAPlugin:
			continue
		}
		types = append(types, t)
	}
	return types
}

func (c *effectsCmd) Run(e *engineFlags) error {
	types := listedEffects()
	if len(c.Types) > 0 {
		types = types[:0]
		for _, name := range c.Types {
			t, err := fmod.ParseDSPType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
	}

	sys, err := e.open()
	if err != nil {
		return err
	}
	defer sys.Release()

	for _, t := range types {
		info, err := sys.DSPInfoByType(t)
		if err != nil {
			cli.PrintWarning(fmt.Sprintf("%s: %v", t, err))
			continue
		}
		cli.PrintSection(fmt.Sprintf("%s (%s, version %x)", strings.ToLower(t.String()), info.Name, info.Version))
		if len(info.Parameters) == 0 {
			continue
		}
		rows := make([][]string, len(info.Parameters))
		for i, p := range info.Parameters {
			rows[i] = parameterRow(i, p)
		}
		cli.PrintTable([]string{"#", "Name", "Type", "Range", "Default", "Unit"}, rows)
	}
	return nil
}

func parameterRow(index int, p fmod.DSPParameterDesc) []string {
	row := []string{strconv.Itoa(index), p.Name, strings.ToLower(p.Type.String()), "", "", p.Label}
	switch p.Type {
	case fmod.DSPParameterFloat:
		row[3] = fmt.Sprintf("%g to %g", p.FloatMin, p.FloatMax)
		row[4] = strconv.FormatFloat(float64(p.FloatDefault), 'g', -1, 32)
	case fmod.DSPParameterInt:
		upper := strconv.Itoa(p.IntMax)
		if p.GoesToInfinity {
			upper = "inf"
		}
		row[3] = fmt.Sprintf("%d to %s", p.IntMin, upper)
		row[4] = strconv.Itoa(p.IntDefault)
		if i := p.IntDefault - p.IntMin; i >= 0 && i < len(p.ValueNames) {
			row[4] = p.ValueNames[i]
		}
	case fmod.DSPParameterBool:
		row[3] = "off, on"
		row[4] = strconv.FormatBool(p.BoolDefault)
		if len(p.ValueNames) == 2 {
			row[3] = strings.Join(p.ValueNames, ", ")
			row[4] = p.ValueNames[0]
			if p.BoolDefault {
				row[4] = p.ValueNames[1]
			}
		}
	case fmod.DSPParameterData:
		row[3] = fmt.Sprintf("data %d", p.DataType)
		row[4] = "-"
	}
	return row
}
