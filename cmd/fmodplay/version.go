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
	"github.com/fmodgo/fmod"
	"github.com/fmodgo/fmod/internal/cli"
)

type versionCmd struct{}

func (versionCmd) Run(e *engineFlags) error {
	sys, err := e.create()
	if err != nil {
		// The library may be missing; the program version is still useful.
		cli.PrintVersion(version, "")
		cli.PrintWarning(err.Error())
		return nil
	}
	defer sys.Release()
	v, err := sys.Version()
	if err != nil {
		return err
	}
	cli.PrintVersion(version, fmod.VersionString(v))
	return nil
}
