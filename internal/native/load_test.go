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

package native

import (
	"errors"
	"strings"
	"testing"
)

func TestSymbolsArePrefixed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Symbols() {
		if !strings.HasPrefix(s, "FMOD_") {
			t.Errorf("symbol %q lacks the FMOD_ prefix", s)
		}
		if seen[s] {
			t.Errorf("symbol %q is bound twice", s)
		}
		seen[s] = true
	}
	for _, want := range []string{"FMOD_System_Create", "FMOD_Channel_SetPaused", "FMOD_DSP_GetMeteringInfo", "FMOD_Reverb3D_GetUserData"} {
		if !seen[want] {
			t.Errorf("%s is not bound", want)
		}
	}
}

func TestBindReportsMissingSymbols(t *testing.T) {
	_, err := bind("libfake.so", func(name string) (uintptr, error) {
		return 0, errors.New("not found")
	})
	var missing *MissingSymbolsError
	if !errors.As(err, &missing) {
		t.Fatalf("bind() error = %v, want *MissingSymbolsError", err)
	}
	if got, want := len(missing.Symbols), len(Symbols()); got != want {
		t.Errorf("len(missing.Symbols) = %d, want %d", got, want)
	}
	if !strings.Contains(err.Error(), "libfake.so") {
		t.Errorf("error %q does not name the library", err)
	}
}

func TestLibraryNamesEnvOverride(t *testing.T) {
	t.Setenv(LibraryEnv, "/opt/fmod/libfmodL.so")
	names := LibraryNames()
	if len(names) != 1 || names[0] != "/opt/fmod/libfmodL.so" {
		t.Errorf("LibraryNames() = %v", names)
	}
}

func TestLibraryNamesDefault(t *testing.T) {
	t.Setenv(LibraryEnv, "")
	if len(LibraryNames()) == 0 {
		t.Error("LibraryNames() is empty")
	}
}

func TestLoadNonexistent(t *testing.T) {
	if _, err := Load("/nonexistent/libfmod-does-not-exist.so"); err == nil {
		t.Error("Load() succeeded for a missing file")
	}
}

func TestBytesToString(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("master\x00junk"), "master"},
		{[]byte("full"), "full"},
		{[]byte{0}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := BytesToString(c.in); got != c.want {
			t.Errorf("BytesToString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGoString(t *testing.T) {
	if got := GoString(0); got != "" {
		t.Errorf("GoString(0) = %q", got)
	}
	b := []byte("fmod\x00")
	if got := GoString(uintptrOf(&b[0])); got != "fmod" {
		t.Errorf("GoString() = %q, want fmod", got)
	}
}
