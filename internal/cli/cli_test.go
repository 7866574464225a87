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

package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
)

func TestTableAlignsColumns(t *testing.T) {
	out := Table([]string{"#", "Name"}, [][]string{{"1", "x"}, {"10", "yy", "ignored"}})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	col := strings.Index(lines[0], "Name")
	if col < 0 {
		t.Fatalf("header missing Name: %q", lines[0])
	}
	if got := strings.Index(lines[1], "x"); got != col {
		t.Errorf("row 1 second column at %d, want %d", got, col)
	}
	if got := strings.Index(lines[2], "yy"); got != col {
		t.Errorf("row 2 second column at %d, want %d", got, col)
	}
	if strings.Contains(out, "ignored") {
		t.Error("cell beyond the header was rendered")
	}
}

func TestFormatDuration(t *testing.T) {
	for _, tc := range []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{-time.Second, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{65*time.Second + 300*time.Millisecond, "1:05.3"},
		{10 * time.Minute, "10:00.0"},
	} {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	for _, tc := range []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	} {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() {
		Stdout, Stderr = oldOut, oldErr
	})

	PrintInfo("Output", "alsa")
	PrintError("boom")
	if !strings.Contains(out.String(), "Output:") || !strings.Contains(out.String(), "alsa") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error:") || !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

type helpCLI struct {
	Rate int `help:"Sample rate." default:"48000"`
	Loop bool `short:"l" help:"Loop forever."`

	Play struct {
		Path string `arg:"" help:"File to play."`
	} `cmd:"" help:"Play a file."`
}

func TestStyledHelpPrinter(t *testing.T) {
	var out bytes.Buffer
	var c helpCLI
	p, err := kong.New(&c,
		kong.Name("fmodplay"),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{})),
		kong.Writers(&out, &out),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = p.Parse([]string{"--help"})

	help := out.String()
	for _, want := range []string{"fmodplay", "Usage:", "Commands:", "play", "Play a file.", "--rate=", "(default: 48000)", "-l, --loop"} {
		if !strings.Contains(help, want) {
			t.Errorf("help does not contain %q:\n%s", want, help)
		}
	}
	if strings.Contains(help, "--help=") {
		t.Errorf("help flag rendered with a placeholder:\n%s", help)
	}
}
