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

package wavrec_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-audio/wav"

	"github.com/fmodgo/fmod/internal/wavrec"
)

func decode(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return d, buf.Data
}

func TestWritePCM16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := wavrec.Create(path, 44100, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, -1, 32767, -32768, 100}
	pcm := make([]byte, 2*len(want))
	for i, v := range want {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v)))
	}
	if err := w.WritePCM(pcm); err != nil {
		t.Fatal(err)
	}
	if got := w.Frames(); got != 3 {
		t.Errorf("Frames: got: %v, want: %v", got, 3)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	d, got := decode(t, path)
	if d.SampleRate != 44100 || d.NumChans != 2 || d.BitDepth != 16 {
		t.Errorf("format: got: %v Hz %v ch %v bit", d.SampleRate, d.NumChans, d.BitDepth)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("samples: got: %v, want: %v", got, want)
	}
}

func TestWriteFloat32Clips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := wavrec.Create(path, 48000, 1, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFloat32([]float32{0, 1, -1, 2, -2, 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	_, got := decode(t, path)
	want := []int{0, 32767, -32767, 32767, -32767, 16384}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("samples: got: %v, want: %v", got, want)
	}
}

func TestWriterErrors(t *testing.T) {
	if _, err := wavrec.Create(filepath.Join(t.TempDir(), "x.wav"), 44100, 2, 12); err == nil {
		t.Error("Create with 12-bit depth: got nil error")
	}

	w, err := wavrec.Create(filepath.Join(t.TempDir(), "y.wav"), 44100, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WritePCM([]byte{0, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := w.WritePCM([]byte{1, 2, 3}); err == nil {
		t.Error("WritePCM with a partial sample: got nil error")
	}
	if err := w.WritePCM([]byte{1, 2}); err == nil {
		t.Error("WritePCM with a partial frame: got nil error")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFloat32([]float32{0, 0}); err == nil {
		t.Error("write after Close: got nil error")
	}
}
