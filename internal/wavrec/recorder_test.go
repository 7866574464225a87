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
	"path/filepath"
	"testing"
	"time"

	"github.com/fmodgo/fmod/internal/wavrec"
)

func TestRecorderDrainsOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.wav")
	w, err := wavrec.Create(path, 48000, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	buf := wavrec.NewBuffer(1 << 16)
	r := wavrec.NewRecorder(buf, w, time.Hour)

	samples := make([]float32, 2*1000)
	for i := range samples {
		samples[i] = 0.25
	}
	buf.Write(samples)
	// A trailing half frame stays in the buffer.
	buf.Write([]float32{0.25})

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if got := w.Frames(); got != 1000 {
		t.Errorf("Frames: got: %v, want: %v", got, 1000)
	}
	if got := buf.Len(); got != 1 {
		t.Errorf("buffer Len: got: %v, want: %v", got, 1)
	}

	_, data := decode(t, path)
	if len(data) != 2000 {
		t.Fatalf("decoded samples: got: %v, want: %v", len(data), 2000)
	}
	if data[0] != 8192 {
		t.Errorf("first sample: got: %v, want: %v", data[0], 8192)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: got: %v", err)
	}
}
