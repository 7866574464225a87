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

// Package wavrec writes audio captured from the engine to WAV files.
package wavrec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// Writer encodes interleaved PCM to a WAV stream.
type Writer struct {
	enc      *wav.Encoder
	closer   io.Closer
	format   *audio.Format
	bitDepth int
	frames   int
	buf      audio.IntBuffer
}

// Create creates path and returns a Writer for it.
func Create(path string, sampleRate, channels, bitDepth int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f, sampleRate, channels, bitDepth)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	w.closer = f
	return w, nil
}

// NewWriter returns a Writer encoding to ws. Close finalizes the header but
// does not close ws.
func NewWriter(ws io.WriteSeeker, sampleRate, channels, bitDepth int) (*Writer, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("wavrec: unsupported bit depth %d", bitDepth)
	}
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("wavrec: invalid format %d Hz, %d channels", sampleRate, channels)
	}
	format := &audio.Format{NumChannels: channels, SampleRate: sampleRate}
	return &Writer{
		enc:      wav.NewEncoder(ws, sampleRate, bitDepth, channels, wavFormatPCM),
		format:   format,
		bitDepth: bitDepth,
		buf:      audio.IntBuffer{Format: format, SourceBitDepth: bitDepth},
	}, nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// WriteFloat32 writes interleaved samples in the range [-1, 1]. Values
// outside the range are clipped.
func (w *Writer) WriteFloat32(samples []float32) error {
	data := w.ints(len(samples))
	scale := float64(int64(1)<<(w.bitDepth-1) - 1)
	for i, s := range samples {
		v := math.Max(-1, math.Min(1, float64(s)))
		data[i] = int(math.Round(v * scale))
		if w.bitDepth == 8 {
			data[i] += 128
		}
	}
	return w.write(data)
}

// WritePCM writes little-endian interleaved samples at the writer's bit
// depth. 8-bit samples are unsigned. A trailing partial sample is an error.
func (w *Writer) WritePCM(pcm []byte) error {
	size := w.bitDepth / 8
	if len(pcm)%size != 0 {
		return fmt.Errorf("wavrec: %d bytes is not a whole number of %d-bit samples", len(pcm), w.bitDepth)
	}
	data := w.ints(len(pcm) / size)
	for i := range data {
		b := pcm[i*size:]
		switch w.bitDepth {
		case 8:
			data[i] = int(b[0])
		case 16:
			data[i] = int(int16(binary.LittleEndian.Uint16(b)))
		case 24:
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			data[i] = int(v<<8) >> 8
		case 32:
			data[i] = int(int32(binary.LittleEndian.Uint32(b)))
		}
	}
	return w.write(data)
}

func (w *Writer) ints(n int) []int {
	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	return w.buf.Data[:n]
}

func (w *Writer) write(data []int) error {
	if w.enc == nil {
		return errors.New("wavrec: writer is closed")
	}
	if len(data)%w.format.NumChannels != 0 {
		return fmt.Errorf("wavrec: %d samples is not a whole number of %d-channel frames", len(data), w.format.NumChannels)
	}
	if len(data) == 0 {
		return nil
	}
	w.buf.Data = data
	if err := w.enc.Write(&w.buf); err != nil {
		return err
	}
	w.frames += len(data) / w.format.NumChannels
	return nil
}

// Close writes the final header and closes the file if the writer created
// it.
func (w *Writer) Close() error {
	if w.enc == nil {
		return nil
	}
	err := w.enc.Close()
	w.enc = nil
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
