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

package wavrec

import (
	"sync"
)

// Buffer is a bounded FIFO of interleaved float32 samples shared between the
// mixer thread and a writer goroutine. Write never blocks; samples that do
// not fit are dropped and counted.
type Buffer struct {
	m       sync.Mutex
	samples []float32
	limit   int
	dropped int
}

// NewBuffer returns a Buffer holding at most limit samples.
func NewBuffer(limit int) *Buffer {
	return &Buffer{
		samples: make([]float32, 0, limit),
		limit:   limit,
	}
}

// Len returns the number of samples waiting to be read.
func (b *Buffer) Len() int {
	b.m.Lock()
	defer b.m.Unlock()

	return len(b.samples)
}

// Write appends as many samples as fit and returns that count.
func (b *Buffer) Write(samples []float32) int {
	b.m.Lock()
	defer b.m.Unlock()

	n := min(len(samples), b.limit-len(b.samples))
	b.samples = append(b.samples, samples[:n]...)
	b.dropped += len(samples) - n
	return n
}

// Read moves up to len(out) samples into out.
func (b *Buffer) Read(out []float32) int {
	b.m.Lock()
	defer b.m.Unlock()

	n := copy(out, b.samples)
	b.samples = append(b.samples[:0], b.samples[n:]...)
	return n
}

// Dropped returns the number of samples discarded because the buffer was
// full.
func (b *Buffer) Dropped() int {
	b.m.Lock()
	defer b.m.Unlock()

	return b.dropped
}
