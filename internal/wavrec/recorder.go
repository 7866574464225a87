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
	"time"
)

// Recorder drains a Buffer into a Writer on its own goroutine.
type Recorder struct {
	buf      *Buffer
	w        *Writer
	interval time.Duration
	chunk    []float32
	err      atomicError
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewRecorder starts draining buf into w every interval.
func NewRecorder(buf *Buffer, w *Writer, interval time.Duration) *Recorder {
	r := &Recorder{
		buf:      buf,
		w:        w,
		interval: interval,
		chunk:    make([]float32, 4096*w.format.NumChannels),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Recorder) loop() {
	defer close(r.done)
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			r.drain()
		case <-r.stop:
			r.drain()
			return
		}
	}
}

func (r *Recorder) drain() {
	channels := r.w.format.NumChannels
	for {
		// Only whole frames are taken so channels stay aligned.
		n := min(r.buf.Len(), len(r.chunk))
		n -= n % channels
		if n == 0 {
			return
		}
		n = r.buf.Read(r.chunk[:n])
		if r.err.Load() != nil {
			continue
		}
		if err := r.w.WriteFloat32(r.chunk[:n]); err != nil {
			r.err.TryStore(err)
		}
	}
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err.Load()
}

// Close stops the recorder, writes what remains in the buffer and closes the
// writer. It returns the first error encountered.
func (r *Recorder) Close() error {
	r.once.Do(func() {
		close(r.stop)
		<-r.done
		r.err.TryStore(r.w.Close())
	})
	return r.err.Load()
}

type atomicError struct {
	err error
	m   sync.Mutex
}

func (a *atomicError) TryStore(err error) {
	a.m.Lock()
	defer a.m.Unlock()
	if a.err == nil {
		a.err = err
	}
}

func (a *atomicError) Load() error {
	a.m.Lock()
	defer a.m.Unlock()
	return a.err
}
