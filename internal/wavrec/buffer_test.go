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
	"sync"
	"testing"

	"github.com/fmodgo/fmod/internal/wavrec"
)

const concurrency = 1000

func TestBufferConcurrentWrites(t *testing.T) {
	b := wavrec.NewBuffer(concurrency)

	ch := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			<-ch
			b.Write([]float32{1})
			wg.Done()
		}()
	}
	close(ch)
	wg.Wait()

	if l := b.Len(); l != concurrency {
		t.Errorf("b.Len: got: %v, want: %v", l, concurrency)
	}

	out := make([]float32, concurrency)
	if n := b.Read(out); n != concurrency {
		t.Fatalf("b.Read: got: %v, want: %v", n, concurrency)
	}
	for _, s := range out {
		if s != 1 {
			t.Errorf("Expected to find all 1s in the buffer, but there was a '%v'", s)
			break
		}
	}
}

func TestBufferConcurrentReadWrites(t *testing.T) {
	b := wavrec.NewBuffer(concurrency)
	ch := make(chan struct{})
	doneWriting := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()

		<-ch
		for i := 0; i < concurrency; i++ {
			b.Write([]float32{1})
		}
		close(doneWriting)
	}()
	go func() {
		defer wg.Done()

		<-ch
		read := 0
		for {
			lastRead := false
			select {
			case <-doneWriting:
				lastRead = true
			default:
			}

			buf := make([]float32, concurrency)
			read += b.Read(buf)

			if lastRead {
				if read != concurrency {
					t.Errorf("total samples read: got: %v want: %v", read, concurrency)
				}
				break
			}
		}
	}()
	close(ch)
	wg.Wait()
}

func TestBufferDropsWhenFull(t *testing.T) {
	b := wavrec.NewBuffer(4)
	if n := b.Write([]float32{1, 2, 3}); n != 3 {
		t.Errorf("first Write: got: %v, want: %v", n, 3)
	}
	if n := b.Write([]float32{4, 5, 6}); n != 1 {
		t.Errorf("second Write: got: %v, want: %v", n, 1)
	}
	if d := b.Dropped(); d != 2 {
		t.Errorf("Dropped: got: %v, want: %v", d, 2)
	}

	out := make([]float32, 2)
	if n := b.Read(out); n != 2 || out[0] != 1 || out[1] != 2 {
		t.Errorf("Read: got: %v %v", n, out)
	}
	if l := b.Len(); l != 2 {
		t.Errorf("Len after read: got: %v, want: %v", l, 2)
	}
}
