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

package fmod

// MemoryStats reports engine memory usage.
type MemoryStats struct {
	CurrentAllocated int
	MaxAllocated     int
}

// MemoryGetStats returns the engine's memory usage. A blocking query flushes
// the DSP network first so that queued allocations are counted, which can be
// costly.
func MemoryGetStats(blocking bool) (MemoryStats, error) {
	var cur, max int32
	err := readLocked(func() error {
		return check(lib.Memory_GetStats(&cur, &max, boolToC(blocking)))
	})
	if err != nil {
		return MemoryStats{}, err
	}
	return MemoryStats{CurrentAllocated: int(cur), MaxAllocated: int(max)}, nil
}
