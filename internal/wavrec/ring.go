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

// Span is a region of a looping record buffer, in samples.
type Span struct {
	Offset uint32
	Length uint32
}

// Pending returns the regions recorded since last, given the current record
// position cur in a ring of size samples. A wrapped region is split in two.
func Pending(last, cur, size uint32) []Span {
	if size == 0 || last == cur || last >= size || cur >= size {
		return nil
	}
	if cur > last {
		return []Span{{Offset: last, Length: cur - last}}
	}
	spans := []Span{{Offset: last, Length: size - last}}
	if cur > 0 {
		spans = append(spans, Span{Offset: 0, Length: cur})
	}
	return spans
}
