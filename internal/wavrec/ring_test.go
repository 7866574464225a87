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
	"reflect"
	"testing"

	"github.com/fmodgo/fmod/internal/wavrec"
)

func TestPending(t *testing.T) {
	cases := []struct {
		Name           string
		Last, Cur, Len uint32
		Want           []wavrec.Span
	}{
		{Name: "none", Last: 10, Cur: 10, Len: 100},
		{Name: "forward", Last: 10, Cur: 30, Len: 100, Want: []wavrec.Span{{Offset: 10, Length: 20}}},
		{Name: "wrapped", Last: 90, Cur: 5, Len: 100, Want: []wavrec.Span{{Offset: 90, Length: 10}, {Offset: 0, Length: 5}}},
		{Name: "wrapped to zero", Last: 90, Cur: 0, Len: 100, Want: []wavrec.Span{{Offset: 90, Length: 10}}},
		{Name: "empty ring", Last: 0, Cur: 5, Len: 0},
		{Name: "out of range", Last: 0, Cur: 100, Len: 100},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got := wavrec.Pending(c.Last, c.Cur, c.Len)
			if !reflect.DeepEqual(got, c.Want) {
				t.Errorf("Pending(%d, %d, %d): got: %v, want: %v", c.Last, c.Cur, c.Len, got, c.Want)
			}
		})
	}
}
