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

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/fmodgo/fmod/internal/native"
)

// Tag is a metadata item read from a sound or stream.
type Tag struct {
	Type     TagType
	DataType TagDataType
	Name     string
	Data     []byte
	// Updated is set when the tag changed since it was last read, as
	// happens with internet radio streams.
	Updated bool
}

// nativeTag mirrors FMOD_TAG.
type nativeTag struct {
	typ      int32
	dataType int32
	name     uintptr
	data     uintptr
	dataLen  uint32
	updated  int32
}

// String decodes a text tag to UTF-8. Invalid UTF-8 in plain string tags is
// replaced with U+FFFD. Non-text tags yield their formatted value.
func (t Tag) String() string {
	var dec *encoding.Decoder
	switch t.DataType {
	case TagDataString:
		dec = unicode.UTF8.NewDecoder()
	case TagDataStringUTF16:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case TagDataStringUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case TagDataStringUTF8:
		dec = unicode.UTF8BOM.NewDecoder()
	case TagDataInt:
		v, _ := t.Int()
		return strconv.FormatInt(v, 10)
	case TagDataFloat:
		v, _ := t.Float()
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return string(t.Data)
	}
	s, err := dec.Bytes(trimNUL(t.Data, t.DataType))
	if err != nil {
		return string(t.Data)
	}
	return string(s)
}

// Int returns the value of a TagDataInt tag.
func (t Tag) Int() (int64, bool) {
	if t.DataType != TagDataInt {
		return 0, false
	}
	switch len(t.Data) {
	case 1:
		return int64(int8(t.Data[0])), true
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(t.Data))), true
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(t.Data))), true
	case 8:
		return int64(binary.LittleEndian.Uint64(t.Data)), true
	}
	return 0, false
}

// Float returns the value of a TagDataFloat tag.
func (t Tag) Float() (float64, bool) {
	if t.DataType != TagDataFloat {
		return 0, false
	}
	switch len(t.Data) {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(t.Data))), true
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(t.Data)), true
	}
	return 0, false
}

func trimNUL(b []byte, dt TagDataType) []byte {
	if dt == TagDataStringUTF16 || dt == TagDataStringUTF16BE {
		for len(b) >= 2 && b[len(b)-1] == 0 && b[len(b)-2] == 0 {
			b = b[:len(b)-2]
		}
		return b
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// NumTags returns the number of tags and how many were updated since they
// were last read.
func (s Sound) NumTags() (total, updated int, err error) {
	var t, u int32
	err = check(lib.Sound_GetNumTags(s.raw, &t, &u))
	return int(t), int(u), err
}

// Tag returns a tag. With an empty name index counts all tags, otherwise only
// tags called name. Missing tags yield ErrTagNotFound.
func (s Sound) Tag(name string, index int) (Tag, error) {
	var nt nativeTag
	if err := check(lib.Sound_GetTag(s.raw, cString(name), int32(index), unsafe.Pointer(&nt))); err != nil {
		return Tag{}, err
	}
	t := Tag{
		Type:     TagType(nt.typ),
		DataType: TagDataType(nt.dataType),
		Name:     native.GoString(nt.name),
		Updated:  nt.updated != 0,
	}
	if nt.data != 0 && nt.dataLen > 0 {
		t.Data = append([]byte(nil), unsafe.Slice((*byte)(native.Pointer(nt.data)), nt.dataLen)...)
	}
	return t, nil
}

// Tags returns every tag of the sound.
func (s Sound) Tags() ([]Tag, error) {
	n, _, err := s.NumTags()
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		t, err := s.Tag("", i)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
