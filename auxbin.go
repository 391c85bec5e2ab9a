// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// binAux is a single BIN-encoded auxiliary field: 2 tag bytes, 1 type
// byte, then a type-dependent value, backed by a subslice of the owning
// BinRecord's payload.
type binAux []byte

// jumps gives the fixed width, in bytes, of the value following the type
// byte for each fixed-width aux type; -1 marks the variable-width types
// (Z, H nul-terminated; B length-prefixed), resolved separately by
// scanBinAux.
var jumps = [256]int{
	'A': 1,
	'c': 1, 'C': 1,
	's': 2, 'S': 2,
	'i': 4, 'I': 4,
	'f': 4,
	'Z': -1,
	'H': -1,
	'B': -1,
}

var auxKind = [256]byte{
	'A': 'A',
	'c': 'i', 'C': 'i',
	's': 'i', 'S': 'i',
	'i': 'i', 'I': 'i',
	'f': 'f',
	'Z': 'Z',
	'H': 'H',
	'B': 'B',
}

// scanBinAux walks the BIN aux byte region, returning the [start,end) byte
// range of each tagged field in physical (insertion) order. It validates
// only enough to find field boundaries; content decoding happens lazily in
// binAux.Value.
func scanBinAux(b []byte) ([][2]int, error) {
	var ranges [][2]int
	for i := 0; i+3 <= len(b); {
		typ := b[i+2]
		switch w := jumps[typ]; {
		case w > 0:
			end := i + 3 + w
			if end > len(b) {
				return nil, fmt.Errorf("htsrecord: truncated aux field %q", string(b[i:i+2]))
			}
			ranges = append(ranges, [2]int{i, end})
			i = end
		case typ == 'Z' || typ == 'H':
			j := i + 3
			for j < len(b) && b[j] != 0 {
				j++
			}
			if j >= len(b) {
				return nil, fmt.Errorf("htsrecord: unterminated %c aux field %q", typ, string(b[i:i+2]))
			}
			ranges = append(ranges, [2]int{i, j}) // excludes the NUL terminator.
			i = j + 1
		case typ == 'B':
			if i+8 > len(b) {
				return nil, fmt.Errorf("htsrecord: truncated B aux field %q", string(b[i:i+2]))
			}
			elemW := jumps[b[i+3]]
			if elemW <= 0 {
				return nil, fmt.Errorf("%w: %c", ErrUnknownAuxType, b[i+3])
			}
			n := int(binary.LittleEndian.Uint32(b[i+4 : i+8]))
			end := i + 8 + n*elemW
			if end > len(b) {
				return nil, fmt.Errorf("htsrecord: truncated B aux field %q", string(b[i:i+2]))
			}
			ranges = append(ranges, [2]int{i, end})
			i = end
		default:
			return nil, fmt.Errorf("%w: %c", ErrUnknownAuxType, typ)
		}
	}
	return ranges, nil
}

// Tag returns the 2-character tag of a.
func (a binAux) Tag() Tag { return Tag{a[0], a[1]} }

// Type returns the aux type byte, one of {A,c,C,s,S,i,I,f,Z,H,B}.
func (a binAux) Type() byte { return a[2] }

// Kind returns the widened logical kind of a's type, one of {A,i,f,Z,H,B}.
func (a binAux) Kind() byte { return auxKind[a[2]] }

// Value decodes a's value per its type byte. Integer types are widened to
// int64 regardless of their wire width, so callers never need a type
// switch per original byte size.
func (a binAux) Value() (interface{}, error) {
	switch t := a.Type(); t {
	case 'A':
		return a[3], nil
	case 'c':
		return int64(int8(a[3])), nil
	case 'C':
		return int64(a[3]), nil
	case 's':
		return int64(int16(binary.LittleEndian.Uint16(a[3:5]))), nil
	case 'S':
		return int64(binary.LittleEndian.Uint16(a[3:5])), nil
	case 'i':
		return int64(int32(binary.LittleEndian.Uint32(a[3:7]))), nil
	case 'I':
		return int64(binary.LittleEndian.Uint32(a[3:7])), nil
	case 'f':
		return math.Float32frombits(binary.LittleEndian.Uint32(a[3:7])), nil
	case 'Z':
		return string(a[3:]), nil
	case 'H':
		dst := make([]byte, hex.DecodedLen(len(a[3:])))
		if _, err := hex.Decode(dst, a[3:]); err != nil {
			return nil, err
		}
		return dst, nil
	case 'B':
		return a.arrayValue()
	default:
		return nil, fmt.Errorf("%w: %c", ErrUnknownAuxType, t)
	}
}

func (a binAux) arrayValue() (interface{}, error) {
	elemType := a[3]
	n := int(binary.LittleEndian.Uint32(a[4:8]))
	body := a[8:]
	r := bytes.NewReader(body)
	switch elemType {
	case 'c':
		v := make([]int8, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 'C':
		v := make([]uint8, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 's':
		v := make([]int16, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 'S':
		v := make([]uint16, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 'i':
		v := make([]int32, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 'I':
		v := make([]uint32, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	case 'f':
		v := make([]float32, n)
		return v, binary.Read(r, binary.LittleEndian, &v)
	default:
		return nil, fmt.Errorf("%w: array element type %c", ErrUnknownAuxType, elemType)
	}
}

// cgArray decodes a's value as a B,I array of uint32, the shape required
// of an escaped CIGAR tag. It returns false if a is not of type B with
// element type I.
func (a binAux) cgArray() ([]uint32, bool) {
	if a.Type() != 'B' || a[3] != 'I' {
		return nil, false
	}
	n := int(binary.LittleEndian.Uint32(a[4:8]))
	out := make([]uint32, n)
	_ = binary.Read(bytes.NewReader(a[8:]), binary.LittleEndian, &out)
	return out, true
}

// BinAuxView is a read-only view over a BinRecord's auxiliary tag region.
// Each BinRecord.AuxData call scans the region afresh and returns a new
// view; BinRecord's Has, Get, Keys and Values each build their own.
type BinAuxView struct {
	ranges [][2]int
	data   []byte
}

func newBinAuxView(b []byte) (BinAuxView, error) {
	ranges, err := scanBinAux(b)
	if err != nil {
		return BinAuxView{}, err
	}
	return BinAuxView{ranges: ranges, data: b}, nil
}

func (v BinAuxView) find(tag Tag) (binAux, bool) {
	for _, r := range v.ranges {
		a := binAux(v.data[r[0]:r[1]])
		if a.Tag() == tag {
			return a, true
		}
	}
	return nil, false
}

// Has reports whether tag is present.
func (v BinAuxView) Has(tag Tag) bool {
	_, ok := v.find(tag)
	return ok
}

// Get returns the decoded value for tag, or ErrUnknownTag if absent.
func (v BinAuxView) Get(tag Tag) (interface{}, error) {
	a, ok := v.find(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return a.Value()
}

// Keys returns the tags present, in physical (insertion) order.
func (v BinAuxView) Keys() []Tag {
	keys := make([]Tag, len(v.ranges))
	for i, r := range v.ranges {
		keys[i] = binAux(v.data[r[0]:r[1]]).Tag()
	}
	return keys
}

// Values returns the decoded value of every tag present, in the same
// order as Keys.
func (v BinAuxView) Values() ([]interface{}, error) {
	values := make([]interface{}, len(v.ranges))
	for i, r := range v.ranges {
		val, err := binAux(v.data[r[0]:r[1]]).Value()
		if err != nil {
			return nil, err
		}
		values[i] = val
	}
	return values, nil
}
