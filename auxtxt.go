// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
)

// decodeTxtAux decodes a single "TAG:TYPE:VALUE" auxiliary field, as found
// after the 11 mandatory tab-separated fields of a TXT line.
func decodeTxtAux(field []byte) (Tag, interface{}, error) {
	parts := bytes.SplitN(field, []byte{':'}, 3)
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 1 {
		return Tag{}, nil, fmt.Errorf("htsrecord: invalid aux field %q", field)
	}
	tag := Tag{parts[0][0], parts[0][1]}
	value, err := decodeTxtAuxValue(parts[1][0], parts[2])
	if err != nil {
		return Tag{}, nil, fmt.Errorf("htsrecord: invalid aux field %q: %w", field, err)
	}
	return tag, value, nil
}

func decodeTxtAuxValue(typ byte, raw []byte) (interface{}, error) {
	switch typ {
	case 'A':
		if len(raw) != 1 {
			return nil, fmt.Errorf("htsrecord: A field must be one character, got %q", raw)
		}
		return raw[0], nil
	case 'i':
		v, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case 'f':
		v, err := strconv.ParseFloat(string(raw), 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case 'Z':
		return string(raw), nil
	case 'H':
		dst := make([]byte, hex.DecodedLen(len(raw)))
		if _, err := hex.Decode(dst, raw); err != nil {
			return nil, err
		}
		return dst, nil
	case 'B':
		return decodeTxtAuxArray(raw)
	default:
		return nil, fmt.Errorf("%w: %c", ErrUnknownAuxType, typ)
	}
}

func decodeTxtAuxArray(raw []byte) (interface{}, error) {
	if len(raw) < 2 || raw[1] != ',' {
		return nil, fmt.Errorf("htsrecord: invalid B array field %q", raw)
	}
	elemType := raw[0]
	fields := bytes.Split(raw[2:], []byte{','})
	switch elemType {
	case 'c':
		v := make([]int8, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(string(f), 10, 8)
			if err != nil {
				return nil, err
			}
			v[i] = int8(n)
		}
		return v, nil
	case 'C':
		v := make([]uint8, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseUint(string(f), 10, 8)
			if err != nil {
				return nil, err
			}
			v[i] = uint8(n)
		}
		return v, nil
	case 's':
		v := make([]int16, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(string(f), 10, 16)
			if err != nil {
				return nil, err
			}
			v[i] = int16(n)
		}
		return v, nil
	case 'S':
		v := make([]uint16, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseUint(string(f), 10, 16)
			if err != nil {
				return nil, err
			}
			v[i] = uint16(n)
		}
		return v, nil
	case 'i':
		v := make([]int32, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(string(f), 10, 32)
			if err != nil {
				return nil, err
			}
			v[i] = int32(n)
		}
		return v, nil
	case 'I':
		v := make([]uint32, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseUint(string(f), 10, 32)
			if err != nil {
				return nil, err
			}
			v[i] = uint32(n)
		}
		return v, nil
	case 'f':
		v := make([]float32, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseFloat(string(f), 32)
			if err != nil {
				return nil, err
			}
			v[i] = float32(n)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: array element type %c", ErrUnknownAuxType, elemType)
	}
}
