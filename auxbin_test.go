// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"encoding/binary"

	"gopkg.in/check.v1"
)

func appendBinAux(buf *bytes.Buffer, tag Tag, typ byte, value interface{}) {
	buf.Write(tag[:])
	buf.WriteByte(typ)
	switch v := value.(type) {
	case int8:
		buf.WriteByte(byte(v))
	case uint8:
		buf.WriteByte(v)
	case int16:
		binary.Write(buf, binary.LittleEndian, v)
	case uint32:
		binary.Write(buf, binary.LittleEndian, v)
	case float32:
		binary.Write(buf, binary.LittleEndian, v)
	case string:
		buf.WriteString(v)
		buf.WriteByte(0)
	case []uint32:
		buf.WriteByte('I')
		binary.Write(buf, binary.LittleEndian, uint32(len(v)))
		for _, e := range v {
			binary.Write(buf, binary.LittleEndian, e)
		}
	}
}

func (s *S) TestScanBinAux(c *check.C) {
	var buf bytes.Buffer
	appendBinAux(&buf, NewTag("NM"), 'C', uint8(1))
	appendBinAux(&buf, NewTag("XZ"), 'Z', "hello")
	appendBinAux(&buf, NewTag("CG"), 'B', []uint32{100, 25, 25})

	view, err := newBinAuxView(buf.Bytes())
	c.Assert(err, check.Equals, nil)

	c.Check(view.Keys(), check.DeepEquals, []Tag{NewTag("NM"), NewTag("XZ"), NewTag("CG")})
	c.Check(view.Has(NewTag("NM")), check.Equals, true)
	c.Check(view.Has(NewTag("ZZ")), check.Equals, false)

	v, err := view.Get(NewTag("NM"))
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, int64(1))

	v, err = view.Get(NewTag("XZ"))
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.Equals, "hello")

	a, ok := view.find(NewTag("CG"))
	c.Assert(ok, check.Equals, true)
	arr, ok := a.cgArray()
	c.Assert(ok, check.Equals, true)
	c.Check(arr, check.DeepEquals, []uint32{100, 25, 25})
}

func (s *S) TestScanBinAuxUnknownType(c *check.C) {
	_, err := scanBinAux([]byte{'N', 'M', '?'})
	c.Check(err, check.Not(check.Equals), nil)
}
