// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import "gopkg.in/check.v1"

func (s *S) TestDecodeTxtAux(c *check.C) {
	for _, t := range []struct {
		field string
		tag   Tag
		want  interface{}
	}{
		{"XA:A:Y", NewTag("XA"), byte('Y')},
		{"XI:i:-42", NewTag("XI"), int64(-42)},
		{"XZ:Z:hello", NewTag("XZ"), "hello"},
		{"NM:i:1", NewTag("NM"), int64(1)},
	} {
		tag, v, err := decodeTxtAux([]byte(t.field))
		c.Assert(err, check.Equals, nil)
		c.Check(tag, check.Equals, t.tag)
		c.Check(v, check.Equals, t.want)
	}
}

func (s *S) TestDecodeTxtAuxFloat(c *check.C) {
	_, v, err := decodeTxtAux([]byte("XF:f:3.14"))
	c.Assert(err, check.Equals, nil)
	f, ok := v.(float32)
	c.Assert(ok, check.Equals, true)
	c.Check(f > 3.13 && f < 3.15, check.Equals, true)
}

func (s *S) TestDecodeTxtAuxArray(c *check.C) {
	_, v, err := decodeTxtAux([]byte("XB:B:i,1,2,3"))
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.DeepEquals, []int32{1, 2, 3})
}

func (s *S) TestDecodeTxtAuxHex(c *check.C) {
	_, v, err := decodeTxtAux([]byte("XH:H:1A2B"))
	c.Assert(err, check.Equals, nil)
	c.Check(v, check.DeepEquals, []byte{0x1a, 0x2b})
}

func (s *S) TestDecodeTxtAuxMalformed(c *check.C) {
	_, _, err := decodeTxtAux([]byte("bad"))
	c.Check(err, check.Not(check.Equals), nil)
}
