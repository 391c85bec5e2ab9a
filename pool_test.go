// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import "gopkg.in/check.v1"

func (s *S) TestBinRecordPool(c *check.C) {
	buf := binFixture{refID: -1, nextRefID: -1, pos: -1, nextPos: -1, flag: 0x4, name: "read1"}.bytes()

	p := NewBinRecordPool()
	r := p.Get()
	c.Assert(r.Fill(buf), check.Equals, nil)
	c.Check(r.TemplateName(), check.Equals, "read1")
	p.Put(r)
	c.Check(r.IsFilled(), check.Equals, false)

	r2 := p.Get()
	c.Assert(r2.Fill(buf), check.Equals, nil)
	c.Check(r2.TemplateName(), check.Equals, "read1")
}

func (s *S) TestTxtRecordPool(c *check.C) {
	p := NewTxtRecordPool()
	r := p.Get()
	c.Assert(r.Fill([]byte("r1\t4\t*\t0\t255\t*\t*\t0\t0\t*\t*")), check.Equals, nil)
	c.Check(r.HasTemplateName(), check.Equals, true)
	p.Put(r)
	c.Check(r.IsFilled(), check.Equals, false)
}
