// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"github.com/alignrec/htsrecord/internal/htsfixture"
	"gopkg.in/check.v1"
)

// TestGoldenBinRecord loads a fixed on-disk BAM-style record through the
// same mmap-backed path a large golden-file test suite would use, rather
// than building the bytes inline as the other BinRecord tests do.
func (s *S) TestGoldenBinRecord(c *check.C) {
	buf, err := htsfixture.Load("testdata/record.bin")
	c.Assert(err, check.Equals, nil)

	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)

	c.Check(r.TemplateName(), check.Equals, "readA")
	c.Check(r.Position(), check.Equals, int64(100))
	c.Check(r.MappingQuality(), check.Equals, uint8(60))
	cig, err := r.Cigar(true)
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "10M")
}

// TestGoldenTxtRecord loads a fixed on-disk SAM-style line through the same
// path and feeds it to FromTxtBytes.
func (s *S) TestGoldenTxtRecord(c *check.C) {
	buf, err := htsfixture.Load("testdata/record.sam")
	c.Assert(err, check.Equals, nil)

	r, err := FromTxtBytes(buf)
	c.Assert(err, check.Equals, nil)

	name, err := r.TemplateName()
	c.Assert(err, check.Equals, nil)
	c.Check(name, check.Equals, "readA")

	pos, err := r.Position()
	c.Assert(err, check.Equals, nil)
	c.Check(pos, check.Equals, int64(100))

	refName, err := r.RefName()
	c.Assert(err, check.Equals, nil)
	c.Check(refName, check.Equals, "chr1")

	cig, err := r.Cigar()
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "10M")
}
