// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"encoding/binary"

	"github.com/kortschak/utter"
	"gopkg.in/check.v1"
)

type binFixture struct {
	refID, nextRefID int32
	pos, nextPos      int32
	mapQ              uint8
	bin               uint16
	flag              uint16
	lSeq              int32
	tlen              int32
	name              string
	cigar             []CigarOp
	seq               []byte
	qual              []byte
	aux               []byte
}

func (f binFixture) bytes() []byte {
	name := append([]byte(f.name), 0)
	var payload []byte
	payload = append(payload, name...)
	for _, op := range f.cigar {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(op))
		payload = append(payload, b...)
	}
	payload = append(payload, f.seq...)
	payload = append(payload, f.qual...)
	payload = append(payload, f.aux...)

	blockSize := uint32(32 + len(payload))
	buf := make([]byte, 36+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], blockSize)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(f.refID))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(f.pos))
	buf[12] = uint8(len(name))
	buf[13] = f.mapQ
	binary.LittleEndian.PutUint16(buf[14:16], f.bin)
	binary.LittleEndian.PutUint16(buf[16:18], uint16(len(f.cigar)))
	binary.LittleEndian.PutUint16(buf[18:20], f.flag)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(f.lSeq))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(f.nextRefID))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(f.nextPos))
	binary.LittleEndian.PutUint32(buf[32:36], uint32(f.tlen))
	copy(buf[36:], payload)
	return buf
}

func cgBinAux(tag Tag, ops []uint32) []byte {
	var b []byte
	b = append(b, tag[0], tag[1], 'B', 'I')
	n := make([]byte, 4)
	binary.LittleEndian.PutUint32(n, uint32(len(ops)))
	b = append(b, n...)
	for _, v := range ops {
		e := make([]byte, 4)
		binary.LittleEndian.PutUint32(e, v)
		b = append(b, e...)
	}
	return b
}

func fill(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}

type fakeRefDict struct {
	names []string
	lens  []int64
}

func (f fakeRefDict) RefName(id int) (string, bool) {
	if id < 1 || id > len(f.names) {
		return "", false
	}
	return f.names[id-1], true
}

func (f fakeRefDict) RefLen(id int) (int64, bool) {
	if id < 1 || id > len(f.lens) {
		return 0, false
	}
	return f.lens[id-1], true
}

func (s *S) TestBinRecordMinimalUnmapped(c *check.C) {
	buf := binFixture{refID: -1, nextRefID: -1, pos: -1, nextPos: -1, flag: 0x4, name: "read1"}.bytes()
	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)
	c.Check(r.IsMapped(), check.Equals, false)
	c.Check(r.TemplateName(), check.Equals, "read1")
	cig, err := r.Cigar(true)
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "")
	_, err = r.Sequence()
	c.Check(err, check.Equals, ErrMissing)
}

func (s *S) TestBinRecordMappedSmallCigar(c *check.C) {
	buf := binFixture{
		refID: 0, nextRefID: -1, pos: 99, nextPos: -1,
		mapQ: 60, lSeq: 10, name: "readA",
		cigar: []CigarOp{NewCigarOp(CigarMatch, 10)},
		seq:   fill(5, 0x11),
		qual:  fill(10, 30),
	}.bytes()
	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)
	r.SetReferenceDict(fakeRefDict{names: []string{"chr1"}, lens: []int64{1000}})

	c.Check(r.Position(), check.Equals, int64(100))
	c.Check(r.RightPosition(), check.Equals, int64(109))
	c.Check(r.AlignLength(), check.Equals, int64(10))
	cig, err := r.Cigar(true)
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "10M")
	c.Check(r.MappingQuality(), check.Equals, uint8(60))
	name, err := r.RefName()
	c.Assert(err, check.Equals, nil)
	c.Check(name, check.Equals, "chr1")
}

func (s *S) TestBinRecordCGEscape(c *check.C) {
	aux := cgBinAux(NewTag("CG"), []uint32{
		uint32(NewCigarOp(CigarMatch, 100)),
		uint32(NewCigarOp(CigarInsertion, 25)),
		uint32(NewCigarOp(CigarDeletion, 25)),
	})
	buf := binFixture{
		refID: 0, nextRefID: -1, pos: 0, nextPos: -1,
		lSeq: 150, name: "readC",
		cigar: []CigarOp{NewCigarOp(CigarSoftClipped, 150), NewCigarOp(CigarSkipped, 0)},
		seq:   fill(75, 0x11),
		qual:  fill(150, 40),
		aux:   aux,
	}.bytes()
	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)

	n, err := r.NCigarOp(true)
	c.Assert(err, check.Equals, nil)
	c.Check(n, check.Equals, uint32(3))

	cig, err := r.Cigar(true)
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "100M25I25D")

	cig, err = r.Cigar(false)
	c.Assert(err, check.Equals, nil)
	c.Check(cig, check.Equals, "150S0N")

	c.Check(r.AlignLength(), check.Equals, int64(0))
}

func (s *S) TestBinRecordRoundTrip(c *check.C) {
	buf := binFixture{
		refID: 0, nextRefID: -1, pos: 99, nextPos: -1,
		mapQ: 60, lSeq: 10, name: "readA",
		cigar: []CigarOp{NewCigarOp(CigarMatch, 10)},
		seq:   fill(5, 0x11),
		qual:  fill(10, 30),
	}.bytes()
	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)
	out, err := r.Serialize()
	c.Assert(err, check.Equals, nil)
	if !bytes.Equal(out, buf) {
		c.Log(utter.Sdump(r))
	}
	c.Check(out, check.DeepEquals, buf)
}

func (s *S) TestBinRecordCopyAndEmpty(c *check.C) {
	buf := binFixture{refID: -1, nextRefID: -1, pos: -1, nextPos: -1, flag: 0x4, name: "read1"}.bytes()
	r, err := FromBinBytes(buf)
	c.Assert(err, check.Equals, nil)

	cp := r.Copy()
	c.Check(cp.Equal(r), check.Equals, true)

	r.Empty()
	c.Check(r.IsFilled(), check.Equals, false)
	c.Check(cp.IsFilled(), check.Equals, true)

	r.Empty()
	c.Check(r.IsFilled(), check.Equals, false)
}

func (s *S) TestBinRecordShortBuffer(c *check.C) {
	_, err := FromBinBytes([]byte{1, 2, 3})
	c.Check(err, check.Not(check.Equals), nil)
}
