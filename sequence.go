// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

// n16TableRev maps a 4-bit BIN sequence code to its ASCII base.
var n16TableRev = [16]byte{
	'=', 'A', 'C', 'M', 'G', 'R', 'S', 'V', 'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N',
}

// Seq is a decoded 4-bit-packed nucleotide sequence. Internally it stores
// each wire byte with its two nibbles swapped, matching the ordering
// downstream sequence containers expect; Expand unswaps them again on the
// way to ASCII.
type Seq struct {
	length int
	packed []byte
}

func newSeqFromPacked(wire []byte, length int) Seq {
	packed := make([]byte, len(wire))
	for i, b := range wire {
		hi := b >> 4
		lo := b & 0xf
		packed[i] = lo<<4 | hi
	}
	return Seq{length: length, packed: packed}
}

// Len returns the number of bases in s.
func (s Seq) Len() int { return s.length }

// Packed returns the nibble-swapped backing bytes, ceil(Len()/2) long.
func (s Seq) Packed() []byte { return s.packed }

// Base returns the ASCII base at the given 0-based index.
func (s Seq) Base(i int) byte {
	b := s.packed[i/2]
	if i%2 == 0 {
		return n16TableRev[b&0xf]
	}
	return n16TableRev[b>>4]
}

// Expand decodes s into a fresh ASCII byte slice, one byte per base.
func (s Seq) Expand() []byte {
	out := make([]byte, s.length)
	for i := range out {
		out[i] = s.Base(i)
	}
	return out
}
