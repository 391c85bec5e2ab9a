// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

// Tag is a 2-character auxiliary tag label, e.g. "NM" or "CG".
type Tag [2]byte

// NewTag returns a Tag from a string. It panics if len(tag) != 2.
func NewTag(tag string) Tag {
	if len(tag) != 2 {
		panic("htsrecord: illegal tag length")
	}
	return Tag{tag[0], tag[1]}
}

// String returns the string representation of a Tag.
func (t Tag) String() string { return string(t[:]) }

// cgTag is the reserved tag name used when an oversized CIGAR has been
// escaped into a B,I array: the stored CIGAR becomes a two-operation
// pseudo CIGAR whose first operation soft-clips the whole sequence, and
// the true operations live under this tag instead.
var cgTag = Tag{'C', 'G'}
