// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"fmt"
)

// CigarOp is a single CIGAR operation: an operation type packed into the
// low 4 bits and a run length packed into the high 28 bits, matching the
// BAM wire representation directly so BinRecord can reinterpret its
// payload's u32 array as a []CigarOp with no conversion.
type CigarOp uint32

// NewCigarOp returns a CIGAR operation of the given type and run length.
func NewCigarOp(t CigarOpType, n int) CigarOp {
	return CigarOp(t) | (CigarOp(n) << 4)
}

// Type returns the operation type of co.
func (co CigarOp) Type() CigarOpType { return CigarOpType(co & 0xf) }

// Len returns the run length of co.
func (co CigarOp) Len() int { return int(co >> 4) }

// String returns co in the "<len><op>" form, e.g. "10M".
func (co CigarOp) String() string { return fmt.Sprintf("%d%s", co.Len(), co.Type().String()) }

// CigarOpType is the type of operation described by a CigarOp. The wire
// values are:
//
//	0 M  1 I  2 D  3 N  4 S  5 H  6 P  7 =  8 X  9 B
type CigarOpType byte

const (
	CigarMatch       CigarOpType = iota // Alignment match (sequence match or mismatch).
	CigarInsertion                      // Insertion to the reference.
	CigarDeletion                       // Deletion from the reference.
	CigarSkipped                        // Skipped region from the reference (e.g. intron).
	CigarSoftClipped                    // Soft clipping; clipped sequence present in SEQ.
	CigarHardClipped                    // Hard clipping; clipped sequence absent from SEQ.
	CigarPadded                         // Padding; silent deletion from padded reference.
	CigarEqual                          // Sequence match.
	CigarMismatch                       // Sequence mismatch.
	CigarBack                           // Complete Genomics backward operation; neither reference- nor query-consuming here.
	lastCigar
)

var cigarOps = []string{"M", "I", "D", "N", "S", "H", "P", "=", "X", "B", "?"}

// String returns the character representation of ct.
func (ct CigarOpType) String() string {
	if ct < 0 || ct > lastCigar {
		ct = lastCigar
	}
	return cigarOps[ct]
}

// Consume describes how many query (sequence) and reference bases a CIGAR
// operation of a given type consumes per unit of run length.
type Consume struct {
	Query, Reference int
}

// Consumes returns the Query/Reference consumption characteristics for ct.
// This is the single table shared by every reference-length computation in
// the package (AlignLength and TxtRecord.AlignLength). BinRecord.Alignment
// classifies operations with its own switch instead.
func (ct CigarOpType) Consumes() Consume { return consume[ct] }

var consume = []Consume{
	CigarMatch:       {Query: 1, Reference: 1},
	CigarInsertion:   {Query: 1, Reference: 0},
	CigarDeletion:    {Query: 0, Reference: 1},
	CigarSkipped:     {Query: 0, Reference: 1},
	CigarSoftClipped: {Query: 1, Reference: 0},
	CigarHardClipped: {Query: 0, Reference: 0},
	CigarPadded:      {Query: 0, Reference: 0},
	CigarEqual:       {Query: 1, Reference: 1},
	CigarMismatch:    {Query: 1, Reference: 1},
	CigarBack:        {Query: 0, Reference: 0},
	lastCigar:        {},
}

var cigarOpTypeLookup [256]CigarOpType

func init() {
	for i := range cigarOpTypeLookup {
		cigarOpTypeLookup[i] = lastCigar
	}
	for op, c := range []byte{'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X', 'B'} {
		cigarOpTypeLookup[c] = CigarOpType(op)
	}
}

// CigarString renders a slice of CigarOp in run-length form, e.g. "8M2I4M".
// An empty slice renders as the empty string: both BinRecord and TxtRecord
// treat a missing CIGAR as "", not the "*" a SAM line prints on the wire.
func CigarString(ops []CigarOp) string {
	if len(ops) == 0 {
		return ""
	}
	var b bytes.Buffer
	for _, co := range ops {
		fmt.Fprint(&b, co)
	}
	return b.String()
}

var powers = []int{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8}

func atoiCigarLen(b []byte) (int, error) {
	n := 0
	k := len(b) - 1
	if k >= len(powers) {
		return 0, fmt.Errorf("htsrecord: cigar run too long: %q", b)
	}
	for i, v := range b {
		if v < '0' || v > '9' {
			return 0, fmt.Errorf("htsrecord: invalid cigar run length: %q", b)
		}
		n += int(v-'0') * powers[k-i]
	}
	if n < 0 || 1<<28 <= n {
		return n, fmt.Errorf("htsrecord: cigar operation count out of range: %q", b)
	}
	return n, nil
}

// ParseCigar parses a run-length CIGAR string, e.g. "8M2I4M1D3M", into a
// slice of CigarOp. A lone "*" parses to (nil, nil).
func ParseCigar(b []byte) ([]CigarOp, error) {
	if len(b) == 1 && b[0] == '*' {
		return nil, nil
	}
	var ops []CigarOp
	for i := 0; i < len(b); i++ {
		j := i
		for ; j < len(b); j++ {
			if b[j] < '0' || '9' < b[j] {
				break
			}
		}
		if j == len(b) {
			return nil, fmt.Errorf("htsrecord: truncated cigar string %q", b)
		}
		n, err := atoiCigarLen(b[i:j])
		if err != nil {
			return nil, err
		}
		op := cigarOpTypeLookup[b[j]]
		if op == lastCigar {
			return nil, fmt.Errorf("htsrecord: failed to parse cigar string %q: unknown operation %q", b, b[j])
		}
		ops = append(ops, NewCigarOp(op, n))
		i = j
	}
	return ops, nil
}

// AlignLength returns the total number of reference-consuming positions
// described by ops (the sum of run lengths of M, D, N, =, X operations).
func AlignLength(ops []CigarOp) int64 {
	var n int64
	for _, co := range ops {
		n += int64(co.Len() * co.Type().Consumes().Reference)
	}
	return n
}
