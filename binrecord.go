// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/alignrec/htsrecord/internal/bufpool"
)

// binHeaderLen is the size in bytes of the fixed-width portion of a BIN
// record: the block_size field plus the 32 bytes of fixed alignment core
// fields that follow it.
const binHeaderLen = 36

// BinRecord is a single BAM-style alignment record. It owns a packed byte
// buffer: a 36-byte fixed header followed by a variable-length payload
// (read name, CIGAR operations, packed sequence, quality, auxiliary tags).
// Fill computes the payload offsets once from the header and keeps them
// alongside it; field accessors decode from the stored bytes on every call
// rather than from a parsed struct, so a single BinRecord can be refilled
// and reused across a hot read loop without reallocating.
//
// A BinRecord optionally holds a non-owning reference to a ReferenceDict
// for resolving reference ids to names and lengths. The dictionary is a
// weak back-edge: holding one must never extend its owner's lifetime.
type BinRecord struct {
	filled bool
	header [binHeaderLen]byte
	data   []byte // variable payload only; length == block_size - 32.

	nameLen int
	nCigar  int
	lSeq    int

	cigarOff int
	seqOff   int
	qualOff  int
	auxOff   int

	ref ReferenceDict
}

// NewBinRecord returns an empty, unfilled BinRecord.
func NewBinRecord() *BinRecord { return &BinRecord{} }

// FromBinBytes allocates a new BinRecord and fills it from buf.
func FromBinBytes(buf []byte) (*BinRecord, error) {
	r := &BinRecord{}
	if err := r.Fill(buf); err != nil {
		return nil, err
	}
	return r, nil
}

// IsFilled reports whether r currently holds a parsed record.
func (r *BinRecord) IsFilled() bool { return r.filled }

// Fill replaces r's contents by parsing buf as one serialized BIN record.
// buf is copied; r does not retain a reference to the caller's slice.
// Fill either fully succeeds or leaves r exactly as it was before the call.
func (r *BinRecord) Fill(buf []byte) error {
	if len(buf) < binHeaderLen {
		return fmt.Errorf("%w: need at least %d bytes, got %d", ErrShortBuffer, binHeaderLen, len(buf))
	}
	var header [binHeaderLen]byte
	copy(header[:], buf[:binHeaderLen])

	blockSize := int32(binary.LittleEndian.Uint32(header[0:4]))
	if blockSize < 32 {
		return fmt.Errorf("htsrecord: block_size %d smaller than the fixed header it must cover", blockSize)
	}
	payloadLen := int(blockSize) - 32
	if len(buf) < binHeaderLen+payloadLen {
		return fmt.Errorf("%w: need %d bytes of payload, got %d", ErrShortBuffer, payloadLen, len(buf)-binHeaderLen)
	}

	nameLen := int(header[12])
	nCigar := int(binary.LittleEndian.Uint16(header[16:18]))
	lSeq := int(int32(binary.LittleEndian.Uint32(header[20:24])))

	cigarOff := nameLen
	seqOff := cigarOff + 4*nCigar
	qualOff := seqOff + (lSeq+1)/2
	auxOff := qualOff + lSeq
	if auxOff > payloadLen {
		return fmt.Errorf("%w: field offsets exceed payload of %d bytes", ErrShortBuffer, payloadLen)
	}

	if r.data != nil {
		bufpool.PutBuffer(r.data)
	}
	data := bufpool.GetBuffer(payloadLen)
	copy(data, buf[binHeaderLen:binHeaderLen+payloadLen])

	r.header = header
	r.data = data
	r.nameLen, r.nCigar, r.lSeq = nameLen, nCigar, lSeq
	r.cigarOff, r.seqOff, r.qualOff, r.auxOff = cigarOff, seqOff, qualOff, auxOff
	r.filled = true
	return nil
}

// Empty resets r to the empty state, releasing its buffers. Calling Empty
// on an already-empty record is a no-op.
func (r *BinRecord) Empty() {
	if r.data != nil {
		bufpool.PutBuffer(r.data)
	}
	ref := r.ref
	*r = BinRecord{}
	r.ref = ref
}

// Reset is an alias for Empty, named for call sites that refill a pooled
// record rather than discard it.
func (r *BinRecord) Reset() { r.Empty() }

// SetReferenceDict attaches d as r's reference dictionary for name and
// length lookups. A nil d detaches any dictionary currently held.
func (r *BinRecord) SetReferenceDict(d ReferenceDict) { r.ref = d }

// Serialize returns the exact bytes that, if passed to Fill, reproduce r.
func (r *BinRecord) Serialize() ([]byte, error) {
	if !r.filled {
		return nil, ErrNotFilled
	}
	out := make([]byte, binHeaderLen+len(r.data))
	copy(out[:binHeaderLen], r.header[:])
	copy(out[binHeaderLen:], r.data)
	return out, nil
}

// Copy returns a deep copy of r. The copy shares r's ReferenceDict (a
// non-owning reference) but owns an independent payload buffer drawn from
// the same pool Fill uses, so the copy can later be Empty'd or pooled
// exactly like a Fill-produced record.
func (r *BinRecord) Copy() *BinRecord {
	cp := *r
	if r.data != nil {
		cp.data = bufpool.GetBuffer(len(r.data))
		copy(cp.data, r.data)
	}
	return &cp
}

// Equal reports whether r and o have identical fixed header fields and
// identical used payload bytes.
func (r *BinRecord) Equal(o *BinRecord) bool {
	if r.filled != o.filled {
		return false
	}
	if !r.filled {
		return true
	}
	return r.header == o.header && bytes.Equal(r.data, o.data)
}

func (r *BinRecord) refID() int32 {
	return int32(binary.LittleEndian.Uint32(r.header[4:8]))
}

func (r *BinRecord) posStored() int32 {
	return int32(binary.LittleEndian.Uint32(r.header[8:12]))
}

func (r *BinRecord) nextRefIDStored() int32 {
	return int32(binary.LittleEndian.Uint32(r.header[24:28]))
}

func (r *BinRecord) nextPosStored() int32 {
	return int32(binary.LittleEndian.Uint32(r.header[28:32]))
}

// Flag returns r's alignment FLAG bitmask.
func (r *BinRecord) Flag() Flags {
	return Flags(binary.LittleEndian.Uint16(r.header[18:20]))
}

// IsMapped reports whether r's Unmapped flag bit is clear.
func (r *BinRecord) IsMapped() bool { return r.Flag().IsMapped() }

// IsPrimary reports whether neither the Secondary nor Supplementary flag
// bit is set.
func (r *BinRecord) IsPrimary() bool { return r.Flag().IsPrimary() }

// IsPositiveStrand reports whether r's Reverse flag bit is clear.
func (r *BinRecord) IsPositiveStrand() bool { return r.Flag().IsPositiveStrand() }

// RefID returns r's 1-based reference id; 0 means unmapped.
func (r *BinRecord) RefID() int64 { return int64(r.refID()) + 1 }

// RefName resolves r's reference id to a name through its attached
// ReferenceDict. It fails with ErrUnmapped if r has no reference, or
// ErrNoReader if no dictionary is attached.
func (r *BinRecord) RefName() (string, error) {
	if !r.filled {
		return "", ErrNotFilled
	}
	if r.refID() < 0 {
		return "", ErrUnmapped
	}
	if r.ref == nil {
		return "", ErrNoReader
	}
	name, ok := r.ref.RefName(int(r.RefID()))
	if !ok {
		return "", ErrUnmapped
	}
	return name, nil
}

// RefLen resolves r's reference id to a length through its attached
// ReferenceDict, under the same preconditions as RefName.
func (r *BinRecord) RefLen() (int64, error) {
	if !r.filled {
		return 0, ErrNotFilled
	}
	if r.refID() < 0 {
		return 0, ErrUnmapped
	}
	if r.ref == nil {
		return 0, ErrNoReader
	}
	l, ok := r.ref.RefLen(int(r.RefID()))
	if !ok {
		return 0, ErrUnmapped
	}
	return l, nil
}

// Position returns r's 1-based leftmost mapping position.
func (r *BinRecord) Position() int64 { return int64(r.posStored()) + 1 }

// RightPosition returns the 1-based rightmost mapping position implied by
// the stored CIGAR.
func (r *BinRecord) RightPosition() int64 { return r.Position() + r.AlignLength() - 1 }

// NextRefID returns the 1-based reference id of r's mate.
func (r *BinRecord) NextRefID() int64 { return int64(r.nextRefIDStored()) + 1 }

// NextPosition returns the 1-based leftmost mapping position of r's mate.
func (r *BinRecord) NextPosition() int64 { return int64(r.nextPosStored()) + 1 }

// MappingQuality returns r's Phred-scaled mapping quality.
func (r *BinRecord) MappingQuality() uint8 { return r.header[13] }

// TemplateLength returns r's signed observed template length.
func (r *BinRecord) TemplateLength() int32 {
	return int32(binary.LittleEndian.Uint32(r.header[32:36]))
}

// TemplateName returns r's read name with the trailing NUL removed.
func (r *BinRecord) TemplateName() string {
	n := r.nameLen - 1
	if n < 0 {
		n = 0
	}
	return string(r.data[:n])
}

// cgEscaped reports whether the true CIGAR is stored inside the CG
// auxiliary tag rather than in the header's own cigar slot, and if so
// returns the decoded operations.
func (r *BinRecord) cgEscaped() ([]CigarOp, bool) {
	if r.nCigar != 2 {
		return nil, false
	}
	first := binary.LittleEndian.Uint32(r.data[r.cigarOff : r.cigarOff+4])
	if first != uint32(r.lSeq<<4)|4 {
		return nil, false
	}
	view, err := r.AuxData()
	if err != nil {
		return nil, false
	}
	a, ok := view.find(cgTag)
	if !ok {
		return nil, false
	}
	arr, ok := a.cgArray()
	if !ok {
		return nil, false
	}
	ops := make([]CigarOp, len(arr))
	for i, v := range arr {
		ops[i] = CigarOp(v)
	}
	return ops, true
}

func (r *BinRecord) storedCigar() []CigarOp {
	ops := make([]CigarOp, r.nCigar)
	for i := range ops {
		off := r.cigarOff + 4*i
		ops[i] = CigarOp(binary.LittleEndian.Uint32(r.data[off : off+4]))
	}
	return ops
}

// CigarRLE returns r's CIGAR operations. When checkCG is true and the
// stored CIGAR is a CG-escaped pseudo-operation, the true operations are
// decoded from the CG auxiliary tag instead of the header's cigar slot.
func (r *BinRecord) CigarRLE(checkCG bool) ([]CigarOp, error) {
	if !r.filled {
		return nil, ErrNotFilled
	}
	if checkCG {
		if ops, ok := r.cgEscaped(); ok {
			return ops, nil
		}
	}
	return r.storedCigar(), nil
}

// NCigarOp returns the number of CIGAR operations r resolves to under the
// same checkCG rule as CigarRLE.
func (r *BinRecord) NCigarOp(checkCG bool) (uint32, error) {
	ops, err := r.CigarRLE(checkCG)
	if err != nil {
		return 0, err
	}
	return uint32(len(ops)), nil
}

// Cigar renders r's CIGAR as a run-length string under the same checkCG
// rule as CigarRLE. A record with no CIGAR operations renders as "".
func (r *BinRecord) Cigar(checkCG bool) (string, error) {
	ops, err := r.CigarRLE(checkCG)
	if err != nil {
		return "", err
	}
	return CigarString(ops), nil
}

// AlignLength returns the number of reference-consuming bases in r's
// stored (possibly pseudo) CIGAR. It deliberately ignores the CG escape:
// this matches the behavior of align_length() across the rest of the
// accessor surface and must not be "corrected" independently of it.
func (r *BinRecord) AlignLength() int64 {
	return AlignLength(r.storedCigar())
}

// SeqLength returns the number of bases in r's sequence.
func (r *BinRecord) SeqLength() int64 { return int64(r.lSeq) }

// Sequence decodes r's packed 4-bit sequence. It fails with ErrMissing
// when r has no sequence (l_seq == 0).
func (r *BinRecord) Sequence() (Seq, error) {
	if !r.filled {
		return Seq{}, ErrNotFilled
	}
	if r.lSeq == 0 {
		return Seq{}, ErrMissing
	}
	return newSeqFromPacked(r.data[r.seqOff:r.qualOff], r.lSeq), nil
}

// Quality returns a fresh copy of r's l_seq quality bytes.
func (r *BinRecord) Quality() ([]byte, error) {
	if !r.filled {
		return nil, ErrNotFilled
	}
	return append([]byte(nil), r.data[r.qualOff:r.qualOff+r.lSeq]...), nil
}

// AuxData returns a view over r's auxiliary tag region.
func (r *BinRecord) AuxData() (BinAuxView, error) {
	if !r.filled {
		return BinAuxView{}, ErrNotFilled
	}
	return newBinAuxView(r.data[r.auxOff:])
}

// Has reports whether tag is present in r's auxiliary data.
func (r *BinRecord) Has(tag Tag) bool {
	view, err := r.AuxData()
	if err != nil {
		return false
	}
	return view.Has(tag)
}

// Get returns the decoded value of tag from r's auxiliary data.
func (r *BinRecord) Get(tag Tag) (interface{}, error) {
	view, err := r.AuxData()
	if err != nil {
		return nil, err
	}
	return view.Get(tag)
}

// Keys returns r's auxiliary tags in physical (insertion) order.
func (r *BinRecord) Keys() ([]Tag, error) {
	view, err := r.AuxData()
	if err != nil {
		return nil, err
	}
	return view.Keys(), nil
}

// Values returns the decoded value of every auxiliary tag in r, in the
// same order as Keys.
func (r *BinRecord) Values() ([]interface{}, error) {
	view, err := r.AuxData()
	if err != nil {
		return nil, err
	}
	return view.Values()
}

// AnchorKind classifies an AlignmentAnchor by the CIGAR operation that
// produced it.
type AnchorKind int

const (
	AnchorStart AnchorKind = iota
	AnchorMatch
	AnchorInsert
	AnchorDelete
)

// AlignmentAnchor is one step of an alignment walk: the cumulative
// sequence, reference and alignment-column positions after the step.
type AlignmentAnchor struct {
	SeqPos, RefPos, AlnPos int64
	Kind                   AnchorKind
}

// Alignment walks r's CIGAR (with CG-escape resolution) and returns the
// sequence of cumulative anchors it describes, starting from
// (0, Position()-1, 0, AnchorStart). It fails with ErrUnsupportedCigarOp
// if the CIGAR contains an operation other than match, insert or delete.
// An unmapped record yields no anchors.
func (r *BinRecord) Alignment() ([]AlignmentAnchor, error) {
	if !r.filled {
		return nil, ErrNotFilled
	}
	if !r.IsMapped() {
		return nil, nil
	}
	ops, err := r.CigarRLE(true)
	if err != nil {
		return nil, err
	}
	anchors := make([]AlignmentAnchor, 0, len(ops)+1)
	seqPos, refPos, alnPos := int64(0), r.Position()-1, int64(0)
	anchors = append(anchors, AlignmentAnchor{seqPos, refPos, alnPos, AnchorStart})
	for _, op := range ops {
		n := int64(op.Len())
		switch op.Type() {
		case CigarMatch, CigarEqual, CigarMismatch:
			seqPos += n
			refPos += n
			alnPos += n
			anchors = append(anchors, AlignmentAnchor{seqPos, refPos, alnPos, AnchorMatch})
		case CigarInsertion:
			seqPos += n
			alnPos += n
			anchors = append(anchors, AlignmentAnchor{seqPos, refPos, alnPos, AnchorInsert})
		case CigarDeletion:
			refPos += n
			alnPos += n
			anchors = append(anchors, AlignmentAnchor{seqPos, refPos, alnPos, AnchorDelete})
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCigarOp, op.Type())
		}
	}
	return anchors, nil
}
