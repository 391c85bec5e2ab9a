// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import "errors"

// Sentinel errors returned by record accessors. Callers that need to
// distinguish a particular failure should compare with errors.Is, since
// accessors wrap these with field-specific context via fmt.Errorf's %w.
var (
	// ErrNotFilled is returned by an accessor called on an empty record.
	// Accessors with no error result (such as BinRecord's Flag, Position,
	// TemplateName and AlignLength) do not check and return zero values,
	// and TxtRecord's Has, Get, Keys, Values and AuxData treat an empty
	// record as one with no aux fields.
	ErrNotFilled = errors.New("htsrecord: record is not filled")

	// ErrShortBuffer is returned by FromBinBytes and BinRecord.Fill when
	// the supplied buffer is smaller than the record's own header claims
	// it to be.
	ErrShortBuffer = errors.New("htsrecord: buffer shorter than record requires")

	// ErrMalformedLine is returned by TxtRecord's indexer when a line has
	// fewer than the 11 mandatory tab-separated fields.
	ErrMalformedLine = errors.New("htsrecord: fewer than 11 mandatory fields")

	// ErrMissing is returned when a field is explicitly absent per the
	// format's own missing-value convention (mapq==255, qname=="*", etc).
	ErrMissing = errors.New("htsrecord: field is absent")

	// ErrUnmapped is returned by reference name/length resolution when
	// the record's stored reference id is unset (-1) or has no entry in
	// the attached ReferenceDict.
	ErrUnmapped = errors.New("htsrecord: record is unmapped")

	// ErrNoReader is returned by name/length resolution when no
	// ReferenceDict has been attached to the record.
	ErrNoReader = errors.New("htsrecord: no reference dictionary attached")

	// ErrUnknownTag is returned by Get when the requested aux tag is not
	// present in the record.
	ErrUnknownTag = errors.New("htsrecord: aux tag not present")

	// ErrUnknownAuxType is returned when an aux type byte is not one of
	// the defined set {A,c,C,s,S,i,I,f,Z,H,B}.
	ErrUnknownAuxType = errors.New("htsrecord: unrecognised aux type byte")

	// ErrUnsupportedCigarOp is returned by the alignment anchor walk when
	// it encounters a CIGAR operation outside match/insert/delete.
	ErrUnsupportedCigarOp = errors.New("htsrecord: cigar operation unsupported in alignment walk")
)
