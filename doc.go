// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htsrecord implements the core record model shared by the BAM
// (binary) and SAM (text) single-read alignment encodings: a parsed,
// in-memory record that owns its raw bytes, indexes its logical fields by
// byte ranges or header-derived offsets, and decodes individual fields on
// demand.
//
// Block-level I/O and decompression of the BAM container, the streaming
// reader that feeds raw record bytes in, the reference-sequence dictionary
// used to resolve reference ids to names, the file-level header and any
// indexing or writer tooling are external collaborators and are not
// implemented here. A BinRecord is filled from a contiguous block of bytes
// comprising one serialized BAM record; a TxtRecord is filled from a single
// line of bytes with the trailing newline already stripped.
package htsrecord
