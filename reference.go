// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

// ReferenceDict is the read-only contract a record needs from its owning
// reader to resolve reference ids to names and lengths. It is a
// non-owning, weak link: a record holding one must never extend the
// dictionary's or its reader's lifetime, and the dictionary must be
// effectively immutable after load for cross-thread name resolution to be
// safe.
//
// Ids are 1-based from the record's perspective; 0 is reserved for
// "unmapped" and must never be looked up.
type ReferenceDict interface {
	// RefName returns the name of the reference with the given 1-based
	// id, and false if id is out of range.
	RefName(id int) (string, bool)

	// RefLen returns the length of the reference with the given 1-based
	// id, and false if id is out of range.
	RefLen(id int) (int64, bool)
}
