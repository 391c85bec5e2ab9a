// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htsfixture loads on-disk binary test fixtures via a read-only
// memory mapping, for use by the package's own tests rather than by
// consumers of htsrecord.
package htsfixture

import "golang.org/x/exp/mmap"

// Load maps path read-only and returns its full contents as a byte slice.
// The mapping is closed before Load returns; the returned bytes are a
// copy, safe to retain after the call.
func Load(path string) ([]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	buf := make([]byte, r.Len())
	if _, err := r.ReadAt(buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}
