// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htsrecord

import "sync"

// BinRecordPool recycles BinRecords across successive Fill calls in a hot
// read loop, avoiding a fresh allocation per record.
type BinRecordPool struct {
	pool sync.Pool
}

// NewBinRecordPool returns a ready-to-use BinRecordPool.
func NewBinRecordPool() *BinRecordPool {
	return &BinRecordPool{pool: sync.Pool{New: func() interface{} { return &BinRecord{} }}}
}

// Get returns an empty or previously-released BinRecord.
func (p *BinRecordPool) Get() *BinRecord {
	return p.pool.Get().(*BinRecord)
}

// Put releases r back to the pool after clearing it. r must not be used
// by the caller again after Put.
func (p *BinRecordPool) Put(r *BinRecord) {
	r.Empty()
	p.pool.Put(r)
}

// TxtRecordPool recycles TxtRecords across successive Fill calls.
type TxtRecordPool struct {
	pool sync.Pool
}

// NewTxtRecordPool returns a ready-to-use TxtRecordPool.
func NewTxtRecordPool() *TxtRecordPool {
	return &TxtRecordPool{pool: sync.Pool{New: func() interface{} { return &TxtRecord{} }}}
}

// Get returns an empty or previously-released TxtRecord.
func (p *TxtRecordPool) Get() *TxtRecord {
	return p.pool.Get().(*TxtRecord)
}

// Put releases r back to the pool after clearing it. r must not be used
// by the caller again after Put.
func (p *TxtRecordPool) Put(r *TxtRecord) {
	r.Empty()
	p.pool.Put(r)
}
