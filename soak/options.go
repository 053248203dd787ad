// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// limits
const (
	maximumItems = 1000000
)

// Options - controls a run
type Options struct {
	Rounds        int   // number of build/empty rounds
	Items         int   // distinct values per round: 1..Items
	Seed          int64 // seed for the permutations
	CheckInterval int   // full membership scan every N operations, 1 = every operation
	Duplicates    int   // duplicate inserts tried per round
	Absent        int   // absent deletes tried per round
}

// Validate - reject unusable options
func (o Options) Validate() error {
	if o.Rounds <= 0 {
		return fault.ErrInvalidCount
	}
	if o.Items <= 0 || o.Items > maximumItems {
		return fault.ErrInvalidCount
	}
	if o.CheckInterval <= 0 || o.Duplicates < 0 || o.Absent < 0 {
		return fault.ErrInvalidCount
	}
	return nil
}

// HeightBound - worst case AVL height for n nodes
func HeightBound(n int) float64 {
	return 1.44*math.Log2(float64(n)+2) - 0.328
}
