// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - randomised insert/delete runs against an ordered set
//
// Each round builds a set from a seeded random permutation, probes it
// with duplicate inserts and absent deletes, then empties it in a
// different order.  After every operation the set must still pass its
// own structural checks and hold exactly the expected members.
package soak
