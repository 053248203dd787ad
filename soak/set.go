// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -source=set.go -destination=mocks/set.go -package=mocks

// OrderedSet - the operations exercised by a run
type OrderedSet interface {
	Insert(avl.Item) bool
	Delete(avl.Item) bool
	Contains(avl.Item) bool
	IsValid() bool
	CheckBalance() bool
	Count() int
	Height() int
	String() string
	Print(io.Writer, bool) int
}

// NewTree - OrderedSet factory backed by an AVL tree
func NewTree() OrderedSet {
	return avl.New()
}
