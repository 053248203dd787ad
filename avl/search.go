// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific item, nil if absent
func (tree *Tree) Search(item Item) *Node {
	p := tree.root
	for nil != p {
		c := p.item.Compare(item)
		switch {
		case c > 0: // p.item > item
			p = p.left
		case c < 0: // p.item < item
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if an equal item is in the tree
func (tree *Tree) Contains(item Item) bool {
	return nil != tree.Search(item)
}
