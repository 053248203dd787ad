// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new item into the tree
//
// returns false, leaving the tree untouched, if an equal item is
// already present
func (tree *Tree) Insert(item Item) bool {
	added := false
	tree.root, added = tree.insert(item, tree.root)
	if added {
		tree.count += 1
		tree.root.up = nil
	}
	return added
}

// internal routine for insert, returns the possibly updated sub-tree root
func (tree *Tree) insert(item Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return tree.newNode(item), true
	}

	added := false
	c := p.item.Compare(item)
	switch {
	case c > 0: // p.item > item
		p.left, added = tree.insert(item, p.left)
		p.left.up = p
	case c < 0: // p.item < item
		p.right, added = tree.insert(item, p.right)
		p.right.up = p
	default: // duplicate
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}
