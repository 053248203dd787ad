// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns false if no equal item was present
func (tree *Tree) Delete(item Item) bool {
	removed := false
	tree.root, removed = tree.delete(item, tree.root)
	if removed {
		tree.count -= 1
		if nil != tree.root {
			tree.root.up = nil
		}
	}
	return removed
}

// internal delete routine, returns the possibly updated sub-tree root
func (tree *Tree) delete(item Item, p *Node) (*Node, bool) {
	if nil == p { // item not in tree
		return nil, false
	}

	removed := false
	c := p.item.Compare(item)
	switch {
	case c > 0: // p.item > item
		p.left, removed = tree.delete(item, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case c < 0: // p.item < item
		p.right, removed = tree.delete(item, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found: delete p
		if nil == p.left {
			r := p.right
			if nil != r {
				r.up = p.up
			}
			tree.freeNode(p)
			return r, true
		}
		if nil == p.right {
			l := p.left
			l.up = p.up
			tree.freeNode(p)
			return l, true
		}

		// two children: take over the in-order successor's item
		// and remove the successor node instead
		successor := p.right.first()
		p.item = successor.item
		p.right, removed = tree.delete(successor.item, p.right)
		if nil != p.right {
			p.right.up = p
		}
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}
