// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// upper limit on reclaimed nodes kept by one tree
const maximumFreeNodes = 256

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(item Item) *Node {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		return &Node{
			item:   item,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.item = item
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool, or drop it for the garbage
// collector once the pool is full
func (tree *Tree) freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.item = nil
	node.height = 0

	if tree.freeNodes >= maximumFreeNodes {
		node.up = nil
		return
	}
	node.up = tree.pool // use as free list pointer
	tree.freeNodes += 1
	tree.pool = node
}
