// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest item
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest item
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest item
// or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right == nil {
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.left == child {
				return tree
			}
		}
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the next lowest item or
// nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left == nil {
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.right == child {
				return tree
			}
		}
	}
	return tree.left.last()
}

// InOrder - all items in ascending order
func (tree *Tree) InOrder() []Item {
	items := make([]Item, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		items = append(items, p.item)
	}
	return items
}
