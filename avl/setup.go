// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when
// the receiver is less than, equal to or greater than the argument;
// only the sign is used
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node, not an owner
	item   Item  // the stored item
	height int   // height of this sub-tree, leaf = 0
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int

	pool      *Node // linked list of reclaimed nodes
	freeNodes int   // number of nodes in the pool
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// NodesAtDepth - returns all descendants at a specific depth below p
func (p *Node) NodesAtDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.NodesAtDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.NodesAtDepth(depth-1)...)
		}
	}
	return nodes
}

// Item - read the item from a node
func (p *Node) Item() Item {
	return p.item
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
