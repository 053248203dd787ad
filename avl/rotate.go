// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height, children must already be current
func updateHeight(p *Node) {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// left height minus right height
func balanceFactor(p *Node) int {
	return height(p.left) - height(p.right)
}

// single left rotation, returns the node now occupying p's position
//
//      p                r
//     / \              / \
//    a   r     →      p   c
//       / \          / \
//      b   c        a   b
func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r

	updateHeight(p)
	updateHeight(r)
	return r
}

// single right rotation, mirror of rotateLeft
//
//        p            l
//       / \          / \
//      l   c   →    a   p
//     / \              / \
//    a   b            b   c
func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l

	updateHeight(p)
	updateHeight(l)
	return l
}

// restore the AVL property at p, returns the possibly new sub-tree root
func rebalance(p *Node) *Node {
	if nil == p {
		return nil
	}
	updateHeight(p)

	bf := balanceFactor(p)
	if bf > 1 { // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		p = rotateRight(p)
	} else if bf < -1 { // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		p = rotateLeft(p)
	}
	return p
}
