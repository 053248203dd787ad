// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// IsValid - check cached heights and up pointers for consistency
func (tree *Tree) IsValid() bool {
	return nil == tree.Verify()
}

// Verify - walk every node and return the first inconsistency found
func (tree *Tree) Verify() error {
	stack := []*Node{tree.root}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]
		if nil == p {
			continue
		}

		lh := height(p.left)
		rh := height(p.right)
		expected := 1 + lh
		if rh > lh {
			expected = 1 + rh
		}
		if p.height != expected {
			return fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrHeightMismatch, p.item, p.height, expected)
		}

		if nil != p.up {
			slot := p.up.right
			if p.item.Compare(p.up.item) < 0 { // p.item < up.item
				slot = p.up.left
			}
			if slot != p {
				return fmt.Errorf("%w: node: %v  parent: %v", fault.ErrParentMismatch, p.item, p.up.item)
			}
		} else if p != tree.root {
			return fmt.Errorf("%w: node: %v", fault.ErrDetachedNode, p.item)
		}

		stack = append(stack, p.right, p.left)
	}
	return nil
}

// CheckBalance - check the AVL balance and the item ordering of every node
func (tree *Tree) CheckBalance() bool {
	ok, _ := checkBalance(tree.root, nil, nil)
	return ok
}

// internal: items of p's sub-tree must lie in [low, high)
func checkBalance(p *Node, low Item, high Item) (bool, int) {
	if nil == p {
		return true, -1
	}
	if nil != low && p.item.Compare(low) < 0 {
		return false, 0
	}
	if nil != high && p.item.Compare(high) >= 0 {
		return false, 0
	}
	ok, lh := checkBalance(p.left, low, p.item)
	if !ok {
		return false, 0
	}
	ok, rh := checkBalance(p.right, p.item, high)
	if !ok {
		return false, 0
	}
	bf := lh - rh
	if bf > 1 || bf < -1 {
		return false, 0
	}
	if lh > rh {
		return true, 1 + lh
	}
	return true, 1 + rh
}
