// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// PreOrder - items in node, left, right order
func (tree *Tree) PreOrder() []Item {
	items := make([]Item, 0, tree.count)
	stack := []*Node{tree.root}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]
		if nil == p {
			continue
		}
		items = append(items, p.item)
		stack = append(stack, p.right, p.left)
	}
	return items
}

// String - pre-order listing of the items
func (tree *Tree) String() string {
	values := make([]string, 0, tree.count)
	for _, item := range tree.PreOrder() {
		values = append(values, fmt.Sprint(item))
	}
	return "AVL pre-order { " + strings.Join(values, ", ") + " }"
}

// Print - display an ASCII graphic representation of the tree
//
// returns the number of levels drawn
func (tree *Tree) Print(w io.Writer, showHeight bool) int {
	return printTree(w, tree.root, "", root, showHeight)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, showHeight bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, showHeight)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.item
	}
	if showHeight {
		fmt.Fprintf(w, "%v ^%v h:%d %+2d\n", tree.item, up, tree.height, balanceFactor(tree))
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.item, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, showHeight)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
