// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree (a leaf is 0, an
// empty sub-tree is -1) and the tree is rebalanced on the way back up
// from each insert or delete using the four classic rotation cases.
//
// Items are unique; inserting an item that compares equal to one
// already present is ignored.
//
// When a node with two children is deleted the in-order successor
// item is copied into it and the successor's own node is unlinked
// and returned to the tree's node pool, where a later Insert may
// reuse it.  Therefore a *Node obtained from Search, First, Next etc.
// is only valid until the next Delete: afterwards it may hold a nil
// item, a different item or be linked elsewhere in the tree.  Unlike
// trees that relink nodes on delete, it is not safe to delete items
// while iterating; collect the items first, then delete them.
package avl
