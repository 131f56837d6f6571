// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique strings with the
// addition of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (-1 for an empty
// sub-tree, 0 for a leaf).  Insert descends recursively and then
// rebalances every node on the path back to the root, innermost
// first, using single or double rotations.
//
// BSTInsert is a plain binary search tree insert without any
// rebalancing, it is only a baseline for comparison and must not be
// mixed with Insert on the same tree.
//
// There is no delete.
package avl
