// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Insert - insert a new key into the tree keeping it AVL balanced
// returns true if the key was added, false if already present
func (tree *Tree) Insert(key string) bool {
	if nil == tree.root {
		tree.root = newNode(key, nil)
		tree.count = 1
		return true
	}
	added := tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// p is never nil; on return every node below p satisfies the AVL
// property and p's sub-tree has been rebalanced
func (tree *Tree) insert(key string, p *Node) bool {
	switch strings.Compare(p.key, key) {
	case +1: // p.key > key
		if nil == p.left {
			p.left = newNode(key, p)
		} else if !tree.insert(key, p.left) {
			return false
		}
	case -1: // p.key < key
		if nil == p.right {
			p.right = newNode(key, p)
		} else if !tree.insert(key, p.right) {
			return false
		}
	default:
		return false // duplicate, nothing changed
	}
	tree.rebalance(p)
	return true
}

// restore the AVL property at p
// both of p's sub-trees must already be balanced
func (tree *Tree) rebalance(p *Node) {
	bf := balanceFactor(p)
	if bf < -1 {
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			tree.rotateLeft(p.left)
		}
		// single LL rotation
		tree.rotateRight(p)
	} else if bf > 1 {
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			tree.rotateRight(p.right)
		}
		// single RR rotation
		tree.rotateLeft(p)
	}
	updateHeight(p)
}
