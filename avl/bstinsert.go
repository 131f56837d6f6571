// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// BSTInsert - insert a key as a plain binary search tree without
// rebalancing, returns true if the key was added
//
// only for baseline comparison; a tree built this way is not
// balanced and must not also be used with Insert
func (tree *Tree) BSTInsert(key string) bool {
	if nil == tree.root {
		tree.root = newNode(key, nil)
		tree.count = 1
		return true
	}
	added := tree.bstInsert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

func (tree *Tree) bstInsert(key string, p *Node) bool {
	var n *Node
	switch strings.Compare(p.key, key) {
	case +1: // p.key > key
		if nil != p.left {
			return tree.bstInsert(key, p.left)
		}
		n = newNode(key, p)
		p.left = n
	case -1: // p.key < key
		if nil != p.right {
			return tree.bstInsert(key, p.right)
		}
		n = newNode(key, p)
		p.right = n
	default:
		return false
	}

	// raise each ancestor to at least its distance from the new leaf
	h := 0
	for ; nil != n; n = n.up {
		if h > n.height {
			n.height = h
		}
		h += 1
	}
	return true
}
