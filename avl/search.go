// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Search - find a specific key, nil if not present
func (tree *Tree) Search(key string) *Node {
	return search(key, tree.root)
}

// Exists - true if the key is in the tree
func (tree *Tree) Exists(key string) bool {
	return nil != search(key, tree.root)
}

func search(key string, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch strings.Compare(tree.key, key) {
	case +1: // tree.key > key
		return search(key, tree.left)
	case -1: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}
