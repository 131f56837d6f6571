// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %q   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - every cached height matches its children
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the true height of the sub-tree
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("height fail at node: %q  actual: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - every node has a balance factor of -1, 0 or +1
//
// relies on correct heights, so run CheckHeights first
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		fmt.Printf("balance fail at node: %q  balance: %+d\n", p.key, bf)
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - an in-order walk gives strictly ascending keys
func (tree *Tree) CheckOrder() bool {
	var previous *Node
	return checkOrder(tree.root, &previous)
}

func checkOrder(p *Node, previous **Node) bool {
	if nil == p {
		return true
	}
	if !checkOrder(p.left, previous) {
		return false
	}
	if nil != *previous && (*previous).key >= p.key {
		fmt.Printf("order fail at node: %q  after: %q\n", p.key, (*previous).key)
		return false
	}
	*previous = p
	return checkOrder(p.right, previous)
}

// CheckCount - the node count matches the reachable nodes
func (tree *Tree) CheckCount() bool {
	n := countNodes(tree.root)
	if n != tree.count {
		fmt.Printf("count fail: actual: %d  expected: %d\n", tree.count, n)
		return false
	}
	return true
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
