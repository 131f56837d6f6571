// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/uniquelines/fault"
)

// rotate on the edge from x to its right child
//
//	    x                y
//	   / \              / \
//	  a   y     →      x   c
//	     / \          / \
//	    b   c        a   b
func (tree *Tree) rotateLeft(x *Node) {
	y := x.right
	if nil == y {
		fault.Panicf("%s: key: %q", fault.ErrRotateLeftWithoutRight, x.key)
	}

	x.right = y.left
	if nil != x.right {
		x.right.up = x
	}
	tree.replace(x, y)
	y.left = x
	x.up = y

	// x is now below y
	updateHeight(x)
	updateHeight(y)
}

// rotate on the edge from y to its left child
//
//	      y            x
//	     / \          / \
//	    x   c   →    a   y
//	   / \              / \
//	  a   b            b   c
func (tree *Tree) rotateRight(y *Node) {
	x := y.left
	if nil == x {
		fault.Panicf("%s: key: %q", fault.ErrRotateRightWithoutLeft, y.key)
	}

	y.left = x.right
	if nil != y.left {
		y.left.up = y
	}
	tree.replace(y, x)
	x.right = y
	y.up = x

	// y is now below x
	updateHeight(y)
	updateHeight(x)
}

// make n take the place of p under p's parent (or as the root)
func (tree *Tree) replace(p *Node, n *Node) {
	up := p.up
	n.up = up
	switch {
	case nil == up:
		tree.root = n
	case up.left == p:
		up.left = n
	default:
		up.right = n
	}
}
