// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty sub-tree is -1
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// positive is right heavy, negative is left heavy
func balanceFactor(p *Node) int {
	return height(p.right) - height(p.left)
}

// recompute the cached height from the children
// children must already hold correct heights
func updateHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
