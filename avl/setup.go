// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Node - a node in the tree
type Node struct {
	left   *Node  // left sub-tree
	right  *Node  // right sub-tree
	up     *Node  // points to parent node
	key    string // key part for ordering
	height int    // height of this sub-tree, 0 for a leaf
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// create a leaf node attached below up
func newNode(key string, up *Node) *Node {
	return &Node{
		up:     up,
		key:    key,
		height: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() string {
	return p.key
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// BalanceFactor - right height minus left height
func (p *Node) BalanceFactor() int {
	return balanceFactor(p)
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// String - key and height for debugging
func (p *Node) String() string {
	if nil == p {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%d)", p.key, p.height)
}
