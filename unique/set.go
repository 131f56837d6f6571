// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unique

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/uniquelines/avl"
	"github.com/bitmark-inc/uniquelines/fault"
	"github.com/bitmark-inc/uniquelines/naive"
)

// method names
const (
	MethodAVL   = "avl"
	MethodBST   = "bst"
	MethodNaive = "naive"
)

// Set - the operations needed to de-duplicate lines
type Set interface {
	Add(string) bool
	Exists(string) bool
	Count() int
}

// balanced insertion into an AVL tree
type balancedSet struct {
	*avl.Tree
}

func (s balancedSet) Add(line string) bool {
	return s.Insert(line)
}

// unbalanced insertion into the same tree
type baselineSet struct {
	*avl.Tree
}

func (s baselineSet) Add(line string) bool {
	return s.BSTInsert(line)
}

// ValidMethod - check a method name
func ValidMethod(method string) bool {
	switch strings.ToLower(method) {
	case MethodAVL, MethodBST, MethodNaive:
		return true
	default:
		return false
	}
}

// NewSet - create an empty set for the named method
func NewSet(method string) (Set, error) {
	switch strings.ToLower(method) {
	case MethodAVL, "":
		return balancedSet{avl.New()}, nil
	case MethodBST:
		return baselineSet{avl.New()}, nil
	case MethodNaive:
		return naive.New(), nil
	default:
		return nil, fault.ErrInvalidMethod
	}
}

// Tree - the underlying tree if the set is tree based
func Tree(s Set) (*avl.Tree, bool) {
	switch t := s.(type) {
	case balancedSet:
		return t.Tree, true
	case baselineSet:
		return t.Tree, true
	default:
		return nil, false
	}
}

// Sorted - the unique lines in ascending order
func Sorted(s Set) []string {
	switch t := s.(type) {
	case balancedSet:
		return t.Keys()
	case baselineSet:
		return t.Keys()
	case *naive.Set:
		items := t.Items()
		sort.Strings(items)
		return items
	default:
		return nil
	}
}
