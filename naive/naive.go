// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package naive - a set of strings kept in a plain slice
//
// every Add scans all previous items, so n additions cost O(n²).
// This only exists as a baseline to compare against the AVL tree.
package naive

// Set - unique strings in order of first appearance
type Set struct {
	seen []string
}

// New - create an empty set
func New() *Set {
	return &Set{
		seen: make([]string, 0, 64),
	}
}

// Add - add an item if not already present
// returns true if the item was added
func (s *Set) Add(item string) bool {
	if s.Exists(item) {
		return false
	}
	s.seen = append(s.seen, item)
	return true
}

// Exists - check to see if item is in the set
func (s *Set) Exists(item string) bool {
	for _, v := range s.seen {
		if v == item {
			return true
		}
	}
	return false
}

// Count - number of unique items
func (s *Set) Count() int {
	return len(s.seen)
}

// Items - a copy of the items in order of first appearance
func (s *Set) Items() []string {
	items := make([]string, len(s.seen))
	copy(items, s.seen)
	return items
}
