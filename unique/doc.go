// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unique - count the unique lines of a text stream
//
// each line read is added to a set; duplicates are ignored and the
// final size of the set is the number of unique lines.  The set is
// selected by method name:
//
//   avl   - balanced AVL tree (default)
//   bst   - the same tree with plain unbalanced insertion
//   naive - linear scan of a slice, O(n²)
package unique
