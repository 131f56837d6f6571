// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// uniquelines - count the unique lines in text files
//
// usage:
//
//   uniquelines [options] [count] FILE...
//   uniquelines [options] avl|bst|naive FILE
//   uniquelines [options] check FILE...
//   uniquelines [options] watch FILE
//
// a FILE of "-" reads standard input.  An optional Lua configuration
// file (--config-file) can set the method, output and logging
// options; command line options override the configuration.
package main
