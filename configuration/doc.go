// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The script must
// return a table which is mapped onto a Go struct using the
// "gluamapper" field tags.
//
// Variables passed in by the caller (e.g. from --define=KEY=VALUE on
// the command line) are set as Lua globals before the script runs.
package configuration
