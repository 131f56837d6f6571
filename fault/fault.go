// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrFileNotFound           = NotFoundError("file not found")
	ErrInvalidDefinition      = InvalidError("invalid definition, expected KEY=VALUE")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidMethod          = InvalidError("invalid method, expected: avl, bst or naive")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrLineTooLong            = ProcessError("line too long")
	ErrMissingFileName        = InvalidError("missing file name")
	ErrNotADirectory          = InvalidError("path is not a directory")
	ErrNotAPlainFileName      = InvalidError("file name must not contain a path")
	ErrRotateLeftWithoutRight = ProcessError("rotate left on node without right child")
	ErrRotateRightWithoutLeft = ProcessError("rotate right on node without left child")
	ErrWatchedFileRemoved     = NotFoundError("watched file was removed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
