// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unique

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquelines/counter"
	"github.com/bitmark-inc/uniquelines/fault"
)

// limits for the line scanner
const (
	initialBufferSize = 64 * 1024
	MaximumLineLength = 16 * 1024 * 1024
)

// Result - totals from counting a stream
type Result struct {
	Lines      uint64 `json:"lines"`
	Unique     uint64 `json:"unique"`
	Duplicates uint64 `json:"duplicates"`
}

// Counter - feeds lines into a set
//
// Count must only be called from one goroutine at a time, Progress
// may be called from any goroutine
type Counter struct {
	log    *logger.L
	set    Set
	lines  counter.Counter
	unique counter.Counter
}

// NewCounter - create a counter using an existing set
func NewCounter(set Set, log *logger.L) *Counter {
	return &Counter{
		log: log,
		set: set,
	}
}

// Set - the set being filled
func (c *Counter) Set() Set {
	return c.set
}

// Progress - totals so far
//
// unique is loaded before lines: Count increments lines first, so
// this order keeps unique <= lines for a concurrent reader
func (c *Counter) Progress() Result {
	unique := c.unique.Uint64()
	lines := c.lines.Uint64()
	return Result{
		Lines:      lines,
		Unique:     unique,
		Duplicates: lines - unique,
	}
}

// Count - add every line of r to the set
//
// the result covers all lines read so far by this counter, so
// several readers can be counted into one set
func (c *Counter) Count(ctx context.Context, r io.Reader) (Result, error) {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialBufferSize), MaximumLineLength)

	for scanner.Scan() {
		if err := ctx.Err(); nil != err {
			c.log.Warnf("cancelled after: %d lines", c.lines.Uint64())
			return c.Progress(), err
		}
		n := c.lines.Increment()
		if c.set.Add(scanner.Text()) {
			c.unique.Increment()
		} else {
			c.log.Tracef("line: %d is a duplicate", n)
		}
	}

	if err := scanner.Err(); nil != err {
		if bufio.ErrTooLong == err {
			c.log.Errorf("line: %d longer than: %d bytes", c.lines.Uint64()+1, MaximumLineLength)
			return c.Progress(), fault.ErrLineTooLong
		}
		c.log.Errorf("read error: %s", err)
		return c.Progress(), err
	}

	result := c.Progress()
	c.log.Debugf("lines: %d  unique: %d  duplicates: %d", result.Lines, result.Unique, result.Duplicates)
	return result, nil
}

// CountFile - add every line of a file to the set
func (c *Counter) CountFile(ctx context.Context, fileName string) (Result, error) {
	f, err := os.Open(fileName)
	if nil != err {
		c.log.Errorf("open: %q  error: %s", fileName, err)
		if os.IsNotExist(err) {
			return c.Progress(), fault.ErrFileNotFound
		}
		return c.Progress(), err
	}
	defer f.Close()

	c.log.Infof("counting: %q", fileName)
	return c.Count(ctx, f)
}

// CountFile - count the unique lines of a single file using a new set
func CountFile(ctx context.Context, fileName string, method string, log *logger.L) (Result, Set, error) {
	set, err := NewSet(method)
	if nil != err {
		return Result{}, nil, err
	}
	c := NewCounter(set, log)
	result, err := c.CountFile(ctx, fileName)
	return result, set, err
}
