// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unique_test

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/uniquelines/fault"
	"github.com/bitmark-inc/uniquelines/unique"
)

const text = "the\nquick\nbrown\nfox\njumps\nover\nthe\nlazy\ndog\r\nfox\n\n\nthe"

var methods = []string{unique.MethodAVL, unique.MethodBST, unique.MethodNaive}

func TestNewSet(t *testing.T) {
	for _, method := range append(methods, "", "AVL", "Naive") {
		s, err := unique.NewSet(method)
		require.NoError(t, err, "method: %q", method)
		assert.Equal(t, 0, s.Count())
	}

	_, err := unique.NewSet("hash")
	assert.Equal(t, fault.ErrInvalidMethod, err)
	assert.True(t, fault.IsErrInvalid(err))

	assert.True(t, unique.ValidMethod("bst"))
	assert.False(t, unique.ValidMethod("hash"))
}

func TestCount(t *testing.T) {
	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			s, err := unique.NewSet(method)
			require.NoError(t, err)

			c := unique.NewCounter(s, logger.New("test"))
			result, err := c.Count(context.Background(), strings.NewReader(text))
			require.NoError(t, err)

			// "dog\r" is the same line as "dog", the two blank
			// lines are one unique empty line
			expected := unique.Result{
				Lines:      13,
				Unique:     9,
				Duplicates: 4,
			}
			assert.Equal(t, expected, result)
			assert.Equal(t, expected, c.Progress())
			assert.Equal(t, 9, s.Count())
			assert.True(t, s.Exists("dog"))
			assert.True(t, s.Exists(""))
			assert.False(t, s.Exists("cat"))

			assert.Equal(t, []string{"", "brown", "dog", "fox", "jumps", "lazy", "over", "quick", "the"}, unique.Sorted(s))
		})
	}
}

func TestCountAccumulates(t *testing.T) {
	s, err := unique.NewSet(unique.MethodAVL)
	require.NoError(t, err)
	c := unique.NewCounter(s, logger.New("test"))

	_, err = c.Count(context.Background(), strings.NewReader("a\nb\nc\n"))
	require.NoError(t, err)
	result, err := c.Count(context.Background(), strings.NewReader("c\nd\na\n"))
	require.NoError(t, err)

	assert.Equal(t, unique.Result{Lines: 6, Unique: 4, Duplicates: 2}, result)
	assert.Equal(t, c.Set(), s)
}

func TestCountEmpty(t *testing.T) {
	s, _ := unique.NewSet(unique.MethodAVL)
	c := unique.NewCounter(s, logger.New("test"))

	result, err := c.Count(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, unique.Result{}, result)

	tree, ok := unique.Tree(s)
	require.True(t, ok)
	assert.True(t, tree.IsEmpty())
}

func TestCountCancelled(t *testing.T) {
	s, _ := unique.NewSet(unique.MethodAVL)
	c := unique.NewCounter(s, logger.New("test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Count(ctx, strings.NewReader(text))
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, s.Count())
}

// sample the totals from another goroutine while a count is running
func TestProgressWhileCounting(t *testing.T) {
	const n = 200001

	var b strings.Builder
	for i := 0; i < n; i += 1 {
		fmt.Fprintf(&b, "line-%d\n", i)
	}
	input := b.String()

	s, _ := unique.NewSet(unique.MethodAVL)
	c := unique.NewCounter(s, logger.New("test"))

	done := make(chan error, 1)
	go func() {
		_, err := c.Count(context.Background(), strings.NewReader(input))
		done <- err
	}()

	previous := unique.Result{}
	samples := 0
loop:
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			break loop
		default:
		}
		p := c.Progress()
		samples += 1
		if p.Unique > p.Lines || p.Duplicates != p.Lines-p.Unique || p.Lines < previous.Lines || p.Unique < previous.Unique {
			t.Fatalf("sample: %d  inconsistent: %+v  previous: %+v", samples, p, previous)
		}
		previous = p
	}

	expected := unique.Result{
		Lines:      n,
		Unique:     n,
		Duplicates: 0,
	}
	assert.Equal(t, expected, c.Progress())
	assert.Greater(t, samples, 0)
}

func TestCountLineTooLong(t *testing.T) {
	s, _ := unique.NewSet(unique.MethodAVL)
	c := unique.NewCounter(s, logger.New("test"))

	long := "short\n" + strings.Repeat("x", unique.MaximumLineLength+1) + "\n"
	result, err := c.Count(context.Background(), strings.NewReader(long))
	assert.Equal(t, fault.ErrLineTooLong, err)
	assert.Equal(t, uint64(1), result.Lines)
}

func TestCountFile(t *testing.T) {
	fileName := filepath.Join(testingDirName, "words.txt")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err)

	for _, method := range methods {
		result, s, err := unique.CountFile(context.Background(), fileName, method, logger.New("test"))
		require.NoError(t, err)
		assert.Equal(t, uint64(9), result.Unique, "method: %s", method)
		assert.Equal(t, 9, s.Count())
	}

	_, _, err = unique.CountFile(context.Background(), fileName, "hash", logger.New("test"))
	assert.Equal(t, fault.ErrInvalidMethod, err)

	_, _, err = unique.CountFile(context.Background(), filepath.Join(testingDirName, "missing.txt"), unique.MethodAVL, logger.New("test"))
	assert.Equal(t, fault.ErrFileNotFound, err)
}

func TestTreeAccess(t *testing.T) {
	for _, method := range methods {
		s, _ := unique.NewSet(method)
		_, ok := unique.Tree(s)
		assert.Equal(t, unique.MethodNaive != method, ok, "method: %s", method)
	}
}

// the balanced tree stays shallow on sorted input, the baseline does not
func TestSortedInputHeights(t *testing.T) {
	lines := make([]string, 0, 512)
	for i := 0; i < 512; i += 1 {
		lines = append(lines, strings.Repeat("a", i+1))
	}
	input := strings.Join(lines, "\n")

	heights := make(map[string]int)
	for _, method := range []string{unique.MethodAVL, unique.MethodBST} {
		s, _ := unique.NewSet(method)
		c := unique.NewCounter(s, logger.New("test"))
		_, err := c.Count(context.Background(), strings.NewReader(input))
		require.NoError(t, err)

		tree, ok := unique.Tree(s)
		require.True(t, ok)
		heights[method] = tree.Height()
	}

	assert.Equal(t, 511, heights[unique.MethodBST])
	assert.Equal(t, 9, heights[unique.MethodAVL])
}
