// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquelines/fault"
	"github.com/bitmark-inc/uniquelines/unique"
)

// setup command handler
//
// commands that do not need the configuration file or the logger
// returns false if the command needs further processing
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "count", "check", "watch", unique.MethodAVL, unique.MethodBST, unique.MethodNaive:
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		printUsage(program)

	default:
		// anything else is a file name for the default count command
		return false
	}
	return true
}

func printUsage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--define=KEY=VALUE] [--method=avl|bst|naive] [--sorted] [--print-tree] [--json] [command] FILE...\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version sting\n\n")

	fmt.Printf("  count FILE...                       - print the number of unique lines in each file\n")
	fmt.Printf("                                        this is the default when the first argument is a file\n")
	fmt.Printf("                                        use %q for standard input\n", "-")
	fmt.Printf("\n")

	fmt.Printf("  avl FILE                            - count using the balanced tree\n")
	fmt.Printf("  bst FILE                            - count using the unbalanced tree\n")
	fmt.Printf("  naive FILE                          - count using a linear scan\n")
	fmt.Printf("\n")

	fmt.Printf("  check FILE...                       - count and verify the tree invariants\n")
	fmt.Printf("\n")

	fmt.Printf("  watch FILE                          - recount each time the file is written\n")
	fmt.Printf("\n")
}

// interval between progress log lines while a count is running
const progressLogInterval = 5 * time.Second

// runner - shared state for the data commands
//
// a zero progressInterval disables progress logging
type runner struct {
	log              *logger.L
	configuration    *Configuration
	stdin            io.Reader
	stdout           io.Writer
	progressInterval time.Duration
}

// report - output of one file count
type report struct {
	File    string        `json:"file"`
	Method  string        `json:"method"`
	Result  unique.Result `json:"result"`
	Height  *int          `json:"height,omitempty"`
	Lines   []string      `json:"lines,omitempty"`
	Checked *checkResult  `json:"checked,omitempty"`
}

type checkResult struct {
	Up      bool `json:"up"`
	Heights bool `json:"heights"`
	Balance bool `json:"balance"`
	Order   bool `json:"order"`
	Count   bool `json:"count"`
}

func (c checkResult) ok() bool {
	return c.Up && c.Heights && c.Balance && c.Order && c.Count
}

// data command handler
//
// returns true if the command succeeded
func processCommand(program string, arguments []string, theConfiguration *Configuration) bool {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.New("command")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	r := &runner{
		log:              log,
		configuration:    theConfiguration,
		stdin:            os.Stdin,
		stdout:           os.Stdout,
		progressInterval: progressLogInterval,
	}

	err := r.run(ctx, arguments)
	if errCheckFailed == err {
		return false
	}
	if nil != err {
		log.Errorf("arguments: %q  error: %s", arguments, err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
	return true
}

func (r *runner) run(ctx context.Context, arguments []string) error {

	command := "count"
	if len(arguments) > 0 {
		switch arguments[0] {
		case "count", "check", "watch", unique.MethodAVL, unique.MethodBST, unique.MethodNaive:
			command = arguments[0]
			arguments = arguments[1:]
		}
	}

	switch command {
	case "count":
		if 0 == len(arguments) {
			arguments = []string{"-"}
		}
		for _, fileName := range arguments {
			if err := r.countFile(ctx, fileName); nil != err {
				return err
			}
		}

	case unique.MethodAVL, unique.MethodBST, unique.MethodNaive:
		if 1 != len(arguments) {
			return fault.ErrMissingFileName
		}
		return r.methodCount(ctx, command, arguments[0])

	case "check":
		if 0 == len(arguments) {
			return fault.ErrMissingFileName
		}
		failed := false
		for _, fileName := range arguments {
			ok, err := r.checkFile(ctx, fileName)
			if nil != err {
				return err
			}
			if !ok {
				failed = true
			}
		}
		if failed {
			return errCheckFailed
		}

	case "watch":
		if 1 != len(arguments) || "-" == arguments[0] {
			return fault.ErrMissingFileName
		}
		return r.watchFile(ctx, arguments[0])
	}
	return nil
}

var errCheckFailed = fault.ProcessError("tree check failed")

// count one file (or standard input) with a new set
func (r *runner) count(ctx context.Context, fileName string, method string) (unique.Result, unique.Set, error) {
	set, err := unique.NewSet(method)
	if nil != err {
		return unique.Result{}, nil, err
	}
	c := unique.NewCounter(set, r.log)

	stop := r.logProgress(fileName, c)
	defer stop()

	if "-" == fileName {
		result, err := c.Count(ctx, r.stdin)
		return result, set, err
	}
	result, err := c.CountFile(ctx, fileName)
	return result, set, err
}

// log the running totals of c from a separate goroutine
//
// the returned function stops the logger and waits for it to exit
func (r *runner) logProgress(fileName string, c *unique.Counter) func() {
	if r.progressInterval <= 0 {
		return func() {}
	}

	shutdown := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				p := c.Progress()
				r.log.Infof("progress: %q  lines: %d  unique: %d  duplicates: %d", fileName, p.Lines, p.Unique, p.Duplicates)
			}
		}
	}()

	return func() {
		close(shutdown)
		<-done
	}
}

// the default command
func (r *runner) countFile(ctx context.Context, fileName string) error {
	method := strings.ToLower(r.configuration.Method)
	result, set, err := r.count(ctx, fileName, method)
	if nil != err {
		return err
	}

	rep := report{
		File:   fileName,
		Method: method,
		Result: result,
	}
	tree, isTree := unique.Tree(set)
	if isTree {
		h := tree.Height()
		rep.Height = &h
	}
	if r.configuration.Sorted {
		rep.Lines = unique.Sorted(set)
	}

	if r.configuration.JSON {
		printJSON(r.stdout, rep)
	} else {
		fmt.Fprintf(r.stdout, "%s: %d\n", fileName, result.Unique)
		for _, line := range rep.Lines {
			fmt.Fprintf(r.stdout, "%s\n", line)
		}
	}

	if r.configuration.PrintTree && isTree {
		tree.Print(r.stdout)
	}
	return nil
}

// the two argument form: METHOD FILE
func (r *runner) methodCount(ctx context.Context, method string, fileName string) error {
	fmt.Fprintf(r.stdout, "Finding unique lines in %s\n", fileName)
	result, _, err := r.count(ctx, fileName, method)
	if nil != err {
		return err
	}
	switch method {
	case unique.MethodNaive:
		fmt.Fprintf(r.stdout, "Naive:\n")
	default:
		fmt.Fprintf(r.stdout, "%s:\n", strings.ToUpper(method))
	}
	fmt.Fprintf(r.stdout, "%d\n", result.Unique)
	return nil
}

// count and run all consistency checks on the resulting tree
func (r *runner) checkFile(ctx context.Context, fileName string) (bool, error) {
	method := strings.ToLower(r.configuration.Method)
	if unique.MethodNaive == method {
		return false, fault.ErrInvalidMethod
	}
	result, set, err := r.count(ctx, fileName, method)
	if nil != err {
		return false, err
	}

	tree, _ := unique.Tree(set)
	c := checkResult{
		Up:      tree.CheckUp(),
		Heights: tree.CheckHeights(),
		Balance: tree.CheckBalance(),
		Order:   tree.CheckOrder(),
		Count:   tree.CheckCount() && tree.Count() == int(result.Unique),
	}
	h := tree.Height()

	if r.configuration.JSON {
		printJSON(r.stdout, report{
			File:    fileName,
			Method:  method,
			Result:  result,
			Height:  &h,
			Checked: &c,
		})
	} else {
		fmt.Fprintf(r.stdout, "%s: unique: %d  height: %d  up: %v  heights: %v  balance: %v  order: %v  count: %v\n",
			fileName, result.Unique, h, c.Up, c.Heights, c.Balance, c.Order, c.Count)
	}
	if !c.ok() {
		r.log.Warnf("check failed: %q  %+v", fileName, c)
	}
	return c.ok(), nil
}
