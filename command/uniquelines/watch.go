// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquelines/fault"
)

// count the file now and again after every write
// until it is removed or the context is cancelled
func (r *runner) watchFile(ctx context.Context, fileName string) error {

	watcher, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix), newWatcherChannel())
	if nil != err {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		return err
	}

	return r.watchLoop(ctx, fileName, watcher)
}

func (r *runner) watchLoop(ctx context.Context, fileName string, watcher FileWatcher) error {

	if err := r.countFile(ctx, fileName); nil != err {
		if nil != ctx.Err() {
			return nil
		}
		return err
	}

	for {
		select {
		case <-ctx.Done():
			r.log.Info("watch stopped")
			return nil

		case <-watcher.RemoveChannel():
			return fault.ErrWatchedFileRemoved

		case <-watcher.ChangeChannel():
			r.log.Debugf("recount: %q", fileName)
			if err := r.countFile(ctx, fileName); nil != err {
				if nil != ctx.Err() {
					return nil
				}
				return err
			}
		}
	}
}
