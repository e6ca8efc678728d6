// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"fmt"
	"log/slog"
	"sync"
)

// FireAndForgetSynchronizer runs background work detached from the request.
// Wait blocks until every scheduled function returned.
type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
	Wait()
}

type asyncFireAndForgetSynchronizer struct {
	wg        sync.WaitGroup
	semaphore chan struct{}
	onPanic   func(msg string, err error)
}

// NewFireAndForgetSynchronizer runs at most concurrency functions at the same time.
// Further functions queue up in their own goroutine.
func NewFireAndForgetSynchronizer(concurrency int, onPanic func(msg string, err error)) FireAndForgetSynchronizer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &asyncFireAndForgetSynchronizer{
		semaphore: make(chan struct{}, concurrency),
		onPanic:   onPanic,
	}
}

func (s *asyncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.semaphore <- struct{}{}
		defer func() { <-s.semaphore }()

		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic in background task: %v", r)
				if s.onPanic != nil {
					s.onPanic("background task panicked", err)
				} else {
					slog.Error("background task panicked", "err", err)
				}
			}
		}()

		fn()
	}()
}

func (s *asyncFireAndForgetSynchronizer) Wait() {
	s.wg.Wait()
}

type syncFireAndForgetSynchronizer struct{}

// NewSyncFireAndForgetSynchronizer runs every function immediately on the calling goroutine.
func NewSyncFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return syncFireAndForgetSynchronizer{}
}

func (syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}

func (syncFireAndForgetSynchronizer) Wait() {}
