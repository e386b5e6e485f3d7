// Copyright (C) 2025 infratrack-dev
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
	"log/slog"
	"sync"
)

// FireAndForgetSynchronizer runs work which must not block the request.
// Tests use the synchronous variant to make the side effects observable.
type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

type goroutineFireAndForgetSynchronizer struct{}

func NewFireAndForgetSynchronizer() goroutineFireAndForgetSynchronizer {
	return goroutineFireAndForgetSynchronizer{}
}

func (goroutineFireAndForgetSynchronizer) FireAndForget(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic in fire and forget function", "panic", r)
			}
		}()
		fn()
	}()
}

type syncFireAndForgetSynchronizer struct{}

func NewSyncFireAndForgetSynchronizer() syncFireAndForgetSynchronizer {
	return syncFireAndForgetSynchronizer{}
}

func (syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}

// WaitGroupFireAndForgetSynchronizer runs the work concurrently and lets
// the caller wait for all of it. Used by the cli and integration tests.
type WaitGroupFireAndForgetSynchronizer struct {
	wg sync.WaitGroup
}

func (s *WaitGroupFireAndForgetSynchronizer) FireAndForget(fn func()) {
	s.wg.Go(fn)
}

func (s *WaitGroupFireAndForgetSynchronizer) Wait() {
	s.wg.Wait()
}
