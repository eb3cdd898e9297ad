// Copyright (C) 2023 Gobalsky Labs Limited
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package soltime provides the time service every engine reads the current
// time from. Time only moves when SetTimeNow is called, so an embedding
// node fully controls the clock the reward engines observe.
package soltime

import (
	"context"
	"sync"
	"time"
)

// Svc is the time service.
type Svc struct {
	config Config

	mu          sync.RWMutex
	currentTime time.Time
	listeners   []func(context.Context, time.Time)
}

// New instantiates a new time service, the clock starts at the given time.
func New(config Config, now time.Time) *Svc {
	return &Svc{
		config:      config,
		currentTime: now,
	}
}

// ReloadConf reloads the configuration.
func (s *Svc) ReloadConf(conf Config) {
	s.mu.Lock()
	s.config = conf
	s.mu.Unlock()
}

// GetTimeNow returns the current time as last set.
func (s *Svc) GetTimeNow() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTime
}

// SetTimeNow moves the clock forward and notifies every registered listener.
// Moving the clock backwards is ignored.
func (s *Svc) SetTimeNow(ctx context.Context, t time.Time) {
	s.mu.Lock()
	if t.Before(s.currentTime) {
		s.mu.Unlock()
		return
	}
	s.currentTime = t
	listeners := make([]func(context.Context, time.Time), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, f := range listeners {
		f(ctx, t)
	}
}

// NotifyOnTick registers a callback invoked on every clock update.
func (s *Svc) NotifyOnTick(callbacks ...func(context.Context, time.Time)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, callbacks...)
	s.mu.Unlock()
}
