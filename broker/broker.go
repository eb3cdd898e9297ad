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

package broker

import (
	"sync"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/logging"
)

// Subscriber receives events pushed through the broker for the event types
// it declares.
type Subscriber interface {
	Push(evts ...events.Event)
	Types() []events.Type
}

type subscription struct {
	Subscriber
	id int
}

// Broker is an in-process event bus, it fans every event out to the
// subscribers registered for its type, synchronously and in subscription
// order.
type Broker struct {
	log *logging.Logger

	mu    sync.Mutex
	seq   uint64
	tSubs map[events.Type][]*subscription
	subs  map[int]*subscription
	next  int
}

// New creates a new broker.
func New(log *logging.Logger, config Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Broker{
		log:   log,
		tSubs: map[events.Type][]*subscription{},
		subs:  map[int]*subscription{},
	}
}

// Send publishes an event, stamping it with the next sequence number.
func (b *Broker) Send(evt events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	evt.SetSequenceID(b.seq)

	if b.log.IsDebug() {
		b.log.Debug("event sent",
			logging.String("type", evt.Type().String()),
			logging.Uint64("sequence", evt.Sequence()),
		)
	}

	for _, sub := range b.tSubs[evt.Type()] {
		sub.Push(evt)
	}
	for _, sub := range b.tSubs[events.All] {
		sub.Push(evt)
	}
}

// Subscribe registers a subscriber for the event types it declares and
// returns the key to unsubscribe it with.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	sub := &subscription{
		Subscriber: s,
		id:         b.next,
	}
	b.subs[sub.id] = sub
	for _, t := range s.Types() {
		b.tSubs[t] = append(b.tSubs[t], sub)
	}
	return sub.id
}

// Unsubscribe removes a subscriber, unknown keys are ignored.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[k]
	if !ok {
		return
	}
	delete(b.subs, k)
	for _, t := range sub.Types() {
		subs := b.tSubs[t]
		for i := range subs {
			if subs[i].id == k {
				b.tSubs[t] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
