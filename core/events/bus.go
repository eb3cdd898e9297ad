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

package events

import (
	"context"
)

// Type is the type of an event emitted on the bus.
type Type int

const (
	// All event type, used by subscribers that want every event, has no
	// corresponding payload.
	All Type = iota
	StakeCreatedEvent
	StakeExtendedEvent
	StakeTransferredEvent
	StakeBurnedEvent
	RewardPayoutEvent
	EmissionReconfiguredEvent
	BoostRecalculatedEvent
)

var eventNames = map[Type]string{
	All:                       "ALL",
	StakeCreatedEvent:         "StakeCreated",
	StakeExtendedEvent:        "StakeExtended",
	StakeTransferredEvent:     "StakeTransferred",
	StakeBurnedEvent:          "StakeBurned",
	RewardPayoutEvent:         "RewardPayout",
	EmissionReconfiguredEvent: "EmissionReconfigured",
	BoostRecalculatedEvent:    "BoostRecalculated",
}

func (t Type) String() string {
	s, ok := eventNames[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event is the base event interface shared by everything published through
// the broker.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
	SetSequenceID(s uint64)
}

type traceIDKey struct{}

// WithTraceID returns a derived context carrying the given trace id, events
// created from it will report it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// Base common denominator all events share.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

func newBase(ctx context.Context, t Type) *Base {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return &Base{
		ctx:     ctx,
		traceID: traceID,
		et:      t,
	}
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}

// Context returns the context the event was created from.
func (b Base) Context() context.Context {
	return b.ctx
}

// TraceID returns the trace id carried by the event context, if any.
func (b Base) TraceID() string {
	return b.traceID
}

// Sequence returns the event sequence number, set by the broker.
func (b Base) Sequence() uint64 {
	return b.seq
}

func (b *Base) SetSequenceID(s uint64) {
	b.seq = s
}
