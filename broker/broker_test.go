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

package broker_test

import (
	"context"
	"testing"

	"code.solsticelabs.io/solstice/broker"
	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSub struct {
	types    []events.Type
	received []events.Event
}

func (s *testSub) Push(evts ...events.Event) {
	s.received = append(s.received, evts...)
}

func (s *testSub) Types() []events.Type {
	return s.types
}

func getTestBroker(t *testing.T) *broker.Broker {
	t.Helper()
	return broker.New(logging.NewTestLogger(), broker.NewDefaultConfig())
}

func stakeEvent(t *testing.T) events.Event {
	t.Helper()
	stake := &types.Stake{
		ID:               1,
		Owner:            "alice",
		Amount:           num.NewUint(1000),
		LockPeriodMonths: 6,
	}
	return events.NewStakeCreated(context.Background(), stake)
}

func TestBroker(t *testing.T) {
	t.Run("typed subscriber only sees its types", testTypedSubscriber)
	t.Run("catch-all subscriber sees everything", testCatchAllSubscriber)
	t.Run("sequence numbers are monotonic", testSequenceNumbers)
	t.Run("unsubscribe stops delivery", testUnsubscribe)
}

func testTypedSubscriber(t *testing.T) {
	brk := getTestBroker(t)

	stakes := &testSub{types: []events.Type{events.StakeCreatedEvent}}
	payouts := &testSub{types: []events.Type{events.RewardPayoutEvent}}
	brk.Subscribe(stakes)
	brk.Subscribe(payouts)

	brk.Send(stakeEvent(t))

	require.Len(t, stakes.received, 1)
	assert.Equal(t, events.StakeCreatedEvent, stakes.received[0].Type())
	assert.Empty(t, payouts.received)
}

func testCatchAllSubscriber(t *testing.T) {
	brk := getTestBroker(t)

	all := &testSub{types: []events.Type{events.All}}
	brk.Subscribe(all)

	brk.Send(stakeEvent(t))
	brk.Send(stakeEvent(t))

	assert.Len(t, all.received, 2)
}

func testSequenceNumbers(t *testing.T) {
	brk := getTestBroker(t)

	all := &testSub{types: []events.Type{events.All}}
	brk.Subscribe(all)

	brk.Send(stakeEvent(t))
	brk.Send(stakeEvent(t))

	require.Len(t, all.received, 2)
	assert.Less(t, all.received[0].Sequence(), all.received[1].Sequence())
}

func testUnsubscribe(t *testing.T) {
	brk := getTestBroker(t)

	sub := &testSub{types: []events.Type{events.StakeCreatedEvent}}
	key := brk.Subscribe(sub)

	brk.Send(stakeEvent(t))
	brk.Unsubscribe(key)
	brk.Send(stakeEvent(t))

	assert.Len(t, sub.received, 1)

	// unknown keys are a no-op
	brk.Unsubscribe(key)
}
