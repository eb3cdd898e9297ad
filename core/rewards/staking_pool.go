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

package rewards

import (
	"context"
	"errors"
	"time"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
)

var ErrUnknownStakePosition = errors.New("unknown stake position")

// stakePosition is one stake's accrual state in the staking pool. working is
// the pool's snapshot of the stake's working balance, only moved through the
// staking engine's mutation hooks.
type stakePosition struct {
	owner   types.PartyID
	working *num.Uint
	debt    num.Decimal
	pending num.Decimal
}

// stakingPool accrues the staking allocation over the total working supply,
// one position per stake id. partyPending holds rewards detached from their
// stake, settled to the previous owner when a stake is transferred.
type stakingPool struct {
	cp           checkpoint
	totalWorking *num.Uint
	positions    map[types.StakeID]*stakePosition
	partyWorking map[types.PartyID]*num.Uint
	partyPending map[types.PartyID]num.Decimal
}

func newStakingPool(now time.Time) *stakingPool {
	return &stakingPool{
		cp:           newCheckpoint(now),
		totalWorking: num.UintZero(),
		positions:    map[types.StakeID]*stakePosition{},
		partyWorking: map[types.PartyID]*num.Uint{},
		partyPending: map[types.PartyID]num.Decimal{},
	}
}

// partyWorkingOf returns the party's total working balance across their
// stakes, zero for parties with none.
func (p *stakingPool) partyWorkingOf(party types.PartyID) *num.Uint {
	w, ok := p.partyWorking[party]
	if !ok {
		return num.UintZero()
	}
	return w
}

// adjustWorking moves a stake's working balance snapshot from old to new,
// delta-adjusting the pool and per-party aggregates.
func (p *stakingPool) adjustWorking(owner types.PartyID, oldW, newW *num.Uint) {
	p.totalWorking.Sub(p.totalWorking, oldW)
	p.totalWorking.AddSum(newW)

	w, ok := p.partyWorking[owner]
	if !ok {
		w = num.UintZero()
		p.partyWorking[owner] = w
	}
	w.Sub(w, oldW)
	w.AddSum(newW)
	if w.IsZero() {
		delete(p.partyWorking, owner)
	}
}

// OnStakeCreated opens an accrual position for a freshly minted stake. The
// pool is flushed first so the new working balance only earns from now on.
func (e *Engine) OnStakeCreated(_ context.Context, stake *types.Stake) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)

	working := stake.WorkingBalance()
	p.positions[stake.ID] = &stakePosition{
		owner:   stake.Owner,
		working: working,
		debt:    p.cp.accruedPerShare,
		pending: num.DecimalZero(),
	}
	p.adjustWorking(stake.Owner, num.UintZero(), working)
}

// OnStakeMutated settles a stake under its old working balance, then adopts
// the new one. The staking engine calls this after every amount or lock
// period change (extend, compound).
func (e *Engine) OnStakeMutated(_ context.Context, stake *types.Stake) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	pos, ok := p.positions[stake.ID]
	if !ok {
		return ErrUnknownStakePosition
	}
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)

	working := stake.WorkingBalance()
	p.adjustWorking(pos.owner, pos.working, working)
	pos.working = working
	return nil
}

// OnStakeTransferred settles the transferor's accrual and detaches it into
// their claimable bucket before the position changes hands, so the new owner
// only earns from the transfer on.
func (e *Engine) OnStakeTransferred(_ context.Context, stakeID types.StakeID, from, to types.PartyID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	pos, ok := p.positions[stakeID]
	if !ok {
		return ErrUnknownStakePosition
	}
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)

	p.partyPending[from] = p.partyPending[from].Add(pos.pending)
	pos.pending = num.DecimalZero()

	p.adjustWorking(from, pos.working, num.UintZero())
	p.adjustWorking(to, num.UintZero(), pos.working)
	pos.owner = to
	return nil
}

// OnStakeBurned closes a stake's position and returns its settled rewards,
// paid out by the staking engine atomically with the principal. Sub-unit
// dust moves to the owner's claimable bucket.
func (e *Engine) OnStakeBurned(_ context.Context, stakeID types.StakeID) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	pos, ok := p.positions[stakeID]
	if !ok {
		return nil, ErrUnknownStakePosition
	}
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)

	whole, _ := num.UintFromDecimal(pos.pending.Floor())
	if dust := pos.pending.Sub(num.DecimalFromUint(whole)); !dust.IsZero() {
		p.partyPending[pos.owner] = p.partyPending[pos.owner].Add(dust)
	}
	p.adjustWorking(pos.owner, pos.working, num.UintZero())
	delete(p.positions, stakeID)
	return whole, nil
}

// CalculateStakingRewards settles a single stake's accrual up to now.
func (e *Engine) CalculateStakingRewards(_ context.Context, stakeID types.StakeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	pos, ok := p.positions[stakeID]
	if !ok {
		return ErrUnknownStakePosition
	}
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)
	return nil
}

// UnclaimedStakingRewards sums the pending rewards of the given stakes,
// projected to now, without mutating anything.
func (e *Engine) UnclaimedStakingRewards(stakeIDs []types.StakeID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	aps := p.cp.projected(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	total := num.DecimalZero()
	for _, id := range stakeIDs {
		pos, ok := p.positions[id]
		if !ok {
			continue
		}
		total = total.Add(pos.pending).Add(aps.Sub(pos.debt).Mul(num.DecimalFromUint(pos.working)))
	}
	u, _ := num.UintFromDecimal(total.Floor())
	return u
}

// DrainStakeReward settles one stake and removes its whole pending reward,
// returning it together with a restore function crediting it back, for
// callers whose downstream transfer can still fail. Used when compounding a
// stake into itself.
func (e *Engine) DrainStakeReward(_ context.Context, stakeID types.StakeID) (*num.Uint, func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.staking
	pos, ok := p.positions[stakeID]
	if !ok {
		return nil, nil, ErrUnknownStakePosition
	}
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)
	settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)

	whole, _ := num.UintFromDecimal(pos.pending.Floor())
	pos.pending = pos.pending.Sub(num.DecimalFromUint(whole))
	restore := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		pos.pending = pos.pending.Add(num.DecimalFromUint(whole))
	}
	return whole, restore, nil
}

// DrainStakingRewards settles every stake the party owns plus their detached
// bucket, removing and returning the whole pending amount. The returned
// restore function credits the amount back, for callers whose downstream
// transfer can still fail.
func (e *Engine) DrainStakingRewards(_ context.Context, party types.PartyID) (*num.Uint, func()) {
	e.mu.Lock()
	total, restoreLocked := e.drainStakingLocked(party)
	e.mu.Unlock()

	return total, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		restoreLocked()
	}
}

func (e *Engine) drainStakingLocked(party types.PartyID) (*num.Uint, func()) {
	p := e.staking
	p.cp.advance(e.timeService.GetTimeNow(), p.totalWorking, e.emission.StakingEmittedBetween)

	type drained struct {
		pos     *stakePosition
		pending num.Decimal
	}
	var removed []drained
	bucket, hadBucket := p.partyPending[party]
	total := bucket
	delete(p.partyPending, party)
	for _, pos := range p.positions {
		if pos.owner != party {
			continue
		}
		settlePosition(&pos.pending, &pos.debt, p.cp.accruedPerShare, pos.working)
		if pos.pending.IsZero() {
			continue
		}
		removed = append(removed, drained{pos: pos, pending: pos.pending})
		total = total.Add(pos.pending)
		pos.pending = num.DecimalZero()
	}

	whole, _ := num.UintFromDecimal(total.Floor())
	if dust := total.Sub(num.DecimalFromUint(whole)); !dust.IsZero() {
		p.partyPending[party] = dust
	}
	restore := func() {
		for _, d := range removed {
			d.pos.pending = d.pending
		}
		if hadBucket {
			p.partyPending[party] = bucket
		} else {
			delete(p.partyPending, party)
		}
	}
	return whole, restore
}

// ClaimStakingRewards settles and pays out all the party's staking rewards
// to the recipient in one transfer. A failed transfer leaves every pending
// amount as it was.
func (e *Engine) ClaimStakingRewards(ctx context.Context, party, recipient types.PartyID) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	amount, restore := e.drainStakingLocked(party)
	if amount.IsZero() {
		return nil, ErrNothingToClaim
	}
	if err := e.collateral.Transfer(e.poolAccount, recipient, amount); err != nil {
		restore()
		return nil, err
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, recipient, amount, events.RewardSourceStaking, false))
	return amount, nil
}

// PartyWorkingBalance returns the party's total working balance snapshot.
func (e *Engine) PartyWorkingBalance(party types.PartyID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staking.partyWorkingOf(party).Clone()
}

// TotalWorkingSupply returns the pool's working supply snapshot.
func (e *Engine) TotalWorkingSupply() *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staking.totalWorking.Clone()
}
