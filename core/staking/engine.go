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

// Package staking is the stake ledger: it owns every stake position, the
// lock period lifecycle and the global working supply. Positions are
// transferable multi-token style, and every mutation settles the stake's
// reward accrual before the change takes effect.
package staking

import (
	"context"
	"errors"
	"sync"
	"time"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"golang.org/x/exp/slices"
)

var (
	ErrInvalidStakeAmount = errors.New("stake amount must be positive")
	ErrInvalidLockPeriod  = errors.New("lock period must be between 1 and 60 months")
	ErrStakeDoesNotExist  = errors.New("stake does not exist")
	ErrNotTheOwner        = errors.New("party does not own the stake")
	ErrNotAuthorised      = errors.New("party is neither owner nor approved operator")
	ErrStakeStillLocked   = errors.New("stake lock period has not elapsed")
	ErrNothingToExtend    = errors.New("nothing to add to the stake")
	ErrNothingToUnstake   = errors.New("no unlocked stake to burn")
	ErrUnknownBoostVault  = errors.New("boost vault has no reward accounting attached")
	ErrDuplicateStake     = errors.New("duplicate stake in transfer batch")
)

// Engine is the staking engine.
type Engine struct {
	log *logging.Logger
	cfg Config

	broker      Broker
	timeService TimeService
	collateral  Collateral
	rewards     Rewards

	// custody holds every live stake's principal, rewardPool funds the
	// reward part of an unstake payout.
	custody    types.PartyID
	rewardPool types.PartyID

	mu           sync.Mutex
	stakes       map[types.StakeID]*types.Stake
	byOwner      map[types.PartyID]map[types.StakeID]struct{}
	operators    map[types.PartyID]map[types.PartyID]struct{}
	totalWorking *num.Uint
	nextID       types.StakeID
}

// New instantiates the staking engine.
func New(
	log *logging.Logger,
	cfg Config,
	broker Broker,
	timeService TimeService,
	collateral Collateral,
	rewards Rewards,
	custody, rewardPool types.PartyID,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:          log,
		cfg:          cfg,
		broker:       broker,
		timeService:  timeService,
		collateral:   collateral,
		rewards:      rewards,
		custody:      custody,
		rewardPool:   rewardPool,
		stakes:       map[types.StakeID]*types.Stake{},
		byOwner:      map[types.PartyID]map[types.StakeID]struct{}{},
		operators:    map[types.PartyID]map[types.PartyID]struct{}{},
		totalWorking: num.UintZero(),
		nextID:       1,
	}
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.SetLevel(cfg.Level.Get())
	e.cfg = cfg
}

// Stake locks amount tokens for the given number of months and mints a new
// stake position. The principal moves into custody, the position starts
// earning from now.
func (e *Engine) Stake(ctx context.Context, party types.PartyID, amount *num.Uint, lockPeriodMonths uint16) (types.StakeID, error) {
	if amount == nil || amount.IsZero() {
		return 0, ErrInvalidStakeAmount
	}
	if lockPeriodMonths < types.MinLockPeriodMonths || lockPeriodMonths > types.MaxLockPeriodMonths {
		return 0, ErrInvalidLockPeriod
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.collateral.Transfer(party, e.custody, amount); err != nil {
		return 0, err
	}

	now := e.timeService.GetTimeNow()
	stake := &types.Stake{
		ID:               e.nextID,
		Owner:            party,
		Amount:           amount.Clone(),
		LockPeriodMonths: lockPeriodMonths,
		CreatedAt:        now,
		UnlocksAt:        lockExpiry(now, lockPeriodMonths),
	}
	e.nextID++

	e.stakes[stake.ID] = stake
	e.addOwnership(party, stake.ID)
	e.totalWorking.AddSum(stake.WorkingBalance())

	e.rewards.OnStakeCreated(ctx, stake)
	e.broker.Send(events.NewStakeCreated(ctx, stake))

	if e.log.IsDebug() {
		e.log.Debug("stake created",
			logging.String("id", stake.ID.String()),
			logging.String("party", party.String()),
			logging.String("amount", amount.String()),
			logging.Uint16("lock-period-months", lockPeriodMonths),
		)
	}
	return stake.ID, nil
}

// ExtendStake adds amount and/or months to an existing stake. The stake's
// pending accrual settles under the old working balance first, and the lock
// restarts from now over the new total period. Vaults listed in boostVaults
// get the owner's boosted balance refreshed, since their staking share just
// changed.
func (e *Engine) ExtendStake(ctx context.Context, party types.PartyID, stakeID types.StakeID, addedMonths uint16, addedAmount *num.Uint, boostVaults []types.VaultID) error {
	if addedAmount == nil {
		addedAmount = num.UintZero()
	}
	if addedMonths == 0 && addedAmount.IsZero() {
		return ErrNothingToExtend
	}
	// bound before summing, uint16 arithmetic wraps
	if addedMonths > types.MaxLockPeriodMonths {
		return ErrInvalidLockPeriod
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return ErrStakeDoesNotExist
	}
	if stake.Owner != party {
		return ErrNotTheOwner
	}
	months := stake.LockPeriodMonths + addedMonths
	if months > types.MaxLockPeriodMonths {
		return ErrInvalidLockPeriod
	}
	// validate the boost vaults before any state moves
	for _, vault := range boostVaults {
		if !e.rewards.VaultAttached(vault) {
			return ErrUnknownBoostVault
		}
	}
	if !addedAmount.IsZero() {
		if err := e.collateral.Transfer(party, e.custody, addedAmount); err != nil {
			return err
		}
	}

	oldWorking := stake.WorkingBalance()
	stake.Amount.AddSum(addedAmount)
	stake.LockPeriodMonths = months
	stake.UnlocksAt = lockExpiry(e.timeService.GetTimeNow(), months)
	e.adjustTotalWorking(oldWorking, stake.WorkingBalance())

	if err := e.rewards.OnStakeMutated(ctx, stake); err != nil {
		e.log.Panic("stake ledger and reward accrual out of sync",
			logging.String("id", stakeID.String()), logging.Error(err))
	}
	for _, vault := range boostVaults {
		if err := e.rewards.CalculateVaultRewards(ctx, vault, party); err != nil {
			e.log.Panic("boost vault detached mid-extend",
				logging.String("vault", vault.String()), logging.Error(err))
		}
	}

	e.broker.Send(events.NewStakeExtended(ctx, stake, addedAmount, addedMonths))
	return nil
}

// AddToStake folds amount into a stake's principal, compounding path only:
// the caller is responsible for having already funded custody with the
// amount. The stake's accrual settles under the old working balance first.
func (e *Engine) AddToStake(ctx context.Context, stakeID types.StakeID, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidStakeAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return ErrStakeDoesNotExist
	}

	oldWorking := stake.WorkingBalance()
	stake.Amount.AddSum(amount)
	e.adjustTotalWorking(oldWorking, stake.WorkingBalance())

	if err := e.rewards.OnStakeMutated(ctx, stake); err != nil {
		e.log.Panic("stake ledger and reward accrual out of sync",
			logging.String("id", stakeID.String()), logging.Error(err))
	}
	e.broker.Send(events.NewStakeExtended(ctx, stake, amount, 0))
	return nil
}

// UnstakeSingle burns an unlocked stake, paying out principal and settled
// rewards atomically. Returns the two amounts.
func (e *Engine) UnstakeSingle(ctx context.Context, party types.PartyID, stakeID types.StakeID) (principal, rewards *num.Uint, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return nil, nil, ErrStakeDoesNotExist
	}
	if stake.Owner != party {
		return nil, nil, ErrNotTheOwner
	}
	if e.timeService.GetTimeNow().Before(stake.UnlocksAt) {
		return nil, nil, ErrStakeStillLocked
	}
	return e.burnLocked(ctx, stake)
}

// UnstakeAll burns every unlocked stake the party owns, paying out
// principal and rewards per stake. Errors when no stake can be burned.
func (e *Engine) UnstakeAll(ctx context.Context, party types.PartyID) (principal, rewards *num.Uint, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.timeService.GetTimeNow()
	principal, rewards = num.UintZero(), num.UintZero()
	burned := false
	for _, id := range e.ownedLocked(party) {
		stake := e.stakes[id]
		if now.Before(stake.UnlocksAt) {
			continue
		}
		p, r, err := e.burnLocked(ctx, stake)
		if err != nil {
			return nil, nil, err
		}
		principal.AddSum(p)
		rewards.AddSum(r)
		burned = true
	}
	if !burned {
		return nil, nil, ErrNothingToUnstake
	}
	return principal, rewards, nil
}

// burnLocked pays out one stake, then settles and removes it. The accrual
// position is only closed once both payout transfers went through, a failed
// payout leaves the stake fully intact.
func (e *Engine) burnLocked(ctx context.Context, stake *types.Stake) (*num.Uint, *num.Uint, error) {
	earned := e.rewards.UnclaimedStakingRewards([]types.StakeID{stake.ID})
	if err := e.collateral.Transfer(e.custody, stake.Owner, stake.Amount); err != nil {
		return nil, nil, err
	}
	if !earned.IsZero() {
		if err := e.collateral.Transfer(e.rewardPool, stake.Owner, earned); err != nil {
			if rerr := e.collateral.Transfer(stake.Owner, e.custody, stake.Amount); rerr != nil {
				e.log.Panic("failed to return principal to custody",
					logging.String("id", stake.ID.String()), logging.Error(rerr))
			}
			return nil, nil, err
		}
	}

	settled, err := e.rewards.OnStakeBurned(ctx, stake.ID)
	if err != nil {
		e.log.Panic("stake ledger and reward accrual out of sync",
			logging.String("id", stake.ID.String()), logging.Error(err))
	}
	if settled.NEQ(earned) {
		e.log.Panic("settled rewards diverged from the payout",
			logging.String("id", stake.ID.String()),
			logging.String("paid", earned.String()),
			logging.String("settled", settled.String()),
		)
	}

	e.adjustTotalWorking(stake.WorkingBalance(), num.UintZero())
	e.removeOwnership(stake.Owner, stake.ID)
	delete(e.stakes, stake.ID)

	e.broker.Send(events.NewStakeBurned(ctx, stake.ID, stake.Owner, stake.Amount, earned))
	return stake.Amount.Clone(), earned, nil
}

// TransferStake moves a stake to a new owner. The sender must be the owner
// or an operator approved by the owner, and the transferor's accrued
// rewards settle to them before ownership changes.
func (e *Engine) TransferStake(ctx context.Context, sender types.PartyID, stakeID types.StakeID, to types.PartyID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transferLocked(ctx, sender, stakeID, to)
}

// TransferStakeBatch transfers several stakes at once, all or nothing: the
// whole batch is validated before the first transfer settles, so an invalid
// entry leaves every stake with its current owner.
func (e *Engine) TransferStakeBatch(ctx context.Context, sender types.PartyID, stakeIDs []types.StakeID, to types.PartyID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[types.StakeID]struct{}, len(stakeIDs))
	for _, id := range stakeIDs {
		if _, ok := seen[id]; ok {
			return ErrDuplicateStake
		}
		seen[id] = struct{}{}
		stake, ok := e.stakes[id]
		if !ok {
			return ErrStakeDoesNotExist
		}
		if stake.Owner != sender && !e.isOperatorLocked(stake.Owner, sender) {
			return ErrNotAuthorised
		}
	}
	for _, id := range stakeIDs {
		// cannot fail past this point, the whole batch was validated above
		if err := e.transferLocked(ctx, sender, id, to); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) transferLocked(ctx context.Context, sender types.PartyID, stakeID types.StakeID, to types.PartyID) error {
	stake, ok := e.stakes[stakeID]
	if !ok {
		return ErrStakeDoesNotExist
	}
	if stake.Owner != sender && !e.isOperatorLocked(stake.Owner, sender) {
		return ErrNotAuthorised
	}

	from := stake.Owner
	if err := e.rewards.OnStakeTransferred(ctx, stakeID, from, to); err != nil {
		e.log.Panic("stake ledger and reward accrual out of sync",
			logging.String("id", stakeID.String()), logging.Error(err))
	}
	e.removeOwnership(from, stakeID)
	e.addOwnership(to, stakeID)
	stake.Owner = to

	e.broker.Send(events.NewStakeTransferred(ctx, stakeID, from, to))
	return nil
}

// SetApprovalForAll grants or revokes an operator's right to transfer any
// of the party's stakes.
func (e *Engine) SetApprovalForAll(party, operator types.PartyID, approved bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ops, ok := e.operators[party]
	if !ok {
		if !approved {
			return
		}
		ops = map[types.PartyID]struct{}{}
		e.operators[party] = ops
	}
	if approved {
		ops[operator] = struct{}{}
		return
	}
	delete(ops, operator)
	if len(ops) == 0 {
		delete(e.operators, party)
	}
}

// IsApprovedForAll says whether operator may transfer the party's stakes.
func (e *Engine) IsApprovedForAll(party, operator types.PartyID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isOperatorLocked(party, operator)
}

// OwnerOf returns the owner of a stake.
func (e *Engine) OwnerOf(stakeID types.StakeID) (types.PartyID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return "", ErrStakeDoesNotExist
	}
	return stake.Owner, nil
}

// GetStake returns a copy of the stake.
func (e *Engine) GetStake(stakeID types.StakeID) (*types.Stake, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return nil, ErrStakeDoesNotExist
	}
	return stake.Clone(), nil
}

// StakesOwnedBy returns the ids of the party's stakes in ascending order.
func (e *Engine) StakesOwnedBy(party types.PartyID) []types.StakeID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ownedLocked(party)
}

// StakeWorkingBalance returns a stake's working balance.
func (e *Engine) StakeWorkingBalance(stakeID types.StakeID) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stake, ok := e.stakes[stakeID]
	if !ok {
		return nil, ErrStakeDoesNotExist
	}
	return stake.WorkingBalance(), nil
}

// PartyWorkingBalance returns the party's total working balance.
func (e *Engine) PartyWorkingBalance(party types.PartyID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := num.UintZero()
	for id := range e.byOwner[party] {
		total.AddSum(e.stakes[id].WorkingBalance())
	}
	return total
}

// TotalWorkingSupply returns the global working supply.
func (e *Engine) TotalWorkingSupply() *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalWorking.Clone()
}

func (e *Engine) adjustTotalWorking(oldW, newW *num.Uint) {
	if e.totalWorking.LT(oldW) {
		e.log.Panic("working supply underflow",
			logging.String("total", e.totalWorking.String()),
			logging.String("removing", oldW.String()),
		)
	}
	e.totalWorking.Sub(e.totalWorking, oldW)
	e.totalWorking.AddSum(newW)
}

func (e *Engine) addOwnership(party types.PartyID, id types.StakeID) {
	owned, ok := e.byOwner[party]
	if !ok {
		owned = map[types.StakeID]struct{}{}
		e.byOwner[party] = owned
	}
	owned[id] = struct{}{}
}

func (e *Engine) removeOwnership(party types.PartyID, id types.StakeID) {
	owned := e.byOwner[party]
	delete(owned, id)
	if len(owned) == 0 {
		delete(e.byOwner, party)
	}
}

func (e *Engine) ownedLocked(party types.PartyID) []types.StakeID {
	out := make([]types.StakeID, 0, len(e.byOwner[party]))
	for id := range e.byOwner[party] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (e *Engine) isOperatorLocked(owner, operator types.PartyID) bool {
	_, ok := e.operators[owner][operator]
	return ok
}

// lockExpiry returns now plus the lock period, a month being a twelfth of a
// mean tropical year.
func lockExpiry(now time.Time, months uint16) time.Time {
	return now.Add(time.Duration(int64(months)*types.MonthSeconds) * time.Second)
}
