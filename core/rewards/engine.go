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

// Package rewards tracks accrued-but-unclaimed rewards for vault depositors
// and stakers with the checkpoint/reward-debt pattern: no operation ever
// iterates over all users, every balance-changing event settles the subject
// lazily against a cumulative per-share counter.
package rewards

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"golang.org/x/exp/slices"
)

var (
	ErrVaultAlreadyAttached = errors.New("vault already attached")
	ErrVaultNotAttached     = errors.New("vault not attached")
	ErrNothingToClaim       = errors.New("nothing to claim")
)

// vaultPosition is one depositor's accrual state on one vault. pending
// stays a decimal until paid out, only whole token units ever leave.
type vaultPosition struct {
	boosted *num.Uint
	debt    num.Decimal
	pending num.Decimal
}

// vaultPool is the accrual state of a single vault: a checkpoint over the
// vault's boosted supply, and one position per depositor.
type vaultPool struct {
	id            types.VaultID
	vault         Vault
	cp            checkpoint
	boostedSupply *num.Uint
	positions     map[types.PartyID]*vaultPosition
}

// Engine is the reward accrual engine for both the vault depositor pools
// and the staking pool.
type Engine struct {
	log *logging.Logger
	cfg Config

	broker      Broker
	timeService TimeService
	emission    EmissionEngine
	collateral  Collateral

	// poolAccount funds every reward payout.
	poolAccount types.PartyID

	mu      sync.Mutex
	boost   *BoostCalculator
	vaults  map[types.VaultID]*vaultPool
	staking *stakingPool
}

// New instantiates the rewards engine. Payouts are drawn from poolAccount.
func New(
	log *logging.Logger,
	cfg Config,
	broker Broker,
	timeService TimeService,
	emission EmissionEngine,
	collateral Collateral,
	poolAccount types.PartyID,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	w1, w2 := DefaultBoostWeights()
	boost, _ := NewBoostCalculator(w1, w2)

	return &Engine{
		log:         log,
		cfg:         cfg,
		broker:      broker,
		timeService: timeService,
		emission:    emission,
		collateral:  collateral,
		poolAccount: poolAccount,
		boost:       boost,
		vaults:      map[types.VaultID]*vaultPool{},
		staking:     newStakingPool(timeService.GetTimeNow()),
	}
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.SetLevel(cfg.Level.Get())
	e.cfg = cfg
}

// AttachVault starts reward accounting for a vault. The accrual window
// opens now, nothing is owed for any earlier time.
func (e *Engine) AttachVault(vault types.VaultID, v Vault) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.vaults[vault]; ok {
		return ErrVaultAlreadyAttached
	}
	e.vaults[vault] = &vaultPool{
		id:            vault,
		vault:         v,
		cp:            newCheckpoint(e.timeService.GetTimeNow()),
		boostedSupply: num.UintZero(),
		positions:     map[types.PartyID]*vaultPosition{},
	}
	e.log.Info("vault attached", logging.String("vault", vault.String()))
	return nil
}

// FlushAll advances every pool checkpoint to the given time. Registered
// with the emission engine so that all accrual windows close under the old
// configuration before any reconfiguration applies.
func (e *Engine) FlushAll(_ context.Context, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, pool := range e.vaults {
		pool.cp.advance(now, pool.boostedSupply, e.vaultEmitted(pool.id))
	}
	e.staking.cp.advance(now, e.staking.totalWorking, e.emission.StakingEmittedBetween)
}

// UpdateBoostFactors replaces the boost weights. All vault pools are
// flushed first so rewards accrued under the old weights are untouched.
func (e *Engine) UpdateBoostFactors(ctx context.Context, w1, w2 num.Decimal) error {
	boost, err := NewBoostCalculator(w1, w2)
	if err != nil {
		return err
	}

	e.mu.Lock()
	now := e.timeService.GetTimeNow()
	for _, pool := range e.vaults {
		pool.cp.advance(now, pool.boostedSupply, e.vaultEmitted(pool.id))
	}
	e.boost = boost
	e.mu.Unlock()

	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeBoostWeights,
		fmt.Sprintf("boost weights %s/%s", w1.String(), w2.String())))
	return nil
}

// CalculateVaultRewards settles a depositor's position on a vault and
// refreshes their boosted balance snapshot. Vaults call this on every event
// changing the party's raw balance, and the staking engine calls it when
// the party's staking share changes.
func (e *Engine) CalculateVaultRewards(ctx context.Context, vault types.VaultID, party types.PartyID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, ok := e.vaults[vault]
	if !ok {
		return ErrVaultNotAttached
	}
	e.calculateVaultLocked(ctx, pool, party)
	return nil
}

// calculateVaultLocked is the full per-user vault update: checkpoint, settle
// pending against the old snapshot, then re-snapshot the boosted balance and
// delta-adjust the pool supply.
func (e *Engine) calculateVaultLocked(ctx context.Context, pool *vaultPool, party types.PartyID) *vaultPosition {
	now := e.timeService.GetTimeNow()
	pool.cp.advance(now, pool.boostedSupply, e.vaultEmitted(pool.id))

	pos, ok := pool.positions[party]
	if !ok {
		pos = &vaultPosition{
			boosted: num.UintZero(),
			debt:    pool.cp.accruedPerShare,
			pending: num.DecimalZero(),
		}
		pool.positions[party] = pos
	}
	settlePosition(&pos.pending, &pos.debt, pool.cp.accruedPerShare, pos.boosted)

	boosted := e.boost.Boosted(
		pool.vault.BalanceOf(party),
		e.staking.partyWorkingOf(party),
		e.staking.totalWorking,
		pool.vault.TotalBalance(),
	)
	pool.boostedSupply.Sub(pool.boostedSupply, pos.boosted)
	pool.boostedSupply.AddSum(boosted)
	pos.boosted = boosted

	e.broker.Send(events.NewBoostRecalculated(ctx, pool.id, party, boosted))
	return pos
}

// settlePosition folds the per-share growth since the last touch into the
// subject's pending rewards and resets its debt.
func settlePosition(pending *num.Decimal, debt *num.Decimal, accruedPerShare num.Decimal, shares *num.Uint) {
	grown := accruedPerShare.Sub(*debt).Mul(num.DecimalFromUint(shares))
	*pending = pending.Add(grown)
	*debt = accruedPerShare
}

// UnclaimedVaultRewards sums the party's pending vault rewards, projected to
// now, without mutating any state. An empty vault list means all vaults the
// party has a position in.
func (e *Engine) UnclaimedVaultRewards(party types.PartyID, vaults []types.VaultID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(vaults) == 0 {
		vaults = e.vaultsWithPositionLocked(party)
	}
	now := e.timeService.GetTimeNow()
	total := num.DecimalZero()
	for _, vault := range vaults {
		pool, ok := e.vaults[vault]
		if !ok {
			continue
		}
		pos, ok := pool.positions[party]
		if !ok {
			continue
		}
		aps := pool.cp.projected(now, pool.boostedSupply, e.vaultEmitted(pool.id))
		total = total.Add(pos.pending).Add(aps.Sub(pos.debt).Mul(num.DecimalFromUint(pos.boosted)))
	}
	u, _ := num.UintFromDecimal(total.Floor())
	return u
}

// DrainVaultRewards settles the party on the given vaults (all vaults with
// a position when the list is empty) and removes the whole pending amount,
// returning it without transferring anything. Sub-unit remainders stay
// pending. The returned restore function credits the amount back, for
// callers whose downstream transfer can still fail.
func (e *Engine) DrainVaultRewards(ctx context.Context, party types.PartyID, vaults []types.VaultID) (*num.Uint, func()) {
	e.mu.Lock()
	total, restoreLocked := e.drainVaultLocked(ctx, party, vaults)
	e.mu.Unlock()

	return total, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		restoreLocked()
	}
}

func (e *Engine) drainVaultLocked(ctx context.Context, party types.PartyID, vaults []types.VaultID) (*num.Uint, func()) {
	if len(vaults) == 0 {
		vaults = e.vaultsWithPositionLocked(party)
	}
	type drained struct {
		pos   *vaultPosition
		whole *num.Uint
	}
	var removed []drained
	total := num.UintZero()
	for _, vault := range vaults {
		pool, ok := e.vaults[vault]
		if !ok {
			continue
		}
		pos := e.calculateVaultLocked(ctx, pool, party)
		whole, _ := num.UintFromDecimal(pos.pending.Floor())
		if whole.IsZero() {
			continue
		}
		pos.pending = pos.pending.Sub(num.DecimalFromUint(whole))
		total.AddSum(whole)
		removed = append(removed, drained{pos: pos, whole: whole})
	}
	restore := func() {
		for _, d := range removed {
			d.pos.pending = d.pos.pending.Add(num.DecimalFromUint(d.whole))
		}
	}
	return total, restore
}

// ClaimVaultRewards settles and pays out the party's pending rewards on the
// given vaults to the recipient in one transfer. A failed transfer leaves
// every pending amount as it was.
func (e *Engine) ClaimVaultRewards(ctx context.Context, party types.PartyID, vaults []types.VaultID, recipient types.PartyID) (*num.Uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	amount, restore := e.drainVaultLocked(ctx, party, vaults)
	if amount.IsZero() {
		return nil, ErrNothingToClaim
	}
	if err := e.collateral.Transfer(e.poolAccount, recipient, amount); err != nil {
		restore()
		return nil, err
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, recipient, amount, events.RewardSourceVaults, false))
	return amount, nil
}

// VaultAttached reports whether reward accounting is active for the vault.
func (e *Engine) VaultAttached(vault types.VaultID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.vaults[vault]
	return ok
}

// VaultsWithPosition returns the vaults the party has an accrual position
// on, in lexical order.
func (e *Engine) VaultsWithPosition(party types.PartyID) []types.VaultID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vaultsWithPositionLocked(party)
}

func (e *Engine) vaultsWithPositionLocked(party types.PartyID) []types.VaultID {
	out := make([]types.VaultID, 0, len(e.vaults))
	for id, pool := range e.vaults {
		if _, ok := pool.positions[party]; ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// BoostedBalance returns the party's boosted balance snapshot on a vault.
func (e *Engine) BoostedBalance(vault types.VaultID, party types.PartyID) (*num.Uint, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, ok := e.vaults[vault]
	if !ok {
		return num.UintZero(), false
	}
	pos, ok := pool.positions[party]
	if !ok {
		return num.UintZero(), false
	}
	return pos.boosted.Clone(), true
}

// TotalBoostedSupply returns the running boosted supply of a vault.
func (e *Engine) TotalBoostedSupply(vault types.VaultID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, ok := e.vaults[vault]
	if !ok {
		return num.UintZero()
	}
	return pool.boostedSupply.Clone()
}

// vaultEmitted binds a vault id into the emission interval integral.
func (e *Engine) vaultEmitted(vault types.VaultID) emittedFn {
	return func(t0, t1 time.Time) num.Decimal {
		return e.emission.VaultEmittedBetween(vault, t0, t1)
	}
}
