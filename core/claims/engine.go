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

// Package claims is the claim and compound facade over the reward engine
// and the stake ledger: one call claims everything a party is owed in a
// single transfer, or folds it back into a stake's principal instead.
package claims

import (
	"context"
	"errors"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"
)

var (
	ErrNothingToClaim = errors.New("nothing to claim")
	ErrNotTheOwner    = errors.New("party does not own the stake")
)

// Engine is the claim/compound facade.
type Engine struct {
	log *logging.Logger
	cfg Config

	broker     Broker
	rewards    Rewards
	stakes     StakeLedger
	collateral Collateral

	// poolAccount funds payouts, custody receives compounded principal.
	poolAccount types.PartyID
	custody     types.PartyID
}

// New instantiates the claims facade.
func New(
	log *logging.Logger,
	cfg Config,
	broker Broker,
	rewards Rewards,
	stakes StakeLedger,
	collateral Collateral,
	poolAccount, custody types.PartyID,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:         log,
		cfg:         cfg,
		broker:      broker,
		rewards:     rewards,
		stakes:      stakes,
		collateral:  collateral,
		poolAccount: poolAccount,
		custody:     custody,
	}
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.SetLevel(cfg.Level.Get())
	e.cfg = cfg
}

// ClaimAll settles and pays out everything the party is owed, vault and
// staking rewards together, in a single transfer to the recipient. A failed
// transfer leaves every pending amount as it was.
func (e *Engine) ClaimAll(ctx context.Context, party, recipient types.PartyID) (*num.Uint, error) {
	vaultAmount, restoreVaults := e.rewards.DrainVaultRewards(ctx, party, nil)
	stakingAmount, restoreStaking := e.rewards.DrainStakingRewards(ctx, party)

	total := num.Sum(vaultAmount, stakingAmount)
	if total.IsZero() {
		return nil, ErrNothingToClaim
	}
	if err := e.collateral.Transfer(e.poolAccount, recipient, total); err != nil {
		restoreVaults()
		restoreStaking()
		return nil, err
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, recipient, total, events.RewardSourceCombined, false))
	return total, nil
}

// CompoundForStaking folds each listed stake's own pending reward back into
// that stake's principal. Every stake must belong to the party.
func (e *Engine) CompoundForStaking(ctx context.Context, party types.PartyID, stakeIDs []types.StakeID) (*num.Uint, error) {
	// authorisation first, draining is destructive
	for _, id := range stakeIDs {
		if err := e.checkOwner(party, id); err != nil {
			return nil, err
		}
	}
	total := num.UintZero()
	var (
		ids      []types.StakeID
		amounts  []*num.Uint
		restores []func()
	)
	undo := func() {
		for _, restore := range restores {
			restore()
		}
	}
	for _, id := range stakeIDs {
		amount, restore, err := e.rewards.DrainStakeReward(ctx, id)
		if err != nil {
			undo()
			return nil, err
		}
		if amount.IsZero() {
			continue
		}
		ids = append(ids, id)
		amounts = append(amounts, amount)
		restores = append(restores, restore)
		total.AddSum(amount)
	}
	if total.IsZero() {
		return nil, ErrNothingToClaim
	}
	// fund custody once, grow the stakes only once the transfer went through
	if err := e.collateral.Transfer(e.poolAccount, e.custody, total); err != nil {
		undo()
		return nil, err
	}
	for i, id := range ids {
		e.growStake(ctx, id, amounts[i])
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, party, total, events.RewardSourceStaking, true))
	return total, nil
}

// CompoundForUser folds all the party's staking rewards, across every stake
// they own, into a single target stake.
func (e *Engine) CompoundForUser(ctx context.Context, party types.PartyID, primaryStakeID types.StakeID) (*num.Uint, error) {
	if err := e.checkOwner(party, primaryStakeID); err != nil {
		return nil, err
	}
	amount, restore := e.rewards.DrainStakingRewards(ctx, party)
	if amount.IsZero() {
		return nil, ErrNothingToClaim
	}
	if err := e.compoundInto(ctx, primaryStakeID, amount); err != nil {
		restore()
		return nil, err
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, party, amount, events.RewardSourceStaking, true))
	return amount, nil
}

// CompoundWithVaultRewards folds the party's vault rewards on the given
// vaults plus all their staking rewards into the target stake, then
// refreshes the party's boosted balance on those vaults since their staking
// share just grew.
func (e *Engine) CompoundWithVaultRewards(ctx context.Context, party types.PartyID, vaults []types.VaultID, primaryStakeID types.StakeID) (*num.Uint, error) {
	if err := e.checkOwner(party, primaryStakeID); err != nil {
		return nil, err
	}
	if len(vaults) == 0 {
		vaults = e.rewards.VaultsWithPosition(party)
	}
	// settle every listed vault first, rejecting unknown ones before any
	// pending amount is drained
	for _, vault := range vaults {
		if err := e.rewards.CalculateVaultRewards(ctx, vault, party); err != nil {
			return nil, err
		}
	}

	vaultAmount, restoreVaults := e.rewards.DrainVaultRewards(ctx, party, vaults)
	stakingAmount, restoreStaking := e.rewards.DrainStakingRewards(ctx, party)

	total := num.Sum(vaultAmount, stakingAmount)
	if total.IsZero() {
		return nil, ErrNothingToClaim
	}
	if err := e.compoundInto(ctx, primaryStakeID, total); err != nil {
		restoreVaults()
		restoreStaking()
		return nil, err
	}
	for _, vault := range vaults {
		if err := e.rewards.CalculateVaultRewards(ctx, vault, party); err != nil {
			e.log.Panic("vault detached mid-compound",
				logging.String("vault", vault.String()), logging.Error(err))
		}
	}
	e.broker.Send(events.NewRewardPayout(ctx, party, party, total, events.RewardSourceCombined, true))
	return total, nil
}

// compoundInto funds custody with the drained amount and grows the stake.
// Only the transfer can fail, a drained reward never reaches a stake the
// ledger cannot grow.
func (e *Engine) compoundInto(ctx context.Context, stakeID types.StakeID, amount *num.Uint) error {
	if err := e.collateral.Transfer(e.poolAccount, e.custody, amount); err != nil {
		return err
	}
	e.growStake(ctx, stakeID, amount)
	return nil
}

// growStake folds an already-custodied amount into the stake. The stake was
// ownership-checked before anything was drained, so a failure here means the
// ledger and the facade disagree on what exists.
func (e *Engine) growStake(ctx context.Context, stakeID types.StakeID, amount *num.Uint) {
	if err := e.stakes.AddToStake(ctx, stakeID, amount); err != nil {
		e.log.Panic("reward drained for a stake the ledger cannot grow",
			logging.String("id", stakeID.String()), logging.Error(err))
	}
}

func (e *Engine) checkOwner(party types.PartyID, stakeID types.StakeID) error {
	owner, err := e.stakes.OwnerOf(stakeID)
	if err != nil {
		return err
	}
	if owner != party {
		return ErrNotTheOwner
	}
	return nil
}
