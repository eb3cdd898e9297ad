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

package staking

import (
	"context"
	"time"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.solsticelabs.io/solstice/core/staking Broker,TimeService,Collateral,Rewards

// Broker is the event bus the engine publishes stake lifecycle events to.
type Broker interface {
	Send(event events.Event)
}

// TimeService gives the engine the current protocol time.
type TimeService interface {
	GetTimeNow() time.Time
}

// Collateral moves the staked principal in and out of custody.
type Collateral interface {
	Transfer(from, to types.PartyID, amount *num.Uint) error
}

// Rewards is the accrual engine. Every stake mutation notifies it so pending
// rewards settle under the pre-mutation working balance, and stake changes
// can force a boosted balance refresh on the owner's vaults.
type Rewards interface {
	OnStakeCreated(ctx context.Context, stake *types.Stake)
	OnStakeMutated(ctx context.Context, stake *types.Stake) error
	OnStakeTransferred(ctx context.Context, stakeID types.StakeID, from, to types.PartyID) error
	OnStakeBurned(ctx context.Context, stakeID types.StakeID) (*num.Uint, error)
	UnclaimedStakingRewards(stakeIDs []types.StakeID) *num.Uint
	CalculateVaultRewards(ctx context.Context, vault types.VaultID, party types.PartyID) error
	VaultAttached(vault types.VaultID) bool
}
