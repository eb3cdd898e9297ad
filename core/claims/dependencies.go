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

package claims

import (
	"context"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.solsticelabs.io/solstice/core/claims Broker,Rewards,StakeLedger,Collateral

// Broker is the event bus the facade publishes payout events to.
type Broker interface {
	Send(event events.Event)
}

// Rewards settles and drains pending rewards. Draining removes the pending
// amount without moving tokens, leaving the transfer to this facade so a
// combined claim is a single transfer. Every drain hands back a restore
// function crediting the amount back should that transfer fail.
type Rewards interface {
	DrainVaultRewards(ctx context.Context, party types.PartyID, vaults []types.VaultID) (*num.Uint, func())
	DrainStakingRewards(ctx context.Context, party types.PartyID) (*num.Uint, func())
	DrainStakeReward(ctx context.Context, stakeID types.StakeID) (*num.Uint, func(), error)
	CalculateVaultRewards(ctx context.Context, vault types.VaultID, party types.PartyID) error
	VaultsWithPosition(party types.PartyID) []types.VaultID
}

// StakeLedger is the staking engine surface compounding needs.
type StakeLedger interface {
	AddToStake(ctx context.Context, stakeID types.StakeID, amount *num.Uint) error
	OwnerOf(stakeID types.StakeID) (types.PartyID, error)
}

// Collateral moves claimed tokens out of the emission pool.
type Collateral interface {
	Transfer(from, to types.PartyID, amount *num.Uint) error
}
