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

	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
)

type StakeCreated struct {
	*Base
	stake *types.Stake
}

func NewStakeCreated(ctx context.Context, stake *types.Stake) *StakeCreated {
	return &StakeCreated{
		Base:  newBase(ctx, StakeCreatedEvent),
		stake: stake.Clone(),
	}
}

func (s StakeCreated) Stake() *types.Stake {
	return s.stake.Clone()
}

func (s StakeCreated) PartyID() string {
	return s.stake.Owner.String()
}

type StakeExtended struct {
	*Base
	stake       *types.Stake
	addedAmount *num.Uint
	addedMonths uint16
}

func NewStakeExtended(ctx context.Context, stake *types.Stake, addedAmount *num.Uint, addedMonths uint16) *StakeExtended {
	return &StakeExtended{
		Base:        newBase(ctx, StakeExtendedEvent),
		stake:       stake.Clone(),
		addedAmount: addedAmount.Clone(),
		addedMonths: addedMonths,
	}
}

func (s StakeExtended) Stake() *types.Stake {
	return s.stake.Clone()
}

func (s StakeExtended) AddedAmount() *num.Uint {
	return s.addedAmount.Clone()
}

func (s StakeExtended) AddedMonths() uint16 {
	return s.addedMonths
}

type StakeTransferred struct {
	*Base
	stakeID types.StakeID
	from    types.PartyID
	to      types.PartyID
}

func NewStakeTransferred(ctx context.Context, stakeID types.StakeID, from, to types.PartyID) *StakeTransferred {
	return &StakeTransferred{
		Base:    newBase(ctx, StakeTransferredEvent),
		stakeID: stakeID,
		from:    from,
		to:      to,
	}
}

func (s StakeTransferred) StakeID() types.StakeID {
	return s.stakeID
}

func (s StakeTransferred) From() types.PartyID {
	return s.from
}

func (s StakeTransferred) To() types.PartyID {
	return s.to
}

type StakeBurned struct {
	*Base
	stakeID   types.StakeID
	owner     types.PartyID
	principal *num.Uint
	rewards   *num.Uint
}

func NewStakeBurned(ctx context.Context, stakeID types.StakeID, owner types.PartyID, principal, rewards *num.Uint) *StakeBurned {
	return &StakeBurned{
		Base:      newBase(ctx, StakeBurnedEvent),
		stakeID:   stakeID,
		owner:     owner,
		principal: principal.Clone(),
		rewards:   rewards.Clone(),
	}
}

func (s StakeBurned) StakeID() types.StakeID {
	return s.stakeID
}

func (s StakeBurned) Owner() types.PartyID {
	return s.owner
}

func (s StakeBurned) Principal() *num.Uint {
	return s.principal.Clone()
}

func (s StakeBurned) Rewards() *num.Uint {
	return s.rewards.Clone()
}
