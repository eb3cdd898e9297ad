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

// RewardSource says which pool a payout was drawn from.
type RewardSource string

const (
	RewardSourceVaults   RewardSource = "vaults"
	RewardSourceStaking  RewardSource = "staking"
	RewardSourceCombined RewardSource = "combined"
)

type RewardPayout struct {
	*Base
	party     types.PartyID
	recipient types.PartyID
	amount    *num.Uint
	source    RewardSource
	// compounded is true when the payout was folded into a stake rather
	// than transferred out.
	compounded bool
}

func NewRewardPayout(ctx context.Context, party, recipient types.PartyID, amount *num.Uint, source RewardSource, compounded bool) *RewardPayout {
	return &RewardPayout{
		Base:       newBase(ctx, RewardPayoutEvent),
		party:      party,
		recipient:  recipient,
		amount:     amount.Clone(),
		source:     source,
		compounded: compounded,
	}
}

func (r RewardPayout) Party() types.PartyID {
	return r.party
}

func (r RewardPayout) Recipient() types.PartyID {
	return r.recipient
}

func (r RewardPayout) Amount() *num.Uint {
	return r.amount.Clone()
}

func (r RewardPayout) Source() RewardSource {
	return r.source
}

func (r RewardPayout) Compounded() bool {
	return r.compounded
}

type BoostRecalculated struct {
	*Base
	vault   types.VaultID
	party   types.PartyID
	boosted *num.Uint
}

func NewBoostRecalculated(ctx context.Context, vault types.VaultID, party types.PartyID, boosted *num.Uint) *BoostRecalculated {
	return &BoostRecalculated{
		Base:    newBase(ctx, BoostRecalculatedEvent),
		vault:   vault,
		party:   party,
		boosted: boosted.Clone(),
	}
}

func (b BoostRecalculated) Vault() types.VaultID {
	return b.vault
}

func (b BoostRecalculated) Party() types.PartyID {
	return b.party
}

func (b BoostRecalculated) BoostedBalance() *num.Uint {
	return b.boosted.Clone()
}
