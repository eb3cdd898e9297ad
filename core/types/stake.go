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

package types

import (
	"strconv"
	"time"

	"code.solsticelabs.io/solstice/libs/num"
)

// PartyID identifies a depositor or staker.
type PartyID string

// VaultID identifies a registered vault.
type VaultID string

// StakeID identifies a stake position. Ids are minted sequentially by the
// staking engine and never reused, multi-token style.
type StakeID uint64

func (p PartyID) String() string {
	return string(p)
}

func (v VaultID) String() string {
	return string(v)
}

func (s StakeID) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Lock period bounds for a stake, in months.
const (
	MinLockPeriodMonths uint16 = 1
	MaxLockPeriodMonths uint16 = 60
)

// Stake is a locked position in the protocol token. Its weight in the
// staking reward pool is the working balance, amount times lock period.
type Stake struct {
	ID               StakeID
	Owner            PartyID
	Amount           *num.Uint
	LockPeriodMonths uint16
	CreatedAt        time.Time
	UnlocksAt        time.Time
}

// WorkingBalance returns amount * lockPeriodMonths, the stake's share weight
// in the staking reward pool.
func (s *Stake) WorkingBalance() *num.Uint {
	return num.UintZero().Mul(s.Amount, num.NewUint(uint64(s.LockPeriodMonths)))
}

func (s *Stake) Clone() *Stake {
	cpy := *s
	cpy.Amount = s.Amount.Clone()
	return &cpy
}
