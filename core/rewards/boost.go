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
	"errors"

	"code.solsticelabs.io/solstice/libs/num"
)

var ErrInvalidBoostWeights = errors.New("boost weights must be non-negative and sum to the cap")

// boostCap caps a boosted balance at this multiple of the raw balance.
var boostCap = num.DecimalFromInt64(10)

// BoostCap returns the fixed boost multiplier cap.
func BoostCap() num.Decimal {
	return boostCap
}

// DefaultBoostWeights returns the reference weights: 40% of the cap on the
// raw balance, 60% on the staking share.
func DefaultBoostWeights() (w1, w2 num.Decimal) {
	return num.DecimalFromInt64(4), num.DecimalFromInt64(6)
}

// BoostCalculator blends a depositor's raw vault balance with their share of
// the staking working supply into a capped boosted balance.
type BoostCalculator struct {
	w1 num.Decimal
	w2 num.Decimal
}

// NewBoostCalculator builds a calculator from the two governance weights,
// which must be non-negative and sum to the cap.
func NewBoostCalculator(w1, w2 num.Decimal) (*BoostCalculator, error) {
	if w1.IsNegative() || w2.IsNegative() || !w1.Add(w2).Equal(boostCap) {
		return nil, ErrInvalidBoostWeights
	}
	return &BoostCalculator{w1: w1, w2: w2}, nil
}

// Weights returns the current weights.
func (c *BoostCalculator) Weights() (w1, w2 num.Decimal) {
	return c.w1, c.w2
}

// Boosted computes
//
//	min(w1*raw + w2*(userWorking/totalWorking)*totalVaultBalance, cap*raw)
//
// floored to a whole token unit. A zero working supply drops the staking
// term entirely.
func (c *BoostCalculator) Boosted(raw, userWorking, totalWorking, totalVaultBalance *num.Uint) *num.Uint {
	rawD := num.DecimalFromUint(raw)
	boosted := c.w1.Mul(rawD)
	if totalWorking != nil && !totalWorking.IsZero() {
		share := num.DecimalFromUint(userWorking).Div(num.DecimalFromUint(totalWorking))
		boosted = boosted.Add(c.w2.Mul(share).Mul(num.DecimalFromUint(totalVaultBalance)))
	}
	if capped := boostCap.Mul(rawD); boosted.GreaterThan(capped) {
		boosted = capped
	}
	b, _ := num.UintFromDecimal(boosted.Floor())
	return b
}
