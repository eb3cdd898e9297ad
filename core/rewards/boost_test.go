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

package rewards_test

import (
	"testing"

	"code.solsticelabs.io/solstice/core/rewards"
	"code.solsticelabs.io/solstice/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostCalculator(t *testing.T) {
	t.Run("rejects weights not summing to the cap", testBoostWeightValidation)
	t.Run("no stake means minimum boost", testBoostNoStake)
	t.Run("staking share raises the boost", testBoostWithStake)
	t.Run("boost never exceeds the cap", testBoostCap)
}

func testBoostWeightValidation(t *testing.T) {
	_, err := rewards.NewBoostCalculator(num.DecimalFromInt64(4), num.DecimalFromInt64(7))
	require.ErrorIs(t, err, rewards.ErrInvalidBoostWeights)

	_, err = rewards.NewBoostCalculator(num.DecimalFromInt64(-1), num.DecimalFromInt64(11))
	require.ErrorIs(t, err, rewards.ErrInvalidBoostWeights)

	c, err := rewards.NewBoostCalculator(rewards.DefaultBoostWeights())
	require.NoError(t, err)
	w1, w2 := c.Weights()
	assert.True(t, w1.Add(w2).Equal(rewards.BoostCap()))
}

func testBoostNoStake(t *testing.T) {
	c, _ := rewards.NewBoostCalculator(rewards.DefaultBoostWeights())

	// w1 * raw with an empty working supply
	b := c.Boosted(num.NewUint(100), num.UintZero(), num.UintZero(), num.NewUint(1000))
	assert.Equal(t, "400", b.String())
}

func testBoostWithStake(t *testing.T) {
	c, _ := rewards.NewBoostCalculator(rewards.DefaultBoostWeights())

	// 10% of the working supply, vault holds 1000 in total:
	// 4*100 + 6*0.1*1000 = 1000, cap also 1000
	b := c.Boosted(num.NewUint(100), num.NewUint(100), num.NewUint(1000), num.NewUint(1000))
	assert.Equal(t, "1000", b.String())

	// 5% share: 4*100 + 6*0.05*1000 = 700
	b = c.Boosted(num.NewUint(100), num.NewUint(50), num.NewUint(1000), num.NewUint(1000))
	assert.Equal(t, "700", b.String())
}

func testBoostCap(t *testing.T) {
	c, _ := rewards.NewBoostCalculator(rewards.DefaultBoostWeights())

	// a huge staking share cannot push the boost past cap * raw
	b := c.Boosted(num.NewUint(10), num.NewUint(900), num.NewUint(1000), num.NewUint(100000))
	assert.Equal(t, "100", b.String())

	// zero raw balance is never boosted
	b = c.Boosted(num.UintZero(), num.NewUint(900), num.NewUint(1000), num.NewUint(100000))
	assert.True(t, b.IsZero())
}
