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

package num_test

import (
	"math/big"
	"testing"

	"code.solsticelabs.io/solstice/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintFromString(t *testing.T) {
	u, overflow := num.UintFromString("123456789012345678901234567890")
	require.False(t, overflow)
	assert.Equal(t, "123456789012345678901234567890", u.String())

	_, overflow = num.UintFromString("not a number")
	assert.True(t, overflow)

	_, overflow = num.UintFromString("-1")
	assert.True(t, overflow)

	// 2^256 does not fit
	over := new(big.Int).Lsh(big.NewInt(1), 256)
	_, overflow = num.UintFromString(over.String())
	assert.True(t, overflow)
}

func TestUintFromDecimal(t *testing.T) {
	// the fractional part is truncated, not rounded
	u, overflow := num.UintFromDecimal(num.MustDecimalFromString("123.99"))
	require.False(t, overflow)
	assert.True(t, u.EQ(num.NewUint(123)))

	_, overflow = num.UintFromDecimal(num.DecimalFromInt64(-1))
	assert.True(t, overflow)
}

func TestUintClone(t *testing.T) {
	u := num.NewUint(100)
	c := u.Clone()
	c.AddSum(num.NewUint(1))

	assert.True(t, u.EQ(num.NewUint(100)))
	assert.True(t, c.EQ(num.NewUint(101)))

	// a nil Uint clones to zero
	var n *num.Uint
	assert.True(t, n.Clone().IsZero())
}

func TestUintArithmetic(t *testing.T) {
	x, y := num.NewUint(30), num.NewUint(12)

	assert.True(t, num.UintZero().Add(x, y).EQ(num.NewUint(42)))
	assert.True(t, num.UintZero().Sub(x, y).EQ(num.NewUint(18)))
	assert.True(t, num.UintZero().Mul(x, y).EQ(num.NewUint(360)))
	assert.True(t, num.UintZero().Div(x, y).EQ(num.NewUint(2)))

	assert.True(t, num.Sum(x, y, num.NewUint(8)).EQ(num.NewUint(50)))
	// the inputs are left untouched
	assert.True(t, x.EQ(num.NewUint(30)))
	assert.True(t, y.EQ(num.NewUint(12)))
}

func TestUintCompare(t *testing.T) {
	lo, hi := num.NewUint(1), num.NewUint(2)

	assert.True(t, lo.LT(hi))
	assert.True(t, lo.LTE(lo.Clone()))
	assert.True(t, hi.GT(lo))
	assert.True(t, hi.GTE(hi.Clone()))
	assert.True(t, lo.NEQ(hi))

	assert.True(t, num.Min(lo, hi).EQ(lo))
	assert.True(t, num.Max(lo, hi).EQ(hi))
}

func TestUintToString(t *testing.T) {
	assert.Equal(t, "0", num.UintToString(nil))
	assert.Equal(t, "42", num.UintToString(num.NewUint(42)))
}
