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

package collateral_test

import (
	"testing"

	"code.solsticelabs.io/solstice/core/collateral"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice types.PartyID = "alice"
	bob   types.PartyID = "bob"
)

func getTestEngine(t *testing.T) *collateral.Engine {
	t.Helper()
	return collateral.New(logging.NewTestLogger(), collateral.NewDefaultConfig())
}

func TestCollateral(t *testing.T) {
	t.Run("deposit and balance", testDepositAndBalance)
	t.Run("withdraw", testWithdraw)
	t.Run("transfer", testTransfer)
	t.Run("invalid amounts are rejected", testInvalidAmounts)
}

func testDepositAndBalance(t *testing.T) {
	eng := getTestEngine(t)

	require.NoError(t, eng.Deposit(alice, num.NewUint(1000)))
	require.NoError(t, eng.Deposit(alice, num.NewUint(500)))

	assert.True(t, eng.Balance(alice).EQ(num.NewUint(1500)))
	assert.True(t, eng.Balance(bob).IsZero())

	// the returned balance is a clone, mutating it must not touch the ledger
	eng.Balance(alice).AddSum(num.NewUint(1))
	assert.True(t, eng.Balance(alice).EQ(num.NewUint(1500)))
}

func testWithdraw(t *testing.T) {
	eng := getTestEngine(t)

	require.NoError(t, eng.Deposit(alice, num.NewUint(1000)))

	require.NoError(t, eng.Withdraw(alice, num.NewUint(400)))
	assert.True(t, eng.Balance(alice).EQ(num.NewUint(600)))

	require.ErrorIs(t, eng.Withdraw(alice, num.NewUint(601)), collateral.ErrInsufficientFunds)
	require.ErrorIs(t, eng.Withdraw(bob, num.NewUint(1)), collateral.ErrAccountDoesNotExist)

	// the failed attempts left the balance untouched
	assert.True(t, eng.Balance(alice).EQ(num.NewUint(600)))
}

func testTransfer(t *testing.T) {
	eng := getTestEngine(t)

	require.NoError(t, eng.Deposit(alice, num.NewUint(1000)))

	require.NoError(t, eng.Transfer(alice, bob, num.NewUint(250)))
	assert.True(t, eng.Balance(alice).EQ(num.NewUint(750)))
	assert.True(t, eng.Balance(bob).EQ(num.NewUint(250)))

	require.ErrorIs(t, eng.Transfer(alice, bob, num.NewUint(751)), collateral.ErrInsufficientFunds)
	assert.True(t, eng.Balance(alice).EQ(num.NewUint(750)))
	assert.True(t, eng.Balance(bob).EQ(num.NewUint(250)))
}

func testInvalidAmounts(t *testing.T) {
	eng := getTestEngine(t)

	require.ErrorIs(t, eng.Deposit(alice, nil), collateral.ErrInvalidTransferAmount)
	require.ErrorIs(t, eng.Deposit(alice, num.UintZero()), collateral.ErrInvalidTransferAmount)
	require.ErrorIs(t, eng.Withdraw(alice, num.UintZero()), collateral.ErrInvalidTransferAmount)
	require.ErrorIs(t, eng.Transfer(alice, bob, num.UintZero()), collateral.ErrInvalidTransferAmount)
}
