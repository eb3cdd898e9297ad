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

package staking_test

import (
	"context"
	"testing"
	"time"

	"code.solsticelabs.io/solstice/core/collateral"
	"code.solsticelabs.io/solstice/core/staking"
	"code.solsticelabs.io/solstice/core/staking/mocks"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) GetTimeNow() time.Time {
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *testClock) advanceMonths(months int64) {
	c.now = c.now.Add(time.Duration(months*types.MonthSeconds) * time.Second)
}

type testEngine struct {
	*staking.Engine
	ctrl    *gomock.Controller
	clock   *testClock
	col     *collateral.Engine
	rewards *mocks.MockRewards
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	rew := mocks.NewMockRewards(ctrl)
	rew.EXPECT().OnStakeCreated(gomock.Any(), gomock.Any()).AnyTimes()
	rew.EXPECT().OnStakeMutated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	rew.EXPECT().OnStakeTransferred(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	clock := &testClock{now: testStart}
	log := logging.NewTestLogger()

	col := collateral.New(log, collateral.NewDefaultConfig())
	require.NoError(t, col.Deposit("alice", num.NewUint(10000)))
	require.NoError(t, col.Deposit("bob", num.NewUint(5000)))
	require.NoError(t, col.Deposit(collateral.EmissionPoolOwner, num.NewUint(1000000)))

	eng := staking.New(log, staking.NewDefaultConfig(), broker, clock, col, rew,
		collateral.StakeCustodyOwner, collateral.EmissionPoolOwner)

	return &testEngine{
		Engine:  eng,
		ctrl:    ctrl,
		clock:   clock,
		col:     col,
		rewards: rew,
	}
}

func TestStaking(t *testing.T) {
	t.Run("stake validation", testStakeValidation)
	t.Run("staking moves principal into custody", testStakeCustody)
	t.Run("extend recomputes the working balance", testExtendStake)
	t.Run("extend authorisation and bounds", testExtendStakeErrors)
	t.Run("extend refreshes boosts on the given vaults", testExtendStakeBoostVaults)
	t.Run("extend rejects unattached boost vaults untouched", testExtendStakeUnknownBoostVault)
	t.Run("unstake pays principal and rewards atomically", testUnstake)
	t.Run("unstake all burns only unlocked stakes", testUnstakeAll)
	t.Run("failed unstake payout leaves the stake intact", testUnstakeFailedPayout)
	t.Run("transfer needs owner or approved operator", testTransferStake)
	t.Run("transfer batch is all or nothing", testTransferStakeBatchValidation)
	t.Run("compounding adds working balance linearly", testAddToStake)
}

func testStakeValidation(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	_, err := eng.Stake(ctx, "alice", num.UintZero(), 6)
	require.ErrorIs(t, err, staking.ErrInvalidStakeAmount)
	_, err = eng.Stake(ctx, "alice", num.NewUint(100), 0)
	require.ErrorIs(t, err, staking.ErrInvalidLockPeriod)
	_, err = eng.Stake(ctx, "alice", num.NewUint(100), 61)
	require.ErrorIs(t, err, staking.ErrInvalidLockPeriod)

	// more than alice holds
	_, err = eng.Stake(ctx, "alice", num.NewUint(20000), 6)
	require.ErrorIs(t, err, collateral.ErrInsufficientFunds)
	assert.True(t, eng.TotalWorkingSupply().IsZero())
}

func testStakeCustody(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)

	assert.True(t, eng.col.Balance("alice").EQ(num.NewUint(9000)))
	assert.True(t, eng.col.Balance(collateral.StakeCustodyOwner).EQ(num.NewUint(1000)))
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(6000)))
	assert.Equal(t, []types.StakeID{id}, eng.StakesOwnedBy("alice"))

	owner, err := eng.OwnerOf(id)
	require.NoError(t, err)
	assert.Equal(t, types.PartyID("alice"), owner)

	stake, err := eng.GetStake(id)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(time.Duration(6*types.MonthSeconds)*time.Second), stake.UnlocksAt)
}

func testExtendStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 5)
	require.NoError(t, err)
	other, err := eng.Stake(ctx, "bob", num.NewUint(2000), 2)
	require.NoError(t, err)

	// (1000, 5) + one month: working balance 5000 -> 6000
	require.NoError(t, eng.ExtendStake(ctx, "alice", id, 1, nil, nil))

	w, err := eng.StakeWorkingBalance(id)
	require.NoError(t, err)
	assert.True(t, w.EQ(num.NewUint(6000)))
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(10000)))

	// bob's stake is untouched
	w, err = eng.StakeWorkingBalance(other)
	require.NoError(t, err)
	assert.True(t, w.EQ(num.NewUint(4000)))

	// adding amount moves more principal into custody
	require.NoError(t, eng.ExtendStake(ctx, "alice", id, 0, num.NewUint(500), nil))
	assert.True(t, eng.col.Balance(collateral.StakeCustodyOwner).EQ(num.NewUint(3500)))
	w, _ = eng.StakeWorkingBalance(id)
	assert.True(t, w.EQ(num.NewUint(9000)))
}

func testExtendStakeErrors(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 59)
	require.NoError(t, err)

	require.ErrorIs(t, eng.ExtendStake(ctx, "bob", id, 1, nil, nil), staking.ErrNotTheOwner)
	require.ErrorIs(t, eng.ExtendStake(ctx, "alice", 99, 1, nil, nil), staking.ErrStakeDoesNotExist)
	require.ErrorIs(t, eng.ExtendStake(ctx, "alice", id, 0, nil, nil), staking.ErrNothingToExtend)
	require.ErrorIs(t, eng.ExtendStake(ctx, "alice", id, 2, nil, nil), staking.ErrInvalidLockPeriod)
	require.ErrorIs(t, eng.ExtendStake(ctx, "alice", id, 1, num.NewUint(50000), nil), collateral.ErrInsufficientFunds)
}

func testExtendStakeBoostVaults(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 5)
	require.NoError(t, err)

	eng.rewards.EXPECT().VaultAttached(types.VaultID("vault-1")).Return(true).Times(1)
	eng.rewards.EXPECT().VaultAttached(types.VaultID("vault-2")).Return(true).Times(1)
	eng.rewards.EXPECT().CalculateVaultRewards(gomock.Any(), types.VaultID("vault-1"), types.PartyID("alice")).Return(nil).Times(1)
	eng.rewards.EXPECT().CalculateVaultRewards(gomock.Any(), types.VaultID("vault-2"), types.PartyID("alice")).Return(nil).Times(1)
	require.NoError(t, eng.ExtendStake(ctx, "alice", id, 1, nil, []types.VaultID{"vault-1", "vault-2"}))
}

func testExtendStakeUnknownBoostVault(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 5)
	require.NoError(t, err)

	eng.rewards.EXPECT().VaultAttached(types.VaultID("ghost")).Return(false).Times(1)
	err = eng.ExtendStake(ctx, "alice", id, 1, num.NewUint(100), []types.VaultID{"ghost"})
	require.ErrorIs(t, err, staking.ErrUnknownBoostVault)

	// nothing moved: amount, lock period and custody are unchanged
	stake, err := eng.GetStake(id)
	require.NoError(t, err)
	assert.True(t, stake.Amount.EQ(num.NewUint(1000)))
	assert.Equal(t, uint16(5), stake.LockPeriodMonths)
	assert.True(t, eng.col.Balance(collateral.StakeCustodyOwner).EQ(num.NewUint(1000)))
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(5000)))
}

func testUnstake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 3)
	require.NoError(t, err)

	_, _, err = eng.UnstakeSingle(ctx, "bob", id)
	require.ErrorIs(t, err, staking.ErrNotTheOwner)
	_, _, err = eng.UnstakeSingle(ctx, "alice", id)
	require.ErrorIs(t, err, staking.ErrStakeStillLocked)

	eng.clock.advanceMonths(3)
	eng.rewards.EXPECT().UnclaimedStakingRewards([]types.StakeID{id}).Return(num.NewUint(500)).Times(1)
	eng.rewards.EXPECT().OnStakeBurned(gomock.Any(), id).Return(num.NewUint(500), nil).Times(1)

	principal, rewards, err := eng.UnstakeSingle(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, principal.EQ(num.NewUint(1000)))
	assert.True(t, rewards.EQ(num.NewUint(500)))
	assert.True(t, eng.col.Balance("alice").EQ(num.NewUint(10500)))
	assert.True(t, eng.col.Balance(collateral.StakeCustodyOwner).IsZero())
	assert.True(t, eng.TotalWorkingSupply().IsZero())

	_, _, err = eng.UnstakeSingle(ctx, "alice", id)
	require.ErrorIs(t, err, staking.ErrStakeDoesNotExist)
}

func testUnstakeAll(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	short, err := eng.Stake(ctx, "alice", num.NewUint(1000), 1)
	require.NoError(t, err)
	_, err = eng.Stake(ctx, "alice", num.NewUint(2000), 12)
	require.NoError(t, err)

	_, _, err = eng.UnstakeAll(ctx, "alice")
	require.ErrorIs(t, err, staking.ErrNothingToUnstake)

	eng.clock.advanceMonths(1)
	eng.rewards.EXPECT().UnclaimedStakingRewards([]types.StakeID{short}).Return(num.UintZero()).Times(1)
	eng.rewards.EXPECT().OnStakeBurned(gomock.Any(), short).Return(num.UintZero(), nil).Times(1)

	principal, rewards, err := eng.UnstakeAll(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, principal.EQ(num.NewUint(1000)))
	assert.True(t, rewards.IsZero())

	// the 12 month stake is still live
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(24000)))
}

func testUnstakeFailedPayout(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 1)
	require.NoError(t, err)
	eng.clock.advanceMonths(1)

	// the reward pool cannot cover the payout
	require.NoError(t, eng.col.Withdraw(collateral.EmissionPoolOwner, eng.col.Balance(collateral.EmissionPoolOwner)))
	eng.rewards.EXPECT().UnclaimedStakingRewards([]types.StakeID{id}).Return(num.NewUint(500)).Times(1)

	_, _, err = eng.UnstakeSingle(ctx, "alice", id)
	require.ErrorIs(t, err, collateral.ErrInsufficientFunds)

	// the stake survives untouched, its principal back in custody
	assert.True(t, eng.col.Balance(collateral.StakeCustodyOwner).EQ(num.NewUint(1000)))
	assert.True(t, eng.col.Balance("alice").EQ(num.NewUint(9000)))
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(1000)))
	owner, err := eng.OwnerOf(id)
	require.NoError(t, err)
	assert.Equal(t, types.PartyID("alice"), owner)

	// fund the pool and the same unstake goes through
	require.NoError(t, eng.col.Deposit(collateral.EmissionPoolOwner, num.NewUint(500)))
	eng.rewards.EXPECT().UnclaimedStakingRewards([]types.StakeID{id}).Return(num.NewUint(500)).Times(1)
	eng.rewards.EXPECT().OnStakeBurned(gomock.Any(), id).Return(num.NewUint(500), nil).Times(1)

	principal, rewards, err := eng.UnstakeSingle(ctx, "alice", id)
	require.NoError(t, err)
	assert.True(t, principal.EQ(num.NewUint(1000)))
	assert.True(t, rewards.EQ(num.NewUint(500)))
}

func testTransferStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)

	require.ErrorIs(t, eng.TransferStake(ctx, "bob", id, "bob"), staking.ErrNotAuthorised)

	require.NoError(t, eng.TransferStake(ctx, "alice", id, "bob"))
	owner, _ := eng.OwnerOf(id)
	assert.Equal(t, types.PartyID("bob"), owner)
	assert.Empty(t, eng.StakesOwnedBy("alice"))

	// bob approves alice as operator, alice moves it back
	eng.SetApprovalForAll("bob", "alice", true)
	assert.True(t, eng.IsApprovedForAll("bob", "alice"))
	require.NoError(t, eng.TransferStakeBatch(ctx, "alice", []types.StakeID{id}, "alice"))

	eng.SetApprovalForAll("bob", "alice", false)
	assert.False(t, eng.IsApprovedForAll("bob", "alice"))
}

func testTransferStakeBatchValidation(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	first, err := eng.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)
	second, err := eng.Stake(ctx, "bob", num.NewUint(1000), 6)
	require.NoError(t, err)

	// bob's stake fails authorisation, so alice's own stake must not move
	err = eng.TransferStakeBatch(ctx, "alice", []types.StakeID{first, second}, "carol")
	require.ErrorIs(t, err, staking.ErrNotAuthorised)
	owner, _ := eng.OwnerOf(first)
	assert.Equal(t, types.PartyID("alice"), owner)

	err = eng.TransferStakeBatch(ctx, "alice", []types.StakeID{first, 99}, "carol")
	require.ErrorIs(t, err, staking.ErrStakeDoesNotExist)
	err = eng.TransferStakeBatch(ctx, "alice", []types.StakeID{first, first}, "carol")
	require.ErrorIs(t, err, staking.ErrDuplicateStake)

	owner, _ = eng.OwnerOf(first)
	assert.Equal(t, types.PartyID("alice"), owner)
	assert.Equal(t, []types.StakeID{first}, eng.StakesOwnedBy("alice"))
}

func testAddToStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	id, err := eng.Stake(ctx, "alice", num.NewUint(1000), 2)
	require.NoError(t, err)

	// compounding 300 into a 2 month lock adds 600 working units
	require.NoError(t, eng.AddToStake(ctx, id, num.NewUint(300)))
	w, err := eng.StakeWorkingBalance(id)
	require.NoError(t, err)
	assert.True(t, w.EQ(num.NewUint(2600)))
	assert.True(t, eng.TotalWorkingSupply().EQ(num.NewUint(2600)))

	require.ErrorIs(t, eng.AddToStake(ctx, 99, num.NewUint(1)), staking.ErrStakeDoesNotExist)
	require.ErrorIs(t, eng.AddToStake(ctx, id, num.UintZero()), staking.ErrInvalidStakeAmount)
}
