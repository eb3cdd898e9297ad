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

package claims_test

import (
	"context"
	"testing"
	"time"

	"code.solsticelabs.io/solstice/core/claims"
	"code.solsticelabs.io/solstice/core/claims/mocks"
	"code.solsticelabs.io/solstice/core/collateral"
	"code.solsticelabs.io/solstice/core/emission"
	"code.solsticelabs.io/solstice/core/rewards"
	"code.solsticelabs.io/solstice/core/staking"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneUnit = 100000000

var (
	testStart  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testVault1 = types.VaultID("vault-1")
	// one hour of one pool's emission at rate 34255400000000/s, 50/50 split
	hourlyPool = num.MustUintFromString("61659720000000000")
)

type testClock struct {
	now time.Time
}

func (c *testClock) GetTimeNow() time.Time {
	return c.now
}

type stubVault struct {
	balances map[types.PartyID]*num.Uint
	total    *num.Uint
}

func newStubVault() *stubVault {
	return &stubVault{balances: map[types.PartyID]*num.Uint{}, total: num.UintZero()}
}

func (v *stubVault) BalanceOf(party types.PartyID) *num.Uint {
	b, ok := v.balances[party]
	if !ok {
		return num.UintZero()
	}
	return b.Clone()
}

func (v *stubVault) TotalBalance() *num.Uint {
	return v.total.Clone()
}

func (v *stubVault) deposit(party types.PartyID, amount *num.Uint) {
	b, ok := v.balances[party]
	if !ok {
		b = num.UintZero()
		v.balances[party] = b
	}
	b.AddSum(amount)
	v.total.AddSum(amount)
}

// testFacade wires the whole stack: emission, rewards, staking, collateral
// and the claims facade on top.
type testFacade struct {
	*claims.Engine
	ctrl    *gomock.Controller
	clock   *testClock
	col     *collateral.Engine
	rewards *rewards.Engine
	staking *staking.Engine
	vault   *stubVault
}

func getTestFacade(t *testing.T) *testFacade {
	t.Helper()
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()
	clock := &testClock{now: testStart}
	log := logging.NewTestLogger()

	em, err := emission.New(log, emission.NewDefaultConfig(), broker, clock,
		types.EmissionState{
			StartTime:      testStart,
			PeriodLength:   time.Duration(types.MonthSeconds) * time.Second,
			DecayFactorBps: 10000,
			InitialRate:    num.NewUint(34255400000000),
		},
		types.AllocationWeights{VaultBps: 5000, StakingBps: 5000},
	)
	require.NoError(t, err)
	require.NoError(t, em.RegisterVault(context.Background(), testVault1, 100))

	col := collateral.New(log, collateral.NewDefaultConfig())
	require.NoError(t, col.Deposit(collateral.EmissionPoolOwner, num.MustUintFromString("1000000000000000000000000")))
	require.NoError(t, col.Deposit("alice", num.NewUint(1000000)))
	require.NoError(t, col.Deposit("bob", num.NewUint(1000000)))

	rew := rewards.New(log, rewards.NewDefaultConfig(), broker, clock, em, col, collateral.EmissionPoolOwner)
	em.NotifyOnReconfigure(rew.FlushAll)
	vault := newStubVault()
	require.NoError(t, rew.AttachVault(testVault1, vault))

	stk := staking.New(log, staking.NewDefaultConfig(), broker, clock, col, rew,
		collateral.StakeCustodyOwner, collateral.EmissionPoolOwner)

	facade := claims.New(log, claims.NewDefaultConfig(), broker, rew, stk, col,
		collateral.EmissionPoolOwner, collateral.StakeCustodyOwner)

	return &testFacade{
		Engine:  facade,
		ctrl:    ctrl,
		clock:   clock,
		col:     col,
		rewards: rew,
		staking: stk,
		vault:   vault,
	}
}

func TestClaims(t *testing.T) {
	t.Run("claim all pays both pools in one transfer", testClaimAll)
	t.Run("compound folds a stake's reward into itself", testCompoundForStaking)
	t.Run("compound for user targets a single stake", testCompoundForUser)
	t.Run("compound with vault rewards refreshes the boost", testCompoundWithVaultRewards)
	t.Run("compounding someone else's stake is rejected", testCompoundAuthorisation)
	t.Run("failed payout leaves every pending amount claimable", testClaimAllFailedTransfer)
	t.Run("failed compound transfer leaves the stake untouched", testCompoundFailedTransfer)
}

func testClaimAll(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	_, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)
	f.vault.deposit("alice", num.NewUint(100*oneUnit))
	require.NoError(t, f.rewards.CalculateVaultRewards(ctx, testVault1, "alice"))

	f.clock.now = f.clock.now.Add(time.Hour)

	before := f.col.Balance("alice")
	want := num.UintZero().Mul(hourlyPool, num.NewUint(2)) // sole depositor and sole staker
	got, err := f.ClaimAll(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.True(t, want.EQ(got))
	assert.True(t, num.Sum(before, want).EQ(f.col.Balance("alice")))

	_, err = f.ClaimAll(ctx, "alice", "alice")
	require.ErrorIs(t, err, claims.ErrNothingToClaim)
}

func testCompoundForStaking(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	id, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 2)
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Hour)

	got, err := f.CompoundForStaking(ctx, "alice", []types.StakeID{id})
	require.NoError(t, err)
	assert.True(t, hourlyPool.EQ(got))

	// the reward went into the principal, working balance grew by reward * 2
	stake, err := f.staking.GetStake(id)
	require.NoError(t, err)
	assert.True(t, stake.Amount.EQ(num.Sum(num.NewUint(1000), hourlyPool)))
	wantWorking := num.UintZero().Mul(stake.Amount, num.NewUint(2))
	assert.True(t, wantWorking.EQ(f.staking.TotalWorkingSupply()))
	assert.True(t, f.col.Balance(collateral.StakeCustodyOwner).EQ(stake.Amount))

	_, err = f.CompoundForStaking(ctx, "alice", []types.StakeID{id})
	require.ErrorIs(t, err, claims.ErrNothingToClaim)
}

func testCompoundForUser(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	primary, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)
	other, err := f.staking.Stake(ctx, "alice", num.NewUint(3000), 3)
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Hour)

	// all staking rewards, across both stakes, land in the primary stake
	got, err := f.CompoundForUser(ctx, "alice", primary)
	require.NoError(t, err)
	assert.True(t, hourlyPool.EQ(got))

	stake, _ := f.staking.GetStake(primary)
	assert.True(t, stake.Amount.EQ(num.Sum(num.NewUint(1000), hourlyPool)))
	untouched, _ := f.staking.GetStake(other)
	assert.True(t, untouched.Amount.EQ(num.NewUint(3000)))
}

func testCompoundWithVaultRewards(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	id, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 2)
	require.NoError(t, err)
	f.vault.deposit("alice", num.NewUint(100*oneUnit))
	require.NoError(t, f.rewards.CalculateVaultRewards(ctx, testVault1, "alice"))

	f.clock.now = f.clock.now.Add(time.Hour)

	want := num.UintZero().Mul(hourlyPool, num.NewUint(2))
	got, err := f.CompoundWithVaultRewards(ctx, "alice", nil, id)
	require.NoError(t, err)
	assert.True(t, want.EQ(got))

	stake, _ := f.staking.GetStake(id)
	assert.True(t, stake.Amount.EQ(num.Sum(num.NewUint(1000), want)))

	// everything settled exactly once, nothing left pending anywhere
	assert.True(t, f.rewards.UnclaimedVaultRewards("alice", nil).IsZero())
	assert.True(t, f.rewards.UnclaimedStakingRewards([]types.StakeID{id}).IsZero())
}

func testClaimAllFailedTransfer(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	id, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 6)
	require.NoError(t, err)
	f.vault.deposit("alice", num.NewUint(100*oneUnit))
	require.NoError(t, f.rewards.CalculateVaultRewards(ctx, testVault1, "alice"))

	f.clock.now = f.clock.now.Add(time.Hour)

	// empty the emission pool so the payout cannot go through
	require.NoError(t, f.col.Withdraw(collateral.EmissionPoolOwner, f.col.Balance(collateral.EmissionPoolOwner)))

	before := f.col.Balance("alice")
	_, err = f.ClaimAll(ctx, "alice", "alice")
	require.ErrorIs(t, err, collateral.ErrInsufficientFunds)

	// both pools still owe exactly what they did before the failed claim
	assert.True(t, before.EQ(f.col.Balance("alice")))
	assert.True(t, hourlyPool.EQ(f.rewards.UnclaimedVaultRewards("alice", nil)))
	assert.True(t, hourlyPool.EQ(f.rewards.UnclaimedStakingRewards([]types.StakeID{id})))

	// refund the pool and the same claim succeeds
	want := num.UintZero().Mul(hourlyPool, num.NewUint(2))
	require.NoError(t, f.col.Deposit(collateral.EmissionPoolOwner, want))
	got, err := f.ClaimAll(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.True(t, want.EQ(got))
}

func testCompoundFailedTransfer(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	id, err := f.staking.Stake(ctx, "alice", num.NewUint(1000), 2)
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Hour)

	require.NoError(t, f.col.Withdraw(collateral.EmissionPoolOwner, f.col.Balance(collateral.EmissionPoolOwner)))

	_, err = f.CompoundForStaking(ctx, "alice", []types.StakeID{id})
	require.ErrorIs(t, err, collateral.ErrInsufficientFunds)

	// nothing compounded, the reward stays pending
	stake, err := f.staking.GetStake(id)
	require.NoError(t, err)
	assert.True(t, stake.Amount.EQ(num.NewUint(1000)))
	assert.True(t, hourlyPool.EQ(f.rewards.UnclaimedStakingRewards([]types.StakeID{id})))

	require.NoError(t, f.col.Deposit(collateral.EmissionPoolOwner, hourlyPool))
	got, err := f.CompoundForStaking(ctx, "alice", []types.StakeID{id})
	require.NoError(t, err)
	assert.True(t, hourlyPool.EQ(got))
	stake, _ = f.staking.GetStake(id)
	assert.True(t, stake.Amount.EQ(num.Sum(num.NewUint(1000), hourlyPool)))
}

func testCompoundAuthorisation(t *testing.T) {
	f := getTestFacade(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	id, err := f.staking.Stake(ctx, "bob", num.NewUint(1000), 2)
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Hour)

	_, err = f.CompoundForStaking(ctx, "alice", []types.StakeID{id})
	require.ErrorIs(t, err, claims.ErrNotTheOwner)
	_, err = f.CompoundForUser(ctx, "alice", id)
	require.ErrorIs(t, err, claims.ErrNotTheOwner)
	_, err = f.CompoundForUser(ctx, "alice", 99)
	require.ErrorIs(t, err, staking.ErrStakeDoesNotExist)
}
