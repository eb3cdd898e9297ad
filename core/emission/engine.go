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

// Package emission owns the global emission configuration: the decaying
// rate schedule, the vault/staking allocation split and the per-vault
// weights. Every change to any of these goes through this engine, which
// notifies registered listeners before applying the change so accrual
// state downstream can be settled under the old configuration first.
package emission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"code.solsticelabs.io/solstice/core/events"
	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"

	"golang.org/x/exp/slices"
)

var (
	ErrVaultAlreadyRegistered = errors.New("vault already registered")
	ErrVaultNotRegistered     = errors.New("vault not registered")
	ErrInvalidVaultWeight     = errors.New("vault weight must be positive")
)

// Engine is the emission engine.
type Engine struct {
	log *logging.Logger
	cfg Config

	broker      Broker
	timeService TimeService

	mu           sync.RWMutex
	schedule     *Schedule
	allocation   types.AllocationWeights
	vaultWeights map[types.VaultID]uint16
	weightSum    uint64

	listeners []func(context.Context, time.Time)
}

// New instantiates the emission engine with the given schedule and
// allocation split.
func New(
	log *logging.Logger,
	cfg Config,
	broker Broker,
	timeService TimeService,
	state types.EmissionState,
	allocation types.AllocationWeights,
) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	schedule, err := NewSchedule(state)
	if err != nil {
		return nil, err
	}
	if err := allocation.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		log:          log,
		cfg:          cfg,
		broker:       broker,
		timeService:  timeService,
		schedule:     schedule,
		allocation:   allocation,
		vaultWeights: map[types.VaultID]uint16{},
	}, nil
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.SetLevel(cfg.Level.Get())
	e.cfg = cfg
}

// NotifyOnReconfigure registers callbacks invoked right before any emission
// configuration change is applied. Listeners see the configuration as it was
// and are expected to settle any time-dependent state up to the given time.
func (e *Engine) NotifyOnReconfigure(callbacks ...func(context.Context, time.Time)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, callbacks...)
	e.mu.Unlock()
}

// flushListeners runs every registered listener with the current time and
// returns that time. Called without holding the engine lock, listeners read
// back through the engine's public accessors.
func (e *Engine) flushListeners(ctx context.Context) time.Time {
	now := e.timeService.GetTimeNow()
	e.mu.RLock()
	listeners := make([]func(context.Context, time.Time), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, f := range listeners {
		f(ctx, now)
	}
	return now
}

// UpdateSchedule replaces the emission schedule. Accrual up to now is
// settled under the old schedule before the new one takes effect.
func (e *Engine) UpdateSchedule(ctx context.Context, state types.EmissionState) error {
	schedule, err := NewSchedule(state)
	if err != nil {
		return err
	}

	e.flushListeners(ctx)

	e.mu.Lock()
	e.schedule = schedule
	e.mu.Unlock()

	e.log.Info("emission schedule updated",
		logging.String("initial-rate", state.InitialRate.String()),
		logging.Uint16("decay-factor-bps", state.DecayFactorBps),
		logging.Duration("period-length", state.PeriodLength),
	)
	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeSchedule,
		fmt.Sprintf("initial rate %s, decay %d bps", state.InitialRate.String(), state.DecayFactorBps)))
	return nil
}

// UpdateAllocationWeights replaces the vault/staking split. Accrual up to
// now is settled under the old split before the new one takes effect.
func (e *Engine) UpdateAllocationWeights(ctx context.Context, allocation types.AllocationWeights) error {
	if err := allocation.Validate(); err != nil {
		return err
	}

	e.flushListeners(ctx)

	e.mu.Lock()
	e.allocation = allocation
	e.mu.Unlock()

	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeAllocation,
		fmt.Sprintf("vault %d bps, staking %d bps", allocation.VaultBps, allocation.StakingBps)))
	return nil
}

// RegisterVault adds a vault to the emission weight registry. Existing vault
// pools are settled first since their share of the vault allocation shrinks.
func (e *Engine) RegisterVault(ctx context.Context, vault types.VaultID, weightBps uint16) error {
	if weightBps == 0 {
		return ErrInvalidVaultWeight
	}
	e.mu.RLock()
	_, ok := e.vaultWeights[vault]
	e.mu.RUnlock()
	if ok {
		return ErrVaultAlreadyRegistered
	}

	e.flushListeners(ctx)

	e.mu.Lock()
	e.vaultWeights[vault] = weightBps
	e.weightSum += uint64(weightBps)
	e.mu.Unlock()

	e.log.Info("vault registered",
		logging.String("vault", vault.String()),
		logging.Uint16("weight-bps", weightBps),
	)
	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeVaultWeight,
		fmt.Sprintf("vault %s registered with weight %d bps", vault, weightBps)))
	return nil
}

// UpdateVaultWeight changes the weight of a registered vault.
func (e *Engine) UpdateVaultWeight(ctx context.Context, vault types.VaultID, weightBps uint16) error {
	if weightBps == 0 {
		return ErrInvalidVaultWeight
	}
	e.mu.RLock()
	old, ok := e.vaultWeights[vault]
	e.mu.RUnlock()
	if !ok {
		return ErrVaultNotRegistered
	}
	if old == weightBps {
		return nil
	}

	e.flushListeners(ctx)

	e.mu.Lock()
	e.weightSum -= uint64(e.vaultWeights[vault])
	e.vaultWeights[vault] = weightBps
	e.weightSum += uint64(weightBps)
	e.mu.Unlock()

	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeVaultWeight,
		fmt.Sprintf("vault %s weight %d bps", vault, weightBps)))
	return nil
}

// RemoveVault drops a vault from the weight registry. The vault's pool keeps
// whatever was accrued up to now, it just stops earning.
func (e *Engine) RemoveVault(ctx context.Context, vault types.VaultID) error {
	e.mu.RLock()
	_, ok := e.vaultWeights[vault]
	e.mu.RUnlock()
	if !ok {
		return ErrVaultNotRegistered
	}

	e.flushListeners(ctx)

	e.mu.Lock()
	e.weightSum -= uint64(e.vaultWeights[vault])
	delete(e.vaultWeights, vault)
	e.mu.Unlock()

	e.broker.Send(events.NewEmissionReconfigured(ctx, events.EmissionChangeVaultWeight,
		fmt.Sprintf("vault %s removed", vault)))
	return nil
}

// Schedule returns the active schedule configuration.
func (e *Engine) Schedule() types.EmissionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.State()
}

// Allocation returns the active vault/staking split.
func (e *Engine) Allocation() types.AllocationWeights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.allocation
}

// Vaults returns the registered vault ids in lexical order.
func (e *Engine) Vaults() []types.VaultID {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]types.VaultID, 0, len(e.vaultWeights))
	for v := range e.vaultWeights {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// VaultWeight returns the weight of a vault and whether it is registered.
func (e *Engine) VaultWeight(vault types.VaultID) (uint16, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	w, ok := e.vaultWeights[vault]
	return w, ok
}

// RateAt returns the instantaneous global emission rate at the given time.
func (e *Engine) RateAt(t time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.RateAt(t)
}

// EmittedBetween returns the total tokens emitted over [t0, t1].
func (e *Engine) EmittedBetween(t0, t1 time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.EmittedBetween(t0, t1)
}

// StakingRateAt returns the staking pool's share of the rate at t.
func (e *Engine) StakingRateAt(t time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.RateAt(t).Mul(e.allocation.StakingFraction())
}

// StakingEmittedBetween returns the staking pool's share of the emission
// over [t0, t1].
func (e *Engine) StakingEmittedBetween(t0, t1 time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.EmittedBetween(t0, t1).Mul(e.allocation.StakingFraction())
}

// VaultRateAt returns the given vault's share of the rate at t, zero when
// the vault is not registered.
func (e *Engine) VaultRateAt(vault types.VaultID, t time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.RateAt(t).Mul(e.allocation.VaultFraction()).Mul(e.vaultShareLocked(vault))
}

// VaultEmittedBetween returns the given vault's share of the emission over
// [t0, t1], zero when the vault is not registered.
func (e *Engine) VaultEmittedBetween(vault types.VaultID, t0, t1 time.Time) num.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule.EmittedBetween(t0, t1).Mul(e.allocation.VaultFraction()).Mul(e.vaultShareLocked(vault))
}

// vaultShareLocked returns weight_v / sum(weights) as a decimal fraction.
func (e *Engine) vaultShareLocked(vault types.VaultID) num.Decimal {
	w, ok := e.vaultWeights[vault]
	if !ok || e.weightSum == 0 {
		return num.DecimalZero()
	}
	return num.DecimalFromInt64(int64(w)).Div(num.DecimalFromInt64(int64(e.weightSum)))
}
