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
	"errors"
	"time"

	"code.solsticelabs.io/solstice/libs/num"
)

// MonthSeconds is the length of an emission period, a twelfth of a mean
// tropical year.
const MonthSeconds int64 = 2629743

// Basis point denominator used by every weight in the system.
const WeightFraction uint16 = 10000

var (
	ErrInvalidPeriodLength     = errors.New("emission period length must be positive")
	ErrInvalidDecayFactor      = errors.New("emission decay factor must be at most 10000 basis points")
	ErrInvalidInitialRate      = errors.New("emission initial rate must be set")
	ErrInvalidAllocationWeight = errors.New("allocation weights must sum to 10000 basis points")
)

// EmissionState is the full configuration of the global emission schedule.
// The instantaneous rate at whole elapsed period k is
// initialRate * (decayFactorBps/10000)^k.
type EmissionState struct {
	StartTime      time.Time
	PeriodLength   time.Duration
	DecayFactorBps uint16
	InitialRate    *num.Uint
}

func (e EmissionState) Validate() error {
	if e.PeriodLength <= 0 {
		return ErrInvalidPeriodLength
	}
	if e.DecayFactorBps > WeightFraction {
		return ErrInvalidDecayFactor
	}
	if e.InitialRate == nil || e.InitialRate.IsZero() {
		return ErrInvalidInitialRate
	}
	return nil
}

// DecayFactor returns the decay factor as a decimal fraction.
func (e EmissionState) DecayFactor() num.Decimal {
	return num.DecimalFromInt64(int64(e.DecayFactorBps)).Div(num.DecimalFromInt64(int64(WeightFraction)))
}

// AllocationWeights splits the global emission rate between the vault
// depositors pool and the stakers pool.
type AllocationWeights struct {
	VaultBps   uint16
	StakingBps uint16
}

func (w AllocationWeights) Validate() error {
	// sum in int, the uint16 sum wraps for large weights
	if int(w.VaultBps)+int(w.StakingBps) != int(WeightFraction) {
		return ErrInvalidAllocationWeight
	}
	return nil
}

// VaultFraction returns the vault pool share as a decimal fraction.
func (w AllocationWeights) VaultFraction() num.Decimal {
	return num.DecimalFromInt64(int64(w.VaultBps)).Div(num.DecimalFromInt64(int64(WeightFraction)))
}

// StakingFraction returns the staking pool share as a decimal fraction.
func (w AllocationWeights) StakingFraction() num.Decimal {
	return num.DecimalFromInt64(int64(w.StakingBps)).Div(num.DecimalFromInt64(int64(WeightFraction)))
}
