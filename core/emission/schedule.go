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

package emission

import (
	"time"

	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
)

// Schedule evaluates a step-decay emission curve. The instantaneous rate is
// constant within a period and drops by the decay factor at every period
// boundary. Any time before the schedule start is treated as period zero.
type Schedule struct {
	state types.EmissionState
	decay num.Decimal
}

// NewSchedule validates the given state and builds a schedule over it.
func NewSchedule(state types.EmissionState) (*Schedule, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return &Schedule{
		state: types.EmissionState{
			StartTime:      state.StartTime,
			PeriodLength:   state.PeriodLength,
			DecayFactorBps: state.DecayFactorBps,
			InitialRate:    state.InitialRate.Clone(),
		},
		decay: state.DecayFactor(),
	}, nil
}

// State returns a copy of the schedule configuration.
func (s *Schedule) State() types.EmissionState {
	st := s.state
	st.InitialRate = s.state.InitialRate.Clone()
	return st
}

// periodAt returns the zero-based decay period index the given time falls in.
func (s *Schedule) periodAt(t time.Time) int64 {
	if !t.After(s.state.StartTime) {
		return 0
	}
	return int64(t.Sub(s.state.StartTime) / s.state.PeriodLength)
}

// periodRate returns the emission rate, in base token units per second, for
// the given period index.
func (s *Schedule) periodRate(k int64) num.Decimal {
	rate := num.DecimalFromUint(s.state.InitialRate)
	if k <= 0 {
		return rate
	}
	return rate.Mul(s.decay.Pow(num.DecimalFromInt64(k)))
}

// RateAt returns the instantaneous emission rate at the given time.
func (s *Schedule) RateAt(t time.Time) num.Decimal {
	return s.periodRate(s.periodAt(t))
}

// EmittedBetween integrates the emission curve over [t0, t1], splitting the
// interval at every period boundary it spans so checkpoints taken at
// arbitrary times stay exact. Returns zero when t1 is not after t0.
func (s *Schedule) EmittedBetween(t0, t1 time.Time) num.Decimal {
	if !t1.After(t0) {
		return num.DecimalZero()
	}

	total := num.DecimalZero()
	cur := t0
	for cur.Before(t1) {
		k := s.periodAt(cur)
		end := s.periodEnd(k)
		if end.After(t1) {
			end = t1
		}
		seconds := num.DecimalFromInt64(int64(end.Sub(cur) / time.Second))
		if frac := end.Sub(cur) % time.Second; frac != 0 {
			seconds = seconds.Add(num.DecimalFromInt64(int64(frac)).Div(num.DecimalFromInt64(int64(time.Second))))
		}
		total = total.Add(s.periodRate(k).Mul(seconds))
		cur = end
	}
	return total
}

// periodEnd returns the instant period k ends, which is where period k+1
// starts. Period zero extends backwards indefinitely.
func (s *Schedule) periodEnd(k int64) time.Time {
	return s.state.StartTime.Add(time.Duration(k+1) * s.state.PeriodLength)
}
