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
	"time"

	"code.solsticelabs.io/solstice/libs/num"
)

// emittedFn integrates a pool's absolute emission over a time interval.
type emittedFn func(t0, t1 time.Time) num.Decimal

// checkpoint is the accrual primitive every pool is built on: a cumulative
// per-share counter advanced lazily. accruedPerShare never decreases and
// lastUpdate only moves forward.
type checkpoint struct {
	lastUpdate      time.Time
	accruedPerShare num.Decimal
}

func newCheckpoint(now time.Time) checkpoint {
	return checkpoint{
		lastUpdate:      now,
		accruedPerShare: num.DecimalZero(),
	}
}

// advance folds the pool emission over [lastUpdate, now] into the per-share
// counter. With no shares outstanding the emission for the interval is
// forgone, not deferred. Advancing twice at the same instant is a no-op.
func (c *checkpoint) advance(now time.Time, supply *num.Uint, emitted emittedFn) {
	if !now.After(c.lastUpdate) {
		return
	}
	if supply != nil && !supply.IsZero() {
		grown := emitted(c.lastUpdate, now).Div(num.DecimalFromUint(supply))
		c.accruedPerShare = c.accruedPerShare.Add(grown)
	}
	c.lastUpdate = now
}

// projected returns the per-share counter as it would stand after advancing
// to now, without mutating the checkpoint.
func (c *checkpoint) projected(now time.Time, supply *num.Uint, emitted emittedFn) num.Decimal {
	if !now.After(c.lastUpdate) || supply == nil || supply.IsZero() {
		return c.accruedPerShare
	}
	return c.accruedPerShare.Add(emitted(c.lastUpdate, now).Div(num.DecimalFromUint(supply)))
}
