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

package events

import (
	"context"
)

// EmissionChangeKind names the piece of emission configuration that changed.
type EmissionChangeKind string

const (
	EmissionChangeSchedule     EmissionChangeKind = "schedule"
	EmissionChangeAllocation   EmissionChangeKind = "allocation"
	EmissionChangeVaultWeight  EmissionChangeKind = "vault-weight"
	EmissionChangeBoostWeights EmissionChangeKind = "boost-weights"
)

type EmissionReconfigured struct {
	*Base
	kind   EmissionChangeKind
	detail string
}

func NewEmissionReconfigured(ctx context.Context, kind EmissionChangeKind, detail string) *EmissionReconfigured {
	return &EmissionReconfigured{
		Base:   newBase(ctx, EmissionReconfiguredEvent),
		kind:   kind,
		detail: detail,
	}
}

func (e EmissionReconfigured) Kind() EmissionChangeKind {
	return e.kind
}

func (e EmissionReconfigured) Detail() string {
	return e.detail
}
