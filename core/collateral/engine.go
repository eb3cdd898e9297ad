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

package collateral

import (
	"errors"
	"sync"

	"code.solsticelabs.io/solstice/core/types"
	"code.solsticelabs.io/solstice/libs/num"
	"code.solsticelabs.io/solstice/logging"
)

var (
	ErrAccountDoesNotExist   = errors.New("account does not exist")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// System accounts. The emission pool funds reward payouts, the stake custody
// account holds the principal of every live stake.
const (
	EmissionPoolOwner types.PartyID = "*emission-pool"
	StakeCustodyOwner types.PartyID = "*stake-custody"
)

// Engine is the protocol token ledger. Every balance held or moved by the
// reward and staking engines lives in an account here.
type Engine struct {
	log *logging.Logger
	cfg Config

	mu       sync.Mutex
	balances map[types.PartyID]*num.Uint
}

// New instantiates a new collateral engine.
func New(log *logging.Logger, cfg Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:      log,
		cfg:      cfg,
		balances: map[types.PartyID]*num.Uint{},
	}
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.SetLevel(cfg.Level.Get())
	e.cfg = cfg
}

// Deposit credits a party's account, creating it if needed.
func (e *Engine) Deposit(party types.PartyID, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidTransferAmount
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.creditLocked(party, amount)
	return nil
}

// Withdraw debits a party's account. The whole operation fails if the
// balance is insufficient.
func (e *Engine) Withdraw(party types.PartyID, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidTransferAmount
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.debitLocked(party, amount)
}

// Balance returns a clone of the party's balance, zero when the account does
// not exist.
func (e *Engine) Balance(party types.PartyID) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.balances[party]
	if !ok {
		return num.UintZero()
	}
	return b.Clone()
}

// Transfer moves amount from one account to another. The whole operation
// fails if the source balance is insufficient.
func (e *Engine) Transfer(from, to types.PartyID, amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidTransferAmount
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.debitLocked(from, amount); err != nil {
		return err
	}
	e.creditLocked(to, amount)

	if e.log.IsDebug() {
		e.log.Debug("transfer",
			logging.String("from", from.String()),
			logging.String("to", to.String()),
			logging.String("amount", amount.String()),
		)
	}
	return nil
}

func (e *Engine) creditLocked(party types.PartyID, amount *num.Uint) {
	b, ok := e.balances[party]
	if !ok {
		b = num.UintZero()
		e.balances[party] = b
	}
	b.AddSum(amount)
}

func (e *Engine) debitLocked(party types.PartyID, amount *num.Uint) error {
	b, ok := e.balances[party]
	if !ok {
		return ErrAccountDoesNotExist
	}
	if b.LT(amount) {
		return ErrInsufficientFunds
	}
	b.Sub(b, amount)
	return nil
}
