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

package num

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Uint an unsigned 256 bit integer, the one and only representation of token
// amounts, balances and supplies across the engines.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint from a uint64.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintFromBig construct a new Uint with a big.Int, returns true if the big
// int is negative or overflows, in which case the result is zero.
func UintFromBig(b *big.Int) (*Uint, bool) {
	if b.Sign() < 0 {
		return UintZero(), true
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal returns a new Uint from a Decimal, the fractional part is
// truncated. Returns true on overflow or if the decimal is negative.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.BigInt())
}

// UintFromString creates a new Uint from a base 10 string, returns true if
// the string is not a valid number or overflows, in which case the result is
// zero.
func UintFromString(str string) (*Uint, bool) {
	b, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString creates a new Uint from a base 10 string, it panics if
// the string is not a valid number. For use with constants only.
func MustUintFromString(str string) *Uint {
	b, ok := new(big.Int).SetString(str, 10)
	if !ok {
		panic("invalid uint string: " + str)
	}
	u, overflow := UintFromBig(b)
	if overflow {
		panic("uint string overflows: " + str)
	}
	return u
}

// UintToString returns the string representation of a possibly nil Uint.
func UintToString(u *Uint) string {
	if u == nil {
		return "0"
	}
	return u.String()
}

func (u *Uint) Clone() *Uint {
	if u == nil {
		return UintZero()
	}
	return &Uint{u.u}
}

// Add sets u to x + y and returns u.
func (u *Uint) Add(x, y *Uint) *Uint {
	u.u.Add(&x.u, &y.u)
	return u
}

// AddSum adds all the given values to u and returns u.
func (u *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		u.u.Add(&u.u, &x.u)
	}
	return u
}

// Sub sets u to x - y and returns u.
func (u *Uint) Sub(x, y *Uint) *Uint {
	u.u.Sub(&x.u, &y.u)
	return u
}

// Mul sets u to x * y and returns u.
func (u *Uint) Mul(x, y *Uint) *Uint {
	u.u.Mul(&x.u, &y.u)
	return u
}

// Div sets u to x / y and returns u.
func (u *Uint) Div(x, y *Uint) *Uint {
	u.u.Div(&x.u, &y.u)
	return u
}

func (u *Uint) IsZero() bool {
	return u.u.IsZero()
}

func (u *Uint) EQ(oth *Uint) bool {
	return u.u.Eq(&oth.u)
}

func (u *Uint) NEQ(oth *Uint) bool {
	return !u.u.Eq(&oth.u)
}

func (u *Uint) GT(oth *Uint) bool {
	return u.u.Gt(&oth.u)
}

func (u *Uint) GTE(oth *Uint) bool {
	return !u.u.Lt(&oth.u)
}

func (u *Uint) LT(oth *Uint) bool {
	return u.u.Lt(&oth.u)
}

func (u *Uint) LTE(oth *Uint) bool {
	return !u.u.Gt(&oth.u)
}

func (u *Uint) String() string {
	return u.u.Dec()
}

func (u *Uint) BigInt() *big.Int {
	return u.u.ToBig()
}

func (u *Uint) Uint64() uint64 {
	return u.u.Uint64()
}

func (u *Uint) ToDecimal() Decimal {
	return DecimalFromUint(u)
}

// Sum returns the sum of all the given values as a new Uint.
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

// Min returns a clone of the smaller of x and y.
func Min(x, y *Uint) *Uint {
	if x.LT(y) {
		return x.Clone()
	}
	return y.Clone()
}

// Max returns a clone of the larger of x and y.
func Max(x, y *Uint) *Uint {
	if x.GT(y) {
		return x.Clone()
	}
	return y.Clone()
}
