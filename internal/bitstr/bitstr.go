// bitstr.go --  This file is part of goCI project.
// Copyright (C) the goCI authors
//
//	goCI is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package bitstr works with packed orbital occupation words.
//
// Bit k (0-based) of a word stands for orbital k+1. Orbital indices handed
// out by this package are always 1-based, so 0 is free to act as an
// "empty slot" marker in occupation lists.
package bitstr

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxOrbitals is the number of orbitals one packed word can hold.
const MaxOrbitals = 64

var (
	ErrDigit = errors.New("bitstr: digit is not 0 or 1")
	ErrWidth = errors.New("bitstr: more than 64 digits")
)

// NonzeroBits returns the orbital indices of the set bits of w, ascending.
func NonzeroBits(w uint64) []int {
	res := make([]int, 0, bits.OnesCount64(w))
	for w != 0 {
		res = append(res, bits.TrailingZeros64(w)+1)
		w &= w - 1
	}
	return res
}

// FillNonzeroBits writes the orbital indices of the set bits of w into dst
// and returns how many were written. Slots past that count are left alone.
func FillNonzeroBits(w uint64, dst []int) int {
	n := 0
	for w != 0 && n < len(dst) {
		dst[n] = bits.TrailingZeros64(w) + 1
		n++
		w &= w - 1
	}
	return n
}

// SingleBit returns the orbital of the lowest set bit of w, or 0 for an
// empty word. Callers use it on words known to carry exactly one bit.
func SingleBit(w uint64) int {
	if w == 0 {
		return 0
	}
	return bits.TrailingZeros64(w) + 1
}

// Count returns the number of occupied orbitals in w.
func Count(w uint64) int {
	return bits.OnesCount64(w)
}

// Binary2Dec turns a binary digit stream into its value. digits[i] is the
// coefficient of 2^i.
func Binary2Dec(digits []int) uint64 {
	var res uint64
	for i, d := range digits {
		if d != 0 {
			res |= 1 << uint(i)
		}
	}
	return res
}

// Dec2Binary is the inverse of Binary2Dec for a stream of n digits.
func Dec2Binary(v uint64, n int) []int {
	res := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		if (v>>uint(i))&1 == 1 {
			res[i] = 1
		}
	}
	return res
}

// Parse reads an occupation written as a 0/1 string, orbital 1 first.
func Parse(s string) (uint64, error) {
	if len(s) > MaxOrbitals {
		return 0, fmt.Errorf("%q: %w", s, ErrWidth)
	}
	digits := make([]int, len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			digits[i] = 1
		default:
			return 0, fmt.Errorf("%q at %d: %w", s, i, ErrDigit)
		}
	}
	return Binary2Dec(digits), nil
}

// Format writes the first n orbitals of w as a 0/1 string, orbital 1 first.
func Format(w uint64, n int) string {
	digits := Dec2Binary(w, n)
	buf := make([]byte, n)
	for i, d := range digits {
		buf[i] = byte('0' + d)
	}
	return string(buf)
}
