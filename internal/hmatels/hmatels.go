// hmatels.go --  This file is part of goCI project.
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

// Package hmatels evaluates Hamiltonian matrix elements <i|H|j> between
// Slater determinants with the Slater-Condon rules.
//
// Classify sorts a determinant pair into an Excitation; Evaluator.Eval
// applies the formula for that class. Pairs further apart than a double
// replacement are exactly zero. Mixed-space pairs other than the diagonal
// and single replacements without a CAS boundary crossing are not
// implemented; they evaluate to zero with ErrUnsupported in the Result.
package hmatels

import (
	"errors"
	"fmt"

	"example.com/goci/internal/det"
	"example.com/goci/internal/moints"
)

var (
	ErrUnsupported = errors.New("hmatels: excitation class not implemented")
	ErrMalformed   = errors.New("hmatels: replaced orbital missing")
)

// Result is one matrix element. Value is 0 whenever Err is set.
type Result struct {
	Value      float64
	Excitation Excitation
	Err        error
}

// Supported reports whether Value was computed by a formula.
func (r Result) Supported() bool {
	return r.Err == nil
}

// Evaluator computes matrix elements over a shared integral set. It holds
// no mutable state and is safe for concurrent use.
type Evaluator struct {
	ints         *moints.Integrals
	aelec, belec int
}

// New returns an evaluator for determinants with aelec alpha and belec
// beta electrons.
func New(ints *moints.Integrals, aelec, belec int) *Evaluator {
	return &Evaluator{ints: ints, aelec: aelec, belec: belec}
}

// Value returns <i|H|j>, 0 for unsupported classes.
func (e *Evaluator) Value(i, j det.Determinant) float64 {
	return e.Eval(i, j).Value
}

// Eval classifies (i, j) and evaluates <i|H|j>.
func (e *Evaluator) Eval(i, j det.Determinant) Result {
	x := Classify(i, j)
	res := Result{Excitation: x}

	if x.Kind == BeyondDouble {
		return res
	}
	if x.Space == SpaceMixed && (x.Route == RouteCrossSpace || x.Kind == DoubleSameSpin || x.Kind == DoubleMixedSpin) {
		res.Err = fmt.Errorf("%v: %w", x, ErrUnsupported)
		return res
	}
	if !x.complete() {
		res.Err = fmt.Errorf("%v: %w", x, ErrMalformed)
		return res
	}

	switch x.Kind {
	case Diagonal:
		res.Value = e.diagonal(i)
	case Single:
		if x.Spin == Alpha {
			res.Value = e.single(orbitals(i.Alpha, e.aelec), orbitals(i.Beta, e.belec), x.Init[0], x.Final[0])
		} else {
			res.Value = e.single(orbitals(i.Beta, e.belec), orbitals(i.Alpha, e.aelec), x.Init[0], x.Final[0])
		}
	case DoubleMixedSpin:
		res.Value = e.doubleMixed(x.Init[0], x.Final[0], x.Init[1], x.Final[1])
	case DoubleSameSpin:
		res.Value = e.doubleSame(x.Init, x.Final)
	}
	return res
}

// complete reports whether every orbital the formula reads is set.
func (x Excitation) complete() bool {
	n := 0
	switch x.Kind {
	case Single:
		n = 1
	case DoubleSameSpin, DoubleMixedSpin:
		n = 2
	}
	for k := 0; k < n; k++ {
		if x.Init[k] == 0 || x.Final[k] == 0 {
			return false
		}
	}
	return true
}

// orbitals expands o and drops slots a malformed string left empty.
func orbitals(o det.OccString, nelec int) []int {
	eo := o.Orbitals(nelec)
	res := eo[:0]
	for _, p := range eo {
		if p != 0 {
			res = append(res, p)
		}
	}
	return res
}

// diagonal is <i|H|i>.
func (e *Evaluator) diagonal(d det.Determinant) float64 {
	ea := orbitals(d.Alpha, e.aelec)
	eb := orbitals(d.Beta, e.belec)

	val := e.sameSpinDiagonal(ea) + e.sameSpinDiagonal(eb)
	for _, p := range ea {
		for _, q := range eb {
			val += e.ints.ERI(p, p, q, q)
		}
	}
	return val
}

func (e *Evaluator) sameSpinDiagonal(eo []int) float64 {
	val := 0.0
	for n, p := range eo {
		val += e.ints.H(p, p)
		for _, q := range eo[:n] {
			val += e.ints.ERI(p, p, q, q) - e.ints.ERI(p, q, p, q)
		}
	}
	return val
}

// single is the element of one replacement io -> fo. eo1 is the occupied
// list of the moving channel in the bra, eo2 the other channel.
func (e *Evaluator) single(eo1, eo2 []int, io, fo int) float64 {
	sign := Sign(io, fo)
	val := e.ints.H(io, fo)
	for _, p := range eo1 {
		if p != io {
			val += e.ints.ERI(p, p, io, fo) - e.ints.ERI(p, io, p, fo)
		}
	}
	for _, q := range eo2 {
		val += e.ints.ERI(q, q, io, fo)
	}
	return sign * val
}

// doubleMixed is (ai bi|af bf) - (ai af|bi bf) for alpha ai -> af and
// beta bi -> bf.
func (e *Evaluator) doubleMixed(aio, afo, bio, bfo int) float64 {
	sign := SignPair(aio, afo, bio, bfo)
	return sign * (e.ints.ERI(aio, bio, afo, bfo) - e.ints.ERI(aio, afo, bio, bfo))
}

// doubleSame is (i1 i2|f1 f2) - (i1 f1|i2 f2) for two replacements in one
// channel.
func (e *Evaluator) doubleSame(init, finl [2]int) float64 {
	sign := SignPair(init[0], finl[0], init[1], finl[1])
	return sign * (e.ints.ERI(init[0], init[1], finl[0], finl[1]) - e.ints.ERI(init[0], finl[0], init[1], finl[1]))
}
