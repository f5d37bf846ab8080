// moints.go --  This file is part of goCI project.
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

// Package moints holds molecular orbital integrals in packed form.
//
// One-electron integrals h(p,q) and two-electron integrals (pq|rs) in
// chemists' notation are stored once per distinct value in flat arrays.
// Positions come from Index1e and Index2e, which are 1-based like the
// orbital indices they take.
package moints

import "errors"

var ErrFormat = errors.New("moints: bad integral file")

// Index1e returns the 1-based packed position of the pair (i,j).
// Index1e(i,j) == Index1e(j,i).
func Index1e(i, j int) int {
	if i < j {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

// Index2e returns the 1-based packed position of (ij|kl). The result is the
// same for all eight permutations that leave a real integral unchanged.
func Index2e(i, j, k, l int) int {
	return Index1e(Index1e(i, j), Index1e(k, l))
}

// Integrals is the read-only integral set of one CI run. It is filled once
// by the loader and then shared between evaluations without locking.
type Integrals struct {
	NOrb       int
	One        []float64
	Two        []float64
	NucRep     float64
	FrozenCore float64
}

// New allocates zeroed integral arrays for norb orbitals.
func New(norb int) *Integrals {
	return &Integrals{
		NOrb: norb,
		One:  make([]float64, Index1e(norb, norb)),
		Two:  make([]float64, Index2e(norb, norb, norb, norb)),
	}
}

// H returns h(p,q).
func (m *Integrals) H(p, q int) float64 {
	return m.One[Index1e(p, q)-1]
}

// ERI returns (pq|rs).
func (m *Integrals) ERI(p, q, r, s int) float64 {
	return m.Two[Index2e(p, q, r, s)-1]
}

func (m *Integrals) SetH(p, q int, v float64) {
	m.One[Index1e(p, q)-1] = v
}

func (m *Integrals) SetERI(p, q, r, s int, v float64) {
	m.Two[Index2e(p, q, r, s)-1] = v
}

// CoreEnergy is the constant added to every diagonal element when total
// energies are reported.
func (m *Integrals) CoreEnergy() float64 {
	return m.NucRep + m.FrozenCore
}
