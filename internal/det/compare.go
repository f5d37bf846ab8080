// compare.go --  This file is part of goCI project.
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
package det

import (
	"math/bits"

	"golang.org/x/exp/slices"
)

// CASDiff compares two CAS-flagged determinants. Init bits are occupied in
// the first determinant only, Final bits in the second only.
type CASDiff struct {
	Raw                   int // differing bits over both spins, vacated plus occupied
	NumAlpha, NumBeta     int // replacements per spin
	AlphaInit, AlphaFinal uint64
	BetaInit, BetaFinal   uint64
}

// CompareCAS compares the packed words of i and j.
func CompareCAS(i, j Determinant) CASDiff {
	var d CASDiff
	d.AlphaInit = i.Alpha.Word &^ j.Alpha.Word
	d.AlphaFinal = j.Alpha.Word &^ i.Alpha.Word
	d.BetaInit = i.Beta.Word &^ j.Beta.Word
	d.BetaFinal = j.Beta.Word &^ i.Beta.Word
	d.Raw = bits.OnesCount64(i.Alpha.Word^j.Alpha.Word) + bits.OnesCount64(i.Beta.Word^j.Beta.Word)
	d.NumAlpha = bits.OnesCount64(d.AlphaInit)
	d.NumBeta = bits.OnesCount64(d.BetaInit)
	return d
}

// SpinDiff splits the replacements of one spin channel by space.
type SpinDiff struct {
	C  int // both ends inside the active space
	CV int // one end inside, one outside
	V  int // both ends outside

	Init, Final         uint64 // packed orbitals vacated / newly occupied
	VirtInit, VirtFinal []int  // outside orbitals vacated / newly occupied
}

// Total is the number of replacements in the channel.
func (s SpinDiff) Total() int {
	return s.C + s.CV + s.V
}

// NonCASDiff compares two determinants when at least one of them is not
// CAS-flagged.
type NonCASDiff struct {
	Level       int
	Alpha, Beta SpinDiff
}

// CompareNonCAS compares i and j including their virtual occupations.
func CompareNonCAS(i, j Determinant) NonCASDiff {
	var d NonCASDiff
	d.Alpha = compareSpin(i.Alpha, j.Alpha)
	d.Beta = compareSpin(i.Beta, j.Beta)
	d.Level = d.Alpha.Total() + d.Beta.Total()
	return d
}

func compareSpin(oi, oj OccString) SpinDiff {
	var s SpinDiff
	s.Init = oi.Word &^ oj.Word
	s.Final = oj.Word &^ oi.Word
	s.VirtInit = virtMinus(oi, oj)
	s.VirtFinal = virtMinus(oj, oi)

	vc, oc := bits.OnesCount64(s.Init), bits.OnesCount64(s.Final)
	vv, ov := len(s.VirtInit), len(s.VirtFinal)
	// Moves across the CAS boundary are paired first, in both directions.
	out, in := min(vc, ov), min(vv, oc)
	s.CV = out + in
	s.C = max(vc-out, oc-in)
	s.V = max(vv-in, ov-out)
	return s
}

// virtMinus lists the outside orbitals of a that b does not hold.
func virtMinus(a, b OccString) []int {
	var res []int
	for _, v := range a.Virt {
		if v != 0 && !slices.Contains(b.Virt[:], v) {
			res = append(res, v)
		}
	}
	return res
}
