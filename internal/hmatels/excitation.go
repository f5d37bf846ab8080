// excitation.go --  This file is part of goCI project.
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
package hmatels

import (
	"fmt"

	"example.com/goci/internal/bitstr"
	"example.com/goci/internal/det"
)

type Spin int

const (
	Alpha Spin = iota
	Beta
)

func (s Spin) String() string {
	if s == Beta {
		return "beta"
	}
	return "alpha"
}

// Kind is the excitation level of a determinant pair.
type Kind int

const (
	Diagonal        Kind = iota // identical occupations
	Single                      // one replacement in one channel
	DoubleSameSpin              // two replacements in one channel
	DoubleMixedSpin             // one alpha and one beta replacement
	BeyondDouble                // more than two replacements, element is 0
)

var kindNames = [...]string{"diagonal", "single", "double-same-spin", "double-mixed-spin", "beyond-double"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Space tells which comparator classified the pair.
type Space int

const (
	SpaceCAS   Space = iota // both determinants CAS-flagged
	SpaceMixed              // at least one uses orbitals outside the CAS
)

// Route splits mixed-space pairs by where the replaced orbitals live.
type Route int

const (
	RouteCASInternal     Route = iota // all replacements inside the CAS
	RouteVirtualInternal              // a replacement between two outside orbitals
	RouteCrossSpace                   // an electron crosses the CAS boundary
)

var routeNames = [...]string{"cas-internal", "virtual-internal", "cross-space"}

func (r Route) String() string {
	if r < 0 || int(r) >= len(routeNames) {
		return fmt.Sprintf("Route(%d)", int(r))
	}
	return routeNames[r]
}

// Excitation is the classified relation between determinants i and j.
//
// Init and Final hold the replaced orbitals, 1-based, 0 where unused:
//   - Single: Init[0] -> Final[0] in channel Spin.
//   - DoubleSameSpin: Init[0], Init[1] -> Final[0], Final[1] in channel Spin.
//   - DoubleMixedSpin: alpha Init[0] -> Final[0], beta Init[1] -> Final[1].
type Excitation struct {
	Kind        Kind
	Space       Space
	Route       Route
	Spin        Spin
	Level       int
	Init, Final [2]int
}

func (x Excitation) String() string {
	space := "cas"
	if x.Space == SpaceMixed {
		space = "mixed/" + x.Route.String()
	}
	switch x.Kind {
	case Single:
		return fmt.Sprintf("%s %s %s %d->%d", x.Kind, x.Spin, space, x.Init[0], x.Final[0])
	case DoubleSameSpin:
		return fmt.Sprintf("%s %s %s %v->%v", x.Kind, x.Spin, space, x.Init, x.Final)
	case DoubleMixedSpin:
		return fmt.Sprintf("%s %s alpha %d->%d beta %d->%d", x.Kind, space, x.Init[0], x.Final[0], x.Init[1], x.Final[1])
	}
	return fmt.Sprintf("%s %s level %d", x.Kind, space, x.Level)
}

// Classify decides which matrix element formula applies to the pair (i, j).
func Classify(i, j det.Determinant) Excitation {
	if i.CAS && j.CAS {
		return classifyCAS(i, j)
	}
	return classifyMixed(i, j)
}

func classifyCAS(i, j det.Determinant) Excitation {
	d := det.CompareCAS(i, j)
	// Raw counts vacated and occupied bits, two per replacement.
	x := Excitation{Space: SpaceCAS, Level: d.Raw / 2}
	x.Kind = kindOf(x.Level, d.NumAlpha)
	switch x.Kind {
	case Single, DoubleSameSpin:
		if d.NumAlpha > 0 {
			bitstr.FillNonzeroBits(d.AlphaInit, x.Init[:])
			bitstr.FillNonzeroBits(d.AlphaFinal, x.Final[:])
		} else {
			x.Spin = Beta
			bitstr.FillNonzeroBits(d.BetaInit, x.Init[:])
			bitstr.FillNonzeroBits(d.BetaFinal, x.Final[:])
		}
	case DoubleMixedSpin:
		x.Init = [2]int{bitstr.SingleBit(d.AlphaInit), bitstr.SingleBit(d.BetaInit)}
		x.Final = [2]int{bitstr.SingleBit(d.AlphaFinal), bitstr.SingleBit(d.BetaFinal)}
	}
	return x
}

func classifyMixed(i, j det.Determinant) Excitation {
	d := det.CompareNonCAS(i, j)
	x := Excitation{Space: SpaceMixed, Level: d.Level}
	x.Kind = kindOf(x.Level, d.Alpha.Total())
	switch {
	case d.Alpha.CV+d.Beta.CV > 0:
		x.Route = RouteCrossSpace
	case d.Alpha.V+d.Beta.V > 0:
		x.Route = RouteVirtualInternal
	default:
		x.Route = RouteCASInternal
	}

	switch x.Kind {
	case Single, DoubleSameSpin:
		s := d.Alpha
		if s.Total() == 0 {
			x.Spin = Beta
			s = d.Beta
		}
		copy(x.Init[:], replaced(s.Init, s.VirtInit))
		copy(x.Final[:], replaced(s.Final, s.VirtFinal))
	case DoubleMixedSpin:
		x.Init = [2]int{first(replaced(d.Alpha.Init, d.Alpha.VirtInit)), first(replaced(d.Beta.Init, d.Beta.VirtInit))}
		x.Final = [2]int{first(replaced(d.Alpha.Final, d.Alpha.VirtFinal)), first(replaced(d.Beta.Final, d.Beta.VirtFinal))}
	}
	return x
}

func kindOf(level, nalpha int) Kind {
	switch {
	case level == 0:
		return Diagonal
	case level == 1:
		return Single
	case level == 2 && nalpha == 1:
		return DoubleMixedSpin
	case level == 2:
		return DoubleSameSpin
	}
	return BeyondDouble
}

// replaced lists the packed orbitals of w followed by the outside ones.
func replaced(w uint64, virt []int) []int {
	return append(bitstr.NonzeroBits(w), virt...)
}

func first(orbs []int) int {
	if len(orbs) == 0 {
		return 0
	}
	return orbs[0]
}
