// det.go --  This file is part of goCI project.
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

// Package det describes Slater determinants by their orbital occupations.
//
// An occupation string carries a packed word for the orbitals of the active
// (CAS) space and at most two explicit orbitals outside it. A determinant
// is CAS-flagged when neither of its strings uses the explicit list.
package det

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"example.com/goci/internal/bitstr"
)

// MaxVirt is how many orbitals outside the active space one string may hold.
const MaxVirt = 2

var (
	ErrFormat    = errors.New("det: bad determinant list")
	ErrOccupancy = errors.New("det: electron count mismatch")
)

// OccString is the occupation of one spin channel.
type OccString struct {
	Word uint64      // bit k set: orbital k+1 occupied
	Virt [MaxVirt]int // orbitals outside the packed range, ascending, 0 = empty
}

// NewOccString packs the given virtual orbitals in ascending order.
func NewOccString(word uint64, virt ...int) OccString {
	o := OccString{Word: word}
	v := make([]int, 0, MaxVirt)
	for _, x := range virt {
		if x > 0 && len(v) < MaxVirt {
			v = append(v, x)
		}
	}
	slices.Sort(v)
	copy(o.Virt[:], v)
	return o
}

// NVirt returns the number of occupied orbitals outside the packed word.
func (o OccString) NVirt() int {
	n := 0
	for _, v := range o.Virt {
		if v != 0 {
			n++
		}
	}
	return n
}

// NElec returns the number of electrons in the string.
func (o OccString) NElec() int {
	return bitstr.Count(o.Word) + o.NVirt()
}

// Orbitals expands the string into its ascending list of nelec occupied
// orbitals. The packed word fills the head of the list. Tail slots it
// leaves at zero are taken from the virtual list.
func (o OccString) Orbitals(nelec int) []int {
	if nelec <= 0 {
		return []int{}
	}
	eo := make([]int, nelec)
	bitstr.FillNonzeroBits(o.Word, eo)
	if nelec > 1 && eo[nelec-2] == 0 {
		eo[nelec-2] = o.Virt[0]
		eo[nelec-1] = o.Virt[1]
	} else if eo[nelec-1] == 0 {
		eo[nelec-1] = o.Virt[0]
	}
	return eo
}

// Determinant is an immutable alpha/beta occupation pair.
type Determinant struct {
	Alpha, Beta OccString
	CAS         bool
}

// New builds a determinant and sets its CAS flag from the virtual lists.
func New(alpha, beta OccString) Determinant {
	return Determinant{
		Alpha: alpha,
		Beta:  beta,
		CAS:   alpha.NVirt() == 0 && beta.NVirt() == 0,
	}
}

// Check reports whether d carries aelec alpha and belec beta electrons.
func (d Determinant) Check(aelec, belec int) error {
	if na, nb := d.Alpha.NElec(), d.Beta.NElec(); na != aelec || nb != belec {
		return fmt.Errorf("have %d/%d alpha/beta electrons, want %d/%d: %w", na, nb, aelec, belec, ErrOccupancy)
	}
	return nil
}

// Format writes d the way ReadList reads it, with nact packed orbitals.
func (d Determinant) Format(nact int) string {
	var sb strings.Builder
	sb.WriteString(bitstr.Format(d.Alpha.Word, nact))
	sb.WriteByte(' ')
	sb.WriteString(bitstr.Format(d.Beta.Word, nact))
	if !d.CAS {
		for _, v := range append(d.Alpha.Virt[:], d.Beta.Virt[:]...) {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
