// summary.go --  This file is part of goCI project.
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

// Level is the number of orbital replacements between i and j.
func Level(i, j Determinant) int {
	if i.CAS && j.CAS {
		return CompareCAS(i, j).Raw / 2
	}
	return CompareNonCAS(i, j).Level
}

// Summary describes a determinant list relative to its first determinant.
type Summary struct {
	NDets     int
	NCAS      int // CAS-flagged determinants
	NAlphaStr int // distinct alpha strings
	NBetaStr  int // distinct beta strings
	MaxLevel  int
	Beyond    []int // positions of determinants above xlevel, 0-based
}

// Summarize counts the determinants and strings of dets and finds the
// determinants lying more than xlevel replacements from dets[0].
func Summarize(dets []Determinant, xlevel int) Summary {
	var s Summary
	if len(dets) == 0 {
		return s
	}
	astr := make(map[OccString]struct{})
	bstr := make(map[OccString]struct{})
	for n, d := range dets {
		if d.CAS {
			s.NCAS++
		}
		astr[d.Alpha] = struct{}{}
		bstr[d.Beta] = struct{}{}

		lvl := Level(dets[0], d)
		s.MaxLevel = max(s.MaxLevel, lvl)
		if lvl > xlevel {
			s.Beyond = append(s.Beyond, n)
		}
	}
	s.NDets = len(dets)
	s.NAlphaStr = len(astr)
	s.NBetaStr = len(bstr)
	return s
}
