// list.go --  This file is part of goCI project.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"example.com/goci/internal/bitstr"
)

// ReadList reads a determinant list file. See ParseList for the format.
func ReadList(fname string, nact int) ([]Determinant, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dets, err := ParseList(file, nact)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return dets, nil
}

// ParseList reads one determinant per line:
//
//	<alpha bits> <beta bits> [a1 a2 b1 b2]
//
// Bits are written orbital 1 first and must fit in nact active orbitals.
// The optional four integers are the alpha and beta orbitals occupied
// outside the active space (0 for none); they must be above nact.
// Blank lines and lines starting with '#' are skipped.
func ParseList(r io.Reader, nact int) ([]Determinant, error) {
	var result []Determinant
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}
		words := strings.Fields(txt)
		if len(words) != 2 && len(words) != 2+2*MaxVirt {
			return nil, fmt.Errorf("line %d: want 2 or %d fields, got %d: %w", line, 2+2*MaxVirt, len(words), ErrFormat)
		}
		var occ [2]uint64
		for n := range occ {
			if len(words[n]) > nact {
				return nil, fmt.Errorf("line %d: %q longer than %d active orbitals: %w", line, words[n], nact, ErrFormat)
			}
			w, err := bitstr.Parse(words[n])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrFormat)
			}
			occ[n] = w
		}
		var virt [2 * MaxVirt]int
		for n := 2; n < len(words); n++ {
			v, err := strconv.Atoi(words[n])
			if err != nil || v < 0 || (v != 0 && v <= nact) {
				return nil, fmt.Errorf("line %d: bad virtual orbital %q: %w", line, words[n], ErrFormat)
			}
			virt[n-2] = v
		}
		result = append(result, New(
			NewOccString(occ[0], virt[:MaxVirt]...),
			NewOccString(occ[1], virt[MaxVirt:]...),
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
