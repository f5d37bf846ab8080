// fcidump.go --  This file is part of goCI project.
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
package moints

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Header is the &FCI namelist at the top of an FCIDUMP file.
type Header struct {
	NOrb, NElec, MS2, ISym int
	OrbSym                 []int
}

var headerEnds = []string{"&END", "/", "$END", "$"}

// ReadFCIDUMP reads integrals from an FCIDUMP file.
func ReadFCIDUMP(fname string) (Header, *Integrals, error) {
	file, err := os.Open(fname)
	if err != nil {
		return Header{}, nil, err
	}
	defer file.Close()

	hdr, ints, err := ParseFCIDUMP(file)
	if err != nil {
		return hdr, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return hdr, ints, nil
}

// ParseFCIDUMP reads an FCIDUMP stream. Lines with all four indices set are
// (ij|kl), k=l=0 gives h(i,j), all zero gives the nuclear repulsion.
// Orbital energy lines (only i set) are skipped.
func ParseFCIDUMP(r io.Reader) (Header, *Integrals, error) {
	var hdr Header
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var hdrText []string
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		hdrText = append(hdrText, txt)
		words := strings.Fields(txt)
		if len(words) > 0 && slices.Contains(headerEnds, strings.ToUpper(words[len(words)-1])) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return hdr, nil, err
	}
	if err := hdr.parse(strings.Join(hdrText, " ")); err != nil {
		return hdr, nil, err
	}
	if hdr.NOrb <= 0 {
		return hdr, nil, fmt.Errorf("NORB missing or not positive: %w", ErrFormat)
	}

	ints := New(hdr.NOrb)
	for scanner.Scan() {
		line++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if len(words) != 5 {
			return hdr, nil, fmt.Errorf("line %d: want 5 fields, got %d: %w", line, len(words), ErrFormat)
		}
		val, err := strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(words[0]), 64)
		if err != nil {
			return hdr, nil, fmt.Errorf("line %d: %v: %w", line, err, ErrFormat)
		}
		var idx [4]int
		for n := range idx {
			idx[n], err = strconv.Atoi(words[n+1])
			if err != nil || idx[n] < 0 || idx[n] > hdr.NOrb {
				return hdr, nil, fmt.Errorf("line %d: bad orbital index %q: %w", line, words[n+1], ErrFormat)
			}
		}
		i, j, k, l := idx[0], idx[1], idx[2], idx[3]
		switch {
		case i == 0 && j == 0 && k == 0 && l == 0:
			ints.NucRep = val
		case k == 0 && l == 0 && i != 0 && j != 0:
			ints.SetH(i, j, val)
		case j == 0 && k == 0 && l == 0:
		case i == 0 || j == 0 || k == 0 || l == 0:
			return hdr, nil, fmt.Errorf("line %d: incomplete index set %v: %w", line, idx, ErrFormat)
		default:
			ints.SetERI(i, j, k, l, val)
		}
	}
	if err := scanner.Err(); err != nil {
		return hdr, nil, err
	}
	return hdr, ints, nil
}

func (h *Header) parse(text string) error {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	key := ""
	for _, f := range fields {
		up := strings.ToUpper(f)
		if up == "&FCI" || up == "$FCI" || slices.Contains(headerEnds, up) {
			continue
		}
		val := f
		if k, v, ok := strings.Cut(f, "="); ok {
			key = strings.ToUpper(k)
			val = v
			if val == "" {
				continue
			}
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("header %s=%q: %w", key, val, ErrFormat)
		}
		switch key {
		case "NORB":
			h.NOrb = n
		case "NELEC":
			h.NElec = n
		case "MS2":
			h.MS2 = n
		case "ISYM":
			h.ISym = n
		case "ORBSYM":
			h.OrbSym = append(h.OrbSym, n)
		}
	}
	return nil
}
