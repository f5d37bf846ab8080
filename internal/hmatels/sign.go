// sign.go --  This file is part of goCI project.
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

// Sign is the permutation factor of moving an electron from orbital io to
// orbital fo: (-1)^|fo-io|.
//
// This counts the orbital index distance, not the occupied orbitals in
// between, so it is not the full fermionic phase. Reference values depend
// on it; keep it as is.
func Sign(io, fo int) float64 {
	d := fo - io
	if d < 0 {
		d = -d
	}
	if d%2 == 0 {
		return 1
	}
	return -1
}

// SignPair is the factor of two simultaneous replacements.
func SignPair(io1, fo1, io2, fo2 int) float64 {
	return Sign(io1, fo1) * Sign(io2, fo2)
}
