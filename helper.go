// helper.go --  This file is part of goCI project.
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
package main

import (
	"bufio"
	"os"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

func ReadFileLines(fname string) ([]string, error) {
	var result []string
	var err error

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	err = scanner.Err()

	return result, err
}

func PrintDense(D mat.Matrix) {
	fa := mat.Formatted(D, mat.Prefix("    "), mat.Squeeze())
	OutputLogger.Printf("    %.8f\n", fa)
}

func MyMemDebug() {
	var memStats runtime.MemStats

	runtime.ReadMemStats(&memStats)

	InfoLogger.Printf("Alloc: %d bytes, TotalAlloc: %d bytes, HeapAlloc: %d bytes, HeapSys: %d bytes",
		memStats.Alloc, memStats.TotalAlloc, memStats.HeapAlloc, memStats.HeapSys)
}
