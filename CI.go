// CI.go --  This file is part of goCI project.
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
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"example.com/goci/internal/cimat"
	"example.com/goci/internal/config"
	"example.com/goci/internal/det"
	"example.com/goci/internal/hmatels"
	"example.com/goci/internal/moints"
)

type CI struct {
	Cfg          *config.Config
	Ints         *moints.Integrals
	Dets         []det.Determinant
	Aelec, Belec int
	Eval         *hmatels.Evaluator
	Builder      *cimat.Builder
}

func CIinit(cfg *config.Config) (*CI, error) {
	tstart := time.Now()
	var result CI
	result.Cfg = cfg
	result.Aelec, result.Belec = cfg.General.AlphaBeta()

	hdr, ints, err := moints.ReadFCIDUMP(cfg.Files.MOInts)
	if err != nil {
		return nil, err
	}
	result.Ints = ints
	OutputLogger.Println("Molecular integrals: ", cfg.Files.MOInts)
	OutputLogger.Println("  orbitals = ", hdr.NOrb, ", 1-e integrals = ", len(ints.One), ", 2-e integrals = ", len(ints.Two))
	OutputLogger.Println("  nuclear repulsion = ", ints.NucRep)
	if hdr.NOrb != cfg.General.CorrelatedOrbitals() {
		WarningLogger.Println("Integral file has", hdr.NOrb, "orbitals, input gives", cfg.General.CorrelatedOrbitals())
	}
	if hdr.NElec != 0 && hdr.NElec != result.Aelec+result.Belec {
		WarningLogger.Println("Integral file has", hdr.NElec, "electrons, input gives", result.Aelec+result.Belec, "correlated")
	}
	InfoLogger.Println("Integrals read...", time.Since(tstart))
	tstart = time.Now()

	result.Dets, err = det.ReadList(cfg.Files.DetList, cfg.General.NActive)
	if err != nil {
		return nil, err
	}
	if len(result.Dets) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Files.DetList, det.ErrFormat)
	}
	nbad := 0
	for n, d := range result.Dets {
		if err := d.Check(result.Aelec, result.Belec); err != nil {
			nbad++
			WarningLogger.Println("Determinant", n+1, d.Format(cfg.General.NActive), ":", err)
		}
	}
	xlevel := cfg.General.XLevel
	sum := det.Summarize(result.Dets, xlevel)
	OutputLogger.Println("Determinants: ", sum.NDets, " (", sum.NCAS, " CAS-flagged)")
	OutputLogger.Println("  alpha strings = ", sum.NAlphaStr, ", beta strings = ", sum.NBetaStr)
	OutputLogger.Println("  correlated electrons = ", result.Aelec+result.Belec, ", correlated orbitals = ", cfg.General.CorrelatedOrbitals())
	OutputLogger.Println("  highest excitation level from determinant 1 = ", sum.MaxLevel, " (xlevel = ", xlevel, ")")
	for _, n := range sum.Beyond {
		d := result.Dets[n]
		WarningLogger.Println("Determinant", n+1, d.Format(cfg.General.NActive), "is", det.Level(result.Dets[0], d),
			"replacements from determinant 1, above xlevel", xlevel)
	}
	if nbad > 0 {
		WarningLogger.Println(nbad, "determinants break the electron count; their elements are not meaningful")
	}
	InfoLogger.Println("Determinants read...", time.Since(tstart))

	result.Eval = hmatels.New(ints, result.Aelec, result.Belec)
	result.Builder = cimat.NewBuilder(result.Eval, cfg.NProcs)
	return &result, nil
}

func (ci *CI) Diagonalize(cmd *cobra.Command) error {
	tstart := time.Now()
	h, st, err := ci.Builder.Hamiltonian(cmd.Context(), ci.Dets)
	if err != nil {
		return err
	}
	n := len(ci.Dets)
	OutputLogger.Println("CI matrix ", n, "x", n, " built with ", ci.Builder.Workers(), " workers")
	OutputLogger.Println("  computed pairs = ", st.Computed, ", orthogonal = ", st.Orthogonal, ", unsupported = ", st.Unsupported)
	if st.Unsupported > 0 {
		WarningLogger.Println(st.Unsupported, "pairs have no matrix element formula and were set to zero")
	}
	InfoLogger.Println("CI matrix done...", time.Since(tstart))
	if ci.Cfg.General.PrintLvl > 1 {
		PrintDense(h)
	}

	if checkFlag {
		tstart = time.Now()
		full, err := ci.Builder.Full(cmd.Context(), ci.Dets)
		if err != nil {
			return err
		}
		OutputLogger.Println("Asymmetry of H (RMS of H(i,j)-H(j,i)) = ", cimat.AsymmetryRMS(full))
		InfoLogger.Println("Asymmetry check done...", time.Since(tstart))
	}

	tstart = time.Now()
	vals, vecs, err := cimat.Lowest(h, ci.Cfg.Roots)
	if err != nil {
		ErrorLogger.Println(err)
		return err
	}
	InfoLogger.Println("Diagonalization done...", time.Since(tstart))

	printOutputDelimiter()
	ecore := ci.Ints.CoreEnergy()
	OutputLogger.Println("Core energy = ", ecore, " a.u.")
	for k, v := range vals {
		OutputLogger.Printf("Root %3d: CI energy = %16.10f, total energy = %16.10f a.u.", k+1, v, v+ecore)
		fmt.Printf("Root %3d: total energy = %16.10f a.u.\n", k+1, v+ecore)
		if ci.Cfg.General.PrintLvl > 0 {
			for i := 0; i < n; i++ {
				OutputLogger.Printf("    %5d  %s  %12.8f", i+1, ci.Dets[i].Format(ci.Cfg.General.NActive), vecs.At(i, k))
			}
		}
	}
	printOutputDelimiter()
	return nil
}

func runCI(cmd *cobra.Command, args []string) error {
	cfg, closer, err := setup(args[0])
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		return err
	}

	ci, err := CIinit(cfg)
	if err != nil {
		ErrorLogger.Println(err)
		return err
	}
	if err := ci.Diagonalize(cmd); err != nil {
		return err
	}

	MyMemDebug()
	InfoLogger.Println("Exiting goCI...")
	fmt.Println("goCI done.")
	return nil
}

func runElement(cmd *cobra.Command, args []string) error {
	cfg, closer, err := setup(args[0])
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		return err
	}

	ci, err := CIinit(cfg)
	if err != nil {
		ErrorLogger.Println(err)
		return err
	}
	var idx [2]int
	for n := range idx {
		idx[n], err = strconv.Atoi(args[n+1])
		if err != nil || idx[n] < 1 || idx[n] > len(ci.Dets) {
			return fmt.Errorf("determinant %q: want 1..%d", args[n+1], len(ci.Dets))
		}
	}

	i, j := ci.Dets[idx[0]-1], ci.Dets[idx[1]-1]
	res := ci.Eval.Eval(i, j)
	OutputLogger.Println("<", i.Format(cfg.General.NActive), "|H|", j.Format(cfg.General.NActive), ">")
	OutputLogger.Println("  excitation: ", res.Excitation)
	OutputLogger.Println("  value = ", res.Value)
	if errors.Is(res.Err, hmatels.ErrUnsupported) {
		WarningLogger.Println(res.Err)
	} else if res.Err != nil {
		ErrorLogger.Println(res.Err)
	}
	fmt.Printf("<%d|H|%d> = %.10f (%v)\n", idx[0], idx[1], res.Value, res.Excitation)
	return nil
}
