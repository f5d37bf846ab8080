// main.go --  This file is part of goCI project.
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
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"example.com/goci/internal/config"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

var (
	nprocsFlag int
	rootsFlag  int
	checkFlag  bool

	rootCmd = &cobra.Command{
		Use:   "goci",
		Short: "Configuration interaction over Slater determinants",
		Long: `goCI evaluates Hamiltonian matrix elements between Slater determinants
from molecular orbital integrals and diagonalizes the CI matrix.`,
		SilenceUsage: true,
	}
	runCmd = &cobra.Command{
		Use:   "run [input.yaml]",
		Short: "Builds and diagonalizes the CI matrix of a determinant list",
		Args:  cobra.ExactArgs(1),
		RunE:  runCI,
	}
	elementCmd = &cobra.Command{
		Use:   "element [input.yaml] [i] [j]",
		Short: "Prints one matrix element <i|H|j>, determinants counted from 1",
		Args:  cobra.ExactArgs(3),
		RunE:  runElement,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&nprocsFlag, "nprocs", 0, "number of threads (overrides input and "+config.EnvNProcs+")")
	runCmd.Flags().IntVar(&rootsFlag, "roots", 0, "number of CI roots to print (overrides input)")
	runCmd.Flags().BoolVar(&checkFlag, "check", false, "evaluate both triangles and report the asymmetry of H")
	rootCmd.AddCommand(runCmd, elementCmd)
}

func initLog(fname string) (io.Closer, error) {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)
	return file, nil
}

func appInfo() {
	OutputLogger.Println("\n   goCI | configuration interaction with Slater determinants" +
		"\n        | distributed under the GNU General Public License" +
		"\n        | Have Fun!!!")
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

// outputName replaces the extension of the input file with "out".
func outputName(inpFname string) string {
	ext := filepath.Ext(inpFname)
	return strings.TrimSuffix(inpFname, ext) + ".out"
}

// setup reads the input, opens the output file and echoes the input there.
func setup(inpFname string) (*config.Config, io.Closer, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(inpFname)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}
	if nprocsFlag > 0 {
		cfg.NProcs = nprocsFlag
	}
	if rootsFlag > 0 {
		cfg.Roots = rootsFlag
	}

	outFname := outputName(inpFname)
	fmt.Println("Output file: ", outFname)
	closer, err := initLog(outFname)
	if err != nil {
		return nil, nil, err
	}

	InfoLogger.Println("Starting goCI...")
	appInfo()
	OutputLogger.Println("Input file content:")
	printOutputDelimiter()
	inpData, err := ReadFileLines(inpFname)
	if err != nil {
		ErrorLogger.Println("Cannot read input file: ", err)
	}
	for _, i := range inpData {
		OutputLogger.Println(i)
	}
	printOutputDelimiter()

	if cfg.NProcs > 0 {
		runtime.GOMAXPROCS(cfg.NProcs)
		OutputLogger.Print("Number of threads set to ", cfg.NProcs, ".")
	}
	if err := cfg.CheckInputFiles(); err != nil {
		ErrorLogger.Println(err)
		return nil, closer, err
	}
	return cfg, closer, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
