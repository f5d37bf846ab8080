// config.go --  This file is part of goCI project.
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

// Package config reads the run input of goCI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"example.com/goci/internal/bitstr"
)

// EnvNProcs overrides Config.NProcs when set.
const EnvNProcs = "GOCI_NPROCS"

var (
	ErrMissingInput = errors.New("config: input file missing")
	ErrInvalid      = errors.New("config: invalid value")
)

// General describes the wavefunction.
type General struct {
	Electrons int `yaml:"electrons"` // alpha + beta, frozen core included
	Orbitals  int `yaml:"orbitals"`  // frozen core included
	NFrozen   int `yaml:"nfrozen"`   // frozen core orbitals
	NDocc     int `yaml:"ndocc"`     // doubly occupied orbitals
	NActive   int `yaml:"nactive"`   // CAS orbitals, the width of packed words
	XLevel    int `yaml:"xlevel"`    // excitation level of the expansion
	NFrzVirt  int `yaml:"nfrzvirt"`  // frozen virtual orbitals
	PrintLvl  int `yaml:"printlvl"`
	MS2       int `yaml:"ms2"` // alpha minus beta electrons
}

// Files names the inputs. Relative paths are taken from the directory of
// the config file.
type Files struct {
	MOInts  string `yaml:"moints"`
	DetList string `yaml:"detlist"`
}

type Config struct {
	General General `yaml:"general"`
	Files   Files   `yaml:"files"`
	NProcs  int     `yaml:"nprocs"`
	Roots   int     `yaml:"roots"`
}

// Load reads and checks a YAML config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	applyDefaults(&cfg)
	cfg.Files.resolve(filepath.Dir(path))
	if err := cfg.General.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.General.XLevel == 0 {
		cfg.General.XLevel = 2
	}
	if cfg.Files.MOInts == "" {
		cfg.Files.MOInts = "FCIDUMP"
	}
	if cfg.Files.DetList == "" {
		cfg.Files.DetList = "det.list"
	}
	if cfg.Roots == 0 {
		cfg.Roots = 1
	}
}

func (f *Files) resolve(dir string) {
	for _, p := range []*string{&f.MOInts, &f.DetList} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// LoadEnv reads .env style files into the environment. Missing files are
// not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() error {
	v, ok := os.LookupEnv(EnvNProcs)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("%s=%q: %w", EnvNProcs, v, ErrInvalid)
	}
	c.NProcs = n
	return nil
}

// AlphaBeta returns the alpha and beta electrons outside the frozen core.
func (g General) AlphaBeta() (aelec, belec int) {
	return (g.Electrons+g.MS2)/2 - g.NFrozen, (g.Electrons-g.MS2)/2 - g.NFrozen
}

// CorrelatedOrbitals is the number of orbitals left after freezing.
func (g General) CorrelatedOrbitals() int {
	return g.Orbitals - g.NFrozen - g.NFrzVirt
}

func (g General) Validate() error {
	switch {
	case g.Electrons <= 0:
		return fmt.Errorf("electrons=%d: %w", g.Electrons, ErrInvalid)
	case g.Orbitals <= 0:
		return fmt.Errorf("orbitals=%d: %w", g.Orbitals, ErrInvalid)
	case g.NActive <= 0 || g.NActive > bitstr.MaxOrbitals:
		return fmt.Errorf("nactive=%d, want 1..%d: %w", g.NActive, bitstr.MaxOrbitals, ErrInvalid)
	case (g.Electrons+g.MS2)%2 != 0:
		return fmt.Errorf("electrons=%d and ms2=%d differ in parity: %w", g.Electrons, g.MS2, ErrInvalid)
	case g.NActive > g.CorrelatedOrbitals():
		return fmt.Errorf("nactive=%d exceeds %d correlated orbitals: %w", g.NActive, g.CorrelatedOrbitals(), ErrInvalid)
	case g.XLevel < 0:
		return fmt.Errorf("xlevel=%d: %w", g.XLevel, ErrInvalid)
	}
	if a, b := g.AlphaBeta(); a < 0 || b < 0 {
		return fmt.Errorf("%d/%d alpha/beta electrons after freezing: %w", a, b, ErrInvalid)
	}
	return nil
}

// CheckInputFiles returns ErrMissingInput for the first input file that
// does not exist.
func (c *Config) CheckInputFiles() error {
	for _, f := range []string{c.Files.MOInts, c.Files.DetList} {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("%s: %w", f, ErrMissingInput)
		}
	}
	return nil
}
