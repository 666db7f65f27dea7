/*
 * config.go, part of govqe.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package config collects the settings for a govqe run from defaults, an optional
//configuration file, GOVQE_ environment variables and command-line flags, in
//increasing order of priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmera/govqe/qm"
	"github.com/rmera/govqe/vqe"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Backend   string          `mapstructure:"backend" toml:"backend"`
	Workdir   string          `mapstructure:"workdir" toml:"workdir"`
	Timeout   time.Duration   `mapstructure:"timeout" toml:"timeout"`
	Plot      string          `mapstructure:"plot" toml:"plot,omitempty"`
	Summary   string          `mapstructure:"summary" toml:"summary,omitempty"`
	Verbose   bool            `mapstructure:"verbose" toml:"verbose"`
	Calc      CalcConfig      `mapstructure:"calc" toml:"calc"`
	Optimizer OptimizerConfig `mapstructure:"optimizer" toml:"optimizer"`
}

type CalcConfig struct {
	Basis           string `mapstructure:"basis" toml:"basis"`
	Charge          int    `mapstructure:"charge" toml:"charge"`
	Multiplicity    int    `mapstructure:"multiplicity" toml:"multiplicity"`
	Mapping         string `mapstructure:"mapping" toml:"mapping"`
	Method          string `mapstructure:"method" toml:"method"`
	ActiveElectrons int    `mapstructure:"active_electrons" toml:"active_electrons"`
	ActiveOrbitals  int    `mapstructure:"active_orbitals" toml:"active_orbitals"`
}

type OptimizerConfig struct {
	MaxIter  int     `mapstructure:"max_iter" toml:"max_iter"`
	ConvTol  float64 `mapstructure:"conv_tol" toml:"conv_tol"`
	StepSize float64 `mapstructure:"step_size" toml:"step_size"`
	FDStep   float64 `mapstructure:"fd_step" toml:"fd_step"`
}

//flagKeys maps the command-line flags to the configuration keys they set.
var flagKeys = map[string]string{
	"backend":      "backend",
	"workdir":      "workdir",
	"timeout":      "timeout",
	"plot":         "plot",
	"summary":      "summary",
	"verbose":      "verbose",
	"basis":        "calc.basis",
	"charge":       "calc.charge",
	"multiplicity": "calc.multiplicity",
	"mapping":      "calc.mapping",
	"active-elec":  "calc.active_electrons",
	"active-orb":   "calc.active_orbitals",
	"max-iter":     "optimizer.max_iter",
	"conv-tol":     "optimizer.conv_tol",
	"step-size":    "optimizer.step_size",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", "govqe-backend")
	v.SetDefault("workdir", ".")
	v.SetDefault("timeout", 0)
	v.SetDefault("plot", "")
	v.SetDefault("summary", "")
	v.SetDefault("verbose", false)
	v.SetDefault("calc.basis", "sto-3g")
	v.SetDefault("calc.charge", 0)
	v.SetDefault("calc.multiplicity", 1)
	v.SetDefault("calc.mapping", "jordan_wigner")
	v.SetDefault("calc.method", "dhf")
	v.SetDefault("calc.active_electrons", 0)
	v.SetDefault("calc.active_orbitals", 0)
	v.SetDefault("optimizer.max_iter", 100)
	v.SetDefault("optimizer.conv_tol", 1e-6)
	v.SetDefault("optimizer.step_size", 0.4)
	v.SetDefault("optimizer.fd_step", 1e-4)
}

//Load reads the configuration. If override is not empty, that file is read, and
//it must exist. Otherwise, govqe.toml is read from the current directory if present.
//Flags in flags with the names in flagKeys are bound to their keys. flags can be nil.
func Load(override string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GOVQE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if override != "" {
		v.SetConfigFile(override)
	} else {
		v.SetConfigName("govqe")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: binding flag %s: %w", name, err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

//Validate checks the values that can be checked without running anything.
func (C *Config) Validate() error {
	switch {
	case C.Backend == "":
		return fmt.Errorf("config: no backend command")
	case C.Timeout < 0:
		return fmt.Errorf("config: negative timeout %v", C.Timeout)
	case C.Calc.Multiplicity < 1:
		return fmt.Errorf("config: invalid multiplicity %d", C.Calc.Multiplicity)
	case C.Calc.ActiveElectrons < 0 || C.Calc.ActiveOrbitals < 0:
		return fmt.Errorf("config: negative active space")
	case C.Optimizer.MaxIter < 1:
		return fmt.Errorf("config: max_iter must be at least 1, not %d", C.Optimizer.MaxIter)
	case C.Optimizer.ConvTol <= 0 || C.Optimizer.StepSize <= 0 || C.Optimizer.FDStep <= 0:
		return fmt.Errorf("config: conv_tol, step_size and fd_step must be positive")
	}
	return nil
}

//QMCalc returns the Hamiltonian settings.
func (C *Config) QMCalc() *qm.Calc {
	return &qm.Calc{
		Basis:           C.Calc.Basis,
		Charge:          C.Calc.Charge,
		Multiplicity:    C.Calc.Multiplicity,
		Mapping:         C.Calc.Mapping,
		Method:          C.Calc.Method,
		ActiveElectrons: C.Calc.ActiveElectrons,
		ActiveOrbitals:  C.Calc.ActiveOrbitals,
	}
}

//GradientDescent returns the optimizer with the configured settings.
func (C *Config) GradientDescent() *vqe.GradientDescent {
	return &vqe.GradientDescent{StepSize: C.Optimizer.StepSize, FDStep: C.Optimizer.FDStep}
}
