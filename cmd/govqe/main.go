/*
 * main.go, part of govqe.
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

//govqe obtains ground-state energies of small molecules with the variational
//quantum eigensolver. The Hamiltonians and circuits are handled by an external backend
//program (see the qm package).
//
//Usage:
//
//	govqe parse [--bohr] molecule.xyz
//	govqe run [flags] molecule.xyz
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	chem "github.com/rmera/govqe"
	"github.com/rmera/govqe/chemplot"
	"github.com/rmera/govqe/internal/config"
	"github.com/rmera/govqe/qm"
	"github.com/rmera/govqe/vqe"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		reportError(slog.Default(), err)
		os.Exit(1)
	}
}

//reportError logs err. Errors about an input file also
//log the file, its format and the stack of callers.
func reportError(logger *slog.Logger, err error) {
	var ferr chem.FileError
	if errors.As(err, &ferr) {
		logger.Error("govqe failed", "error", err, "file", ferr.FileName(), "format", ferr.Format(),
			"critical", ferr.Critical(), "trace", strings.Join(ferr.Decorate(""), " < "))
		return
	}
	logger.Error("govqe failed", "error", err)
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "govqe",
		Short:         "Variational quantum eigensolver for small molecules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "configuration file (default ./govqe.toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every optimization step")
	root.AddCommand(newParseCmd(out), newRunCmd(out))
	root.SetOut(out)
	return root
}

func newParseCmd(out io.Writer) *cobra.Command {
	var bohr bool
	cmd := &cobra.Command{
		Use:   "parse <file.xyz>",
		Short: "Read and check an XYZ file, and print the molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, err := chem.XYZFileRead(args[0])
			if err != nil {
				return err
			}
			return printMolecule(out, mol, bohr)
		},
	}
	cmd.Flags().BoolVar(&bohr, "bohr", false, "print the coordinates in Bohr instead of A")
	return cmd
}

func printMolecule(out io.Writer, mol *chem.Molecule, bohr bool) error {
	units := "A"
	coords := mol.Coords()
	if bohr {
		units = "Bohr"
		coords = mol.Bohr()
	}
	masses, err := mol.Masses()
	if err != nil {
		return err
	}
	electrons, err := mol.Electrons(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d atoms, %d electrons (neutral), mass %.3f u\n", mol.Len(), electrons, floats.Sum(masses))
	com, err := chem.CenterOfMass(mol, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Center of mass (A): %.6f %.6f %.6f\n", com[0], com[1], com[2])
	if mol.Len() == 2 {
		fmt.Fprintf(out, "Bond length (A): %.6f\n", chem.Distance(mol, 0, 1))
	}
	fmt.Fprintf(out, "Coordinates (%s):\n", units)
	for i, c := range coords {
		fmt.Fprintf(out, "%-2s %14.8f %14.8f %14.8f\n", mol.Symbol(i), c[0], c[1], c[2])
	}
	return nil
}

func newRunCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file.xyz>",
		Short: "Obtain the ground-state energy of a molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgfile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgfile, cmd.Flags())
			if err != nil {
				return err
			}
			setLogger(cfg.Verbose)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, out, args[0], cfg)
		},
	}
	f := cmd.Flags()
	f.String("backend", "govqe-backend", "command for the backend program")
	f.String("basis", "sto-3g", "basis set")
	f.Int("charge", 0, "total charge")
	f.Int("multiplicity", 1, "spin multiplicity")
	f.String("mapping", "jordan_wigner", "fermion-to-qubit mapping")
	f.Int("active-elec", 0, "active electrons (0 for all)")
	f.Int("active-orb", 0, "active orbitals (0 for all)")
	f.Int("max-iter", 100, "maximum number of optimization steps")
	f.Float64("conv-tol", 1e-6, "convergence threshold for the energy change, in Hartree")
	f.Float64("step-size", 0.4, "gradient descent step size")
	f.String("plot", "", "write the energy trace to this PNG file (without extension)")
	f.String("summary", "", "write a TOML summary of the run to this file")
	f.String("workdir", ".", "directory for the backend input and output files")
	f.Duration("timeout", 0, "maximum time for each backend call (0 for none)")
	return cmd
}

func setLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

//jobName returns a unique name for the backend files of a run on the file xyzname.
func jobName(xyzname string) string {
	base := filepath.Base(xyzname)
	for _, ext := range []string{".gz", ".zst", ".zstd", ".xyz"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "-" + uuid.NewString()[:8]
}

func run(ctx context.Context, out io.Writer, xyzname string, cfg *config.Config) error {
	mol, err := chem.XYZFileRead(xyzname)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Workdir, 0755); err != nil {
		return err
	}
	h := qm.NewExtHandle()
	h.SetCommand(cfg.Backend)
	h.SetDir(cfg.Workdir)
	h.SetTimeout(cfg.Timeout)
	job := jobName(xyzname)
	h.SetName(job)
	R := vqe.NewRunner(h, h)
	R.Calc = cfg.QMCalc()
	R.Optimizer = cfg.GradientDescent()
	R.MaxIterations = cfg.Optimizer.MaxIter
	R.ConvTol = cfg.Optimizer.ConvTol
	R.Logger = slog.Default().With("job", job)
	start := time.Now()
	res, err := R.Run(ctx, mol, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Energy: %.8f Ha\n", res.Energy)
	if !res.Converged {
		fmt.Fprintf(out, "Not converged after %d iterations\n", res.Iterations)
	}
	if cfg.Plot != "" {
		if err := chemplot.TracePlot(res.Energies, nil, "VQE "+filepath.Base(xyzname), cfg.Plot); err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
	}
	if cfg.Summary != "" {
		s := newSummary(xyzname, job, cfg, res, h.Calls(), time.Since(start))
		if err := s.WriteFile(cfg.Summary); err != nil {
			return fmt.Errorf("writing the summary: %w", err)
		}
	}
	return nil
}
