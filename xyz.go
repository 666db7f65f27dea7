/*
 * xyz.go, part of govqe.
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

package chem

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Molecule contains the element symbols and the cartesian coordinates (in A)
//of a molecule read from an XYZ block. A Molecule can only be obtained through the
//XYZ read functions, and it can't be changed after that, so all the
//accessors return copies.
type Molecule struct {
	symbols []string
	coords  [][3]float64
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.symbols)
}

//Symbol returns the element symbol of the ith atom. It panics if i is out of range.
func (M *Molecule) Symbol(i int) string {
	return M.symbols[i]
}

//Coord returns the coordinates of the ith atom. It panics if i is out of range.
func (M *Molecule) Coord(i int) [3]float64 {
	return M.coords[i]
}

//Symbols returns a copy of the element symbols, in file order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, len(M.symbols))
	copy(ret, M.symbols)
	return ret
}

//Coords returns a copy of the coordinates, in A, in file order.
func (M *Molecule) Coords() [][3]float64 {
	ret := make([][3]float64, len(M.coords))
	copy(ret, M.coords)
	return ret
}

//Bohr returns a copy of the coordinates converted to Bohr.
func (M *Molecule) Bohr() [][3]float64 {
	ret := make([][3]float64, len(M.coords))
	for i, c := range M.coords {
		ret[i] = [3]float64{c[0] * A2Bohr, c[1] * A2Bohr, c[2] * A2Bohr}
	}
	return ret
}

//Matrix returns a new Nx3 gonum matrix with the coordinates, one atom per row.
//It returns nil for a molecule with no atoms, as gonum doesn't allow empty matrices.
func (M *Molecule) Matrix() *mat.Dense {
	if M.Len() == 0 {
		return nil
	}
	data := make([]float64, 0, 3*M.Len())
	for _, c := range M.coords {
		data = append(data, c[0], c[1], c[2])
	}
	return mat.NewDense(M.Len(), 3, data)
}

//String returns a human-readable representation of the molecule, for debugging.
func (M *Molecule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Molecule(%d atoms)", M.Len())
	for i, s := range M.symbols {
		c := M.coords[i]
		fmt.Fprintf(&b, "\n  %-2s %10.5f %10.5f %10.5f", s, c[0], c[1], c[2])
	}
	return b.String()
}

//XYZStringRead parses an XYZ block given as a string. The first line
//must contain the number of atoms, the second is a comment, and the following ones
//must contain a symbol and 3 coordinates each. Any problem with the format gives
//a *FormatError, and no molecule.
//Blank lines among or after the atoms are ignored, but non-blank lines after
//the declared number of atoms are an error.
func XYZStringRead(xyz string) (*Molecule, error) {
	if strings.TrimSpace(xyz) == "" {
		return nil, newFormatError(EmptyInput, 0, "", "XYZStringRead")
	}
	mol, err := xyzBufIORead(bufio.NewReader(strings.NewReader(xyz)))
	if err != nil {
		return nil, errDecorate(err, "XYZStringRead")
	}
	return mol, nil
}

//XYZRead reads an XYZ block from r. Same rules as XYZStringRead apply.
func XYZRead(r io.Reader) (*Molecule, error) {
	//I'd rather read everything first, so the empty input case is obvious to detect.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	mol, err := XYZStringRead(string(data))
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//XYZFileRead reads an XYZ file. Files ending in .gz are decompressed with gzip, files
//ending in .zst or .zstd, with z-standard.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	var r io.Reader = xyzfile
	lname := strings.ToLower(xyzname)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		zs, err := zstd.NewReader(xyzfile)
		if err != nil {
			return nil, err
		}
		defer zs.Close()
		r = zs
	}
	mol, err := XYZRead(r)
	if err != nil {
		if ferr, ok := err.(*FormatError); ok {
			ferr.filename = xyzname
		}
		return nil, errDecorate(err, "XYZFileRead")
	}
	return mol, nil
}

//line is one line of the input with its 1-based number.
type line struct {
	text string
	num  int
}

//readLines splits the input in lines. A final newline doesn't start a new line,
//and "\r\n" endings are accepted.
//Lines have no length limit.
func readLines(xyz *bufio.Reader) ([]line, error) {
	lines := make([]line, 0, 16)
	for i := 1; ; i++ {
		text, err := xyz.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if text != "" {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			lines = append(lines, line{text, i})
		}
		if err == io.EOF {
			break
		}
	}
	return lines, nil
}

func xyzBufIORead(xyz *bufio.Reader) (*Molecule, error) {
	lines, err := readLines(xyz)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, newFormatError(EmptyInput, 0, "", "xyzBufIORead")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0].text))
	if err != nil || natoms < 0 {
		return nil, newFormatError(InvalidAtomCount, 1, fmt.Sprintf("%q", strings.TrimSpace(lines[0].text)), "xyzBufIORead")
	}
	if len(lines) < 2 {
		return nil, newFormatError(MissingComment, 2, "", "xyzBufIORead")
	}
	rest := lines[2:]
	//the declared count is not trusted to size anything.
	symbols := make([]string, 0, min(natoms, len(rest)))
	coords := make([][3]float64, 0, min(natoms, len(rest)))
	var i int
	for ; i < len(rest) && len(symbols) < natoms; i++ {
		fields := strings.Fields(rest[i].text)
		if len(fields) == 0 {
			continue
		}
		sym, c, err := parseAtomLine(fields, rest[i].num)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
		coords = append(coords, c)
	}
	if len(symbols) < natoms {
		return nil, newFormatError(AtomCountMismatch, 0, fmt.Sprintf("declared %d, found %d", natoms, len(symbols)), "xyzBufIORead")
	}
	for ; i < len(rest); i++ {
		if strings.TrimSpace(rest[i].text) != "" {
			return nil, newFormatError(ExtraTrailingData, rest[i].num, fmt.Sprintf("declared %d atoms", natoms), "xyzBufIORead")
		}
	}
	return &Molecule{symbols: symbols, coords: coords}, nil
}

//parseAtomLine takes the fields of an atom line and returns the symbol and coordinates.
//Columns after the 4th are ignored.
func parseAtomLine(fields []string, num int) (string, [3]float64, error) {
	var c [3]float64
	if len(fields) < 4 {
		return "", c, newFormatError(MalformedAtomLine, num, fmt.Sprintf("got %d fields", len(fields)), "parseAtomLine")
	}
	for j := range c {
		v, err := strconv.ParseFloat(fields[j+1], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return "", c, newFormatError(NonNumericCoord, num, fmt.Sprintf("%q", fields[j+1]), "parseAtomLine")
		}
		c[j] = v
	}
	return fields[0], c, nil
}

//XYZWrite writes mol to out in XYZ format. Newlines in comment are replaced by spaces
//so the format is not broken.
func XYZWrite(out io.Writer, mol *Molecule, comment string) error {
	comment = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(comment)
	if _, err := fmt.Fprintf(out, "%d\n%s\n", mol.Len(), comment); err != nil {
		return err
	}
	for i, s := range mol.symbols {
		c := mol.coords[i]
		if _, err := fmt.Fprintf(out, "%-2s %14.8f %14.8f %14.8f\n", s, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}

//XYZString returns mol in XYZ format, as a string.
func XYZString(mol *Molecule, comment string) string {
	var b strings.Builder
	XYZWrite(&b, mol, comment) //a strings.Builder never returns errors.
	return b.String()
}

//XYZFileWrite writes mol in an XYZ file with name xyzname which will
//be created for that. If the file exists it will be overwritten.
func XYZFileWrite(xyzname string, mol *Molecule, comment string) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	if err := XYZWrite(out, mol, comment); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
