/*
 * xyz.go, part of gonci.
 *
 * Copyright 2025 The gonci developers
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

package gonci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"gonci/v3"
)

//XYZRead reads an XYZ-formatted file and returns the corresponding
//molecule. Files compressed with gzip or zstd are decompressed
//transparently, based on the ".gz"/".zst"/".zstd" extension. Parse
//failures yield a FileFormatError.
func XYZRead(filename string) (*Molecule, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, NewFileFormatError("XYZRead: %s: not a gzip stream: %v", filename, err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, NewFileFormatError("XYZRead: %s: not a zstd stream: %v", filename, err)
		}
		defer zr.Close()
		r = zr
	}
	mol, err := xyzReadRaw(r)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+filename)
	}
	return mol, nil
}

//XYZReadFrom reads one XYZ-formatted structure from r.
func XYZReadFrom(r io.Reader) (*Molecule, error) {
	mol, err := xyzReadRaw(r)
	if err != nil {
		return nil, errDecorate(err, "XYZReadFrom")
	}
	return mol, nil
}

func xyzReadRaw(r io.Reader) (*Molecule, error) {
	scan := bufio.NewScanner(r)
	if !scan.Scan() {
		return nil, NewFileFormatError("empty input")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scan.Text()))
	if err != nil || natoms <= 0 {
		return nil, NewFileFormatError("bad atom count line %q", strings.TrimSpace(scan.Text()))
	}
	if !scan.Scan() {
		return nil, NewFileFormatError("missing title line")
	}
	title := strings.TrimSpace(scan.Text())
	atoms := make([]*Atom, 0, natoms)
	data := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		if !scan.Scan() {
			return nil, NewFileFormatError("declared %d atoms but found only %d", natoms, i)
		}
		line := strings.TrimSpace(scan.Text())
		fields := strings.Fields(line)
		if len(fields) != 4 && len(fields) != 5 {
			return nil, NewFileFormatError("atom line %d: %q: want 4 or 5 fields, got %d", i+1, line, len(fields))
		}
		at := &Atom{Symbol: CanonicalSymbol(fields[0])}
		for c := 1; c <= 3; c++ {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, NewFileFormatError("atom line %d: bad coordinate %q", i+1, fields[c])
			}
			data = append(data, v)
		}
		if len(fields) == 5 {
			q, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, NewFileFormatError("atom line %d: bad charge %q", i+1, fields[4])
			}
			at.Charge = q
		}
		atoms = append(atoms, at)
	}
	if err := scan.Err(); err != nil {
		return nil, NewFileFormatError("read failed: %v", err)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "xyzReadRaw")
	}
	return NewMolecule(title, atoms, coords)
}

//XYZWrite writes the molecule to filename in XYZ format. Atoms with a
//non-zero charge get it as a fifth column.
func XYZWrite(filename string, mol *Molecule) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return XYZWriteTo(f, mol)
}

//XYZWriteTo writes the molecule to w in XYZ format.
func XYZWriteTo(w io.Writer, mol *Molecule) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", mol.Len(), mol.Title)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		c := mol.Coord(i)
		if at.Charge != 0 {
			fmt.Fprintf(bw, "%-3s %12.6f %12.6f %12.6f %10.5f\n", at.Symbol, c.At(0, 0), c.At(0, 1), c.At(0, 2), at.Charge)
		} else {
			fmt.Fprintf(bw, "%-3s %12.6f %12.6f %12.6f\n", at.Symbol, c.At(0, 0), c.At(0, 1), c.At(0, 2))
		}
	}
	return bw.Flush()
}
