/*
 * xyz_test.go, part of gonci.
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
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestXYZRead(Te *testing.T) {
	mol, err := XYZRead("test/water_dimer.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 {
		Te.Fatalf("got %d atoms, want 6", mol.Len())
	}
	if mol.Title != "water dimer" {
		Te.Errorf("got title %q, want %q", mol.Title, "water dimer")
	}
	want := []string{"O", "H", "H", "O", "H", "H"}
	for i, s := range want {
		if mol.Atom(i).Symbol != s {
			Te.Errorf("atom %d: got symbol %q, want %q", i, mol.Atom(i).Symbol, s)
		}
	}
	d, err := mol.Distance(0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-0.9572) > 1e-4 {
		Te.Errorf("got O-H distance %v, want 0.9572", d)
	}
}

func TestXYZReadSymbolCase(Te *testing.T) {
	in := strings.NewReader("2\nupper-case symbols\nBR 0.0 0.0 0.0\nCL 2.5 0.0 0.0\n")
	mol, err := XYZReadFrom(in)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Symbol != "Br" || mol.Atom(1).Symbol != "Cl" {
		Te.Errorf("symbols not canonicalized: %q %q", mol.Atom(0).Symbol, mol.Atom(1).Symbol)
	}
}

func TestXYZReadCharges(Te *testing.T) {
	in := strings.NewReader("2\ncharged atoms\nNa 0.0 0.0 0.0 1.0\nCl 3.0 0.0 0.0 -1.0\n")
	mol, err := XYZReadFrom(in)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Charge != 1.0 || mol.Atom(1).Charge != -1.0 {
		Te.Errorf("got charges %v %v, want 1 -1", mol.Atom(0).Charge, mol.Atom(1).Charge)
	}
}

func TestXYZReadMalformed(Te *testing.T) {
	cases := []string{
		"",                                     //empty
		"notanumber\ntitle\n",                  //bad count
		"2\ntitle\nO 0.0 0.0 0.0\n",            //truncated
		"1\ntitle\nO 0.0 zero 0.0\n",           //bad coordinate
		"1\ntitle\nO 0.0 0.0\n",                //too few fields
		"1\ntitle\nO 0.0 0.0 0.0 0.0 extra\n",  //too many fields
		"1\ntitle\nNa 0.0 0.0 0.0 plusone\n",   //bad charge
	}
	for _, c := range cases {
		_, err := XYZReadFrom(strings.NewReader(c))
		if !IsFileFormatError(err) {
			Te.Errorf("input %q: got %v, want FileFormatError", c, err)
		}
	}
}

func TestXYZWriteRoundtrip(Te *testing.T) {
	mol := waterMol(Te)
	mol.Atom(0).Charge = -0.8
	name := filepath.Join(Te.TempDir(), "water.xyz")
	if err := XYZWrite(name, mol); err != nil {
		Te.Fatal(err)
	}
	back, err := XYZRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Len() != mol.Len() || back.Title != mol.Title {
		Te.Fatalf("roundtrip changed the molecule: %d atoms, title %q", back.Len(), back.Title)
	}
	for i := 0; i < mol.Len(); i++ {
		if back.Atom(i).Symbol != mol.Atom(i).Symbol {
			Te.Errorf("atom %d: symbol changed to %q", i, back.Atom(i).Symbol)
		}
		for c := 0; c < 3; c++ {
			if math.Abs(back.Coord(i).At(0, c)-mol.Coord(i).At(0, c)) > 1e-6 {
				Te.Errorf("atom %d coordinate %d drifted", i, c)
			}
		}
	}
	if math.Abs(back.Atom(0).Charge+0.8) > 1e-5 {
		Te.Errorf("got charge %v back, want -0.8", back.Atom(0).Charge)
	}
}

func TestXYZReadGzip(Te *testing.T) {
	raw, err := os.ReadFile("test/water_dimer.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "water_dimer.xyz.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		Te.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	mol, err := XYZRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 || mol.Title != "water dimer" {
		Te.Errorf("gzip read: got %d atoms, title %q", mol.Len(), mol.Title)
	}
}

func TestXYZReadZstd(Te *testing.T) {
	raw, err := os.ReadFile("test/water_dimer.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "water_dimer.xyz.zst")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := zw.Write(raw); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	mol, err := XYZRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 {
		Te.Errorf("zstd read: got %d atoms, want 6", mol.Len())
	}
}
