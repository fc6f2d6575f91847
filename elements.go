/*
 * elements.go, part of gonci.
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

import "strings"

//ElementData holds the per-element constants used by the bond and
//interaction searches. Radii are in Angstroms and masses in atomic
//mass units.
type ElementData struct {
	Symbol         string
	Name           string
	Number         int
	Group          int
	Mass           float64
	CovalentRadius float64 //single-bond radius
	VdwRadius      float64
}

//Element data for the common "bio-elements" plus the halogens and
//chalcogens involved in sigma-hole interactions.
//Covalent radii (single bond) from Cordero et al., 2008
//(DOI:10.1039/B801115J). Van der Waals radii from Bondi-derived
//compilations. Masses in atomic mass units.
var defaultElements = map[string]*ElementData{
	"H":  {"H", "Hydrogen", 1, 1, 1.008, 0.31, 1.2},
	"B":  {"B", "Boron", 5, 13, 10.81, 0.84, 1.92},
	"C":  {"C", "Carbon", 6, 14, 12.011, 0.76, 1.7},
	"N":  {"N", "Nitrogen", 7, 15, 14.007, 0.71, 1.55},
	"O":  {"O", "Oxygen", 8, 16, 15.999, 0.66, 1.52},
	"F":  {"F", "Fluorine", 9, 17, 18.998403163, 0.57, 1.47},
	"Na": {"Na", "Sodium", 11, 1, 22.98976928, 1.66, 2.27},
	"Mg": {"Mg", "Magnesium", 12, 2, 24.305, 1.41, 1.73},
	"Si": {"Si", "Silicon", 14, 14, 28.085, 1.11, 2.1},
	"P":  {"P", "Phosphorus", 15, 15, 30.973761998, 1.07, 1.8},
	"S":  {"S", "Sulfur", 16, 16, 32.06, 1.05, 1.8},
	"Cl": {"Cl", "Chlorine", 17, 17, 35.45, 1.02, 1.75},
	"K":  {"K", "Potassium", 19, 1, 39.0983, 2.03, 2.75},
	"Ca": {"Ca", "Calcium", 20, 2, 40.078, 1.76, 2.31},
	"Fe": {"Fe", "Iron", 26, 8, 55.845, 1.42, 2.0},
	"Cu": {"Cu", "Copper", 29, 11, 63.546, 1.32, 1.4},
	"Zn": {"Zn", "Zinc", 30, 12, 65.38, 1.22, 1.39},
	"Se": {"Se", "Selenium", 34, 16, 78.971, 1.2, 1.9},
	"Br": {"Br", "Bromine", 35, 17, 79.904, 1.2, 1.85},
	"Te": {"Te", "Tellurium", 52, 16, 127.6, 1.38, 2.06},
	"I":  {"I", "Iodine", 53, 17, 126.90447, 1.39, 1.98},
}

//PeriodicTable resolves element symbols into their physical constants.
//A table can be extended with Add to cover symbols missing from the
//default set.
type PeriodicTable struct {
	elements map[string]*ElementData
}

//DefaultPeriodicTable returns a table with the built-in element set.
//The returned table is independent of any other, so extending it does
//not affect other tables.
func DefaultPeriodicTable() *PeriodicTable {
	els := make(map[string]*ElementData, len(defaultElements))
	for k, v := range defaultElements {
		e := *v
		els[k] = &e
	}
	return &PeriodicTable{elements: els}
}

//CanonicalSymbol returns the symbol with its conventional
//capitalization, i.e. "BR" and "br" both become "Br". It does not check
//that the symbol names a known element.
func CanonicalSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//Lookup returns the data for the given element symbol, which is
//canonicalized first. It returns an UnknownElementError if the symbol
//is not in the table.
func (T *PeriodicTable) Lookup(symbol string) (*ElementData, error) {
	e, ok := T.elements[CanonicalSymbol(symbol)]
	if !ok {
		return nil, NewUnknownElementError(symbol)
	}
	return e, nil
}

//Has reports whether the table knows the given symbol.
func (T *PeriodicTable) Has(symbol string) bool {
	_, ok := T.elements[CanonicalSymbol(symbol)]
	return ok
}

//Add puts the given element in the table, replacing any previous entry
//for the same symbol. The symbol is canonicalized.
func (T *PeriodicTable) Add(e ElementData) {
	e.Symbol = CanonicalSymbol(e.Symbol)
	T.elements[e.Symbol] = &e
}

//CovalentRadius returns the single-bond covalent radius, in Angstroms,
//for the given symbol.
func (T *PeriodicTable) CovalentRadius(symbol string) (float64, error) {
	e, err := T.Lookup(symbol)
	if err != nil {
		return 0, errDecorate(err, "CovalentRadius")
	}
	return e.CovalentRadius, nil
}

//VdwRadius returns the van der Waals radius, in Angstroms, for the
//given symbol.
func (T *PeriodicTable) VdwRadius(symbol string) (float64, error) {
	e, err := T.Lookup(symbol)
	if err != nil {
		return 0, errDecorate(err, "VdwRadius")
	}
	return e.VdwRadius, nil
}

//Mass returns the atomic mass, in atomic mass units, for the given
//symbol.
func (T *PeriodicTable) Mass(symbol string) (float64, error) {
	e, err := T.Lookup(symbol)
	if err != nil {
		return 0, errDecorate(err, "Mass")
	}
	return e.Mass, nil
}
