/*
 * errors.go, part of gonci.
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

import "fmt"

//Error is the interface for errors in gonci. Decorate allows adding
//information when an error is passed up the calling stack. Each call
//returns the "decoration" slice of strings resulting from the current
//call. If passed an empty string, it just returns the current value,
//without adding the empty string to the slice. The decoration slice
//should contain a list of functions in the calling stack plus, for each
//function, any relevant information, in the format
//"FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//baseError holds the message and decoration common to all gonci error
//kinds.
type baseError struct {
	message string
	deco    []string
}

func (err *baseError) Error() string {
	return err.message
}

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice.
func (err *baseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileFormatError is returned when a structure file cannot be parsed.
type FileFormatError struct {
	baseError
}

//NewFileFormatError returns a FileFormatError with the given formatted
//message.
func NewFileFormatError(format string, a ...interface{}) *FileFormatError {
	return &FileFormatError{baseError{message: fmt.Sprintf(format, a...)}}
}

//IsFileFormatError reports whether err is a FileFormatError.
func IsFileFormatError(err error) bool {
	_, ok := err.(*FileFormatError)
	return ok
}

//UnknownElementError is returned when an element symbol is not present
//in the periodic table in use.
type UnknownElementError struct {
	baseError
	//Symbol is the offending element symbol, as found in the input.
	Symbol string
}

//NewUnknownElementError returns an UnknownElementError for the given
//symbol.
func NewUnknownElementError(symbol string) *UnknownElementError {
	return &UnknownElementError{
		baseError: baseError{message: fmt.Sprintf("unknown element symbol %q", symbol)},
		Symbol:    symbol,
	}
}

//IsUnknownElementError reports whether err is an UnknownElementError.
func IsUnknownElementError(err error) bool {
	_, ok := err.(*UnknownElementError)
	return ok
}

//GeometryError is returned by geometric measurements on degenerate
//input, such as an angle over coincident atoms or a dihedral over
//collinear ones.
type GeometryError struct {
	baseError
}

//NewGeometryError returns a GeometryError with the given formatted
//message.
func NewGeometryError(format string, a ...interface{}) *GeometryError {
	return &GeometryError{baseError{message: fmt.Sprintf(format, a...)}}
}

//IsGeometryError reports whether err is a GeometryError.
func IsGeometryError(err error) bool {
	_, ok := err.(*GeometryError)
	return ok
}

//StateError is returned when an operation is requested on state that has
//not been computed yet, or that was invalidated by a later operation
//(say, fragments requested after the bonds were re-detected).
type StateError struct {
	baseError
}

//NewStateError returns a StateError with the given formatted message.
func NewStateError(format string, a ...interface{}) *StateError {
	return &StateError{baseError{message: fmt.Sprintf(format, a...)}}
}

//IsStateError reports whether err is a StateError.
func IsStateError(err error) bool {
	_, ok := err.(*StateError)
	return ok
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}
