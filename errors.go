/*
 * errors.go, part of gomultipole
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package multipole

import (
	"fmt"
	"strings"
)

//Error is the error type returned by the constructors and checks
//in this package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	//the outermost caller goes first
	callers := make([]string, 0, len(err.deco))
	for i := len(err.deco) - 1; i >= 0; i-- {
		callers = append(callers, err.deco[i])
	}
	return fmt.Sprintf("%s: %s", strings.Join(callers, ": "), err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

func newError(caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

//errDecorate adds the caller to err if err is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrLabMomentsShape = PanicMsg("goMultipole: lab moments storage doesn't match the number of particles")
	ErrBufferShape     = PanicMsg("goMultipole: fixed-point buffer doesn't match the number of particles")
	ErrInducedShape    = PanicMsg("goMultipole: field, polarizabilities and dipoles have different lengths")
)
