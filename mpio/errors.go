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

package mpio

import (
	"fmt"
)

//Error is the error type for the mpio package. It fulfills the same
//interface as multipole.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("mpio: %s", err.message)
	}
	return fmt.Sprintf("mpio: file %s: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//withFile returns err with the file name set, if err is an Error.
func withFile(err error, name, caller string) error {
	if e, ok := err.(Error); ok {
		e.filename = name
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}

const (
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format"
	ShortFile    = "Not enough lines in file"
)
