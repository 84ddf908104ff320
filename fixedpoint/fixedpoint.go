/*
 * fixedpoint.go, part of gomultipole
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

//Package fixedpoint implements the Q32.32 fixed-point convention used to accumulate
//per-particle forces, torques and fields, and a padded, component-major buffer that
//can be added to concurrently from any number of goroutines.
//
//Integer addition is associative and commutative, so the final content of a Buffer
//does not depend on the order in which contributions arrive: accumulation is
//bit-for-bit reproducible regardless of how the work was partitioned.
package fixedpoint

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// Q32.32 constants
const (
	Shift = 32
	Scale = 1 << Shift
)

//FromFloat encodes f in Q32.32. The conversion truncates towards zero.
func FromFloat(f float64) int64 { return int64(f * Scale) }

//ToFloat decodes a Q32.32 value.
func ToFloat(f int64) float64 { return float64(f) / Scale }

//DefaultPadding is the block size the number of atoms is rounded up to
//when no explicit padded size is requested.
const DefaultPadding = 32

//PaddedLen returns n rounded up to the next multiple of block.
func PaddedLen(n, block int) int {
	if block <= 1 {
		return n
	}
	return ((n + block - 1) / block) * block
}

//Buffer holds a Q32.32 3-vector per particle. The layout is component-major:
//component k of particle i lives at k*Padded()+i.
type Buffer struct {
	natoms int
	padded int
	data   []int64
}

//NewBuffer returns a zeroed buffer for natoms particles, padded to
//padded entries per component. If padded is smaller than natoms,
//DefaultPadding is used to compute it.
func NewBuffer(natoms, padded int) *Buffer {
	if natoms < 0 {
		panic(ErrNegativeLen)
	}
	if padded < natoms {
		padded = PaddedLen(natoms, DefaultPadding)
	}
	return &Buffer{natoms: natoms, padded: padded, data: make([]int64, 3*padded)}
}

//WrapBuffer builds a Buffer on top of raw, externally owned data
//with the component-major layout. len(raw) must be 3*padded.
func WrapBuffer(raw []int64, natoms, padded int) (*Buffer, error) {
	if padded < natoms || len(raw) != 3*padded {
		return nil, Error{fmt.Sprintf("fixedpoint: raw buffer of len %d can't hold %d atoms padded to %d", len(raw), natoms, padded), []string{"WrapBuffer"}, true}
	}
	return &Buffer{natoms: natoms, padded: padded, data: raw}, nil
}

//Len returns the number of particles in the buffer.
func (B *Buffer) Len() int { return B.natoms }

//Padded returns the stride between components.
func (B *Buffer) Padded() int { return B.padded }

//Raw returns the underlying data. Concurrent readers must use atomic loads.
func (B *Buffer) Raw() []int64 { return B.data }

func (B *Buffer) check(i int) {
	if i < 0 || i >= B.natoms {
		panic(ErrIndexOutOfRange)
	}
}

//Add atomically adds the encoded v to the vector of particle i.
//Safe for unrestricted concurrent use.
func (B *Buffer) Add(i int, v r3.Vec) {
	B.check(i)
	atomic.AddInt64(&B.data[i], FromFloat(v.X))
	atomic.AddInt64(&B.data[i+B.padded], FromFloat(v.Y))
	atomic.AddInt64(&B.data[i+2*B.padded], FromFloat(v.Z))
}

//AddRaw atomically adds already-encoded components to particle i.
func (B *Buffer) AddRaw(i int, x, y, z int64) {
	B.check(i)
	atomic.AddInt64(&B.data[i], x)
	atomic.AddInt64(&B.data[i+B.padded], y)
	atomic.AddInt64(&B.data[i+2*B.padded], z)
}

//Set encodes and stores v for particle i, replacing the previous value.
//Only meant to fill inputs, never while other goroutines accumulate.
func (B *Buffer) Set(i int, v r3.Vec) {
	B.check(i)
	atomic.StoreInt64(&B.data[i], FromFloat(v.X))
	atomic.StoreInt64(&B.data[i+B.padded], FromFloat(v.Y))
	atomic.StoreInt64(&B.data[i+2*B.padded], FromFloat(v.Z))
}

//RawVec returns the encoded components of particle i.
func (B *Buffer) RawVec(i int) (x, y, z int64) {
	B.check(i)
	return atomic.LoadInt64(&B.data[i]), atomic.LoadInt64(&B.data[i+B.padded]), atomic.LoadInt64(&B.data[i+2*B.padded])
}

//Vec returns the decoded vector of particle i.
func (B *Buffer) Vec(i int) r3.Vec {
	x, y, z := B.RawVec(i)
	return r3.Vec{X: ToFloat(x), Y: ToFloat(y), Z: ToFloat(z)}
}

//Reset zeroes the whole buffer, padding included.
func (B *Buffer) Reset() {
	for i := range B.data {
		atomic.StoreInt64(&B.data[i], 0)
	}
}

//Sum returns the decoded sum over all particles. The sum is done in
//fixed point, so it is exactly zero when contributions cancel exactly.
func (B *Buffer) Sum() r3.Vec {
	var x, y, z int64
	for i := 0; i < B.natoms; i++ {
		a, b, c := B.RawVec(i)
		x += a
		y += b
		z += c
	}
	return r3.Vec{X: ToFloat(x), Y: ToFloat(y), Z: ToFloat(z)}
}

//MaxAbs returns the largest decoded absolute component in the buffer.
func (B *Buffer) MaxAbs() float64 {
	var m float64
	for i := 0; i < B.natoms; i++ {
		v := B.Vec(i)
		m = math.Max(m, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
	}
	return m
}

//Error is returned by the buffer constructors that take user data.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("goMultipole/fixedpoint: index out of range")
	ErrNegativeLen     = PanicMsg("goMultipole/fixedpoint: negative number of atoms")
)
