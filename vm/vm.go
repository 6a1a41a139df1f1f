// This file is part of brainc - https://github.com/db47h/brainc
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"

	"github.com/db47h/brainc/internal/bfi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Default tape and call stack sizes.
const (
	DefaultTapeSize  = 5192
	DefaultStackSize = 1024
)

// Instance represents a VM instance: a tape of byte cells, a data pointer into
// it, and the call stack used to resolve loops.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	tape     []byte
	ptr      int
	stack    []int
	sp       int
	wrap     bool
	eof      EOFMode
	insCount int64
	input    io.Reader
	output   io.Writer
	log      *zap.Logger
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the number of cells in the tape. It will not erase the tape,
// but data may be lost if set to a smaller size. The default is 5192 cells.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		t := make([]byte, size)
		copy(t, i.tape)
		i.tape = t
		if i.ptr >= size {
			i.ptr = size - 1
		}
		return nil
	}
}

// StackSize sets the maximum loop nesting depth. The call stack is cleared.
// The default is 1024 entries.
func StackSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid stack size %d", size)
		}
		i.stack = make([]int, size)
		i.sp = 0
		return nil
	}
}

// WrapPointer enables or disables data pointer wrap around. When enabled,
// moving the pointer past one end of the tape moves it to the other end.
// When disabled, which is the default, Run fails with ErrPointerOverflow or
// ErrPointerUnderflow.
func WrapPointer(wrap bool) Option {
	return func(i *Instance) error { i.wrap = wrap; return nil }
}

// OnEOF sets the behavior of the input instruction when no more input is
// available. The default is EOFUnchanged.
func OnEOF(mode EOFMode) Option {
	return func(i *Instance) error {
		if mode < EOFUnchanged || mode > EOFMax {
			return errors.Errorf("invalid EOF mode %d", mode)
		}
		i.eof = mode
		return nil
	}
}

// Input pushes the given Reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output Writer. If w implements
//
//	Flush() error
//
// it will be flushed before reading input and at the end of every run.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// Logger sets the logger used to report run statistics and failures. Nothing
// is logged by default.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zap.NewNop()
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance with a zeroed tape and the data pointer on the
// first cell.
//
// Options will be set by calling SetOptions.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		log: zap.NewNop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.tape == nil {
		i.tape = make([]byte, DefaultTapeSize)
	}
	if i.stack == nil {
		i.stack = make([]int, DefaultStackSize)
	}
	return i, nil
}

// Reset clears the tape and the call stack and moves the data pointer back to
// the first cell.
func (i *Instance) Reset() {
	for n := range i.tape {
		i.tape[n] = 0
	}
	i.ptr = 0
	i.sp = 0
	i.PC = 0
}

// Tape returns the tape. Note that value changes will be reflected in the
// instance's tape.
func (i *Instance) Tape() []byte {
	return i.tape
}

// Pointer returns the position of the data pointer.
func (i *Instance) Pointer() int {
	return i.ptr
}

// Cell returns the value of the current cell.
func (i *Instance) Cell() byte {
	return i.tape[i.ptr]
}

// Stack returns the positions of the loops currently entered, innermost last.
func (i *Instance) Stack() []int {
	return i.stack[:i.sp]
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// State is a snapshot of an Instance's registers.
type State struct {
	PC           int
	Pointer      int
	Cell         byte
	Stack        []int
	Instructions int64
}

// State returns a snapshot of the instance's registers.
func (i *Instance) State() State {
	return State{
		PC:           i.PC,
		Pointer:      i.ptr,
		Cell:         i.tape[i.ptr],
		Stack:        append([]int(nil), i.Stack()...),
		Instructions: i.insCount,
	}
}

// used returns the length of the tape up to the last non-zero cell or the data
// pointer, whichever is further.
func (i *Instance) used() int {
	end := len(i.tape)
	for end > 0 && i.tape[end-1] == 0 {
		end--
	}
	if end <= i.ptr {
		end = i.ptr + 1
	}
	return end
}

// Dump dumps the data pointer, call stack and used part of the tape to the
// specified io.Writer. Fields are separated by \x1D and the dump starts with
// \x1C.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	ew.WriteInts([]int{i.ptr})
	ew.Write([]byte{'\x1D'})
	ew.WriteInts(i.Stack())
	ew.Write([]byte{'\x1D'})
	t := i.tape[:i.used()]
	cells := make([]int, len(t))
	for n, c := range t {
		cells[n] = int(c)
	}
	return ew.WriteInts(cells)
}
