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
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by Run, wrapped in an *Error. Use errors.Cause to get them
// back.
var (
	ErrPointerOverflow  = errors.New("data pointer moved past the end of the tape")
	ErrPointerUnderflow = errors.New("data pointer moved before the start of the tape")
	ErrStackOverflow    = errors.New("loop nesting too deep")
	ErrUnmatchedLoop    = errors.New("unmatched [")
	ErrUnmatchedRepeat  = errors.New("unmatched ]")
)

// Error is the error type returned by Run. PC is the position of the
// instruction that failed.
type Error struct {
	PC  int
	Op  Opcode
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s @pc=%d: %v", e.Op, e.PC, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Format implements fmt.Formatter so that %+v prints the stack trace of the
// underlying error, if any.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s @pc=%d: %+v", e.Op, e.PC, e.Err)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
