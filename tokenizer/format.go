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

package tokenizer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/brainc/internal/bfi"
	"github.com/db47h/brainc/vm"
)

// Format writes p back as source code to the specified io.Writer, wrapping
// lines every 72 instructions. The end of program marker is not written.
func Format(w io.Writer, p vm.Program) error {
	ew := bfi.NewErrWriter(w)
	line := make([]byte, 0, 73)
	for _, op := range p {
		if op == vm.OpEnd {
			break
		}
		line = append(line, op.String()...)
		if len(line) == 72 {
			line = append(line, '\n')
			ew.Write(line)
			line = line[:0]
		}
	}
	if len(line) > 0 {
		ew.Write(append(line, '\n'))
	}
	return ew.Err
}

// match returns the position of the bracket matching the one at pc, or -1.
func match(p vm.Program, pc int) int {
	dir := 1
	if p[pc] == vm.OpRepeat {
		dir = -1
	}
	depth := 0
	for ; pc >= 0 && pc < len(p); pc += dir {
		switch p[pc] {
		case vm.OpLoop:
			depth += dir
		case vm.OpRepeat:
			depth -= dir
		case vm.OpEnd:
			return -1
		}
		if depth == 0 {
			return pc
		}
	}
	return -1
}

// Disassemble writes a disassembly of the instruction in p at position pc to
// the specified io.Writer and returns any write error. For brackets, the
// position of the matching bracket is written as well.
func Disassemble(p vm.Program, pc int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	op := p[pc]
	io.WriteString(ew, op.String())
	switch op {
	case vm.OpLoop, vm.OpRepeat:
		ew.Write([]byte{' '})
		if m := match(p, pc); m >= 0 {
			io.WriteString(ew, strconv.Itoa(m))
		} else {
			io.WriteString(ew, "???")
		}
	}
	return ew.Err
}

// DisassembleAll writes a disassembly of all instructions in p to the
// specified io.Writer, one per line. It will return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := range p {
		fmt.Fprintf(ew, "% 6d\t", pc)
		Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
