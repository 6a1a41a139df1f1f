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

// Opcode is a single instruction of a tokenized program.
type Opcode byte

// Instruction set. OpEnd marks the end of a program. No source character maps
// to it.
const (
	OpLeft Opcode = iota
	OpRight
	OpInc
	OpDec
	OpOut
	OpIn
	OpLoop
	OpRepeat
	OpEnd
)

var opcodes = [...]string{
	"<",
	">",
	"+",
	"-",
	".",
	",",
	"[",
	"]",
	"end",
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "???"
}

// Program is an instruction stream as produced by the tokenizer. Programs built
// by the tokenizer always end with a single OpEnd. The VM also stops at the end
// of the slice, so hand built programs may omit it.
type Program []Opcode

// Len returns the number of instructions in p, not counting the trailing
// OpEnd, if any.
func (p Program) Len() int {
	n := len(p)
	if n > 0 && p[n-1] == OpEnd {
		n--
	}
	return n
}
