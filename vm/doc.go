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

// Package vm implements a virtual machine for the eight instruction tape
// language commonly known as BrainF.
//
// A VM Instance owns a tape of byte cells, a data pointer into the tape, and a
// call stack used to resolve loops. Programs are produced by the tokenizer
// package and executed with Instance.Run.
//
// Instructions:
//
//	opcode	char	description
//	------	----	--------------------------------------------------------------
//	0	<	move the data pointer one cell toward the start of the tape
//	1	>	move the data pointer one cell toward the end of the tape
//	2	+	increment the current cell, wrapping from 255 to 0
//	3	-	decrement the current cell, wrapping from 0 to 255
//	4	.	write the current cell to the output
//	5	,	read one byte from the input into the current cell
//	6	[	if the current cell is 0, jump past the matching ]
//	7	]	if the current cell is not 0, jump back to the matching [
//	8		end of program
//
// Loops are not resolved ahead of time. A [ on a zero cell scans forward,
// counting nested brackets, until it finds its match. A [ on a non-zero cell
// pushes its own position on the call stack; the matching ] jumps back there
// while the cell is non-zero, and pops it when the loop exits.
//
// Malformed programs never write outside of the tape. Moving the data pointer
// off the tape, nesting loops deeper than the call stack, or unbalanced
// brackets stop the VM with an *Error whose cause is one of the Err* variables
// of this package. Pointer wrap around can be enabled
// with the WrapPointer option.
//
// Note that an unbalanced ] is only detected when it is executed, and an
// unbalanced [ only when it is skipped. The tokenizer does not validate
// programs.
package vm
