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

// The brainc command line tool runs BrainF programs using the package
// github.com/db47h/brainc/vm.
//
// Usage:
//
//	brainc [flags] [file]
//
// With a file argument, brainc runs the program in file and exits. The exit
// status is 1 if the file cannot be read or if the program fails. Without
// argument, brainc reads programs from standard input, one line at a time, and
// runs each line as soon as it is entered. The tape and data pointer are
// preserved from one line to the next. Lines are limited to 1024 bytes. When
// standard input is a terminal, lines can be edited and recalled from
// history. The session ends on end of input (CTRL-D).
//
// Flags:
//
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump pointer, loop stack and tape upon exit
//	-eof value
//		  cell value on end of input: unchanged, zero or max (default unchanged)
//	-raw
//		  read program input one character at a time from the terminal
//	-stack int
//		  maximum loop nesting depth (default 1024)
//	-tape int
//		  tape size in cells (default 5192)
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//	-wrap
//		  wrap the data pointer around the tape ends
//
// -config: settings file. Flags given on the command line take precedence over
// the file. Example:
//
//	[tape]
//	size = 30000
//	wrap = false
//
//	[stack]
//	size = 1024
//
//	[input]
//	eof = "zero"
//	raw = false
//
// -debug: enables debug logging on stderr and prints a full stack trace as well
// as the VM registers should the program fail.
//
// -dump: dumps the data pointer, the loop stack and the used part of the tape
// to stdout, as space separated decimal numbers. The dump starts with \x1C and
// fields are separated by \x1D.
//
// -with: the specified file is fed to the program as input. If specified
// multiple times, files will be fed to the program in order of appearance on
// the command line, then standard input.
//
// -raw: by default, terminal input is line buffered, so that a program waiting
// on input only sees it once return is pressed. With -raw, the terminal is
// switched to non-canonical mode while the program runs. Only in file mode.
//
// The data pointer starts at the first cell. > moves it toward the end of the
// tape, and < toward the start. Moving past either end is an error unless -wrap
// is set.
package main
