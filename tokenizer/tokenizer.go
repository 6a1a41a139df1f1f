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
	"bufio"
	"io"
	"os"

	"github.com/db47h/brainc/vm"
	"github.com/pkg/errors"
)

var classes [256]vm.Opcode

func init() {
	for c := range classes {
		classes[c] = vm.OpEnd
	}
	for _, op := range []vm.Opcode{vm.OpLeft, vm.OpRight, vm.OpInc, vm.OpDec, vm.OpOut, vm.OpIn, vm.OpLoop, vm.OpRepeat} {
		classes[op.String()[0]] = op
	}
}

// Classify returns the opcode for the source character c. Characters that are
// not instructions classify as vm.OpEnd.
func Classify(c byte) vm.Opcode {
	return classes[c]
}

func appendProgram(p vm.Program, src []byte) vm.Program {
	for _, c := range src {
		if op := classes[c]; op != vm.OpEnd {
			p = append(p, op)
		}
	}
	return p
}

// TokenizeBytes returns the program for the source code in src.
func TokenizeBytes(src []byte) vm.Program {
	return append(appendProgram(make(vm.Program, 0, len(src)+1), src), vm.OpEnd)
}

// TokenizeString returns the program for the source code in src.
func TokenizeString(src string) vm.Program {
	return TokenizeBytes([]byte(src))
}

// Tokenize reads source code from r until EOF and returns the corresponding
// program. The only possible errors are read errors.
func Tokenize(r io.Reader) (vm.Program, error) {
	var (
		p   vm.Program
		buf [4096]byte
	)
	for {
		n, err := r.Read(buf[:])
		p = appendProgram(p, buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read failed")
		}
	}
	return append(p, vm.OpEnd), nil
}

// TokenizeFile returns the program for the source file fileName.
func TokenizeFile(fileName string) (vm.Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	p, err := Tokenize(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", fileName)
	}
	return p, nil
}
