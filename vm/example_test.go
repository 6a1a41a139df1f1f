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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/brainc/tokenizer"
	"github.com/db47h/brainc/vm"
	"github.com/pkg/errors"
)

// Shows how to setup a VM and run a program.
func ExampleInstance_Run() {
	p := tokenizer.TokenizeString(`
		++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
		>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`)

	i, err := vm.New(vm.Output(os.Stdout))
	if err == nil {
		err = i.Run(p)
	}
	if err != nil {
		panic(err)
	}

	// Output:
	// Hello World!
}

// Successive runs on the same instance share the tape.
func ExampleInstance_Run_interactive() {
	i, _ := vm.New(vm.Input(strings.NewReader("A")), vm.Output(os.Stdout))
	for _, line := range []string{",", "+", "."} {
		if err := i.Run(tokenizer.TokenizeString(line)); err != nil {
			panic(err)
		}
	}
	fmt.Println()
	// Output:
	// B
}

// Shows how to check for specific errors.
func ExampleError() {
	i, _ := vm.New(vm.TapeSize(4))
	err := i.Run(tokenizer.TokenizeString("+[>+]"))
	if errors.Cause(err) == vm.ErrPointerOverflow {
		fmt.Printf("tape too small: %v\n", err)
	}
	// Output:
	// tape too small: > @pc=2: data pointer moved past the end of the tape
}
