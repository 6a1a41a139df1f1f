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
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/brainc/tokenizer"
	"github.com/db47h/brainc/vm"
)

// T is a sparse tape: cell index -> expected value.
type T map[int]byte

func setup(t testing.TB, opts ...vm.Option) *vm.Instance {
	i, err := vm.New(opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, code string, ptr int, tape T) {
	err := i.Run(tokenizer.TokenizeString(code))
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return
	}
	if ptr != i.Pointer() {
		t.Errorf("%s: Bad pointer %d != %d", testName, i.Pointer(), ptr)
	}
	for pos, v := range tape {
		if c := i.Tape()[pos]; c != v {
			t.Errorf("%s: Tape error at %d: expected %d, got %d", testName, pos, v, c)
		}
	}
	if s := i.Stack(); len(s) != 0 {
		t.Errorf("%s: Call stack not empty: %v", testName, s)
	}
}

var tests = [...]struct {
	name  string
	code  string
	input string
	out   string
	ptr   int
	tape  T
}{
	{"empty", "", "", "", 0, T{0: 0}},
	{"comments", "no instructions here", "", "", 0, T{0: 0}},
	{"right", ">>>", "", "", 3, nil},
	{"left", ">>><", "", "", 2, nil},
	{"inc", "+++", "", "", 0, T{0: 3}},
	{"dec", "+++--", "", "", 0, T{0: 1}},
	{"inc dec", "+-", "", "", 0, T{0: 0}},
	{"dec inc", "-+", "", "", 0, T{0: 0}},
	{"dec wrap", "-", "", "", 0, T{0: 255}},
	{"inc wrap", strings.Repeat("+", 256), "", "", 0, T{0: 0}},
	{"out", strings.Repeat("+", 33) + ".", "", "!", 0, T{0: 33}},
	{"echo", ",.", "A", "A", 0, T{0: 'A'}},
	{"skip", "[.]", "", "", 0, T{0: 0}},
	{"skip nested", "[[+]+]+", "", "", 0, T{0: 1}},
	{"skip then run", "[>+<-]>+[>++<-]", "", "", 1, T{0: 0, 1: 0, 2: 2}},
	{"clear", "+++++[-]", "", "", 0, T{0: 0}},
	{"move", "+++[>+<-]", "", "", 0, T{0: 0, 1: 3}},
	{"multiply", "++++++++[>++++++++<-]>.", "", "@", 1, T{0: 0, 1: 64}},
	{"nested", "++[>++[>++<-]<-]>>.", "", "\x08", 2, T{0: 0, 1: 0, 2: 8}},
	{"deep nest", "+[>+[>+[>+[-]<-]<-]<-]", "", "", 0, T{0: 0, 1: 0, 2: 0, 3: 0}},
	{"sequential loops", "++[-]+++[-]+", "", "", 0, T{0: 1}},
	{"copy input", ",[.,]", "brainc\x00", "brainc", 0, T{0: 0}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		var out bytes.Buffer
		i := setup(t, vm.Input(strings.NewReader(test.input)), vm.Output(&out))
		check(t, test.name, i, test.code, test.ptr, test.tape)
		if got := out.String(); got != test.out {
			t.Errorf("%s: Output error: expected %q, got %q", test.name, test.out, got)
		}
	}
}

func TestRun_loopCount(t *testing.T) {
	for _, n := range []int{1, 5, 100, 255} {
		i := setup(t)
		i.Tape()[0] = byte(n)
		if err := i.Run(tokenizer.TokenizeString("[-]")); err != nil {
			t.Fatalf("%+v", err)
		}
		if i.Cell() != 0 {
			t.Errorf("[-] on %d: cell = %d", n, i.Cell())
		}
		// [ once, then - and ] for each iteration.
		if c, e := i.InstructionCount(), int64(1+2*n); c != e {
			t.Errorf("[-] on %d: executed %d instructions, expected %d", n, c, e)
		}
	}
}

func TestRun_noEnd(t *testing.T) {
	i := setup(t)
	err := i.Run(vm.Program{vm.OpInc, vm.OpInc, vm.OpRight, vm.OpInc})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Tape()[0] != 2 || i.Tape()[1] != 1 || i.Pointer() != 1 {
		t.Errorf("unexpected state: %v", i.State())
	}
	if i.PC != 4 {
		t.Errorf("expected PC 4, got %d", i.PC)
	}
}

func TestRun_stopsAtEnd(t *testing.T) {
	i := setup(t)
	err := i.Run(vm.Program{vm.OpInc, vm.OpEnd, vm.OpInc, vm.OpInc})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Cell() != 1 || i.PC != 1 || i.InstructionCount() != 1 {
		t.Errorf("unexpected state: %+v", i.State())
	}
}

func TestRun_persistence(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, vm.Output(&out))
	for _, line := range []string{"+++", ">++", "<."} {
		if err := i.Run(tokenizer.TokenizeString(line)); err != nil {
			t.Fatalf("%s: %+v", line, err)
		}
	}
	if out.String() != "\x03" {
		t.Errorf("expected output %q, got %q", "\x03", out.String())
	}
	if i.Tape()[1] != 2 {
		t.Errorf("expected tape[1] = 2, got %d", i.Tape()[1])
	}

	i.Reset()
	if i.Pointer() != 0 || i.Tape()[0] != 0 || i.Tape()[1] != 0 {
		t.Errorf("Reset did not clear the tape: %v", i.State())
	}
}

func TestRun_independentInstances(t *testing.T) {
	a, b := setup(t), setup(t)
	p := tokenizer.TokenizeString("+++>+")
	if err := a.Run(p); err != nil {
		t.Fatal(err)
	}
	if b.Pointer() != 0 || b.Tape()[0] != 0 {
		t.Errorf("instance b modified by a run on a: %v", b.State())
	}
	if err := b.Run(p); err != nil {
		t.Fatal(err)
	}
	if a.Tape()[0] != 3 || b.Tape()[0] != 3 {
		t.Errorf("unexpected tapes: %v, %v", a.Tape()[:2], b.Tape()[:2])
	}
}

func TestDump(t *testing.T) {
	i := setup(t)
	if err := i.Run(tokenizer.TokenizeString("++>+++<")); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := i.Dump(&b); err != nil {
		t.Fatal(err)
	}
	if e := "\x1C0\x1D\x1D2 3"; b.String() != e {
		t.Errorf("expected %q, got %q", e, b.String())
	}

	// the dump must include the pointer position even on zero cells
	b.Reset()
	i.Reset()
	i.Run(tokenizer.TokenizeString(">>"))
	i.Dump(&b)
	if e := "\x1C2\x1D\x1D0 0 0"; b.String() != e {
		t.Errorf("expected %q, got %q", e, b.String())
	}
}

func TestState(t *testing.T) {
	i := setup(t)
	i.Run(tokenizer.TokenizeString("+++>++"))
	s := i.State()
	if s.Pointer != 1 || s.Cell != 2 || s.Instructions != 6 || s.PC != 6 || len(s.Stack) != 0 {
		t.Errorf("unexpected state %+v", s)
	}
}

var hello = `
	++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`

func TestHelloWorld(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, vm.Output(&out))
	if err := i.Run(tokenizer.TokenizeString(hello)); err != nil {
		t.Fatalf("%+v", err)
	}
	if out.String() != "Hello World!\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Benchmark_Nested(b *testing.B) {
	p := tokenizer.TokenizeString("++++++++[>++++++++[>++++++++[>+<-]<-]<-]")
	i := setup(b)
	b.ResetTimer()
	for c := 0; c < b.N; c++ {
		i.Reset()
		if err := i.Run(p); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_HelloWorld(b *testing.B) {
	p := tokenizer.TokenizeString(hello)
	var out bytes.Buffer
	i := setup(b, vm.Output(&out))
	b.ResetTimer()
	for c := 0; c < b.N; c++ {
		out.Reset()
		i.Reset()
		if err := i.Run(p); err != nil {
			b.Fatal(err)
		}
	}
}
