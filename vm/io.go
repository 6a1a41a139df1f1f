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
	"strings"

	"github.com/pkg/errors"
)

// EOFMode controls what the input instruction does to the current cell when no
// more input is available.
type EOFMode int

// Supported EOF modes.
const (
	EOFUnchanged EOFMode = iota // leave the cell as is
	EOFZero                     // set the cell to 0
	EOFMax                      // set the cell to 255
)

var eofModes = [...]string{"unchanged", "zero", "max"}

func (m EOFMode) String() string {
	if m >= 0 && int(m) < len(eofModes) {
		return eofModes[m]
	}
	return "invalid"
}

// ParseEOFMode returns the EOFMode with the given name. Accepted names are
// "unchanged", "zero" and "max", as well as "0" and "-1" for the last two.
func ParseEOFMode(s string) (EOFMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unchanged", "none":
		return EOFUnchanged, nil
	case "zero", "0":
		return EOFZero, nil
	case "max", "-1", "255":
		return EOFMax, nil
	}
	return EOFUnchanged, errors.Errorf("unknown EOF mode %q", s)
}

type flusher interface {
	Flush() error
}

type multiReader struct {
	readers []io.Reader
}

func (mr *multiReader) Read(p []byte) (n int, err error) {
	for len(mr.readers) > 0 {
		n, err = mr.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// Don't return EOF yet. There may be more bytes
				// in the remaining readers.
				err = nil
			}
			return
		}
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiReader) pushReader(r io.Reader) {
	mr.readers = append([]io.Reader{r}, mr.readers...)
}

// PushInput sets r as the current input Reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used. Readers that
// implement io.Closer are closed once exhausted.
func (i *Instance) PushInput(r io.Reader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = r
	case *multiReader:
		in.pushReader(r)
	default:
		i.input = &multiReader{[]io.Reader{r, i.input}}
	}
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "flush failed")
	}
	return nil
}

// in reads one byte from the input into the current cell.
func (i *Instance) in() error {
	if err := i.flush(); err != nil {
		return err
	}
	var b [1]byte
	if i.input != nil {
		n, err := io.ReadFull(i.input, b[:])
		switch {
		case n == 1:
			i.tape[i.ptr] = b[0]
			return nil
		case err != io.EOF && err != io.ErrUnexpectedEOF:
			return errors.Wrap(err, "read failed")
		}
	}
	switch i.eof {
	case EOFZero:
		i.tape[i.ptr] = 0
	case EOFMax:
		i.tape[i.ptr] = 0xFF
	}
	return nil
}

// out writes the current cell to the output.
func (i *Instance) out() error {
	if i.output == nil {
		return nil
	}
	_, err := i.output.Write(i.tape[i.ptr : i.ptr+1])
	return errors.Wrap(err, "write failed")
}
