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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danswartzendruber/liner"
	"github.com/db47h/brainc/internal/config"
	"github.com/db47h/brainc/tokenizer"
	"github.com/db47h/brainc/vm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	prompt     = "brainc> "
	maxLineLen = 1024
)

var errLineTooLong = errors.Errorf("line too long (max %d bytes)", maxLineLen)

// lineWriter remembers the last byte written so that the REPL can terminate
// program output with a newline before the next prompt.
type lineWriter struct {
	*bufio.Writer
	last byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.last = p[len(p)-1]
	}
	return w.Writer.Write(p)
}

type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ttyReader reads lines from the terminal, with editing and history.
type ttyReader struct {
	l *liner.State
}

func newTTYReader() *ttyReader {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &ttyReader{l}
}

// promptError maps a Ctrl-C at the prompt to the end of the session.
func promptError(err error) error {
	if err == liner.ErrPromptAborted {
		return io.EOF
	}
	return err
}

func (r *ttyReader) ReadLine(prompt string) (string, error) {
	s, err := r.l.Prompt(prompt)
	if err != nil {
		return "", promptError(err)
	}
	if len(s) > maxLineLen {
		return "", errLineTooLong
	}
	if strings.TrimSpace(s) != "" {
		r.l.AppendHistory(s)
	}
	return s, nil
}

func (r *ttyReader) Close() error {
	return r.l.Close()
}

// pipeReader reads lines from a non interactive input. No prompt is shown.
type pipeReader struct {
	r *bufio.Reader
}

func (r *pipeReader) ReadLine(string) (string, error) {
	s, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	s = strings.TrimRight(s, "\r\n")
	if len(s) > maxLineLen {
		return "", errLineTooLong
	}
	return s, nil
}

func (r *pipeReader) Close() error { return nil }

// repl reads, tokenizes and runs lines from lr until EOF. Runtime errors are
// reported to errOut and do not end the session. The tape and data pointer
// persist from one line to the next.
func repl(i *vm.Instance, lr lineReader, out *lineWriter, errOut io.Writer) error {
	for {
		if err := out.Flush(); err != nil {
			return errors.Wrap(err, "flush failed")
		}
		line, err := lr.ReadLine(prompt)
		switch err {
		case nil:
		case io.EOF:
			return nil
		case errLineTooLong:
			fmt.Fprintln(errOut, err)
			continue
		default:
			return errors.Wrap(err, "read failed")
		}
		out.last = '\n'
		if err = i.Run(tokenizer.TokenizeString(line)); err != nil {
			fmt.Fprintln(errOut, err)
		}
		if out.last != '\n' {
			out.Write([]byte{'\n'})
		}
	}
}

// interactive runs the REPL on stdin. Line editing is enabled if stdin is a
// terminal.
func interactive(c *config.Config, out *lineWriter, log *zap.Logger) (*vm.Instance, error) {
	var (
		lr lineReader
		in io.Reader
	)
	if isTerminal(os.Stdin) {
		lr, in = newTTYReader(), os.Stdin
	} else {
		// program input and lines share the same buffer
		br := bufio.NewReader(os.Stdin)
		lr, in = &pipeReader{br}, br
	}
	defer lr.Close()

	i, err := newVM(c, in, out, withFiles, vm.Logger(log))
	if err != nil {
		return nil, err
	}
	return i, repl(i, lr, out, os.Stderr)
}
