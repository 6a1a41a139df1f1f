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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/brainc/internal/config"
	"github.com/db47h/brainc/tokenizer"
	"github.com/db47h/brainc/vm"
	"github.com/goforj/godump"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const banner = "BrainC 1.0.0 - The BrainF interpreter"

var errUsage = errors.New("usage")

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type eofMode vm.EOFMode

func (m *eofMode) String() string { return vm.EOFMode(*m).String() }
func (m *eofMode) Set(s string) error {
	v, err := vm.ParseEOFMode(s)
	if err != nil {
		return err
	}
	*m = eofMode(v)
	return nil
}
func (m *eofMode) Get() interface{} { return vm.EOFMode(*m) }

var (
	debug      bool
	dump       bool
	rawIO      bool
	wrap       bool
	tapeSize   int
	stackSize  int
	eof        eofMode
	configFile string
	withFiles  fileList
)

func init() {
	flag.StringVar(&configFile, "config", "", "load settings from TOML file `filename`")
	flag.IntVar(&tapeSize, "tape", vm.DefaultTapeSize, "tape size in cells")
	flag.IntVar(&stackSize, "stack", vm.DefaultStackSize, "maximum loop nesting depth")
	flag.BoolVar(&wrap, "wrap", false, "wrap the data pointer around the tape ends")
	flag.Var(&eof, "eof", "cell value on end of input: unchanged, zero or max")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&rawIO, "raw", false, "read program input one character at a time from the terminal")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump pointer, loop stack and tape upon exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// loadConfig loads the configuration file, if any, then applies the flags
// explicitly set on the command line.
func loadConfig() (*config.Config, error) {
	c := config.Default()
	if configFile != "" {
		var err error
		if c, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape":
			c.Tape.Size = tapeSize
		case "stack":
			c.Stack.Size = stackSize
		case "wrap":
			c.Tape.Wrap = wrap
		case "eof":
			c.Input.EOF = eof.String()
		case "raw":
			c.Input.Raw = rawIO
		}
	})
	return c, c.Validate()
}

func setupLogger(debug bool) *zap.Logger {
	al := zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		al.SetLevel(zap.DebugLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), al)
	return zap.New(core)
}

// newVM creates a VM with the given configuration. Files from the -with list
// are fed to the VM before in.
func newVM(c *config.Config, in io.Reader, out io.Writer, with []string, opts ...vm.Option) (*vm.Instance, error) {
	copts, err := c.Options()
	if err != nil {
		return nil, err
	}
	opts = append(copts, opts...)
	opts = append(opts, vm.Input(in), vm.Output(out))
	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	var files []io.Closer
	for n := len(with) - 1; n >= 0; n-- {
		f, err := os.Open(with[n])
		if err != nil {
			closeAll(files)
			return nil, errors.Wrap(err, "cannot open input file")
		}
		files = append(files, f)
		// keep Close visible so that the VM closes the file once exhausted.
		opts = append(opts, vm.Input(bufferedFile{bufio.NewReader(f), f}))
	}
	i, err := vm.New(opts...)
	if err != nil {
		closeAll(files)
		return nil, err
	}
	return i, nil
}

type bufferedFile struct {
	*bufio.Reader
	io.Closer
}

func closeAll(files []io.Closer) {
	for _, f := range files {
		f.Close()
	}
}

// runFile runs the program in file fileName.
func runFile(i *vm.Instance, fileName string, out io.Writer) error {
	p, err := tokenizer.TokenizeFile(fileName)
	if err != nil {
		return errors.Wrap(err, "Could not read from file!")
	}
	if err = i.Run(p); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func atExit(i *vm.Instance, err error) int {
	if err == nil {
		return 0
	}
	if err == errUsage {
		flag.Usage()
		return 2
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		godump.Dump(i.State())
	}
	return 1
}

func run(args []string, w io.Writer) (status int) {
	var (
		err error
		i   *vm.Instance
	)

	stdout := &lineWriter{Writer: bufio.NewWriter(w), last: '\n'}

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = i.Dump(w)
			fmt.Fprintln(w)
		}
		status = atExit(i, err)
	}()

	fmt.Fprintln(stdout, banner)

	if len(args) > 1 {
		err = errUsage
		return
	}

	c, err := loadConfig()
	if err != nil {
		return
	}
	log := setupLogger(debug)
	defer log.Sync()

	if len(args) == 0 {
		i, err = interactive(c, stdout, log)
		return
	}

	var in io.Reader = bufio.NewReader(os.Stdin)
	if c.Input.Raw && isTerminal(os.Stdin) {
		// unbuffered so that each character is seen as soon as it is typed
		in = os.Stdin
		tearDown, rerr := setRawIO(os.Stdin)
		if rerr != nil {
			log.Warn("cannot switch terminal to raw mode", zap.Error(rerr))
		} else {
			defer tearDown()
		}
	}
	i, err = newVM(c, in, stdout, withFiles, vm.Logger(log))
	if err != nil {
		return
	}
	log.Debug("running file", zap.String("file", args[0]), zap.Int("tape", c.Tape.Size))
	err = runFile(i, args[0], stdout)
	return
}

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout))
}
