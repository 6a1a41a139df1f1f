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

// Package config handles brainc TOML configuration files.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/db47h/brainc/vm"
	"github.com/pkg/errors"
)

// Config represents a brainc configuration file.
type Config struct {
	Tape  Tape  `toml:"tape"`
	Stack Stack `toml:"stack"`
	Input Input `toml:"input"`
}

// Tape configures the VM tape.
type Tape struct {
	Size int  `toml:"size"`
	Wrap bool `toml:"wrap"`
}

// Stack configures the VM call stack.
type Stack struct {
	Size int `toml:"size"`
}

// Input configures program input.
type Input struct {
	EOF string `toml:"eof"`
	Raw bool   `toml:"raw"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Tape:  Tape{Size: vm.DefaultTapeSize},
		Stack: Stack{Size: vm.DefaultStackSize},
		Input: Input{EOF: vm.EOFUnchanged.String()},
	}
}

// Load parses the configuration file fileName. Settings missing from the file
// keep their default value.
func Load(fileName string) (*Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown setting %q", fileName, keys[0].String())
	}
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return c, nil
}

// Validate checks that all settings have sensible values.
func (c *Config) Validate() error {
	if c.Tape.Size <= 0 {
		return errors.Errorf("invalid tape size %d", c.Tape.Size)
	}
	if c.Stack.Size <= 0 {
		return errors.Errorf("invalid stack size %d", c.Stack.Size)
	}
	_, err := vm.ParseEOFMode(c.Input.EOF)
	return err
}

// Options returns the VM options matching c.
func (c *Config) Options() ([]vm.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	eof, _ := vm.ParseEOFMode(c.Input.EOF)
	return []vm.Option{
		vm.TapeSize(c.Tape.Size),
		vm.StackSize(c.Stack.Size),
		vm.WrapPointer(c.Tape.Wrap),
		vm.OnEOF(eof),
	}, nil
}
