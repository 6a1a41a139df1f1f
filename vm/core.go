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
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Rpush pushes the argument on top of the call stack.
func (i *Instance) Rpush(pc int) error {
	if i.sp >= len(i.stack) {
		return ErrStackOverflow
	}
	i.stack[i.sp] = pc
	i.sp++
	return nil
}

// Rpop pops the value on top of the call stack and returns it.
func (i *Instance) Rpop() (int, error) {
	if i.sp == 0 {
		return 0, ErrUnmatchedRepeat
	}
	i.sp--
	return i.stack[i.sp], nil
}

func (i *Instance) rtos() (int, error) {
	if i.sp == 0 {
		return 0, ErrUnmatchedRepeat
	}
	return i.stack[i.sp-1], nil
}

// skip moves the PC forward to the ] matching the [ at the current PC.
func (i *Instance) skip(p Program) error {
	depth := 1
	for pc := i.PC + 1; pc < len(p); pc++ {
		switch p[pc] {
		case OpLoop:
			depth++
		case OpRepeat:
			depth--
			if depth == 0 {
				i.PC = pc
				return nil
			}
		case OpEnd:
			return ErrUnmatchedLoop
		}
	}
	return ErrUnmatchedLoop
}

func (i *Instance) fail(p Program, err error) error {
	op := OpEnd
	if i.PC < len(p) {
		op = p[i.PC]
	}
	return &Error{PC: i.PC, Op: op, Err: err}
}

// Run executes the program p until it reaches OpEnd or the end of the slice.
//
// The PC, call stack and instruction count are reset before running. The tape
// and data pointer are left as is, so that successive calls to Run on the same
// instance share the tape.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and the returned error will be an *Error.
func (i *Instance) Run(p Program) (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pc=%d/%d, ptr %d/%d, stack %d/%d", i.PC, len(p), i.ptr, len(i.tape), i.sp, len(i.stack))
			default:
				panic(e)
			}
		}
	}()
	i.PC, i.sp, i.insCount = 0, 0, 0
	start := time.Now()
	i.log.Debug("run started", zap.Int("instructions", p.Len()), zap.Int("ptr", i.ptr))

	err = i.run(p)
	if ferr := i.flush(); err == nil && ferr != nil {
		err = i.fail(p, ferr)
	}
	if err != nil {
		i.log.Debug("run failed", zap.Error(err), zap.Int("pc", i.PC), zap.Int64("executed", i.insCount))
		return err
	}
	i.log.Debug("run finished", zap.Int64("executed", i.insCount), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (i *Instance) run(p Program) error {
	var err error
	for i.PC < len(p) {
		switch p[i.PC] {
		case OpEnd:
			return nil
		case OpLeft:
			if i.ptr == 0 {
				if !i.wrap {
					return i.fail(p, ErrPointerUnderflow)
				}
				i.ptr = len(i.tape)
			}
			i.ptr--
		case OpRight:
			i.ptr++
			if i.ptr == len(i.tape) {
				if !i.wrap {
					i.ptr--
					return i.fail(p, ErrPointerOverflow)
				}
				i.ptr = 0
			}
		case OpInc:
			i.tape[i.ptr]++
		case OpDec:
			i.tape[i.ptr]--
		case OpOut:
			if err = i.out(); err != nil {
				return i.fail(p, err)
			}
		case OpIn:
			if err = i.in(); err != nil {
				return i.fail(p, err)
			}
		case OpLoop:
			if i.tape[i.ptr] == 0 {
				err = i.skip(p)
			} else {
				err = i.Rpush(i.PC)
			}
			if err != nil {
				return i.fail(p, err)
			}
		case OpRepeat:
			if i.tape[i.ptr] != 0 {
				// back to the matching [, the PC increment below moves on
				// to the first instruction of the loop body.
				var pc int
				if pc, err = i.rtos(); err != nil {
					return i.fail(p, err)
				}
				i.PC = pc
			} else if _, err = i.Rpop(); err != nil {
				return i.fail(p, err)
			}
		default:
			return i.fail(p, errors.Errorf("invalid opcode %d", p[i.PC]))
		}
		i.PC++
		i.insCount++
	}
	return nil
}
