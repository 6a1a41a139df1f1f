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

// Package tokenizer converts BrainF source code to vm programs, and back.
//
// Source characters are mapped to VM instructions as follows:
//
//	char	opcode
//	----	------------
//	<	vm.OpLeft
//	>	vm.OpRight
//	+	vm.OpInc
//	-	vm.OpDec
//	.	vm.OpOut
//	,	vm.OpIn
//	[	vm.OpLoop
//	]	vm.OpRepeat
//
// Any other character is a comment and is dropped. Tokenized programs always
// end with a single vm.OpEnd. Bracket balance is not checked.
package tokenizer
