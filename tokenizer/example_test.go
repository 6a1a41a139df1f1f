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

package tokenizer_test

import (
	"fmt"
	"os"

	"github.com/db47h/brainc/tokenizer"
)

func ExampleTokenizeString() {
	p := tokenizer.TokenizeString("Add two: ++ then print it .")
	fmt.Println(p.Len(), p)
	// Output:
	// 3 [+ + . end]
}

func ExampleFormat() {
	p := tokenizer.TokenizeString(`
		Clear the current cell: [-]
		Move right and add 3:   >+++
	`)
	tokenizer.Format(os.Stdout, p)
	// Output:
	// [-]>+++
}
