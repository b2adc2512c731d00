// Copyright 2021 Dolthub, Inc.
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

// Package function implements the scalar function registry and planner: the
// layer that turns a function name plus a list of input DataTypes into a
// monomorphized kernel bound to a concrete output DataType.
package function

import (
	"fmt"

	"github.com/dolthub/bullet/datatype"
)

// Signature names one accepted input shape for a function: a fixed
// positional prefix plus an optional variadic tail repeating the last
// declared type, and the output type it produces when matched.
type Signature struct {
	Positional []datatype.ID
	Variadic   *datatype.ID
	Return     datatype.ID
	Doc        string
}

// Matches reports whether inputs' IDs satisfy this signature: exact arity
// (or at-least-positional-count when variadic), and every position's ID
// equal to the declared one.
func (s Signature) Matches(inputs []datatype.ID) bool {
	if s.Variadic == nil {
		if len(inputs) != len(s.Positional) {
			return false
		}
	} else if len(inputs) < len(s.Positional) {
		return false
	}
	for i, want := range s.Positional {
		if inputs[i] != want {
			return false
		}
	}
	if s.Variadic != nil {
		for i := len(s.Positional); i < len(inputs); i++ {
			if inputs[i] != *s.Variadic {
				return false
			}
		}
	}
	return true
}

func (s Signature) String() string {
	args := make([]string, len(s.Positional))
	for i, id := range s.Positional {
		args[i] = id.String()
	}
	if s.Variadic != nil {
		args = append(args, fmt.Sprintf("%s...", s.Variadic))
	}
	return fmt.Sprintf("(%v) -> %s", args, s.Return)
}
