//  Copyright (c) 2024 the editfst authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editfst

import "github.com/willf/bitset"

// Strings enumerates every distinct string accepted by f on the
// selected tape, in depth-first arc-table order.  Epsilon labels
// contribute no character.  The distinct suffix set of each state is
// computed once and shared by every path reaching it, so the cost of
// enumeration tracks the number of distinct strings, not the number of
// accepting paths spelling them.
//
// Returns ErrCyclic if a reachable cycle exists, and ErrTooManyStrings
// if any state accepts more than StringLimit distinct suffixes.
func Strings(f *FST, tape Tape) ([]string, error) {
	if f.Empty() {
		return nil, nil
	}
	n := uint(f.NumStates())
	memo := make([][]string, f.NumStates())
	computed := bitset.New(n)
	onStack := bitset.New(n)

	var visit func(s int) ([]string, error)
	visit = func(s int) ([]string, error) {
		if computed.Test(uint(s)) {
			return memo[s], nil
		}
		if onStack.Test(uint(s)) {
			return nil, ErrCyclic
		}
		onStack.Set(uint(s))
		defer onStack.Clear(uint(s))

		var suffixes []string
		seen := make(map[string]struct{})
		add := func(str string) error {
			if _, dup := seen[str]; dup {
				return nil
			}
			if len(suffixes) >= StringLimit {
				return ErrTooManyStrings
			}
			seen[str] = struct{}{}
			suffixes = append(suffixes, str)
			return nil
		}

		if f.IsFinal(s) {
			if err := add(""); err != nil {
				return nil, err
			}
		}
		for _, a := range f.Arcs(s) {
			label := a.In
			if tape == TapeOutput {
				label = a.Out
			}
			subs, err := visit(a.Next)
			if err != nil {
				return nil, err
			}
			for _, suf := range subs {
				str := suf
				if label != Epsilon {
					str = string(rune(label)) + suf
				}
				if err := add(str); err != nil {
					return nil, err
				}
			}
		}
		memo[s] = suffixes
		computed.Set(uint(s))
		return suffixes, nil
	}
	return visit(f.Start())
}
