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

// TopSort returns a copy of f whose states are renumbered in topological
// order, the start state first.  Only states reachable from the start
// appear in the result.  Returns ErrCyclic if a reachable cycle exists.
func TopSort(f *FST) (*FST, error) {
	if f.Empty() {
		return New(), nil
	}
	n := uint(f.NumStates())
	done := bitset.New(n)
	onStack := bitset.New(n)

	// iterative DFS producing a reverse postorder
	type frame struct {
		state int
		arc   int
	}
	var order []int
	stack := []frame{{state: f.Start()}}
	onStack.Set(uint(f.Start()))
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		arcs := f.Arcs(top.state)
		if top.arc < len(arcs) {
			next := arcs[top.arc].Next
			top.arc++
			if onStack.Test(uint(next)) {
				return nil, ErrCyclic
			}
			if !done.Test(uint(next)) {
				onStack.Set(uint(next))
				stack = append(stack, frame{state: next})
			}
			continue
		}
		onStack.Clear(uint(top.state))
		done.Set(uint(top.state))
		order = append(order, top.state)
		stack = stack[:len(stack)-1]
	}

	// reverse postorder position becomes the new state index
	remap := make([]int, f.NumStates())
	for i, s := range order {
		remap[s] = len(order) - 1 - i
	}

	r := New()
	for range order {
		r.AddState()
	}
	for _, s := range order {
		id := remap[s]
		if f.IsFinal(s) {
			r.SetFinal(id, f.Final(s))
		}
		for _, a := range f.Arcs(s) {
			a.Next = remap[a.Next]
			r.AddArc(id, a)
		}
	}
	r.SetStart(remap[f.Start()])
	return r, nil
}
