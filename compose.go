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

// Compose returns the relational composition of a and b: the output tape
// of a is matched against the input tape of b, and the surviving paths
// read a's input against b's output with summed weights.
//
// Pair states are discovered lazily from the start pair and cached, so
// only the reachable portion of the product is ever built.  The result
// is trimmed with Connect; composing relations that share no path yields
// the empty FST.
func Compose(a, b *FST) *FST {
	if a.Empty() || b.Empty() {
		return New()
	}

	c := New()
	type pair struct{ s1, s2 int }
	cache := map[pair]int{}
	var queue []pair

	state := func(p pair) int {
		if id, ok := cache[p]; ok {
			return id
		}
		id := c.AddState()
		cache[p] = id
		queue = append(queue, p)
		return id
	}

	startPair := pair{a.Start(), b.Start()}
	c.SetStart(state(startPair))

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		id := cache[p]

		if a.IsFinal(p.s1) && b.IsFinal(p.s2) {
			c.SetFinal(id, a.Final(p.s1)+b.Final(p.s2))
		}

		for _, a1 := range a.Arcs(p.s1) {
			if a1.Out == Epsilon {
				// a advances alone, emitting nothing for b to consume
				c.AddArc(id, Arc{
					In:     a1.In,
					Out:    Epsilon,
					Weight: a1.Weight,
					Next:   state(pair{a1.Next, p.s2}),
				})
				continue
			}
			for _, a2 := range b.Arcs(p.s2) {
				if a2.In != a1.Out {
					continue
				}
				c.AddArc(id, Arc{
					In:     a1.In,
					Out:    a2.Out,
					Weight: a1.Weight + a2.Weight,
					Next:   state(pair{a1.Next, a2.Next}),
				})
			}
		}
		// b advances alone on epsilon input
		for _, a2 := range b.Arcs(p.s2) {
			if a2.In != Epsilon {
				continue
			}
			c.AddArc(id, Arc{
				In:     Epsilon,
				Out:    a2.Out,
				Weight: a2.Weight,
				Next:   state(pair{p.s1, a2.Next}),
			})
		}
	}

	return Connect(c)
}
