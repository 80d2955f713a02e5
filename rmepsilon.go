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

import (
	"container/heap"
	"math"
	"sort"
)

// RmEpsilon returns an equivalent FST with no epsilon:epsilon arcs.
// Each state takes over the non-epsilon arcs and finality of its
// epsilon closure, with the closure's shortest epsilon distance folded
// into the arc and final weights.  Arcs carrying a label on either tape
// are left in place.  The result is trimmed.
func RmEpsilon(f *FST) *FST {
	if f.Empty() {
		return New()
	}
	r := New()
	for s := 0; s < f.NumStates(); s++ {
		r.AddState()
	}
	for s := 0; s < f.NumStates(); s++ {
		final := math.Inf(1)
		for _, e := range epsClosure(f, s) {
			if f.IsFinal(e.state) && e.dist+f.Final(e.state) < final {
				final = e.dist + f.Final(e.state)
			}
			for _, a := range f.Arcs(e.state) {
				if a.In == Epsilon && a.Out == Epsilon {
					continue
				}
				a.Weight += e.dist
				r.AddArc(s, a)
			}
		}
		if !math.IsInf(final, 1) {
			r.SetFinal(s, final)
		}
	}
	r.SetStart(f.Start())
	return Connect(r)
}

// epsClosure computes the shortest epsilon:epsilon distance from s to
// every state it can reach without consuming or emitting a symbol, s
// itself included at distance zero.  Entries are ordered by state index
// so downstream arc order is deterministic.
func epsClosure(f *FST, s int) []distEntry {
	dist := map[int]float64{s: 0}
	var q distHeap
	heap.Push(&q, distEntry{state: s})
	for q.Len() > 0 {
		e := heap.Pop(&q).(distEntry)
		if e.dist > dist[e.state] {
			continue
		}
		for _, a := range f.Arcs(e.state) {
			if a.In != Epsilon || a.Out != Epsilon {
				continue
			}
			d := e.dist + a.Weight
			if cur, ok := dist[a.Next]; !ok || d < cur {
				dist[a.Next] = d
				heap.Push(&q, distEntry{state: a.Next, dist: d})
			}
		}
	}
	entries := make([]distEntry, 0, len(dist))
	for t, d := range dist {
		entries = append(entries, distEntry{state: t, dist: d})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].state < entries[j].state })
	return entries
}
