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
)

// Delta is the tolerance used when comparing path weights.
const Delta = 1.0 / 1024

// ShortestDistance computes single-source shortest distances over the
// tropical semiring.  Arc weights must be non-negative.
//
// With reverse false, the result holds for each state the minimum weight
// of any path from the start state to it (ignoring final weights).  With
// reverse true, it holds the minimum weight of accepting from the state:
// the cheapest path from it to a final state, final weight included.
// Unreachable states hold +Inf.
func ShortestDistance(f *FST, reverse bool) []float64 {
	dist := make([]float64, f.NumStates())
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	var q distHeap
	if reverse {
		for s := 0; s < f.NumStates(); s++ {
			if f.IsFinal(s) {
				dist[s] = f.Final(s)
				heap.Push(&q, distEntry{state: s, dist: dist[s]})
			}
		}
		rev := make([][]Arc, f.NumStates())
		for s := 0; s < f.NumStates(); s++ {
			for _, a := range f.Arcs(s) {
				rev[a.Next] = append(rev[a.Next], Arc{Weight: a.Weight, Next: s})
			}
		}
		relax(&q, dist, func(s int) []Arc { return rev[s] })
		return dist
	}

	if f.Empty() {
		return dist
	}
	dist[f.Start()] = 0
	heap.Push(&q, distEntry{state: f.Start()})
	relax(&q, dist, f.Arcs)
	return dist
}

// relax runs Dijkstra with a lazy decrease-key: stale heap entries are
// skipped on pop rather than updated in place.
func relax(q *distHeap, dist []float64, arcs func(int) []Arc) {
	for q.Len() > 0 {
		e := heap.Pop(q).(distEntry)
		if e.dist > dist[e.state] {
			continue
		}
		for _, a := range arcs(e.state) {
			d := e.dist + a.Weight
			if d < dist[a.Next] {
				dist[a.Next] = d
				heap.Push(q, distEntry{state: a.Next, dist: d})
			}
		}
	}
}

// ShortestPath returns one minimum-weight accepting path of f as a
// linear FST.  Among equal-weight paths the choice follows arc-table
// order and should be treated as unspecified.  If f has no accepting
// path the result is the empty FST.
func ShortestPath(f *FST) *FST {
	if f.Empty() {
		return New()
	}
	beta := ShortestDistance(f, true)
	if math.IsInf(beta[f.Start()], 1) {
		return New()
	}

	p := New()
	cur := p.AddState()
	p.SetStart(cur)
	s := f.Start()
	for steps := 0; steps <= f.NumStates(); steps++ {
		if f.IsFinal(s) && f.Final(s) <= beta[s]+Delta {
			p.SetFinal(cur, f.Final(s))
			return p
		}
		for _, a := range f.Arcs(s) {
			if a.Weight+beta[a.Next] <= beta[s]+Delta {
				next := p.AddState()
				p.AddArc(cur, Arc{In: a.In, Out: a.Out, Weight: a.Weight, Next: next})
				cur = next
				s = a.Next
				break
			}
		}
	}
	// only possible on a zero-weight cycle, which Accept/Compose inputs
	// cannot produce
	return New()
}

type distEntry struct {
	state int
	dist  float64
}

type distHeap []distEntry

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distEntry)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
