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
	"math"

	"github.com/willf/bitset"
)

// Prune returns a copy of f keeping only states and arcs that lie on an
// accepting path whose total weight is within threshold of the minimum.
// A threshold of zero keeps exactly the ties for the best path.  If f
// has no accepting path the result is the empty FST.
func Prune(f *FST, threshold float64) *FST {
	if f.Empty() {
		return New()
	}
	alpha := ShortestDistance(f, false)
	beta := ShortestDistance(f, true)
	best := beta[f.Start()]
	if math.IsInf(best, 1) {
		return New()
	}
	limit := best + threshold + Delta

	keep := bitset.New(uint(f.NumStates()))
	for s := 0; s < f.NumStates(); s++ {
		if alpha[s]+beta[s] <= limit {
			keep.Set(uint(s))
		}
	}

	remap := make([]int, f.NumStates())
	r := New()
	for s := 0; s < f.NumStates(); s++ {
		remap[s] = NoStateID
		if keep.Test(uint(s)) {
			remap[s] = r.AddState()
		}
	}
	for s := 0; s < f.NumStates(); s++ {
		if remap[s] == NoStateID {
			continue
		}
		if f.IsFinal(s) && alpha[s]+f.Final(s) <= limit {
			r.SetFinal(remap[s], f.Final(s))
		}
		for _, a := range f.Arcs(s) {
			if remap[a.Next] == NoStateID {
				continue
			}
			if alpha[s]+a.Weight+beta[a.Next] > limit {
				continue
			}
			a.Next = remap[a.Next]
			r.AddArc(remap[s], a)
		}
	}
	r.SetStart(remap[f.Start()])
	return r
}
