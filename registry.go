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

// registry deduplicates frozen builder states.  Buckets are keyed by an
// FNV-1a hash of the state signature; collisions fall back to a full
// equivalence check.
type registry struct {
	table map[uint64][]registryEntry
}

type registryEntry struct {
	state *builderState
	id    int
}

func newRegistry() *registry {
	return &registry{table: make(map[uint64][]registryEntry)}
}

// entry returns the id of an already-frozen state equivalent to node.
func (r *registry) entry(node *builderState) (int, bool) {
	for _, ent := range r.table[r.hash(node)] {
		if equiv(ent.state, node) {
			return ent.id, true
		}
	}
	return 0, false
}

// register records node as frozen into state id.
func (r *registry) register(node *builderState, id int) {
	h := r.hash(node)
	r.table[h] = append(r.table[h], registryEntry{state: node, id: id})
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func (r *registry) hash(b *builderState) uint64 {
	var h uint64 = fnvOffset
	if b.final {
		h = (h ^ 1) * fnvPrime
	}
	for _, t := range b.transitions {
		h = (h ^ uint64(t.label)) * fnvPrime
		h = (h ^ uint64(t.id)) * fnvPrime
	}
	return h
}

func equiv(a, b *builderState) bool {
	if a.final != b.final {
		return false
	}
	if len(a.transitions) != len(b.transitions) {
		return false
	}
	for i := range a.transitions {
		if a.transitions[i].label != b.transitions[i].label {
			return false
		}
		if a.transitions[i].id != b.transitions[i].id {
			return false
		}
	}
	return true
}
