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

/*
Package editfst implements weighted finite state transducers over the
tropical (min, +) semiring.

The package provides the construction and search primitives used by the
levenshtein subpackage: linear acceptors, symbol unions, weighted union
and Kleene closure, tape inversion, relabeling and projection,
composition, single-source shortest distance, shortest path extraction,
weight-threshold pruning, topological sorting, path enumeration and the
compilation of string collections into minimal acceptors.

States are integer indices into a flat arena of arc slices and final
weights.  Every operation returns a newly built FST and treats its
operands as read-only, so constructed transducers can be queried from
any number of goroutines concurrently.
*/
package editfst
