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

import "fmt"

// ErrOutOfOrder is returned by Builder.Insert when keys are not inserted
// in lexicographic order.
var ErrOutOfOrder = fmt.Errorf("keys must be inserted in lexicographic order")

// ErrCyclic is returned by operations that require an acyclic FST.
var ErrCyclic = fmt.Errorf("fst contains a cycle")

// StringLimit is the maximum number of distinct accepted strings
// Strings will collect at any state.
const StringLimit = 1 << 20

// ErrTooManyStrings is returned if you attempt to enumerate an FST
// accepting more than StringLimit distinct strings.
var ErrTooManyStrings = fmt.Errorf("fst accepts more than %d strings", StringLimit)
