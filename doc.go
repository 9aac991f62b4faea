// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package xmldiff decides which elements of two XML trees correspond to each other.
//
// The package provides a library of element selectors: pure predicates that take a control element
// and a test element from two [github.com/beevik/etree] documents and report whether the pair
// should be treated as the same logical element. Selectors range from [Default], which accepts
// every pair, over name and attribute based selectors like [ByName] and [ByNameAndAttributes], to
// [ByNameAndTextRec], which compares two entire subtrees for structural equivalence while ignoring
// the position of text between element siblings.
//
// On top of the selectors, [Pairs] matches up two sequences of sibling nodes, the building block a
// diff engine needs before it can decide what was added, removed, or changed. Computing such an
// edit script is out of scope for this package.
//
// All selectors are deterministic, never modify the trees they inspect, and are safe for
// concurrent use.
package xmldiff
