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

package xmldiff

import (
	"github.com/beevik/etree"

	"znkr.io/xmldiff/internal/nodeview"
)

// ByNameAndTextRec accepts a pair iff the two subtrees rooted at control and test are
// structurally equivalent: [ByNameAndText] must accept every corresponding pair of elements at
// every depth, and the significant children of every such pair must correspond one to one, in
// order and in kind.
//
// Significant children are the non-text children, elements and otherwise. Text is never
// compared node by node: each element's merged direct text is checked once via the
// [ByNameAndText] precondition, so text nodes that merely sit in different positions between
// element siblings don't break structural equality. Non-element significant nodes (comments,
// processing instructions) must correspond in kind and position, but their content is not
// inspected. An unmatched significant child on either side, at any depth, fails the
// comparison; trailing text is ignored.
func ByNameAndTextRec(control, test *etree.Element) bool {
	if !ByNameAndText(control, test) {
		return false
	}
	cc, tc := control.Child, test.Child
	ci, ti := 0, 0
	for ci < len(cc) && ti < len(tc) {
		ci = skipText(cc, ci)
		if ci >= len(cc) {
			break
		}
		ti = skipText(tc, ti)
		if ti >= len(tc) {
			break
		}
		ckind, tkind := nodeview.KindOf(cc[ci]), nodeview.KindOf(tc[ti])
		if ckind != tkind {
			return false
		}
		if ckind == nodeview.KindElement {
			if !ByNameAndTextRec(cc[ci].(*etree.Element), tc[ti].(*etree.Element)) {
				return false
			}
		}
		ci++
		ti++
	}
	// Leftovers are fine as long as they are all text.
	if ci = skipText(cc, ci); ci < len(cc) {
		return false
	}
	if ti = skipText(tc, ti); ti < len(tc) {
		return false
	}
	return true
}

// skipText advances i past any text nodes and returns the index of the next significant node,
// or len(children) if none remains.
func skipText(children []etree.Token, i int) int {
	for i < len(children) && nodeview.KindOf(children[i]) == nodeview.KindText {
		i++
	}
	return i
}
