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

	"znkr.io/xmldiff/internal/config"
	"znkr.io/xmldiff/internal/nodeview"
)

// Pair describes one control/test node correspondence found by [Pairs].
type Pair struct {
	Control, Test etree.Token
}

// Pairs matches up nodes from two sibling sequences, typically the child lists of two elements
// already known to correspond. Control nodes that find no counterpart are omitted from the
// result; a diff engine would treat them, and the test nodes left over, as removed resp. added.
//
// Nodes only pair within their kind. Elements pair when an [ElementSelector] accepts them, text
// nodes pair by kind (or by content with [MatchText]), and any other nodes pair by kind alone.
// Each test node pairs with at most one control node, first come first served in document
// order, so the result is deterministic.
//
// The following options are supported: [Selector] (repeatable), [MatchText].
func Pairs(control, test []etree.Token, opts ...Option) []Pair {
	cfg := config.FromOptions(opts, config.Selector|config.MatchText)
	selectors := cfg.Selectors
	if len(selectors) == 0 {
		selectors = append(selectors, Default)
	}

	pairedWith := make([]int, len(control))
	for i := range pairedWith {
		pairedWith[i] = -1
	}
	used := make([]bool, len(test))
	for _, sel := range selectors {
		for ci, ctok := range control {
			if pairedWith[ci] >= 0 {
				continue
			}
			for ti, ttok := range test {
				if used[ti] {
					continue
				}
				if !canPair(ctok, ttok, sel, cfg.MatchText) {
					continue
				}
				pairedWith[ci] = ti
				used[ti] = true
				break
			}
		}
	}

	// Count first so the result can be allocated exactly; output follows control order no
	// matter which selector round produced a pairing.
	var n int
	for _, ti := range pairedWith {
		if ti >= 0 {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	out := make([]Pair, 0, n)
	for ci, ti := range pairedWith {
		if ti >= 0 {
			out = append(out, Pair{Control: control[ci], Test: test[ti]})
		}
	}
	return out
}

func canPair(control, test etree.Token, sel func(control, test *etree.Element) bool, matchText bool) bool {
	ckind, tkind := nodeview.KindOf(control), nodeview.KindOf(test)
	if ckind != tkind {
		return false
	}
	switch ckind {
	case nodeview.KindElement:
		return sel(control.(*etree.Element), test.(*etree.Element))
	case nodeview.KindText:
		return !matchText || control.(*etree.CharData).Data == test.(*etree.CharData).Data
	default:
		return true
	}
}
