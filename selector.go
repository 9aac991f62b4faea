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
	"slices"

	"github.com/beevik/etree"

	"znkr.io/xmldiff/internal/nodeview"
)

// QName identifies an element or attribute by namespace URI and local name.
type QName = nodeview.QName

// ParseQName parses a qualified name in Clark notation ("{uri}local" or a bare local name).
func ParseQName(s string) QName {
	return nodeview.ParseQName(s)
}

// An ElementSelector reports whether a control element and a test element should be treated as
// corresponding for comparison purposes.
//
// Selectors are pure: they never modify the elements they inspect, they are deterministic, and a
// call can never fail. A nil control or test element is a valid input.
type ElementSelector func(control, test *etree.Element) bool

// Default accepts every pair of elements, nil elements included. Pairing then degenerates to
// document order.
func Default(control, test *etree.Element) bool {
	return true
}

// ByName accepts a pair iff both elements exist and have the same qualified name. Attributes,
// text, and children are not inspected.
func ByName(control, test *etree.Element) bool {
	if control == nil || test == nil {
		return false
	}
	return nodeview.NameOf(control) == nodeview.NameOf(test)
}

// ByNameAndText accepts a pair iff [ByName] accepts it and both elements have the same merged
// direct text. The merged direct text is the concatenation of an element's own character data
// children in document order; two elements without any such text are considered equal.
func ByNameAndText(control, test *etree.Element) bool {
	if !ByName(control, test) {
		return false
	}
	ctext, cok := nodeview.MergedText(control)
	ttext, tok := nodeview.MergedText(test)
	return cok == tok && ctext == ttext
}

// ByNameAndAllAttributes accepts a pair iff [ByName] accepts it and both elements carry exactly
// the same attributes: same number, and for every attribute qualified name the same value on
// both sides. Namespace declarations don't count as attributes.
func ByNameAndAllAttributes(control, test *etree.Element) bool {
	if !ByName(control, test) {
		return false
	}
	cattrs := nodeview.Attributes(control)
	tattrs := nodeview.Attributes(test)
	if len(cattrs) != len(tattrs) {
		return false
	}
	for name, cv := range cattrs {
		if tv, ok := tattrs[name]; !ok || tv != cv {
			return false
		}
	}
	return true
}

// ByNameAndAttributes returns a selector that accepts a pair iff [ByName] accepts it and both
// elements agree on every listed attribute: either neither side has it, or both sides have it
// with equal values. The names are local names in no namespace; use
// [ByNameAndAttributesQName] for namespaced attributes.
//
// ByNameAndAttributes panics if no attribute names are given; a selector configured with
// nothing to compare is a programming error.
func ByNameAndAttributes(locals ...string) ElementSelector {
	if len(locals) == 0 {
		panic("xmldiff: ByNameAndAttributes requires at least one attribute name")
	}
	names := make([]QName, len(locals))
	for i, local := range locals {
		names[i] = QName{Local: local}
	}
	return byNameAndAttributes(names)
}

// ByNameAndAttributesQName is [ByNameAndAttributes] for fully qualified attribute names.
//
// ByNameAndAttributesQName panics if no attribute names are given.
func ByNameAndAttributesQName(names ...QName) ElementSelector {
	if len(names) == 0 {
		panic("xmldiff: ByNameAndAttributesQName requires at least one attribute name")
	}
	return byNameAndAttributes(slices.Clone(names))
}

// ByNameAndAttributesControlNS is [ByNameAndAttributes] with the namespace of each listed
// attribute taken from the control element: if the control element has an attribute with that
// local name, its namespace is used to look the attribute up on both sides, otherwise the
// attribute is looked up in no namespace. The test element's namespaces are never consulted.
//
// This allows matching attributes by local name when the control document qualifies an
// attribute that the test document may or may not qualify the same way.
//
// ByNameAndAttributesControlNS panics if no attribute names are given.
func ByNameAndAttributesControlNS(locals ...string) ElementSelector {
	if len(locals) == 0 {
		panic("xmldiff: ByNameAndAttributesControlNS requires at least one attribute name")
	}
	locals = slices.Clone(locals)
	return func(control, test *etree.Element) bool {
		if !ByName(control, test) {
			return false
		}
		cattrs := nodeview.Attributes(control)
		tattrs := nodeview.Attributes(test)
		for _, local := range locals {
			name := QName{Local: local}
			if space, ok := nodeview.NamespaceOf(control, local); ok {
				name.Space = space
			}
			if !attrAgree(cattrs, tattrs, name) {
				return false
			}
		}
		return true
	}
}

func byNameAndAttributes(names []QName) ElementSelector {
	return func(control, test *etree.Element) bool {
		if !ByName(control, test) {
			return false
		}
		cattrs := nodeview.Attributes(control)
		tattrs := nodeview.Attributes(test)
		for _, name := range names {
			if !attrAgree(cattrs, tattrs, name) {
				return false
			}
		}
		return true
	}
}

// attrAgree reports whether both attribute maps agree on name: present on both sides with equal
// values, or absent from both.
func attrAgree(cattrs, tattrs map[QName]string, name QName) bool {
	cv, cok := cattrs[name]
	tv, tok := tattrs[name]
	return cok == tok && cv == tv
}

// And returns a selector that accepts a pair iff every given selector accepts it. And of
// nothing behaves like [Default].
func And(selectors ...ElementSelector) ElementSelector {
	selectors = slices.Clone(selectors)
	return func(control, test *etree.Element) bool {
		for _, s := range selectors {
			if !s(control, test) {
				return false
			}
		}
		return true
	}
}

// Or returns a selector that accepts a pair iff at least one of the given selectors accepts it.
// Or of nothing never accepts.
func Or(selectors ...ElementSelector) ElementSelector {
	selectors = slices.Clone(selectors)
	return func(control, test *etree.Element) bool {
		for _, s := range selectors {
			if s(control, test) {
				return true
			}
		}
		return false
	}
}

// Not returns a selector that accepts exactly the pairs s rejects.
func Not(s ElementSelector) ElementSelector {
	return func(control, test *etree.Element) bool {
		return !s(control, test)
	}
}
