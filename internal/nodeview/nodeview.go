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

// Package nodeview provides a read-only view of etree nodes for matching purposes.
//
// The view normalizes the parts of a node that matter for element correspondence: qualified
// names with resolved namespace URIs, attribute maps without namespace declarations, merged
// direct text, and a coarse node kind. Nothing in this package ever modifies a tree.
package nodeview

import (
	"strings"

	"github.com/beevik/etree"
)

// QName identifies an element or attribute by namespace URI and local name. The zero Space means
// the name is in no namespace. QName is comparable and can be used as a map key.
type QName struct {
	Space string // namespace URI, "" if absent
	Local string
}

// String renders the name in Clark notation: "{uri}local", or just "local" if the name is in no
// namespace.
func (n QName) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// ParseQName parses Clark notation as produced by [QName.String]. Input without a leading '{' is
// a local name in no namespace.
func ParseQName(s string) QName {
	if strings.HasPrefix(s, "{") {
		if i := strings.Index(s, "}"); i >= 0 {
			return QName{Space: s[1:i], Local: s[i+1:]}
		}
	}
	return QName{Local: s}
}

// Kind is the coarse node classification used during structural comparison.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	KindElement Kind = iota // an element node
	KindText                // character data, CDATA included
	KindOther               // comment, processing instruction, directive
)

// KindOf classifies a single etree token.
func KindOf(tok etree.Token) Kind {
	switch tok.(type) {
	case *etree.Element:
		return KindElement
	case *etree.CharData:
		return KindText
	default:
		return KindOther
	}
}

// NameOf returns the qualified name of an element with its namespace prefix resolved to a URI.
func NameOf(e *etree.Element) QName {
	return QName{Space: e.NamespaceURI(), Local: e.Tag}
}

// Attributes returns the element's attributes as a map from qualified name to value. Namespace
// declarations (xmlns and xmlns:*) are not attributes for matching purposes and are skipped. The
// map is built fresh on every call and owned by the caller.
func Attributes(e *etree.Element) map[QName]string {
	attrs := make(map[QName]string, len(e.Attr))
	for _, a := range e.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		attrs[QName{Space: a.NamespaceURI(), Local: a.Key}] = a.Value
	}
	return attrs
}

// NamespaceOf returns the namespace URI of the first attribute, in document order, whose local
// name is local. The second return value reports whether such an attribute exists.
func NamespaceOf(e *etree.Element, local string) (string, bool) {
	for _, a := range e.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Key == local {
			return a.NamespaceURI(), true
		}
	}
	return "", false
}

// MergedText returns the concatenation of the element's direct character data children in
// document order. ok is false if the element has no such children or their concatenation is
// empty; absent and empty text are not distinguished.
func MergedText(e *etree.Element) (text string, ok bool) {
	var sb strings.Builder
	for _, tok := range e.Child {
		if cd, isText := tok.(*etree.CharData); isText {
			sb.WriteString(cd.Data)
		}
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}
