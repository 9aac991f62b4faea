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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// xmldiff.Option.
package config

import "github.com/beevik/etree"

// Config collects all configurable parameters for node pairing in this module.
type Config struct {
	// Selectors are the element selectors tried when pairing sibling sequences, in order. Each
	// selector only sees nodes that earlier selectors left unpaired.
	Selectors []func(control, test *etree.Element) bool

	// If set, text nodes only pair when their character data is equal.
	MatchText bool
}

// Default is the default configuration. The default selector set is empty; the caller is
// expected to substitute its notion of "match everything" in that case.
var Default = Config{
	Selectors: nil,
	MatchText: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed for an operation.
type Flag int

const (
	Selector Flag = 1 << iota
	MatchText
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Selector:
		return "xmldiff.Selector"
	case MatchText:
		return "xmldiff.MatchText"
	default:
		panic("never reached")
	}
}
