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

import "znkr.io/xmldiff/internal/config"

// Option configures the behavior of [Pairs].
type Option = config.Option

// Selector adds an element selector to the set [Pairs] uses to pair elements. The option can be
// given multiple times; selectors are tried in order and each selector only sees nodes that the
// earlier selectors left unpaired. Without this option, [Pairs] uses [Default].
func Selector(s ElementSelector) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Selectors = append(cfg.Selectors, s)
		return config.Selector
	}
}

// MatchText requires text nodes to have equal character data to pair up. By default text nodes
// pair by kind alone.
func MatchText() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchText = true
		return config.MatchText
	}
}
