// Copyright 2025 FlintDB Authors.
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

// Package def declares the option structs shared between the plan builder,
// the optimizer and the executors.
package def

// RuleOption carries per-query execution settings that influence planning.
type RuleOption struct {
	Debug bool `json:"debug" yaml:"debug"`
	// Streaming runs the query on the legacy streaming executor. Some
	// operators behave differently there, which restricts what the
	// optimizer may rewrite.
	Streaming bool `json:"streaming" yaml:"streaming"`
	// NewStreaming runs the query on the current streaming executor.
	NewStreaming         bool                  `json:"newStreaming" yaml:"newStreaming"`
	PlanOptimizeStrategy *PlanOptimizeStrategy `json:"planOptimizeStrategy,omitempty" yaml:"planOptimizeStrategy,omitempty"`
}

// PlanOptimizeStrategy lets a query disable individual optimizer rules.
// A nil strategy enables everything.
type PlanOptimizeStrategy struct {
	DisableSlicePushdown bool     `json:"disableSlicePushdown,omitempty" yaml:"disableSlicePushdown,omitempty"`
	DisabledRules        []string `json:"disabledRules,omitempty" yaml:"disabledRules,omitempty"`
}

func (p *PlanOptimizeStrategy) IsSlicePushdownEnabled() bool {
	if p == nil {
		return true
	}
	return !p.DisableSlicePushdown
}

// IsOptimizeEnabled reports whether the named rule should run.
func (p *PlanOptimizeStrategy) IsOptimizeEnabled(name string) bool {
	if p == nil {
		return true
	}
	if name == "slicePushdown" && p.DisableSlicePushdown {
		return false
	}
	for _, n := range p.DisabledRules {
		if n == name {
			return false
		}
	}
	return true
}
