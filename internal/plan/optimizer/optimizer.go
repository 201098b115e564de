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

// Package optimizer rewrites logical plans before execution. Rules run in a
// fixed order over the shared plan/expression arenas and may be disabled per
// query through the rule options.
package optimizer

import (
	"github.com/flintdb/flint/internal/conf"
	"github.com/flintdb/flint/internal/pkg/def"
	"github.com/flintdb/flint/internal/plan"
	"github.com/flintdb/flint/pkg/arena"
	"github.com/flintdb/flint/pkg/errorx"
)

var optRuleList = []logicalOptRule{
	&slicePushdownRule{},
}

// Optimize runs every enabled rule and returns the (possibly new) root.
func Optimize(root arena.Node, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr], options *def.RuleOption) (arena.Node, error) {
	var err error
	for _, rule := range optRuleList {
		if options.PlanOptimizeStrategy.IsOptimizeEnabled(rule.name()) {
			conf.Log.Debugf("apply optimize rule %s", rule.name())
			root, err = rule.optimize(root, lpArena, exprArena, options)
			if err != nil {
				return root, errorx.NewWithCode(errorx.PlanError, err.Error())
			}
		}
	}
	return root, err
}
