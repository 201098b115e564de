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

package optimizer

import (
	"github.com/flintdb/flint/internal/pkg/def"
	"github.com/flintdb/flint/internal/plan"
	"github.com/flintdb/flint/pkg/arena"
)

type logicalOptRule interface {
	optimize(root arena.Node, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr], options *def.RuleOption) (arena.Node, error)
	name() string
}

type slicePushdownRule struct{}

func (r *slicePushdownRule) optimize(root arena.Node, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr], options *def.RuleOption) (arena.Node, error) {
	sp := NewSlicePushDown(options.Streaming, options.NewStreaming)
	lp := lpArena.Take(root)
	lp, err := sp.Optimize(lp, lpArena, exprArena)
	if err != nil {
		return root, err
	}
	lpArena.Replace(root, lp)
	return root, nil
}

func (r *slicePushdownRule) name() string {
	return "slicePushdown"
}
