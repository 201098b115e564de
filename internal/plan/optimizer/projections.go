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
	"github.com/flintdb/flint/internal/plan"
	"github.com/flintdb/flint/pkg/arena"
)

// permitsFilterPushdown reports whether a row-selecting rewrite (filter or
// slice) may move past the given expression node, and appends the node's
// children to the shared work-list so the caller's walk continues. Nodes that
// reorder, regroup or change the height of their input refuse pushdown.
func permitsFilterPushdown(stack *[]arena.Node, ae plan.AExpr, _ *arena.Arena[plan.AExpr]) bool {
	switch e := ae.(type) {
	case *plan.SortExpr, *plan.Gather, *plan.Explode, *plan.Window, *plan.Agg, *plan.Len:
		return false
	case *plan.Function:
		if e.Options.ChangesLength || !e.Options.ElementWise {
			return false
		}
	}
	ae.AppendInputs(stack)
	return true
}

// canPushdownSlicePastProjections decides whether a slice may move below a
// projection without changing which rows it selects. Legal when:
//   - every expression is elementwise, and
//   - expressions not based on any column project as scalars.
//
// An expression without a column reference and with a non-scalar literal pins
// a fixed height independent of the input, e.g. `select(c = lit([1,2,3]))`,
// so slicing above and below it are different queries.
//
// Returns (canPushdown, canPushdownAndAnyExprHasColumn). The second value is
// what single-projection nodes need: at least one column reference must tie
// the output height to the input height.
func canPushdownSlicePastProjections(exprs []plan.ExprIR, exprArena *arena.Arena[plan.AExpr], scratch *[]arena.Node) (bool, bool) {
	*scratch = (*scratch)[:0]

	anyExprHasColumn := false

	for _, expr := range exprs {
		*scratch = append(*scratch, expr.Node())

		hasColumn := false
		literalsAllScalar := true

		for len(*scratch) > 0 {
			node := (*scratch)[len(*scratch)-1]
			*scratch = (*scratch)[:len(*scratch)-1]
			ae := exprArena.Get(node)

			switch v := ae.(type) {
			case *plan.Column:
				hasColumn = true
			case *plan.Literal:
				literalsAllScalar = literalsAllScalar && v.Value.ProjectsAsScalar()
			}

			if !permitsFilterPushdown(scratch, ae, exprArena) {
				return false, false
			}
		}

		if !hasColumn && !literalsAllScalar {
			return false, false
		}

		anyExprHasColumn = anyExprHasColumn || hasColumn
	}

	return true, anyExprHasColumn
}
