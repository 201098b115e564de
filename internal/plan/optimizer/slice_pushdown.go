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

// SlicePushDown moves row windows as close to the data sources as legality
// allows, so operators below never materialize rows the query discards.
// A window travels down the tree as a pending sliceState; each operator kind
// either fuses it into its own slice capability, forwards it to its inputs,
// or refuses it, in which case the window is re-materialized as an explicit
// Slice node and optimization restarts below with no pending window.
type SlicePushDown struct {
	// streaming means the legacy streaming executor will run the plan. That
	// executor ignores the slice field of union options and cannot run a
	// sliced join, so the pass must keep explicit Slice nodes there.
	streaming bool
	// newStreaming means the current streaming executor will run the plan,
	// whose csv and ipc readers honor arbitrary row windows.
	newStreaming bool
	scratch      []arena.Node
}

func NewSlicePushDown(streaming, newStreaming bool) *SlicePushDown {
	return &SlicePushDown{
		streaming:    streaming,
		newStreaming: newStreaming,
	}
}

// emptyNodesScratch returns the shared scratch work-list after clearing.
func (s *SlicePushDown) emptyNodesScratch() *[]arena.Node {
	s.scratch = s.scratch[:0]
	return &s.scratch
}

// sliceState is a pending window over the output of the subtree currently
// being visited. nil means no window is pending and every row must survive.
// At most one state is in flight per subtree; fusing it into a node consumes
// it for that branch.
type sliceState struct {
	offset int64
	len    uint64
}

// Optimize rewrites the plan rooted at lp and returns the new root value.
func (s *SlicePushDown) Optimize(lp plan.LogicalNode, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (plan.LogicalNode, error) {
	return s.pushdown(lp, nil, lpArena, exprArena)
}

// finishHere materializes the pending window (if any) as an explicit Slice
// node above lp and stops optimizing this branch.
func (s *SlicePushDown) finishHere(lp plan.LogicalNode, state *sliceState, lpArena *arena.Arena[plan.LogicalNode]) plan.LogicalNode {
	if state == nil {
		return lp
	}
	input := lpArena.Add(lp)
	return &plan.Slice{
		Input:  input,
		Offset: state.offset,
		Len:    state.len,
	}
}

// restartHere re-optimizes every input of lp with no pending window, then
// materializes the pending window above lp. This is the blocking-operator
// route: the window stays here, but subtrees below get a fresh chance.
func (s *SlicePushDown) restartHere(lp plan.LogicalNode, state *sliceState, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (plan.LogicalNode, error) {
	lp, err := s.optimizeInputs(lp, nil, lpArena, exprArena)
	if err != nil {
		return nil, err
	}
	return s.finishHere(lp, state, lpArena), nil
}

// continueHere forwards the pending window into every input of lp unchanged.
// Whichever node below accepts the window consumes it.
func (s *SlicePushDown) continueHere(lp plan.LogicalNode, state *sliceState, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (plan.LogicalNode, error) {
	return s.optimizeInputs(lp, state, lpArena, exprArena)
}

func (s *SlicePushDown) optimizeInputs(lp plan.LogicalNode, state *sliceState, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (plan.LogicalNode, error) {
	inputs := lp.Inputs()
	if len(inputs) == 0 {
		return lp, nil
	}
	newInputs := make([]arena.Node, len(inputs))
	for i, node := range inputs {
		alp := lpArena.Take(node)
		alp, err := s.pushdown(alp, state, lpArena, exprArena)
		if err != nil {
			return nil, err
		}
		lpArena.Replace(node, alp)
		newInputs[i] = node
	}
	return lp.WithInputs(newInputs), nil
}

// restartChild re-optimizes a single child subtree with no pending window and
// stores the result at a fresh handle. Used by the operators that block a
// window but absorb it into their own options.
func (s *SlicePushDown) restartChild(child arena.Node, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (arena.Node, error) {
	lp := lpArena.Take(child)
	lp, err := s.pushdown(lp, nil, lpArena, exprArena)
	if err != nil {
		return child, err
	}
	return lpArena.Add(lp), nil
}

func (s *SlicePushDown) pushdown(lp plan.LogicalNode, state *sliceState, lpArena *arena.Arena[plan.LogicalNode], exprArena *arena.Arena[plan.AExpr]) (plan.LogicalNode, error) {
	switch p := lp.(type) {
	case *plan.ExternalScan:
		// External sources can only stop early, not seek, and they apply
		// their predicate while producing rows, so a window is delegated
		// only when it starts at row zero and no predicate is attached.
		if state != nil && state.offset == 0 && p.Options.Predicate == nil {
			n := state.len
			p.Options.NRows = &n
			return p, nil
		}
		return s.finishHere(p, state, lpArena), nil

	case *plan.Scan:
		if state != nil && p.Predicate == nil {
			switch p.ScanType.(type) {
			case *plan.CsvScan:
				if s.newStreaming {
					p.FileOptions.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
					return p, nil
				}
				if state.offset >= 0 {
					// The reader can stop after offset+len rows, but it
					// cannot skip, so the explicit Slice node above must
					// survive to enforce the window.
					p.FileOptions.Slice = &plan.SliceSpec{Offset: 0, Len: uint64(state.offset) + state.len}
					return s.finishHere(p, state, lpArena), nil
				}
			case *plan.ParquetScan:
				p.FileOptions.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
				return p, nil
			case *plan.IpcScan:
				if s.newStreaming {
					p.FileOptions.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
					return p, nil
				}
			}
			// Readers without seek support take a leading window only.
			if state.offset == 0 {
				p.FileOptions.Slice = &plan.SliceSpec{Offset: 0, Len: state.len}
				return p, nil
			}
		}
		return s.finishHere(p, state, lpArena), nil

	case *plan.DataFrameScan:
		// The frame is already resident; slice it eagerly.
		if state != nil {
			n := *p
			n.DF = p.DF.Slice(state.offset, state.len)
			return &n, nil
		}
		return p, nil

	case *plan.Union:
		if state == nil {
			return s.finishHere(p, nil, lpArena), nil
		}
		if state.offset == 0 {
			// Taking len rows from each branch bounds the union's output
			// correctly only when nothing is skipped first; a nonzero
			// offset cannot be distributed over interleaved inputs.
			for _, input := range p.IRInputs {
				inputLp := lpArena.Take(input)
				inputLp, err := s.pushdown(inputLp, state, lpArena, exprArena)
				if err != nil {
					return nil, err
				}
				lpArena.Replace(input, inputLp)
			}
		}
		n := *p
		n.Options.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
		if s.streaming {
			// The legacy streaming union ignores the option; keep the
			// explicit node so the window is enforced.
			return s.finishHere(&n, state, lpArena), nil
		}
		return &n, nil

	case *plan.Join:
		if state != nil && !s.streaming && p.Options != nil && p.Options.Args.How != plan.JoinTypeCross {
			inputLeft, err := s.restartChild(p.InputLeft, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			inputRight, err := s.restartChild(p.InputRight, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			n := *p
			opts := *p.Options
			opts.Args.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
			n.Options = &opts
			n.InputLeft = inputLeft
			n.InputRight = inputRight
			return &n, nil
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.GroupBy:
		if state != nil {
			input, err := s.restartChild(p.Input, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			n := *p
			var opts plan.GroupByOptions
			if p.Options != nil {
				opts = *p.Options
			}
			opts.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
			n.Options = &opts
			n.Input = input
			return &n, nil
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.Distinct:
		if state != nil {
			input, err := s.restartChild(p.Input, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			n := *p
			n.Options.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
			n.Input = input
			return &n, nil
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.Sort:
		if state != nil {
			input, err := s.restartChild(p.Input, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			n := *p
			n.Slice = &plan.SliceSpec{Offset: state.offset, Len: state.len}
			n.Input = input
			return &n, nil
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.Slice:
		if state != nil {
			// Two stacked windows. Matching offsets intersect to the
			// shorter length; on mismatch the inner window drives the
			// descent. Either way the outer window is re-wrapped around
			// the result.
			alp := lpArena.Take(p.Input)
			var merged *sliceState
			if state.offset == p.Offset {
				merged = &sliceState{offset: p.Offset, len: min(p.Len, state.len)}
			} else {
				merged = &sliceState{offset: p.Offset, len: p.Len}
			}
			child, err := s.pushdown(alp, merged, lpArena, exprArena)
			if err != nil {
				return nil, err
			}
			input := lpArena.Add(child)
			return &plan.Slice{
				Input:  input,
				Offset: state.offset,
				Len:    state.len,
			}, nil
		}
		// The node itself disappears; its window becomes the pending state.
		alp := lpArena.Take(p.Input)
		return s.pushdown(alp, &sliceState{offset: p.Offset, len: p.Len}, lpArena, exprArena)

	case *plan.Filter:
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.Cache:
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.MapFunction:
		switch p.Function.(type) {
		case *plan.ExplodeFunction, *plan.UnpivotFunction:
			return s.restartHere(p, state, lpArena, exprArena)
		}
		if p.Function.AllowPredicatePushdown() {
			return s.continueHere(p, state, lpArena, exprArena)
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.Select:
		if state == nil {
			return s.continueHere(p, nil, lpArena, exprArena)
		}
		if _, hasColumn := canPushdownSlicePastProjections(p.Expr, exprArena, s.emptyNodesScratch()); hasColumn {
			return s.continueHere(p, state, lpArena, exprArena)
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.HStack:
		if state == nil {
			return s.continueHere(p, nil, lpArena, exprArena)
		}
		canPushdown, hasColumn := canPushdownSlicePastProjections(p.HExprs, exprArena, s.emptyNodesScratch())
		// Even without a column in the new exprs, a surviving input column
		// in the output schema pins the height, so pushdown stays legal.
		if hasColumn || (p.Schema.Len() > len(p.HExprs) && canPushdown) {
			return s.continueHere(p, state, lpArena, exprArena)
		}
		return s.restartHere(p, state, lpArena, exprArena)

	case *plan.SimpleProjection:
		return s.continueHere(p, state, lpArena, exprArena)

	case *plan.HConcat:
		// Horizontal concatenation never changes per-row height, so the
		// same window distributes to every input.
		return s.continueHere(p, state, lpArena, exprArena)

	default:
		return s.finishHere(lp, state, lpArena), nil
	}
}
