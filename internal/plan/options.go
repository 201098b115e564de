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

package plan

// UnionOptions configure vertical concatenation. The in-memory union
// executor honors Slice directly; the legacy streaming engine does not, so
// the optimizer keeps an explicit Slice node above the union in that mode.
type UnionOptions struct {
	Slice    *SliceSpec
	Parallel bool
	Rechunk  bool
}

// ProjectionOptions configure Select and HStack evaluation.
type ProjectionOptions struct {
	RunParallel     bool
	DuplicateCheck  bool
	ShouldBroadcast bool
}

// SortOptions configure row ordering.
type SortOptions struct {
	Descending      []bool
	NullsLast       []bool
	MaintainOrder   bool
	MultithreadSort bool
}

// GroupByOptions configure aggregation. Slice limits the grouped output and
// is filled in exclusively by the optimizer.
type GroupByOptions struct {
	Slice *SliceSpec
}

// DistinctKeepStrategy selects which duplicate survives deduplication.
type DistinctKeepStrategy int

const (
	DistinctKeepAny DistinctKeepStrategy = iota
	DistinctKeepFirst
	DistinctKeepLast
	DistinctKeepNone
)

// DistinctOptions configure deduplication.
type DistinctOptions struct {
	Subset        []string
	Keep          DistinctKeepStrategy
	MaintainOrder bool
	Slice         *SliceSpec
}

// JoinType is the join variant tag.
type JoinType int

const (
	JoinTypeInner JoinType = iota
	JoinTypeLeft
	JoinTypeRight
	JoinTypeFull
	JoinTypeSemi
	JoinTypeAnti
	JoinTypeCross
)

func (t JoinType) String() string {
	switch t {
	case JoinTypeInner:
		return "inner"
	case JoinTypeLeft:
		return "left"
	case JoinTypeRight:
		return "right"
	case JoinTypeFull:
		return "full"
	case JoinTypeSemi:
		return "semi"
	case JoinTypeAnti:
		return "anti"
	case JoinTypeCross:
		return "cross"
	default:
		return "unknown"
	}
}

// JoinArgs are the executor-facing join settings.
type JoinArgs struct {
	How           JoinType
	Nulls         bool
	Suffix        string
	Slice         *SliceSpec
	MaintainOrder bool
}

// JoinOptions wrap JoinArgs together with planner-only settings.
type JoinOptions struct {
	Args          JoinArgs
	AllowParallel bool
	ForceParallel bool
}

// FunctionIR is a frame-to-frame transform attached to a MapFunction node.
// The closed variant set mirrors the transforms the executor ships with; the
// Opaque variant covers user functions and carries its own capability flags.
type FunctionIR interface {
	functionIR()
	// AllowPredicatePushdown reports whether a row-selecting rewrite may
	// move below this function without changing its result.
	AllowPredicatePushdown() bool
	// Name is the explain tag.
	Name() string
}

type (
	// ExplodeFunction flattens list columns into rows.
	ExplodeFunction struct {
		Columns []string
	}

	// UnpivotFunction melts columns into rows.
	UnpivotFunction struct {
		On    []string
		Index []string
	}

	// RenameFunction renames columns without touching rows.
	RenameFunction struct {
		Existing []string
		New      []string
	}

	// RowIndexFunction prepends a row-count column.
	RowIndexFunction struct {
		ColumnName string
	}

	// OpaqueFunction is a user-supplied transform; its author declares what
	// rewrites it tolerates.
	OpaqueFunction struct {
		Tag         string
		PredicatePD bool
	}
)

func (*ExplodeFunction) functionIR()  {}
func (*UnpivotFunction) functionIR()  {}
func (*RenameFunction) functionIR()   {}
func (*RowIndexFunction) functionIR() {}
func (*OpaqueFunction) functionIR()   {}

func (*ExplodeFunction) AllowPredicatePushdown() bool  { return false }
func (*UnpivotFunction) AllowPredicatePushdown() bool  { return false }
func (*RenameFunction) AllowPredicatePushdown() bool   { return true }
func (*RowIndexFunction) AllowPredicatePushdown() bool { return false }

func (f *OpaqueFunction) AllowPredicatePushdown() bool { return f.PredicatePD }

func (*ExplodeFunction) Name() string  { return "explode" }
func (*UnpivotFunction) Name() string  { return "unpivot" }
func (*RenameFunction) Name() string   { return "rename" }
func (*RowIndexFunction) Name() string { return "row_index" }
func (f *OpaqueFunction) Name() string { return f.Tag }
