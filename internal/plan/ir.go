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

// Package plan defines the logical-plan and expression IRs of the lazy-frame
// engine. Plan nodes reference their children through arena handles, never by
// direct ownership, so subtrees can be shared and rewritten in place.
package plan

import "github.com/flintdb/flint/pkg/arena"

// SliceSpec is a (offset, length) row window. Offset may be negative, in
// which case it counts from the end of the frame.
type SliceSpec struct {
	Offset int64
	Len    uint64
}

// LogicalNode is one operator of the logical plan. The variant set is closed:
// optimizer rules dispatch on the concrete type and treat anything they do
// not recognize as an opaque barrier.
type LogicalNode interface {
	logicalNode()
	// Inputs returns the child plan handles in a fixed order.
	Inputs() []arena.Node
	// Exprs returns the expression roots the node owns.
	Exprs() []ExprIR
	// WithInputs returns a copy of the node with its children replaced. The
	// slice must have the same length as Inputs returns.
	WithInputs(inputs []arena.Node) LogicalNode
}

type (
	// Scan reads rows from files of a specific format.
	Scan struct {
		Sources     []string
		Predicate   *ExprIR
		FileOptions FileScanOptions
		ScanType    FileScan
	}

	// ExternalScan pulls rows from a user-provided external source, such as
	// a registered callback or a foreign table function.
	ExternalScan struct {
		Options ExternalScanOptions
	}

	// DataFrameScan reads an already materialized in-memory frame.
	DataFrameScan struct {
		DF           *DataFrame
		Schema       *Schema
		OutputSchema *Schema
	}

	// Union concatenates its inputs vertically.
	Union struct {
		IRInputs []arena.Node
		Options  UnionOptions
	}

	// HConcat concatenates its inputs horizontally. All inputs have the same
	// height, so per-row windows distribute to every input unchanged.
	HConcat struct {
		IRInputs []arena.Node
		Schema   *Schema
	}

	// Select projects a new set of expressions.
	Select struct {
		Input   arena.Node
		Expr    []ExprIR
		Schema  *Schema
		Options ProjectionOptions
	}

	// HStack appends new columns to the input frame.
	HStack struct {
		Input   arena.Node
		HExprs  []ExprIR
		Schema  *Schema
		Options ProjectionOptions
	}

	// SimpleProjection selects a subset of input columns by name.
	SimpleProjection struct {
		Input   arena.Node
		Columns []string
	}

	// Filter keeps the rows for which the predicate is true.
	Filter struct {
		Input     arena.Node
		Predicate ExprIR
	}

	// Sort orders rows by the given expressions. Slice, when set, limits the
	// sorted output and lets the executor run a top-k instead of a full sort.
	Sort struct {
		Input       arena.Node
		ByColumn    []ExprIR
		Slice       *SliceSpec
		SortOptions SortOptions
	}

	// GroupBy groups rows by key expressions and evaluates aggregations.
	GroupBy struct {
		Input         arena.Node
		Keys          []ExprIR
		Aggs          []ExprIR
		Schema        *Schema
		MaintainOrder bool
		Options       *GroupByOptions
	}

	// Distinct drops duplicate rows.
	Distinct struct {
		Input   arena.Node
		Options DistinctOptions
	}

	// Join combines two inputs on key equality.
	Join struct {
		InputLeft  arena.Node
		InputRight arena.Node
		Schema     *Schema
		LeftOn     []ExprIR
		RightOn    []ExprIR
		Options    *JoinOptions
	}

	// Cache marks a shared subtree whose result is materialized once.
	Cache struct {
		Input arena.Node
		ID    uint64
	}

	// MapFunction applies an opaque frame-to-frame function.
	MapFunction struct {
		Input    arena.Node
		Function FunctionIR
	}

	// Slice keeps Len rows starting at Offset of its input.
	Slice struct {
		Input  arena.Node
		Offset int64
		Len    uint64
	}
)

func (*Scan) logicalNode()             {}
func (*ExternalScan) logicalNode()     {}
func (*DataFrameScan) logicalNode()    {}
func (*Union) logicalNode()            {}
func (*HConcat) logicalNode()          {}
func (*Select) logicalNode()           {}
func (*HStack) logicalNode()           {}
func (*SimpleProjection) logicalNode() {}
func (*Filter) logicalNode()           {}
func (*Sort) logicalNode()             {}
func (*GroupBy) logicalNode()          {}
func (*Distinct) logicalNode()         {}
func (*Join) logicalNode()             {}
func (*Cache) logicalNode()            {}
func (*MapFunction) logicalNode()      {}
func (*Slice) logicalNode()            {}

func (*Scan) Inputs() []arena.Node          { return nil }
func (*ExternalScan) Inputs() []arena.Node  { return nil }
func (*DataFrameScan) Inputs() []arena.Node { return nil }

func (p *Union) Inputs() []arena.Node            { return p.IRInputs }
func (p *HConcat) Inputs() []arena.Node          { return p.IRInputs }
func (p *Select) Inputs() []arena.Node           { return []arena.Node{p.Input} }
func (p *HStack) Inputs() []arena.Node           { return []arena.Node{p.Input} }
func (p *SimpleProjection) Inputs() []arena.Node { return []arena.Node{p.Input} }
func (p *Filter) Inputs() []arena.Node           { return []arena.Node{p.Input} }
func (p *Sort) Inputs() []arena.Node             { return []arena.Node{p.Input} }
func (p *GroupBy) Inputs() []arena.Node          { return []arena.Node{p.Input} }
func (p *Distinct) Inputs() []arena.Node         { return []arena.Node{p.Input} }
func (p *Join) Inputs() []arena.Node             { return []arena.Node{p.InputLeft, p.InputRight} }
func (p *Cache) Inputs() []arena.Node            { return []arena.Node{p.Input} }
func (p *MapFunction) Inputs() []arena.Node      { return []arena.Node{p.Input} }
func (p *Slice) Inputs() []arena.Node            { return []arena.Node{p.Input} }

func (p *Scan) Exprs() []ExprIR {
	if p.Predicate != nil {
		return []ExprIR{*p.Predicate}
	}
	return nil
}

func (p *ExternalScan) Exprs() []ExprIR {
	if p.Options.Predicate != nil {
		return []ExprIR{*p.Options.Predicate}
	}
	return nil
}

func (*DataFrameScan) Exprs() []ExprIR    { return nil }
func (*Union) Exprs() []ExprIR            { return nil }
func (*HConcat) Exprs() []ExprIR          { return nil }
func (p *Select) Exprs() []ExprIR         { return p.Expr }
func (p *HStack) Exprs() []ExprIR         { return p.HExprs }
func (*SimpleProjection) Exprs() []ExprIR { return nil }
func (p *Filter) Exprs() []ExprIR         { return []ExprIR{p.Predicate} }
func (p *Sort) Exprs() []ExprIR           { return p.ByColumn }

func (p *GroupBy) Exprs() []ExprIR {
	out := make([]ExprIR, 0, len(p.Keys)+len(p.Aggs))
	out = append(out, p.Keys...)
	out = append(out, p.Aggs...)
	return out
}

func (*Distinct) Exprs() []ExprIR { return nil }

func (p *Join) Exprs() []ExprIR {
	out := make([]ExprIR, 0, len(p.LeftOn)+len(p.RightOn))
	out = append(out, p.LeftOn...)
	out = append(out, p.RightOn...)
	return out
}

func (*Cache) Exprs() []ExprIR       { return nil }
func (*MapFunction) Exprs() []ExprIR { return nil }
func (*Slice) Exprs() []ExprIR       { return nil }

func (p *Scan) WithInputs(_ []arena.Node) LogicalNode          { return p }
func (p *ExternalScan) WithInputs(_ []arena.Node) LogicalNode  { return p }
func (p *DataFrameScan) WithInputs(_ []arena.Node) LogicalNode { return p }

func (p *Union) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.IRInputs = inputs
	return &n
}

func (p *HConcat) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.IRInputs = inputs
	return &n
}

func (p *Select) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *HStack) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *SimpleProjection) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *Filter) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *Sort) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *GroupBy) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *Distinct) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *Join) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.InputLeft = inputs[0]
	n.InputRight = inputs[1]
	return &n
}

func (p *Cache) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *MapFunction) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

func (p *Slice) WithInputs(inputs []arena.Node) LogicalNode {
	n := *p
	n.Input = inputs[0]
	return &n
}

// Schema is the ordered column layout a node produces.
type Schema struct {
	Fields []SchemaField
}

// SchemaField is one column of a schema.
type SchemaField struct {
	Name string
	Type DataType
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// NewSchema builds a schema from name/type pairs.
func NewSchema(fields ...SchemaField) *Schema {
	return &Schema{Fields: fields}
}
