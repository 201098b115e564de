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

import "github.com/flintdb/flint/pkg/arena"

// ExprIR is a reference to an expression subtree rooted in the expression
// arena, together with the output column name it projects to.
type ExprIR struct {
	Root  arena.Node
	Alias string
}

// Node returns the root handle of the expression subtree.
func (e ExprIR) Node() arena.Node {
	return e.Root
}

// AExpr is one node of the expression IR. The variant set is closed; new
// variants must be taught to the optimizer's legality checks.
type AExpr interface {
	aexpr()
	// AppendInputs appends the node's child handles to stack. The optimizer
	// walks expression trees with an explicit work-list instead of recursion.
	AppendInputs(stack *[]arena.Node)
}

// LiteralValue is the payload of a Literal expression. A scalar literal
// broadcasts to the height of its siblings; a series literal pins its own
// height and therefore blocks height-changing rewrites above it.
type LiteralValue struct {
	Value  any
	Series []any
}

// ProjectsAsScalar reports whether the literal projects as a single value.
func (lv LiteralValue) ProjectsAsScalar() bool {
	return lv.Series == nil
}

type (
	// Column references an input column by name.
	Column struct {
		Name string
	}

	// Literal holds a constant value.
	Literal struct {
		Value LiteralValue
	}

	// Alias renames the output of its input expression.
	Alias struct {
		Input arena.Node
		Name  string
	}

	// BinaryExpr applies an elementwise binary operator.
	BinaryExpr struct {
		Left  arena.Node
		Op    Operator
		Right arena.Node
	}

	// Cast converts its input to another data type.
	Cast struct {
		Input arena.Node
		To    DataType
	}

	// SortExpr sorts the values of its input expression.
	SortExpr struct {
		Input      arena.Node
		Descending bool
	}

	// Ternary is if-then-else over three expressions.
	Ternary struct {
		Predicate arena.Node
		Truthy    arena.Node
		Falsy     arena.Node
	}

	// Function applies a named function to its inputs.
	Function struct {
		Inputs  []arena.Node
		Name    string
		Options FunctionOptions
	}

	// Agg reduces its input to a single value per group.
	Agg struct {
		Input arena.Node
		Kind  AggKind
	}

	// Window evaluates its input over partitions.
	Window struct {
		Input       arena.Node
		PartitionBy []arena.Node
	}

	// Explode flattens list values into rows.
	Explode struct {
		Input arena.Node
	}

	// Gather selects values of the input by index.
	Gather struct {
		Input   arena.Node
		Indices arena.Node
	}

	// Len evaluates to the height of the input frame.
	Len struct{}
)

// Operator is an elementwise binary operator tag.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAnd
	OpOr
)

// DataType is a column data type tag.
type DataType string

// AggKind is an aggregation kind tag.
type AggKind int

const (
	AggSum AggKind = iota
	AggMin
	AggMax
	AggMean
	AggCount
	AggFirst
	AggLast
)

// FunctionOptions carries per-function capability flags the optimizer
// consults instead of knowing function names.
type FunctionOptions struct {
	// ElementWise functions map each input row to exactly one output row.
	ElementWise bool
	// ChangesLength functions may produce a different height than the input.
	ChangesLength bool
}

func (*Column) aexpr()     {}
func (*Literal) aexpr()    {}
func (*Alias) aexpr()      {}
func (*BinaryExpr) aexpr() {}
func (*Cast) aexpr()       {}
func (*SortExpr) aexpr()   {}
func (*Ternary) aexpr()    {}
func (*Function) aexpr()   {}
func (*Agg) aexpr()        {}
func (*Window) aexpr()     {}
func (*Explode) aexpr()    {}
func (*Gather) aexpr()     {}
func (*Len) aexpr()        {}

func (*Column) AppendInputs(_ *[]arena.Node)  {}
func (*Literal) AppendInputs(_ *[]arena.Node) {}
func (*Len) AppendInputs(_ *[]arena.Node)     {}

func (e *Alias) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
}

func (e *BinaryExpr) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Left, e.Right)
}

func (e *Cast) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
}

func (e *SortExpr) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
}

func (e *Ternary) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Predicate, e.Truthy, e.Falsy)
}

func (e *Function) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Inputs...)
}

func (e *Agg) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
}

func (e *Window) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
	*stack = append(*stack, e.PartitionBy...)
}

func (e *Explode) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input)
}

func (e *Gather) AppendInputs(stack *[]arena.Node) {
	*stack = append(*stack, e.Input, e.Indices)
}
