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

import (
	"fmt"
	"strings"

	"github.com/flintdb/flint/pkg/arena"
)

// Describe renders the plan rooted at node as an indented tree, one operator
// per line. The rendering is stable and is what plan tests assert against.
func Describe(node arena.Node, lpArena *arena.Arena[LogicalNode]) string {
	var sb strings.Builder
	describe(&sb, node, lpArena, 0)
	return sb.String()
}

// DescribeNode renders a root value that is not (or not yet) stored in the
// arena, such as the return value of an optimizer pass.
func DescribeNode(lp LogicalNode, lpArena *arena.Arena[LogicalNode]) string {
	var sb strings.Builder
	writeNode(&sb, lp, 0)
	for _, in := range lp.Inputs() {
		describe(&sb, in, lpArena, 1)
	}
	return sb.String()
}

func describe(sb *strings.Builder, node arena.Node, lpArena *arena.Arena[LogicalNode], depth int) {
	lp := lpArena.Get(node)
	writeNode(sb, lp, depth)
	for _, in := range lp.Inputs() {
		describe(sb, in, lpArena, depth+1)
	}
}

func writeNode(sb *strings.Builder, lp LogicalNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(nodeLabel(lp))
	sb.WriteString("\n")
}

func nodeLabel(lp LogicalNode) string {
	switch p := lp.(type) {
	case *Scan:
		return fmt.Sprintf("SCAN[%s]%s", p.ScanType.FormatName(), sliceTag(p.FileOptions.Slice))
	case *ExternalScan:
		if p.Options.NRows != nil {
			return fmt.Sprintf("EXTERNAL[n_rows=%d]", *p.Options.NRows)
		}
		return "EXTERNAL"
	case *DataFrameScan:
		return fmt.Sprintf("DF[height=%d]", p.DF.Height())
	case *Union:
		return fmt.Sprintf("UNION%s", sliceTag(p.Options.Slice))
	case *HConcat:
		return "HCONCAT"
	case *Select:
		return fmt.Sprintf("SELECT[%d]", len(p.Expr))
	case *HStack:
		return fmt.Sprintf("WITH_COLUMNS[%d]", len(p.HExprs))
	case *SimpleProjection:
		return fmt.Sprintf("PROJECT[%s]", strings.Join(p.Columns, ","))
	case *Filter:
		return "FILTER"
	case *Sort:
		return fmt.Sprintf("SORT%s", sliceTag(p.Slice))
	case *GroupBy:
		if p.Options == nil {
			return "GROUPBY"
		}
		return fmt.Sprintf("GROUPBY%s", sliceTag(p.Options.Slice))
	case *Distinct:
		return fmt.Sprintf("DISTINCT%s", sliceTag(p.Options.Slice))
	case *Join:
		if p.Options == nil {
			return "JOIN"
		}
		return fmt.Sprintf("JOIN[%s]%s", p.Options.Args.How, sliceTag(p.Options.Args.Slice))
	case *Cache:
		return fmt.Sprintf("CACHE[%d]", p.ID)
	case *MapFunction:
		return fmt.Sprintf("MAP[%s]", p.Function.Name())
	case *Slice:
		return fmt.Sprintf("SLICE[%d,%d]", p.Offset, p.Len)
	default:
		return "UNKNOWN"
	}
}

func sliceTag(s *SliceSpec) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("[slice=%d,%d]", s.Offset, s.Len)
}
