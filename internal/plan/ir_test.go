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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flintdb/flint/pkg/arena"
)

func TestWithInputsCopies(t *testing.T) {
	lp := arena.New[LogicalNode](8)
	scan1 := lp.Add(&Scan{ScanType: &ParquetScan{}})
	scan2 := lp.Add(&Scan{ScanType: &ParquetScan{}})

	f := &Filter{Input: scan1}
	g := f.WithInputs([]arena.Node{scan2}).(*Filter)
	require.Equal(t, scan1, f.Input)
	require.Equal(t, scan2, g.Input)

	j := &Join{InputLeft: scan1, InputRight: scan1, Options: &JoinOptions{}}
	j2 := j.WithInputs([]arena.Node{scan2, scan1}).(*Join)
	require.Equal(t, scan2, j2.InputLeft)
	require.Equal(t, scan1, j2.InputRight)
	require.Equal(t, []arena.Node{scan1, scan1}, j.Inputs())
}

func TestExprsCollectsKeysAndAggs(t *testing.T) {
	ep := arena.New[AExpr](8)
	key := ExprIR{Root: ep.Add(&Column{Name: "k"})}
	agg := ExprIR{Root: ep.Add(&Agg{Input: ep.Add(&Column{Name: "v"}), Kind: AggSum})}

	g := &GroupBy{Keys: []ExprIR{key}, Aggs: []ExprIR{agg}}
	require.Equal(t, []ExprIR{key, agg}, g.Exprs())
}

func TestDescribe(t *testing.T) {
	lp := arena.New[LogicalNode](8)
	scan := lp.Add(&Scan{ScanType: &CsvScan{}, FileOptions: FileScanOptions{Slice: &SliceSpec{Offset: 0, Len: 5}}})
	filter := lp.Add(&Filter{Input: scan})
	root := lp.Add(&Slice{Input: filter, Offset: 2, Len: 3})

	require.Equal(t, "SLICE[2,3]\n  FILTER\n    SCAN[csv][slice=0,5]\n", Describe(root, lp))
}

func TestLiteralProjectsAsScalar(t *testing.T) {
	require.True(t, LiteralValue{Value: 1}.ProjectsAsScalar())
	require.True(t, LiteralValue{}.ProjectsAsScalar())
	require.False(t, LiteralValue{Series: []any{1, 2}}.ProjectsAsScalar())
}
