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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flintdb/flint/internal/pkg/def"
	"github.com/flintdb/flint/internal/plan"
)

func TestOptimize_RunsSlicePushdown(t *testing.T) {
	c := newPlanCtx()
	root := c.node(c.sliced(parquetScan(), 2, 3))

	newRoot, err := Optimize(root, c.lp, c.ep, &def.RuleOption{})
	require.NoError(t, err)
	require.Equal(t, "SCAN[parquet][slice=2,3]\n", plan.Describe(newRoot, c.lp))
}

func TestOptimize_RuleDisabled(t *testing.T) {
	cases := []struct {
		name     string
		strategy *def.PlanOptimizeStrategy
	}{
		{
			name:     "dedicated toggle",
			strategy: &def.PlanOptimizeStrategy{DisableSlicePushdown: true},
		},
		{
			name:     "by rule name",
			strategy: &def.PlanOptimizeStrategy{DisabledRules: []string{"slicePushdown"}},
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := newPlanCtx()
			root := c.node(c.sliced(parquetScan(), 2, 3))

			newRoot, err := Optimize(root, c.lp, c.ep, &def.RuleOption{PlanOptimizeStrategy: tt.strategy})
			require.NoError(t, err)
			require.Equal(t, "SLICE[2,3]\n  SCAN[parquet]\n", plan.Describe(newRoot, c.lp))
		})
	}
}

func TestOptimize_ModesComeFromRuleOption(t *testing.T) {
	c := newPlanCtx()
	root := c.node(c.sliced(csvScan(), 2, 3))

	newRoot, err := Optimize(root, c.lp, c.ep, &def.RuleOption{NewStreaming: true})
	require.NoError(t, err)
	require.Equal(t, "SCAN[csv][slice=2,3]\n", plan.Describe(newRoot, c.lp))
}
