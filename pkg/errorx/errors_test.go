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

package errorx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	e := New("boom")
	require.Equal(t, "boom", e.Error())
	require.Equal(t, GENERAL_ERR, e.Code())

	p := NewWithCode(PlanError, "bad plan")
	require.Equal(t, PlanError, p.Code())
	require.True(t, IsPlanError(p))
	require.False(t, IsPlanError(e))
	require.False(t, IsPlanError(errors.New("plain")))

	require.Equal(t, PlanError, GetCode(p))
	require.Equal(t, GENERAL_ERR, GetCode(errors.New("plain")))
}
