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

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testYaml = `
basic:
  debug: false
  logLevel: warn
engine:
  streaming: true
`

func writeConf(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "flint.yaml")
	require.NoError(t, os.WriteFile(p, []byte(testYaml), 0o644))
	return p
}

func TestLoadConfigFromPath(t *testing.T) {
	c := &FlintConf{}
	require.NoError(t, LoadConfigFromPath(writeConf(t), c))
	require.False(t, c.Basic.Debug)
	require.Equal(t, "warn", c.Basic.LogLevel)
	require.True(t, c.Engine.Streaming)
	require.False(t, c.Engine.NewStreaming)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FLINT__BASIC__DEBUG", "true")
	t.Setenv("FLINT__ENGINE__NEWSTREAMING", "true")
	c := &FlintConf{}
	require.NoError(t, LoadConfigFromPath(writeConf(t), c))
	require.True(t, c.Basic.Debug)
	require.True(t, c.Engine.NewStreaming)
	// untouched keys keep their file values
	require.Equal(t, "warn", c.Basic.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	c := &FlintConf{}
	require.Error(t, LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"), c))
}
