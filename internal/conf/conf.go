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

// Package conf holds the engine configuration and the shared logger.
package conf

// FlintConf is the top-level engine configuration, loaded from flint.yaml.
type FlintConf struct {
	Basic struct {
		Debug    bool   `yaml:"debug"`
		LogLevel string `yaml:"logLevel"`
	} `yaml:"basic"`
	Engine struct {
		// Streaming selects the legacy streaming executor.
		Streaming bool `yaml:"streaming"`
		// NewStreaming selects the current streaming executor.
		NewStreaming bool `yaml:"newStreaming"`
	} `yaml:"engine"`
}

var Config *FlintConf

// InitConf loads flint.yaml from the given path and applies the log level.
func InitConf(path string) error {
	c := &FlintConf{}
	c.Basic.LogLevel = "info"
	if err := LoadConfigFromPath(path, c); err != nil {
		return err
	}
	Config = c
	SetLogLevel(c.Basic.LogLevel, c.Basic.Debug)
	return nil
}
