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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Separator splits nested keys in environment-variable overrides, e.g.
// FLINT__BASIC__DEBUG=true overrides basic.debug in flint.yaml.
const Separator = "__"

func LoadConfigFromPath(p string, c interface{}) error {
	prefix := getPrefix(p)
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	configMap := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &configMap); err != nil {
		return err
	}
	if err := applyEnvironment(configMap, os.Environ(), prefix); err != nil {
		return err
	}
	return mapstructure.Decode(configMap, c)
}

func getPrefix(p string) string {
	_, file := path.Split(p)
	return strings.ToUpper(strings.TrimSuffix(file, filepath.Ext(file)))
}

func applyEnvironment(configMap map[string]interface{}, variables []string, prefix string) error {
	for _, e := range variables {
		if !strings.HasPrefix(e, prefix+Separator) {
			continue
		}
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 {
			return fmt.Errorf("wrong format of variable %q", e)
		}
		keys := nameToKeys(strings.TrimPrefix(pair[0], prefix+Separator))
		setValue(configMap, keys, pair[1])
	}
	return nil
}

func nameToKeys(name string) []string {
	keys := strings.Split(strings.ToLower(name), Separator)
	return keys
}

func setValue(m map[string]interface{}, keys []string, value string) {
	for i, k := range keys {
		if i == len(keys)-1 {
			m[k] = parseScalar(value)
			return
		}
		next, ok := m[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[k] = next
		}
		m = next
	}
}

func parseScalar(v string) interface{} {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
