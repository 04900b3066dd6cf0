// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

type SortOptions struct {
	Parallel bool `toml:"parallel"`
	InPlace  bool `toml:"inPlace"`
}

type DebugOptions struct {
	PrintResult  bool `toml:"printResult"`
	MaxPrintRows int  `toml:"maxPrintRows"`
}

type Config struct {
	Sort  SortOptions  `toml:"sort"`
	Debug DebugOptions `toml:"debug"`
}

var defCfgFilePaths = []string{".", "etc/colsort"}

const cfgFileName = "colsort.toml"

// LoadConfigFile decodes one toml file into a Config.
func LoadConfigFile(fpath string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(fpath, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config file %s: %w", fpath, err)
	}
	return cfg, nil
}

// LoadConfig probes the default locations for colsort.toml. A missing
// file is not an error. Defaults apply.
func LoadConfig() (Config, error) {
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if FileIsValid(fpath) {
			cfg, err := LoadConfigFile(fpath)
			if err != nil {
				Error("load config file failed",
					zap.String("fpath", fpath),
					zap.Error(err))
				return Config{}, err
			}
			return cfg, nil
		}
	}
	return Config{}, nil
}
