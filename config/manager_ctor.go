/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package config

import (
	"strings"

	"github.com/endink/sharding-rewrite/core"
	"github.com/pingcap/errors"
	"go.uber.org/config"
)

const rootKey = "config"

// NewManager loads config from default file locations, default settings are used when no file was found.
func NewManager() (Manager, error) {
	var sources []config.YAMLOption

	var sb = core.NewStringBuilder()
	sb.WriteLine("Search configuration locations:")
	for _, f := range DefaultConfigFileLocations() {
		if fileExists(f) {
			sources = append(sources, config.File(f))
			sb.WriteLine("[Found]:", f)
		} else {
			sb.WriteLine("[Not Found]:", f)
		}
	}
	logger.Debug(sb.String())

	if len(sources) == 0 {
		return NewManagerFromYAML(nil)
	}
	return NewManagerFromFile(sources...)
}

// NewManagerFromFile loads config from files, later files override former ones.
func NewManagerFromFile(sources ...config.YAMLOption) (Manager, error) {
	yaml, err := config.NewYAML(append(sources, config.Permissive())...)
	if err != nil {
		return nil, errors.Annotate(err, "load config file fault")
	}
	return NewManagerFromYAML(yaml)
}

// NewManagerFromYAML builds settings from the 'config' key of the yaml, nil yaml means default settings.
func NewManagerFromYAML(yaml *config.YAML) (Manager, error) {
	raw := &rawConfig{}
	if yaml != nil {
		if err := yaml.Get(rootKey).Populate(raw); err != nil {
			return nil, errors.Annotate(err, "bad config format")
		}
	}
	settings, err := raw.buildSettings()
	if err != nil {
		return nil, err
	}
	return &cnfManager{settings: settings}, nil
}

func NewManagerFromString(ymlContent string) (Manager, error) {
	r := strings.NewReader(ymlContent)
	yml, err := config.NewYAML(config.Source(r), config.Permissive())
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewManagerFromYAML(yml)
}
