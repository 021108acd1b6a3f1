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

type Manager interface {
	GetSettings() *Settings
}

type rawConfig struct {
	Rewrite RewriteSettings `yaml:"rewrite"`
	Logging LoggingSettings `yaml:"logging"`
	Rule    ruleConfig      `yaml:"rule"`
}

type cnfManager struct {
	settings *Settings
}

func (m *cnfManager) GetSettings() *Settings {
	return m.settings
}

func (raw *rawConfig) buildSettings() (*Settings, error) {
	settings := &Settings{
		Rewrite: raw.Rewrite,
		Logging: raw.Logging,
	}
	if raw.Rule.isEmpty() {
		return settings, nil
	}
	rule, err := raw.Rule.buildRule()
	if err != nil {
		return nil, err
	}
	settings.ShardingRule = rule
	return settings, nil
}
