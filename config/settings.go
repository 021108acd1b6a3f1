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
	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/logging"
	"github.com/endink/sharding-rewrite/rewriting"
	"github.com/pingcap/errors"
	"go.uber.org/zap/zapcore"
)

type RenderCacheSettings struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type RewriteSettings struct {
	SQLShow     bool                `yaml:"sql-show"`
	RenderCache RenderCacheSettings `yaml:"render-cache"`
}

// LoggingSettings configures the global level and format, Loggers overrides level of named loggers.
type LoggingSettings struct {
	Level   string            `yaml:"level"`
	Format  string            `yaml:"format"`
	Loggers map[string]string `yaml:"loggers"`
}

type Settings struct {
	Rewrite      RewriteSettings
	Logging      LoggingSettings
	ShardingRule *core.ShardingRule
}

// EngineOptions converts rewrite settings to options of rewrite engines.
func (s *Settings) EngineOptions() []rewriting.EngineOption {
	opts := []rewriting.EngineOption{rewriting.WithSQLShow(s.Rewrite.SQLShow)}
	if s.Rewrite.RenderCache.Enabled {
		opts = append(opts, rewriting.WithRenderCache(s.Rewrite.RenderCache.Size))
	}
	return opts
}

// ContextOptions returns options to build rewrite context with the sharding rule.
func (s *Settings) ContextOptions() []rewriting.ContextOption {
	if s.ShardingRule == nil {
		return nil
	}
	return []rewriting.ContextOption{rewriting.WithRule(s.ShardingRule)}
}

// ApplyLogging changes level and format of loggers.
func (s *Settings) ApplyLogging() error {
	if err := logging.Configure(core.IfBlankAndTrim(s.Logging.Level, "info"), core.IfBlankAndTrim(s.Logging.Format, "console")); err != nil {
		return errors.Annotate(err, "bad logging config")
	}
	for name, level := range s.Logging.Loggers {
		var lv zapcore.Level
		if err := lv.UnmarshalText([]byte(level)); err != nil {
			return errors.Annotatef(err, "bad level of logger '%s'", name)
		}
		logging.SetLevel(name, lv)
	}
	return nil
}
