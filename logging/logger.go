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

package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var loggerMutex sync.RWMutex // guards access to global logger state

// loggers is the set of loggers in the system
var loggers = make(map[string]*zap.SugaredLogger)

var levels = make(map[string]zap.AtomicLevel)
var defaultLevel = zapcore.InfoLevel
var output zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)

// core level is always debug, every named logger filter by its own atomic level.
var logCore = newCore(ColorizedOutput, output)

func newCore(format LogFormat, out zapcore.WriteSyncer) *switchableCore {
	c := &switchableCore{}
	c.set(zapcore.NewCore(format.encoder(), out, zapcore.DebugLevel))
	return c
}

var DefaultLogger = GetLogger("sharding-rewrite")

func GetLogger(name string) *zap.SugaredLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	log, ok := loggers[name]
	if !ok {
		levels[name] = zap.NewAtomicLevelAt(defaultLevel)

		log = zap.New(logCore, zap.AddCaller()).
			WithOptions(zap.IncreaseLevel(levels[name])).
			Named(name).
			Sugar()

		loggers[name] = log
	}

	return log
}

// SetLevel change level of the named logger, all loggers are changed when name is empty.
func SetLevel(name string, level zapcore.Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if name == "" {
		defaultLevel = level
		for _, l := range levels {
			l.SetLevel(level)
		}
		return
	}
	if l, ok := levels[name]; ok {
		l.SetLevel(level)
	}
}

// Configure apply the global level and output format.
func Configure(level string, format string) error {
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	f, err := ParseLogFormat(format)
	if err != nil {
		return err
	}
	logCore.set(zapcore.NewCore(f.encoder(), output, zapcore.DebugLevel))
	SetLevel("", lv)
	return nil
}

// switchableCore let the encoder be replaced after loggers were created.
type switchableCore struct {
	mu    sync.RWMutex
	inner zapcore.Core
}

func (c *switchableCore) set(inner zapcore.Core) {
	c.mu.Lock()
	c.inner = inner
	c.mu.Unlock()
}

func (c *switchableCore) get() zapcore.Core {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner
}

func (c *switchableCore) Enabled(level zapcore.Level) bool {
	return c.get().Enabled(level)
}

func (c *switchableCore) With(fields []zapcore.Field) zapcore.Core {
	return c.get().With(fields)
}

func (c *switchableCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *switchableCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.get().Write(entry, fields)
}

func (c *switchableCore) Sync() error {
	return c.get().Sync()
}
