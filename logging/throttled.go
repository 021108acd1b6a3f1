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
	"fmt"
	"sync"
	"time"
)

// ThrottledLogger emits at most one message per interval, the number of dropped messages
// is appended to the next message that gets through.
type ThrottledLogger struct {
	name        string
	maxInterval time.Duration
	logger      StandardLogger
	now         func() time.Time

	mu           sync.Mutex
	lastLogTime  time.Time
	skippedCount int
}

func NewThrottledLogger(name string, logger StandardLogger, maxInterval time.Duration) *ThrottledLogger {
	var log = logger
	if logger == nil {
		log = GetLogger("throttled")
	}
	return &ThrottledLogger{
		name:        name,
		maxInterval: maxInterval,
		logger:      log,
		now:         time.Now,
	}
}

type logFunc func(args ...interface{})

func (tl *ThrottledLogger) log(logFunc logFunc, format string, v ...interface{}) {
	now := tl.now()

	tl.mu.Lock()
	defer tl.mu.Unlock()
	if !tl.lastLogTime.IsZero() && now.Sub(tl.lastLogTime) < tl.maxInterval {
		tl.skippedCount++
		return
	}
	tl.lastLogTime = now
	msg := fmt.Sprintf(tl.name+": "+format, v...)
	if tl.skippedCount > 0 {
		msg = fmt.Sprintf("%s (skipped %d log messages)", msg, tl.skippedCount)
		tl.skippedCount = 0
	}
	logFunc(msg)
}

func (tl *ThrottledLogger) Infof(format string, v ...interface{}) {
	tl.log(tl.logger.Info, format, v...)
}

func (tl *ThrottledLogger) Warnf(format string, v ...interface{}) {
	tl.log(tl.logger.Warn, format, v...)
}

func (tl *ThrottledLogger) Errorf(format string, v ...interface{}) {
	tl.log(tl.logger.Error, format, v...)
}
