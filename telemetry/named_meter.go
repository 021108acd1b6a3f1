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

package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/label"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/unit"
)

// NamedMeter creates instruments under one instrumentation name, an instrument is created once per name.
type NamedMeter struct {
	name string

	mu          sync.Mutex
	instruments map[string]interface{}
}

func (m *NamedMeter) instrument(name string, create func(meter metric.MeterMust) interface{}) interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.instruments[name]; ok {
		return i
	}
	i := create(metric.Must(global.Meter(m.name)))
	m.instruments[name] = i
	return i
}

func (m *NamedMeter) NewInt64Counter(name, desc string) metric.Int64Counter {
	return m.instrument(name, func(meter metric.MeterMust) interface{} {
		return meter.NewInt64Counter(name, metric.WithDescription(desc))
	}).(metric.Int64Counter)
}

// NewLatencyRecorder creates a recorder of elapsed microseconds, values are split by labelKey.
func (m *NamedMeter) NewLatencyRecorder(name, desc string, labelKey string) LatencyRecorder {
	return m.instrument(name, func(meter metric.MeterMust) interface{} {
		return LatencyRecorder{
			recorder: meter.NewInt64ValueRecorder(name, metric.WithDescription(desc), metric.WithUnit(unit.Unit("us"))),
			key:      label.Key(labelKey),
		}
	}).(LatencyRecorder)
}

// LatencyRecorder uses microseconds, a rewrite usually takes far less than a millisecond.
type LatencyRecorder struct {
	recorder metric.Int64ValueRecorder
	key      label.Key
}

func (r LatencyRecorder) Since(ctx context.Context, start time.Time, labelValue string) {
	r.recorder.Record(ctx, time.Since(start).Microseconds(), r.key.String(labelValue))
}
