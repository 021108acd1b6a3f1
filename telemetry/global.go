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
	"time"

	"github.com/pingcap/errors"
	"go.opentelemetry.io/otel/exporters/stdout"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/sdk/export/metric"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	"go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

const defaultPushPeriod = 10 * time.Second

type pipelineOptions struct {
	exporter metric.Exporter
	period   time.Duration
}

type Option func(o *pipelineOptions)

// WithExporter replaces the stdout exporter.
func WithExporter(exporter metric.Exporter) Option {
	return func(o *pipelineOptions) {
		o.exporter = exporter
	}
}

func WithPushPeriod(period time.Duration) Option {
	return func(o *pipelineOptions) {
		if period > 0 {
			o.period = period
		}
	}
}

// Pipeline pushes the metrics of every meter got from GetMeter to an exporter.
type Pipeline struct {
	controller *controller.Controller
}

// Start installs a push controller as the global meter provider.
// Instruments created before Start are delegated to the new provider.
func Start(ctx context.Context, opts ...Option) (*Pipeline, error) {
	o := &pipelineOptions{period: defaultPushPeriod}
	for _, opt := range opts {
		opt(o)
	}
	if o.exporter == nil {
		exporter, err := stdout.NewExporter(stdout.WithPrettyPrint())
		if err != nil {
			return nil, errors.Annotate(err, "create stdout metric exporter fault")
		}
		o.exporter = exporter
	}

	c := controller.New(
		processor.New(simple.NewWithExactDistribution(), o.exporter),
		controller.WithPusher(o.exporter),
		controller.WithCollectPeriod(o.period),
	)
	if err := c.Start(ctx); err != nil {
		return nil, errors.Annotate(err, "start metric controller fault")
	}
	global.SetMeterProvider(c.MeterProvider())
	return &Pipeline{controller: c}, nil
}

// Stop pushes the last collection and stops the controller.
func (p *Pipeline) Stop(ctx context.Context) error {
	if p == nil || p.controller == nil {
		return nil
	}
	err := p.controller.Stop(ctx)
	p.controller = nil
	return errors.Trace(err)
}
