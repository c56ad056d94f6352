// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// Each service declares the subset of getters it consumes; the full node
// config satisfies all of them.

type LedgerConfig interface {
	InvocationMaxLatency() time.Duration
}

type MetricsConfig interface {
	MetricRotationInterval() time.Duration
}

type NodeConfig interface {
	LedgerConfig
	MetricsConfig
	GracefulShutdownTimeout() time.Duration
}

type hardcodedConfig struct {
	invocationMaxLatency    time.Duration
	metricRotationInterval  time.Duration
	gracefulShutdownTimeout time.Duration
}

func (c *hardcodedConfig) InvocationMaxLatency() time.Duration {
	return c.invocationMaxLatency
}

func (c *hardcodedConfig) MetricRotationInterval() time.Duration {
	return c.metricRotationInterval
}

func (c *hardcodedConfig) GracefulShutdownTimeout() time.Duration {
	return c.gracefulShutdownTimeout
}
