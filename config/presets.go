// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

// all other configs are variations from the production one
func ForProduction() NodeConfig {
	return &hardcodedConfig{
		// invocations are a single in-memory store round trip, anything above a second is pathological
		invocationMaxLatency:    1 * time.Second,
		metricRotationInterval:  30 * time.Second,
		gracefulShutdownTimeout: 5 * time.Second,
	}
}

func ForTests() NodeConfig {
	return &hardcodedConfig{
		invocationMaxLatency:    1 * time.Second,
		metricRotationInterval:  100 * time.Millisecond,
		gracefulShutdownTimeout: 1 * time.Second,
	}
}
