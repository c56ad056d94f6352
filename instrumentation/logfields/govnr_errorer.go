// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

type govnrErrorer struct {
	logger log.Logger
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err))
}

// GovnrErrorer adapts a scribe logger to govnr's panic reporting interface.
func GovnrErrorer(logger log.Logger) govnr.Errorer {
	return &govnrErrorer{logger}
}
