// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package inprocess

import (
	"context"
	"github.com/ledgernet/smoke-ledger-go/config"
	"github.com/ledgernet/smoke-ledger-go/instrumentation/logfields"
	"github.com/ledgernet/smoke-ledger-go/instrumentation/metric"
	"github.com/ledgernet/smoke-ledger-go/services/ledger"
	"github.com/ledgernet/smoke-ledger-go/services/ledger/authorization"
	"github.com/ledgernet/smoke-ledger-go/services/processor"
	"github.com/ledgernet/smoke-ledger-go/services/statestorage/adapter/memory"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var LogTag = log.Service("instance")

// Instance wires a complete in-process ledger: in-memory persistence, the
// ed25519 authorization oracle, the contract processor and the invocation
// dispatcher, plus the metric rotation goroutine under its supervision tree.
type Instance struct {
	govnr.TreeSupervisor

	logger         log.Logger
	config         config.NodeConfig
	ledger         ledger.Ledger
	metricRegistry metric.Registry

	cancel       context.CancelFunc
	shutdownCond *sync.Cond
}

func NewInstance(parentCtx context.Context, cfg config.NodeConfig, parentLogger log.Logger) *Instance {
	ctx, cancel := context.WithCancel(parentCtx)
	logger := parentLogger.WithTags(LogTag)

	metricRegistry := metric.NewRegistry()
	persistence := memory.NewStatePersistence(metricRegistry)
	oracle := authorization.NewEd25519Oracle()
	processorService := processor.NewProcessor(parentLogger, metricRegistry)
	ledgerService := ledger.NewLedger(cfg, persistence, oracle, processorService, parentLogger, metricRegistry)

	instance := &Instance{
		logger:         logger,
		config:         cfg,
		ledger:         ledgerService,
		metricRegistry: metricRegistry,
		cancel:         cancel,
		shutdownCond:   sync.NewCond(&sync.Mutex{}),
	}
	instance.Supervise(metricRegistry.PeriodicallyRotate(ctx, cfg.MetricRotationInterval(), logger))

	logger.Info("instance started")
	return instance
}

func (n *Instance) Ledger() ledger.Ledger {
	return n.ledger
}

func (n *Instance) MetricRegistry() metric.Registry {
	return n.metricRegistry
}

// GracefulShutdown cancels the instance context and waits for all supervised
// goroutines, bounded by the configured shutdown timeout.
func (n *Instance) GracefulShutdown() {
	n.cancel()

	shutdownContext, cancel := context.WithTimeout(context.Background(), n.config.GracefulShutdownTimeout())
	defer cancel()
	n.TreeSupervisor.WaitUntilShutdown(shutdownContext)

	n.shutdownCond.Broadcast()
	n.logger.Info("instance shut down")
}

// WaitUntilShutdownByOsSignal blocks until GracefulShutdown completes,
// triggering it on SIGINT or SIGTERM.
func (n *Instance) WaitUntilShutdownByOsSignal() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	govnr.Once(logfields.GovnrErrorer(n.logger), func() {
		<-signalChan
		n.logger.Info("shutting down gracefully due to os signal")
		n.GracefulShutdown()
	})

	n.shutdownCond.L.Lock()
	n.shutdownCond.Wait()
	n.shutdownCond.L.Unlock()
}
