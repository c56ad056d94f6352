// Copyright 2026 the smoke-ledger-go authors
// This file is part of the smoke-ledger-go library in the LedgerNet project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"context"
	"github.com/ledgernet/smoke-ledger-go/config"
	"github.com/ledgernet/smoke-ledger-go/crypto/digest"
	"github.com/ledgernet/smoke-ledger-go/instrumentation/logfields"
	"github.com/ledgernet/smoke-ledger-go/instrumentation/metric"
	"github.com/ledgernet/smoke-ledger-go/services/ledger/authorization"
	"github.com/ledgernet/smoke-ledger-go/services/processor"
	"github.com/ledgernet/smoke-ledger-go/services/statestorage/adapter"
	"github.com/ledgernet/smoke-ledger-go/types/primitives"
	"github.com/ledgernet/smoke-ledger-go/types/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("ledger")

const smokeContractName = primitives.ContractName("SmokeContract")

// Ledger executes invocations one at a time against the instance's persisted
// state, standing in for the host environment's serialized state transitions.
type Ledger interface {
	Invoke(ctx context.Context, invocation *protocol.Invocation) ([]*protocol.Argument, error)
}

type service struct {
	logger      log.Logger
	config      config.LedgerConfig
	persistence adapter.StatePersistence
	oracle      authorization.Oracle
	processor   processor.Processor

	// one logical invocation at a time
	invocationMutex sync.Mutex

	contextsMutex  sync.RWMutex
	lastContextId  primitives.ExecutionContextId
	activeContexts map[primitives.ExecutionContextId]*executionContext

	metrics *metrics
}

type metrics struct {
	invocationTime        *metric.Histogram
	invocationRate        *metric.Rate
	rejectedAuthorization *metric.Gauge
}

func getMetrics(m metric.Factory, maxLatency time.Duration) *metrics {
	return &metrics{
		invocationTime:        m.NewLatency("Ledger.InvocationTime.Millis", maxLatency),
		invocationRate:        m.NewRate("Ledger.InvocationsPerSecond"),
		rejectedAuthorization: m.NewGauge("Ledger.RejectedAuthorization.Count"),
	}
}

func NewLedger(
	cfg config.LedgerConfig,
	persistence adapter.StatePersistence,
	oracle authorization.Oracle,
	processorService processor.Processor,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) Ledger {

	s := &service{
		logger:         parentLogger.WithTags(LogTag),
		config:         cfg,
		persistence:    persistence,
		oracle:         oracle,
		processor:      processorService,
		activeContexts: make(map[primitives.ExecutionContextId]*executionContext),
		metrics:        getMetrics(metricFactory, cfg.InvocationMaxLatency()),
	}

	// runs once on system initialization
	processorService.RegisterStateSdkHandler(s)

	return s
}

func (s *service) Invoke(ctx context.Context, invocation *protocol.Invocation) ([]*protocol.Argument, error) {
	s.invocationMutex.Lock()
	defer s.invocationMutex.Unlock()

	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)
	s.metrics.invocationRate.Measure(1)

	methodInfo, err := s.processor.MethodInfo(smokeContractName, invocation.MethodName)
	if err != nil {
		return nil, err
	}

	// authorization is proven by the caller and checked before any mutation
	if methodInfo.RequiresAuth {
		if err := s.verifyAuthorization(invocation); err != nil {
			s.metrics.rejectedAuthorization.Inc()
			return nil, err
		}
	}

	executionContextId := s.allocateExecutionContext(smokeContractName)
	defer s.destroyExecutionContext(executionContextId)

	outputArgs, err := s.processor.ProcessCall(executionContextId, smokeContractName, invocation.MethodName, invocation.Arguments)
	if err != nil {
		// transient state is discarded, the invocation never happened
		return nil, err
	}

	executionContext := s.loadExecutionContext(executionContextId)
	if err := executionContext.transientState.commitTo(s.persistence); err != nil {
		return nil, errors.Wrap(err, "failed committing state diff")
	}

	return outputArgs, nil
}

func (s *service) verifyAuthorization(invocation *protocol.Invocation) error {
	claimedCaller, err := claimedCallerOf(invocation)
	if err != nil {
		s.logger.Info("invocation rejected", logfields.Method(invocation.MethodName), log.Error(err))
		return err
	}
	if !s.oracle.Verifies(claimedCaller, invocation) {
		s.logger.Info("invocation rejected",
			logfields.Method(invocation.MethodName),
			logfields.Caller(claimedCaller),
			logfields.InvocationHash(digest.CalcInvocationHash(invocation)))
		return errors.Wrapf(ErrAuthorization, "method '%s' requires authorization by caller %s", invocation.MethodName, claimedCaller)
	}
	return nil
}

// for auth-guarded methods the first argument is the authorizing address
func claimedCallerOf(invocation *protocol.Invocation) (primitives.CallerAddress, error) {
	if len(invocation.Arguments) == 0 || !invocation.Arguments[0].IsTypeBytesValue() {
		return nil, errors.Errorf("method '%s' requires authorization but its first argument is not a caller address", invocation.MethodName)
	}
	return primitives.CallerAddress(invocation.Arguments[0].BytesValue), nil
}
