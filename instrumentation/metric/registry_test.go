package metric

import (
	"context"
	"github.com/ledgernet/smoke-ledger-go/test"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRegistryExportsRegisteredMetrics(t *testing.T) {
	r := NewRegistry()
	g := r.NewGauge("Some.Gauge")
	r.NewRate("Some.Rate")
	r.NewLatency("Some.Latency.Millis", 10*time.Second)

	g.Update(42)

	all := r.ExportAll()
	require.Contains(t, all, "Some.Gauge")
	require.Contains(t, all, "Some.Rate")
	require.Contains(t, all, "Some.Latency.Millis")
}

func TestRegistryPeriodicallyRotateShutsDownWithContext(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("Some.Gauge").Update(1)
	logger := log.DefaultTestingLogger(t)

	supervisor := &govnr.TreeSupervisor{}
	test.WithContextAndShutdown(supervisor, func(ctx context.Context) {
		supervisor.Supervise(r.PeriodicallyRotate(ctx, time.Millisecond, logger))
		time.Sleep(5 * time.Millisecond)
	})
}
