package observability

import (
	"sync"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/benz9527/xbst/lib/infra"
)

var runtimeStatsOnce sync.Once

// StartRuntimeStats reports the go runtime metrics (goroutines, gc, heap)
// next to the tree metrics. Only the first call takes effect.
func StartRuntimeStats(opts ...InstrumentOpt) error {
	cfg := newInstrumentCfg(opts...)
	var err error
	runtimeStatsOnce.Do(func() {
		err = otelruntime.Start(
			otelruntime.WithMeterProvider(cfg.meterProvider),
			otelruntime.WithMinimumReadMemStatsInterval(time.Second),
		)
	})
	if err != nil {
		return infra.WrapErrorStack(err, "[observability] runtime stats")
	}
	return nil
}
