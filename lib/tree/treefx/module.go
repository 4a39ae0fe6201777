// Package treefx assembles a traced and instrumented tree in an fx
// application.
package treefx

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
	"github.com/benz9527/xbst/observability"
	"github.com/benz9527/xbst/xlog"
)

type Params struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Logger        xlog.XLogger         `optional:"true"`
	MeterProvider metric.MeterProvider `optional:"true"`
}

type Result[K infra.OrderedKey] struct {
	fx.Out

	Tree         tree.BSTree[K]
	Instrumented *observability.InstrumentedBSTree[K]
}

func newBSTree[K infra.OrderedKey](opts ...tree.BSTreeOpt[K]) func(p Params) (Result[K], error) {
	return func(p Params) (Result[K], error) {
		logger := p.Logger
		if logger == nil {
			logger = xlog.NewXLogger()
		}
		treeOpts := make([]tree.BSTreeOpt[K], 0, len(opts)+1)
		treeOpts = append(treeOpts, tree.WithBSTTracer[K](xlog.NewBSTTraceXLogger[K](logger)))
		treeOpts = append(treeOpts, opts...)
		engine := tree.NewBSTree[K](treeOpts...)

		instrumented, err := observability.NewInstrumentedBSTree[K](
			engine,
			observability.WithMeterProvider(p.MeterProvider),
		)
		if err != nil {
			return Result[K]{}, err
		}

		p.Lifecycle.Append(fx.Hook{
			OnStart: func(context.Context) error {
				logger.Info("bst ready", zap.String("policy", engine.DuplicatePolicy().String()))
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Info("bst released", zap.Int64("len", instrumented.Len()))
				instrumented.Release()
				err := instrumented.Unregister()
				_ = logger.Sync()
				return err
			},
		})
		return Result[K]{Tree: instrumented, Instrumented: instrumented}, nil
	}
}

// Module provides the tree as tree.BSTree[K] and as the instrumented
// decorator. The tree steps are logged by the supplied XLogger or by a
// default stdout one.
func Module[K infra.OrderedKey](opts ...tree.BSTreeOpt[K]) fx.Option {
	return fx.Module("xbst",
		fx.Provide(newBSTree[K](opts...)),
	)
}

// WithXLogger supplies the logger of Module and routes the fx events into it.
func WithXLogger(logger xlog.XLogger) fx.Option {
	return fx.Options(
		fx.Provide(func() xlog.XLogger { return logger }),
		fx.WithLogger(func() fxevent.Logger { return xlog.NewFxXLogger(logger) }),
	)
}
