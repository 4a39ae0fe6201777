package observability

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
)

const (
	bstMeterPrefix = "xbst/tree"

	BSTOpsMetric    = "xbst.tree.ops"
	BSTSizeMetric   = "xbst.tree.size"
	BSTHeightMetric = "xbst.tree.height"

	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
)

type instrumentCfg struct {
	meterProvider metric.MeterProvider
	name          string
}

type InstrumentOpt func(*instrumentCfg)

func WithMeterProvider(mp metric.MeterProvider) InstrumentOpt {
	return func(cfg *instrumentCfg) {
		if mp != nil {
			cfg.meterProvider = mp
		}
	}
}

// WithMeterName appends the name to the "xbst/tree" meter.
func WithMeterName(name string) InstrumentOpt {
	return func(cfg *instrumentCfg) {
		cfg.name = strings.TrimSpace(name)
	}
}

func newInstrumentCfg(opts ...InstrumentOpt) *instrumentCfg {
	cfg := &instrumentCfg{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.meterProvider == nil {
		cfg.meterProvider = otel.GetMeterProvider()
	}
	return cfg
}

func (cfg *instrumentCfg) meterName() string {
	builder := &strings.Builder{}
	builder.WriteString(bstMeterPrefix)
	builder.WriteString("/")
	if len(cfg.name) > 0 {
		builder.WriteString(cfg.name)
	} else {
		builder.WriteString("default")
	}
	return builder.String()
}

func opOutcomeSet(op tree.BSTOp, outcome string) metric.MeasurementOption {
	return metric.WithAttributeSet(attribute.NewSet(
		attribute.String("op", op.String()),
		attribute.String("outcome", outcome),
	))
}

var (
	insertCreated  = opOutcomeSet(tree.OpInsert, OutcomeCreated)
	insertRejected = opOutcomeSet(tree.OpInsert, OutcomeRejected)
	searchHit      = opOutcomeSet(tree.OpSearch, OutcomeHit)
	searchMiss     = opOutcomeSet(tree.OpSearch, OutcomeMiss)
	removeHit      = opOutcomeSet(tree.OpRemove, OutcomeHit)
	removeMiss     = opOutcomeSet(tree.OpRemove, OutcomeMiss)
)

var _ tree.BSTree[int] = (*InstrumentedBSTree[int])(nil)

// InstrumentedBSTree counts the tree operations by outcome and reports
// the tree size and height on every collection.
// The wrapped tree is guarded by a read-write lock because the gauges
// are observed from the reader goroutine. The callbacks of Foreach and
// Walk run under the read lock and must not mutate the tree.
type InstrumentedBSTree[K infra.OrderedKey] struct {
	lock sync.RWMutex
	tree tree.BSTree[K]
	ops  metric.Int64Counter
	reg  metric.Registration
}

func (t *InstrumentedBSTree[K]) Len() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Len()
}

func (t *InstrumentedBSTree[K]) Height() int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Height()
}

func (t *InstrumentedBSTree[K]) Root() tree.BSTNode[K] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Root()
}

func (t *InstrumentedBSTree[K]) DuplicatePolicy() tree.BSTDuplicatePolicy {
	return t.tree.DuplicatePolicy()
}

func (t *InstrumentedBSTree[K]) Insert(key K) bool {
	t.lock.Lock()
	ok := t.tree.Insert(key)
	t.lock.Unlock()
	if ok {
		t.ops.Add(context.Background(), 1, insertCreated)
	} else {
		t.ops.Add(context.Background(), 1, insertRejected)
	}
	return ok
}

func (t *InstrumentedBSTree[K]) Search(key K) tree.BSTNode[K] {
	t.lock.RLock()
	node := t.tree.Search(key)
	t.lock.RUnlock()
	if node != nil {
		t.ops.Add(context.Background(), 1, searchHit)
	} else {
		t.ops.Add(context.Background(), 1, searchMiss)
	}
	return node
}

func (t *InstrumentedBSTree[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

func (t *InstrumentedBSTree[K]) Remove(key K) bool {
	t.lock.Lock()
	ok := t.tree.Remove(key)
	t.lock.Unlock()
	if ok {
		t.ops.Add(context.Background(), 1, removeHit)
	} else {
		t.ops.Add(context.Background(), 1, removeMiss)
	}
	return ok
}

func (t *InstrumentedBSTree[K]) Minimum() tree.BSTNode[K] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Minimum()
}

func (t *InstrumentedBSTree[K]) Maximum() tree.BSTNode[K] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Maximum()
}

func (t *InstrumentedBSTree[K]) InOrder() []K {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.InOrder()
}

func (t *InstrumentedBSTree[K]) Foreach(action func(idx int64, node tree.BSTNode[K]) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.tree.Foreach(action)
}

func (t *InstrumentedBSTree[K]) Walk(action func(depth int, dir tree.BSTDirection, node tree.BSTNode[K]) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.tree.Walk(action)
}

func (t *InstrumentedBSTree[K]) Release() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.tree.Release()
}

// Unregister stops the size and height observation.
func (t *InstrumentedBSTree[K]) Unregister() error {
	if t.reg == nil {
		return nil
	}
	if err := t.reg.Unregister(); err != nil {
		return infra.WrapErrorStack(err, "[observability] unregister tree gauges")
	}
	return nil
}

func NewInstrumentedBSTree[K infra.OrderedKey](bst tree.BSTree[K], opts ...InstrumentOpt) (*InstrumentedBSTree[K], error) {
	if bst == nil {
		return nil, infra.NewErrorStack("[observability] instrumented tree is nil")
	}
	cfg := newInstrumentCfg(opts...)
	meter := cfg.meterProvider.Meter(cfg.meterName())

	t := &InstrumentedBSTree[K]{tree: bst}
	var err error
	if t.ops, err = meter.Int64Counter(
		BSTOpsMetric,
		metric.WithDescription(`The tree operations by outcome.`),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, infra.WrapErrorStack(err, "[observability] tree ops counter")
	}
	size, err := meter.Int64ObservableGauge(
		BSTSizeMetric,
		metric.WithDescription(`The tree nodes count.`),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, infra.WrapErrorStack(err, "[observability] tree size gauge")
	}
	height, err := meter.Int64ObservableGauge(
		BSTHeightMetric,
		metric.WithDescription(`The edges on the longest root to leaf path, -1 if the tree is empty.`),
		metric.WithUnit("{edge}"),
	)
	if err != nil {
		return nil, infra.WrapErrorStack(err, "[observability] tree height gauge")
	}
	if t.reg, err = meter.RegisterCallback(func(_ context.Context, ob metric.Observer) error {
		t.lock.RLock()
		defer t.lock.RUnlock()
		ob.ObserveInt64(size, t.tree.Len())
		ob.ObserveInt64(height, int64(t.tree.Height()))
		return nil
	}, size, height); err != nil {
		return nil, infra.WrapErrorStack(err, "[observability] tree gauges callback")
	}
	return t, nil
}
