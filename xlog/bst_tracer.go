package xlog

import (
	"go.uber.org/zap"

	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
)

var _ tree.BSTTracer[int] = (*BSTTraceXLogger[int])(nil)

// BSTTraceXLogger writes every tree step as a debug entry of the
// "BST" component.
type BSTTraceXLogger[K infra.OrderedKey] struct {
	logger XLogger
}

func (l *BSTTraceXLogger[K]) Trace(event tree.BSTTraceEvent[K]) {
	if l == nil || l.logger == nil {
		return
	}
	fields := make([]zap.Field, 0, 5)
	fields = append(fields,
		zap.String("op", event.Op.String()),
		zap.String("step", event.Step.String()),
		zap.Any("key", event.Key),
	)
	if event.HasAt {
		fields = append(fields, zap.Any("at", event.At))
	}
	fields = append(fields, zap.Int("depth", event.Depth))
	l.logger.Debug("bst trace", fields...)
}

func NewBSTTraceXLogger[K infra.OrderedKey](logger XLogger) *BSTTraceXLogger[K] {
	return &BSTTraceXLogger[K]{
		logger: newComponentXLogger(logger, "BST"),
	}
}
