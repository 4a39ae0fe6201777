package tree

import "github.com/benz9527/xbst/lib/infra"

type BSTOp uint8

const (
	OpInsert BSTOp = iota
	OpSearch
	OpRemove
)

func (op BSTOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpSearch:
		return "search"
	case OpRemove:
		return "remove"
	default:
	}
	return "unknown"
}

type BSTStep uint8

const (
	StepDescendLeft BSTStep = iota
	StepDescendRight
	StepAttach
	StepRejectDuplicate
	StepFound
	StepNotFound
	StepUnlinkLeaf       // remove case 1, no children
	StepReplaceWithRight // remove case 2, no left child
	StepReplaceWithLeft  // remove case 3, no right child
	StepPromoteSuccessor // remove case 4, both children
)

var bstStepNames = [...]string{
	StepDescendLeft:      "descend-left",
	StepDescendRight:     "descend-right",
	StepAttach:           "attach",
	StepRejectDuplicate:  "reject-duplicate",
	StepFound:            "found",
	StepNotFound:         "not-found",
	StepUnlinkLeaf:       "unlink-leaf",
	StepReplaceWithRight: "replace-with-right",
	StepReplaceWithLeft:  "replace-with-left",
	StepPromoteSuccessor: "promote-successor",
}

func (step BSTStep) String() string {
	if int(step) < len(bstStepNames) {
		return bstStepNames[step]
	}
	return "unknown"
}

// BSTTraceEvent is one step of an operation.
// At is the key of the node where the step happened. It is the zero
// value of K and HasAt is false when the step happened at an absent
// child (attach, not found).
// Depth counts edges from the root. A successor promotion reports the
// successor key as At and the depth of the node receiving it.
type BSTTraceEvent[K infra.OrderedKey] struct {
	Op    BSTOp
	Step  BSTStep
	Key   K
	At    K
	HasAt bool
	Depth int
}

type BSTTracer[K infra.OrderedKey] interface {
	Trace(event BSTTraceEvent[K])
}

type BSTTracerFunc[K infra.OrderedKey] func(event BSTTraceEvent[K])

func (fn BSTTracerFunc[K]) Trace(event BSTTraceEvent[K]) {
	fn(event)
}
