package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type traceRecorder[K int | string] struct {
	events []BSTTraceEvent[K]
}

func (r *traceRecorder[K]) Trace(event BSTTraceEvent[K]) {
	r.events = append(r.events, event)
}

func (r *traceRecorder[K]) steps() []BSTStep {
	steps := make([]BSTStep, 0, len(r.events))
	for _, e := range r.events {
		steps = append(steps, e.Step)
	}
	return steps
}

func (r *traceRecorder[K]) reset() {
	r.events = r.events[:0]
}

func TestBSTTracer_Insert(t *testing.T) {
	rec := &traceRecorder[int]{}
	tree := buildBSTree(scenarioKeys, WithBSTTracer[int](rec))
	rec.reset()

	require.True(t, tree.Insert(6))
	require.Equal(t, []BSTTraceEvent[int]{
		{Op: OpInsert, Step: StepDescendRight, Key: 6, At: 5, HasAt: true, Depth: 0},
		{Op: OpInsert, Step: StepDescendLeft, Key: 6, At: 8, HasAt: true, Depth: 1},
		{Op: OpInsert, Step: StepDescendLeft, Key: 6, At: 7, HasAt: true, Depth: 2},
		{Op: OpInsert, Step: StepAttach, Key: 6, Depth: 3},
	}, rec.events)
}

func TestBSTTracer_RejectDuplicate(t *testing.T) {
	rec := &traceRecorder[int]{}
	tree := buildBSTree(scenarioKeys,
		WithBSTDuplicatePolicy[int](DuplicateReject),
		WithBSTTracer[int](rec),
	)
	rec.reset()

	require.False(t, tree.Insert(3))
	require.Equal(t, []BSTStep{StepDescendLeft, StepRejectDuplicate}, rec.steps())
}

func TestBSTTracer_Search(t *testing.T) {
	rec := &traceRecorder[int]{}
	tree := buildBSTree(scenarioKeys, WithBSTTracer[int](rec))

	rec.reset()
	require.NotNil(t, tree.Search(4))
	require.Equal(t, []BSTStep{StepDescendLeft, StepDescendRight, StepFound}, rec.steps())
	require.Equal(t, OpSearch, rec.events[2].Op)
	require.Equal(t, 2, rec.events[2].Depth)

	rec.reset()
	require.Nil(t, tree.Search(6))
	require.Equal(t, []BSTStep{StepDescendRight, StepDescendLeft, StepDescendLeft, StepNotFound}, rec.steps())
	require.False(t, rec.events[3].HasAt)
}

func TestBSTTracer_RemoveCases(t *testing.T) {
	testcases := []struct {
		name     string
		keys     []int
		remove   int
		expected []BSTStep
	}{
		{
			name:     "leaf",
			keys:     scenarioKeys,
			remove:   1,
			expected: []BSTStep{StepDescendLeft, StepDescendLeft, StepFound, StepUnlinkLeaf},
		},
		{
			name:     "no left child",
			keys:     []int{5, 3, 4},
			remove:   3,
			expected: []BSTStep{StepDescendLeft, StepFound, StepReplaceWithRight},
		},
		{
			name:     "no right child",
			keys:     []int{5, 3, 2},
			remove:   3,
			expected: []BSTStep{StepDescendLeft, StepFound, StepReplaceWithLeft},
		},
		{
			name:   "both children",
			keys:   scenarioKeys,
			remove: 3,
			expected: []BSTStep{
				StepDescendLeft, StepFound, StepPromoteSuccessor,
				StepFound, StepUnlinkLeaf,
			},
		},
		{
			name:     "absent",
			keys:     scenarioKeys,
			remove:   6,
			expected: []BSTStep{StepDescendRight, StepDescendLeft, StepDescendLeft, StepNotFound},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rec := &traceRecorder[int]{}
			tree := buildBSTree(tc.keys, WithBSTTracer[int](rec))
			rec.reset()
			tree.Remove(tc.remove)
			require.Equal(tt, tc.expected, rec.steps())
			for _, e := range rec.events {
				require.Equal(tt, OpRemove, e.Op)
			}
		})
	}
}

func TestBSTTracer_PromoteSuccessorEvent(t *testing.T) {
	rec := &traceRecorder[int]{}
	tree := buildBSTree([]int{10, 5, 20, 15, 12, 13}, WithBSTTracer[int](rec))
	rec.reset()

	require.True(t, tree.Remove(10))
	require.Equal(t, []BSTTraceEvent[int]{
		{Op: OpRemove, Step: StepFound, Key: 10, At: 10, HasAt: true, Depth: 0},
		{Op: OpRemove, Step: StepPromoteSuccessor, Key: 10, At: 12, HasAt: true, Depth: 0},
		{Op: OpRemove, Step: StepDescendLeft, Key: 12, At: 20, HasAt: true, Depth: 1},
		{Op: OpRemove, Step: StepDescendLeft, Key: 12, At: 15, HasAt: true, Depth: 2},
		{Op: OpRemove, Step: StepFound, Key: 12, At: 12, HasAt: true, Depth: 3},
		{Op: OpRemove, Step: StepReplaceWithRight, Key: 12, At: 12, HasAt: true, Depth: 3},
	}, rec.events)
}

func TestBSTTracerFunc(t *testing.T) {
	count := 0
	tree := NewBSTree[string](WithBSTTracer[string](BSTTracerFunc[string](func(event BSTTraceEvent[string]) {
		count++
	})))
	tree.Insert("a")
	tree.Insert("b")
	require.Equal(t, 3, count)
}

func TestBSTTraceNames(t *testing.T) {
	require.Equal(t, "insert", OpInsert.String())
	require.Equal(t, "search", OpSearch.String())
	require.Equal(t, "remove", OpRemove.String())
	require.Equal(t, "unknown", BSTOp(9).String())
	require.Equal(t, "promote-successor", StepPromoteSuccessor.String())
	require.Equal(t, "descend-left", StepDescendLeft.String())
	require.Equal(t, "unknown", BSTStep(42).String())
	require.Equal(t, "DuplicateRight", DuplicateRight.String())
	require.Equal(t, "DuplicateReject", DuplicateReject.String())
	require.Equal(t, "BSTDuplicatePolicy(3)", BSTDuplicatePolicy(3).String())
}
