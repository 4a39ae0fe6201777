package tree

import (
	"github.com/benz9527/xbst/lib/infra"
)

type bstNode[K infra.OrderedKey] struct {
	left  *bstNode[K]
	right *bstNode[K]
	key   K
}

func (node *bstNode[K]) Key() K {
	return node.key
}

func (node *bstNode[K]) Left() BSTNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[K]) Right() BSTNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *bstNode[K]) HasLeft() bool {
	return node != nil && node.left != nil
}

func (node *bstNode[K]) HasRight() bool {
	return node != nil && node.right != nil
}

func (node *bstNode[K]) isLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *bstNode[K]) minimum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *bstNode[K]) maximum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

type bsTree[K infra.OrderedKey] struct {
	root   *bstNode[K]
	count  int64
	policy BSTDuplicatePolicy
	tracer BSTTracer[K]
}

func (tree *bsTree[K]) keyCompare(k1, k2 K) int64 {
	return infra.OrderedKeyCompare[K](k1, k2)
}

func (tree *bsTree[K]) trace(op BSTOp, step BSTStep, key K, at *bstNode[K], depth int) {
	if tree.tracer == nil {
		return
	}
	event := BSTTraceEvent[K]{
		Op:    op,
		Step:  step,
		Key:   key,
		Depth: depth,
	}
	if at != nil {
		event.At, event.HasAt = at.key, true
	}
	tree.tracer.Trace(event)
}

func (tree *bsTree[K]) Len() int64 {
	return tree.count
}

func (tree *bsTree[K]) Root() BSTNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K]) DuplicatePolicy() BSTDuplicatePolicy {
	return tree.policy
}

// Height is the number of edges on the longest root-to-leaf path.
// An empty tree has height -1.
func (tree *bsTree[K]) Height() int {
	height := -1
	tree.Walk(func(depth int, _ BSTDirection, _ BSTNode[K]) bool {
		if depth > height {
			height = depth
		}
		return true
	})
	return height
}

// Insert walks down from the root by the link that owns the current
// subtree, so the new node is attached without a parent pointer.
// Equal keys go right unless the policy rejects them.
func (tree *bsTree[K]) Insert(key K) bool {
	link, depth := &tree.root, 0
	for x := *link; x != nil; x = *link {
		if res := tree.keyCompare(key, x.key); /* less */ res < 0 {
			tree.trace(OpInsert, StepDescendLeft, key, x, depth)
			link = &x.left
		} else /* equal or greater */ {
			if res == 0 && tree.policy == DuplicateReject {
				tree.trace(OpInsert, StepRejectDuplicate, key, x, depth)
				return false
			}
			tree.trace(OpInsert, StepDescendRight, key, x, depth)
			link = &x.right
		}
		depth++
	}

	*link = &bstNode[K]{key: key}
	tree.count++
	tree.trace(OpInsert, StepAttach, key, nil, depth)
	return true
}

// locate returns the link owning the first node holding key in the
// subtree behind link, and that node's depth. It returns nil if absent.
func (tree *bsTree[K]) locate(op BSTOp, link **bstNode[K], key K, depth int) (**bstNode[K], int) {
	for x := *link; x != nil; x = *link {
		res := tree.keyCompare(key, x.key)
		if /* equal */ res == 0 {
			tree.trace(op, StepFound, key, x, depth)
			return link, depth
		} else /* less */ if res < 0 {
			tree.trace(op, StepDescendLeft, key, x, depth)
			link = &x.left
		} else /* greater */ {
			tree.trace(op, StepDescendRight, key, x, depth)
			link = &x.right
		}
		depth++
	}
	tree.trace(op, StepNotFound, key, nil, depth)
	return nil, depth
}

func (tree *bsTree[K]) Search(key K) BSTNode[K] {
	link, _ := tree.locate(OpSearch, &tree.root, key, 0)
	if link == nil {
		return nil
	}
	return *link
}

func (tree *bsTree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

/*
r1: Z has no children. Unlink Z.

	  P          P
	  |   ===>
	  Z

r2: Z has no left child. Replace Z by its right child R.

	  P          P
	  |          |
	  Z   ===>   R
	   \
	    R

r3: Z has no right child. Replace Z by its left child L.

r4: Z has both children. Overwrite Z's key by its in-order successor S
(the minimum of Z's right subtree), then remove S's key from Z's right
subtree. S has no left child, so that removal ends in r1 or r2. Z itself
stays in place.

	    Z                S
	   / \              / \
	  L   R   ===>     L   R
	     /                /
	    S                Sr
	     \
	      Sr
*/
func (tree *bsTree[K]) unlink(link **bstNode[K], key K, depth int) {
	z := *link
	switch {
	case /* r1 */ z.isLeaf():
		tree.trace(OpRemove, StepUnlinkLeaf, key, z, depth)
		*link = nil
	case /* r2 */ z.left == nil:
		tree.trace(OpRemove, StepReplaceWithRight, key, z, depth)
		*link = z.right
	case /* r3 */ z.right == nil:
		tree.trace(OpRemove, StepReplaceWithLeft, key, z, depth)
		*link = z.left
	default /* r4 */ :
		succ := z.right.minimum()
		tree.trace(OpRemove, StepPromoteSuccessor, key, succ, depth)
		z.key = succ.key
		succLink, succDepth := tree.locate(OpRemove, &z.right, succ.key, depth+1)
		if succLink == nil || *succLink != succ || succ.left != nil {
			// impossible run to here
			panic( /* debug assertion */ "[bst] in-order successor is not the minimum of the right subtree")
		}
		tree.unlink(succLink, succ.key, succDepth)
		return
	}
	z.left, z.right = nil, nil
}

func (tree *bsTree[K]) Remove(key K) bool {
	link, depth := tree.locate(OpRemove, &tree.root, key, 0)
	if link == nil {
		return false
	}
	tree.unlink(link, key, depth)
	tree.count--
	return true
}

func (tree *bsTree[K]) Minimum() BSTNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root.minimum()
}

func (tree *bsTree[K]) Maximum() BSTNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root.maximum()
}

func (tree *bsTree[K]) InOrder() []K {
	keys := make([]K, 0, tree.count)
	tree.Foreach(func(_ int64, node BSTNode[K]) bool {
		keys = append(keys, node.Key())
		return true
	})
	return keys
}

// Inorder traversal by an explicit stack, a degenerated chain won't
// exhaust the goroutine stack.
func (tree *bsTree[K]) Foreach(action func(idx int64, node BSTNode[K]) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*bstNode[K], 0, 16)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

type bstWalkFrame[K infra.OrderedKey] struct {
	node  *bstNode[K]
	depth int
	dir   BSTDirection
}

// Preorder traversal. The right child is pushed first, so the left
// subtree is visited first.
func (tree *bsTree[K]) Walk(action func(depth int, dir BSTDirection, node BSTNode[K]) bool) {
	if tree.root == nil {
		return
	}

	stack := make([]bstWalkFrame[K], 0, 16)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, bstWalkFrame[K]{node: tree.root, depth: 0, dir: DirRoot})

	for size := len(stack); size > 0; size = len(stack) {
		frame := stack[size-1]
		stack = stack[:size-1]
		if !action(frame.depth, frame.dir, frame.node) {
			return
		}
		if r := frame.node.right; r != nil {
			stack = append(stack, bstWalkFrame[K]{node: r, depth: frame.depth + 1, dir: DirRight})
		}
		if l := frame.node.left; l != nil {
			stack = append(stack, bstWalkFrame[K]{node: l, depth: frame.depth + 1, dir: DirLeft})
		}
	}
}

// Release drops all nodes. The tree is empty and reusable afterward.
func (tree *bsTree[K]) Release() {
	aux := tree.root
	tree.root, tree.count = nil, 0
	if aux == nil {
		return
	}

	stack := make([]*bstNode[K], 0, 16)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.left, aux.right = nil, nil
	}
}

type BSTreeOpt[K infra.OrderedKey] func(*bsTree[K])

func WithBSTDuplicatePolicy[K infra.OrderedKey](policy BSTDuplicatePolicy) BSTreeOpt[K] {
	return func(tree *bsTree[K]) {
		tree.policy = policy
	}
}

// WithBSTTracer receives every step of Insert, Search and Remove.
func WithBSTTracer[K infra.OrderedKey](tracer BSTTracer[K]) BSTreeOpt[K] {
	return func(tree *bsTree[K]) {
		tree.tracer = tracer
	}
}

func NewBSTree[K infra.OrderedKey](opts ...BSTreeOpt[K]) BSTree[K] {
	tree := &bsTree[K]{
		count:  0,
		policy: DuplicateRight,
	}

	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	if tree.policy != DuplicateRight && tree.policy != DuplicateReject {
		panic("[bst] unknown duplicate policy " + tree.policy.String())
	}
	return tree
}
