package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xbst/lib/infra"
)

// bst rule validation utilities.

type bstBound[K infra.OrderedKey] struct {
	node         BSTNode[K]
	lower, upper K
	hasLower     bool
	hasUpper     bool
}

// BSTOrderValidate checks every node against the key range its ancestors
// allow. A left subtree must be strictly less than its parent. A right
// subtree must be greater or equal under DuplicateRight and strictly
// greater under DuplicateReject. All violations are reported.
func BSTOrderValidate[K infra.OrderedKey](tree BSTree[K]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	strictRight := tree.DuplicatePolicy() == DuplicateReject

	var merr error
	stack := make([]bstBound[K], 0, 16)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, bstBound[K]{node: root})

	for size := len(stack); size > 0; size = len(stack) {
		b := stack[size-1]
		stack = stack[:size-1]
		key := b.node.Key()
		if b.hasUpper && !(key < b.upper) {
			merr = multierr.Append(merr, fmt.Errorf("[bst] key %v must be less than %v", key, b.upper))
		}
		if b.hasLower {
			if strictRight && !(key > b.lower) {
				merr = multierr.Append(merr, fmt.Errorf("[bst] key %v must be greater than %v", key, b.lower))
			} else if !strictRight && key < b.lower {
				merr = multierr.Append(merr, fmt.Errorf("[bst] key %v must not be less than %v", key, b.lower))
			}
		}

		if r := b.node.Right(); r != nil {
			stack = append(stack, bstBound[K]{
				node:     r,
				lower:    key,
				hasLower: true,
				upper:    b.upper,
				hasUpper: b.hasUpper,
			})
		}
		if l := b.node.Left(); l != nil {
			stack = append(stack, bstBound[K]{
				node:     l,
				lower:    b.lower,
				hasLower: b.hasLower,
				upper:    key,
				hasUpper: true,
			})
		}
	}
	return infra.WrapErrorStack(merr, "[bst] order violation")
}

// BSTSizeValidate checks the recorded length against the reachable nodes.
func BSTSizeValidate[K infra.OrderedKey](tree BSTree[K]) error {
	reachable := int64(0)
	tree.Foreach(func(int64, BSTNode[K]) bool {
		reachable++
		return true
	})
	if reachable != tree.Len() {
		return infra.NewErrorStack(fmt.Sprintf("[bst] size violation, len %d, reachable %d", tree.Len(), reachable))
	}
	return nil
}
